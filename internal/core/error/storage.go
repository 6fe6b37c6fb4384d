package errx

import "net/http"

// WrapStorage maps embedded key-value store errors to the unified Error type.
func WrapStorage(err error) *Error {
	if err == nil {
		return nil
	}
	return New(err, http.StatusInternalServerError, StorageErrorMessage)
}
