package repo

import (
	"encoding/json"

	"github.com/saishaa-studio/storefront/internal/shop/model"
)

// cartRecord is the single serialized document stored per cart.
type cartRecord struct {
	Items []model.CartItem `json:"items"`
}

func marshalRecord(items []model.CartItem) ([]byte, error) {
	return json.Marshal(cartRecord{Items: items})
}

func unmarshalRecord(raw []byte) ([]model.CartItem, error) {
	var rec cartRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	if rec.Items == nil {
		rec.Items = []model.CartItem{}
	}
	return rec.Items, nil
}
