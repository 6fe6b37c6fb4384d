package model

import "context"

// CartItem is one line of the cart: a snapshot of the product taken at
// add-time (later catalog changes do not touch it), the quantity, and the
// variant options chosen by the customer.
type CartItem struct {
	Product         Product           `json:"product"`
	Quantity        int               `json:"quantity"`
	SelectedOptions map[string]string `json:"selectedOptions,omitempty"`
}

// Subtotal is the line total at the captured unit price.
func (i CartItem) Subtotal() int64 {
	return i.Product.Price * int64(i.Quantity)
}

// CartRepository persists a cart's line items as a single record per cart.
// Only the item list is durable; drawer visibility and the add pulse are
// session state and never stored.
type CartRepository interface {
	// Save replaces the stored item list for the given cart.
	Save(ctx context.Context, cartID string, items []CartItem) error

	// Load retrieves the stored item list for the given cart. A cart that
	// was never saved loads as an empty list, not an error.
	Load(ctx context.Context, cartID string) ([]CartItem, error)

	// Clear removes the stored record for the given cart.
	Clear(ctx context.Context, cartID string) error
}
