package checkout

// Shipping policy: orders at or above the threshold ship free, everything
// else pays a flat rate.
const (
	FreeShippingThreshold int64 = 999
	FlatShippingCost      int64 = 99
)

// ShippingQuote prices delivery for a cart subtotal.
type ShippingQuote struct {
	Subtotal int64
	Cost     int64
	Free     bool
	// AmountToFree is how much more the customer must add to reach free
	// shipping; zero once the threshold is met.
	AmountToFree int64
}

// Total is the subtotal plus shipping.
func (q ShippingQuote) Total() int64 {
	return q.Subtotal + q.Cost
}

// QuoteShipping computes the shipping quote for a cart subtotal.
func QuoteShipping(subtotal int64) ShippingQuote {
	if subtotal >= FreeShippingThreshold {
		return ShippingQuote{Subtotal: subtotal, Free: true}
	}
	return ShippingQuote{
		Subtotal:     subtotal,
		Cost:         FlatShippingCost,
		AmountToFree: FreeShippingThreshold - subtotal,
	}
}
