package model

// SortOrder selects the catalog ordering. The zero value sorts by newest.
type SortOrder string

const (
	SortNewest    SortOrder = "newest"
	SortPriceLow  SortOrder = "price-low"
	SortPriceHigh SortOrder = "price-high"
	SortPopular   SortOrder = "popular"
)

// PriceRange is an inclusive [Min, Max] bound on product price. An inverted
// range matches nothing.
type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// FilterSpec is the current combination of catalog selections. Zero-valued
// fields are unset and leave the catalog unfiltered on that axis.
type FilterSpec struct {
	Category   Category    `json:"category,omitempty"`
	PriceRange *PriceRange `json:"priceRange,omitempty"`
	SortBy     SortOrder   `json:"sortBy,omitempty"`
	Search     string      `json:"search,omitempty"`
}

// ProductPage is one page of a filtered, ordered catalog query.
type ProductPage struct {
	Data     []Product `json:"data"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"pageSize"`
	HasMore  bool      `json:"hasMore"`
}
