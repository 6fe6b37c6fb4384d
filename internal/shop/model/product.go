package model

import (
	"fmt"
	"time"
)

// Category is the closed set of product categories the shop carries.
type Category string

const (
	CategoryResin   Category = "resin"
	CategoryCandles Category = "candles"
	CategoryCrafts  Category = "crafts"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryResin, CategoryCandles, CategoryCrafts:
		return true
	}
	return false
}

// ProductOption is a named variant axis (e.g. Size) with its allowed values.
type ProductOption struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Product is a catalog record. Prices are whole currency units.
type Product struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Slug           string          `json:"slug"`
	Description    string          `json:"description"`
	Price          int64           `json:"price"`
	CompareAtPrice int64           `json:"compareAtPrice,omitempty"`
	Category       Category        `json:"category"`
	Images         []string        `json:"images,omitempty"`
	Options        []ProductOption `json:"options,omitempty"`
	Tags           []string        `json:"tags,omitempty"`
	Featured       bool            `json:"featured"`
	CreatedAt      time.Time       `json:"createdAt"`
	Stock          int             `json:"stock"`
}

// InStock reports whether the product can currently be purchased.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// OnSale reports whether the product carries a real strike-through price.
func (p Product) OnSale() bool {
	return p.CompareAtPrice > p.Price && p.CompareAtPrice > 0
}

// DiscountPercent returns the rounded percentage saved against the
// compare-at price, or 0 when the product is not on sale.
func (p Product) DiscountPercent() int {
	if !p.OnSale() {
		return 0
	}
	saved := float64(p.CompareAtPrice - p.Price)
	return int(saved/float64(p.CompareAtPrice)*100 + 0.5)
}

// Validate checks the catalog data invariants: a non-negative price and
// stock, a known category, a compare-at price that represents a real
// discount, and at least one value per declared option.
func (p Product) Validate() error {
	if p.ID == "" || p.Slug == "" {
		return fmt.Errorf("product %q: missing id or slug", p.Name)
	}
	if p.Price < 0 {
		return fmt.Errorf("product %s: negative price %d", p.ID, p.Price)
	}
	if p.Stock < 0 {
		return fmt.Errorf("product %s: negative stock %d", p.ID, p.Stock)
	}
	if !p.Category.Valid() {
		return fmt.Errorf("product %s: unknown category %q", p.ID, p.Category)
	}
	if p.CompareAtPrice != 0 && p.CompareAtPrice <= p.Price {
		return fmt.Errorf("product %s: compareAtPrice %d does not exceed price %d", p.ID, p.CompareAtPrice, p.Price)
	}
	for _, opt := range p.Options {
		if len(opt.Values) == 0 {
			return fmt.Errorf("product %s: option %q has no values", p.ID, opt.Name)
		}
	}
	return nil
}

// CategoryInfo describes a browsable category.
type CategoryInfo struct {
	ID          Category `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
}
