package filter

import (
	"sync"

	"github.com/saishaa-studio/storefront/internal/shop/model"
)

// defaults is the reset target: everything unset, newest first.
var defaults = model.FilterSpec{SortBy: model.SortNewest}

// State holds the catalog selections currently driving queries. Each setter
// replaces exactly one field. Nothing here is validated or persisted; the
// query engine absorbs whatever combination comes through.
type State struct {
	mu   sync.RWMutex
	spec model.FilterSpec
}

func New() *State {
	return &State{spec: defaults}
}

// Spec returns a copy of the current filter selections.
func (s *State) Spec() model.FilterSpec {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.spec
}

// SetCategory selects a category; the zero value clears it.
func (s *State) SetCategory(category model.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spec.Category = category
}

// SetPriceRange bounds the price; nil clears it.
func (s *State) SetPriceRange(priceRange *model.PriceRange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spec.PriceRange = priceRange
}

func (s *State) SetSortBy(sortBy model.SortOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spec.SortBy = sortBy
}

// SetSearch sets the free-text term; the empty string clears it.
func (s *State) SetSearch(search string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spec.Search = search
}

// Reset restores every field to its documented default.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spec = defaults
}
