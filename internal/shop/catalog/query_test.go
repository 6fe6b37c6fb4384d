package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saishaa-studio/storefront/internal/shop/model"
)

// Fixture: A is the cheapest and oldest, B the priciest and newest.
var queryFixture = []model.Product{
	{ID: "A", Slug: "a", Name: "Product A", Price: 100, Category: model.CategoryResin, CreatedAt: day(2024, time.March, 1)},
	{ID: "B", Slug: "b", Name: "Product B", Price: 300, Category: model.CategoryResin, CreatedAt: day(2024, time.March, 3)},
	{ID: "C", Slug: "c", Name: "Product C", Price: 200, Category: model.CategoryResin, CreatedAt: day(2024, time.March, 2)},
}

func ids(products []model.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestQuerySortOrders(t *testing.T) {
	tests := []struct {
		name   string
		sortBy model.SortOrder
		want   []string
	}{
		{name: "price low", sortBy: model.SortPriceLow, want: []string{"A", "C", "B"}},
		{name: "price high", sortBy: model.SortPriceHigh, want: []string{"B", "C", "A"}},
		{name: "newest", sortBy: model.SortNewest, want: []string{"B", "C", "A"}},
		{name: "default is newest", sortBy: "", want: []string{"B", "C", "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Query(queryFixture, model.FilterSpec{SortBy: tt.sortBy}, 1, 12)
			assert.Equal(t, tt.want, ids(page.Data))
		})
	}
}

func TestQueryPopularKeepsRelativeOrder(t *testing.T) {
	products := []model.Product{
		{ID: "1", Featured: false},
		{ID: "2", Featured: true},
		{ID: "3", Featured: false},
		{ID: "4", Featured: true},
	}

	page := Query(products, model.FilterSpec{SortBy: model.SortPopular}, 1, 12)
	assert.Equal(t, []string{"2", "4", "1", "3"}, ids(page.Data))
}

func TestQueryPriceRange(t *testing.T) {
	spec := model.FilterSpec{PriceRange: &model.PriceRange{Min: 150, Max: 250}}

	page := Query(queryFixture, spec, 1, 12)
	assert.Equal(t, []string{"C"}, ids(page.Data))
	assert.Equal(t, 1, page.Total)
}

func TestQueryPriceRangeBoundsAreInclusive(t *testing.T) {
	spec := model.FilterSpec{
		PriceRange: &model.PriceRange{Min: 100, Max: 300},
		SortBy:     model.SortPriceLow,
	}

	page := Query(queryFixture, spec, 1, 12)
	assert.Equal(t, []string{"A", "C", "B"}, ids(page.Data))
}

func TestQueryInvertedPriceRangeMatchesNothing(t *testing.T) {
	spec := model.FilterSpec{PriceRange: &model.PriceRange{Min: 300, Max: 100}}

	page := Query(queryFixture, spec, 1, 12)
	assert.Empty(t, page.Data)
	assert.Zero(t, page.Total)
	assert.False(t, page.HasMore)
}

func TestQueryCategoryFilter(t *testing.T) {
	products := append([]model.Product{}, queryFixture...)
	products = append(products, model.Product{ID: "D", Category: model.CategoryCandles, Price: 50})

	page := Query(products, model.FilterSpec{Category: model.CategoryCandles}, 1, 12)
	assert.Equal(t, []string{"D"}, ids(page.Data))
}

func TestQueryUnknownCategoryMatchesNothing(t *testing.T) {
	page := Query(queryFixture, model.FilterSpec{Category: "pottery"}, 1, 12)
	assert.Empty(t, page.Data)
	assert.Zero(t, page.Total)
}

func TestQuerySearchMatching(t *testing.T) {
	products := []model.Product{
		{ID: "1", Name: "Ocean Ring", Description: "blue waves", Tags: []string{"bestseller"}},
		{ID: "2", Name: "Candle", Description: "warm vanilla glow"},
		{ID: "3", Name: "Bookmark", Description: "pressed flowers"},
	}

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "tag substring, case-insensitive", search: "BEST", want: []string{"1"}},
		{name: "name match", search: "ocean", want: []string{"1"}},
		{name: "description match", search: "VANILLA", want: []string{"2"}},
		{name: "no hit", search: "ceramic", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Query(products, model.FilterSpec{Search: tt.search}, 1, 12)
			assert.Equal(t, tt.want, ids(page.Data))
		})
	}
}

func TestQueryPaginationPartitions(t *testing.T) {
	// Two pages of two must cover the three resin products with no overlap
	// and no gap.
	spec := model.FilterSpec{SortBy: model.SortPriceLow}

	first := Query(queryFixture, spec, 1, 2)
	require.Equal(t, []string{"A", "C"}, ids(first.Data))
	assert.Equal(t, 3, first.Total)
	assert.True(t, first.HasMore)

	second := Query(queryFixture, spec, 2, 2)
	require.Equal(t, []string{"B"}, ids(second.Data))
	assert.Equal(t, 3, second.Total)
	assert.False(t, second.HasMore)
}

func TestQueryPageBeyondLast(t *testing.T) {
	page := Query(queryFixture, model.FilterSpec{}, 5, 2)
	assert.Empty(t, page.Data)
	assert.Equal(t, 3, page.Total)
	assert.False(t, page.HasMore)
}

func TestQueryEmptyCatalog(t *testing.T) {
	page := Query(nil, model.FilterSpec{}, 1, 12)
	assert.Empty(t, page.Data)
	assert.Zero(t, page.Total)
	assert.False(t, page.HasMore)
}

func TestQueryDefaultsPageAndSize(t *testing.T) {
	page := Query(queryFixture, model.FilterSpec{}, 0, 0)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, DefaultPageSize, page.PageSize)
	assert.Len(t, page.Data, 3)
}

func TestQueryFilterOrderSearchThenPrice(t *testing.T) {
	// Search narrows before the price filter; both must agree for a hit.
	products := []model.Product{
		{ID: "1", Name: "Ring", Price: 100},
		{ID: "2", Name: "Ring Deluxe", Price: 900},
	}
	spec := model.FilterSpec{
		Search:     "ring",
		PriceRange: &model.PriceRange{Min: 0, Max: 500},
	}

	page := Query(products, spec, 1, 12)
	assert.Equal(t, []string{"1"}, ids(page.Data))
}
