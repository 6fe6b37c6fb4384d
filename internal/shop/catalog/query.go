package catalog

import (
	"sort"
	"strings"

	"github.com/saishaa-studio/storefront/internal/shop/model"
)

// DefaultPageSize is the catalog page size when the caller passes none.
const DefaultPageSize = 12

// Query filters, orders and paginates products. The pipeline order is fixed:
// category, search, price range, sort, then pagination. Malformed filters
// (inverted ranges, unknown categories) degrade to empty results and never
// error.
func Query(products []model.Product, filters model.FilterSpec, page, pageSize int) model.ProductPage {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if filters.Category != "" && p.Category != filters.Category {
			continue
		}
		if filters.Search != "" && !matchesSearch(p, filters.Search) {
			continue
		}
		if pr := filters.PriceRange; pr != nil && (p.Price < pr.Min || p.Price > pr.Max) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, filters.SortBy)

	start := (page - 1) * pageSize
	end := start + pageSize
	total := len(filtered)

	var data []model.Product
	if start < total {
		if end > total {
			end = total
		}
		data = filtered[start:end]
	} else {
		data = []model.Product{}
	}

	return model.ProductPage{
		Data:     data,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		HasMore:  end < total,
	}
}

// matchesSearch does a case-insensitive substring match against the product
// name, description and tags.
func matchesSearch(p model.Product, term string) bool {
	needle := strings.ToLower(term)
	if strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func sortProducts(products []model.Product, order model.SortOrder) {
	switch order {
	case model.SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case model.SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case model.SortPopular:
		// Featured first, original relative order preserved within groups.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Featured && !products[j].Featured
		})
	default: // model.SortNewest
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}
}
