package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/saishaa-studio/storefront/internal/shop/model"
)

// Provider serves the catalog. It fronts the static mock data today and is
// shaped so a real backend can slot in behind the same methods. Lookups that
// find nothing report ok=false or an empty slice, never an error.
type Provider struct {
	products     []model.Product
	categories   []model.CategoryInfo
	latency      time.Duration
	pageSize     int
	relatedLimit int
}

// NewProvider builds a provider over the mock catalog.
func NewProvider(cfg model.CatalogConfig) *Provider {
	pageSize := cfg.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	relatedLimit := cfg.Related.Limit
	if relatedLimit < 1 {
		relatedLimit = 4
	}
	return &Provider{
		products:     MockProducts,
		categories:   MockCategories,
		latency:      time.Duration(cfg.LatencyMS) * time.Millisecond,
		pageSize:     pageSize,
		relatedLimit: relatedLimit,
	}
}

// pause simulates backend latency. It reports false when the context is
// cancelled before the delay elapses, in which case callers return empty.
func (p *Provider) pause(ctx context.Context) bool {
	if p.latency <= 0 {
		return ctx.Err() == nil
	}
	select {
	case <-time.After(p.latency):
		return true
	case <-ctx.Done():
		return false
	}
}

// ListProducts runs the query pipeline over the full catalog. A pageSize of
// zero or less uses the configured default.
func (p *Provider) ListProducts(ctx context.Context, filters model.FilterSpec, page, pageSize int) model.ProductPage {
	if pageSize < 1 {
		pageSize = p.pageSize
	}
	if !p.pause(ctx) {
		return model.ProductPage{Data: []model.Product{}, Page: page, PageSize: pageSize}
	}
	return Query(p.products, filters, page, pageSize)
}

// FeaturedProducts returns the products flagged for the homepage.
func (p *Provider) FeaturedProducts(ctx context.Context) []model.Product {
	if !p.pause(ctx) {
		return []model.Product{}
	}
	featured := []model.Product{}
	for _, prod := range p.products {
		if prod.Featured {
			featured = append(featured, prod)
		}
	}
	return featured
}

func (p *Provider) ProductBySlug(ctx context.Context, slug string) (model.Product, bool) {
	if !p.pause(ctx) {
		return model.Product{}, false
	}
	for _, prod := range p.products {
		if prod.Slug == slug {
			return prod, true
		}
	}
	return model.Product{}, false
}

func (p *Provider) ProductByID(ctx context.Context, id string) (model.Product, bool) {
	if !p.pause(ctx) {
		return model.Product{}, false
	}
	for _, prod := range p.products {
		if prod.ID == id {
			return prod, true
		}
	}
	return model.Product{}, false
}

func (p *Provider) Categories(ctx context.Context) []model.CategoryInfo {
	if !p.pause(ctx) {
		return []model.CategoryInfo{}
	}
	out := make([]model.CategoryInfo, len(p.categories))
	copy(out, p.categories)
	return out
}

func (p *Provider) CategoryByID(ctx context.Context, id model.Category) (model.CategoryInfo, bool) {
	if !p.pause(ctx) {
		return model.CategoryInfo{}, false
	}
	for _, c := range p.categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.CategoryInfo{}, false
}

// RelatedProducts returns up to limit products sharing the category of
// productID, excluding the product itself. A limit of zero or less uses the
// configured default. Unknown ids yield an empty slice.
func (p *Provider) RelatedProducts(ctx context.Context, productID string, limit int) []model.Product {
	if limit < 1 {
		limit = p.relatedLimit
	}
	product, ok := p.ProductByID(ctx, productID)
	if !ok {
		return []model.Product{}
	}

	related := []model.Product{}
	for _, prod := range p.products {
		if prod.ID == productID || prod.Category != product.Category {
			continue
		}
		related = append(related, prod)
		if len(related) == limit {
			break
		}
	}
	return related
}

// SearchProducts matches term case-insensitively against product names and
// tags. This is the quick search box; ListProducts' search filter also
// covers descriptions.
func (p *Provider) SearchProducts(ctx context.Context, term string) []model.Product {
	if !p.pause(ctx) {
		return []model.Product{}
	}
	needle := strings.ToLower(term)

	matched := []model.Product{}
	for _, prod := range p.products {
		if strings.Contains(strings.ToLower(prod.Name), needle) || tagMatch(prod.Tags, needle) {
			matched = append(matched, prod)
		}
	}
	return matched
}

func tagMatch(tags []string, needle string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
