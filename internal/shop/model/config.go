package model

// ================ Config ================

// CartConfig selects the cart identity and its persistence backend.
type CartConfig struct {
	ID      string `envconfig:"CART_ID" default:"default"`
	Backend string `envconfig:"CART_BACKEND" default:"memory"` // memory | redis | bolt
	TTL     string `envconfig:"CART_TTL" default:"0"`
	Bolt    struct {
		Path string `envconfig:"CART_BOLT_PATH" default:"storefront.db"`
	}
}

// CatalogConfig tunes the catalog provider.
type CatalogConfig struct {
	PageSize  int `envconfig:"CATALOG_PAGE_SIZE" default:"12"`
	LatencyMS int `envconfig:"CATALOG_LATENCY_MS" default:"0"`
	Related   struct {
		Limit int `envconfig:"CATALOG_RELATED_LIMIT" default:"4"`
	}
}
