package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/saishaa-studio/storefront/internal/core"
	"github.com/saishaa-studio/storefront/internal/shop/cart"
	"github.com/saishaa-studio/storefront/internal/shop/catalog"
	"github.com/saishaa-studio/storefront/internal/shop/checkout"
	"github.com/saishaa-studio/storefront/internal/shop/filter"
	"github.com/saishaa-studio/storefront/internal/shop/model"
	"github.com/saishaa-studio/storefront/internal/shop/repo"
	logx "github.com/saishaa-studio/storefront/pkg/logger"
	pkgredis "github.com/saishaa-studio/storefront/pkg/redis"
)

// AppConfig defines all configurable parameters for the storefront demo,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"APP_ENV" default:"development"`

	// Infrastructure
	Redis pkgredis.Config

	// Shop configs
	Cart    model.CartConfig
	Catalog model.CatalogConfig
}

// buildRepository picks the cart backend from config. The returned cleanup
// closes whatever the backend opened.
func buildRepository(cfg AppConfig) (model.CartRepository, func(), error) {
	switch cfg.Cart.Backend {
	case "redis":
		ttl, err := time.ParseDuration(cfg.Cart.TTL)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid CART_TTL %q: %w", cfg.Cart.TTL, err)
		}
		rdb, err := cfg.Redis.New()
		if err != nil {
			return nil, nil, err
		}
		return repo.NewRedisCartRepository(rdb, ttl), func() { rdb.Close() }, nil
	case "bolt":
		r, err := repo.NewBoltCartRepository(cfg.Cart.Bolt.Path)
		if err != nil {
			return nil, nil, err
		}
		return r, func() { r.Close() }, nil
	default:
		return repo.NewMemoryCartRepository(), func() {}, nil
	}
}

func main() {
	ctx := context.Background()

	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	logx.Init(logx.LoggerOpts{Environment: core.ParseEnvironment(cfg.Environment)})

	cartRepo, cleanup, err := buildRepository(cfg)
	if err != nil {
		log.Fatalf("Failed to initialise cart backend %q: %v", cfg.Cart.Backend, err)
	}
	defer cleanup()
	logx.Info().Str("backend", cfg.Cart.Backend).Msg("cart backend ready")

	provider := catalog.NewProvider(cfg.Catalog)
	basket := cart.NewManager(ctx, cfg.Cart.ID, cartRepo)
	filters := filter.New()

	// ====================================================
	// Scripted storefront walkthrough.

	fmt.Println("Categories:")
	for _, c := range provider.Categories(ctx) {
		fmt.Printf("  %-8s %s\n", c.ID, c.Name)
	}

	filters.SetCategory(model.CategoryResin)
	filters.SetSortBy(model.SortPriceLow)
	page := provider.ListProducts(ctx, filters.Spec(), 1, 0)
	fmt.Printf("\nResin pieces, cheapest first (%d total):\n", page.Total)
	for _, p := range page.Data {
		note := ""
		if p.OnSale() {
			note = fmt.Sprintf("  (save %d%%)", p.DiscountPercent())
		}
		fmt.Printf("  %-26s %s%s\n", p.Name, model.FormatPrice(p.Price), note)
	}

	filters.Reset()
	filters.SetSearch("bestseller")
	hits := provider.ListProducts(ctx, filters.Spec(), 1, 0)
	fmt.Printf("\nBestsellers: %d found\n", hits.Total)

	// Fill the basket. Stock gating happens here, at the call site.
	if ring, ok := provider.ProductBySlug(ctx, "ocean-wave-resin-ring"); ok && ring.InStock() {
		basket.AddItem(ctx, ring, 1, map[string]string{"Size": "7"})
	}
	if candle, ok := provider.ProductBySlug(ctx, "teddy-bear-soy-candle"); ok && candle.InStock() {
		basket.AddItem(ctx, candle, 2, map[string]string{"Scent": "Lavender"})
		basket.UpdateQuantity(ctx, candle.ID, 1)
	}

	fmt.Printf("\nCart (%d items):\n", basket.TotalItems())
	for _, item := range basket.Items() {
		fmt.Printf("  %dx %-24s %s\n", item.Quantity, item.Product.Name, model.FormatPrice(item.Subtotal()))
	}

	quote := checkout.QuoteShipping(basket.TotalPrice())
	fmt.Printf("\nSubtotal: %s\n", model.FormatPrice(quote.Subtotal))
	if quote.Free {
		fmt.Println("Shipping: Free")
	} else {
		fmt.Printf("Shipping: %s (add %s more for free shipping)\n",
			model.FormatPrice(quote.Cost), model.FormatPrice(quote.AmountToFree))
	}
	fmt.Printf("Total:    %s\n", model.FormatPrice(quote.Total()))

	if related := provider.RelatedProducts(ctx, "1", 0); len(related) > 0 {
		fmt.Println("\nYou may also like:")
		for _, p := range related {
			fmt.Printf("  %-26s %s\n", p.Name, model.FormatPrice(p.Price))
		}
	}
}
