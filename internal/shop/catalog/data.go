package catalog

import (
	"time"

	"github.com/saishaa-studio/storefront/internal/shop/model"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// MockProducts is the static catalog the provider serves until a real
// backend replaces it.
var MockProducts = []model.Product{
	{
		ID:             "1",
		Name:           "Ocean Wave Resin Ring",
		Slug:           "ocean-wave-resin-ring",
		Description:    "A stunning handcrafted resin ring featuring mesmerizing ocean wave patterns. Each piece is unique with swirling blues and whites that capture the essence of the sea.",
		Price:          899,
		CompareAtPrice: 1199,
		Category:       model.CategoryResin,
		Images:         []string{"/products/resin-ring-1.jpg"},
		Tags:           []string{"ring", "ocean", "blue", "bestseller"},
		Featured:       true,
		CreatedAt:      day(2024, time.January, 15),
		Stock:          25,
		Options: []model.ProductOption{
			{Name: "Size", Values: []string{"5", "6", "7", "8", "9"}},
		},
	},
	{
		ID:          "2",
		Name:        "Galaxy Swirl Resin Band",
		Slug:        "galaxy-swirl-resin-band",
		Description: "A beautiful resin band with deep purple and gold galaxy patterns. Perfect for those who love celestial aesthetics.",
		Price:       749,
		Category:    model.CategoryResin,
		Images:      []string{"/products/resin-band-1.jpg"},
		Tags:        []string{"band", "galaxy", "purple", "gold"},
		Featured:    true,
		CreatedAt:   day(2024, time.January, 20),
		Stock:       30,
		Options: []model.ProductOption{
			{Name: "Size", Values: []string{"S", "M", "L"}},
		},
	},
	{
		ID:          "3",
		Name:        "Rose Garden Resin Bangle",
		Slug:        "rose-garden-resin-bangle",
		Description: "Delicate dried rose petals suspended in crystal-clear resin. A romantic piece that brings nature to your wrist.",
		Price:       1299,
		Category:    model.CategoryResin,
		Images:      []string{"/products/resin-bangle-1.jpg"},
		Tags:        []string{"bangle", "flowers", "romantic", "gift"},
		Featured:    false,
		CreatedAt:   day(2024, time.February, 1),
		Stock:       15,
	},
	{
		ID:          "4",
		Name:        "Teddy Bear Soy Candle",
		Slug:        "teddy-bear-soy-candle",
		Description: "An adorable teddy bear shaped candle made from 100% natural soy wax. Scented with warm vanilla and honey.",
		Price:       599,
		Category:    model.CategoryCandles,
		Images:      []string{"/products/candle-bear-1.jpg"},
		Tags:        []string{"candle", "bear", "vanilla", "gift", "cute"},
		Featured:    true,
		CreatedAt:   day(2024, time.January, 10),
		Stock:       40,
		Options: []model.ProductOption{
			{Name: "Scent", Values: []string{"Vanilla Honey", "Lavender", "Cinnamon"}},
		},
	},
	{
		ID:             "5",
		Name:           "Heart Pillar Candle Set",
		Slug:           "heart-pillar-candle-set",
		Description:    "A set of three heart-shaped pillar candles in graduating sizes. Perfect for creating a romantic ambiance.",
		Price:          849,
		CompareAtPrice: 999,
		Category:       model.CategoryCandles,
		Images:         []string{"/products/candle-heart-1.jpg"},
		Tags:           []string{"candle", "heart", "set", "romantic", "bestseller"},
		Featured:       true,
		CreatedAt:      day(2024, time.January, 25),
		Stock:          20,
		Options: []model.ProductOption{
			{Name: "Color", Values: []string{"Pink", "Red", "White", "Lavender"}},
		},
	},
	{
		ID:          "6",
		Name:        "Geometric Crystal Candle",
		Slug:        "geometric-crystal-candle",
		Description: "Modern geometric shaped candle that resembles a crystal formation. Unscented for those with sensitivities.",
		Price:       699,
		Category:    model.CategoryCandles,
		Images:      []string{"/products/candle-geo-1.jpg"},
		Tags:        []string{"candle", "geometric", "modern", "unscented"},
		Featured:    false,
		CreatedAt:   day(2024, time.February, 5),
		Stock:       35,
	},
	{
		ID:          "7",
		Name:        "Custom Photo Resin Frame",
		Slug:        "custom-photo-resin-frame",
		Description: "Preserve your precious memories in a beautiful resin frame with dried flowers. Custom-made with your photo.",
		Price:       1499,
		Category:    model.CategoryCrafts,
		Images:      []string{"/products/frame-1.jpg"},
		Tags:        []string{"frame", "custom", "photo", "flowers", "gift"},
		Featured:    true,
		CreatedAt:   day(2024, time.January, 5),
		Stock:       10,
		Options: []model.ProductOption{
			{Name: "Size", Values: []string{"4x6", "5x7", "8x10"}},
			{Name: "Flower Color", Values: []string{"Pink", "Blue", "Mixed"}},
		},
	},
	{
		ID:          "8",
		Name:        "Macramé Wall Hanging",
		Slug:        "macrame-wall-hanging",
		Description: "Handwoven macramé wall hanging with intricate patterns. Adds a bohemian touch to any room.",
		Price:       1199,
		Category:    model.CategoryCrafts,
		Images:      []string{"/products/macrame-1.jpg"},
		Tags:        []string{"macrame", "wall art", "boho", "handwoven"},
		Featured:    false,
		CreatedAt:   day(2024, time.February, 10),
		Stock:       8,
		Options: []model.ProductOption{
			{Name: "Size", Values: []string{"Small", "Medium", "Large"}},
		},
	},
	{
		ID:          "9",
		Name:        "Resin Coaster Set",
		Slug:        "resin-coaster-set",
		Description: "Set of 4 beautiful resin coasters with gold leaf accents. Protects your surfaces in style.",
		Price:       999,
		Category:    model.CategoryCrafts,
		Images:      []string{"/products/coasters-1.jpg"},
		Tags:        []string{"coasters", "resin", "gold", "home decor", "set"},
		Featured:    true,
		CreatedAt:   day(2024, time.January, 30),
		Stock:       22,
		Options: []model.ProductOption{
			{Name: "Color Theme", Values: []string{"Ocean Blue", "Forest Green", "Sunset Orange", "Galaxy Purple"}},
		},
	},
	{
		ID:          "10",
		Name:        "Pressed Flower Bookmark",
		Slug:        "pressed-flower-bookmark",
		Description: "Delicate pressed flowers laminated in a beautiful bookmark. A thoughtful gift for book lovers.",
		Price:       299,
		Category:    model.CategoryCrafts,
		Images:      []string{"/products/bookmark-1.jpg"},
		Tags:        []string{"bookmark", "flowers", "gift", "affordable"},
		Featured:    false,
		CreatedAt:   day(2024, time.February, 15),
		Stock:       50,
	},
}

// MockCategories describes the three browsable sections of the storefront.
var MockCategories = []model.CategoryInfo{
	{
		ID:          model.CategoryResin,
		Name:        "Resin Jewelry",
		Description: "Handcrafted resin rings, bands, and bangles with unique designs",
		Image:       "/categories/resin.jpg",
	},
	{
		ID:          model.CategoryCandles,
		Name:        "Decorative Candles",
		Description: "Artisan candles in adorable shapes and scents",
		Image:       "/categories/candles.jpg",
	},
	{
		ID:          model.CategoryCrafts,
		Name:        "Handmade Crafts",
		Description: "Custom frames, home decor, and unique artisan creations",
		Image:       "/categories/crafts.jpg",
	},
}
