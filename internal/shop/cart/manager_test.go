package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saishaa-studio/storefront/internal/shop/model"
	"github.com/saishaa-studio/storefront/internal/shop/repo"
)

var (
	ring = model.Product{
		ID:       "p1",
		Slug:     "resin-ring",
		Name:     "Resin Ring",
		Price:    899,
		Category: model.CategoryResin,
		Stock:    10,
	}
	candle = model.Product{
		ID:       "p2",
		Slug:     "soy-candle",
		Name:     "Soy Candle",
		Price:    599,
		Category: model.CategoryCandles,
		Stock:    5,
	}
	soldOut = model.Product{
		ID:       "p3",
		Slug:     "sold-out-frame",
		Name:     "Sold Out Frame",
		Price:    1499,
		Category: model.CategoryCrafts,
		Stock:    0,
	}
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(context.Background(), "test-cart", repo.NewMemoryCartRepository())
}

func TestAddItemMergesExistingLine(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)

	m.AddItem(ctx, ring, 2, nil)
	m.AddItem(ctx, ring, 3, nil)

	items := m.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].Product.ID)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddItemPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)

	m.AddItem(ctx, ring, 1, map[string]string{"Size": "7"})
	m.AddItem(ctx, candle, 1, nil)
	m.AddItem(ctx, ring, 1, nil)

	items := m.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].Product.ID)
	assert.Equal(t, "p2", items[1].Product.ID)
	assert.Equal(t, map[string]string{"Size": "7"}, items[0].SelectedOptions)
}

func TestAddItemBumpsPulseAndOpensDrawer(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)

	require.Zero(t, m.AddPulse())
	require.False(t, m.IsDrawerOpen())

	m.AddItem(ctx, ring, 1, nil)
	first := m.AddPulse()
	assert.NotZero(t, first)
	assert.True(t, m.IsDrawerOpen())

	m.CloseDrawer()
	m.AddItem(ctx, ring, 1, nil)
	assert.NotEqual(t, first, m.AddPulse())
	assert.True(t, m.IsDrawerOpen())
}

func TestAddItemTrustsCallerOnStock(t *testing.T) {
	// Stock gating lives at the call site; the manager accepts a zero-stock
	// product without complaint.
	ctx := context.Background()
	m := newTestManager(t)

	m.AddItem(ctx, soldOut, 1, nil)

	_, ok := m.ItemByID("p3")
	assert.True(t, ok)
}

func TestRemoveItemAbsentIsNoOp(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)
	m.AddItem(ctx, ring, 2, nil)

	m.RemoveItem(ctx, "missing")

	items := m.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)
	m.AddItem(ctx, ring, 1, nil)
	m.AddItem(ctx, candle, 1, nil)

	m.RemoveItem(ctx, "p1")

	items := m.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].Product.ID)
}

func TestUpdateQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		wantLen  int
		wantQty  int
	}{
		{name: "absolute set", quantity: 7, wantLen: 1, wantQty: 7},
		{name: "zero removes", quantity: 0, wantLen: 0},
		{name: "negative removes", quantity: -5, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			m := newTestManager(t)
			m.AddItem(ctx, ring, 2, nil)

			m.UpdateQuantity(ctx, "p1", tt.quantity)

			items := m.Items()
			require.Len(t, items, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantQty, items[0].Quantity)
			}
		})
	}
}

func TestUpdateQuantityAbsentIsNoOp(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)
	m.AddItem(ctx, ring, 2, nil)

	m.UpdateQuantity(ctx, "missing", 9)

	items := m.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAggregatesRecomputedFromItems(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)

	m.AddItem(ctx, ring, 2, nil)   // 2 * 899
	m.AddItem(ctx, candle, 3, nil) // 3 * 599
	m.UpdateQuantity(ctx, "p2", 1) // 1 * 599
	m.RemoveItem(ctx, "missing")

	assert.Equal(t, 3, m.TotalItems())
	assert.Equal(t, int64(2*899+599), m.TotalPrice())

	m.ClearCart(ctx)
	assert.Zero(t, m.TotalItems())
	assert.Zero(t, m.TotalPrice())
}

func TestItemByIDNotFound(t *testing.T) {
	m := newTestManager(t)

	item, ok := m.ItemByID("nope")
	assert.False(t, ok)
	assert.Zero(t, item)
}

func TestDrawerFlags(t *testing.T) {
	m := newTestManager(t)

	assert.False(t, m.IsDrawerOpen())
	m.OpenDrawer()
	assert.True(t, m.IsDrawerOpen())
	m.ToggleDrawer()
	assert.False(t, m.IsDrawerOpen())
	m.ToggleDrawer()
	assert.True(t, m.IsDrawerOpen())
	m.CloseDrawer()
	assert.False(t, m.IsDrawerOpen())
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryCartRepository()

	first := NewManager(ctx, "round-trip", store)
	first.AddItem(ctx, ring, 2, map[string]string{"Size": "6"})
	first.AddItem(ctx, candle, 1, nil)
	first.OpenDrawer()

	restored := NewManager(ctx, "round-trip", store)
	assert.Equal(t, first.Items(), restored.Items())

	// Session state never survives a restart.
	assert.False(t, restored.IsDrawerOpen())
	assert.Zero(t, restored.AddPulse())
}

func TestCartsAreIsolatedByID(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryCartRepository()

	a := NewManager(ctx, "cart-a", store)
	a.AddItem(ctx, ring, 1, nil)

	b := NewManager(ctx, "cart-b", store)
	assert.Empty(t, b.Items())
}

// failingRepository errors on every operation, standing in for an
// unavailable backend.
type failingRepository struct{}

func (failingRepository) Save(ctx context.Context, cartID string, items []model.CartItem) error {
	return errors.New("storage unavailable")
}

func (failingRepository) Load(ctx context.Context, cartID string) ([]model.CartItem, error) {
	return nil, errors.New("storage unavailable")
}

func (failingRepository) Clear(ctx context.Context, cartID string) error {
	return errors.New("storage unavailable")
}

func TestStorageFailuresAreNonFatal(t *testing.T) {
	ctx := context.Background()
	m := NewManager(ctx, "doomed", failingRepository{})

	m.AddItem(ctx, ring, 2, nil)
	m.UpdateQuantity(ctx, "p1", 4)

	assert.Equal(t, 4, m.TotalItems())
	assert.Equal(t, int64(4*899), m.TotalPrice())
}
