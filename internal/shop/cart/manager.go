package cart

import (
	"context"
	"sync"

	"github.com/saishaa-studio/storefront/internal/shop/model"
	logx "github.com/saishaa-studio/storefront/pkg/logger"
)

// Manager owns the authoritative list of cart line items plus the session
// flags the storefront binds to (drawer visibility, add pulse). Mutations
// are atomic with respect to readers, and each one is written through to the
// injected repository; storage failures are logged and swallowed so the
// in-memory cart stays usable for the session.
type Manager struct {
	mu     sync.RWMutex
	cartID string
	repo   model.CartRepository

	items      []model.CartItem
	drawerOpen bool
	addPulse   uint64
}

// NewManager builds a cart bound to cartID and restores any previously
// persisted item list. Drawer state and the add pulse always start fresh.
// A load failure falls back to an empty cart.
func NewManager(ctx context.Context, cartID string, repo model.CartRepository) *Manager {
	m := &Manager{cartID: cartID, repo: repo}

	items, err := repo.Load(ctx, cartID)
	if err != nil {
		logx.Warn().Err(err).Str("cartID", cartID).Msg("could not restore cart, starting empty")
		items = nil
	}
	m.items = items
	return m
}

// persist writes the current item list through to storage. Callers hold mu.
func (m *Manager) persist(ctx context.Context) {
	if err := m.repo.Save(ctx, m.cartID, m.items); err != nil {
		logx.Warn().Err(err).Str("cartID", m.cartID).Msg("cart save failed, keeping in-memory state")
	}
}

// AddItem puts quantity units of product into the cart, merging into the
// existing line when the product is already present. Stock gating is the
// caller's responsibility; the manager accepts whatever it is given. Adding
// bumps the add pulse and opens the drawer.
func (m *Manager) AddItem(ctx context.Context, product model.Product, quantity int, selectedOptions map[string]string) {
	if quantity < 1 {
		quantity = 1
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	merged := false
	for i := range m.items {
		if m.items[i].Product.ID == product.ID {
			m.items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		m.items = append(m.items, model.CartItem{
			Product:         product,
			Quantity:        quantity,
			SelectedOptions: selectedOptions,
		})
	}

	m.addPulse++
	m.drawerOpen = true
	m.persist(ctx)
}

// RemoveItem drops the line for productID. Absent ids are a no-op.
func (m *Manager) RemoveItem(ctx context.Context, productID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeLocked(ctx, productID)
}

func (m *Manager) removeLocked(ctx context.Context, productID string) {
	kept := m.items[:0]
	for _, item := range m.items {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(m.items) {
		return
	}
	m.items = kept
	m.persist(ctx)
}

// UpdateQuantity sets the line for productID to the given absolute quantity.
// A quantity of zero or less removes the line. Absent ids are a no-op.
func (m *Manager) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if quantity <= 0 {
		m.removeLocked(ctx, productID)
		return
	}

	for i := range m.items {
		if m.items[i].Product.ID == productID {
			m.items[i].Quantity = quantity
			m.persist(ctx)
			return
		}
	}
}

// ClearCart empties the item list unconditionally.
func (m *Manager) ClearCart(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = nil
	m.persist(ctx)
}

func (m *Manager) OpenDrawer() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drawerOpen = true
}

func (m *Manager) CloseDrawer() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drawerOpen = false
}

func (m *Manager) ToggleDrawer() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drawerOpen = !m.drawerOpen
}

// IsDrawerOpen reports the drawer visibility flag.
func (m *Manager) IsDrawerOpen() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.drawerOpen
}

// AddPulse returns the change-detection token bumped by every AddItem. Only
// change matters; the absolute value carries no meaning.
func (m *Manager) AddPulse() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.addPulse
}

// Items returns a snapshot copy of the current line items in insertion order.
func (m *Manager) Items() []model.CartItem {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]model.CartItem, len(m.items))
	copy(items, m.items)
	return items
}

// ItemByID returns the line for productID, with ok reporting presence.
func (m *Manager) ItemByID(productID string) (model.CartItem, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, item := range m.items {
		if item.Product.ID == productID {
			return item, true
		}
	}
	return model.CartItem{}, false
}

// TotalItems is the sum of all line quantities, recomputed on every call.
func (m *Manager) TotalItems() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0
	for _, item := range m.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of price*quantity over all lines, recomputed on
// every call so it can never drift from the item list.
func (m *Manager) TotalPrice() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var total int64
	for _, item := range m.items {
		total += item.Subtotal()
	}
	return total
}
