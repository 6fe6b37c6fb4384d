package repo

import (
	"context"
	"sync"

	"github.com/saishaa-studio/storefront/internal/shop/model"
)

// MemoryCartRepository keeps carts in process memory. It is the default
// backend when no durable store is configured, and the one tests use.
type MemoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string][]model.CartItem
}

func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{
		carts: make(map[string][]model.CartItem),
	}
}

func (r *MemoryCartRepository) Save(ctx context.Context, cartID string, items []model.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make([]model.CartItem, len(items))
	copy(snapshot, items)
	r.carts[cartID] = snapshot
	return nil
}

func (r *MemoryCartRepository) Load(ctx context.Context, cartID string) ([]model.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.carts[cartID]
	if !ok {
		return []model.CartItem{}, nil
	}
	items := make([]model.CartItem, len(stored))
	copy(items, stored)
	return items, nil
}

func (r *MemoryCartRepository) Clear(ctx context.Context, cartID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, cartID)
	return nil
}

var _ model.CartRepository = (*MemoryCartRepository)(nil)
