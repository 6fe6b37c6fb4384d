package repo

import (
	"context"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	errx "github.com/saishaa-studio/storefront/internal/core/error"
	"github.com/saishaa-studio/storefront/internal/shop/model"
	logx "github.com/saishaa-studio/storefront/pkg/logger"
)

var cartBucket = []byte("carts")

// BoltCartRepository keeps carts in a local bbolt file, one JSON record per
// cart id. It is the offline counterpart of the Redis repository.
type BoltCartRepository struct {
	db *bolt.DB
}

func NewBoltCartRepository(path string) (*BoltCartRepository, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errx.WrapStorage(err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(cartBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, errx.WrapStorage(err)
	}
	return &BoltCartRepository{db: db}, nil
}

// Close releases the underlying file.
func (r *BoltCartRepository) Close() error {
	return r.db.Close()
}

func (r *BoltCartRepository) Save(ctx context.Context, cartID string, items []model.CartItem) error {
	b, err := marshalRecord(items)
	if err != nil {
		logx.Error().Err(err).Str("cartID", cartID).Msg("failed to marshal cart")
		return fmt.Errorf("marshal cart: %w", err)
	}
	err = r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(cartBucket).Put([]byte(cartID), b)
	})
	if err != nil {
		logx.Error().Err(err).Str("cartID", cartID).Msg("failed to write cart to bolt")
		return errx.WrapStorage(err)
	}
	return nil
}

func (r *BoltCartRepository) Load(ctx context.Context, cartID string) ([]model.CartItem, error) {
	var raw []byte
	err := r.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(cartBucket).Get([]byte(cartID)); v != nil {
			raw = append(raw, v...)
		}
		return nil
	})
	if err != nil {
		logx.Error().Err(err).Str("cartID", cartID).Msg("failed to load cart from bolt")
		return nil, errx.WrapStorage(err)
	}
	if raw == nil {
		return []model.CartItem{}, nil
	}
	items, err := unmarshalRecord(raw)
	if err != nil {
		logx.Error().Err(err).Str("cartID", cartID).Msg("failed to unmarshal cart")
		return nil, fmt.Errorf("unmarshal cart: %w", err)
	}
	return items, nil
}

func (r *BoltCartRepository) Clear(ctx context.Context, cartID string) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(cartBucket).Delete([]byte(cartID))
	})
	if err != nil {
		logx.Error().Err(err).Str("cartID", cartID).Msg("failed to delete cart from bolt")
		return errx.WrapStorage(err)
	}
	return nil
}

var _ model.CartRepository = (*BoltCartRepository)(nil)
