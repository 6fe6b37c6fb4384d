package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	errx "github.com/saishaa-studio/storefront/internal/core/error"
	"github.com/saishaa-studio/storefront/internal/shop/model"
	logx "github.com/saishaa-studio/storefront/pkg/logger"
)

type RedisCartRepository struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisCartRepository(rdb redis.Cmdable, ttl time.Duration) *RedisCartRepository {
	return &RedisCartRepository{rdb: rdb, ttl: ttl}
}

func (r *RedisCartRepository) cartKey(cartID string) string {
	return fmt.Sprintf("saishaa:cart:%s", cartID)
}

func (r *RedisCartRepository) Save(ctx context.Context, cartID string, items []model.CartItem) error {
	b, err := marshalRecord(items)
	if err != nil {
		logx.Error().Err(err).Str("cartID", cartID).Msg("failed to marshal cart")
		return fmt.Errorf("marshal cart: %w", err)
	}
	key := r.cartKey(cartID)

	if err := r.rdb.Set(ctx, key, b, r.ttl).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to write cart to redis")
		return errx.WrapRedis(err)
	}
	return nil
}

func (r *RedisCartRepository) Load(ctx context.Context, cartID string) ([]model.CartItem, error) {
	key := r.cartKey(cartID)

	raw, err := r.rdb.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return []model.CartItem{}, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to load cart from redis")
		return nil, errx.WrapRedis(err)
	}

	items, err := unmarshalRecord([]byte(raw))
	if err != nil {
		logx.Error().Err(err).Str("cartID", cartID).Msg("failed to unmarshal cart")
		return nil, fmt.Errorf("unmarshal cart: %w", err)
	}
	return items, nil
}

func (r *RedisCartRepository) Clear(ctx context.Context, cartID string) error {
	key := r.cartKey(cartID)
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to delete cart from redis")
		return errx.WrapRedis(err)
	}
	return nil
}

var _ model.CartRepository = (*RedisCartRepository)(nil)
