package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wasteCollect/internal/domain"
	"wasteCollect/pkg/e"

	goredis "github.com/redis/go-redis/v9"
)

// AvailableCache stores the full list of AVAILABLE wastes, joined with their
// address coordinates, as one JSON value.
type AvailableCache struct {
	client *goredis.Client
	key    string
	genKey string
}

func NewAvailableCache(r *Redis) *AvailableCache {
	return &AvailableCache{
		client: r.Client,
		key:    AvailableWastesKey,
		genKey: AvailableGenerationKey,
	}
}

// GetAvailable returns e.ErrCacheMiss when the key is absent or expired. An
// empty list that was cached on purpose is a hit.
func (c *AvailableCache) GetAvailable(ctx context.Context) ([]domain.WasteWithLocation, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, e.ErrCacheMiss
		}
		return nil, fmt.Errorf("redis.AvailableCache.Get: %w", err)
	}

	var items []domain.WasteWithLocation
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("redis.AvailableCache.Decode: %w", err)
	}
	if items == nil {
		items = []domain.WasteWithLocation{}
	}

	return items, nil
}

// Generation returns the invalidation counter. A missing counter is 0.
func (c *AvailableCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, c.genKey).Int64()
	if err != nil && !errors.Is(err, goredis.Nil) {
		return 0, fmt.Errorf("redis.AvailableCache.Generation: %w", err)
	}
	return gen, nil
}

// SetAvailable writes items only while the generation still equals gen. The
// counter is watched, so an Invalidate racing with the write aborts it and
// the call returns e.ErrCacheStale.
func (c *AvailableCache) SetAvailable(ctx context.Context, items []domain.WasteWithLocation, gen int64, ttl time.Duration) error {
	if items == nil {
		items = []domain.WasteWithLocation{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}

	txf := func(tx *goredis.Tx) error {
		current, err := tx.Get(ctx, c.genKey).Int64()
		if err != nil && !errors.Is(err, goredis.Nil) {
			return err
		}
		if current != gen {
			return e.ErrCacheStale
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, c.key, b, ttl)
			return nil
		})
		return err
	}

	err = c.client.Watch(ctx, txf, c.genKey)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, e.ErrCacheStale), errors.Is(err, goredis.TxFailedErr):
		return fmt.Errorf("redis.AvailableCache.Set: %w", e.ErrCacheStale)
	default:
		return fmt.Errorf("redis.AvailableCache.Set: %w", err)
	}
}

// Invalidate drops the cached list and bumps the generation in one
// transaction, so the next read reloads and in-flight writers are refused.
func (c *AvailableCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Incr(ctx, c.genKey)
		pipe.Del(ctx, c.key)
		return nil
	})
	return err
}
