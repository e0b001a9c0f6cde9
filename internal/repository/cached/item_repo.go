// Package cached decorates an ItemRepository with read-through caching.
//
// The decorator enforces the coherence contract in one place instead of
// per-handler: reads go through the cache, every write invalidates both the
// aggregate list key and the per-item key, and any cache failure degrades to
// the underlying store rather than failing the request.
package cached

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/prn-tf/hunter-codex/internal/domain"
	"github.com/prn-tf/hunter-codex/internal/repository"
)

// ItemRepository wraps a base repository.ItemRepository with caching.
type ItemRepository struct {
	base   repository.ItemRepository
	cache  repository.Cache
	keys   repository.CacheKey
	ttl    time.Duration
	logger zerolog.Logger
}

// NewItemRepository creates a caching decorator around base.
// Cached snapshots expire after ttl even without explicit invalidation.
func NewItemRepository(base repository.ItemRepository, cache repository.Cache, ttl time.Duration, logger zerolog.Logger) *ItemRepository {
	return &ItemRepository{
		base:   base,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With().Str("component", "item_cache").Logger(),
	}
}

// GetByID retrieves an item, serving from cache when possible.
func (r *ItemRepository) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	key := r.keys.Item(id)

	if data, err := r.cache.Get(ctx, key); err == nil {
		item := &domain.Item{}
		if err := json.Unmarshal(data, item); err == nil {
			return item, nil
		}
		// Corrupt entry: drop it and fall through to the store.
		r.dropKeys(ctx, key)
	} else if !errors.Is(err, repository.ErrCacheMiss) {
		r.logger.Warn().Err(err).Str("key", key).Msg("cache read failed, falling back to store")
	}

	item, err := r.base.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.populate(ctx, key, item)
	return item, nil
}

// List returns all items, serving from the aggregate cache when possible.
func (r *ItemRepository) List(ctx context.Context) ([]*domain.Item, error) {
	key := r.keys.Items()

	if data, err := r.cache.Get(ctx, key); err == nil {
		var items []*domain.Item
		if err := json.Unmarshal(data, &items); err == nil {
			return items, nil
		}
		r.dropKeys(ctx, key)
	} else if !errors.Is(err, repository.ErrCacheMiss) {
		r.logger.Warn().Err(err).Str("key", key).Msg("cache read failed, falling back to store")
	}

	items, err := r.base.List(ctx)
	if err != nil {
		return nil, err
	}

	r.populate(ctx, key, items)
	return items, nil
}

// Create persists a new item and invalidates the aggregate list snapshot.
// The new item has no per-id entry yet, so only the list key is dropped.
func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) error {
	if err := r.base.Create(ctx, item); err != nil {
		return err
	}

	r.dropKeys(ctx, r.keys.Items())
	return nil
}

// Update applies a partial replacement and invalidates both the aggregate
// and per-item snapshots. Invalidation runs after the store write completes.
func (r *ItemRepository) Update(ctx context.Context, id string, patch domain.ItemPatch) (*domain.Item, error) {
	item, err := r.base.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	r.dropKeys(ctx, r.keys.Items(), r.keys.Item(id))
	return item, nil
}

// Delete removes an item and invalidates both cache keys.
func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	if err := r.base.Delete(ctx, id); err != nil {
		return err
	}

	r.dropKeys(ctx, r.keys.Items(), r.keys.Item(id))
	return nil
}

// populate writes a snapshot into the cache. Failures are logged and
// swallowed: the cache is an optimization, not a dependency.
func (r *ItemRepository) populate(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("failed to marshal cache snapshot")
		return
	}
	if err := r.cache.Set(ctx, key, data, r.ttl); err != nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// dropKeys invalidates cache entries after a successful store write.
// A failed invalidation is logged but not surfaced: the write already
// happened and the entries still expire by TTL.
func (r *ItemRepository) dropKeys(ctx context.Context, keys ...string) {
	if err := r.cache.DeleteMulti(ctx, keys...); err != nil {
		r.logger.Error().Err(err).Strs("keys", keys).Msg("cache invalidation failed after write")
	}
}

// Ensure ItemRepository implements repository.ItemRepository.
var _ repository.ItemRepository = (*ItemRepository)(nil)
