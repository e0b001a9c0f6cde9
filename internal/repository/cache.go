package repository

import (
	"context"
	"time"
)

// Cache defines the interface for caching operations.
// Primarily implemented using Redis; an in-memory implementation exists for
// deployments without Redis. A cache is an optimization only: callers must
// treat any failure as a miss, never as a request failure.
type Cache interface {
	// Get retrieves a value by key.
	// Returns ErrCacheMiss if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with a TTL. If ttl is 0, the value doesn't expire.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value by key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// DeleteMulti removes multiple values.
	DeleteMulti(ctx context.Context, keys ...string) error
}

// CacheKey generates cache keys for item lookups. Keeping key derivation in
// one place guarantees readers and invalidators agree on the scheme.
type CacheKey struct{}

// Items returns the cache key for the full item list snapshot.
func (CacheKey) Items() string {
	return "cache:items:all"
}

// Item returns the cache key for a single item by ID.
func (CacheKey) Item(id string) string {
	return "cache:items:" + id
}
