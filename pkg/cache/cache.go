// Package cache stores rendered artifacts keyed by their inputs.
//
// A transition diagram depends only on the text change and the options used
// to render it, so it can be reused across runs and requests. [FileCache]
// persists entries under a directory for the CLI, [RedisCache] shares them
// between servers, [NullCache] disables caching, and [Observe] reports hits
// and misses to the observability hooks.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry reports
	// ok=false with a nil error.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Set stores data under key. A non-positive ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// GetOrCompute returns the cached value for key, or calls compute and
// stores its result for ttl. A failing Set does not fail the call.
func GetOrCompute(ctx context.Context, c Cache, key string, ttl time.Duration, compute func() ([]byte, error)) ([]byte, error) {
	if data, ok, err := c.Get(ctx, key); err == nil && ok {
		return data, nil
	}
	data, err := compute()
	if err != nil {
		return nil, err
	}
	_ = c.Set(ctx, key, data, ttl)
	return data, nil
}
