package cache

import (
	"context"
	"strings"
	"time"

	"github.com/01wneo/RollingText/pkg/observability"
)

// Observed reports every lookup and write of the wrapped cache to
// observability.Cache hooks.
type Observed struct {
	inner Cache
}

// Observe wraps c with hook reporting.
func Observe(c Cache) Cache {
	return &Observed{inner: c}
}

// Get implements Cache.
func (o *Observed) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok, err := o.inner.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if ok {
		observability.Cache().OnCacheHit(ctx, keyType(key))
	} else {
		observability.Cache().OnCacheMiss(ctx, keyType(key))
	}
	return data, ok, nil
}

// Set implements Cache.
func (o *Observed) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := o.inner.Set(ctx, key, data, ttl); err != nil {
		return err
	}
	observability.Cache().OnCacheSet(ctx, keyType(key), len(data))
	return nil
}

// Delete implements Cache.
func (o *Observed) Delete(ctx context.Context, key string) error {
	return o.inner.Delete(ctx, key)
}

// Close implements Cache.
func (o *Observed) Close() error {
	return o.inner.Close()
}

// keyType returns the segment before the hash, so "v1:artifact:ab12"
// reports "artifact".
func keyType(key string) string {
	parts := strings.Split(key, ":")
	if len(parts) < 2 {
		return "unknown"
	}
	return parts[len(parts)-2]
}

var _ Cache = (*Observed)(nil)
