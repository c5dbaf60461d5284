package cache

import (
	"context"
	"time"
)

// NullCache keeps nothing, so every diagram request renders afresh. The CLI
// falls back to it for --no-cache or when no cache directory is usable, and
// the HTTP server starts with it until a real store is configured.
type NullCache struct{}

func NewNullCache() Cache { return &NullCache{} }

// Get reports a miss for every key.
func (*NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (*NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (*NullCache) Delete(context.Context, string) error { return nil }

func (*NullCache) Close() error { return nil }

var _ Cache = (*NullCache)(nil)
