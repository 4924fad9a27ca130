package cache

import (
	"context"
	"time"

	"github.com/matzehuels/bookshelf/pkg/observability"
)

// instrumented reports hits, misses and writes to the registered
// observability cache hooks.
type instrumented struct {
	Cache
	keyType string
}

// Instrument wraps c so every Get and Set is reported to
// [observability.Cache] under keyType ("artifact", "cover").
func Instrument(c Cache, keyType string) Cache {
	return &instrumented{Cache: c, keyType: keyType}
}

func (c *instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok, err := c.Cache.Get(ctx, key)
	if err == nil {
		if ok {
			observability.Cache().OnCacheHit(ctx, c.keyType)
		} else {
			observability.Cache().OnCacheMiss(ctx, c.keyType)
		}
	}
	return data, ok, err
}

func (c *instrumented) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	err := c.Cache.Set(ctx, key, data, ttl)
	if err == nil {
		observability.Cache().OnCacheSet(ctx, c.keyType, len(data))
	}
	return err
}
