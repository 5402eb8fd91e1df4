package cache

import (
	"context"
	"encoding/json"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/persona-sh/personas-site-go/pkg/errors"
)

// MemoryCache is the no-Redis fallback. Values go through the same JSON
// round trip as the Redis backend so both behave identically.
type MemoryCache struct {
	store *gocache.Cache
}

func NewMemoryCache(defaultTTL time.Duration) *MemoryCache {
	return &MemoryCache{
		store: gocache.New(defaultTTL, 10*time.Minute),
	}
}

func (c *MemoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	raw, found := c.store.Get(key)
	if !found {
		return false, nil
	}
	data, ok := raw.([]byte)
	if !ok {
		return false, errors.NewCacheError("unexpected cache entry type", "get", key, nil)
	}
	if dest != nil {
		if err := json.Unmarshal(data, dest); err != nil {
			return false, errors.NewCacheError("unmarshal failed", "get", key, err)
		}
	}
	return true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.NewCacheError("marshal failed", "set", key, err)
	}
	c.store.Set(key, data, ttl)
	return nil
}

func (c *MemoryCache) Del(_ context.Context, key string) error {
	c.store.Delete(key)
	return nil
}

func (c *MemoryCache) Close() error {
	return nil
}
