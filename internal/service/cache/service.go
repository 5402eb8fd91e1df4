// Package cache provides the TTL cache behind the repository metadata
// gateway. Redis is used when configured; otherwise an in-process cache
// with the same semantics.
package cache

import (
	"context"
	"time"
)

// Cache stores JSON-serializable values with a TTL. A missing key is not
// an error: Get leaves dest untouched and returns nil.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	Close() error
}
