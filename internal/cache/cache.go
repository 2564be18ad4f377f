// Package cache provides a small byte cache with per-entry TTLs, backed by
// redis in production and by process memory in tests and redis-less deploys.
package cache

import (
	"context"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}
