package cache

import (
	"context"
	"time"
)

// Cache is the counter store behind request rate limiting.
// Implementations must make Increment atomic across processes.
type Cache interface {
	// Increment adds one to key, creating it at 1, and returns the new value.
	Increment(ctx context.Context, key string) (int64, error)

	// Expire sets a TTL on key.
	Expire(ctx context.Context, key string, ttl time.Duration) error

	// Ping checks the connection.
	Ping(ctx context.Context) error
}
