package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is wrapped by Get when the key is absent or expired.
var ErrNotFound = errors.New("key not found")

// Cache is the key/value port used to memoize fetched content.
// Implemented in-process (MemoryAdapter) and on Redis (RedisAdapter).
type Cache interface {
	// Get retrieves a value from the cache by key.
	// A missing key yields an error wrapping ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the specified key and TTL.
	// TTL of 0 means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	Delete(ctx context.Context, key string) error

	// Ping checks if the cache service is reachable.
	Ping(ctx context.Context) error

	// Close releases the underlying resources.
	Close() error
}
