package ports

import (
	"context"
	"time"
)

// Cache is the key-value store the rate pipeline leans on. Implementations
// must degrade gracefully: an error is a miss to callers, never a crash,
// because a cold cache only costs an extra upstream fetch.
type Cache interface {
	// Get returns the raw bytes for key. ok=false if not found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value for key with TTL (0 or negative means no expiration if supported).
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes the key; absence is not an error.
	Delete(ctx context.Context, key string) error
	// DeleteByPrefix removes every key under the given prefix.
	DeleteByPrefix(ctx context.Context, prefix string) (int, error)
}
