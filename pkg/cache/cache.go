package cache

import (
	"context"
	"time"
)

// Cache is the contract the catalog service caches through. Implementations
// live in internal/infrastructure/cache and can be swapped by configuration
// (in-memory, Redis, Bolt).
type Cache interface {
	// Get reads the value stored under key and unmarshals it into dest.
	// found reports whether the key was present; on a miss dest is left
	// untouched and err is nil.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key. A ttl <= 0 keeps the entry until it is
	// deleted or overwritten.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error

	// Close releases resources held by the implementation.
	Close() error
}
