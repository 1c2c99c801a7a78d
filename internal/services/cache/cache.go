package cache

import (
	"context"
	"time"
)

// Cache is the store for rendered search pages. Implementations must be
// safe for concurrent use.
type Cache interface {
	// Get retrieves a value; the second return reports presence.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores a value with a TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value.
	Delete(ctx context.Context, key string) error

	// Clear removes everything.
	Clear(ctx context.Context) error
}
