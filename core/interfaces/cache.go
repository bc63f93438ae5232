// Package interfaces defines the seams between the core pipelines and the
// infrastructure behind them. Everything here is satisfied by an
// implementation under infrastructure/ and by hand-rolled mocks in tests.
package interfaces

import (
	"context"
	"time"
)

// Cache is the key/value store used for reader views and other derived
// artifacts. Implementations: in-memory, Redis, SQLite.
type Cache interface {
	// Get returns the value for key, or an error when the key is absent
	// or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key for ttl. A zero ttl stores it without
	// expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
