// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Cache.Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache is the substrate the feed cache stores parse results in.
// Implementations can be in-memory, Redis, SQLite, Postgres or anything else
// honoring the three operations below; the TTL passed to Set is the freshness
// window and the substrate is responsible for expiring the entry.
//
// Example usage:
//
//	cache := someCache // implements Cache interface
//
//	// Store a value for three minutes
//	err := cache.Set(ctx, "feed:https://example.com/feed", data, 180*time.Second)
//
//	// Retrieve a value
//	data, err := cache.Get(ctx, "feed:https://example.com/feed")
//	if errors.Is(err, interfaces.ErrCacheMiss) {
//		// fetch upstream
//	}
//
//	// Delete a value
//	deleted, err := cache.Delete(ctx, "feed:https://example.com/feed")
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns ErrCacheMiss if the key doesn't exist or has expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Reports whether an entry existed. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) (bool, error)
}
