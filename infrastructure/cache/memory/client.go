// ABOUTME: In-memory cache implementation backed by patrickmn/go-cache
// ABOUTME: Provides a process-local cache with TTL support and periodic cleanup

package memory

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"stackpages-api/core/interfaces"
)

// DefaultCleanupInterval is how often expired entries are purged
const DefaultCleanupInterval = 5 * time.Minute

// MemoryCache implements the Cache interface using in-memory storage
type MemoryCache struct {
	items *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache instance
func NewMemoryCache() *MemoryCache {
	return NewMemoryCacheWithCleanup(DefaultCleanupInterval)
}

// NewMemoryCacheWithCleanup creates a cache that purges expired entries every
// interval. Entries are still reported missing as soon as they expire.
func NewMemoryCacheWithCleanup(interval time.Duration) *MemoryCache {
	return &MemoryCache{items: gocache.New(gocache.NoExpiration, interval)}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, ok := c.items.Get(key)
	if !ok {
		return nil, interfaces.ErrCacheMiss
	}

	// Return a copy of the value
	stored := value.([]byte)
	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Set stores a value in the cache with the given TTL. A zero TTL never expires.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Create a copy of the value
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	c.items.Set(key, valueCopy, ttl)
	return nil
}

// Delete removes a key from the cache, reporting whether a live entry existed
func (c *MemoryCache) Delete(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	_, existed := c.items.Get(key)
	c.items.Delete(key)
	return existed, nil
}

// Len returns the number of stored entries, including expired ones not yet purged
func (c *MemoryCache) Len() int {
	return c.items.ItemCount()
}

// Flush removes every entry
func (c *MemoryCache) Flush() {
	c.items.Flush()
}
