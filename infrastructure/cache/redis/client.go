// ABOUTME: Redis cache implementation using go-redis client
// ABOUTME: Provides distributed caching with TTL support and connection pooling

package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"stackpages-api/core/interfaces"
	"stackpages-api/pkg/config"
)

// RedisCache implements the Cache interface using Redis
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis cache instance
func NewRedisCache(cfg config.RedisConfig) (*RedisCache, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	// Create Redis client
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &RedisCache{
		client: client,
	}, nil
}

// Get retrieves a value from Redis
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, interfaces.ErrCacheMiss
		}
		return nil, err
	}

	return val, nil
}

// Set stores a value in Redis with the given TTL
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	// Redis SET with 0 TTL means no expiration
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key from Redis. DEL's reply count tells whether it existed.
func (c *RedisCache) Delete(ctx context.Context, key string) (bool, error) {
	n, err := c.client.Del(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// TTL reports the remaining lifetime of key, or -1 when it never expires
func (c *RedisCache) TTL(ctx context.Context, key string) (time.Duration, error) {
	d, err := c.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if d == -2 {
		return 0, interfaces.ErrCacheMiss
	}
	return d, nil
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
