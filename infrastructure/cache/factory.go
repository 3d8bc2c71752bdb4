// ABOUTME: Builds the configured cache substrate
// ABOUTME: Unreachable external backends fall back to the in-memory cache

package cache

import (
	"io"

	"stackpages-api/core/interfaces"
	"stackpages-api/infrastructure/cache/memory"
	"stackpages-api/infrastructure/cache/postgres"
	"stackpages-api/infrastructure/cache/redis"
	"stackpages-api/infrastructure/cache/sqlite"
	"stackpages-api/pkg/config"
)

// Substrate is a cache plus whatever must be released on shutdown
type Substrate struct {
	interfaces.Cache

	// Backend is the backend actually in use, which can differ from the
	// configured one after a fallback
	Backend string

	closer io.Closer
}

// Close releases the backend's connections
func (s *Substrate) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// New creates the substrate named by cfg.Type
func New(cfg config.CacheConfig, logger interfaces.Logger) *Substrate {
	var (
		c      interfaces.Cache
		closer io.Closer
		err    error
	)

	switch cfg.Type {
	case config.CacheRedis:
		var rc *redis.RedisCache
		if rc, err = redis.NewRedisCache(cfg.Redis); err == nil {
			c, closer = rc, rc
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Redis.Address,
			})
		}
	case config.CacheSQLite:
		var sc *sqlite.Client
		if sc, err = sqlite.NewSQLiteCache(cfg.SQLite.Path); err == nil {
			c, closer = sc, sc
			logger.Info("Using SQLite cache", map[string]interface{}{
				"path": cfg.SQLite.Path,
			})
		}
	case config.CachePostgres:
		var pc *postgres.Client
		if pc, err = postgres.NewPostgresCache(cfg.Postgres); err == nil {
			c, closer = pc, pc
			logger.Info("Using Postgres cache", nil)
		}
	}

	if err != nil {
		logger.Error("Failed to create cache, falling back to memory", map[string]interface{}{
			"cache_type": cfg.Type,
			"error":      err.Error(),
		})
	}
	if c == nil {
		logger.Info("Using memory cache", nil)
		return &Substrate{Cache: memory.NewMemoryCache(), Backend: config.CacheMemory}
	}
	return &Substrate{Cache: c, Backend: cfg.Type, closer: closer}
}
