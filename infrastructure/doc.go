// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache: substrate factory with memory fallback
// - cache/memory: In-memory cache backed by go-cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: Single-file SQLite cache with background expiry
// - cache/postgres: Shared Postgres cache via sqlx
// - cache/keys: key and value limits shared by the SQL backends
// - http/standard: Standard library HTTP client with optional retries
// - logger/structured: logrus-backed structured logger
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Configured substrate:
//
//	store := cache.New(cfg.Cache, logger)
//	defer store.Close()
//
// # HTTP Client
//
//	client := standard.NewStandardHTTPClient(30*time.Second, standard.WithRetries(2))
//	resp, err := client.Get(ctx, "https://example.com/feed")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger := structured.New(structured.Options{Level: "debug", Format: "text"})
//	logger.Info("Fetched feed", map[string]interface{}{
//	    "url":  feedURL,
//	    "kind": "blog",
//	})
package infrastructure
