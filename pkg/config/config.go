// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, feeds, fetching and logging

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"stackpages-api/core/domain"
)

// Cache backend names accepted in CACHE_TYPE
const (
	CacheMemory   = "memory"
	CacheRedis    = "redis"
	CacheSQLite   = "sqlite"
	CachePostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Feeds holds the upstream feed URLs
	Feeds FeedsConfig

	// Fetch controls upstream HTTP requests
	Fetch FetchConfig

	// Log controls the structured logger
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the number of requests allowed per client per window
	RateLimit int

	// RateWindow is the rate limit window
	RateWindow time.Duration
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite/postgres)
	Type string

	// TTL is the freshness window of cached feeds
	TTL time.Duration

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig

	// Postgres contains Postgres-specific configuration
	Postgres PostgresConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file
	Path string
}

// PostgresConfig holds Postgres-specific configuration
type PostgresConfig struct {
	// DSN is the lib/pq connection string
	DSN string

	// MaxConnections bounds the connection pool
	MaxConnections int
}

// FeedsConfig holds one source URL per feed kind. An empty URL means the
// kind is not configured.
type FeedsConfig struct {
	Blog    string
	Video   string
	Podcast string
	Event   string
}

// FetchConfig controls upstream HTTP requests
type FetchConfig struct {
	Timeout time.Duration
	Retries int
}

// LogConfig controls the structured logger
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is json or text
	Format string
}

// FeedURL implements interfaces.FeedURLResolver
func (f FeedsConfig) FeedURL(kind domain.FeedKind) string {
	switch kind {
	case domain.KindBlog:
		return f.Blog
	case domain.KindVideo:
		return f.Video
	case domain.KindPodcast:
		return f.Podcast
	case domain.KindEvent:
		return f.Event
	default:
		return ""
	}
}

// Setting names the environment variable that configures kind
func (f FeedsConfig) Setting(kind domain.FeedKind) string {
	switch kind {
	case domain.KindBlog:
		return "BLOG_FEED_URL"
	case domain.KindVideo:
		return "YOUTUBE_FEED_URL"
	case domain.KindPodcast:
		return "PODCAST_FEED_URL"
	case domain.KindEvent:
		return "EVENTS_FEED_URL"
	default:
		return ""
	}
}

// Configured lists the non-empty feed URLs in kind order
func (f FeedsConfig) Configured() []string {
	var urls []string
	for _, kind := range domain.AllKinds {
		if u := f.FeedURL(kind); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// Load reads an optional .env file and then the environment. Variables already
// set in the environment win over the file.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}
	return LoadFromEnv()
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:       getEnvOrDefault("PORT", "8000"),
			RateLimit:  getEnvAsIntOrDefault("RATE_LIMIT", 100),
			RateWindow: time.Duration(getEnvAsIntOrDefault("RATE_WINDOW_SECONDS", 60)) * time.Second,
		},
		Cache: CacheConfig{
			Type: strings.ToLower(getEnvOrDefault("CACHE_TYPE", CacheMemory)),
			TTL:  time.Duration(getEnvAsIntOrDefault("CACHE_TTL_SECONDS", 180)) * time.Second,
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "stackpages-cache.db"),
			},
			Postgres: PostgresConfig{
				DSN:            getEnvOrDefault("POSTGRES_DSN", ""),
				MaxConnections: getEnvAsIntOrDefault("POSTGRES_MAX_CONNECTIONS", 10),
			},
		},
		Feeds: FeedsConfig{
			Blog:    getEnvOrDefault("BLOG_FEED_URL", os.Getenv("SUBSTACK_FEED_URL")),
			Video:   os.Getenv("YOUTUBE_FEED_URL"),
			Podcast: os.Getenv("PODCAST_FEED_URL"),
			Event:   os.Getenv("EVENTS_FEED_URL"),
		},
		Fetch: FetchConfig{
			Timeout: time.Duration(getEnvAsIntOrDefault("FETCH_TIMEOUT_SECONDS", 30)) * time.Second,
			Retries: getEnvAsIntOrDefault("FETCH_RETRIES", 0),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnvOrDefault("LOG_FORMAT", "json")),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit < 1 {
		return errors.New("rate limit must be at least 1 request")
	}

	if c.Server.RateWindow < time.Second {
		return errors.New("rate window must be at least 1 second")
	}

	if c.Cache.TTL < time.Second {
		return errors.New("cache TTL must be at least 1 second")
	}

	switch c.Cache.Type {
	case CacheMemory:
	case CacheRedis:
		if c.Cache.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis cache")
		}
	case CacheSQLite:
		if c.Cache.SQLite.Path == "" {
			return errors.New("sqlite path cannot be empty when using sqlite cache")
		}
	case CachePostgres:
		if c.Cache.Postgres.DSN == "" {
			return errors.New("postgres DSN cannot be empty when using postgres cache")
		}
	default:
		return errors.New("cache type must be 'memory', 'redis', 'sqlite' or 'postgres'")
	}

	if c.Fetch.Retries < 0 {
		return errors.New("fetch retries cannot be negative")
	}

	if c.Fetch.Timeout <= 0 {
		return errors.New("fetch timeout must be positive")
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		return errors.New("log format must be 'json' or 'text'")
	}

	return nil
}
