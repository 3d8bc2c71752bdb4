// ABOUTME: SQLite-based cache implementation for persistent caching
// ABOUTME: Provides a file-based cache that survives application restarts

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"stackpages-api/core/interfaces"
	"stackpages-api/infrastructure/cache/keys"
)

// noExpiry marks entries stored with a zero TTL
const noExpiry = 0

// Client implements the Cache interface using SQLite
type Client struct {
	db       *sql.DB
	filePath string
	stop     chan struct{}
	stopOnce sync.Once
}

// NewSQLiteCache creates a new SQLite cache client
func NewSQLiteCache(filePath string) (*Client, error) {
	return NewSQLiteCacheWithCleanup(filePath, 5*time.Minute)
}

// NewSQLiteCacheWithCleanup creates a SQLite cache client that purges expired
// rows every interval
func NewSQLiteCacheWithCleanup(filePath string, interval time.Duration) (*Client, error) {
	if filePath == "" {
		filePath = "cache.db"
	}

	// Open database connection
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	if filePath == ":memory:" {
		// every pooled connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	client := &Client{
		db:       db,
		filePath: filePath,
		stop:     make(chan struct{}),
	}

	// Initialize schema
	if err := client.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	// Start cleanup routine
	go client.cleanupRoutine(interval)

	return client, nil
}

// initSchema creates the cache table if it doesn't exist. An expiry of 0
// means the entry never expires.
func (c *Client) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS cache (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			expiry INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_expiry ON cache(expiry);
	`

	_, err := c.db.Exec(query)
	return err
}

// Get retrieves a value from the cache
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if err := keys.Validate(key); err != nil {
		return nil, err
	}

	var value []byte

	query := "SELECT value FROM cache WHERE key = ? AND (expiry = 0 OR expiry > ?)"
	err := c.db.QueryRowContext(ctx, query, key, time.Now().UnixMilli()).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, interfaces.ErrCacheMiss
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get value: %w", err)
	}

	return value, nil
}

// Set stores a value in the cache with TTL
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := keys.Validate(key); err != nil {
		return err
	}

	if err := keys.ValidateValue(value); err != nil {
		return err
	}

	expiry := int64(noExpiry)
	if ttl > 0 {
		expiry = time.Now().Add(ttl).UnixMilli()
	}

	query := `
		INSERT OR REPLACE INTO cache (key, value, expiry)
		VALUES (?, ?, ?)
	`

	_, err := c.db.ExecContext(ctx, query, key, value, expiry)
	if err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	return nil
}

// Delete removes a value from the cache, reporting whether a live row existed
func (c *Client) Delete(ctx context.Context, key string) (bool, error) {
	if err := keys.Validate(key); err != nil {
		return false, err
	}

	query := "DELETE FROM cache WHERE key = ? AND (expiry = 0 OR expiry > ?)"
	res, err := c.db.ExecContext(ctx, query, key, time.Now().UnixMilli())
	if err != nil {
		return false, fmt.Errorf("failed to delete value: %w", err)
	}

	// An expired row is gone as far as callers can tell; drop it quietly
	_, _ = c.db.ExecContext(ctx, "DELETE FROM cache WHERE key = ?", key)

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete value: %w", err)
	}
	return n > 0, nil
}

// Clear removes all values from the cache
func (c *Client) Clear(ctx context.Context) error {
	query := "DELETE FROM cache"
	_, err := c.db.ExecContext(ctx, query)

	if err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	return nil
}

// cleanupRoutine periodically removes expired entries
func (c *Client) cleanupRoutine(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stop:
			return
		}
	}
}

// cleanup removes expired entries
func (c *Client) cleanup() {
	query := "DELETE FROM cache WHERE expiry <> 0 AND expiry <= ?"
	_, _ = c.db.Exec(query, time.Now().UnixMilli())
}

// Close stops the cleanup routine and closes the database connection
func (c *Client) Close() error {
	c.stopOnce.Do(func() { close(c.stop) })
	return c.db.Close()
}

// Stats returns cache statistics
func (c *Client) Stats() (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	// Count total entries
	var count int
	err := c.db.QueryRow("SELECT COUNT(*) FROM cache").Scan(&count)
	if err != nil {
		return nil, err
	}
	stats["total_entries"] = count

	// Count expired entries
	var expired int
	err = c.db.QueryRow("SELECT COUNT(*) FROM cache WHERE expiry <> 0 AND expiry <= ?", time.Now().UnixMilli()).Scan(&expired)
	if err != nil {
		return nil, err
	}
	stats["expired_entries"] = expired

	// Database file size
	var pageCount, pageSize int
	err = c.db.QueryRow("PRAGMA page_count").Scan(&pageCount)
	if err == nil {
		err = c.db.QueryRow("PRAGMA page_size").Scan(&pageSize)
		if err == nil {
			stats["db_size_bytes"] = pageCount * pageSize
		}
	}

	stats["file_path"] = c.filePath

	return stats, nil
}
