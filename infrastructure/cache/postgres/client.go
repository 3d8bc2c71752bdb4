// ABOUTME: Postgres-backed cache substrate using sqlx over lib/pq
// ABOUTME: Lets several API instances share one cache through an existing database

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"stackpages-api/core/interfaces"
	"stackpages-api/infrastructure/cache/keys"
	"stackpages-api/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS feed_cache (
	key        TEXT PRIMARY KEY,
	value      BYTEA NOT NULL,
	expires_at TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS feed_cache_expires_at_idx ON feed_cache (expires_at);
`

// entry is one feed_cache row
type entry struct {
	Key       string       `db:"key"`
	Value     []byte       `db:"value"`
	ExpiresAt sql.NullTime `db:"expires_at"`
}

// Client implements the Cache interface on a Postgres table
type Client struct {
	db *sqlx.DB
}

// NewPostgresCache connects, sizes the pool and creates the table if needed
func NewPostgresCache(cfg config.PostgresConfig) (*Client, error) {
	if cfg.DSN == "" {
		return nil, errors.New("postgres DSN cannot be empty")
	}

	db, err := sqlx.Connect("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	maxConns := cfg.MaxConnections
	if maxConns < 1 {
		maxConns = 10
	}
	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns / 2)
	db.SetConnMaxLifetime(5 * time.Minute)

	return NewWithDB(db)
}

// NewWithDB wraps an existing connection pool
func NewWithDB(db *sqlx.DB) (*Client, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &Client{db: db}, nil
}

// Get retrieves a live value
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if err := keys.Validate(key); err != nil {
		return nil, err
	}

	var row entry
	err := c.db.GetContext(ctx, &row, `
		SELECT key, value, expires_at
		FROM feed_cache
		WHERE key = $1 AND (expires_at IS NULL OR expires_at > now())
	`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, interfaces.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get value: %w", err)
	}
	return row.Value, nil
}

// Set upserts a value. A zero TTL stores it without expiry.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := keys.Validate(key); err != nil {
		return err
	}
	if err := keys.ValidateValue(value); err != nil {
		return err
	}

	row := entry{Key: key, Value: value}
	if ttl > 0 {
		row.ExpiresAt = sql.NullTime{Time: time.Now().Add(ttl), Valid: true}
	}

	_, err := c.db.NamedExecContext(ctx, `
		INSERT INTO feed_cache (key, value, expires_at)
		VALUES (:key, :value, :expires_at)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at
	`, row)
	if err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}
	return nil
}

// Delete removes key, reporting whether a live entry existed
func (c *Client) Delete(ctx context.Context, key string) (bool, error) {
	if err := keys.Validate(key); err != nil {
		return false, err
	}

	var live bool
	err := c.db.GetContext(ctx, &live, `
		WITH removed AS (
			DELETE FROM feed_cache WHERE key = $1 RETURNING expires_at
		)
		SELECT EXISTS (SELECT 1 FROM removed WHERE expires_at IS NULL OR expires_at > now())
	`, key)
	if err != nil {
		return false, fmt.Errorf("failed to delete value: %w", err)
	}
	return live, nil
}

// Purge removes expired rows and returns how many were dropped
func (c *Client) Purge(ctx context.Context) (int64, error) {
	res, err := c.db.ExecContext(ctx, `DELETE FROM feed_cache WHERE expires_at IS NOT NULL AND expires_at <= now()`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Close closes the connection pool
func (c *Client) Close() error {
	return c.db.Close()
}
