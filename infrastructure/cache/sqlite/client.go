// ABOUTME: SQLite-based cache implementation for persistent caching
// ABOUTME: Keeps query outcomes across restarts of the connector

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"newsapi-connector/core/interfaces"

	_ "github.com/mattn/go-sqlite3"
)

const (
	maxKeyLength           = 255
	defaultCleanupInterval = 5 * time.Minute

	// noExpiry marks entries stored with ttl 0
	noExpiry int64 = 0
)

const (
	schemaSQL = `
		CREATE TABLE IF NOT EXISTS cache (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			expiry INTEGER NOT NULL -- unix nanoseconds, 0 = never
		);
		CREATE INDEX IF NOT EXISTS idx_expiry ON cache(expiry);
	`
	getSQL     = "SELECT value FROM cache WHERE key = ? AND (expiry = 0 OR expiry > ?)"
	setSQL     = "INSERT OR REPLACE INTO cache (key, value, expiry) VALUES (?, ?, ?)"
	deleteSQL  = "DELETE FROM cache WHERE key = ?"
	cleanupSQL = "DELETE FROM cache WHERE expiry != 0 AND expiry <= ?"
)

// Client implements the Cache interface using SQLite
type Client struct {
	db       *sql.DB
	filePath string
	now      func() time.Time
	logger   interfaces.Logger
	interval time.Duration

	stop     chan struct{}
	stopOnce sync.Once
}

// Option configures a Client
type Option func(*Client)

// WithClock replaces time.Now for expiry decisions
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger reports sweep failures
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithCleanupInterval sets how often expired rows are swept
func WithCleanupInterval(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.interval = d
		}
	}
}

// NewSQLiteCache creates a new SQLite cache client
func NewSQLiteCache(filePath string, opts ...Option) (*Client, error) {
	if filePath == "" {
		filePath = "newsapi-cache.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	client := &Client{
		db:       db,
		filePath: filePath,
		now:      time.Now,
		interval: defaultCleanupInterval,
		stop:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(client)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	go client.cleanupRoutine()

	return client, nil
}

func validateKey(key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	if len(key) > maxKeyLength {
		return fmt.Errorf("key exceeds %d bytes", maxKeyLength)
	}
	return nil
}

// Get retrieves a value from the cache
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	var value []byte
	err := c.db.QueryRowContext(ctx, getSQL, key, c.now().UnixNano()).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, interfaces.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get value: %w", err)
	}

	return value, nil
}

// Set stores a value in the cache with TTL. A zero TTL never expires.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if len(value) == 0 {
		return errors.New("value cannot be empty")
	}

	expiry := noExpiry
	if ttl > 0 {
		expiry = c.now().Add(ttl).UnixNano()
	}

	if _, err := c.db.ExecContext(ctx, setSQL, key, value, expiry); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	return nil
}

// Delete removes a value from the cache
func (c *Client) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	if _, err := c.db.ExecContext(ctx, deleteSQL, key); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}

	return nil
}

// cleanupRoutine periodically removes expired entries until Close
func (c *Client) cleanupRoutine() {
	ticker := time.NewTicker(c.interval)
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
func (c *Client) cleanup() int64 {
	res, err := c.db.Exec(cleanupSQL, c.now().UnixNano())
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("SQLite cache sweep failed", map[string]interface{}{
				"file":  c.filePath,
				"error": err.Error(),
			})
		}
		return 0
	}
	n, _ := res.RowsAffected()
	return n
}

// Close stops the sweeper and closes the database connection
func (c *Client) Close() error {
	c.stopOnce.Do(func() { close(c.stop) })
	return c.db.Close()
}
