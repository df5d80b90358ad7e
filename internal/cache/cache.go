// Package cache stores fetched wiki pages in SQLite so repeated runs do not
// hit the wiki for pages that rarely change.
package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const DefaultTTL = 24 * time.Hour

const schema = `
CREATE TABLE IF NOT EXISTS pages (
	url        TEXT PRIMARY KEY,
	body       BLOB NOT NULL,
	fetched_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_pages_fetched_at ON pages(fetched_at);
`

type Cache struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

// openDB opens a SQLite database at the given path
func openDB(dbPath string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// one connection: an in-memory database exists per connection, and
	// sqlite serialises writers anyway
	sqlDB.SetMaxOpenConns(1)

	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return sqlDB, nil
}

// Open opens or creates the cache database. A ttl of zero uses DefaultTTL.
func Open(path string, ttl time.Duration) (*Cache, error) {
	if path == "" {
		return nil, errors.New("cache path is empty")
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	db, err := openDB(path)
	if err != nil {
		return nil, err
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Cache{db: db, ttl: ttl, now: time.Now}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached body for url if present and younger than the TTL.
func (c *Cache) Get(ctx context.Context, url string) ([]byte, bool, error) {
	var body []byte
	var fetchedAt int64

	err := c.db.QueryRowContext(ctx,
		`SELECT body, fetched_at FROM pages WHERE url = ?`, url,
	).Scan(&body, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache lookup %s: %w", url, err)
	}

	if c.now().Sub(time.Unix(fetchedAt, 0)) > c.ttl {
		return nil, false, nil
	}

	return body, true, nil
}

// Set stores or replaces the body for url.
func (c *Cache) Set(ctx context.Context, url string, body []byte) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO pages (url, body, fetched_at) VALUES (?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET body = excluded.body, fetched_at = excluded.fetched_at
	`, url, body, c.now().Unix())
	if err != nil {
		return fmt.Errorf("cache store %s: %w", url, err)
	}
	return nil
}

// Purge deletes entries older than olderThan and returns how many were
// removed. A non-positive olderThan empties the cache.
func (c *Cache) Purge(ctx context.Context, olderThan time.Duration) (int64, error) {
	query, args := `DELETE FROM pages`, []any{}
	if olderThan > 0 {
		query += ` WHERE fetched_at < ?`
		args = append(args, c.now().Add(-olderThan).Unix())
	}

	res, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("cache purge: %w", err)
	}
	return res.RowsAffected()
}

// Len returns the number of stored pages, expired or not.
func (c *Cache) Len(ctx context.Context) (int, error) {
	var n int
	if err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pages`).Scan(&n); err != nil {
		return 0, fmt.Errorf("cache count: %w", err)
	}
	return n, nil
}
