package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

//go:generate mockgen -source=store.go -destination=../mocks/cache/mock_store.go -package=mock_cache

// Store caches raw API response bodies keyed by request path.
type Store interface {
	// Get returns the cached body for key. The second return value is false
	// when the key is absent or its entry has expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores or replaces the body for key.
	Set(ctx context.Context, key string, body []byte) error
	// Clear removes all cached entries.
	Clear(ctx context.Context) error
	Close() error
}

const schema = `
CREATE TABLE IF NOT EXISTS responses (
	key       TEXT PRIMARY KEY,
	body      BLOB NOT NULL,
	stored_at INTEGER NOT NULL
);`

// SQLiteStore is a Store backed by a local SQLite database. Entries expire
// lazily: stale rows are dropped when they are next read.
type SQLiteStore struct {
	db  *sqlx.DB
	ttl time.Duration
	now func() time.Time
}

// NewSQLiteStore opens (creating if needed) the database at path. A ttl of
// zero or less disables cache reads entirely.
func NewSQLiteStore(path string, ttl time.Duration) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("os.MkdirAll > %w", err)
		}
	}

	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open > %w", err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db.Exec > %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db.Exec > %w", err)
	}

	return &SQLiteStore{
		db:  db,
		ttl: ttl,
		now: time.Now,
	}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if s.ttl <= 0 {
		return nil, false, nil
	}

	var row struct {
		Body     []byte `db:"body"`
		StoredAt int64  `db:"stored_at"`
	}
	err := s.db.GetContext(ctx, &row, `SELECT body, stored_at FROM responses WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("db.GetContext > %w", err)
	}

	if s.now().Sub(time.Unix(row.StoredAt, 0)) >= s.ttl {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM responses WHERE key = ?`, key); err != nil {
			return nil, false, fmt.Errorf("db.ExecContext > %w", err)
		}
		return nil, false, nil
	}
	return row.Body, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, body []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO responses (key, body, stored_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET body = excluded.body, stored_at = excluded.stored_at`,
		key, body, s.now().Unix())
	if err != nil {
		return fmt.Errorf("db.ExecContext > %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM responses`); err != nil {
		return fmt.Errorf("db.ExecContext > %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("db.Close > %w", err)
	}
	return nil
}
