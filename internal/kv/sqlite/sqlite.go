// Package sqlite implements the key-value backend on an embedded SQLite
// file, the default for single-node deployments.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/thihaaungym/vaultboard/internal/kv"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv_entries (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	expires_at INTEGER,
	updated_at INTEGER NOT NULL
);`

type Store struct {
	db  *sql.DB
	now func() time.Time
}

func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL&_txlock=immediate")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	var expiresAt sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		`SELECT value, expires_at FROM kv_entries WHERE key = ?`, key).
		Scan(&value, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	if expiresAt.Valid && s.now().UnixMilli() >= expiresAt.Int64 {
		return nil, kv.ErrNotFound
	}
	return value, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var expiresAt sql.NullInt64
	if ttl > 0 {
		expiresAt = sql.NullInt64{Int64: s.now().Add(ttl).UnixMilli(), Valid: true}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv_entries (key, value, expires_at, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (key) DO UPDATE
		 SET value = excluded.value, expires_at = excluded.expires_at, updated_at = excluded.updated_at`,
		key, value, expiresAt, s.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_entries WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// Update runs fn inside an immediate transaction, which takes the write
// lock up front and serializes concurrent read-modify-write cycles.
func (s *Store) Update(ctx context.Context, key string, fn kv.UpdateFunc) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update %q: %w", key, err)
	}
	defer tx.Rollback()

	var old []byte
	var expiresAt sql.NullInt64
	err = tx.QueryRowContext(ctx,
		`SELECT value, expires_at FROM kv_entries WHERE key = ?`, key).
		Scan(&old, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		old = nil
	} else if err != nil {
		return fmt.Errorf("read %q for update: %w", key, err)
	} else if expiresAt.Valid && s.now().UnixMilli() >= expiresAt.Int64 {
		old = nil
	}

	next, err := fn(old)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO kv_entries (key, value, expires_at, updated_at)
		 VALUES (?, ?, NULL, ?)
		 ON CONFLICT (key) DO UPDATE
		 SET value = excluded.value, expires_at = NULL, updated_at = excluded.updated_at`,
		key, next, s.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}

	return tx.Commit()
}
