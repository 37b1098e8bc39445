// Package postgres implements the key-value backend on PostgreSQL, the
// storage used by multi-node deployments.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thihaaungym/vaultboard/internal/config"
	"github.com/thihaaungym/vaultboard/internal/kv"
	"github.com/thihaaungym/vaultboard/internal/migration"
)

type Store struct {
	pool *pgxpool.Pool
}

// New connects to the database and brings the schema up to date.
func New(ctx context.Context, cfg *config.Config) (*Store, error) {
	pool, err := pgxpool.New(ctx, cfg.DB.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	mg := migration.New(cfg, migration.DefaultEngine)
	if err := mg.Up(); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &Store{pool: pool}, nil
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM kv_entries
		 WHERE key = $1 AND (expires_at IS NULL OR expires_at > now())`,
		key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var expiresAt *time.Time
	if ttl > 0 {
		t := time.Now().Add(ttl)
		expiresAt = &t
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO kv_entries (key, value, expires_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (key) DO UPDATE
		 SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at, updated_at = now()`,
		key, value, expiresAt)
	if err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM kv_entries WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// Update runs fn inside a transaction holding an advisory lock on key,
// so concurrent read-modify-write cycles cannot clobber each other. A
// row lock alone would not do: FOR UPDATE locks nothing while the row
// does not exist yet, and two first writers could both read nil.
func (s *Store) Update(ctx context.Context, key string, fn kv.UpdateFunc) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin update %q: %w", key, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
		return fmt.Errorf("lock %q for update: %w", key, err)
	}

	var old []byte
	err = tx.QueryRow(ctx,
		`SELECT value FROM kv_entries
		 WHERE key = $1 AND (expires_at IS NULL OR expires_at > now())`,
		key).Scan(&old)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("read %q for update: %w", key, err)
	}

	next, err := fn(old)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO kv_entries (key, value, expires_at)
		 VALUES ($1, $2, NULL)
		 ON CONFLICT (key) DO UPDATE
		 SET value = EXCLUDED.value, expires_at = NULL, updated_at = now()`,
		key, next)
	if err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}

	return tx.Commit(ctx)
}
