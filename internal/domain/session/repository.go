package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"github.com/thihaaungym/vaultboard/internal/kv"
)

const keyPrefix = "sess:"

// Repository persists session liveness markers.
type Repository interface {
	Put(ctx context.Context, token string, ttl time.Duration) error
	Exists(ctx context.Context, token string) (bool, error)
	Delete(ctx context.Context, token string) error
}

type repository struct {
	store kv.Store
	log   *slog.Logger
}

func NewRepository(store kv.Store, log *slog.Logger) Repository {
	return &repository{
		store: store,
		log:   log,
	}
}

func (r *repository) Put(ctx context.Context, token string, ttl time.Duration) error {
	if err := r.store.Put(ctx, keyPrefix+token, []byte("1"), ttl); err != nil {
		return fmt.Errorf("store session marker: %w", err)
	}
	return nil
}

func (r *repository) Exists(ctx context.Context, token string) (bool, error) {
	_, err := r.store.Get(ctx, keyPrefix+token)
	if errors.Is(err, kv.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read session marker: %w", err)
	}
	return true, nil
}

func (r *repository) Delete(ctx context.Context, token string) error {
	if err := r.store.Delete(ctx, keyPrefix+token); err != nil {
		return fmt.Errorf("delete session marker: %w", err)
	}
	return nil
}
