// Package memory holds an in-process kv.Store used by tests and throwaway runs.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/thihaaungym/vaultboard/internal/kv"
)

type entry struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithNow sets the clock, for expiry tests.
func WithNow(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		entries: make(map[string]entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, kv.ErrNotFound
	}
	if !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt) {
		delete(s.entries, key)
		return nil, kv.ErrNotFound
	}

	value := make([]byte, len(e.value))
	copy(value, e.value)
	return value, nil
}

func (s *Store) Put(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.put(key, value, ttl)
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

func (s *Store) Update(_ context.Context, key string, fn kv.UpdateFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var old []byte
	if e, ok := s.entries[key]; ok {
		if e.expiresAt.IsZero() || s.now().Before(e.expiresAt) {
			old = e.value
		}
	}

	next, err := fn(old)
	if err != nil {
		return err
	}

	s.put(key, next, 0)
	return nil
}

func (s *Store) put(key string, value []byte, ttl time.Duration) {
	stored := make([]byte, len(value))
	copy(stored, value)

	e := entry{value: stored}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}
	s.entries[key] = e
}
