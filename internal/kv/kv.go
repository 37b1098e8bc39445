// Package kv defines the key-value backend contract every durable piece of
// state lives behind: record blobs, the record index and session markers.
package kv

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when a key is absent or its TTL has passed.
var ErrNotFound = errors.New("kv: key not found")

// UpdateFunc transforms the current value of a key into its next value.
// old is nil when the key is absent.
type UpdateFunc func(old []byte) ([]byte, error)

// Store is the backend contract. Get/Put/Delete are plain single-key
// operations. Update is an atomic read-modify-write: implementations must
// guarantee that concurrent Updates of the same key cannot lose each
// other's writes, which the record index relies on.
type Store interface {
	// Get returns the value for key, or ErrNotFound when absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key. A positive ttl bounds the entry's
	// lifetime; zero means no expiry.
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Update applies fn to the current value of key under mutual exclusion
	// and stores the result without a TTL.
	Update(ctx context.Context, key string, fn UpdateFunc) error
}
