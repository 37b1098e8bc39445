package record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"github.com/thihaaungym/vaultboard/internal/kv"
)

const indexKey = "index:records"

func recordKey(id string) string {
	return "rec:" + id
}

// IndexRepository owns the ordered id list under index:records. Membership
// changes go through the backend's atomic Update so concurrent creates and
// deletes cannot clobber each other's index writes.
type IndexRepository struct {
	store kv.Store
	log   *slog.Logger
}

func NewIndexRepository(store kv.Store, log *slog.Logger) *IndexRepository {
	return &IndexRepository{
		store: store,
		log:   log,
	}
}

// IDs returns the index, newest first. An absent or unreadable index is an
// empty one.
func (r *IndexRepository) IDs(ctx context.Context) ([]string, error) {
	raw, err := r.store.Get(ctx, indexKey)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		r.log.Warn("index is not a valid id list, treating as empty", slog.String("error", err.Error()))
		return nil, nil
	}
	return ids, nil
}

// Prepend puts id at the front of the index, so the default order stays
// newest-first.
func (r *IndexRepository) Prepend(ctx context.Context, id string) error {
	err := r.store.Update(ctx, indexKey, func(old []byte) ([]byte, error) {
		ids := decodeIndex(old)
		return json.Marshal(append([]string{id}, ids...))
	})
	if err != nil {
		return fmt.Errorf("prepend %q to index: %w", id, err)
	}
	return nil
}

// Remove drops id from the index. Removing an absent id rewrites the index
// unchanged.
func (r *IndexRepository) Remove(ctx context.Context, id string) error {
	err := r.store.Update(ctx, indexKey, func(old []byte) ([]byte, error) {
		ids := decodeIndex(old)
		kept := ids[:0]
		for _, candidate := range ids {
			if candidate != id {
				kept = append(kept, candidate)
			}
		}
		return json.Marshal(kept)
	})
	if err != nil {
		return fmt.Errorf("remove %q from index: %w", id, err)
	}
	return nil
}

func decodeIndex(raw []byte) []string {
	if raw == nil {
		return []string{}
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return []string{}
	}
	return ids
}

// RecordRepository owns the individual record blobs under rec:<id>.
type RecordRepository struct {
	store kv.Store
	log   *slog.Logger
}

func NewRecordRepository(store kv.Store, log *slog.Logger) *RecordRepository {
	return &RecordRepository{
		store: store,
		log:   log,
	}
}

// Get returns the record, or nil when it is absent or unreadable. Readers
// tolerate orphaned index entries, so "no backing record" is not an error.
func (r *RecordRepository) Get(ctx context.Context, id string) (*Record, error) {
	raw, err := r.store.Get(ctx, recordKey(id))
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read record %q: %w", id, err)
	}

	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		r.log.Warn("skipping undecodable record blob", slog.String("id", id))
		return nil, nil
	}
	return &rec, nil
}

func (r *RecordRepository) Put(ctx context.Context, rec *Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record %q: %w", rec.ID, err)
	}
	if err := r.store.Put(ctx, recordKey(rec.ID), raw, 0); err != nil {
		return fmt.Errorf("write record %q: %w", rec.ID, err)
	}
	return nil
}

func (r *RecordRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, recordKey(id)); err != nil {
		return fmt.Errorf("delete record %q: %w", id, err)
	}
	return nil
}
