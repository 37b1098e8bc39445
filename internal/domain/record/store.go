package record

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"github.com/thihaaungym/vaultboard/internal/kv"
)

// Storer is the record store surface the handlers and the query engine
// build on.
type Storer interface {
	Create(ctx context.Context, req CreateRequest) (*Record, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Record, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*Record, error)
	ListIDs(ctx context.Context) ([]string, error)
}

type Store struct {
	index   *IndexRepository
	records *RecordRepository
	now     func() time.Time
	newID   func() string
	log     *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithNow sets the clock used for timestamps, for tests.
func WithNow(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDFunc sets the id generator, for tests.
func WithIDFunc(newID func() string) StoreOption {
	return func(s *Store) {
		s.newID = newID
	}
}

func NewStore(store kv.Store, log *slog.Logger, opts ...StoreOption) *Store {
	s := &Store{
		index:   NewIndexRepository(store, log),
		records: NewRecordRepository(store, log),
		now:     time.Now,
		newID:   uuid.NewString,
		log:     log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates the request, assigns a fresh id and timestamps, prepends
// the id to the index and persists the record. Validation happens before
// any write; invalid input leaves the backend untouched.
func (s *Store) Create(ctx context.Context, req CreateRequest) (*Record, error) {
	startDate := strings.TrimSpace(req.StartDate)
	endDateRaw := strings.TrimSpace(req.EndDate)

	if err := validateWindow(startDate, endDateRaw, req.Unlimited); err != nil {
		return nil, err
	}

	var endDate *string
	if !req.Unlimited {
		endDate = &endDateRaw
	}

	ts := s.timestamp()
	rec := &Record{
		ID:        s.newID(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Password:  strings.TrimSpace(req.Password),
		StartDate: startDate,
		EndDate:   endDate,
		Unlimited: req.Unlimited,
		Note:      strings.TrimSpace(req.Note),
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	if err := s.index.Prepend(ctx, rec.ID); err != nil {
		return nil, err
	}
	if err := s.records.Put(ctx, rec); err != nil {
		return nil, err
	}

	s.log.Debug("record created", slog.String("id", rec.ID))
	return rec, nil
}

// Update loads the record and merges the partial request field by field:
// supplied values win, everything else keeps the stored value. The merged
// date window is re-validated exactly as on create. The index is untouched.
func (s *Store) Update(ctx context.Context, id string, req UpdateRequest) (*Record, error) {
	if id == "" {
		return nil, ErrMissingID
	}

	rec, err := s.records.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNotFound
	}

	startDate := strings.TrimSpace(mergeString(req.StartDate, rec.StartDate))

	storedEnd := ""
	if rec.EndDate != nil {
		storedEnd = *rec.EndDate
	}
	endDateRaw := strings.TrimSpace(mergeString(req.EndDate, storedEnd))

	unlimited := rec.Unlimited
	if req.Unlimited != nil {
		unlimited = *req.Unlimited
	}

	if err := validateWindow(startDate, endDateRaw, unlimited); err != nil {
		return nil, err
	}

	var endDate *string
	if !unlimited {
		endDate = &endDateRaw
	}

	rec.Name = strings.TrimSpace(mergeString(req.Name, rec.Name))
	rec.Email = strings.TrimSpace(mergeString(req.Email, rec.Email))
	rec.Password = strings.TrimSpace(mergeString(req.Password, rec.Password))
	rec.Note = strings.TrimSpace(mergeString(req.Note, rec.Note))
	rec.StartDate = startDate
	rec.EndDate = endDate
	rec.Unlimited = unlimited
	rec.UpdatedAt = s.timestamp()

	if err := s.records.Put(ctx, rec); err != nil {
		return nil, err
	}

	s.log.Debug("record updated", slog.String("id", rec.ID))
	return rec, nil
}

// Delete removes the id from the index and deletes the blob. Deleting an
// id that was never there still succeeds.
func (s *Store) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}

	if err := s.index.Remove(ctx, id); err != nil {
		return err
	}
	if err := s.records.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Debug("record deleted", slog.String("id", id))
	return nil
}

// Get returns the record or nil when absent.
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	return s.records.Get(ctx, id)
}

// ListIDs returns the index order, newest first.
func (s *Store) ListIDs(ctx context.Context) ([]string, error) {
	return s.index.IDs(ctx)
}

// Now exposes the store's clock so the query engine annotates against the
// same notion of "today".
func (s *Store) Now() time.Time {
	return s.now()
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(TimeLayout)
}

func mergeString(supplied *string, existing string) string {
	if supplied != nil {
		return *supplied
	}
	return existing
}

var _ Storer = (*Store)(nil)
