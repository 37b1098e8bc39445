package record

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/thihaaungym/vaultboard/internal/kv/memory"
)

func newTestStore(t *testing.T) (*Store, *memory.Store) {
	t.Helper()

	backend := memory.New()
	seq := 0
	store := NewStore(backend, slog.Default(),
		WithNow(func() time.Time {
			seq++
			return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(seq) * time.Second)
		}),
	)
	return store, backend
}

func TestStore_CreateGetRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, CreateRequest{
		Name:      "  Netflix  ",
		Email:     "admin@example.com",
		Password:  "s3cret",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-10",
		Note:      "family plan",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Netflix", created.Name, "free text is trimmed")
	assert.False(t, created.Unlimited)
	require.NotNil(t, created.EndDate)
	assert.Equal(t, "2024-01-10", *created.EndDate)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created, got)
}

func TestStore_CreateUnlimitedDropsEndDate(t *testing.T) {
	store, _ := newTestStore(t)

	created, err := store.Create(context.Background(), CreateRequest{
		Name:      "lifetime license",
		StartDate: "2024-01-01",
		EndDate:   "2024-06-01", // supplied but meaningless for unlimited
		Unlimited: true,
	})
	require.NoError(t, err)
	assert.True(t, created.Unlimited)
	assert.Nil(t, created.EndDate)
}

func TestStore_CreateValidation(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     CreateRequest
		wantErr error
	}{
		{
			name:    "end before start",
			req:     CreateRequest{StartDate: "2024-02-01", EndDate: "2024-01-31"},
			wantErr: ErrInvalidRange,
		},
		{
			name:    "bad start date",
			req:     CreateRequest{StartDate: "2024/02/01", EndDate: "2024-02-10"},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "missing end date on bounded record",
			req:     CreateRequest{StartDate: "2024-02-01"},
			wantErr: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Create(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// No partial writes on invalid input.
	ids, err := store.ListIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestStore_IndexNewestFirst(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	var created []string
	for i := 0; i < 3; i++ {
		rec, err := store.Create(ctx, CreateRequest{
			Name:      fmt.Sprintf("record-%d", i),
			StartDate: "2024-01-01",
			Unlimited: true,
		})
		require.NoError(t, err)
		created = append(created, rec.ID)
	}

	ids, err := store.ListIDs(ctx)
	require.NoError(t, err)
	require.Len(t, ids, 3)
	assert.Equal(t, []string{created[2], created[1], created[0]}, ids)
}

func TestStore_UpdatePartialMerge(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, CreateRequest{
		Name:      "VPN",
		Email:     "old@example.com",
		Password:  "old-pass",
		StartDate: "2024-01-01",
		EndDate:   "2024-03-01",
		Note:      "keep me",
	})
	require.NoError(t, err)

	updated, err := store.Update(ctx, created.ID, UpdateRequest{
		Password: strptr("new-pass"),
		EndDate:  strptr("2024-06-01"),
	})
	require.NoError(t, err)

	assert.Equal(t, "new-pass", updated.Password)
	require.NotNil(t, updated.EndDate)
	assert.Equal(t, "2024-06-01", *updated.EndDate)

	// Unspecified fields keep their stored values.
	assert.Equal(t, "VPN", updated.Name)
	assert.Equal(t, "old@example.com", updated.Email)
	assert.Equal(t, "keep me", updated.Note)
	assert.Equal(t, "2024-01-01", updated.StartDate)

	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Greater(t, updated.UpdatedAt, created.UpdatedAt)
}

func TestStore_UpdateExplicitEmptyClearsField(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, CreateRequest{
		Name:      "SaaS seat",
		Note:      "temporary",
		StartDate: "2024-01-01",
		Unlimited: true,
	})
	require.NoError(t, err)

	updated, err := store.Update(ctx, created.ID, UpdateRequest{Note: strptr("")})
	require.NoError(t, err)
	assert.Empty(t, updated.Note, "explicit empty string is a supplied value, not absence")
	assert.Equal(t, "SaaS seat", updated.Name)
}

func TestStore_UpdateUnlimitedTransitions(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, CreateRequest{
		StartDate: "2024-01-01",
		EndDate:   "2024-03-01",
	})
	require.NoError(t, err)

	// Bounded -> unlimited drops the end date.
	unlimited := true
	updated, err := store.Update(ctx, created.ID, UpdateRequest{Unlimited: &unlimited})
	require.NoError(t, err)
	assert.True(t, updated.Unlimited)
	assert.Nil(t, updated.EndDate)

	// Unlimited -> bounded needs a valid end date again.
	bounded := false
	_, err = store.Update(ctx, created.ID, UpdateRequest{Unlimited: &bounded})
	assert.ErrorIs(t, err, ErrInvalidDate)

	updated, err = store.Update(ctx, created.ID, UpdateRequest{
		Unlimited: &bounded,
		EndDate:   strptr("2024-05-01"),
	})
	require.NoError(t, err)
	assert.False(t, updated.Unlimited)
	require.NotNil(t, updated.EndDate)
	assert.Equal(t, "2024-05-01", *updated.EndDate)
}

func TestStore_UpdateRevalidatesMergedWindow(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, CreateRequest{
		StartDate: "2024-01-01",
		EndDate:   "2024-03-01",
	})
	require.NoError(t, err)

	// Moving the start past the stored end must fail even though the end
	// was not part of the request.
	_, err = store.Update(ctx, created.ID, UpdateRequest{StartDate: strptr("2024-04-01")})
	assert.ErrorIs(t, err, ErrInvalidRange)

	// The stored record is untouched by the rejected update.
	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", got.StartDate)
}

func TestStore_UpdateNotFound(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Update(context.Background(), "nope", UpdateRequest{Name: strptr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_UpdateMissingID(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Update(context.Background(), "", UpdateRequest{})
	assert.ErrorIs(t, err, ErrMissingID)
}

func TestStore_DeleteIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	keep, err := store.Create(ctx, CreateRequest{StartDate: "2024-01-01", Unlimited: true})
	require.NoError(t, err)
	gone, err := store.Create(ctx, CreateRequest{StartDate: "2024-01-01", Unlimited: true})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, gone.ID))

	ids, err := store.ListIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{keep.ID}, ids)

	// Second delete of the same id still succeeds and leaves the index alone.
	require.NoError(t, store.Delete(ctx, gone.ID))
	require.NoError(t, store.Delete(ctx, "never-existed"))

	ids, err = store.ListIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{keep.ID}, ids)

	got, err := store.Get(ctx, gone.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_DeleteMissingID(t *testing.T) {
	store, _ := newTestStore(t)
	assert.ErrorIs(t, store.Delete(context.Background(), ""), ErrMissingID)
}
