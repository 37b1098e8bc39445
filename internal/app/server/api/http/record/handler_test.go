package record

import (
	"context"
	"errors"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/thihaaungym/vaultboard/internal/domain/record"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Create(ctx context.Context, req record.CreateRequest) (*record.Record, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*record.Record), args.Error(1)
}

func (m *MockStore) Update(ctx context.Context, id string, req record.UpdateRequest) (*record.Record, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*record.Record), args.Error(1)
}

func (m *MockStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) Get(ctx context.Context, id string) (*record.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*record.Record), args.Error(1)
}

func (m *MockStore) ListIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

type MockQuery struct {
	mock.Mock
}

func (m *MockQuery) List(ctx context.Context, f record.Filter) (*record.ListResponse, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*record.ListResponse), args.Error(1)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var status huma.StatusError
	require.ErrorAs(t, err, &status)
	return status.GetStatus()
}

func TestHandler_List(t *testing.T) {
	query := new(MockQuery)
	query.On("List", mock.Anything, record.Filter{
		Q:      "net",
		Status: record.StatusSoon,
		Sort:   record.SortDue,
	}).Return(&record.ListResponse{
		Today:   "2024-01-10",
		Stats:   record.Stats{Total: 1, Active: 1, Soon: 1},
		Records: []record.Annotated{{Record: record.Record{ID: "r1", Name: "netflix"}}},
	}, nil)

	h := NewHandler(new(MockStore), query, slog.Default(), huma.Middlewares{})

	output, err := h.list(context.Background(), &listInput{Q: "net", Status: "soon", Sort: "due"})
	require.NoError(t, err)

	assert.True(t, output.Body.OK)
	assert.Equal(t, "2024-01-10", output.Body.Today)
	assert.Equal(t, 1, output.Body.Stats.Soon)
	require.Len(t, output.Body.Records, 1)
	assert.Equal(t, "r1", output.Body.Records[0].ID)
	query.AssertExpectations(t)
}

func TestHandler_List_BackendFailure(t *testing.T) {
	query := new(MockQuery)
	query.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("backend down"))

	h := NewHandler(new(MockStore), query, slog.Default(), huma.Middlewares{})

	_, err := h.list(context.Background(), &listInput{})
	require.Error(t, err)
	assert.Equal(t, 500, statusOf(t, err))
}

func TestHandler_Create(t *testing.T) {
	store := new(MockStore)
	store.On("Create", mock.Anything, record.CreateRequest{
		Name:      "Netflix",
		StartDate: "2024-01-01",
		EndDate:   "2024-06-01",
	}).Return(&record.Record{ID: "r1", Name: "Netflix"}, nil)

	h := NewHandler(store, new(MockQuery), slog.Default(), huma.Middlewares{})

	input := &createInput{}
	input.Body.Name = "Netflix"
	input.Body.StartDate = "2024-01-01"
	input.Body.EndDate = "2024-06-01"

	output, err := h.create(context.Background(), input)
	require.NoError(t, err)

	assert.True(t, output.Body.OK)
	require.NotNil(t, output.Body.Record)
	assert.Equal(t, "r1", output.Body.Record.ID)
	store.AssertExpectations(t)
}

func TestHandler_Create_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid date", err: record.ErrInvalidDate, wantStatus: 400},
		{name: "invalid range", err: record.ErrInvalidRange, wantStatus: 400},
		{name: "backend failure stays opaque", err: errors.New("kv timeout"), wantStatus: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockStore)
			store.On("Create", mock.Anything, mock.Anything).Return(nil, tt.err)
			h := NewHandler(store, new(MockQuery), slog.Default(), huma.Middlewares{})

			_, err := h.create(context.Background(), &createInput{})
			require.Error(t, err)
			assert.Equal(t, tt.wantStatus, statusOf(t, err))
		})
	}
}

func TestHandler_Update(t *testing.T) {
	name := "renamed"
	store := new(MockStore)
	store.On("Update", mock.Anything, "r1", record.UpdateRequest{Name: &name}).
		Return(&record.Record{ID: "r1", Name: "renamed"}, nil)

	h := NewHandler(store, new(MockQuery), slog.Default(), huma.Middlewares{})

	input := &updateInput{ID: "r1"}
	input.Body.Name = &name

	output, err := h.update(context.Background(), input)
	require.NoError(t, err)

	assert.True(t, output.Body.OK)
	assert.Equal(t, "renamed", output.Body.Record.Name)
	store.AssertExpectations(t)
}

func TestHandler_Update_NotFound(t *testing.T) {
	store := new(MockStore)
	store.On("Update", mock.Anything, "ghost", mock.Anything).Return(nil, record.ErrNotFound)

	h := NewHandler(store, new(MockQuery), slog.Default(), huma.Middlewares{})

	_, err := h.update(context.Background(), &updateInput{ID: "ghost"})
	require.Error(t, err)
	assert.Equal(t, 404, statusOf(t, err))
}

func TestHandler_Delete(t *testing.T) {
	store := new(MockStore)
	store.On("Delete", mock.Anything, "r1").Return(nil)

	h := NewHandler(store, new(MockQuery), slog.Default(), huma.Middlewares{})

	output, err := h.delete(context.Background(), &deleteInput{ID: "r1"})
	require.NoError(t, err)
	assert.True(t, output.Body.OK)
	store.AssertExpectations(t)
}

func TestHandler_Delete_MissingID(t *testing.T) {
	store := new(MockStore)
	store.On("Delete", mock.Anything, "").Return(record.ErrMissingID)

	h := NewHandler(store, new(MockQuery), slog.Default(), huma.Middlewares{})

	_, err := h.delete(context.Background(), &deleteInput{})
	require.Error(t, err)
	assert.Equal(t, 400, statusOf(t, err))
}
