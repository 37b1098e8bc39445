package memory

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thihaaungym/vaultboard/internal/kv"
)

func TestStore_PutGet(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "rec:1", []byte("payload"), 0))

	got, err := s.Get(ctx, "rec:1")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)
}

func TestStore_GetAbsent(t *testing.T) {
	s := New()

	_, err := s.Get(context.Background(), "rec:missing")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestStore_TTL(t *testing.T) {
	current := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := New(WithNow(func() time.Time { return current }))
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "sess:tok", []byte("1"), time.Hour))

	_, err := s.Get(ctx, "sess:tok")
	require.NoError(t, err)

	current = current.Add(59 * time.Minute)
	_, err = s.Get(ctx, "sess:tok")
	require.NoError(t, err)

	current = current.Add(time.Minute)
	_, err = s.Get(ctx, "sess:tok")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestStore_DeleteIdempotent(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "rec:1", []byte("x"), 0))
	require.NoError(t, s.Delete(ctx, "rec:1"))
	require.NoError(t, s.Delete(ctx, "rec:1"))

	_, err := s.Get(ctx, "rec:1")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestStore_UpdateAbsentKey(t *testing.T) {
	s := New()
	ctx := context.Background()

	err := s.Update(ctx, "index:records", func(old []byte) ([]byte, error) {
		assert.Nil(t, old)
		return []byte(`["a"]`), nil
	})
	require.NoError(t, err)

	got, err := s.Get(ctx, "index:records")
	require.NoError(t, err)
	assert.Equal(t, []byte(`["a"]`), got)
}

func TestStore_UpdateSerializesWriters(t *testing.T) {
	s := New()
	ctx := context.Background()

	const writers = 32
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Update(ctx, "index:records", func(old []byte) ([]byte, error) {
				var ids []string
				if old != nil {
					if err := json.Unmarshal(old, &ids); err != nil {
						return nil, err
					}
				}
				ids = append(ids, "id")
				return json.Marshal(ids)
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	raw, err := s.Get(ctx, "index:records")
	require.NoError(t, err)

	var ids []string
	require.NoError(t, json.Unmarshal(raw, &ids))
	assert.Len(t, ids, writers, "no concurrent update may be lost")
}
