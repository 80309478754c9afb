package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"intown_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestFileSwipeStoreMissingFile(t *testing.T) {
	store := NewFileSwipeStore(filepath.Join(t.TempDir(), "swipes.json"))

	all, err := store.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)

	status, err := store.Get(context.Background(), "anyone")
	require.NoError(t, err)
	assert.Equal(t, models.SwipePending, status)
}

func TestFileSwipeStorePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "swipes.json")
	store := NewFileSwipeStore(path)
	store.Clock = fixedClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	rec, err := store.Set(ctx, "a", models.SwipeLeft)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01T00:00:00Z", rec.Timestamp)
	_, err = store.Set(ctx, "a", models.SwipeRight)
	require.NoError(t, err)
	_, err = store.Set(ctx, "b", models.SwipeLeft)
	require.NoError(t, err)

	reopened := NewFileSwipeStore(path)
	all, err := reopened.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]models.SwipeRecord{
		"a": {ContactID: "a", Status: models.SwipeRight, Timestamp: "2024-01-01T00:00:01Z"},
		"b": {ContactID: "b", Status: models.SwipeLeft, Timestamp: "2024-01-01T00:00:02Z"},
	}, all)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestFileSwipeStoreCorruptFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "swipes.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	store := NewFileSwipeStore(path)

	_, err := store.All(ctx)
	require.Error(t, err)

	_, err = store.Set(ctx, "a", models.SwipeRight)
	require.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data), "corrupt document is left for inspection")
}

func TestFileSwipeStoreEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swipes.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	all, err := NewFileSwipeStore(path).All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestFileSwipeStoreRejectsPending(t *testing.T) {
	store := NewFileSwipeStore(filepath.Join(t.TempDir(), "swipes.json"))
	_, err := store.Set(context.Background(), "a", models.SwipePending)
	assert.ErrorIs(t, err, ErrInvalidSwipeStatus)
}

func TestFileSwipeStoreConcurrentWriters(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctx := context.Background()
	store := NewFileSwipeStore(filepath.Join(t.TempDir(), "swipes.json"))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			status := models.SwipeLeft
			if i%2 == 0 {
				status = models.SwipeRight
			}
			_, err := store.Set(ctx, fmt.Sprintf("c%02d", i), status)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	all, err := store.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 20, "no update is lost")
}
