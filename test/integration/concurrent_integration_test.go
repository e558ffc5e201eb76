//go:build integration

package integration

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/mood-journal/internal/adapters/storage/sqlite"
)

// openHandle opens an independent store on path, standing in for a second
// process using the same journal file.
func openHandle(t *testing.T, path string) *sqlite.Store {
	t.Helper()

	store, err := sqlite.Open(sqlite.Config{
		Path:        path,
		BusyTimeout: 10 * time.Second,
		Logger:      discard,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Initialize(context.Background()))

	return store
}

// TestConcurrent_SameDateAcrossHandles verifies that when several handles
// race to record the same date, exactly one wins and the rest see a duplicate.
func TestConcurrent_SameDateAcrossHandles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mood_journal.db")

	const handles = 4
	stores := make([]*sqlite.Store, handles)
	for i := range stores {
		stores[i] = openHandle(t, path)
	}

	var (
		created    int32
		duplicates int32
		wg         sync.WaitGroup
	)

	for i, store := range stores {
		wg.Add(1)
		go func() {
			defer wg.Done()

			outcome, err := store.Create(context.Background(), "2024-06-01", "😊", fmt.Sprintf("handle %d", i))
			if !assert.NoError(t, err) {
				return
			}

			if outcome.IsCreated() {
				atomic.AddInt32(&created, 1)
			} else {
				atomic.AddInt32(&duplicates, 1)
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, int32(1), created)
	assert.Equal(t, int32(handles-1), duplicates)

	all, err := stores[0].ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

// TestConcurrent_DistinctDatesAcrossHandles verifies that writers on
// different dates all succeed and every entry is visible to every handle.
func TestConcurrent_DistinctDatesAcrossHandles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mood_journal.db")
	first := openHandle(t, path)
	second := openHandle(t, path)

	var wg sync.WaitGroup
	for day := 1; day <= 10; day++ {
		store := first
		if day%2 == 0 {
			store = second
		}

		wg.Add(1)
		go func() {
			defer wg.Done()

			outcome, err := store.Create(context.Background(), fmt.Sprintf("2024-07-%02d", day), "😌", "")
			if assert.NoError(t, err) {
				assert.True(t, outcome.IsCreated())
			}
		}()
	}

	wg.Wait()

	for _, store := range []*sqlite.Store{first, second} {
		all, err := store.ListAll(context.Background())
		require.NoError(t, err)
		require.Len(t, all, 10)
		assert.Equal(t, "2024-07-10", all[0].Date)
	}
}
