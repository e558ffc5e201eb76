package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/mood-journal/internal/adapters/storage/storetest"
	"github.com/jsamuelsen/mood-journal/internal/ports"
)

func TestStore_Contract(t *testing.T) {
	storetest.Run(t, storetest.Factory{
		New: func(t *testing.T) ports.EntryStore {
			s := New()
			require.NoError(t, s.Initialize(context.Background()))
			return s
		},
	})
}

func TestCreate_SerializesSameDate(t *testing.T) {
	ctx := context.Background()
	s := New()

	const writers = 16

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)

	for i := range writers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outcome, err := s.Create(ctx, "2024-01-01", "😊", fmt.Sprintf("writer %d", i))
			assert.NoError(t, err)
			if outcome.IsCreated() {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}(i)
	}

	wg.Wait()

	assert.Equal(t, 1, created)

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
