// Package storetest holds the behavioral contract every ports.EntryStore
// implementation must satisfy. Adapter packages run it from their tests.
package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/mood-journal/internal/domain"
	"github.com/jsamuelsen/mood-journal/internal/ports"
)

// Factory returns a fresh, initialized store. Reopen, when non-nil, opens a
// second handle on the same backing data so persistence can be checked.
type Factory struct {
	New    func(t *testing.T) ports.EntryStore
	Reopen func(t *testing.T, previous ports.EntryStore) ports.EntryStore
}

// Run executes the contract against the stores produced by f.
func Run(t *testing.T, f Factory) {
	t.Helper()

	t.Run("create then get preserves fields", func(t *testing.T) {
		testCreateThenGet(t, f)
	})
	t.Run("duplicate date leaves existing entry unchanged", func(t *testing.T) {
		testDuplicateDate(t, f)
	})
	t.Run("get unknown date is not found", func(t *testing.T) {
		testGetUnknown(t, f)
	})
	t.Run("list empty store", func(t *testing.T) {
		testListEmpty(t, f)
	})
	t.Run("list orders by date descending", func(t *testing.T) {
		testListOrder(t, f)
	})
	t.Run("ids increase and are never reused", func(t *testing.T) {
		testIDs(t, f)
	})
	t.Run("initialize is idempotent", func(t *testing.T) {
		testInitializeIdempotent(t, f)
	})
	t.Run("round trip keeps text exactly", func(t *testing.T) {
		testRoundTrip(t, f)
	})
	if f.Reopen != nil {
		t.Run("entries persist across handles", func(t *testing.T) {
			testPersistence(t, f)
		})
	}
}

func testCreateThenGet(t *testing.T, f Factory) {
	ctx := context.Background()
	store := f.New(t)

	outcome, err := store.Create(ctx, "2024-01-01", "😊", "walked the dog")
	require.NoError(t, err)
	require.True(t, outcome.IsCreated())
	assert.Positive(t, outcome.Entry.ID)

	got, found, err := store.GetByDate(ctx, "2024-01-01")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, outcome.Entry, got)
	assert.Equal(t, "😊", got.Mood)
	assert.Equal(t, "walked the dog", got.Note)
}

func testDuplicateDate(t *testing.T, f Factory) {
	ctx := context.Background()
	store := f.New(t)

	first, err := store.Create(ctx, "2024-01-03", "😔", "rainy")
	require.NoError(t, err)
	require.True(t, first.IsCreated())

	second, err := store.Create(ctx, "2024-01-03", "😊", "actually fine")
	require.NoError(t, err)
	assert.True(t, second.IsDuplicate())
	assert.Equal(t, "2024-01-03", second.Entry.Date)
	assert.Zero(t, second.Entry.ID)

	got, found, err := store.GetByDate(ctx, "2024-01-03")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, first.Entry, got)

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func testGetUnknown(t *testing.T, f Factory) {
	store := f.New(t)

	got, found, err := store.GetByDate(context.Background(), "1999-12-31")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, domain.MoodEntry{}, got)
}

func testListEmpty(t *testing.T, f Factory) {
	store := f.New(t)

	all, err := store.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func testListOrder(t *testing.T, f Factory) {
	ctx := context.Background()
	store := f.New(t)

	for _, date := range []string{"2024-01-03", "2024-01-01", "2024-01-02"} {
		_, err := store.Create(ctx, date, "😌", "")
		require.NoError(t, err)
	}

	all, err := store.ListAll(ctx)
	require.NoError(t, err)

	dates := make([]string, 0, len(all))
	for _, e := range all {
		dates = append(dates, e.Date)
	}
	assert.Equal(t, []string{"2024-01-03", "2024-01-02", "2024-01-01"}, dates)

	again, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, all, again)
}

func testIDs(t *testing.T, f Factory) {
	ctx := context.Background()
	store := f.New(t)

	a, err := store.Create(ctx, "2024-02-01", "😎", "")
	require.NoError(t, err)

	_, err = store.Create(ctx, "2024-02-01", "😎", "")
	require.NoError(t, err)

	b, err := store.Create(ctx, "2024-02-02", "😎", "")
	require.NoError(t, err)

	assert.Greater(t, b.Entry.ID, a.Entry.ID)
}

func testInitializeIdempotent(t *testing.T, f Factory) {
	ctx := context.Background()
	store := f.New(t)

	_, err := store.Create(ctx, "2024-03-01", "😴", "tired")
	require.NoError(t, err)

	require.NoError(t, store.Initialize(ctx))
	require.NoError(t, store.Initialize(ctx))

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "tired", all[0].Note)
}

func testRoundTrip(t *testing.T, f Factory) {
	ctx := context.Background()
	store := f.New(t)

	note := "  Line one\n\tline two with 'quotes' and \"double\" ; DROP TABLE moods; --  "
	mood := " Mixed CASE mood "

	_, err := store.Create(ctx, "2024-04-01", mood, note)
	require.NoError(t, err)
	_, err = store.Create(ctx, "2024-04-02", "😭", "")
	require.NoError(t, err)

	got, found, err := store.GetByDate(ctx, "2024-04-01")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, mood, got.Mood)
	assert.Equal(t, note, got.Note)

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "", all[0].Note)
	assert.Equal(t, note, all[1].Note)
}

func testPersistence(t *testing.T, f Factory) {
	ctx := context.Background()
	store := f.New(t)

	_, err := store.Create(ctx, "2024-05-01", "😊", "kept")
	require.NoError(t, err)

	reopened := f.Reopen(t, store)

	got, found, err := reopened.GetByDate(ctx, "2024-05-01")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "kept", got.Note)

	dup, err := reopened.Create(ctx, "2024-05-01", "😡", "")
	require.NoError(t, err)
	assert.True(t, dup.IsDuplicate())
}
