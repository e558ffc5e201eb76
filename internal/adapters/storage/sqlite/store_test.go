package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/mood-journal/internal/adapters/storage/storetest"
	"github.com/jsamuelsen/mood-journal/internal/domain"
	"github.com/jsamuelsen/mood-journal/internal/ports"
)

func openTestStore(t *testing.T, path string) *Store {
	t.Helper()

	store, err := Open(Config{Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Initialize(context.Background()))

	return store
}

func TestStore_Contract(t *testing.T) {
	storetest.Run(t, storetest.Factory{
		New: func(t *testing.T) ports.EntryStore {
			return openTestStore(t, filepath.Join(t.TempDir(), "mood_journal.db"))
		},
		Reopen: func(t *testing.T, previous ports.EntryStore) ports.EntryStore {
			path := previous.(*Store).Path()
			require.NoError(t, previous.Close())
			return openTestStore(t, path)
		},
	})
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open(Config{})
	require.Error(t, err)
}

func TestInitialize_UnwritableLocation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "mood_journal.db")

	store, err := Open(Config{Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	err = store.Initialize(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsStorageUnavailable(err))

	var storageErr *domain.StorageUnavailableError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "initialize", storageErr.Op)
}

func TestOperations_AfterClose(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "mood_journal.db"))
	require.NoError(t, store.Close())

	ctx := context.Background()

	_, err := store.Create(ctx, "2024-01-01", "😊", "")
	assert.True(t, domain.IsStorageUnavailable(err))

	_, err = store.ListAll(ctx)
	assert.True(t, domain.IsStorageUnavailable(err))

	_, _, err = store.GetByDate(ctx, "2024-01-01")
	assert.True(t, domain.IsStorageUnavailable(err))
}

func TestInitialize_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mood_journal.db")
	openTestStore(t, path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestCreate_EmptyNoteStoredAsEmptyString(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t, filepath.Join(t.TempDir(), "mood_journal.db"))

	_, err := store.Create(ctx, "2024-01-01", "😊", "")
	require.NoError(t, err)

	var note *string
	conn, err := store.db.Connx(ctx)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.GetContext(ctx, &note, `SELECT note FROM moods WHERE date = ?`, "2024-01-01"))
	require.NotNil(t, note)
	assert.Equal(t, "", *note)
}

func TestGetByDate_NullNoteReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t, filepath.Join(t.TempDir(), "mood_journal.db"))

	conn, err := store.db.Connx(ctx)
	require.NoError(t, err)
	_, err = conn.ExecContext(ctx, `INSERT INTO moods (date, mood, note) VALUES (?, ?, NULL)`, "2024-06-01", "😌")
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	got, found, err := store.GetByDate(ctx, "2024-06-01")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "", got.Note)
}

func TestCheck(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "mood_journal.db"))

	assert.Equal(t, "sqlite", store.Name())
	require.NoError(t, store.Check(context.Background()))

	var _ ports.HealthChecker = store
}
