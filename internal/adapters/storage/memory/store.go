// Package memory is an in-process ports.EntryStore. A mutex serializes every
// operation so the one-entry-per-date check and the insert happen atomically.
// Nothing is persisted; it backs tests and dry runs of the shell.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/jsamuelsen/mood-journal/internal/domain"
)

// Store keeps entries in a map keyed by date.
type Store struct {
	mu     sync.Mutex
	byDate map[string]domain.MoodEntry
	lastID int64
}

// New returns an empty store.
func New() *Store {
	return &Store{byDate: make(map[string]domain.MoodEntry)}
}

// Initialize is a no-op; the map is ready from New.
func (s *Store) Initialize(_ context.Context) error {
	return nil
}

// Create stores the entry unless the date is taken.
func (s *Store) Create(_ context.Context, date, mood, note string) (domain.CreateOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byDate[date]; ok {
		return domain.DuplicateDateOutcome(date), nil
	}

	s.lastID++
	entry := domain.MoodEntry{ID: s.lastID, Date: date, Mood: mood, Note: note}
	s.byDate[date] = entry

	return domain.CreatedOutcome(entry), nil
}

// ListAll returns entries newest date first.
func (s *Store) ListAll(_ context.Context) ([]domain.MoodEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]domain.MoodEntry, 0, len(s.byDate))
	for _, e := range s.byDate {
		entries = append(entries, e)
	}

	slices.SortFunc(entries, func(a, b domain.MoodEntry) int {
		return strings.Compare(b.Date, a.Date)
	})

	return entries, nil
}

// GetByDate looks up a single date.
func (s *Store) GetByDate(_ context.Context, date string) (domain.MoodEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.byDate[date]

	return e, ok, nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}
