// Package ports defines the interfaces the journal depends on.
// Adapters implement them so the application layer never sees SQL or files.
//
// Port conventions:
//   - Context as first parameter
//   - Return domain types, never driver rows
//   - Expected outcomes (duplicate date, missing date) are values, not errors
//   - Errors are reserved for infrastructure failures and wrap
//     domain.ErrStorageUnavailable
package ports

import (
	"context"

	"github.com/jsamuelsen/mood-journal/internal/domain"
)

// EntryStore is the durable collection of mood entries, one per date.
type EntryStore interface {
	// Initialize ensures the backing table exists. Safe to call on every
	// start; it never alters or drops existing rows.
	Initialize(ctx context.Context) error

	// Create stores a new entry. If the date is already taken it returns a
	// domain.DuplicateDate outcome and writes nothing.
	Create(ctx context.Context, date, mood, note string) (domain.CreateOutcome, error)

	// ListAll returns every entry, most recent date first. An empty store
	// yields an empty, non-nil slice.
	ListAll(ctx context.Context) ([]domain.MoodEntry, error)

	// GetByDate returns the entry for date. found is false when there is none.
	GetByDate(ctx context.Context, date string) (entry domain.MoodEntry, found bool, err error)

	// Close releases the store's resources.
	Close() error
}
