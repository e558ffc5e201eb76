// Package app contains the journal's use cases. It sits between the shell
// and the entry store: it validates candidate entries, logs, and derives the
// history, trend and search views from the store's results.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/jsamuelsen/mood-journal/internal/domain"
	"github.com/jsamuelsen/mood-journal/internal/platform/logging"
	"github.com/jsamuelsen/mood-journal/internal/ports"
)

// RecordRequest is a candidate entry collected by the shell.
type RecordRequest struct {
	Date string `field:"date" validate:"required,isodate"`
	Mood string `field:"mood" validate:"required"`
	Note string `field:"note"`
}

// searchRequest validates the date of a lookup.
type searchRequest struct {
	Date string `field:"date" validate:"required,isodate"`
}

// JournalService orchestrates journal use cases over a ports.EntryStore.
type JournalService struct {
	store       ports.EntryStore
	moods       []string
	strictMoods bool
	clock       func() time.Time
	logger      *slog.Logger
}

// JournalServiceConfig contains the service's dependencies.
type JournalServiceConfig struct {
	Store ports.EntryStore

	// Moods is the offered vocabulary. Defaults to domain.DefaultMoods.
	Moods []string

	// StrictMoods rejects moods outside Moods. Off by default: the store
	// itself accepts any non-empty mood.
	StrictMoods bool

	// Clock defaults to time.Now.
	Clock func() time.Time

	Logger *slog.Logger
}

// NewJournalService creates the service. It panics without a store.
func NewJournalService(cfg JournalServiceConfig) *JournalService {
	if cfg.Store == nil {
		panic("app: JournalServiceConfig.Store is required")
	}

	moods := cfg.Moods
	if len(moods) == 0 {
		moods = domain.DefaultMoods
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &JournalService{
		store:       cfg.Store,
		moods:       slices.Clone(moods),
		strictMoods: cfg.StrictMoods,
		clock:       clock,
		logger:      logger.With(slog.String("component", "app.JournalService")),
	}
}

func (s *JournalService) loggerFor(ctx context.Context) *slog.Logger {
	if logger, ok := logging.Lookup(ctx); ok {
		return logger.With(slog.String("component", "app.JournalService"))
	}

	return s.logger
}

// Moods returns the offered mood vocabulary.
func (s *JournalService) Moods() []string {
	return slices.Clone(s.moods)
}

// Today returns the current date in canonical form.
func (s *JournalService) Today() string {
	return domain.FormatDate(s.clock())
}

// Record validates req and stores it. A taken date comes back as a
// domain.DuplicateDate outcome with a nil error.
func (s *JournalService) Record(ctx context.Context, req RecordRequest) (domain.CreateOutcome, error) {
	logger := s.loggerFor(ctx).With(slog.String("method", "Record"), slog.String("date", req.Date))

	if err := validateStruct(req); err != nil {
		return domain.CreateOutcome{}, fmt.Errorf("validating entry: %w", err)
	}

	if s.strictMoods && !slices.Contains(s.moods, req.Mood) {
		return domain.CreateOutcome{}, fmt.Errorf("validating entry: %w",
			domain.NewValidationErrorWithValue("mood", "is not one of the configured moods", req.Mood))
	}

	outcome, err := s.store.Create(ctx, req.Date, req.Mood, req.Note)
	if err != nil {
		logger.ErrorContext(ctx, "failed to store entry", slog.Any("error", err))
		return domain.CreateOutcome{}, fmt.Errorf("recording entry: %w", err)
	}

	if outcome.IsDuplicate() {
		logger.InfoContext(ctx, "date already has an entry")
		return outcome, nil
	}

	logger.InfoContext(ctx, "entry saved",
		slog.Int64("entry_id", outcome.Entry.ID),
		slog.String("mood", outcome.Entry.Mood),
		slog.Int("note_length", len(outcome.Entry.Note)),
	)

	return outcome, nil
}

// History returns every entry, most recent first.
func (s *JournalService) History(ctx context.Context) ([]domain.MoodEntry, error) {
	entries, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}

	s.loggerFor(ctx).DebugContext(ctx, "listed entries", slog.Int("count", len(entries)))

	return entries, nil
}

// Trends tallies entries per mood, most frequent first.
func (s *JournalService) Trends(ctx context.Context) ([]domain.MoodCount, error) {
	entries, err := s.History(ctx)
	if err != nil {
		return nil, err
	}

	return domain.SortedTally(entries), nil
}

// Search returns the entry for date. found is false when no entry exists for date.
func (s *JournalService) Search(ctx context.Context, date string) (entry domain.MoodEntry, found bool, err error) {
	if err := validateStruct(searchRequest{Date: date}); err != nil {
		return domain.MoodEntry{}, false, fmt.Errorf("validating search: %w", err)
	}

	entry, found, err = s.store.GetByDate(ctx, date)
	if err != nil {
		return domain.MoodEntry{}, false, fmt.Errorf("searching %s: %w", date, err)
	}

	s.loggerFor(ctx).DebugContext(ctx, "searched date",
		slog.String("date", date),
		slog.Bool("found", found),
	)

	return entry, found, nil
}
