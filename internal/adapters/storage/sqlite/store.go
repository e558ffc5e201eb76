// Package sqlite implements ports.EntryStore on a single local SQLite file.
// It uses the pure-Go modernc.org/sqlite driver through sqlx.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/jsamuelsen/mood-journal/internal/domain"
	"github.com/jsamuelsen/mood-journal/internal/platform/logging"
)

const driverName = "sqlite"

// DefaultBusyTimeout is how long a connection waits on another process's lock.
const DefaultBusyTimeout = 5 * time.Second

// schema mirrors the journal table. The UNIQUE constraint on date is what
// enforces one entry per day.
const schema = `
CREATE TABLE IF NOT EXISTS moods (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT UNIQUE NOT NULL,
	mood TEXT NOT NULL,
	note TEXT
);`

const (
	insertEntry = `INSERT INTO moods (date, mood, note) VALUES (?, ?, ?)
ON CONFLICT(date) DO NOTHING`

	selectAll = `SELECT id, date, mood, note FROM moods ORDER BY date DESC`

	selectByDate = `SELECT id, date, mood, note FROM moods WHERE date = ?`
)

// Config configures the SQLite store.
type Config struct {
	// Path is the database file. It must be a file path; ":memory:" would give
	// every connection its own empty database.
	Path string

	// BusyTimeout defaults to DefaultBusyTimeout.
	BusyTimeout time.Duration

	Logger *slog.Logger
}

// Store is a ports.EntryStore backed by SQLite.
type Store struct {
	db     *sqlx.DB
	path   string
	logger *slog.Logger
}

// row is the scan target for the moods table.
type row struct {
	ID   int64          `db:"id"`
	Date string         `db:"date"`
	Mood string         `db:"mood"`
	Note sql.NullString `db:"note"`
}

func (r row) toDomain() domain.MoodEntry {
	return domain.MoodEntry{
		ID:   r.ID,
		Date: r.Date,
		Mood: r.Mood,
		Note: r.Note.String,
	}
}

// Open prepares a store for the file at cfg.Path. No connection is made until
// the first operation.
func Open(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite store: path is required")
	}

	timeout := cfg.BusyTimeout
	if timeout <= 0 {
		timeout = DefaultBusyTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(%d)", cfg.Path, timeout.Milliseconds())

	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, domain.NewStorageUnavailableError("open", err)
	}

	// Single user, single writer.
	db.SetMaxOpenConns(1)

	return &Store{
		db:     db,
		path:   cfg.Path,
		logger: logger.With(slog.String("component", "sqlite.Store")),
	}, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// withConn acquires a dedicated connection for the duration of fn and
// releases it on every exit path.
func (s *Store) withConn(ctx context.Context, op string, fn func(*sqlx.Conn) error) error {
	conn, err := s.db.Connx(ctx)
	if err != nil {
		return domain.NewStorageUnavailableError(op, err)
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			s.logger.WarnContext(ctx, "releasing connection",
				slog.String("op", op),
				slog.Any("error", closeErr),
			)
		}
	}()

	s.logger.Log(ctx, logging.LevelTrace, "store call", slog.String("op", op))

	if err := fn(conn); err != nil {
		return domain.NewStorageUnavailableError(op, err)
	}

	return nil
}

// Initialize creates the moods table if it does not exist.
func (s *Store) Initialize(ctx context.Context) error {
	err := s.withConn(ctx, "initialize", func(conn *sqlx.Conn) error {
		_, err := conn.ExecContext(ctx, schema)
		return err
	})
	if err != nil {
		return err
	}

	s.logger.DebugContext(ctx, "schema ready", slog.String("path", s.path))

	return nil
}

// Create inserts an entry. The unique index decides duplicates; a conflicting
// insert affects no rows and is reported as domain.DuplicateDate.
func (s *Store) Create(ctx context.Context, date, mood, note string) (domain.CreateOutcome, error) {
	var outcome domain.CreateOutcome

	err := s.withConn(ctx, "create", func(conn *sqlx.Conn) error {
		res, err := conn.ExecContext(ctx, insertEntry, date, mood, note)
		if err != nil {
			return err
		}

		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			outcome = domain.DuplicateDateOutcome(date)
			return nil
		}

		id, err := res.LastInsertId()
		if err != nil {
			return err
		}

		outcome = domain.CreatedOutcome(domain.MoodEntry{
			ID:   id,
			Date: date,
			Mood: mood,
			Note: note,
		})

		return nil
	})
	if err != nil {
		return domain.CreateOutcome{}, err
	}

	return outcome, nil
}

// ListAll returns every entry ordered by date, newest first.
func (s *Store) ListAll(ctx context.Context) ([]domain.MoodEntry, error) {
	var rows []row

	err := s.withConn(ctx, "list", func(conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, &rows, selectAll)
	})
	if err != nil {
		return nil, err
	}

	entries := make([]domain.MoodEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, r.toDomain())
	}

	return entries, nil
}

// GetByDate returns the entry stored for date, if any.
func (s *Store) GetByDate(ctx context.Context, date string) (domain.MoodEntry, bool, error) {
	var (
		r     row
		found bool
	)

	err := s.withConn(ctx, "get_by_date", func(conn *sqlx.Conn) error {
		err := conn.GetContext(ctx, &r, selectByDate, date)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		found = true

		return nil
	})
	if err != nil {
		return domain.MoodEntry{}, false, err
	}

	if !found {
		return domain.MoodEntry{}, false, nil
	}

	return r.toDomain(), true, nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "sqlite"
}

// Check implements ports.HealthChecker by reading the table.
func (s *Store) Check(ctx context.Context) error {
	return s.withConn(ctx, "check", func(conn *sqlx.Conn) error {
		var n int
		return conn.GetContext(ctx, &n, `SELECT count(*) FROM moods`)
	})
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
