// Package main is the entry point for the moodjournal command.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/jsamuelsen/mood-journal/internal/adapters/cli"
	"github.com/jsamuelsen/mood-journal/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen/mood-journal/internal/app"
	"github.com/jsamuelsen/mood-journal/internal/platform/config"
	"github.com/jsamuelsen/mood-journal/internal/platform/logging"
	"github.com/jsamuelsen/mood-journal/internal/platform/metrics"
	"github.com/jsamuelsen/mood-journal/internal/platform/telemetry"
	"github.com/jsamuelsen/mood-journal/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD)"
var (
	// Version is the semantic version of the binary.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := run(ctx, os.Args[1:])
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}

	os.Exit(cli.ExitCode(err))
}

func run(ctx context.Context, args []string) error {
	// 1. Determine profile from environment, .env included
	sources := config.DefaultSources()

	profile, err := config.ResolveProfile(sources)
	if err != nil {
		return fmt.Errorf("resolving profile: %w", err)
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.LoadFrom(sources, profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging, scoped to this invocation
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	ctx = logging.WithContext(ctx, logger)
	ctx = logging.WithInvocationID(ctx, uuid.NewString())
	logger = logging.FromContext(ctx)

	logger.DebugContext(ctx, "starting",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("command", cli.CommandName(args)),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Exporter:     cfg.Telemetry.Exporter,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	}, logger)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			logger.ErrorContext(ctx, "telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Open the journal file and make sure the table exists
	sqliteStore, err := sqlite.Open(sqlite.Config{
		Path:        cfg.Store.Path,
		BusyTimeout: cfg.Store.BusyTimeout,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}

	store, err := telemetry.InstrumentStore(sqliteStore, sqliteStore.Name(), telemetry.StoreConfig{})
	if err != nil {
		_ = sqliteStore.Close()
		return fmt.Errorf("instrumenting store: %w", err)
	}

	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.ErrorContext(ctx, "closing journal", slog.Any("error", closeErr))
		}
	}()

	if err := store.Initialize(ctx); err != nil {
		return fmt.Errorf("initializing journal: %w", err)
	}

	// 6. Register the store as a health checker
	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(sqliteStore); err != nil {
		return fmt.Errorf("registering store health check: %w", err)
	}

	// 7. Create the journal service (application layer)
	journal := app.NewJournalService(app.JournalServiceConfig{
		Store:       store,
		Moods:       cfg.Journal.Moods,
		StrictMoods: cfg.Journal.StrictMoods,
		Logger:      logger,
	})

	// 8. Run the command
	shell := cli.New(cli.Config{
		Service: journal,
		Health:  healthRegistry,
		Out:     os.Stdout,
		ErrOut:  os.Stderr,
		Logger:  logger,
	})

	runErr := shell.Run(ctx, args)

	// 9. Refresh the metrics textfile, if configured
	if cfg.Metrics.TextfilePath != "" {
		if err := writeMetrics(ctx, journal, cfg.Metrics.TextfilePath); err != nil {
			logger.WarnContext(ctx, "metrics snapshot failed", slog.Any("error", err))
		}
	}

	return runErr
}

func writeMetrics(ctx context.Context, journal *app.JournalService, path string) error {
	entries, err := journal.History(ctx)
	if err != nil {
		return err
	}

	snapshot := metrics.NewSnapshot()
	snapshot.Observe(entries)

	return snapshot.WriteTextfile(path)
}
