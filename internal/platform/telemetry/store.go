package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	metricapi "go.opentelemetry.io/otel/metric"
	traceapi "go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/mood-journal/internal/domain"
	"github.com/jsamuelsen/mood-journal/internal/ports"
)

const instrumentationName = "github.com/jsamuelsen/mood-journal/telemetry"

// Outcome attribute values recorded per store operation.
const (
	outcomeOK       = "ok"
	outcomeError    = "error"
	outcomeFound    = "found"
	outcomeNotFound = "not_found"
)

// StoreConfig selects the providers used by InstrumentStore. Nil providers
// fall back to the otel globals.
type StoreConfig struct {
	TracerProvider traceapi.TracerProvider
	MeterProvider  metricapi.MeterProvider
}

// InstrumentedStore wraps a ports.EntryStore with a span, an operation
// counter and a duration histogram per call.
type InstrumentedStore struct {
	next       ports.EntryStore
	backend    string
	tracer     traceapi.Tracer
	operations metricapi.Int64Counter
	duration   metricapi.Float64Histogram
}

var _ ports.EntryStore = (*InstrumentedStore)(nil)

// InstrumentStore decorates next. backend names the wrapped adapter in the
// recorded attributes.
func InstrumentStore(next ports.EntryStore, backend string, cfg StoreConfig) (*InstrumentedStore, error) {
	tp := cfg.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	mp := cfg.MeterProvider
	if mp == nil {
		mp = otel.GetMeterProvider()
	}

	meter := mp.Meter(instrumentationName)

	operations, err := meter.Int64Counter(
		"moodjournal.store.operations",
		metricapi.WithDescription("Entry store operations by outcome"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		"moodjournal.store.duration",
		metricapi.WithDescription("Entry store operation duration in seconds"),
		metricapi.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &InstrumentedStore{
		next:       next,
		backend:    backend,
		tracer:     tp.Tracer(instrumentationName),
		operations: operations,
		duration:   duration,
	}, nil
}

// observe runs fn inside a span named after op and records its outcome.
func (s *InstrumentedStore) observe(ctx context.Context, op string, fn func(context.Context) (string, error)) error {
	ctx, span := s.tracer.Start(ctx, "store."+op,
		traceapi.WithSpanKind(traceapi.SpanKindInternal),
		traceapi.WithAttributes(attribute.String("db.system", s.backend)),
	)
	defer span.End()

	start := time.Now()
	outcome, err := fn(ctx)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		outcome = outcomeError
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	span.SetAttributes(attribute.String("moodjournal.outcome", outcome))

	attrs := metricapi.WithAttributes(
		attribute.String("op", op),
		attribute.String("outcome", outcome),
	)
	s.operations.Add(ctx, 1, attrs)
	s.duration.Record(ctx, elapsed, attrs)

	return err
}

// Initialize implements ports.EntryStore.
func (s *InstrumentedStore) Initialize(ctx context.Context) error {
	return s.observe(ctx, "initialize", func(ctx context.Context) (string, error) {
		return outcomeOK, s.next.Initialize(ctx)
	})
}

// Create implements ports.EntryStore.
func (s *InstrumentedStore) Create(ctx context.Context, date, mood, note string) (domain.CreateOutcome, error) {
	var result domain.CreateOutcome

	err := s.observe(ctx, "create", func(ctx context.Context) (string, error) {
		var err error
		result, err = s.next.Create(ctx, date, mood, note)

		return result.Status.String(), err
	})

	return result, err
}

// ListAll implements ports.EntryStore.
func (s *InstrumentedStore) ListAll(ctx context.Context) ([]domain.MoodEntry, error) {
	var entries []domain.MoodEntry

	err := s.observe(ctx, "list_all", func(ctx context.Context) (string, error) {
		var err error
		entries, err = s.next.ListAll(ctx)

		return outcomeOK, err
	})

	return entries, err
}

// GetByDate implements ports.EntryStore.
func (s *InstrumentedStore) GetByDate(ctx context.Context, date string) (domain.MoodEntry, bool, error) {
	var (
		entry domain.MoodEntry
		found bool
	)

	err := s.observe(ctx, "get_by_date", func(ctx context.Context) (string, error) {
		var err error
		entry, found, err = s.next.GetByDate(ctx, date)

		if found {
			return outcomeFound, err
		}

		return outcomeNotFound, err
	})

	return entry, found, err
}

// Close implements ports.EntryStore. It is not traced.
func (s *InstrumentedStore) Close() error {
	return s.next.Close()
}
