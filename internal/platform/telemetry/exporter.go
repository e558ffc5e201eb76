package telemetry

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.opentelemetry.io/otel/sdk/trace"
)

// LogSpanExporter writes finished spans to a slog.Logger at debug level.
type LogSpanExporter struct {
	logger *slog.Logger
}

var _ trace.SpanExporter = (*LogSpanExporter)(nil)

// NewLogSpanExporter creates a span exporter backed by logger.
func NewLogSpanExporter(logger *slog.Logger) *LogSpanExporter {
	return &LogSpanExporter{logger: logger.With(slog.String("component", "telemetry"))}
}

// ExportSpans implements trace.SpanExporter.
func (e *LogSpanExporter) ExportSpans(ctx context.Context, spans []trace.ReadOnlySpan) error {
	for _, span := range spans {
		attrs := []slog.Attr{
			slog.String("span", span.Name()),
			slog.String("trace_id", span.SpanContext().TraceID().String()),
			slog.String("span_id", span.SpanContext().SpanID().String()),
			slog.Duration("duration", span.EndTime().Sub(span.StartTime())),
			slog.String("status", span.Status().Code.String()),
		}

		for _, kv := range span.Attributes() {
			attrs = append(attrs, slog.String(string(kv.Key), kv.Value.Emit()))
		}

		e.logger.LogAttrs(ctx, slog.LevelDebug, "span finished", attrs...)
	}

	return nil
}

// Shutdown implements trace.SpanExporter.
func (e *LogSpanExporter) Shutdown(context.Context) error {
	return nil
}

// logMetrics collects one snapshot from reader and logs every data point.
func logMetrics(ctx context.Context, reader *metric.ManualReader, logger *slog.Logger) error {
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		return err
	}

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					logger.DebugContext(ctx, "metric",
						slog.String("name", m.Name),
						slog.String("attributes", encode(dp.Attributes)),
						slog.Int64("value", dp.Value),
					)
				}
			case metricdata.Histogram[float64]:
				for _, dp := range data.DataPoints {
					logger.DebugContext(ctx, "metric",
						slog.String("name", m.Name),
						slog.String("attributes", encode(dp.Attributes)),
						slog.Uint64("count", dp.Count),
						slog.Float64("sum", dp.Sum),
					)
				}
			}
		}
	}

	return nil
}

func encode(set attribute.Set) string {
	return set.Encoded(attribute.DefaultEncoder())
}
