// Package metrics writes a Prometheus textfile snapshot of the journal so a
// node exporter textfile collector can scrape it between invocations.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/mood-journal/internal/domain"
)

// Snapshot holds the journal gauges on a private registry.
type Snapshot struct {
	registry    *prometheus.Registry
	entries     prometheus.Gauge
	byMood      *prometheus.GaugeVec
	latestEntry prometheus.Gauge
}

// NewSnapshot creates the gauges and registers them.
func NewSnapshot() *Snapshot {
	s := &Snapshot{
		registry: prometheus.NewRegistry(),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "moodjournal_entries",
			Help: "Number of entries in the journal.",
		}),
		byMood: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "moodjournal_entries_by_mood",
			Help: "Number of entries per mood.",
		}, []string{"mood"}),
		latestEntry: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "moodjournal_latest_entry_timestamp_seconds",
			Help: "Unix time of the most recent entry date, 0 when the journal is empty.",
		}),
	}

	s.registry.MustRegister(s.entries, s.byMood, s.latestEntry)

	return s
}

// Registry exposes the underlying registry.
func (s *Snapshot) Registry() *prometheus.Registry {
	return s.registry
}

// Observe sets the gauges from entries, which must be ordered most recent
// first as ports.EntryStore.ListAll returns them.
func (s *Snapshot) Observe(entries []domain.MoodEntry) {
	s.entries.Set(float64(len(entries)))

	s.byMood.Reset()
	for mood, n := range domain.Tally(entries) {
		s.byMood.WithLabelValues(mood).Set(float64(n))
	}

	s.latestEntry.Set(0)
	if len(entries) > 0 {
		if t, err := domain.ParseDate(entries[0].Date); err == nil {
			s.latestEntry.Set(float64(t.Unix()))
		}
	}
}

// WriteTextfile atomically writes the registry to path.
func (s *Snapshot) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, s.registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}

	return nil
}
