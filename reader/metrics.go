package reader

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/linestream/metric"
)

// Metrics holds Prometheus metrics for one reader session
type Metrics struct {
	linesRead       prometheus.Counter
	recordsEmitted  prometheus.Counter
	malformedLines  prometheus.Counter
	schemaConflicts prometheus.Counter
	schemaColumns   prometheus.Gauge
}

// newMetrics creates and registers reader metrics. Sessions are
// distinguished by a const label so concurrent readers never collide on
// the Prometheus name.
func newMetrics(registry *metric.Registry, session string) *Metrics {
	// Return nil if no registry provided (nil input = nil feature pattern)
	if registry == nil {
		return nil
	}

	labels := prometheus.Labels{"session": session}
	metrics := &Metrics{
		linesRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "linestream",
			Subsystem:   "reader",
			Name:        "lines_read_total",
			Help:        "Physical lines consumed from the source",
			ConstLabels: labels,
		}),
		recordsEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "linestream",
			Subsystem:   "reader",
			Name:        "records_emitted_total",
			Help:        "Records successfully assembled and returned",
			ConstLabels: labels,
		}),
		malformedLines: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "linestream",
			Subsystem:   "reader",
			Name:        "malformed_lines_total",
			Help:        "Lines rejected for grammar or type violations",
			ConstLabels: labels,
		}),
		schemaConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "linestream",
			Subsystem:   "reader",
			Name:        "schema_conflicts_total",
			Help:        "Field observations no widening rule could absorb",
			ConstLabels: labels,
		}),
		schemaColumns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "linestream",
			Subsystem:   "reader",
			Name:        "schema_columns",
			Help:        "Current size of the accumulated schema",
			ConstLabels: labels,
		}),
	}

	component := "reader_" + session
	registry.RegisterCounter(component, "lines_read", metrics.linesRead)
	registry.RegisterCounter(component, "records_emitted", metrics.recordsEmitted)
	registry.RegisterCounter(component, "malformed_lines", metrics.malformedLines)
	registry.RegisterCounter(component, "schema_conflicts", metrics.schemaConflicts)
	registry.RegisterGauge(component, "schema_columns", metrics.schemaColumns)

	return metrics
}
