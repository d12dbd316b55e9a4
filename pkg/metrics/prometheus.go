// Package metrics provides Prometheus metrics for pitchmetrics runs. The CLI
// is short-lived, so metrics are exported as a node_exporter textfile rather
// than served over HTTP.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every pitchmetrics collector.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	rowsLoaded      prometheus.Counter
	rowsDropped     prometheus.Counter
	schemaErrors    prometheus.Counter
	matchesImported prometheus.Counter
	storedEvents    prometheus.Gauge

	computations        *prometheus.CounterVec
	computationDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "pitchmetrics",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.rowsLoaded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "rows_loaded_total",
		Help:      "Total number of event rows read from match sheets",
	})
	m.rowsDropped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "rows_dropped_total",
		Help:      "Total number of pass rows removed by coordinate cleaning",
	})
	m.schemaErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "schema_errors_total",
		Help:      "Total number of match sheets rejected for missing columns",
	})
	m.matchesImported = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "matches_imported_total",
		Help:      "Total number of match sheets stored",
	})
	m.storedEvents = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "stored_events",
		Help:      "Number of raw events in the event log",
	})
	m.computations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "computations_total",
		Help:      "Total number of derived views computed, by view",
	}, []string{"view"})
	m.computationDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "computation_duration_seconds",
		Help:      "Time spent computing a derived view, by view",
		Buckets:   m.histogramBuckets,
	}, []string{"view"})
}

func (m *Manager) RecordRowsLoaded(n int)   { m.rowsLoaded.Add(float64(n)) }
func (m *Manager) RecordRowsDropped(n int)  { m.rowsDropped.Add(float64(n)) }
func (m *Manager) RecordSchemaError()       { m.schemaErrors.Inc() }
func (m *Manager) RecordMatchImported()     { m.matchesImported.Inc() }
func (m *Manager) UpdateStoredEvents(n int) { m.storedEvents.Set(float64(n)) }

// ObserveComputation counts one computation of view and records how long it took.
func (m *Manager) ObserveComputation(view string, d time.Duration) {
	m.computations.WithLabelValues(view).Inc()
	m.computationDuration.WithLabelValues(view).Observe(d.Seconds())
}

// WriteTextfile writes every collector in textfile-exposition format to path.
func (m *Manager) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailed, path, err)
	}
	return nil
}

// Package-level helpers bound to the global manager.

func RecordRowsLoaded(n int)   { globalManager.RecordRowsLoaded(n) }
func RecordRowsDropped(n int)  { globalManager.RecordRowsDropped(n) }
func RecordSchemaError()       { globalManager.RecordSchemaError() }
func RecordMatchImported()     { globalManager.RecordMatchImported() }
func UpdateStoredEvents(n int) { globalManager.UpdateStoredEvents(n) }

func ObserveComputation(view string, d time.Duration) {
	globalManager.ObserveComputation(view, d)
}

// Timer starts timing view; call the returned func when the computation ends.
func Timer(view string) func() {
	start := time.Now()
	return func() { globalManager.ObserveComputation(view, time.Since(start)) }
}

func WriteTextfile(path string) error { return globalManager.WriteTextfile(path) }

// GetRegistry returns the registry used by the global manager.
func GetRegistry() *prometheus.Registry { return customRegistry }
