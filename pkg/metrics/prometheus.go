// Package metrics provides Prometheus metrics for the piste timeline service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the piste service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Ingest metrics
	entriesIngested prometheus.Counter
	entriesRejected *prometheus.CounterVec

	// Normalization metrics - per-entry pipeline drops by reason
	pointsDropped *prometheus.CounterVec

	// Timeline metrics
	timelineBuilds    prometheus.Counter
	timelineCondensed prometheus.Counter
	timelinePoints    prometheus.Histogram

	// Store metrics
	storeEntries    prometheus.Gauge
	disciplineCount prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "piste",
		subsystem:        "timeline",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	factory := promauto.With(m.registry)

	m.entriesIngested = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "entries_ingested_total",
		Help:      "Total raw performance entries accepted at ingest.",
	})
	m.entriesRejected = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "entries_rejected_total",
		Help:      "Raw performance entries rejected at ingest, by reason.",
	}, []string{"reason"})
	m.pointsDropped = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "points_dropped_total",
		Help:      "Entries dropped from the numeric timeline, by reason.",
	}, []string{"reason"})
	m.timelineBuilds = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "builds_total",
		Help:      "Total timeline aggregations performed.",
	})
	m.timelineCondensed = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "condensed_total",
		Help:      "Timeline aggregations that condensed to best-of-year points.",
	})
	m.timelinePoints = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "points_per_build",
		Help:      "Number of points in each built timeline.",
		Buckets:   []float64{1, 2, 5, 10, 20, 50, 100, 250},
	})
	m.storeEntries = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_entries",
		Help:      "Raw entries currently held by the store.",
	})
	m.disciplineCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "disciplines",
		Help:      "Distinct disciplines currently tracked.",
	})
	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method and status code.",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request duration in milliseconds.",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})
	m.systemMemoryUsage = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Process heap allocation in bytes.",
	})
	m.systemGoroutineCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutines",
		Help:      "Current number of goroutines.",
	})
}

// GetRegistry returns the custom registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RecordEntryIngested increments the accepted-entries counter.
func RecordEntryIngested() {
	if globalManager.enabled {
		globalManager.entriesIngested.Inc()
	}
}

// RecordEntryRejected increments the rejected-entries counter for a reason.
func RecordEntryRejected(reason string) {
	if globalManager.enabled {
		globalManager.entriesRejected.WithLabelValues(reason).Inc()
	}
}

// RecordPointDropped increments the pipeline drop counter for a reason.
func RecordPointDropped(reason string) {
	if globalManager.enabled {
		globalManager.pointsDropped.WithLabelValues(reason).Inc()
	}
}

// RecordTimelineBuild increments the aggregation counter.
func RecordTimelineBuild() {
	if globalManager.enabled {
		globalManager.timelineBuilds.Inc()
	}
}

// RecordTimelineCondensed increments the condensation counter.
func RecordTimelineCondensed() {
	if globalManager.enabled {
		globalManager.timelineCondensed.Inc()
	}
}

// ObserveTimelinePoints records the size of a built timeline.
func ObserveTimelinePoints(n int) {
	if globalManager.enabled {
		globalManager.timelinePoints.Observe(float64(n))
	}
}

// UpdateStoreEntries sets the raw entry gauge.
func UpdateStoreEntries(n int) {
	if globalManager.enabled {
		globalManager.storeEntries.Set(float64(n))
	}
}

// UpdateDisciplineCount sets the tracked-disciplines gauge.
func UpdateDisciplineCount(n int) {
	if globalManager.enabled {
		globalManager.disciplineCount.Set(float64(n))
	}
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
	}
}

// RecordHTTPRequestDuration records one HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(durationMs)
	}
}

// UpdateSystemMemory sets the heap allocation gauge.
func UpdateSystemMemory(bytes uint64) {
	if globalManager.enabled {
		globalManager.systemMemoryUsage.Set(float64(bytes))
	}
}

// UpdateGoroutineCount sets the goroutine gauge.
func UpdateGoroutineCount(n int) {
	if globalManager.enabled {
		globalManager.systemGoroutineCount.Set(float64(n))
	}
}
