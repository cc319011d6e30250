// Package metrics provides Prometheus metrics for the concert discovery service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the discovery service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	registry         prometheus.Registerer

	// Core Business Metrics - What really matters for discovery
	discoveryRequests   prometheus.Counter
	discoveryLatency    prometheus.Histogram
	candidatesScanned   prometheus.Counter
	concertsReturned    prometheus.Histogram
	profileBuilds       prometheus.Counter
	profileBuildErrors  prometheus.Counter
	profileBuildLatency prometheus.Histogram

	// Cache Metrics - Single-flight discovery cache health
	cacheHits      prometheus.Counter
	cacheMisses    prometheus.Counter
	cacheCoalesced prometheus.Counter
	cacheEntries   prometheus.Gauge

	// Source Metrics - External provider behavior
	sourceQueries  *prometheus.CounterVec
	sourceFailures *prometheus.CounterVec
	sourceLatency  *prometheus.HistogramVec
	tierServed     *prometheus.CounterVec

	// Location Metrics
	gazetteerHits    prometheus.Counter
	geocodeFallbacks prometheus.Counter
	geocodeFailures  prometheus.Counter

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Boundary Metrics
	favoritesSaved prometheus.Counter
	sharesCreated  prometheus.Counter

	// Enhanced Error Metrics
	errorRateByComponent *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec

	// System Performance Metrics
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
		namespace:        "encore",
		subsystem:        "discovery",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // long function required for comprehensive metrics initialization
	auto := promauto.With(m.registry)

	// Core Business Metrics
	m.discoveryRequests = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "requests_total",
		Help:      "Total number of discovery requests served",
	})

	m.discoveryLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "latency_milliseconds",
		Help:      "Histogram of end-to-end discovery latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.candidatesScanned = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "candidates_scanned_total",
		Help:      "Total number of raw candidates seen before dedupe and scoring",
	})

	m.concertsReturned = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "concerts_returned",
		Help:      "Distribution of scored concerts returned per request",
		Buckets:   []float64{0, 1, 5, 10, 25, 50},
	})

	m.profileBuilds = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "profile",
		Name:      "builds_total",
		Help:      "Total number of taste profile builds",
	})

	m.profileBuildErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "profile",
		Name:      "build_errors_total",
		Help:      "Total number of failed taste profile builds",
	})

	m.profileBuildLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "profile",
		Name:      "build_latency_milliseconds",
		Help:      "Histogram of taste profile build latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	// Cache Metrics
	m.cacheHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "Total number of discovery cache hits",
	})

	m.cacheMisses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "cache",
		Name:      "misses_total",
		Help:      "Total number of discovery cache misses",
	})

	m.cacheCoalesced = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "cache",
		Name:      "coalesced_total",
		Help:      "Total number of requests that awaited an in-flight fetch instead of issuing their own",
	})

	m.cacheEntries = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "cache",
		Name:      "entries",
		Help:      "Current number of live discovery cache entries",
	})

	// Source Metrics
	m.sourceQueries = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: "source",
			Name:      "queries_total",
			Help:      "Total number of external source queries by source",
		},
		[]string{"source"},
	)

	m.sourceFailures = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: "source",
			Name:      "failures_total",
			Help:      "Total number of external source failures by source and reason",
		},
		[]string{"source", "reason"},
	)

	m.sourceLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: "source",
			Name:      "latency_milliseconds",
			Help:      "External source request latency in milliseconds by source",
			Buckets:   m.histogramBuckets,
		},
		[]string{"source"},
	)

	m.tierServed = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "tier_served_total",
			Help:      "Total number of discovery results by serving tier",
		},
		[]string{"tier"},
	)

	// Location Metrics
	m.gazetteerHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "geo",
		Name:      "gazetteer_hits_total",
		Help:      "Total number of locations resolved from the bundled gazetteer",
	})

	m.geocodeFallbacks = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "geo",
		Name:      "fallback_calls_total",
		Help:      "Total number of external geocoder fallback calls",
	})

	m.geocodeFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "geo",
		Name:      "failures_total",
		Help:      "Total number of locations that could not be resolved",
	})

	// HTTP Performance Metrics
	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: "http",
			Name:      "request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	// Boundary Metrics
	m.favoritesSaved = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "favorites",
		Name:      "saved_total",
		Help:      "Total number of favorites saved",
	})

	m.sharesCreated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "share",
		Name:      "created_total",
		Help:      "Total number of share snapshots created",
	})

	// Enhanced Error Metrics
	m.errorRateByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: "errors",
			Name:      "by_component_total",
			Help:      "Total errors by component and type",
		},
		[]string{"component", "error_type"},
	)

	m.errorRateByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: "errors",
			Name:      "by_endpoint_total",
			Help:      "Total errors by endpoint, method and error type",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	// System Performance Metrics
	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "memory_usage_bytes",
		Help:      "Current memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "goroutine_count",
		Help:      "Current number of goroutines",
	})
}

// Core Business Metrics Functions.

// RecordDiscoveryRequest increments the discovery request counter.
func RecordDiscoveryRequest() {
	globalManager.discoveryRequests.Inc()
}

// RecordDiscoveryLatency records end-to-end discovery latency.
func RecordDiscoveryLatency(latencyMs float64) {
	globalManager.discoveryLatency.Observe(latencyMs)
}

// RecordCandidatesScanned adds to the scanned candidate counter.
func RecordCandidatesScanned(n int) {
	globalManager.candidatesScanned.Add(float64(n))
}

// RecordConcertsReturned records how many scored concerts a request returned.
func RecordConcertsReturned(n int) {
	globalManager.concertsReturned.Observe(float64(n))
}

// RecordProfileBuild increments the profile build counter.
func RecordProfileBuild() {
	globalManager.profileBuilds.Inc()
}

// RecordProfileBuildError increments the profile build error counter.
func RecordProfileBuildError() {
	globalManager.profileBuildErrors.Inc()
}

// RecordProfileBuildLatency records taste profile build latency.
func RecordProfileBuildLatency(latencyMs float64) {
	globalManager.profileBuildLatency.Observe(latencyMs)
}

// Cache Metrics Functions.

// RecordCacheHit increments the cache hit counter.
func RecordCacheHit() {
	globalManager.cacheHits.Inc()
}

// RecordCacheMiss increments the cache miss counter.
func RecordCacheMiss() {
	globalManager.cacheMisses.Inc()
}

// RecordCacheCoalesced increments the coalesced-waiter counter.
func RecordCacheCoalesced() {
	globalManager.cacheCoalesced.Inc()
}

// UpdateCacheEntries sets the live cache entry gauge.
func UpdateCacheEntries(n int) {
	globalManager.cacheEntries.Set(float64(n))
}

// Source Metrics Functions.

// RecordSourceQuery increments the query counter for a source.
func RecordSourceQuery(source string) {
	globalManager.sourceQueries.WithLabelValues(source).Inc()
}

// RecordSourceFailure increments the failure counter for a source.
func RecordSourceFailure(source, reason string) {
	globalManager.sourceFailures.WithLabelValues(source, reason).Inc()
}

// RecordSourceLatency records request latency for a source.
func RecordSourceLatency(source string, latencyMs float64) {
	globalManager.sourceLatency.WithLabelValues(source).Observe(latencyMs)
}

// RecordTierServed increments the serving-tier counter.
func RecordTierServed(tier string) {
	globalManager.tierServed.WithLabelValues(tier).Inc()
}

// Location Metrics Functions.

// RecordGazetteerHit increments the gazetteer hit counter.
func RecordGazetteerHit() {
	globalManager.gazetteerHits.Inc()
}

// RecordGeocodeFallback increments the geocoder fallback counter.
func RecordGeocodeFallback() {
	globalManager.geocodeFallbacks.Inc()
}

// RecordGeocodeFailure increments the unresolved-location counter.
func RecordGeocodeFailure() {
	globalManager.geocodeFailures.Inc()
}

// HTTP Metrics Functions.

// RecordHTTPRequest records an HTTP request with its outcome.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// Boundary Metrics Functions.

// RecordFavoriteSaved increments the favorites counter.
func RecordFavoriteSaved() {
	globalManager.favoritesSaved.Inc()
}

// RecordShareCreated increments the share snapshot counter.
func RecordShareCreated() {
	globalManager.sharesCreated.Inc()
}

// Error Metrics Functions.

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// System Performance Metrics Functions.

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
