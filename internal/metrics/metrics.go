// Package metrics exposes Prometheus instruments for game lookups, the result
// cache, exports and the HTTP surface.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Fetch outcomes.
const (
	OutcomeOK    = "ok"
	OutcomeEmpty = "empty"
	OutcomeError = "error"
)

// Cache lookup sources.
const (
	SourceCache = "cache"
	SourceStore = "store"
	SourceAPI   = "api"
)

type Manager struct {
	namespace        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	gameFetches         *prometheus.CounterVec
	fetchLatency        prometheus.Histogram
	gameLookups         *prometheus.CounterVec
	batchSize           prometheus.Histogram
	exportsBuilt        *prometheus.CounterVec
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

type Option func(*Manager)

func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.histogramBuckets = buckets
		}
	}
}

// WithRegistry replaces the private registry, mostly for tests.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(m *Manager) {
		if registry != nil {
			m.registry = registry
		}
	}
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "innings",
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

	m.gameFetches = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "game_fetches_total",
		Help:      "Play-by-play fetches from the Stats API by outcome.",
	}, []string{"outcome"})

	m.fetchLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "game_fetch_duration_seconds",
		Help:      "Latency of play-by-play fetches.",
		Buckets:   m.histogramBuckets,
	})

	m.gameLookups = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "game_lookups_total",
		Help:      "Game lookups by the layer that answered them.",
	}, []string{"source"})

	m.batchSize = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "batch_identifiers",
		Help:      "Identifiers per batch request.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})

	m.exportsBuilt = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "exports_total",
		Help:      "Export artifacts built by format.",
	}, []string{"format"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by path and status code.",
	}, []string{"path", "code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by path.",
		Buckets:   m.histogramBuckets,
	}, []string{"path"})
}

// TrackCacheSize exposes size as a gauge read at scrape time.
func (m *Manager) TrackCacheSize(size func() int) error {
	gauge := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "cache_entries",
		Help:      "Game results currently held in the result cache.",
	}, func() float64 { return float64(size()) })

	if err := m.registry.Register(gauge); err != nil {
		return fmt.Errorf("failed to register cache size gauge: %w", err)
	}
	return nil
}

func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Manager) RecordFetch(outcome string, d time.Duration) {
	m.gameFetches.WithLabelValues(outcome).Inc()
	m.fetchLatency.Observe(d.Seconds())
}

func (m *Manager) RecordLookup(source string) {
	m.gameLookups.WithLabelValues(source).Inc()
}

func (m *Manager) RecordBatch(size int) {
	m.batchSize.Observe(float64(size))
}

func (m *Manager) RecordExport(format string) {
	m.exportsBuilt.WithLabelValues(format).Inc()
}

func (m *Manager) RecordHTTPRequest(path string, code int, d time.Duration) {
	m.httpRequests.WithLabelValues(path, strconv.Itoa(code)).Inc()
	m.httpRequestDuration.WithLabelValues(path).Observe(d.Seconds())
}
