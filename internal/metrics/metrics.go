// Package metrics holds the Prometheus collectors exposed at /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "studydocs"

// Outcome label values.
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeFallback = "fallback"
)

// Collector owns a private registry and the application collectors.
type Collector struct {
	registry *prometheus.Registry

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	documentsProcessed *prometheus.CounterVec
	processingDuration prometheus.Histogram
	aiCalls            *prometheus.CounterVec
	searches           *prometheus.CounterVec
}

// NewCollector registers all collectors on a fresh registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
		}, []string{"method", "route"}),
		documentsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "documents",
			Name:      "processed_total",
			Help:      "Documents that finished extraction, by outcome.",
		}, []string{"file_type", "outcome"}),
		processingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "documents",
			Name:      "processing_duration_seconds",
			Help:      "Time spent extracting and indexing one document.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
		}),
		aiCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ai",
			Name:      "calls_total",
			Help:      "AI generation calls, by operation and outcome.",
		}, []string{"operation", "outcome"}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "queries_total",
			Help:      "Search requests, by kind.",
		}, []string{"kind"}),
	}

	c.registry.MustRegister(
		c.httpInFlight,
		c.httpRequests,
		c.httpDuration,
		c.documentsProcessed,
		c.processingDuration,
		c.aiCalls,
		c.searches,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
	return c
}

// Handler exposes the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// InFlight adjusts the in-flight request gauge by delta.
func (c *Collector) InFlight(delta float64) { c.httpInFlight.Add(delta) }

// ObserveHTTP records one finished request. route should be the matched
// mux pattern, never the raw path.
func (c *Collector) ObserveHTTP(method, route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	method = strings.ToUpper(method)
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// DocumentProcessed records a finished processing run.
func (c *Collector) DocumentProcessed(fileType string, ok bool, d time.Duration) {
	outcome := OutcomeSuccess
	if !ok {
		outcome = OutcomeFailure
	}
	if fileType == "" {
		fileType = "unknown"
	}
	c.documentsProcessed.WithLabelValues(fileType, outcome).Inc()
	if d > 0 {
		c.processingDuration.Observe(d.Seconds())
	}
}

// AICall records one AI operation.
func (c *Collector) AICall(operation, outcome string) {
	c.aiCalls.WithLabelValues(operation, outcome).Inc()
}

// Search records one search request of the given kind (basic, advanced, suggestions, page).
func (c *Collector) Search(kind string) {
	c.searches.WithLabelValues(kind).Inc()
}
