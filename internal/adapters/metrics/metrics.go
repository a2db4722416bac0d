// Package metrics exposes Prometheus metrics for the caches, the upstream client
// and the HTTP layer.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/streak/internal/core/ports"
)

const namespace = "streak"

// Breaker states reported by the breaker gauge.
const (
	BreakerClosed   = 0
	BreakerHalfOpen = 1
	BreakerOpen     = 2
)

// Metrics owns a private registry so that several instances can coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	cacheRequests  *prometheus.CounterVec
	cacheCoalesced *prometheus.CounterVec
	cacheEvictions *prometheus.CounterVec
	cacheEntries   *prometheus.GaugeVec

	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	breakerState     *prometheus.GaugeVec

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	spanDuration *prometheus.HistogramVec
}

var _ ports.CacheObserver = (*Metrics)(nil)

// New creates the collectors and registers them, plus the Go and process
// collectors, on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		cacheRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_requests_total",
				Help:      "Total number of cache lookups by cache and result",
			},
			[]string{"cache", "result"},
		),
		cacheCoalesced: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_coalesced_total",
				Help:      "Total number of callers that shared an in-flight computation",
			},
			[]string{"cache"},
		),
		cacheEvictions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_evictions_total",
				Help:      "Total number of stale entries removed by sweeps",
			},
			[]string{"cache"},
		),
		cacheEntries: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "cache_entries",
				Help:      "Current number of stored cache entries",
			},
			[]string{"cache"},
		),

		upstreamRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "upstream_requests_total",
				Help:      "Total number of upstream GraphQL requests by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		upstreamDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "upstream_request_duration_seconds",
				Help:      "Duration of upstream GraphQL requests in seconds",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"operation"},
		),
		breakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "upstream_breaker_state",
				Help:      "Upstream circuit breaker state (0=closed, 1=half-open, 2=open)",
			},
			[]string{"name"},
		),

		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by route and status code",
			},
			[]string{"route", "code"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route"},
		),

		spanDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "span_duration_seconds",
				Help:      "Duration of traced operations in seconds by span and status",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"span", "status"},
		),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Hit records a fresh cache lookup.
func (m *Metrics) Hit(cache string) {
	m.cacheRequests.WithLabelValues(cache, "hit").Inc()
}

// Miss records a cache lookup that had to compute.
func (m *Metrics) Miss(cache string) {
	m.cacheRequests.WithLabelValues(cache, "miss").Inc()
}

// Coalesced records a caller that received a shared result.
func (m *Metrics) Coalesced(cache string) {
	m.cacheCoalesced.WithLabelValues(cache).Inc()
}

// Evicted records n entries removed by a sweep.
func (m *Metrics) Evicted(cache string, n int) {
	m.cacheEvictions.WithLabelValues(cache).Add(float64(n))
}

// Size records the current entry count.
func (m *Metrics) Size(cache string, n int) {
	m.cacheEntries.WithLabelValues(cache).Set(float64(n))
}

// ObserveUpstream records one upstream request.
func (m *Metrics) ObserveUpstream(operation string, elapsed time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.upstreamRequests.WithLabelValues(operation, outcome).Inc()
	m.upstreamDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// BreakerState records the state of the named circuit breaker.
func (m *Metrics) BreakerState(name string, state int) {
	m.breakerState.WithLabelValues(name).Set(float64(state))
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(route string, code int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// ObserveSpan records one finished trace span.
func (m *Metrics) ObserveSpan(name string, elapsed time.Duration, failed bool) {
	status := "ok"
	if failed {
		status = "error"
	}
	m.spanDuration.WithLabelValues(name, status).Observe(elapsed.Seconds())
}
