// Package metrics holds the Prometheus collectors of the icon service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Lookup surfaces.
const (
	SurfaceHTTP = "http"
	SurfaceGRPC = "grpc"
	SurfaceMCP  = "mcp"
)

// Lookup results.
const (
	ResultHit     = "hit"
	ResultUnknown = "unknown"
	ResultInvalid = "invalid"
)

// Metrics groups the collectors on a private registry.
type Metrics struct {
	registry        *prometheus.Registry
	lookups         *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	svgCacheResults *prometheus.CounterVec
}

// New creates the collectors and registers them with a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "apollo",
				Name:      "icon_lookups_total",
				Help:      "Icon lookups by surface and result",
			},
			[]string{"surface", "result"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "apollo",
				Name:      "http_requests_total",
				Help:      "HTTP requests by route pattern and status code",
			},
			[]string{"route", "code"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "apollo",
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by route pattern",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		svgCacheResults: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "apollo",
				Name:      "svg_cache_total",
				Help:      "Rendered SVG cache hits and misses",
			},
			[]string{"result"},
		),
	}
	m.registry.MustRegister(
		m.lookups,
		m.httpRequests,
		m.httpDuration,
		m.svgCacheResults,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// ObserveLookup counts one icon lookup. A nil receiver is a no-op.
func (m *Metrics) ObserveLookup(surface, result string) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(surface, result).Inc()
}

// LookupCounter returns the lookup counter for surface and result.
func (m *Metrics) LookupCounter(surface, result string) prometheus.Counter {
	return m.lookups.WithLabelValues(surface, result)
}

// SVGCacheCounter returns the cache counter for result, "hit" or "miss".
func (m *Metrics) SVGCacheCounter(result string) prometheus.Counter {
	return m.svgCacheResults.WithLabelValues(result)
}

// ObserveSVGCache counts one rendered SVG cache access.
func (m *Metrics) ObserveSVGCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.svgCacheResults.WithLabelValues(result).Inc()
}

// ObserveHTTP records one finished HTTP request.
func (m *Metrics) ObserveHTTP(route string, code int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// Middleware records every request handled by next, labelled by the
// matched ServeMux pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		m.ObserveHTTP(r.Pattern, rec.status, time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(status int) {
	if !r.wroteHeader {
		r.status = status
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
