package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes Prometheus collectors for API traffic.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// MustNewMetrics registers the collectors with reg (the default registerer
// when nil). Registration errors panic, as promauto does.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "weddingspa",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		},
		[]string{"method", "route", "status"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "weddingspa",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Time spent serving HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	reg.MustRegister(requests, duration)
	return &Metrics{requests: requests, duration: duration}
}

// Handler records one observation per request, labelled with the matched
// chi route pattern so key-bearing paths do not explode cardinality.
func (m *Metrics) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := wrap(w, r)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(status(ww))).Inc()
		m.duration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
