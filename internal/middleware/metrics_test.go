package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_LabelsByRoutePattern(t *testing.T) {
	m := MustNewMetrics(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(m.Handler)
	r.Get("/api/images/*", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, p := range []string{"/api/images/uploads/a/1.png", "/api/images/uploads/b/2.png"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/images/*", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
}

func TestLogger_PassesStatusThrough(t *testing.T) {
	h := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	w := httptest.NewRecorder()

	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestLogger_KeepsFlusher(t *testing.T) {
	var flushable bool
	h := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, flushable = w.(http.Flusher)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, flushable)
}

func TestMetrics_ImplicitStatusIsOK(t *testing.T) {
	m := MustNewMetrics(prometheus.NewRegistry())
	r := chi.NewRouter()
	r.Use(Logger, m.Handler)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/health", "200")))
}
