// Package api assembles the HTTP surface: middleware stack, CORS and routes.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	appMiddleware "github.com/weddingspa/service/internal/middleware"
	"github.com/weddingspa/service/internal/photo"
	"github.com/weddingspa/service/internal/rsvp"
	"github.com/weddingspa/service/internal/video/drive"
	"github.com/weddingspa/service/internal/video/stream"
)

// Handlers groups the domain handlers mounted under /api.
type Handlers struct {
	Photos *photo.Handler
	Stream *stream.Handler
	Drive  *drive.Handler
	RSVP   *rsvp.Handler
}

// NewRouter builds the root handler. metrics and gatherer may be nil.
func NewRouter(h Handlers, metrics *appMiddleware.Metrics, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	if metrics != nil {
		r.Use(metrics.Handler)
	}
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	// Swagger UI at /swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		// Image path (bucket)
		r.Post("/upload", h.Photos.Upload)
		r.Get("/my-photos", h.Photos.List)
		r.Delete("/delete", h.Photos.Delete)
		r.Get("/images/*", h.Photos.Serve)

		// Video path (hosting provider)
		r.Post("/stream-url", h.Stream.UploadURL)
		r.Get("/my-videos", h.Stream.List)

		// Video path (Drive)
		r.Route("/drive", func(r chi.Router) {
			r.Post("/upload-url", h.Drive.UploadURL)
			r.Get("/my-videos", h.Drive.List)
			r.Delete("/delete", h.Drive.Delete)
		})

		r.Post("/send-rsvp", h.RSVP.Send)
	})

	return r
}
