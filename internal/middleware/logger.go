// Package middleware provides reusable HTTP middleware for the API server.
package middleware

import (
	"log"
	"net/http"
	"time"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// wrap returns a status-recording writer that keeps the optional interfaces
// (Flusher, Hijacker, ReaderFrom) of w. An already wrapped writer is reused.
func wrap(w http.ResponseWriter, r *http.Request) chiMiddleware.WrapResponseWriter {
	if ww, ok := w.(chiMiddleware.WrapResponseWriter); ok {
		return ww
	}
	return chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
}

// status reports the written status code, 200 when the handler wrote nothing explicit.
func status(ww chiMiddleware.WrapResponseWriter) int {
	if code := ww.Status(); code != 0 {
		return code
	}
	return http.StatusOK
}

// Logger logs request id, method, path, status code, and duration for every request.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := wrap(w, r)
		next.ServeHTTP(ww, r)
		log.Printf("[%s] %s %s %d %s", chiMiddleware.GetReqID(r.Context()), r.Method, r.URL.Path, status(ww), time.Since(start))
	})
}
