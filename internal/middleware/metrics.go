// internal/middleware/metrics.go
//
// Prometheus instrumentation middleware.
//
// Records one counter increment and one latency observation per request.
// The path label is the chi route pattern (e.g. "/api/status"), not the
// raw URL, so unmatched requests collapse into a single "(unmatched)"
// series instead of exploding label cardinality.

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/yanizio/beacon/internal/metrics"
)

// Metrics wraps next with request counting and latency observation.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		path := "(unmatched)"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				path = p
			}
		}

		metrics.RequestsTotal.WithLabelValues(
			r.Method, path, strconv.Itoa(ww.Status()),
		).Inc()
		metrics.RequestDuration.WithLabelValues(path).
			Observe(time.Since(start).Seconds())
	})
}
