// internal/middleware/recover.go
//
// Panic-to-500 middleware.
//
// A panicking handler must not kill the worker or leak a half-written
// plain-text page; it becomes the same structured JSON error body the
// router uses for 404s, with the stack preserved in the log.  Sits
// innermost in the chain so the metrics wrapper still observes the 500.

package middleware

import (
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/yanizio/beacon/internal/handler"
	"github.com/yanizio/beacon/internal/metrics"
)

// Recover converts handler panics into structured 500 responses.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			// http.ErrAbortHandler is the sanctioned way to abort a
			// response; re-raise it for the server to swallow.
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			metrics.PanicsTotal.Inc()
			zap.S().Errorw("handler panic",
				"path", r.URL.Path,
				"panic", rec,
				"stack", string(debug.Stack()),
			)
			handler.WriteError(w, http.StatusInternalServerError,
				"Internal Server Error", "An internal server error occurred")
		}()

		next.ServeHTTP(w, r)
	})
}
