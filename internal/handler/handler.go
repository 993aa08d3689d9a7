// internal/handler/handler.go
//
// Route registration for the Beacon HTTP surface.
//
// Context
// -------
// The five public routes are fixed; there is no runtime route table, no
// per-request branching on content, and no handler performs I/O beyond
// reading the clock and the immutable configuration.  A Handler is built
// once in cmd/web from the loaded *config.Config and registered on the
// root chi router after the middleware chain.
//
// Unmatched paths and mismatched methods both produce the structured JSON
// error body (see respond.go); chi's plain-text defaults never reach a
// client.

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yanizio/beacon/internal/config"
)

// Application identity, echoed by /, /api/status, and /api/info.
const (
	AppName        = "Beacon CI/CD Demo Application"
	AppShortName   = "Beacon CI/CD Demo"
	AppVersion     = "1.0.0"
	AppDescription = "A sample Go web service demonstrating CI/CD pipelines " +
		"with GitHub Actions"
	AppAuthor = "DevOps Team"
)

// Handler serves every route from the read-only configuration snapshot.
type Handler struct {
	cfg *config.Config
}

// New returns a Handler bound to cfg.  cfg must already be validated.
func New(cfg *config.Config) *Handler {
	return &Handler{cfg: cfg}
}

// Register mounts the public routes and the error handlers on r.  Call
// after any r.Use so the middleware chain covers every route.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.Home)
	r.Get("/health", h.Health)
	r.Route("/api", func(api chi.Router) {
		api.Get("/status", h.Status)
		api.Get("/info", h.Info)
	})

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)
}

// Routes is a convenience for tests: a bare router with just the public
// surface, no middleware.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	h.Register(r)
	return r
}

// NotFound is the structured 404 for unmatched paths.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusNotFound,
		"Not Found", "The requested resource was not found")
}

// MethodNotAllowed mirrors NotFound's shape for known paths hit with the
// wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusMethodNotAllowed,
		"Method Not Allowed", "The method is not allowed for the requested URL")
}
