// internal/handler/health.go

package handler

import (
	"net/http"
	"time"
)

// Health is the liveness endpoint consumed by probes and load balancers.
// The timestamp is RFC 3339 UTC so callers can parse it back.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"status":      "healthy",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.cfg.Profile.Name,
	})
}
