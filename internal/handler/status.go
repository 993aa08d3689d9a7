// internal/handler/status.go

package handler

import (
	"net/http"
	"time"
)

// Status reports the running application, its version, and the active
// environment.  Everything but the timestamp is stable across requests.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"application": AppShortName,
		"version":     AppVersion,
		"status":      "running",
		"environment": h.cfg.Profile.Name,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}
