// internal/handler/respond.go
//
// JSON response helpers shared by the route handlers and the error paths.
//
// Every JSON body in the service goes through WriteJSON so the
// Content-Type header and encoding behavior stay uniform.  Error bodies
// additionally mirror the HTTP status into the payload, which keeps
// scripted consumers from needing to read the status line.

package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ErrorPayload is the uniform JSON error body for 404, 405, and 500.
type ErrorPayload struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

// WriteJSON encodes v with the given status.  Encoding failures after the
// header is written cannot be repaired, so they are only logged.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.S().Errorw("response encode failed", "err", err)
	}
}

// WriteError emits the uniform error body for the given status.
func WriteError(w http.ResponseWriter, status int, errText, message string) {
	WriteJSON(w, status, ErrorPayload{
		Error:      errText,
		Message:    message,
		StatusCode: status,
	})
}
