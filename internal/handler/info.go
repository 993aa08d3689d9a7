// internal/handler/info.go
//
// Static application descriptor.
//
// The endpoint and feature lists are package-level values so the home
// page and /api/info render from the same source; both lists are ordered
// and never mutated after init.

package handler

import "net/http"

// Endpoint describes one public route for /api/info and the home page.
type Endpoint struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Description string `json:"description"`
}

var endpoints = []Endpoint{
	{Path: "/", Method: "GET", Description: "Home page"},
	{Path: "/health", Method: "GET", Description: "Health check"},
	{Path: "/api/status", Method: "GET", Description: "API status"},
	{Path: "/api/info", Method: "GET", Description: "Application info"},
}

var features = []string{
	"Automated testing with go test",
	"GitHub Actions workflow",
	"Docker containerization ready",
	"Environment-based configuration",
	"Prometheus metrics endpoint",
}

// infoPayload keeps the field order stable in the encoded body.
type infoPayload struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Version     string     `json:"version"`
	Author      string     `json:"author"`
	Endpoints   []Endpoint `json:"endpoints"`
	Features    []string   `json:"features"`
}

// Info returns the static application descriptor.
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, infoPayload{
		Name:        AppName,
		Description: AppDescription,
		Version:     AppVersion,
		Author:      AppAuthor,
		Endpoints:   endpoints,
		Features:    features,
	})
}
