// internal/handler/home.go
//
// HTML status page.
//
// The page is a single static template interpolating the environment
// label and the wall-clock time; it lists the available endpoints and the
// pipeline feature set so a browser hit during a deploy shows everything
// at a glance.  Parsed once at package init—five fields do not justify a
// theming layer.

package handler

import (
	"html/template"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// homeTimeFormat matches the original status-page contract.
const homeTimeFormat = "2006-01-02 15:04:05"

var homeTpl = template.Must(template.New("home").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>{{.Name}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; background-color: #f5f5f5; }
        .container { max-width: 800px; margin: 0 auto; background: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        h1 { color: #333; text-align: center; }
        .info { background: #e7f3ff; padding: 15px; border-radius: 5px; margin: 20px 0; }
        .endpoint { background: #f0f0f0; padding: 10px; margin: 10px 0; border-radius: 5px; }
        .status { color: #28a745; font-weight: bold; }
    </style>
</head>
<body>
    <div class="container">
        <h1>&#128640; {{.Name}}</h1>
        <div class="info">
            <h3>Application Status: <span class="status">Running</span></h3>
            <p><strong>Environment:</strong> {{.Env}}</p>
            <p><strong>Current Time:</strong> {{.CurrentTime}}</p>
            <p><strong>Version:</strong> {{.Version}}</p>
        </div>

        <h3>Available Endpoints:</h3>
        {{range .Endpoints}}
        <div class="endpoint">
            <strong>{{.Method}} {{.Path}}</strong> - {{.Description}}
        </div>
        {{end}}

        <div class="info">
            <h4>CI/CD Pipeline Features:</h4>
            <ul>
                {{range .Features}}<li>&#9989; {{.}}</li>
                {{end}}
            </ul>
        </div>
    </div>
</body>
</html>
`))

// Home renders the HTML status page.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Name":        AppName,
		"Env":         h.cfg.Profile.Name,
		"CurrentTime": time.Now().Format(homeTimeFormat),
		"Version":     AppVersion,
		"Endpoints":   endpoints,
		"Features":    features,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := homeTpl.Execute(w, data); err != nil {
		zap.S().Errorw("home render failed", "err", err)
	}
}
