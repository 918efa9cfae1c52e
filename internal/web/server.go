// Package web serves the HTML dashboard that invokes the health pipeline.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/braxton-quillin/oss-dashboard/core"
	"github.com/braxton-quillin/oss-dashboard/internal/contract"
	"github.com/braxton-quillin/oss-dashboard/schema"
)

//go:embed templates/index.html
var templateFS embed.FS

// pageData is the view model for the dashboard template.
type pageData struct {
	SearchTerm string
	Data       *schema.HealthReport
}

// Server renders health reports over HTTP.
type Server struct {
	client contract.RepoClient
	tmpl   *template.Template
}

// NewServer builds a dashboard server around the given client.
func NewServer(client contract.RepoClient) (*Server, error) {
	tmpl, err := template.New("index.html").Funcs(template.FuncMap{
		"css": func(b schema.SeverityBand) string { return b.CSSClass() },
	}).ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard template: %w", err)
	}
	return &Server{client: client, tmpl: tmpl}, nil
}

// Routes returns the HTTP handler for the dashboard.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleDashboard)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintln(w, "ok")
	})
	return mux
}

// ListenAndServe runs the dashboard on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	fmt.Printf("Dashboard listening on %s\n", addr)
	return http.ListenAndServe(addr, s.Routes())
}

// handleDashboard renders the search page, and the report when a repo query
// is present. The pipeline never errors; failures arrive inside the report.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	page := pageData{}
	if query := r.URL.Query().Get("repo"); query != "" {
		page.SearchTerm = query
		page.Data = core.BuildHealthReport(r.Context(), s.client, query)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, page); err != nil {
		contract.LogWarn("failed to render dashboard", err)
	}
}
