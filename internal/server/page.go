package server

import (
	"embed"
	"html/template"
	"net/http"

	"etd/internal/domain"
)

//go:embed templates/dashboard.html.tmpl
var templateFS embed.FS

var dashboardTmpl = template.Must(template.ParseFS(templateFS, "templates/dashboard.html.tmpl"))

type dashboardData struct {
	Specs []domain.SpecFile
	Error string
}

// handleIndex renders the dashboard page with the current spec listing.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := dashboardData{}
	specs, err := s.discoverSpecs()
	if err != nil {
		data.Error = err.Error()
	} else {
		data.Specs = specs
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(w, data); err != nil {
		s.log.Error().Err(err).Msg("render dashboard")
	}
}
