package server

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"etd/internal/domain"
)

// runRequest targets the whole suite (empty), one spec file, or one test
// within a file.
type runRequest struct {
	File string `json:"file,omitempty"`
	Test string `json:"test,omitempty"`
}

// runResponse is the dashboard's view of one finished run
type runResponse struct {
	ID            string              `json:"id"`
	File          string              `json:"file,omitempty"`
	Test          string              `json:"test,omitempty"`
	ExitCode      int                 `json:"exit_code"`
	TimedOut      bool                `json:"timed_out"`
	OverallPassed bool                `json:"overall_passed"`
	Records       []domain.TestRecord `json:"records"`
	Summary       domain.RunSummary   `json:"summary"`
}

type listResponse struct {
	Specs []domain.SpecFile `json:"specs"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleListTests returns every discovered spec file with its declared tests.
func (s *Server) handleListTests(w http.ResponseWriter, r *http.Request) {
	specs, err := s.discoverSpecs()
	if err != nil {
		s.log.Error().Err(err).Msg("spec discovery failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Specs: specs})
}

// handleCreateRun triggers one runner invocation and returns the parsed result.
func (s *Server) handleCreateRun(w http.ResponseWriter, r *http.Request) {
	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	specPath := ""
	if req.File != "" {
		resolved, ok := s.resolveSpec(req.File)
		if !ok {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown spec file: " + req.File})
			return
		}
		specPath = resolved
	}

	outcome := s.executor.Run(r.Context(), specPath, req.Test)
	result := s.parser.ParseOutcome(outcome)

	writeJSON(w, http.StatusOK, runResponse{
		ID:            uuid.NewString(),
		File:          req.File,
		Test:          req.Test,
		ExitCode:      outcome.ExitCode,
		TimedOut:      outcome.TimedOut,
		OverallPassed: result.OverallPassed,
		Records:       result.Records,
		Summary:       domain.Summarize(result, outcome.Duration),
	})
}

func (s *Server) discoverSpecs() ([]domain.SpecFile, error) {
	paths, err := s.scanner.Scan(s.config.GetTestPath())
	if err != nil {
		return nil, err
	}

	specs := make([]domain.SpecFile, 0, len(paths))
	for _, path := range paths {
		rel, err := filepath.Rel(s.config.ProjectPath, path)
		if err != nil {
			rel = path
		}

		spec := domain.SpecFile{
			Path:     path,
			FilePath: filepath.ToSlash(rel),
			FileName: filepath.Base(path),
		}
		// A spec file that cannot be read still shows up in the listing,
		// just without test cases.
		if cases, err := s.caseParser.FindTestCases(path); err == nil {
			spec.Tests = cases
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// resolveSpec maps a client-supplied name onto a discovered spec file.
// Matching against the scan result keeps arbitrary paths from reaching the
// runner command line.
func (s *Server) resolveSpec(name string) (string, bool) {
	specs, err := s.discoverSpecs()
	if err != nil {
		return "", false
	}
	name = filepath.ToSlash(strings.TrimPrefix(name, "./"))
	for _, spec := range specs {
		if name == spec.FileName || name == spec.FilePath || name == spec.Path {
			return spec.Path, true
		}
	}
	return "", false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
