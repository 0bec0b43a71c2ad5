package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"etd/internal/config"
	"etd/internal/discovery"
	"etd/internal/execution"
	"etd/internal/parser"
)

// Server is the dashboard HTTP server. Every run request invokes the external
// runner and parses its output independently; nothing is cached or persisted
// between requests.
type Server struct {
	config     *config.Config
	log        zerolog.Logger
	scanner    *discovery.Scanner
	caseParser *discovery.Parser
	executor   execution.Executor
	parser     *parser.PlaywrightParser
	router     *mux.Router
}

// NewServer creates a new Server with its routes registered
func NewServer(
	cfg *config.Config,
	log zerolog.Logger,
	scanner *discovery.Scanner,
	caseParser *discovery.Parser,
	executor execution.Executor,
) *Server {
	s := &Server{
		config:     cfg,
		log:        log,
		scanner:    scanner,
		caseParser: caseParser,
		executor:   executor,
		parser:     parser.NewPlaywrightParser(),
		router:     mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/tests", s.handleListTests).Methods(http.MethodGet)
	api.HandleFunc("/runs", s.handleCreateRun).Methods(http.MethodPost)

	s.router.Use(s.logMiddleware)
}

// Handler returns the root http.Handler, CORS included
func (s *Server) Handler() http.Handler {
	return cors.Default().Handler(s.router)
}

// Start listens on the configured address and blocks
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:              s.config.ListenAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.log.Info().Str("addr", s.config.ListenAddr).Msg("dashboard listening")
	return srv.ListenAndServe()
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
