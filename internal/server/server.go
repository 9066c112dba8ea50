// Package server exposes stored GEDCOM documents over an HTTP API.
package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/gedtree/pkg/buildinfo"
	"github.com/matzehuels/gedtree/pkg/export"
	"github.com/matzehuels/gedtree/pkg/pipeline"
	"github.com/matzehuels/gedtree/pkg/store"
)

// DefaultMaxUpload bounds the size of an uploaded GEDCOM file.
const DefaultMaxUpload = 64 << 20

// Config holds server settings.
type Config struct {
	// MaxUpload is the largest accepted request body in bytes.
	MaxUpload int64
	// Export controls date formatting in person summaries and CSV.
	Export export.Options
	// SearchLimit caps the number of search hits returned.
	SearchLimit int
}

// Server is the HTTP API server for gedtree.
type Server struct {
	router chi.Router
	store  store.Store
	runner *pipeline.Runner
	log    *log.Logger
	cfg    Config
}

// New creates and configures the HTTP server.
func New(st store.Store, runner *pipeline.Runner, logger *log.Logger, cfg Config) *Server {
	if cfg.MaxUpload <= 0 {
		cfg.MaxUpload = DefaultMaxUpload
	}
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = 50
	}
	s := &Server{
		store:  st,
		runner: runner,
		log:    logger,
		cfg:    cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Route("/api/documents", func(r chi.Router) {
		r.Post("/", s.handleUpload)
		r.Get("/", s.handleList)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Delete("/", s.handleDelete)
			r.Get("/export.csv", s.handleExportCSV)
			r.Get("/individuals", s.handleIndividuals)
			r.Get("/individuals/{pointer}", s.handleIndividual)
			r.Get("/individuals/{pointer}/{relation}", s.handleRelation)
			r.Get("/path/{from}/{to}", s.handlePath)
			r.Get("/chart/{pointer}", s.handleChart)
		})
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}
