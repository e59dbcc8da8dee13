// Package web serves a read-only JSON API over the imported data. The
// import pipeline itself never goes through HTTP.
package web

import (
	"context"
	"net/http"

	"github.com/bcre/importer/internal/config"
	"github.com/bcre/importer/internal/database"
	mw "github.com/bcre/importer/internal/web/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Directory is the query surface the handlers read from.
type Directory interface {
	Realtors(ctx context.Context) ([]database.Realtor, error)
	GetRealtor(ctx context.Context, id int64) (database.Realtor, error)
	Listings(ctx context.Context, arg database.ListListingsParams) ([]database.Listing, error)
}

// Server is the HTTP server for the read-only API.
type Server struct {
	dir    Directory
	router *chi.Mux
	server *http.Server
}

// NewServer creates a Server bound to the configured address.
func NewServer(dir Directory, cfg *config.Config) *Server {
	s := &Server{
		dir:    dir,
		router: chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(mw.Logger)
	s.router.Use(middleware.Recoverer)
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/realtors", s.handleListRealtors)
		r.Get("/realtors/{id}", s.handleGetRealtor)
		r.Get("/listings", s.handleListListings)
		r.Get("/districts", s.handleListDistricts)
	})
}

// ListenAndServe starts the server and blocks until it stops.
func (s *Server) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
