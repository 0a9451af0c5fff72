// Package api exposes the analysis proxy consumed by UI collaborators:
// dependency analysis with an optional custom prompt, and generic
// missing-skill discovery.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mkurien/skillpath/internal/discover"
	"github.com/mkurien/skillpath/internal/llm"
	"github.com/mkurien/skillpath/internal/resolve"
)

// Server is the HTTP API server.
type Server struct {
	router    *chi.Mux
	logger    *slog.Logger
	provider  llm.Provider
	resolver  *resolve.Resolver
	discovery *discover.Service
}

// NewServer creates the API server around the shared provider and
// resolver.
func NewServer(provider llm.Provider, resolver *resolve.Resolver, discovery *discover.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		logger:    logger,
		provider:  provider,
		resolver:  resolver,
		discovery: discovery,
	}
	s.setupRouter()
	return s
}

// Router returns the configured router.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupRouter() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyze)
		r.Get("/skills/{name}/dependencies", s.handleDependencies)
	})

	s.router = r
}
