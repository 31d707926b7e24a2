// Package server provides HTTP server setup and lifecycle handling for the
// screening API: middleware chain, routes and graceful shutdown.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/hirassa/screening-api/config"
	"github.com/hirassa/screening-api/handlers"
	"github.com/hirassa/screening-api/logging"
	"github.com/hirassa/screening-api/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server wraps the HTTP server with its router and configuration.
type Server struct {
	server  *http.Server
	router  chi.Router
	handler *handlers.Handler
	config  *config.Config
}

// NewServer creates a configured server.
func NewServer(cfg *config.Config, handler *handlers.Handler) *Server {
	router := chi.NewRouter()

	s := &Server{
		server: &http.Server{
			Handler:      router,
			Addr:         cfg.Address + ":" + cfg.Port,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		router:  router,
		handler: handler,
		config:  cfg,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(RealIPMiddleware)
	s.router.Use(logging.Middleware(logging.Logger()))
	s.router.Use(middleware.RedirectSlashes)
	s.router.Use(middleware.Recoverer)

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	s.router.Use(RequestSizeMiddleware(s.config))
	s.router.Use(NewRateLimiter().Middleware)
	s.router.Use(metrics.Middleware)
}

func (s *Server) setupRoutes() {
	s.router.Get("/pharmacies", s.handler.ListPharmacies)
	s.router.Get("/cities", s.handler.ListCities)
	s.router.Get("/cities/{code}", s.handler.GetCity)
	s.router.Get("/assessments", s.handler.ListAssessments)
	s.router.Get("/assessments/{assessmentID}", s.handler.GetAssessment)
	s.router.Post("/assessments/{assessmentID}/score", s.handler.ScoreAssessment)
	s.router.Get("/health", s.handler.HealthCheck)
	s.router.Handle("/metrics", promhttp.Handler())
}

// Router exposes the router for tests.
func (s *Server) Router() chi.Router {
	return s.router
}

// Addr returns the address the server listens on.
func (s *Server) Addr() string {
	return s.server.Addr
}

// Start begins serving. It blocks until the server stops.
func (s *Server) Start() error {
	logging.Info("Starting server", "addr", s.server.Addr, "env", s.config.Env)
	return s.server.ListenAndServe()
}

// Shutdown attempts a graceful shutdown, falling back to a hard close when
// the context expires.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		logging.Error("Server forced to shutdown", "error", err)
		return s.server.Close()
	}
	return nil
}
