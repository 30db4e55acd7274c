// Package server provides the HTTP server and routing for the admin API.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/anujay00/alpha-admin/internal/cache"
	"github.com/anujay00/alpha-admin/internal/config"
	"github.com/anujay00/alpha-admin/internal/events"
	"github.com/anujay00/alpha-admin/internal/httpx"
	"github.com/anujay00/alpha-admin/internal/metrics"
	"github.com/anujay00/alpha-admin/internal/modules/dashboard"
	dashboardhandlers "github.com/anujay00/alpha-admin/internal/modules/dashboard/handlers"
	"github.com/anujay00/alpha-admin/internal/modules/orders"
	ordershandlers "github.com/anujay00/alpha-admin/internal/modules/orders/handlers"
	"github.com/anujay00/alpha-admin/internal/modules/reviews"
	reviewshandlers "github.com/anujay00/alpha-admin/internal/modules/reviews/handlers"
)

// Config holds everything the server needs wired from main.
type Config struct {
	Log              zerolog.Logger
	Config           *config.Config
	Bus              *events.Bus
	Snapshots        *cache.SnapshotCache
	OrderService     *orders.Service
	ReviewService    *reviews.Service
	DashboardService *dashboard.Service
}

// Server represents the HTTP server
type Server struct {
	router *chi.Mux
	server *http.Server
	log    zerolog.Logger
	cfg    Config
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router: chi.NewRouter(),
		log:    cfg.Log.With().Str("component", "server").Logger(),
		cfg:    cfg,
	}

	s.setupMiddleware(cfg.Config.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	// Recovery from panics
	s.router.Use(middleware.Recoverer)

	// Request ID
	s.router.Use(middleware.RequestID)

	// Real IP
	s.router.Use(middleware.RealIP)

	// Logging
	s.router.Use(s.loggingMiddleware)

	// Prometheus request counters and latency histogram
	s.router.Use(metrics.Middleware)

	// Timeout
	s.router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Compress responses
	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)
	s.router.Handle("/metrics", promhttp.Handler())

	s.router.Route("/api", func(r chi.Router) {
		// Unified events stream (SSE) - must be before other routes for proper handling
		eventsStreamHandler := NewEventsStreamHandler(s.cfg.Bus, s.log)
		r.Get("/events/stream", eventsStreamHandler.ServeHTTP)

		systemHandlers := NewSystemHandlers(s.log, s.cfg.OrderService, s.cfg.ReviewService, s.cfg.Snapshots)
		r.Route("/system", func(r chi.Router) {
			r.Get("/health", systemHandlers.HandleSystemHealth)
		})

		orderHandlers := ordershandlers.NewOrderHandlers(s.cfg.OrderService, httpx.NewValidator(), s.log)
		orderHandlers.RegisterRoutes(r)

		reviewHandlers := reviewshandlers.NewReviewHandlers(s.cfg.ReviewService, s.log)
		reviewHandlers.RegisterRoutes(r)

		dashboardHandlers := dashboardhandlers.NewDashboardHandlers(s.cfg.DashboardService, s.log)
		dashboardHandlers.RegisterRoutes(r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Int("port", s.cfg.Config.Port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
