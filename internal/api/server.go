package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/UnknownOlympus/netwatch/internal/metrics"
	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

// Options holds the API server settings.
type Options struct {
	Port          int
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
	AllowedOrigin string
	RateLimit     float64 // Requests per second, 0 disables limiting.
	RateBurst     int
}

// Server represents the public API server.
type Server struct {
	httpServer *http.Server
	log        *slog.Logger
}

// NewRouter builds the API handler chain: CORS, routing, instrumentation and optional rate limiting.
func NewRouter(opts Options, log *slog.Logger, service Service, m *metrics.Metrics) http.Handler {
	router := mux.NewRouter()
	router.Use(instrument(log, m))
	if opts.RateLimit > 0 {
		router.Use(withRateLimit(rate.NewLimiter(rate.Limit(opts.RateLimit), opts.RateBurst)))
	}
	NewHandler(log, service).Register(router)

	return withCORS(opts.AllowedOrigin)(router)
}

// NewServer creates a new API server.
func NewServer(opts Options, log *slog.Logger, service Service, m *metrics.Metrics) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", opts.Port),
			Handler:      NewRouter(opts, log, service, m),
			ReadTimeout:  opts.ReadTimeout,
			WriteTimeout: opts.WriteTimeout,
			IdleTimeout:  2 * opts.WriteTimeout,
		},
		log: log,
	}
}

// Start serves requests until the server is stopped.
func (s *Server) Start() error {
	s.log.Info("Starting API server", "address", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("Shutting down API server")

	return s.httpServer.Shutdown(ctx)
}
