// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input ingestion, engine orchestration, output serialization.
// The API NEVER performs calculation logic.
package api

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"roas-calculator/core/engine"
	"roas-calculator/internal/logging"
)

// Server is the API server
type Server struct {
	engine   *engine.Engine
	mux      *http.ServeMux
	version  string
	logger   *zap.Logger
	language language.Tag
}

// Option configures a Server
type Option func(*Server)

// WithLogger sets the request logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithLanguage sets the locale used for display strings
func WithLanguage(tag language.Tag) Option {
	return func(s *Server) {
		s.language = tag
	}
}

// NewServer creates a new API server over an engine
func NewServer(version string, eng *engine.Engine, opts ...Option) *Server {
	s := &Server{
		engine:   eng,
		mux:      http.NewServeMux(),
		version:  version,
		logger:   logging.Named("api"),
		language: language.Greek,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /metrics", s.handleMetrics)
	s.mux.HandleFunc("POST /comparison", s.handleComparison)
	s.mux.HandleFunc("GET /tiers", s.handleTiers)

	// Supporting endpoints
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// ServeHTTP logs and dispatches a request
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

	s.mux.ServeHTTP(rec, r)

	s.logger.Info("request",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", rec.status),
		zap.Duration("duration", time.Since(start)),
	)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string, readTimeout, writeTimeout time.Duration) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
