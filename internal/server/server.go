// Package server provides the local HTTP server for the pagescout catalog:
// the browser assets, the generated manifest, and a JSON API exposing the
// same filter and sort contract the browser implements.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/pagescout/pagescout/pkg/logging"
	"github.com/pagescout/pagescout/pkg/portfolio"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	config Config
	logger *zerolog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server's logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New creates a new server instance with the given configuration.
func New(config Config, opts ...Option) *Server {
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = DefaultConfig().ShutdownTimeout
	}

	s := &Server{
		config: config,
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// loadManifest reads the manifest from disk. A missing or unreadable
// manifest serves as empty; the condition is logged, not fatal, because the
// catalog page itself still works and reports the fetch failure client-side.
func (s *Server) loadManifest() portfolio.Manifest {
	m, err := portfolio.Load(s.config.ManifestPath)
	if err != nil {
		s.logger.Debug().
			Err(err).
			Str("path", s.config.ManifestPath).
			Msg("Manifest not readable, serving empty catalog")
		return portfolio.Manifest{}
	}
	return m
}

// ListenAndServe runs the server until the context is canceled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().
			Int("port", s.config.Port).
			Str("manifest", s.config.ManifestPath).
			Msg("Catalog server listening")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
		s.logger.Info().Msg("Shutting down catalog server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}
