// Main HTTP server implementation
//
// Responsibilities:
// - HTTP server setup and configuration
// - Serving a prepared handler (routes and middleware are built by the caller)
// - Optional TLS
// - Server lifecycle management

package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/ilijajolevski/ilinden/internal/telemetry"
)

// Server wraps an http.Server with the gateway's lifecycle conventions:
// configurable timeouts, optional TLS, and graceful shutdown.
type Server struct {
	httpServer *http.Server
	opts       Options
	logger     telemetry.Logger
}

// New builds a Server serving handler under opts.
func New(opts Options, handler http.Handler, logger telemetry.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         opts.Addr,
			Handler:      handler,
			ReadTimeout:  opts.ReadTimeout,
			WriteTimeout: opts.WriteTimeout,
			IdleTimeout:  opts.IdleTimeout,
		},
		opts:   opts,
		logger: logger,
	}
}

// ListenAndServe starts the server, blocking until it stops. TLS is used
// when opts.TLS.Enabled; certificate/key paths are loaded as-is, no
// generation or rotation is performed here (non-goal).
func (s *Server) ListenAndServe() error {
	if s.opts.TLS.Enabled {
		s.logger.Info("starting TLS listener", "addr", s.opts.Addr)
		err := s.httpServer.ListenAndServeTLS(s.opts.TLS.CertFile, s.opts.TLS.KeyFile)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}

	s.logger.Info("starting listener", "addr", s.opts.Addr)
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully drains in-flight requests within ctx's deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
