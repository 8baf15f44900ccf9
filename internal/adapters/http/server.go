package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/jsamuelsen11/validated-entities/internal/platform/config"
)

// DefaultDrainTimeout bounds how long Serve waits for in-flight requests
// after its context is canceled.
const DefaultDrainTimeout = 15 * time.Second

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithDrainTimeout overrides DefaultDrainTimeout.
func WithDrainTimeout(d time.Duration) ServerOption {
	return func(s *Server) {
		s.drain = d
	}
}

// Server serves the validation API until its context ends, then drains.
type Server struct {
	srv    *http.Server
	logger *slog.Logger
	drain  time.Duration
}

// NewServer builds a Server listening on cfg.Host:cfg.Port. A nil logger
// discards output.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger, opts ...ServerOption) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		srv: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, fmt.Sprint(cfg.Port)),
			Handler:           handler,
			ReadHeaderTimeout: cfg.ReadTimeout,
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		logger: logger,
		drain:  DefaultDrainTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Addr is the configured listen address.
func (s *Server) Addr() string {
	return s.srv.Addr
}

// Run listens on Addr and calls Serve.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled, then stops accepting
// and waits up to the drain timeout for in-flight requests. It returns nil
// after a clean drain.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.InfoContext(ctx, "serving HTTP", slog.String("addr", ln.Addr().String()))

	served := make(chan error, 1)
	go func() {
		served <- s.srv.Serve(ln)
	}()

	select {
	case err := <-served:
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.drain)
	defer cancel()

	s.logger.InfoContext(drainCtx, "draining HTTP server", slog.Duration("timeout", s.drain))
	if err := s.srv.Shutdown(drainCtx); err != nil {
		return fmt.Errorf("draining http server: %w", err)
	}
	if err := <-served; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving http: %w", err)
	}
	return nil
}
