package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.trai.ch/streak/internal/adapters/httpapi" //nolint:depguard // Wired in app layer
	"go.trai.ch/streak/internal/adapters/metrics" //nolint:depguard // Wired in app layer
	"go.trai.ch/streak/internal/core/domain"
	"go.trai.ch/streak/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const readHeaderTimeout = 10 * time.Second

// Server runs the HTTP surface of the App.
type Server struct {
	handler http.Handler
	cfg     domain.ServerConfig
	logger  ports.Logger
}

// NewServer creates a Server exposing a over HTTP.
func NewServer(a *App, cfg *domain.Config, m *metrics.Metrics, log ports.Logger) *Server {
	return &Server{
		handler: httpapi.NewRouter(a, httpapi.Options{
			Server:   cfg.Server,
			Logger:   log,
			Observer: m,
			Metrics:  m.Handler(),
		}),
		cfg:    cfg.Server,
		logger: log,
	}
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Serve listens on the configured address until ctx is done.
func (s *Server) Serve(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Addr)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to listen"), "addr", s.cfg.Addr)
	}
	return s.ServeListener(ctx, ln)
}

// ServeListener serves on ln until ctx is done, then shuts down gracefully
// within the configured shutdown timeout.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return zerr.Wrap(err, "http server failed")
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return zerr.Wrap(err, "http server shutdown failed")
		}
		s.logger.Info("server stopped")
		return nil
	})

	return g.Wait()
}
