package server

import (
	"context"
	"errors"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-nft-market/internal/config"
	"github.com/MKhiriev/go-nft-market/internal/handler"
	"github.com/MKhiriev/go-nft-market/internal/logger"
)

type server struct {
	httpServer      *httpServer
	shutdownTimeout time.Duration
	cleanups        []Cleanup
	logger          *logger.Logger

	// ready receives the bound address once the listener is open.
	ready chan net.Addr
}

// NewServer creates the API server. Cleanups run in order after the HTTP
// listener has been drained.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, cleanups ...Cleanup) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		shutdownTimeout: cfg.ShutdownTimeout,
		cleanups:        cleanups,
		logger:          logger,
		ready:           make(chan net.Addr, 1),
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

// Shutdown drains the HTTP server and then runs every cleanup, even when an
// earlier step failed. All failures are joined.
func (s *server) Shutdown(ctx context.Context) error {
	errs := []error{s.httpServer.Shutdown(ctx)}

	for _, c := range s.cleanups {
		if err := c.Fn(ctx); err != nil {
			s.logger.Err(err).Str("cleanup", c.Name).Msg("cleanup failed")
			errs = append(errs, err)
			continue
		}
		s.logger.Info().Str("cleanup", c.Name).Msg("cleanup finished")
	}

	return errors.Join(errs...)
}

// run serves until ctx is done and then shuts down within shutdownTimeout.
func (s *server) run(ctx context.Context) error {
	ln, err := s.httpServer.listen()
	if err != nil {
		return err
	}
	s.ready <- ln.Addr()

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", ln.Addr().String()).Msg("Launching HTTP server")
		serveErr <- s.httpServer.serve(ln)
	}()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
		if err != nil {
			s.logger.Err(err).Msg("HTTP server stopped unexpectedly")
		}
	}

	shutdownCtx := context.Background()
	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		shutdownCtx, cancel = context.WithTimeout(shutdownCtx, s.shutdownTimeout)
		defer cancel()
	}

	if shutdownErr := s.Shutdown(shutdownCtx); shutdownErr != nil {
		return errors.Join(err, shutdownErr)
	}
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}
