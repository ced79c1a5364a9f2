package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-rest-session/internal/config"
	"github.com/MKhiriev/go-rest-session/internal/logger"
	"github.com/MKhiriev/go-rest-session/internal/workers"
)

// shutdownTimeout bounds the wait for in-flight requests after a stop
// signal.
const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	address    string

	logger *logger.Logger
}

// NewServer prepares the backend. bg may be nil when no background workers
// are needed.
func NewServer(router http.Handler, bg *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if router == nil {
		return nil, errNoHandlerIsProvided
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoAddressIsProvided
	}
	if bg == nil {
		bg = workers.NewWorkers()
	}

	return &server{
		httpServer: newHTTPServer(router, cfg, logger),
		workers:    bg,
		address:    cfg.HTTPAddress,
		logger:     logger,
	}, nil
}

func (s *server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.address, err)
	}
	return s.run(ctx, listener)
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.shutdown(ctx)
}

func (s *server) run(ctx context.Context, listener net.Listener) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	workersDone := make(chan struct{})
	go func() {
		s.workers.Run(ctx)
		close(workersDone)
	}()

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Msg("Launching HTTP server")
		serveErr <- s.httpServer.serve(listener)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.Shutdown(shutdownCtx); err != nil {
			runErr = fmt.Errorf("error shutting down HTTP server: %w", err)
		}
		if err := <-serveErr; err != nil && runErr == nil {
			runErr = err
		}
	case err := <-serveErr:
		stop()
		if err != nil {
			runErr = fmt.Errorf("HTTP server stopped: %w", err)
		}
	}

	<-workersDone
	s.logger.Info().Msg("server Shutdown gracefully")

	return runErr
}
