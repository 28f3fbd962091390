package server

import (
	"context"
	"io"
	"net"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/handler"
	"github.com/MKhiriev/go-notes/internal/logger"
)

type server struct {
	httpServer *httpServer
	closers    []io.Closer
	logger     *logger.Logger
}

// NewServer builds the HTTP server for handlers. closers are closed in order
// once the HTTP server has drained, e.g. the storage pool.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, closers ...io.Closer) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		closers:    closers,
		logger:     logger,
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

	if err := s.run(ctx, nil); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			s.logger.Err(err).Msg("error releasing resource on shutdown")
		}
	}
}

// run serves until ctx is done or the listener fails, then shuts down. A nil
// listener means listening on the configured address.
func (s *server) run(ctx context.Context, l net.Listener) error {
	if s.httpServer == nil {
		return errNoServersToRun
	}

	if l == nil {
		var err error
		if l, err = net.Listen("tcp", s.httpServer.server.Addr); err != nil {
			s.Shutdown()
			return err
		}
	}

	serveErr := make(chan error, 1)
	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.Serve(l)
	}()

	var err error
	select {
	case <-ctx.Done():
	case err = <-serveErr:
	}

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}
