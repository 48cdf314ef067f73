package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/oriole/internal/config"
	"github.com/MKhiriev/oriole/internal/handler"
	"github.com/MKhiriev/oriole/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// NewServer creates a server for every handler with a configured address
// and binds its listener. A bind failure closes the listeners already bound
// and is returned.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		httpServer, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.httpServer = httpServer
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcServer, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			if servers.httpServer != nil {
				servers.httpServer.listener.Close()
			}
			return nil, err
		}
		servers.gRPCServer = grpcServer
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	// finish HTTP server
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	// finish gRPC server
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

// run launches every created server and blocks until ctx is done or one of
// them fails, then shuts them all down. The failure is returned.
func (s *server) run(ctx context.Context) error {
	// check if any server was created
	if s.httpServer == nil && s.gRPCServer == nil {
		return errors.New("no servers to run")
	}

	failed := make(chan error, 2)

	// launch all created servers
	if s.httpServer != nil {
		s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
		go func() {
			if err := s.httpServer.RunServer(); err != nil {
				failed <- fmt.Errorf("HTTP server: %w", err)
			}
		}()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Str("address", s.gRPCServer.gRPCNetListener.Addr().String()).Msg("Launching GRPC server")
		go func() {
			if err := s.gRPCServer.RunServer(); err != nil {
				failed <- fmt.Errorf("gRPC server: %w", err)
			}
		}()
	}

	var err error
	select {
	case <-ctx.Done():
	case err = <-failed:
		s.logger.Error().Err(err).Msg("server stopped unexpectedly")
	}

	// finish started servers
	s.Shutdown()

	if err == nil {
		s.logger.Info().Msg("server Shutdown gracefully")
	}
	return err
}
