package server

import (
	"fmt"
	"net"

	"github.com/MKhiriev/oriole/internal/config"
	myGRPC "github.com/MKhiriev/oriole/internal/handler/grpc"
	"github.com/MKhiriev/oriole/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("listen gRPC on %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer(handler.ServerOptions()...)
	handler.Register(server)

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

// RunServer serves until Shutdown is called. Serve returns nil once the
// server is stopped, so any error is a failure.
func (g *grpcServer) RunServer() error {
	return g.server.Serve(g.gRPCNetListener)
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}
