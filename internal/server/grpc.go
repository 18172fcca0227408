package server

import (
	"context"
	"fmt"
	"net"

	"github.com/MKhiriev/go-identity/internal/config"
	myGRPC "github.com/MKhiriev/go-identity/internal/handler/grpc"
	"github.com/MKhiriev/go-identity/internal/logger"
	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	address  string
	server   *grpc.Server
	listener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer(handler.ServerOptions()...)
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) listen() error {
	if g.listener != nil {
		return nil
	}
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("%w: grpc %s: %w", errListening, g.address, err)
	}
	g.listener = listener
	return nil
}

func (g *grpcServer) serve() error {
	if err := g.server.Serve(g.listener); err != nil {
		return fmt.Errorf("%w: grpc: %w", errServing, err)
	}
	return nil
}

// shutdown reports NOT_SERVING, then drains in-flight calls until ctx
// expires and stops hard after that.
func (g *grpcServer) shutdown(ctx context.Context) {
	g.logger.Info().Msg("gRPC server shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		g.server.Stop()
		<-stopped
	}
}
