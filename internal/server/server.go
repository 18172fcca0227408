package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-identity/internal/config"
	"github.com/MKhiriev/go-identity/internal/handler"
	"github.com/MKhiriev/go-identity/internal/logger"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	grpcServer *grpcServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.grpcServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.grpcServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return
	}
	s.logger.Info().Msg("server shut down gracefully")
}

func (s *server) Run(ctx context.Context) error {
	if err := s.listen(); err != nil {
		return err
	}

	group, groupCtx := errgroup.WithContext(ctx)

	if s.httpServer != nil {
		s.logger.Info().Str("address", s.httpServer.listener.Addr().String()).Msg("launching HTTP server")
		group.Go(s.httpServer.serve)
	}
	if s.grpcServer != nil {
		s.logger.Info().Str("address", s.grpcServer.listener.Addr().String()).Msg("launching gRPC server")
		group.Go(s.grpcServer.serve)
	}

	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.Shutdown(shutdownCtx)

		return nil
	})

	return group.Wait()
}

func (s *server) Shutdown(ctx context.Context) {
	if s.grpcServer != nil {
		s.grpcServer.shutdown(ctx)
	}
	if s.httpServer != nil {
		s.httpServer.shutdown(ctx)
	}
}

// listen opens every listener that is not open yet, closing the opened ones
// if any fails.
func (s *server) listen() error {
	if s.httpServer != nil {
		if err := s.httpServer.listen(); err != nil {
			return err
		}
	}
	if s.grpcServer != nil {
		if err := s.grpcServer.listen(); err != nil {
			if s.httpServer != nil && s.httpServer.listener != nil {
				_ = s.httpServer.listener.Close()
			}
			return err
		}
	}
	return nil
}
