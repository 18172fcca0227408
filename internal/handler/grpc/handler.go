package grpc

import (
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/service"
	"github.com/MKhiriev/go-identity/internal/utils"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Handler is the root gRPC transport handler.
//
// It owns the health service, the identity.v1.Users service and the
// interceptor chain that authenticates every non-exempt unary call through
// [service.AuthService.Authenticate].
type Handler struct {
	services *service.Services
	health   *health.Server
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

// Register attaches the handler's services to s and marks them SERVING.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	s.RegisterService(&usersServiceDesc, h)

	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(usersServiceName, healthpb.HealthCheckResponse_SERVING)
}

// ServerOptions returns the interceptor chain: tracing and logging first,
// then authentication.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.withTraceID, h.withLogging, h.auth),
	}
}

// Shutdown flips every registered service to NOT_SERVING.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
