package grpc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-identity/internal/app"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/service"
	"github.com/MKhiriev/go-identity/internal/utils"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	authorizationKey = "authorization"
	traceIDKey       = "x-trace-id"
)

var healthMethodPrefix = "/" + healthpb.Health_ServiceDesc.ServiceName + "/"

func isExemptMethod(fullMethod string) bool {
	return strings.HasPrefix(fullMethod, healthMethodPrefix)
}

// auth resolves the bearer token in the authorization metadata to an
// account and stores it in the context. Health checks are exempt.
func (h *Handler) auth(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if isExemptMethod(info.FullMethod) {
		return handler(ctx, req)
	}

	log := logger.FromContext(ctx)

	token, err := utils.ParseBearerToken(firstMetadataValue(ctx, authorizationKey))
	if err != nil {
		log.Debug().Err(err).Str("method", info.FullMethod).Msg("missing bearer token")
		return nil, status.Error(codes.Unauthenticated, service.ErrMissingToken.Error())
	}

	user, err := h.services.AuthService.Authenticate(ctx, token)
	if err != nil {
		if errors.Is(err, service.ErrStoreUnavailable) {
			log.Err(err).Str("method", info.FullMethod).Msg("authentication failed")
			return nil, status.Error(codes.Internal, app.MsgInternalServerError)
		}
		log.Debug().Err(err).Str("method", info.FullMethod).Msg("authentication rejected")
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	return handler(utils.WithUser(ctx, user), req)
}

func (h *Handler) withTraceID(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := h.traceIDs.Propagate(firstMetadataValue(ctx, traceIDKey))

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})

	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDKey, traceID))
	return handler(l.WithContext(ctx), req)
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	logger.FromContext(ctx).Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

func firstMetadataValue(ctx context.Context, key string) string {
	if values := metadata.ValueFromIncomingContext(ctx, key); len(values) > 0 {
		return values[0]
	}
	return ""
}
