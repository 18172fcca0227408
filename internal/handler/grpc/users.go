package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-identity/internal/app"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/utils"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const usersServiceName = "identity.v1.Users"

// usersServer is the server API of the identity.v1.Users service.
type usersServer interface {
	Me(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

var usersServiceDesc = grpc.ServiceDesc{
	ServiceName: usersServiceName,
	HandlerType: (*usersServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Me", Handler: usersMeHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "identity/v1/users",
}

func usersMeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(usersServer).Me(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + usersServiceName + "/Me",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(usersServer).Me(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// Me returns the account resolved by the auth interceptor.
func (h *Handler) Me(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	user, ok := utils.UserFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "no authenticated user")
	}

	out, err := structpb.NewStruct(map[string]any{
		"id":         user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"status":     user.Status,
		"created_at": user.CreatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Handler.Me").Msg("error encoding user")
		return nil, status.Error(codes.Internal, app.MsgInternalServerError)
	}
	return out, nil
}
