// Package adminpb is the hand-authored RPC contract for the Admin
// service, following the same approach as pb/authpb.
package adminpb

import (
	"context"

	"google.golang.org/grpc"
)

type SendEmailRequest struct {
	Email string `json:"email"`
}
type SendEmailResponse struct{}

type CreateAdminRequest struct {
	Email       string `json:"email"`
	Description string `json:"description"`
	OTP         string `json:"otp"`
}
type CreateAdminResponse struct{}

type DeleteAdminRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}
type DeleteAdminResponse struct{}

type ListApiKeysRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}
type ListApiKeysResponse struct {
	ApiKeys []ApiKey `json:"api_keys"`
}
type ApiKey struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	CreatedAt   int64  `json:"created_at"`
	LastUsed    int64  `json:"last_used"`
}

type CreateApiKeyRequest struct {
	Email       string `json:"email"`
	Description string `json:"description"`
	OTP         string `json:"otp"`
}
type CreateApiKeyResponse struct {
	ApiKey    string `json:"api_key"`
	ApiSecret string `json:"api_secret"`
}

type DeleteApiKeyRequest struct {
	Email string `json:"email"`
	Key   string `json:"key"`
	OTP   string `json:"otp"`
}
type DeleteApiKeyResponse struct{}

// AdminServer is implemented by internal/logic/admin.
type AdminServer interface {
	SendEmail(context.Context, *SendEmailRequest) (*SendEmailResponse, error)
	CreateAdmin(context.Context, *CreateAdminRequest) (*CreateAdminResponse, error)
	DeleteAdmin(context.Context, *DeleteAdminRequest) (*DeleteAdminResponse, error)
	ListApiKeys(context.Context, *ListApiKeysRequest) (*ListApiKeysResponse, error)
	CreateApiKey(context.Context, *CreateApiKeyRequest) (*CreateApiKeyResponse, error)
	DeleteApiKey(context.Context, *DeleteApiKeyRequest) (*DeleteApiKeyResponse, error)
}

func RegisterAdminServer(grpcServer grpc.ServiceRegistrar, srv AdminServer) {
	grpcServer.RegisterService(&adminServiceDesc, srv)
}

func adminHandler(methodName string, decodeInto func() interface{}, call func(ctx context.Context, srv interface{}, req interface{}) (interface{}, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: methodName,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			req := decodeInto()
			if err := dec(req); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(ctx, srv, req)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/auth.Admin/" + methodName}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(ctx, srv, req)
			}
			return interceptor(ctx, req, info, handler)
		},
	}
}

var adminServiceDesc = grpc.ServiceDesc{
	ServiceName: "auth.Admin",
	HandlerType: (*AdminServer)(nil),
	Methods: []grpc.MethodDesc{
		adminHandler("SendEmail", func() interface{} { return new(SendEmailRequest) }, func(ctx context.Context, srv, req interface{}) (interface{}, error) {
			return srv.(AdminServer).SendEmail(ctx, req.(*SendEmailRequest))
		}),
		adminHandler("CreateAdmin", func() interface{} { return new(CreateAdminRequest) }, func(ctx context.Context, srv, req interface{}) (interface{}, error) {
			return srv.(AdminServer).CreateAdmin(ctx, req.(*CreateAdminRequest))
		}),
		adminHandler("DeleteAdmin", func() interface{} { return new(DeleteAdminRequest) }, func(ctx context.Context, srv, req interface{}) (interface{}, error) {
			return srv.(AdminServer).DeleteAdmin(ctx, req.(*DeleteAdminRequest))
		}),
		adminHandler("ListApiKeys", func() interface{} { return new(ListApiKeysRequest) }, func(ctx context.Context, srv, req interface{}) (interface{}, error) {
			return srv.(AdminServer).ListApiKeys(ctx, req.(*ListApiKeysRequest))
		}),
		adminHandler("CreateApiKey", func() interface{} { return new(CreateApiKeyRequest) }, func(ctx context.Context, srv, req interface{}) (interface{}, error) {
			return srv.(AdminServer).CreateApiKey(ctx, req.(*CreateApiKeyRequest))
		}),
		adminHandler("DeleteApiKey", func() interface{} { return new(DeleteApiKeyRequest) }, func(ctx context.Context, srv, req interface{}) (interface{}, error) {
			return srv.(AdminServer).DeleteApiKey(ctx, req.(*DeleteApiKeyRequest))
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "admin.proto",
}
