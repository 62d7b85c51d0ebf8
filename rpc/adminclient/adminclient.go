// Package adminclient is the zrpc-backed consumer-facing client for the
// Admin service, mirroring rpc/authclient's wrapper shape over
// pb/adminpb.
package adminclient

import (
	"context"

	"github.com/zeromicro/go-zero/zrpc"
	"google.golang.org/grpc"

	"github.com/VinukaThejana/auth-rs/pb/adminpb"
)

type (
	SendEmailRequest        = adminpb.SendEmailRequest
	SendEmailResponse       = adminpb.SendEmailResponse
	CreateAdminRequest      = adminpb.CreateAdminRequest
	CreateAdminResponse     = adminpb.CreateAdminResponse
	DeleteAdminRequest      = adminpb.DeleteAdminRequest
	DeleteAdminResponse     = adminpb.DeleteAdminResponse
	ListApiKeysRequest      = adminpb.ListApiKeysRequest
	ListApiKeysResponse     = adminpb.ListApiKeysResponse
	CreateApiKeyRequest     = adminpb.CreateApiKeyRequest
	CreateApiKeyResponse    = adminpb.CreateApiKeyResponse
	DeleteApiKeyRequest     = adminpb.DeleteApiKeyRequest
	DeleteApiKeyResponse    = adminpb.DeleteApiKeyResponse

	Admin interface {
		SendEmail(ctx context.Context, in *SendEmailRequest, opts ...grpc.CallOption) (*SendEmailResponse, error)
		CreateAdmin(ctx context.Context, in *CreateAdminRequest, opts ...grpc.CallOption) (*CreateAdminResponse, error)
		DeleteAdmin(ctx context.Context, in *DeleteAdminRequest, opts ...grpc.CallOption) (*DeleteAdminResponse, error)
		ListApiKeys(ctx context.Context, in *ListApiKeysRequest, opts ...grpc.CallOption) (*ListApiKeysResponse, error)
		CreateApiKey(ctx context.Context, in *CreateApiKeyRequest, opts ...grpc.CallOption) (*CreateApiKeyResponse, error)
		DeleteApiKey(ctx context.Context, in *DeleteApiKeyRequest, opts ...grpc.CallOption) (*DeleteApiKeyResponse, error)
	}

	defaultAdmin struct {
		cli zrpc.Client
	}
)

func NewAdmin(cli zrpc.Client) Admin {
	return &defaultAdmin{cli: cli}
}

func (m *defaultAdmin) SendEmail(ctx context.Context, in *SendEmailRequest, opts ...grpc.CallOption) (*SendEmailResponse, error) {
	return adminpb.NewClient(m.cli.Conn()).SendEmail(ctx, in)
}

func (m *defaultAdmin) CreateAdmin(ctx context.Context, in *CreateAdminRequest, opts ...grpc.CallOption) (*CreateAdminResponse, error) {
	return adminpb.NewClient(m.cli.Conn()).CreateAdmin(ctx, in)
}

func (m *defaultAdmin) DeleteAdmin(ctx context.Context, in *DeleteAdminRequest, opts ...grpc.CallOption) (*DeleteAdminResponse, error) {
	return adminpb.NewClient(m.cli.Conn()).DeleteAdmin(ctx, in)
}

func (m *defaultAdmin) ListApiKeys(ctx context.Context, in *ListApiKeysRequest, opts ...grpc.CallOption) (*ListApiKeysResponse, error) {
	return adminpb.NewClient(m.cli.Conn()).ListApiKeys(ctx, in)
}

func (m *defaultAdmin) CreateApiKey(ctx context.Context, in *CreateApiKeyRequest, opts ...grpc.CallOption) (*CreateApiKeyResponse, error) {
	return adminpb.NewClient(m.cli.Conn()).CreateApiKey(ctx, in)
}

func (m *defaultAdmin) DeleteApiKey(ctx context.Context, in *DeleteApiKeyRequest, opts ...grpc.CallOption) (*DeleteApiKeyResponse, error) {
	return adminpb.NewClient(m.cli.Conn()).DeleteApiKey(ctx, in)
}
