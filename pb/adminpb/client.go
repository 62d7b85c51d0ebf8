package adminpb

import (
	"context"

	"google.golang.org/grpc"

	"github.com/VinukaThejana/auth-rs/pb/codec"
)

// Client is a thin typed wrapper over a *grpc.ClientConn.
type Client struct {
	cc *grpc.ClientConn
}

func NewClient(cc *grpc.ClientConn) *Client {
	return &Client{cc: cc}
}

func (c *Client) invoke(ctx context.Context, method string, req, resp interface{}) error {
	fullMethod := "/auth.Admin/" + method
	return c.cc.Invoke(ctx, fullMethod, req, resp, grpc.CallContentSubtype(codec.Name))
}

func (c *Client) SendEmail(ctx context.Context, in *SendEmailRequest) (*SendEmailResponse, error) {
	out := new(SendEmailResponse)
	return out, c.invoke(ctx, "SendEmail", in, out)
}

func (c *Client) CreateAdmin(ctx context.Context, in *CreateAdminRequest) (*CreateAdminResponse, error) {
	out := new(CreateAdminResponse)
	return out, c.invoke(ctx, "CreateAdmin", in, out)
}

func (c *Client) DeleteAdmin(ctx context.Context, in *DeleteAdminRequest) (*DeleteAdminResponse, error) {
	out := new(DeleteAdminResponse)
	return out, c.invoke(ctx, "DeleteAdmin", in, out)
}

func (c *Client) ListApiKeys(ctx context.Context, in *ListApiKeysRequest) (*ListApiKeysResponse, error) {
	out := new(ListApiKeysResponse)
	return out, c.invoke(ctx, "ListApiKeys", in, out)
}

func (c *Client) CreateApiKey(ctx context.Context, in *CreateApiKeyRequest) (*CreateApiKeyResponse, error) {
	out := new(CreateApiKeyResponse)
	return out, c.invoke(ctx, "CreateApiKey", in, out)
}

func (c *Client) DeleteApiKey(ctx context.Context, in *DeleteApiKeyRequest) (*DeleteApiKeyResponse, error) {
	out := new(DeleteApiKeyResponse)
	return out, c.invoke(ctx, "DeleteApiKey", in, out)
}
