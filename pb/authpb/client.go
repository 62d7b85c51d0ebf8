package authpb

import (
	"context"

	"google.golang.org/grpc"

	"github.com/VinukaThejana/auth-rs/pb/codec"
)

// Client is a thin typed wrapper over a *grpc.ClientConn, mirroring
// rpc/authClient/auth.go's per-method passthrough shape.
type Client struct {
	cc *grpc.ClientConn
}

func NewClient(cc *grpc.ClientConn) *Client {
	return &Client{cc: cc}
}

func (c *Client) invoke(ctx context.Context, method string, req, resp interface{}) error {
	fullMethod := "/auth.Auth/" + method
	return c.cc.Invoke(ctx, fullMethod, req, resp, grpc.CallContentSubtype(codec.Name))
}

func (c *Client) Register(ctx context.Context, in *RegisterRequest) (*RegisterResponse, error) {
	out := new(RegisterResponse)
	return out, c.invoke(ctx, "Register", in, out)
}

func (c *Client) Login(ctx context.Context, in *LoginRequest) (*LoginResponse, error) {
	out := new(LoginResponse)
	return out, c.invoke(ctx, "Login", in, out)
}

func (c *Client) Refresh(ctx context.Context, in *RefreshRequest) (*RefreshResponse, error) {
	out := new(RefreshResponse)
	return out, c.invoke(ctx, "Refresh", in, out)
}

func (c *Client) ReauthToken(ctx context.Context, in *ReauthTokenRequest) (*ReauthTokenResponse, error) {
	out := new(ReauthTokenResponse)
	return out, c.invoke(ctx, "ReauthToken", in, out)
}

func (c *Client) Logout(ctx context.Context, in *LogoutRequest) (*LogoutResponse, error) {
	out := new(LogoutResponse)
	return out, c.invoke(ctx, "Logout", in, out)
}

func (c *Client) Delete(ctx context.Context, in *DeleteRequest) (*DeleteResponse, error) {
	out := new(DeleteResponse)
	return out, c.invoke(ctx, "Delete", in, out)
}

func (c *Client) SendEmailVerification(ctx context.Context, in *SendEmailVerificationRequest) (*SendEmailVerificationResponse, error) {
	out := new(SendEmailVerificationResponse)
	return out, c.invoke(ctx, "SendEmailVerification", in, out)
}

func (c *Client) SendEmailVerificationForNewEmail(ctx context.Context, in *SendEmailVerificationForNewEmailRequest) (*SendEmailVerificationForNewEmailResponse, error) {
	out := new(SendEmailVerificationForNewEmailResponse)
	return out, c.invoke(ctx, "SendEmailVerificationForNewEmail", in, out)
}

func (c *Client) VerifyToken(ctx context.Context, in *VerifyTokenRequest) (*VerifyTokenResponse, error) {
	out := new(VerifyTokenResponse)
	return out, c.invoke(ctx, "VerifyToken", in, out)
}

func (c *Client) VerifyEmailToken(ctx context.Context, in *VerifyEmailTokenRequest) (*VerifyEmailTokenResponse, error) {
	out := new(VerifyEmailTokenResponse)
	return out, c.invoke(ctx, "VerifyEmailToken", in, out)
}

func (c *Client) ForgotPassword(ctx context.Context, in *ForgotPasswordRequest) (*ForgotPasswordResponse, error) {
	out := new(ForgotPasswordResponse)
	return out, c.invoke(ctx, "ForgotPassword", in, out)
}

func (c *Client) VerifyForgotPasswordToken(ctx context.Context, in *VerifyForgotPasswordTokenRequest) (*VerifyForgotPasswordTokenResponse, error) {
	out := new(VerifyForgotPasswordTokenResponse)
	return out, c.invoke(ctx, "VerifyForgotPasswordToken", in, out)
}

func (c *Client) ResetPassword(ctx context.Context, in *ResetPasswordRequest) (*ResetPasswordResponse, error) {
	out := new(ResetPasswordResponse)
	return out, c.invoke(ctx, "ResetPassword", in, out)
}

func (c *Client) ChangeEmail(ctx context.Context, in *ChangeEmailRequest) (*ChangeEmailResponse, error) {
	out := new(ChangeEmailResponse)
	return out, c.invoke(ctx, "ChangeEmail", in, out)
}

func (c *Client) ChangeUsername(ctx context.Context, in *ChangeUsernameRequest) (*ChangeUsernameResponse, error) {
	out := new(ChangeUsernameResponse)
	return out, c.invoke(ctx, "ChangeUsername", in, out)
}

func (c *Client) ChangePassword(ctx context.Context, in *ChangePasswordRequest) (*ChangePasswordResponse, error) {
	out := new(ChangePasswordResponse)
	return out, c.invoke(ctx, "ChangePassword", in, out)
}
