// Package authclient is the zrpc-backed consumer-facing client for the
// Auth service, following rpc/authClient/auth.go's defaultAuth wrapper
// shape: a thin interface over a zrpc.Client's connection, constructing
// the typed pb client per call.
package authclient

import (
	"context"

	"github.com/zeromicro/go-zero/zrpc"
	"google.golang.org/grpc"

	"github.com/VinukaThejana/auth-rs/pb/authpb"
)

type (
	RegisterRequest                          = authpb.RegisterRequest
	RegisterResponse                         = authpb.RegisterResponse
	LoginRequest                             = authpb.LoginRequest
	LoginResponse                            = authpb.LoginResponse
	RefreshRequest                           = authpb.RefreshRequest
	RefreshResponse                          = authpb.RefreshResponse
	ReauthTokenRequest                       = authpb.ReauthTokenRequest
	ReauthTokenResponse                      = authpb.ReauthTokenResponse
	LogoutRequest                            = authpb.LogoutRequest
	LogoutResponse                           = authpb.LogoutResponse
	DeleteRequest                            = authpb.DeleteRequest
	DeleteResponse                           = authpb.DeleteResponse
	SendEmailVerificationRequest             = authpb.SendEmailVerificationRequest
	SendEmailVerificationResponse            = authpb.SendEmailVerificationResponse
	SendEmailVerificationForNewEmailRequest  = authpb.SendEmailVerificationForNewEmailRequest
	SendEmailVerificationForNewEmailResponse = authpb.SendEmailVerificationForNewEmailResponse
	VerifyTokenRequest                       = authpb.VerifyTokenRequest
	VerifyTokenResponse                      = authpb.VerifyTokenResponse
	VerifyEmailTokenRequest                  = authpb.VerifyEmailTokenRequest
	VerifyEmailTokenResponse                 = authpb.VerifyEmailTokenResponse
	ForgotPasswordRequest                    = authpb.ForgotPasswordRequest
	ForgotPasswordResponse                   = authpb.ForgotPasswordResponse
	VerifyForgotPasswordTokenRequest         = authpb.VerifyForgotPasswordTokenRequest
	VerifyForgotPasswordTokenResponse        = authpb.VerifyForgotPasswordTokenResponse
	ResetPasswordRequest                     = authpb.ResetPasswordRequest
	ResetPasswordResponse                    = authpb.ResetPasswordResponse
	ChangeEmailRequest                       = authpb.ChangeEmailRequest
	ChangeEmailResponse                      = authpb.ChangeEmailResponse
	ChangeUsernameRequest                    = authpb.ChangeUsernameRequest
	ChangeUsernameResponse                   = authpb.ChangeUsernameResponse
	ChangePasswordRequest                    = authpb.ChangePasswordRequest
	ChangePasswordResponse                   = authpb.ChangePasswordResponse

	Auth interface {
		Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
		Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
		Refresh(ctx context.Context, in *RefreshRequest, opts ...grpc.CallOption) (*RefreshResponse, error)
		ReauthToken(ctx context.Context, in *ReauthTokenRequest, opts ...grpc.CallOption) (*ReauthTokenResponse, error)
		Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error)
		Delete(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) (*DeleteResponse, error)
		SendEmailVerification(ctx context.Context, in *SendEmailVerificationRequest, opts ...grpc.CallOption) (*SendEmailVerificationResponse, error)
		SendEmailVerificationForNewEmail(ctx context.Context, in *SendEmailVerificationForNewEmailRequest, opts ...grpc.CallOption) (*SendEmailVerificationForNewEmailResponse, error)
		VerifyToken(ctx context.Context, in *VerifyTokenRequest, opts ...grpc.CallOption) (*VerifyTokenResponse, error)
		VerifyEmailToken(ctx context.Context, in *VerifyEmailTokenRequest, opts ...grpc.CallOption) (*VerifyEmailTokenResponse, error)
		ForgotPassword(ctx context.Context, in *ForgotPasswordRequest, opts ...grpc.CallOption) (*ForgotPasswordResponse, error)
		VerifyForgotPasswordToken(ctx context.Context, in *VerifyForgotPasswordTokenRequest, opts ...grpc.CallOption) (*VerifyForgotPasswordTokenResponse, error)
		ResetPassword(ctx context.Context, in *ResetPasswordRequest, opts ...grpc.CallOption) (*ResetPasswordResponse, error)
		ChangeEmail(ctx context.Context, in *ChangeEmailRequest, opts ...grpc.CallOption) (*ChangeEmailResponse, error)
		ChangeUsername(ctx context.Context, in *ChangeUsernameRequest, opts ...grpc.CallOption) (*ChangeUsernameResponse, error)
		ChangePassword(ctx context.Context, in *ChangePasswordRequest, opts ...grpc.CallOption) (*ChangePasswordResponse, error)
	}

	defaultAuth struct {
		cli zrpc.Client
	}
)

func NewAuth(cli zrpc.Client) Auth {
	return &defaultAuth{cli: cli}
}

func (m *defaultAuth) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return authpb.NewClient(m.cli.Conn()).Register(ctx, in)
}

func (m *defaultAuth) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return authpb.NewClient(m.cli.Conn()).Login(ctx, in)
}

func (m *defaultAuth) Refresh(ctx context.Context, in *RefreshRequest, opts ...grpc.CallOption) (*RefreshResponse, error) {
	return authpb.NewClient(m.cli.Conn()).Refresh(ctx, in)
}

func (m *defaultAuth) ReauthToken(ctx context.Context, in *ReauthTokenRequest, opts ...grpc.CallOption) (*ReauthTokenResponse, error) {
	return authpb.NewClient(m.cli.Conn()).ReauthToken(ctx, in)
}

func (m *defaultAuth) Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error) {
	return authpb.NewClient(m.cli.Conn()).Logout(ctx, in)
}

func (m *defaultAuth) Delete(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) (*DeleteResponse, error) {
	return authpb.NewClient(m.cli.Conn()).Delete(ctx, in)
}

func (m *defaultAuth) SendEmailVerification(ctx context.Context, in *SendEmailVerificationRequest, opts ...grpc.CallOption) (*SendEmailVerificationResponse, error) {
	return authpb.NewClient(m.cli.Conn()).SendEmailVerification(ctx, in)
}

func (m *defaultAuth) SendEmailVerificationForNewEmail(ctx context.Context, in *SendEmailVerificationForNewEmailRequest, opts ...grpc.CallOption) (*SendEmailVerificationForNewEmailResponse, error) {
	return authpb.NewClient(m.cli.Conn()).SendEmailVerificationForNewEmail(ctx, in)
}

func (m *defaultAuth) VerifyToken(ctx context.Context, in *VerifyTokenRequest, opts ...grpc.CallOption) (*VerifyTokenResponse, error) {
	return authpb.NewClient(m.cli.Conn()).VerifyToken(ctx, in)
}

func (m *defaultAuth) VerifyEmailToken(ctx context.Context, in *VerifyEmailTokenRequest, opts ...grpc.CallOption) (*VerifyEmailTokenResponse, error) {
	return authpb.NewClient(m.cli.Conn()).VerifyEmailToken(ctx, in)
}

func (m *defaultAuth) ForgotPassword(ctx context.Context, in *ForgotPasswordRequest, opts ...grpc.CallOption) (*ForgotPasswordResponse, error) {
	return authpb.NewClient(m.cli.Conn()).ForgotPassword(ctx, in)
}

func (m *defaultAuth) VerifyForgotPasswordToken(ctx context.Context, in *VerifyForgotPasswordTokenRequest, opts ...grpc.CallOption) (*VerifyForgotPasswordTokenResponse, error) {
	return authpb.NewClient(m.cli.Conn()).VerifyForgotPasswordToken(ctx, in)
}

func (m *defaultAuth) ResetPassword(ctx context.Context, in *ResetPasswordRequest, opts ...grpc.CallOption) (*ResetPasswordResponse, error) {
	return authpb.NewClient(m.cli.Conn()).ResetPassword(ctx, in)
}

func (m *defaultAuth) ChangeEmail(ctx context.Context, in *ChangeEmailRequest, opts ...grpc.CallOption) (*ChangeEmailResponse, error) {
	return authpb.NewClient(m.cli.Conn()).ChangeEmail(ctx, in)
}

func (m *defaultAuth) ChangeUsername(ctx context.Context, in *ChangeUsernameRequest, opts ...grpc.CallOption) (*ChangeUsernameResponse, error) {
	return authpb.NewClient(m.cli.Conn()).ChangeUsername(ctx, in)
}

func (m *defaultAuth) ChangePassword(ctx context.Context, in *ChangePasswordRequest, opts ...grpc.CallOption) (*ChangePasswordResponse, error) {
	return authpb.NewClient(m.cli.Conn()).ChangePassword(ctx, in)
}
