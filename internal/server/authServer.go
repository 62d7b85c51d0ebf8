package server

import (
	"context"

	"github.com/VinukaThejana/auth-rs/internal/logic/auth"
	"github.com/VinukaThejana/auth-rs/internal/svc"
	"github.com/VinukaThejana/auth-rs/pb/authpb"
)

// AuthServiceServer implements authpb.AuthServer by constructing the
// matching per-call Logic struct against the shared ServiceContext.
type AuthServiceServer struct {
	svcCtx *svc.ServiceContext
}

func NewAuthServiceServer(svcCtx *svc.ServiceContext) *AuthServiceServer {
	return &AuthServiceServer{svcCtx: svcCtx}
}

func (s *AuthServiceServer) Register(ctx context.Context, in *authpb.RegisterRequest) (*authpb.RegisterResponse, error) {
	return auth.NewRegisterLogic(ctx, s.svcCtx).Register(in)
}

func (s *AuthServiceServer) Login(ctx context.Context, in *authpb.LoginRequest) (*authpb.LoginResponse, error) {
	return auth.NewLoginLogic(ctx, s.svcCtx).Login(in)
}

func (s *AuthServiceServer) Refresh(ctx context.Context, in *authpb.RefreshRequest) (*authpb.RefreshResponse, error) {
	return auth.NewRefreshLogic(ctx, s.svcCtx).Refresh(in)
}

func (s *AuthServiceServer) ReauthToken(ctx context.Context, in *authpb.ReauthTokenRequest) (*authpb.ReauthTokenResponse, error) {
	return auth.NewReauthTokenLogic(ctx, s.svcCtx).ReauthToken(in)
}

func (s *AuthServiceServer) Logout(ctx context.Context, in *authpb.LogoutRequest) (*authpb.LogoutResponse, error) {
	return auth.NewLogoutLogic(ctx, s.svcCtx).Logout(in)
}

func (s *AuthServiceServer) Delete(ctx context.Context, in *authpb.DeleteRequest) (*authpb.DeleteResponse, error) {
	return auth.NewDeleteLogic(ctx, s.svcCtx).Delete(in)
}

func (s *AuthServiceServer) SendEmailVerification(ctx context.Context, in *authpb.SendEmailVerificationRequest) (*authpb.SendEmailVerificationResponse, error) {
	return auth.NewSendEmailVerificationLogic(ctx, s.svcCtx).SendEmailVerification(in)
}

func (s *AuthServiceServer) SendEmailVerificationForNewEmail(ctx context.Context, in *authpb.SendEmailVerificationForNewEmailRequest) (*authpb.SendEmailVerificationForNewEmailResponse, error) {
	return auth.NewSendEmailVerificationForNewEmailLogic(ctx, s.svcCtx).SendEmailVerificationForNewEmail(in)
}

func (s *AuthServiceServer) VerifyToken(ctx context.Context, in *authpb.VerifyTokenRequest) (*authpb.VerifyTokenResponse, error) {
	return auth.NewVerifyTokenLogic(ctx, s.svcCtx).VerifyToken(in)
}

func (s *AuthServiceServer) VerifyEmailToken(ctx context.Context, in *authpb.VerifyEmailTokenRequest) (*authpb.VerifyEmailTokenResponse, error) {
	return auth.NewVerifyEmailTokenLogic(ctx, s.svcCtx).VerifyEmailToken(in)
}

func (s *AuthServiceServer) ForgotPassword(ctx context.Context, in *authpb.ForgotPasswordRequest) (*authpb.ForgotPasswordResponse, error) {
	return auth.NewForgotPasswordLogic(ctx, s.svcCtx).ForgotPassword(in)
}

func (s *AuthServiceServer) VerifyForgotPasswordToken(ctx context.Context, in *authpb.VerifyForgotPasswordTokenRequest) (*authpb.VerifyForgotPasswordTokenResponse, error) {
	return auth.NewVerifyForgotPasswordTokenLogic(ctx, s.svcCtx).VerifyForgotPasswordToken(in)
}

func (s *AuthServiceServer) ResetPassword(ctx context.Context, in *authpb.ResetPasswordRequest) (*authpb.ResetPasswordResponse, error) {
	return auth.NewResetPasswordLogic(ctx, s.svcCtx).ResetPassword(in)
}

func (s *AuthServiceServer) ChangeEmail(ctx context.Context, in *authpb.ChangeEmailRequest) (*authpb.ChangeEmailResponse, error) {
	return auth.NewChangeEmailLogic(ctx, s.svcCtx).ChangeEmail(in)
}

func (s *AuthServiceServer) ChangeUsername(ctx context.Context, in *authpb.ChangeUsernameRequest) (*authpb.ChangeUsernameResponse, error) {
	return auth.NewChangeUsernameLogic(ctx, s.svcCtx).ChangeUsername(in)
}

func (s *AuthServiceServer) ChangePassword(ctx context.Context, in *authpb.ChangePasswordRequest) (*authpb.ChangePasswordResponse, error) {
	return auth.NewChangePasswordLogic(ctx, s.svcCtx).ChangePassword(in)
}
