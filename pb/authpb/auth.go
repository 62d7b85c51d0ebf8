// Package authpb is the hand-authored RPC contract for the Auth
// service. The request/response types are plain structs and the
// service glue is wired directly against grpc.ServiceDesc, transported
// as real gRPC framing with the JSON codec registered in pb/codec.
package authpb

import (
	"context"

	"google.golang.org/grpc"
)

// Token is a single issued credential.
type Token struct {
	Token   string `json:"token"`
	Expires uint64 `json:"expires"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}
type RegisterResponse struct{}

type LoginRequest struct {
	Credential string `json:"credential"`
	Password   string `json:"password"`
	OTP        string `json:"otp,omitempty"`
	IPAddress  string `json:"ip_address"`
	UserAgent  string `json:"user_agent"`
}
type LoginResponse struct {
	Refresh Token `json:"refresh"`
	Access  Token `json:"access"`
	Session Token `json:"session"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
type RefreshResponse struct {
	Access Token `json:"access"`
}

type ReauthTokenRequest struct {
	AccessToken string `json:"access_token"`
}
type ReauthTokenResponse struct {
	ReauthToken string `json:"reauth_token"`
	Expires     uint64 `json:"expires"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}
type LogoutResponse struct{}

type DeleteRequest struct {
	ReauthToken string `json:"reauth_token"`
}
type DeleteResponse struct{}

type SendEmailVerificationRequest struct {
	AccessToken string `json:"access_token"`
}
type SendEmailVerificationResponse struct{}

type SendEmailVerificationForNewEmailRequest struct {
	ReauthToken string `json:"reauth_token"`
	NewEmail    string `json:"new_email"`
}
type SendEmailVerificationForNewEmailResponse struct{}

type VerifyTokenRequest struct {
	AccessToken string `json:"access_token"`
}
type VerifyTokenResponse struct {
	Valid  bool   `json:"valid"`
	UserID string `json:"user_id"`
}

type VerifyEmailTokenRequest struct {
	EmailToken string `json:"email_token"`
}
type VerifyEmailTokenResponse struct{}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}
type ForgotPasswordResponse struct{}

type VerifyForgotPasswordTokenRequest struct {
	ResetToken string `json:"reset_token"`
}
type VerifyForgotPasswordTokenResponse struct {
	Valid bool `json:"valid"`
}

type ResetPasswordRequest struct {
	ResetToken  string `json:"reset_token"`
	NewPassword string `json:"new_password"`
}
type ResetPasswordResponse struct{}

type ChangeEmailRequest struct {
	ReauthToken string `json:"reauth_token"`
	EmailToken  string `json:"email_token"`
}
type ChangeEmailResponse struct{}

type ChangeUsernameRequest struct {
	ReauthToken string `json:"reauth_token"`
	NewUsername string `json:"new_username"`
}
type ChangeUsernameResponse struct{}

type ChangePasswordRequest struct {
	ReauthToken string `json:"reauth_token"`
	NewPassword string `json:"new_password"`
}
type ChangePasswordResponse struct{}

// AuthServer is implemented by internal/logic/auth.
type AuthServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	Refresh(context.Context, *RefreshRequest) (*RefreshResponse, error)
	ReauthToken(context.Context, *ReauthTokenRequest) (*ReauthTokenResponse, error)
	Logout(context.Context, *LogoutRequest) (*LogoutResponse, error)
	Delete(context.Context, *DeleteRequest) (*DeleteResponse, error)
	SendEmailVerification(context.Context, *SendEmailVerificationRequest) (*SendEmailVerificationResponse, error)
	SendEmailVerificationForNewEmail(context.Context, *SendEmailVerificationForNewEmailRequest) (*SendEmailVerificationForNewEmailResponse, error)
	VerifyToken(context.Context, *VerifyTokenRequest) (*VerifyTokenResponse, error)
	VerifyEmailToken(context.Context, *VerifyEmailTokenRequest) (*VerifyEmailTokenResponse, error)
	ForgotPassword(context.Context, *ForgotPasswordRequest) (*ForgotPasswordResponse, error)
	VerifyForgotPasswordToken(context.Context, *VerifyForgotPasswordTokenRequest) (*VerifyForgotPasswordTokenResponse, error)
	ResetPassword(context.Context, *ResetPasswordRequest) (*ResetPasswordResponse, error)
	ChangeEmail(context.Context, *ChangeEmailRequest) (*ChangeEmailResponse, error)
	ChangeUsername(context.Context, *ChangeUsernameRequest) (*ChangeUsernameResponse, error)
	ChangePassword(context.Context, *ChangePasswordRequest) (*ChangePasswordResponse, error)
}

// RegisterAuthServer wires srv into grpcServer under the hand-authored
// ServiceDesc below.
func RegisterAuthServer(grpcServer grpc.ServiceRegistrar, srv AuthServer) {
	grpcServer.RegisterService(&authServiceDesc, srv)
}

func authHandler(methodName string, decodeInto func() interface{}, call func(ctx context.Context, srv interface{}, req interface{}) (interface{}, error)) grpc.MethodDesc {
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
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/auth.Auth/" + methodName}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(ctx, srv, req)
			}
			return interceptor(ctx, req, info, handler)
		},
	}
}

var authServiceDesc = grpc.ServiceDesc{
	ServiceName: "auth.Auth",
	HandlerType: (*AuthServer)(nil),
	Methods: []grpc.MethodDesc{
		authHandler("Register", func() interface{} { return new(RegisterRequest) }, func(ctx context.Context, srv, req interface{}) (interface{}, error) {
			return srv.(AuthServer).Register(ctx, req.(*RegisterRequest))
		}),
		authHandler("Login", func() interface{} { return new(LoginRequest) }, func(ctx context.Context, srv, req interface{}) (interface{}, error) {
			return srv.(AuthServer).Login(ctx, req.(*LoginRequest))
		}),
		authHandler("Refresh", func() interface{} { return new(RefreshRequest) }, func(ctx context.Context, srv, req interface{}) (interface{}, error) {
			return srv.(AuthServer).Refresh(ctx, req.(*RefreshRequest))
		}),
		authHandler("ReauthToken", func() interface{} { return new(ReauthTokenRequest) }, func(ctx context.Context, srv, req interface{}) (interface{}, error) {
			return srv.(AuthServer).ReauthToken(ctx, req.(*ReauthTokenRequest))
		}),
		authHandler("Logout", func() interface{} { return new(LogoutRequest) }, func(ctx context.Context, srv, req interface{}) (interface{}, error) {
			return srv.(AuthServer).Logout(ctx, req.(*LogoutRequest))
		}),
		authHandler("Delete", func() interface{} { return new(DeleteRequest) }, func(ctx context.Context, srv, req interface{}) (interface{}, error) {
			return srv.(AuthServer).Delete(ctx, req.(*DeleteRequest))
		}),
		authHandler("SendEmailVerification", func() interface{} { return new(SendEmailVerificationRequest) }, func(ctx context.Context, srv, req interface{}) (interface{}, error) {
			return srv.(AuthServer).SendEmailVerification(ctx, req.(*SendEmailVerificationRequest))
		}),
		authHandler("SendEmailVerificationForNewEmail", func() interface{} { return new(SendEmailVerificationForNewEmailRequest) }, func(ctx context.Context, srv, req interface{}) (interface{}, error) {
			return srv.(AuthServer).SendEmailVerificationForNewEmail(ctx, req.(*SendEmailVerificationForNewEmailRequest))
		}),
		authHandler("VerifyToken", func() interface{} { return new(VerifyTokenRequest) }, func(ctx context.Context, srv, req interface{}) (interface{}, error) {
			return srv.(AuthServer).VerifyToken(ctx, req.(*VerifyTokenRequest))
		}),
		authHandler("VerifyEmailToken", func() interface{} { return new(VerifyEmailTokenRequest) }, func(ctx context.Context, srv, req interface{}) (interface{}, error) {
			return srv.(AuthServer).VerifyEmailToken(ctx, req.(*VerifyEmailTokenRequest))
		}),
		authHandler("ForgotPassword", func() interface{} { return new(ForgotPasswordRequest) }, func(ctx context.Context, srv, req interface{}) (interface{}, error) {
			return srv.(AuthServer).ForgotPassword(ctx, req.(*ForgotPasswordRequest))
		}),
		authHandler("VerifyForgotPasswordToken", func() interface{} { return new(VerifyForgotPasswordTokenRequest) }, func(ctx context.Context, srv, req interface{}) (interface{}, error) {
			return srv.(AuthServer).VerifyForgotPasswordToken(ctx, req.(*VerifyForgotPasswordTokenRequest))
		}),
		authHandler("ResetPassword", func() interface{} { return new(ResetPasswordRequest) }, func(ctx context.Context, srv, req interface{}) (interface{}, error) {
			return srv.(AuthServer).ResetPassword(ctx, req.(*ResetPasswordRequest))
		}),
		authHandler("ChangeEmail", func() interface{} { return new(ChangeEmailRequest) }, func(ctx context.Context, srv, req interface{}) (interface{}, error) {
			return srv.(AuthServer).ChangeEmail(ctx, req.(*ChangeEmailRequest))
		}),
		authHandler("ChangeUsername", func() interface{} { return new(ChangeUsernameRequest) }, func(ctx context.Context, srv, req interface{}) (interface{}, error) {
			return srv.(AuthServer).ChangeUsername(ctx, req.(*ChangeUsernameRequest))
		}),
		authHandler("ChangePassword", func() interface{} { return new(ChangePasswordRequest) }, func(ctx context.Context, srv, req interface{}) (interface{}, error) {
			return srv.(AuthServer).ChangePassword(ctx, req.(*ChangePasswordRequest))
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "auth.proto",
}
