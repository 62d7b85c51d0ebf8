package auth

import (
	"context"
	"errors"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/VinukaThejana/auth-rs/internal/apperr"
	"github.com/VinukaThejana/auth-rs/internal/mailer"
	"github.com/VinukaThejana/auth-rs/internal/svc"
	"github.com/VinukaThejana/auth-rs/internal/userstore"
	"github.com/VinukaThejana/auth-rs/pb/authpb"
)

type ForgotPasswordLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewForgotPasswordLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ForgotPasswordLogic {
	return &ForgotPasswordLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

// ForgotPassword issues a reauth-shaped token keyed by user id and
// emails it. A lookup miss is not surfaced to the caller, so the
// endpoint cannot be used to enumerate registered emails.
func (l *ForgotPasswordLogic) ForgotPassword(in *authpb.ForgotPasswordRequest) (*authpb.ForgotPasswordResponse, error) {
	user, err := l.svcCtx.Users.GetByEmailOrUsername(l.ctx, in.Email)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			return &authpb.ForgotPasswordResponse{}, nil
		}
		return nil, apperr.ToStatus(apperr.FromDatabaseError(err))
	}

	resp, err := l.svcCtx.Reauth.Create(user.ID, "", "")
	if err != nil {
		return nil, apperr.ToStatus(apperr.Newf(apperr.Other, "issue reset token: %v", err))
	}

	if err := l.svcCtx.Mailer.Send(l.ctx, user.Email, "Reset your password", mailer.OTPBody(resp.Token, "reset your password")); err != nil {
		l.Errorf("send password reset email to %s failed: %v", user.Email, err)
	}

	return &authpb.ForgotPasswordResponse{}, nil
}
