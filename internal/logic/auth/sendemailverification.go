package auth

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/VinukaThejana/auth-rs/internal/apperr"
	"github.com/VinukaThejana/auth-rs/internal/mailer"
	"github.com/VinukaThejana/auth-rs/internal/svc"
	"github.com/VinukaThejana/auth-rs/pb/authpb"
)

type SendEmailVerificationLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewSendEmailVerificationLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SendEmailVerificationLogic {
	return &SendEmailVerificationLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

// SendEmailVerification issues a short-lived verification token by
// reusing the reauth token type's codec and mails it to the user's
// current address.
func (l *SendEmailVerificationLogic) SendEmailVerification(in *authpb.SendEmailVerificationRequest) (*authpb.SendEmailVerificationResponse, error) {
	claims, err := l.svcCtx.Access.Verify(l.ctx, in.AccessToken)
	if err != nil {
		return nil, apperr.ToStatus(apperr.New(apperr.Unauthorized, "access token is invalid"))
	}

	user, err := l.svcCtx.Users.GetByID(l.ctx, claims.Sub())
	if err != nil {
		return nil, apperr.ToStatus(apperr.FromDatabaseError(err))
	}

	resp, err := l.svcCtx.Reauth.Create(claims.Sub(), claims.RJTI(), "")
	if err != nil {
		return nil, apperr.ToStatus(apperr.Newf(apperr.Other, "issue verification token: %v", err))
	}

	if err := l.svcCtx.Mailer.Send(l.ctx, user.Email, "Verify your email", mailer.OTPBody(resp.Token, "verify your email")); err != nil {
		l.Errorf("send verification email to %s failed: %v", user.Email, err)
	}

	return &authpb.SendEmailVerificationResponse{}, nil
}
