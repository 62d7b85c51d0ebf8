package auth

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/VinukaThejana/auth-rs/internal/apperr"
	"github.com/VinukaThejana/auth-rs/internal/mailer"
	"github.com/VinukaThejana/auth-rs/internal/svc"
	"github.com/VinukaThejana/auth-rs/pb/authpb"
)

type SendEmailVerificationForNewEmailLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewSendEmailVerificationForNewEmailLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SendEmailVerificationForNewEmailLogic {
	return &SendEmailVerificationForNewEmailLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

// SendEmailVerificationForNewEmail carries the pending new address in
// the verification token's custom claim, mailed to the new address so
// ownership of it is confirmed before ChangeEmail applies it.
func (l *SendEmailVerificationForNewEmailLogic) SendEmailVerificationForNewEmail(in *authpb.SendEmailVerificationForNewEmailRequest) (*authpb.SendEmailVerificationForNewEmailResponse, error) {
	claims, err := l.svcCtx.Reauth.Verify(in.ReauthToken)
	if err != nil {
		return nil, apperr.ToStatus(apperr.New(apperr.Unauthorized, "reauth token is invalid"))
	}

	if err := validateEmail(in.NewEmail); err != nil {
		return nil, apperr.ToStatus(err)
	}

	resp, err := l.svcCtx.Reauth.Create(claims.Sub(), claims.RJTI(), in.NewEmail)
	if err != nil {
		return nil, apperr.ToStatus(apperr.Newf(apperr.Other, "issue verification token: %v", err))
	}

	if err := l.svcCtx.Mailer.Send(l.ctx, in.NewEmail, "Confirm your new email", mailer.OTPBody(resp.Token, "confirm this email change")); err != nil {
		l.Errorf("send new-email verification to %s failed: %v", in.NewEmail, err)
	}

	return &authpb.SendEmailVerificationForNewEmailResponse{}, nil
}
