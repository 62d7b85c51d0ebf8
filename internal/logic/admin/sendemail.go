package admin

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/VinukaThejana/auth-rs/internal/apperr"
	"github.com/VinukaThejana/auth-rs/internal/mailer"
	"github.com/VinukaThejana/auth-rs/internal/svc"
	"github.com/VinukaThejana/auth-rs/pb/adminpb"
)

const otpTTL = time.Hour

func otpNamespace(email string) string {
	return "admin:verification:" + email
}

type SendEmailLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewSendEmailLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SendEmailLogic {
	return &SendEmailLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

// SendEmail issues a one-hour OTP bound to the caller's email and mails
// it. Every other Admin RPC requires the caller to echo this OTP back.
func (l *SendEmailLogic) SendEmail(in *adminpb.SendEmailRequest) (*adminpb.SendEmailResponse, error) {
	otp, err := newOTP()
	if err != nil {
		return nil, apperr.ToStatus(apperr.Newf(apperr.Other, "generate otp: %v", err))
	}

	if err := l.svcCtx.Cache.SetOTP(l.ctx, otpNamespace(in.Email), otp, otpTTL); err != nil {
		return nil, apperr.ToStatus(apperr.Newf(apperr.Other, "store otp: %v", err))
	}

	if err := l.svcCtx.Mailer.Send(l.ctx, in.Email, "Your admin verification code", mailer.OTPBody(otp, "confirm this admin action")); err != nil {
		l.Errorf("send admin otp email to %s failed: %v", in.Email, err)
	}

	return &adminpb.SendEmailResponse{}, nil
}
