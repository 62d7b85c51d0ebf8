package auth

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/VinukaThejana/auth-rs/internal/svc"
	"github.com/VinukaThejana/auth-rs/pb/authpb"
)

type VerifyForgotPasswordTokenLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewVerifyForgotPasswordTokenLogic(ctx context.Context, svcCtx *svc.ServiceContext) *VerifyForgotPasswordTokenLogic {
	return &VerifyForgotPasswordTokenLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

func (l *VerifyForgotPasswordTokenLogic) VerifyForgotPasswordToken(in *authpb.VerifyForgotPasswordTokenRequest) (*authpb.VerifyForgotPasswordTokenResponse, error) {
	_, err := l.svcCtx.Reauth.Verify(in.ResetToken)
	return &authpb.VerifyForgotPasswordTokenResponse{Valid: err == nil}, nil
}
