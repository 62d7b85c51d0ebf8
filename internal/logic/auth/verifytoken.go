package auth

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/VinukaThejana/auth-rs/internal/svc"
	"github.com/VinukaThejana/auth-rs/pb/authpb"
)

type VerifyTokenLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewVerifyTokenLogic(ctx context.Context, svcCtx *svc.ServiceContext) *VerifyTokenLogic {
	return &VerifyTokenLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

// VerifyToken is the machine-to-machine building block other internal
// services call to validate an access token.
func (l *VerifyTokenLogic) VerifyToken(in *authpb.VerifyTokenRequest) (*authpb.VerifyTokenResponse, error) {
	claims, err := l.svcCtx.Access.Verify(l.ctx, in.AccessToken)
	if err != nil {
		return &authpb.VerifyTokenResponse{Valid: false}, nil
	}
	return &authpb.VerifyTokenResponse{Valid: true, UserID: claims.Sub()}, nil
}
