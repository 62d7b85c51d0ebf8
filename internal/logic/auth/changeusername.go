package auth

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/VinukaThejana/auth-rs/internal/apperr"
	"github.com/VinukaThejana/auth-rs/internal/svc"
	"github.com/VinukaThejana/auth-rs/pb/authpb"
)

type ChangeUsernameLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewChangeUsernameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ChangeUsernameLogic {
	return &ChangeUsernameLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

func (l *ChangeUsernameLogic) ChangeUsername(in *authpb.ChangeUsernameRequest) (*authpb.ChangeUsernameResponse, error) {
	claims, err := l.svcCtx.Reauth.Verify(in.ReauthToken)
	if err != nil {
		return nil, apperr.ToStatus(apperr.New(apperr.Unauthorized, "reauth token is invalid"))
	}
	if err := validateUsername(in.NewUsername); err != nil {
		return nil, apperr.ToStatus(err)
	}

	if err := l.svcCtx.Users.UpdateUsername(l.ctx, claims.Sub(), in.NewUsername); err != nil {
		return nil, apperr.ToStatus(apperr.FromDatabaseError(err))
	}

	return &authpb.ChangeUsernameResponse{}, nil
}
