package auth

import (
	"context"
	"errors"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/VinukaThejana/auth-rs/internal/apperr"
	"github.com/VinukaThejana/auth-rs/internal/svc"
	"github.com/VinukaThejana/auth-rs/internal/token/cache"
	"github.com/VinukaThejana/auth-rs/pb/authpb"
)

type LogoutLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewLogoutLogic(ctx context.Context, svcCtx *svc.ServiceContext) *LogoutLogic {
	return &LogoutLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

func (l *LogoutLogic) Logout(in *authpb.LogoutRequest) (*authpb.LogoutResponse, error) {
	claims, err := l.svcCtx.Refresh.Decode(in.RefreshToken)
	if err != nil {
		return nil, apperr.ToStatus(apperr.New(apperr.Unauthorized, "refresh token is invalid"))
	}

	if err := l.svcCtx.Refresh.Delete(l.ctx, claims.RJTI()); err != nil && !errors.Is(err, cache.ErrNotFound) {
		return nil, apperr.ToStatus(apperr.FromDatabaseError(err))
	}

	if err := l.svcCtx.Sessions.Delete(l.ctx, claims.RJTI()); err != nil {
		return nil, apperr.ToStatus(apperr.FromDatabaseError(err))
	}

	return &authpb.LogoutResponse{}, nil
}
