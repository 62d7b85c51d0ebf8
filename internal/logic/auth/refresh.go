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

type RefreshLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewRefreshLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RefreshLogic {
	return &RefreshLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

func (l *RefreshLogic) Refresh(in *authpb.RefreshRequest) (*authpb.RefreshResponse, error) {
	claims, err := l.svcCtx.Refresh.Decode(in.RefreshToken)
	if err != nil {
		return nil, apperr.ToStatus(apperr.New(apperr.Unauthorized, "refresh token is invalid"))
	}

	if _, err := l.svcCtx.Cache.Get(l.ctx, l.svcCtx.Cache.Key(cache.KindRefresh, claims.RJTI())); err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return nil, apperr.ToStatus(apperr.NewValidation(map[string]string{"refresh_token": "token not found in redis"}))
		}
		return nil, apperr.ToStatus(apperr.FromDatabaseError(err))
	}

	resp, err := l.svcCtx.Access.Refresh(l.ctx, claims.Sub(), claims.RJTI())
	if err != nil {
		return nil, apperr.ToStatus(apperr.Newf(apperr.Other, "rotate access token: %v", err))
	}

	return &authpb.RefreshResponse{
		Access: authpb.Token{Token: resp.Token, Expires: uint64(resp.Exp.Unix())},
	}, nil
}
