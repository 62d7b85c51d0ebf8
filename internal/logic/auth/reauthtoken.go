package auth

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/VinukaThejana/auth-rs/internal/apperr"
	"github.com/VinukaThejana/auth-rs/internal/svc"
	"github.com/VinukaThejana/auth-rs/pb/authpb"
)

type ReauthTokenLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewReauthTokenLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ReauthTokenLogic {
	return &ReauthTokenLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

func (l *ReauthTokenLogic) ReauthToken(in *authpb.ReauthTokenRequest) (*authpb.ReauthTokenResponse, error) {
	claims, err := l.svcCtx.Access.Verify(l.ctx, in.AccessToken)
	if err != nil {
		return nil, apperr.ToStatus(apperr.New(apperr.Unauthorized, "access token is invalid"))
	}

	resp, err := l.svcCtx.Reauth.Create(claims.Sub(), claims.RJTI(), "")
	if err != nil {
		return nil, apperr.ToStatus(apperr.Newf(apperr.Other, "issue reauth token: %v", err))
	}

	return &authpb.ReauthTokenResponse{
		ReauthToken: resp.Token,
		Expires:     uint64(resp.Exp.Unix()),
	}, nil
}
