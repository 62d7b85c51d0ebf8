package admin

import (
	"context"
	"errors"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/VinukaThejana/auth-rs/internal/apperr"
	"github.com/VinukaThejana/auth-rs/internal/token/cache"
	"github.com/VinukaThejana/auth-rs/internal/svc"
	"github.com/VinukaThejana/auth-rs/pb/adminpb"
)

type DeleteApiKeyLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewDeleteApiKeyLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteApiKeyLogic {
	return &DeleteApiKeyLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

func (l *DeleteApiKeyLogic) DeleteApiKey(in *adminpb.DeleteApiKeyRequest) (*adminpb.DeleteApiKeyResponse, error) {
	if _, err := l.svcCtx.Cache.ConsumeOTP(l.ctx, otpNamespace(in.Email)); err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return nil, apperr.ToStatus(apperr.New(apperr.OTPInvalid, "otp is invalid or expired"))
		}
		return nil, apperr.ToStatus(apperr.Newf(apperr.Other, "consume otp: %v", err))
	}

	if err := l.svcCtx.Admins.DeleteAPIKey(l.ctx, in.Key); err != nil {
		return nil, apperr.ToStatus(apperr.FromDatabaseError(err))
	}

	return &adminpb.DeleteApiKeyResponse{}, nil
}
