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

type ListApiKeysLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewListApiKeysLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListApiKeysLogic {
	return &ListApiKeysLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

func (l *ListApiKeysLogic) ListApiKeys(in *adminpb.ListApiKeysRequest) (*adminpb.ListApiKeysResponse, error) {
	if _, err := l.svcCtx.Cache.ConsumeOTP(l.ctx, otpNamespace(in.Email)); err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return nil, apperr.ToStatus(apperr.New(apperr.OTPInvalid, "otp is invalid or expired"))
		}
		return nil, apperr.ToStatus(apperr.Newf(apperr.Other, "consume otp: %v", err))
	}

	rows, err := l.svcCtx.Admins.ListAPIKeys(l.ctx, in.Email)
	if err != nil {
		return nil, apperr.ToStatus(apperr.FromDatabaseError(err))
	}

	keys := make([]adminpb.ApiKey, 0, len(rows))
	for _, row := range rows {
		keys = append(keys, adminpb.ApiKey{
			ID:          row.ID,
			Description: row.Description,
			CreatedAt:   row.CreatedAt,
			LastUsed:    row.LastUsed,
		})
	}

	return &adminpb.ListApiKeysResponse{ApiKeys: keys}, nil
}
