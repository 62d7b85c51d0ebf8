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

type DeleteAdminLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewDeleteAdminLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteAdminLogic {
	return &DeleteAdminLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

func (l *DeleteAdminLogic) DeleteAdmin(in *adminpb.DeleteAdminRequest) (*adminpb.DeleteAdminResponse, error) {
	if _, err := l.svcCtx.Cache.ConsumeOTP(l.ctx, otpNamespace(in.Email)); err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return nil, apperr.ToStatus(apperr.New(apperr.OTPInvalid, "otp is invalid or expired"))
		}
		return nil, apperr.ToStatus(apperr.Newf(apperr.Other, "consume otp: %v", err))
	}

	if err := l.svcCtx.Admins.Delete(l.ctx, in.Email); err != nil {
		return nil, apperr.ToStatus(apperr.FromDatabaseError(err))
	}

	return &adminpb.DeleteAdminResponse{}, nil
}
