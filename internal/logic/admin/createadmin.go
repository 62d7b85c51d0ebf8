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

type CreateAdminLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewCreateAdminLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateAdminLogic {
	return &CreateAdminLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

func (l *CreateAdminLogic) CreateAdmin(in *adminpb.CreateAdminRequest) (*adminpb.CreateAdminResponse, error) {
	if _, err := l.svcCtx.Cache.ConsumeOTP(l.ctx, otpNamespace(in.Email)); err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return nil, apperr.ToStatus(apperr.New(apperr.OTPInvalid, "otp is invalid or expired"))
		}
		return nil, apperr.ToStatus(apperr.Newf(apperr.Other, "consume otp: %v", err))
	}

	id := l.svcCtx.IDs.NewID()
	if err := l.svcCtx.Admins.Create(l.ctx, id, in.Email, in.Description); err != nil {
		return nil, apperr.ToStatus(apperr.FromDatabaseError(err))
	}

	return &adminpb.CreateAdminResponse{}, nil
}
