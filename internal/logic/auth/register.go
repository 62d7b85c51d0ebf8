package auth

import (
	"context"
	"database/sql"

	"golang.org/x/crypto/bcrypt"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/VinukaThejana/auth-rs/internal/apperr"
	"github.com/VinukaThejana/auth-rs/internal/models"
	"github.com/VinukaThejana/auth-rs/internal/svc"
	"github.com/VinukaThejana/auth-rs/pb/authpb"
)

type RegisterLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewRegisterLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RegisterLogic {
	return &RegisterLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

func (l *RegisterLogic) Register(in *authpb.RegisterRequest) (*authpb.RegisterResponse, error) {
	if err := validateEmail(in.Email); err != nil {
		return nil, apperr.ToStatus(err)
	}
	if err := validateUsername(in.Username); err != nil {
		return nil, apperr.ToStatus(err)
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, apperr.ToStatus(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.ToStatus(apperr.Newf(apperr.Other, "hash password: %v", err))
	}

	id := l.svcCtx.IDs.NewID()
	now := l.svcCtx.Clock.Now()

	user := &models.User{
		ID:                 id,
		Email:              in.Email,
		Username:           in.Username,
		Name:               in.Name,
		Password:           sql.NullString{String: string(hash), Valid: true},
		IsEmailVerified:    false,
		IsTwoFactorEnabled: true,
	}
	link := &models.UserProvider{
		UserID:    id,
		ProviderID: "email",
		LinkedAt:  now,
	}

	if err := l.svcCtx.Users.CreateWithProvider(l.ctx, user, link); err != nil {
		return nil, apperr.ToStatus(apperr.FromDatabaseError(err))
	}

	return &authpb.RegisterResponse{}, nil
}
