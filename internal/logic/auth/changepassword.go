package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/VinukaThejana/auth-rs/internal/apperr"
	"github.com/VinukaThejana/auth-rs/internal/svc"
	"github.com/VinukaThejana/auth-rs/pb/authpb"
)

type ChangePasswordLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewChangePasswordLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ChangePasswordLogic {
	return &ChangePasswordLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

// ChangePassword additionally deletes every session row of the user,
// the one the reauth token came from included; cache bindings are left
// to expire naturally rather than being actively swept.
func (l *ChangePasswordLogic) ChangePassword(in *authpb.ChangePasswordRequest) (*authpb.ChangePasswordResponse, error) {
	claims, err := l.svcCtx.Reauth.Verify(in.ReauthToken)
	if err != nil {
		return nil, apperr.ToStatus(apperr.New(apperr.Unauthorized, "reauth token is invalid"))
	}
	if err := validatePassword(in.NewPassword); err != nil {
		return nil, apperr.ToStatus(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.ToStatus(apperr.Newf(apperr.Other, "hash password: %v", err))
	}

	if err := l.svcCtx.Users.UpdatePassword(l.ctx, claims.Sub(), string(hash)); err != nil {
		return nil, apperr.ToStatus(apperr.FromDatabaseError(err))
	}

	if err := l.svcCtx.Sessions.DeleteAllForUser(l.ctx, claims.Sub()); err != nil {
		l.Errorf("revoke all sessions for user=%s failed: %v", claims.Sub(), err)
	}

	return &authpb.ChangePasswordResponse{}, nil
}
