package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/VinukaThejana/auth-rs/internal/apperr"
	"github.com/VinukaThejana/auth-rs/internal/svc"
	"github.com/VinukaThejana/auth-rs/pb/authpb"
)

type ResetPasswordLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewResetPasswordLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ResetPasswordLogic {
	return &ResetPasswordLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

// ResetPassword re-verifies the reset token, writes the new bcrypt
// hash, and revokes all of the user's live sessions.
func (l *ResetPasswordLogic) ResetPassword(in *authpb.ResetPasswordRequest) (*authpb.ResetPasswordResponse, error) {
	claims, err := l.svcCtx.Reauth.Verify(in.ResetToken)
	if err != nil {
		return nil, apperr.ToStatus(apperr.New(apperr.Unauthorized, "reset token is invalid"))
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

	return &authpb.ResetPasswordResponse{}, nil
}
