package auth

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/VinukaThejana/auth-rs/internal/apperr"
	"github.com/VinukaThejana/auth-rs/internal/svc"
	"github.com/VinukaThejana/auth-rs/pb/authpb"
)

type VerifyEmailTokenLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewVerifyEmailTokenLogic(ctx context.Context, svcCtx *svc.ServiceContext) *VerifyEmailTokenLogic {
	return &VerifyEmailTokenLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

// VerifyEmailToken marks the subject's email verified. When the token
// carries a pending new-email address in its custom claim, that address
// also replaces user.email (the SendEmailVerificationForNewEmail flow).
func (l *VerifyEmailTokenLogic) VerifyEmailToken(in *authpb.VerifyEmailTokenRequest) (*authpb.VerifyEmailTokenResponse, error) {
	claims, err := l.svcCtx.Reauth.Verify(in.EmailToken)
	if err != nil {
		return nil, apperr.ToStatus(apperr.New(apperr.Unauthorized, "email token is invalid"))
	}

	if newEmail := claims.Custom(); newEmail != "" {
		if err := l.svcCtx.Users.UpdateEmail(l.ctx, claims.Sub(), newEmail); err != nil {
			return nil, apperr.ToStatus(apperr.FromDatabaseError(err))
		}
	}

	if err := l.svcCtx.Users.MarkEmailVerified(l.ctx, claims.Sub()); err != nil {
		return nil, apperr.ToStatus(apperr.FromDatabaseError(err))
	}

	return &authpb.VerifyEmailTokenResponse{}, nil
}
