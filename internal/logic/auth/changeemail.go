package auth

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/VinukaThejana/auth-rs/internal/apperr"
	"github.com/VinukaThejana/auth-rs/internal/svc"
	"github.com/VinukaThejana/auth-rs/pb/authpb"
)

type ChangeEmailLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewChangeEmailLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ChangeEmailLogic {
	return &ChangeEmailLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

// ChangeEmail requires a verified reauth token plus an email-verification
// token proving ownership of the new address (issued by
// SendEmailVerificationForNewEmail and carrying it in its custom claim).
func (l *ChangeEmailLogic) ChangeEmail(in *authpb.ChangeEmailRequest) (*authpb.ChangeEmailResponse, error) {
	reauth, err := l.svcCtx.Reauth.Verify(in.ReauthToken)
	if err != nil {
		return nil, apperr.ToStatus(apperr.New(apperr.Unauthorized, "reauth token is invalid"))
	}

	emailClaims, err := l.svcCtx.Reauth.Verify(in.EmailToken)
	if err != nil {
		return nil, apperr.ToStatus(apperr.New(apperr.Unauthorized, "email token is invalid"))
	}
	if emailClaims.Sub() != reauth.Sub() || emailClaims.Custom() == "" {
		return nil, apperr.ToStatus(apperr.New(apperr.BadRequest, "email token does not carry a pending address for this account"))
	}

	if err := l.svcCtx.Users.UpdateEmail(l.ctx, reauth.Sub(), emailClaims.Custom()); err != nil {
		return nil, apperr.ToStatus(apperr.FromDatabaseError(err))
	}
	if err := l.svcCtx.Users.MarkEmailVerified(l.ctx, reauth.Sub()); err != nil {
		return nil, apperr.ToStatus(apperr.FromDatabaseError(err))
	}

	return &authpb.ChangeEmailResponse{}, nil
}
