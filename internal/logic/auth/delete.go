package auth

import (
	"context"
	"errors"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/VinukaThejana/auth-rs/internal/apperr"
	"github.com/VinukaThejana/auth-rs/internal/svc"
	"github.com/VinukaThejana/auth-rs/internal/token/cache"
	"github.com/VinukaThejana/auth-rs/pb/authpb"
)

type DeleteLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewDeleteLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteLogic {
	return &DeleteLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

// Delete removes the account behind a verified reauth token. The user
// row's database-level cascade removes its sessions and user_provider
// rows; the cache binding for the session tied to the reauth token's
// rjti is dropped best-effort so the cache converges immediately.
func (l *DeleteLogic) Delete(in *authpb.DeleteRequest) (*authpb.DeleteResponse, error) {
	claims, err := l.svcCtx.Reauth.Verify(in.ReauthToken)
	if err != nil {
		return nil, apperr.ToStatus(apperr.New(apperr.Unauthorized, "reauth token is invalid"))
	}

	if err := l.svcCtx.Users.Delete(l.ctx, claims.Sub()); err != nil {
		return nil, apperr.ToStatus(apperr.FromDatabaseError(err))
	}

	if err := l.svcCtx.Refresh.Delete(l.ctx, claims.RJTI()); err != nil && !errors.Is(err, cache.ErrNotFound) {
		l.Errorf("best-effort refresh binding delete for rjti=%s failed: %v", claims.RJTI(), err)
	}

	return &authpb.DeleteResponse{}, nil
}
