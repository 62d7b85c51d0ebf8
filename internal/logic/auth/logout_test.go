package auth

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VinukaThejana/auth-rs/internal/token/cache"
	"github.com/VinukaThejana/auth-rs/internal/token/claims"
	"github.com/VinukaThejana/auth-rs/pb/authpb"
)

func TestLogout_Success(t *testing.T) {
	svcCtx, mock := newTestServiceContext(t)
	ctx := context.Background()

	triple, err := svcCtx.Factory.Issue(ctx, "user-1", claims.Profile{UserID: "user-1"})
	require.NoError(t, err)

	mock.ExpectExec("DELETE FROM session WHERE id").WillReturnResult(sqlmock.NewResult(0, 1))

	_, err = NewLogoutLogic(ctx, svcCtx).Logout(&authpb.LogoutRequest{RefreshToken: triple.Refresh.Token})
	require.NoError(t, err)

	_, err = svcCtx.Cache.Get(ctx, svcCtx.Cache.Key(cache.KindRefresh, triple.Refresh.Claims.JTI()))
	assert.ErrorIs(t, err, cache.ErrNotFound)
}

func TestLogout_AlreadyRevokedIsIdempotent(t *testing.T) {
	svcCtx, mock := newTestServiceContext(t)
	ctx := context.Background()

	triple, err := svcCtx.Factory.Issue(ctx, "user-1", claims.Profile{UserID: "user-1"})
	require.NoError(t, err)
	require.NoError(t, svcCtx.Refresh.Delete(ctx, triple.Refresh.Claims.JTI()))

	mock.ExpectExec("DELETE FROM session WHERE id").WillReturnResult(sqlmock.NewResult(0, 0))

	_, err = NewLogoutLogic(ctx, svcCtx).Logout(&authpb.LogoutRequest{RefreshToken: triple.Refresh.Token})
	assert.NoError(t, err)
}
