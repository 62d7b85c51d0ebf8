package auth

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VinukaThejana/auth-rs/pb/authpb"
)

func TestChangePassword_RevokesAllSessions(t *testing.T) {
	svcCtx, mock := newTestServiceContext(t)
	ctx := context.Background()

	resp, err := svcCtx.Reauth.Create("user-1", "", "")
	require.NoError(t, err)

	mock.ExpectExec(`UPDATE "user" SET password`).
		WithArgs("user-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM session WHERE user_id`).
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	_, err = NewChangePasswordLogic(ctx, svcCtx).ChangePassword(&authpb.ChangePasswordRequest{
		ReauthToken: resp.Token,
		NewPassword: "a-long-enough-password",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChangePassword_InvalidPassword(t *testing.T) {
	svcCtx, _ := newTestServiceContext(t)

	resp, err := svcCtx.Reauth.Create("user-1", "", "")
	require.NoError(t, err)

	_, err = NewChangePasswordLogic(context.Background(), svcCtx).ChangePassword(&authpb.ChangePasswordRequest{
		ReauthToken: resp.Token,
		NewPassword: "short",
	})
	assert.Error(t, err)
}
