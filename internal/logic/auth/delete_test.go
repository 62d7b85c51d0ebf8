package auth

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VinukaThejana/auth-rs/pb/authpb"
)

func TestDelete_Success(t *testing.T) {
	svcCtx, mock := newTestServiceContext(t)

	resp, err := svcCtx.Reauth.Create("user-1", "rjti-1", "")
	require.NoError(t, err)

	mock.ExpectExec(`DELETE FROM "user" WHERE id`).WithArgs("user-1").WillReturnResult(sqlmock.NewResult(0, 1))

	_, err = NewDeleteLogic(context.Background(), svcCtx).Delete(&authpb.DeleteRequest{ReauthToken: resp.Token})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_InvalidReauthToken(t *testing.T) {
	svcCtx, _ := newTestServiceContext(t)

	_, err := NewDeleteLogic(context.Background(), svcCtx).Delete(&authpb.DeleteRequest{ReauthToken: "garbage"})
	assert.Error(t, err)
}
