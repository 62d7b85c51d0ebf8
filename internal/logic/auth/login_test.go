package auth

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/VinukaThejana/auth-rs/pb/authpb"
)

func expectUserRow(mock sqlmock.Sqlmock, credential, password string, twoFactor bool) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	rows := sqlmock.NewRows([]string{"id", "email", "username", "name", "password", "photo_url", "is_email_verified", "is_two_factor_enabled"}).
		AddRow("u1", "a@b.com", "alice", "Alice", string(hash), nil, true, twoFactor)
	mock.ExpectQuery(`FROM "user" WHERE email`).WithArgs(credential).WillReturnRows(rows)
}

func TestLogin_Success_NoTwoFactor(t *testing.T) {
	svcCtx, mock := newTestServiceContext(t)
	mock.MatchExpectationsInOrder(false)
	expectUserRow(mock, "alice", "correct-password", false)
	mock.ExpectExec("INSERT INTO session").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM session WHERE user_id").WillReturnResult(sqlmock.NewResult(0, 0))

	resp, err := NewLoginLogic(context.Background(), svcCtx).Login(&authpb.LoginRequest{
		Credential: "alice",
		Password:   "correct-password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Refresh.Token)
	assert.NotEmpty(t, resp.Access.Token)
	assert.NotEmpty(t, resp.Session.Token)

	require.Eventually(t, func() bool {
		return mock.ExpectationsWereMet() == nil
	}, time.Second, 5*time.Millisecond)
}

func TestLogin_WrongPassword(t *testing.T) {
	svcCtx, mock := newTestServiceContext(t)
	expectUserRow(mock, "alice", "correct-password", false)

	_, err := NewLoginLogic(context.Background(), svcCtx).Login(&authpb.LoginRequest{
		Credential: "alice",
		Password:   "wrong-password",
	})
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.PermissionDenied, st.Code())
}

func TestLogin_UnknownCredential(t *testing.T) {
	svcCtx, mock := newTestServiceContext(t)
	mock.ExpectQuery(`FROM "user" WHERE email`).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := NewLoginLogic(context.Background(), svcCtx).Login(&authpb.LoginRequest{
		Credential: "ghost",
		Password:   "whatever1",
	})
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.PermissionDenied, st.Code())
}

func TestLogin_TwoFactorRequiredWhenOTPMissing(t *testing.T) {
	svcCtx, mock := newTestServiceContext(t)
	expectUserRow(mock, "alice", "correct-password", true)

	_, err := NewLoginLogic(context.Background(), svcCtx).Login(&authpb.LoginRequest{
		Credential: "alice",
		Password:   "correct-password",
	})
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.FailedPrecondition, st.Code())
}
