package auth

import (
	"context"
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VinukaThejana/auth-rs/pb/authpb"
)

func TestForgotPassword_KnownEmail(t *testing.T) {
	svcCtx, mock := newTestServiceContext(t)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "email", "username", "name", "password", "photo_url", "is_email_verified", "is_two_factor_enabled"}).
		AddRow("u1", "a@b.com", "alice", "Alice", "hash", nil, true, false)
	mock.ExpectQuery(`FROM "user" WHERE email`).WithArgs("a@b.com").WillReturnRows(rows)

	_, err := NewForgotPasswordLogic(ctx, svcCtx).ForgotPassword(&authpb.ForgotPasswordRequest{Email: "a@b.com"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestForgotPassword_UnknownEmailDoesNotLeak(t *testing.T) {
	svcCtx, mock := newTestServiceContext(t)
	ctx := context.Background()

	mock.ExpectQuery(`FROM "user" WHERE email`).WithArgs("nobody@example.com").WillReturnError(sql.ErrNoRows)

	resp, err := NewForgotPasswordLogic(ctx, svcCtx).ForgotPassword(&authpb.ForgotPasswordRequest{Email: "nobody@example.com"})
	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.NoError(t, mock.ExpectationsWereMet())
}
