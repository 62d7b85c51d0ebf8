package auth

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VinukaThejana/auth-rs/internal/token/claims"
	"github.com/VinukaThejana/auth-rs/pb/authpb"
)

func TestSendEmailVerification_Success(t *testing.T) {
	svcCtx, mock := newTestServiceContext(t)
	ctx := context.Background()

	triple, err := svcCtx.Factory.Issue(ctx, "user-1", claims.Profile{UserID: "user-1"})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"id", "email", "username", "name", "password", "photo_url", "is_email_verified", "is_two_factor_enabled"}).
		AddRow("user-1", "a@b.com", "alice", "Alice", "hash", nil, false, false)
	mock.ExpectQuery(`FROM "user" WHERE id`).WithArgs("user-1").WillReturnRows(rows)

	_, err = NewSendEmailVerificationLogic(ctx, svcCtx).SendEmailVerification(&authpb.SendEmailVerificationRequest{AccessToken: triple.Access.Token})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendEmailVerification_InvalidAccessToken(t *testing.T) {
	svcCtx, _ := newTestServiceContext(t)

	_, err := NewSendEmailVerificationLogic(context.Background(), svcCtx).SendEmailVerification(&authpb.SendEmailVerificationRequest{AccessToken: "garbage"})
	assert.Error(t, err)
}
