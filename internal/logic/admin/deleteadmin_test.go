package admin

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VinukaThejana/auth-rs/pb/adminpb"
)

func TestDeleteAdmin_Success(t *testing.T) {
	svcCtx, mock := newTestServiceContext(t)
	ctx := context.Background()

	require.NoError(t, svcCtx.Cache.SetOTP(ctx, otpNamespace("gone@example.com"), "111222", time.Hour))
	mock.ExpectExec("DELETE FROM admin").WithArgs("gone@example.com").WillReturnResult(sqlmock.NewResult(0, 1))

	_, err := NewDeleteAdminLogic(ctx, svcCtx).DeleteAdmin(&adminpb.DeleteAdminRequest{
		Email: "gone@example.com",
		OTP:   "111222",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAdmin_InvalidOTP(t *testing.T) {
	svcCtx, _ := newTestServiceContext(t)

	_, err := NewDeleteAdminLogic(context.Background(), svcCtx).DeleteAdmin(&adminpb.DeleteAdminRequest{
		Email: "gone@example.com",
		OTP:   "000000",
	})
	assert.Error(t, err)
}
