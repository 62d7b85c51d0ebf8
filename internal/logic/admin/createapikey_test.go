package admin

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/VinukaThejana/auth-rs/pb/adminpb"
)

// hashRecorder is a sqlmock.Argument that records the bcrypt hash
// actually written to the database for later comparison against the
// cleartext secret returned to the caller.
type hashRecorder struct {
	hash string
}

func (h *hashRecorder) Match(v driver.Value) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	h.hash = s
	return true
}

func TestCreateApiKey_ReturnsSecretOnceAndStoresHash(t *testing.T) {
	svcCtx, mock := newTestServiceContext(t)
	ctx := context.Background()

	require.NoError(t, svcCtx.Cache.SetOTP(ctx, otpNamespace("owner@example.com"), "654321", time.Hour))

	rec := &hashRecorder{}
	mock.ExpectExec("INSERT INTO admin_api_key").
		WithArgs(sqlmock.AnyArg(), rec, "ci token", "owner@example.com", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := NewCreateApiKeyLogic(ctx, svcCtx).CreateApiKey(&adminpb.CreateApiKeyRequest{
		Email:       "owner@example.com",
		Description: "ci token",
		OTP:         "654321",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ApiKey)
	assert.NotEmpty(t, resp.ApiSecret)
	assert.NoError(t, mock.ExpectationsWereMet())

	require.NotEmpty(t, rec.hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(rec.hash), []byte(resp.ApiSecret)))
}

func TestCreateApiKey_InvalidOTP(t *testing.T) {
	svcCtx, _ := newTestServiceContext(t)

	_, err := NewCreateApiKeyLogic(context.Background(), svcCtx).CreateApiKey(&adminpb.CreateApiKeyRequest{
		Email: "owner@example.com",
		OTP:   "000000",
	})
	assert.Error(t, err)
}
