package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/VinukaThejana/auth-rs/internal/adminstore"
	"github.com/VinukaThejana/auth-rs/internal/clock"
	"github.com/VinukaThejana/auth-rs/internal/geoip"
	"github.com/VinukaThejana/auth-rs/internal/mailer"
	"github.com/VinukaThejana/auth-rs/internal/sessionstore"
	"github.com/VinukaThejana/auth-rs/internal/svc"
	"github.com/VinukaThejana/auth-rs/internal/token/cache"
	"github.com/VinukaThejana/auth-rs/internal/token/factory"
	"github.com/VinukaThejana/auth-rs/internal/token/keystore"
	"github.com/VinukaThejana/auth-rs/internal/token/types"
	"github.com/VinukaThejana/auth-rs/internal/useragent"
	"github.com/VinukaThejana/auth-rs/internal/userstore"
)

func generateTestKeyPair(t *testing.T) keystore.KeyPair {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return keystore.KeyPair{Private: priv, Public: &priv.PublicKey}
}

// newTestServiceContext wires a ServiceContext against an in-memory
// sqlmock database and a miniredis instance.
func newTestServiceContext(t *testing.T) (*svc.ServiceContext, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	sqlxDB := sqlx.NewDb(db, "postgres")

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	tokenCache := cache.New(redisClient, "auth")
	ids := clock.NewULIDGenerator()
	engine := &types.Engine{Clock: clock.Real, IDs: ids, Cache: tokenCache}

	refresh := types.NewRefreshToken(engine, generateTestKeyPair(t), 360*time.Hour)
	access := types.NewAccessToken(engine, generateTestKeyPair(t), time.Hour)
	session := types.NewSessionToken(engine, generateTestKeyPair(t), 360*time.Hour)
	reauth := types.NewReauthToken(engine, generateTestKeyPair(t), 5*time.Minute)

	ctx := &svc.ServiceContext{
		Clock:   clock.Real,
		IDs:     ids,
		Cache:   tokenCache,
		Factory: &factory.Factory{Refresh: refresh, Access: access, Session: session},
		Refresh: refresh,
		Access:  access,
		Session: session,
		Reauth:  reauth,
		Users:   userstore.New(sqlxDB),
		Sessions: sessionstore.New(sqlxDB, useragent.NewCoarseParser(), geoip.NewIPInfoClient("")),
		Admins:  adminstore.New(sqlxDB),
		Mailer:  mailer.NewLoggingMailer(),
	}

	return ctx, mock
}
