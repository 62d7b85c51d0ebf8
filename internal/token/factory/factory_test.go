package factory

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VinukaThejana/auth-rs/internal/clock"
	"github.com/VinukaThejana/auth-rs/internal/token/cache"
	"github.com/VinukaThejana/auth-rs/internal/token/claims"
	"github.com/VinukaThejana/auth-rs/internal/token/keystore"
	"github.com/VinukaThejana/auth-rs/internal/token/types"
)

func generateKeyPair(t *testing.T) keystore.KeyPair {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return keystore.KeyPair{Private: priv, Public: &priv.PublicKey}
}

func setupFactory(t *testing.T) *Factory {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	engine := &types.Engine{
		Clock: clock.Real,
		IDs:   clock.NewULIDGenerator(),
		Cache: cache.New(client, "auth"),
	}

	return &Factory{
		Refresh: types.NewRefreshToken(engine, generateKeyPair(t), 360*time.Hour),
		Access:  types.NewAccessToken(engine, generateKeyPair(t), time.Hour),
		Session: types.NewSessionToken(engine, generateKeyPair(t), 360*time.Hour),
	}
}

func TestFactory_Issue(t *testing.T) {
	f := setupFactory(t)
	ctx := context.Background()

	profile := claims.Profile{UserID: "user-1", Email: "a@b.com", Username: "alice", Name: "Alice"}
	triple, err := f.Issue(ctx, "user-1", profile)
	require.NoError(t, err)

	require.NotEmpty(t, triple.Refresh.Token)
	require.NotEmpty(t, triple.Access.Token)
	require.NotEmpty(t, triple.Session.Token)

	accessClaims, err := f.Access.Verify(ctx, triple.Access.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", accessClaims.Sub())

	sessionClaims, err := f.Session.Verify(triple.Session.Token)
	require.NoError(t, err)
	assert.Equal(t, profile, sessionClaims.Profile)
	assert.Equal(t, triple.Refresh.Claims.JTI(), sessionClaims.RJTI())
}
