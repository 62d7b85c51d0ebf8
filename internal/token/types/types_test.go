package types

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/VinukaThejana/auth-rs/internal/clock"
	"github.com/VinukaThejana/auth-rs/internal/token/cache"
	"github.com/VinukaThejana/auth-rs/internal/token/keystore"
)

func generateKeyPair(t *testing.T) keystore.KeyPair {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return keystore.KeyPair{Private: priv, Public: &priv.PublicKey}
}

func setupEngine(t *testing.T) *Engine {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return &Engine{
		Clock: clock.Fixed(time.Now().Unix()),
		IDs:   clock.NewULIDGenerator(),
		Cache: cache.New(client, "auth"),
	}
}
