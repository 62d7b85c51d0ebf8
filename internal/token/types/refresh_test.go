package types

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VinukaThejana/auth-rs/internal/token/cache"
)

func TestRefreshToken_CreateAndDecode(t *testing.T) {
	engine := setupEngine(t)
	rt := NewRefreshToken(engine, generateKeyPair(t), time.Hour)
	ctx := context.Background()

	resp, paired, err := rt.Create(ctx, "user-1", 30*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, paired.RJTI, resp.Claims.JTI())

	decoded, err := rt.Decode(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", decoded.Sub())
	assert.Equal(t, paired.RJTI, decoded.JTI())

	ajti, err := engine.Cache.Get(ctx, engine.Cache.Key(cache.KindRefresh, paired.RJTI))
	require.NoError(t, err)
	assert.Equal(t, paired.AJTI, ajti)
}

func TestRefreshToken_Delete(t *testing.T) {
	engine := setupEngine(t)
	rt := NewRefreshToken(engine, generateKeyPair(t), time.Hour)
	ctx := context.Background()

	_, paired, err := rt.Create(ctx, "user-1", 30*time.Minute)
	require.NoError(t, err)

	require.NoError(t, rt.Delete(ctx, paired.RJTI))

	_, err = engine.Cache.Get(ctx, engine.Cache.Key(cache.KindRefresh, paired.RJTI))
	assert.ErrorIs(t, err, cache.ErrNotFound)
}

func TestRefreshToken_DeleteMissing(t *testing.T) {
	engine := setupEngine(t)
	rt := NewRefreshToken(engine, generateKeyPair(t), time.Hour)

	err := rt.Delete(context.Background(), "never-existed")
	assert.ErrorIs(t, err, cache.ErrNotFound)
}

func TestRefreshToken_DecodeWrongKey(t *testing.T) {
	engine := setupEngine(t)
	rt := NewRefreshToken(engine, generateKeyPair(t), time.Hour)
	ctx := context.Background()

	resp, _, err := rt.Create(ctx, "user-1", 30*time.Minute)
	require.NoError(t, err)

	otherEngine := setupEngine(t)
	other := NewRefreshToken(otherEngine, generateKeyPair(t), time.Hour)

	_, err = other.Decode(resp.Token)
	assert.ErrorIs(t, err, ErrRefreshInvalid)
}
