package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCacheTest(t *testing.T) *Cache {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return New(client, "auth")
}

func TestSetRefreshAccessPair(t *testing.T) {
	c := setupCacheTest(t)
	ctx := context.Background()

	require.NoError(t, c.SetRefreshAccessPair(ctx, "rjti-1", "ajti-1", "user-1", time.Hour, time.Minute))

	ajti, err := c.Get(ctx, c.Key(KindRefresh, "rjti-1"))
	require.NoError(t, err)
	assert.Equal(t, "ajti-1", ajti)

	owner, err := c.Get(ctx, c.Key(KindAccess, "ajti-1"))
	require.NoError(t, err)
	assert.Equal(t, "user-1", owner)
}

func TestDeleteRefreshAccessPair(t *testing.T) {
	c := setupCacheTest(t)
	ctx := context.Background()

	require.NoError(t, c.SetRefreshAccessPair(ctx, "rjti-1", "ajti-1", "user-1", time.Hour, time.Minute))
	require.NoError(t, c.DeleteRefreshAccessPair(ctx, "rjti-1"))

	_, err := c.Get(ctx, c.Key(KindRefresh, "rjti-1"))
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = c.Get(ctx, c.Key(KindAccess, "ajti-1"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRefreshAccessPair_MissingRefresh(t *testing.T) {
	c := setupCacheTest(t)
	ctx := context.Background()

	err := c.DeleteRefreshAccessPair(ctx, "does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRotateAccess(t *testing.T) {
	c := setupCacheTest(t)
	ctx := context.Background()

	require.NoError(t, c.SetRefreshAccessPair(ctx, "rjti-1", "ajti-1", "user-1", time.Hour, time.Minute))

	prev, err := c.RotateAccess(ctx, "rjti-1", "ajti-2", "user-1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "ajti-1", prev)

	_, err = c.Get(ctx, c.Key(KindAccess, "ajti-1"))
	assert.ErrorIs(t, err, ErrNotFound)

	owner, err := c.Get(ctx, c.Key(KindAccess, "ajti-2"))
	require.NoError(t, err)
	assert.Equal(t, "user-1", owner)

	ajti, err := c.Get(ctx, c.Key(KindRefresh, "rjti-1"))
	require.NoError(t, err)
	assert.Equal(t, "ajti-2", ajti)
}

func TestRotateAccess_NoPreviousBinding(t *testing.T) {
	c := setupCacheTest(t)
	ctx := context.Background()

	prev, err := c.RotateAccess(ctx, "rjti-missing", "ajti-2", "user-1", time.Minute)
	require.NoError(t, err)
	assert.Empty(t, prev)
}

func TestVerifyAccessOwner(t *testing.T) {
	c := setupCacheTest(t)
	ctx := context.Background()

	require.NoError(t, c.SetRefreshAccessPair(ctx, "rjti-1", "ajti-1", "user-1", time.Hour, time.Minute))

	assert.NoError(t, c.VerifyAccessOwner(ctx, "ajti-1", "user-1"))
	assert.ErrorIs(t, c.VerifyAccessOwner(ctx, "ajti-1", "someone-else"), ErrNotFound)
	assert.ErrorIs(t, c.VerifyAccessOwner(ctx, "ajti-missing", "user-1"), ErrNotFound)
}

func TestOTPSetAndConsume(t *testing.T) {
	c := setupCacheTest(t)
	ctx := context.Background()

	require.NoError(t, c.SetOTP(ctx, "admin:verification:a@b.com", "123456", time.Hour))

	val, err := c.ConsumeOTP(ctx, "admin:verification:a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "123456", val)

	_, err = c.ConsumeOTP(ctx, "admin:verification:a@b.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOTPConsume_NeverSet(t *testing.T) {
	c := setupCacheTest(t)
	_, err := c.ConsumeOTP(context.Background(), "admin:verification:nobody@nowhere.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
