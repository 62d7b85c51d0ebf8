// Package cache implements the typed key scheme and pipelined
// multi-key mutations the token engine needs over the key-value store.
// Grounded on the pipelined-Redis idiom shown by
// other_examples' refresh_store.go (pipelined create, Watch+TxPipelined
// rotation) and session_repository.go (GetDel atomic get-and-delete).
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenKind selects which cache namespace a token type binds into.
type TokenKind string

const (
	KindRefresh TokenKind = "refresh_token"
	KindAccess  TokenKind = "access_token"
	KindSession TokenKind = "session_token"
	KindReauth  TokenKind = "reauth_token"
)

// ErrNotFound is returned when a binding is absent from the cache.
var ErrNotFound = errors.New("token not found in redis")

// Cache is the pipelined key-value protocol used by the token engine and
// the OTP/admin-verification flows.
type Cache struct {
	client *redis.Client
	schema string
}

// New wraps a go-redis client with the configured schema namespace.
func New(client *redis.Client, schema string) *Cache {
	return &Cache{client: client, schema: schema}
}

// Key builds "<schema>:<kind>:<id>".
func (c *Cache) Key(kind TokenKind, id string) string {
	return fmt.Sprintf("%s:%s:%s", c.schema, kind, id)
}

// NamespaceKey builds an ad-hoc "<schema>:<namespace>" key for OTP-style
// bindings that don't follow the <kind>:<jti> shape.
func (c *Cache) NamespaceKey(namespace string) string {
	return fmt.Sprintf("%s:%s", c.schema, namespace)
}

// Get reads a single binding. Returns ErrNotFound on a cache miss.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// TTL returns the remaining time-to-live of key.
func (c *Cache) TTL(ctx context.Context, key string) (time.Duration, error) {
	return c.client.TTL(ctx, key).Result()
}

// SetRefreshAccessPair atomically writes the refresh->ajti and
// access->userID bindings in a single pipeline.
func (c *Cache) SetRefreshAccessPair(ctx context.Context, rjti, ajti, userID string, refreshTTL, accessTTL time.Duration) error {
	pipe := c.client.Pipeline()
	pipe.Set(ctx, c.Key(KindRefresh, rjti), ajti, refreshTTL)
	pipe.Set(ctx, c.Key(KindAccess, ajti), userID, accessTTL)
	_, err := pipe.Exec(ctx)
	return err
}

// DeleteRefreshAccessPair reads the refresh binding's paired ajti and
// deletes both keys in one pipeline. Returns ErrNotFound if the refresh
// binding is already absent.
func (c *Cache) DeleteRefreshAccessPair(ctx context.Context, rjti string) error {
	refreshKey := c.Key(KindRefresh, rjti)
	ajti, err := c.Get(ctx, refreshKey)
	if err != nil {
		return err
	}

	pipe := c.client.Pipeline()
	pipe.Del(ctx, refreshKey)
	pipe.Del(ctx, c.Key(KindAccess, ajti))
	_, err = pipe.Exec(ctx)
	return err
}

// RotateAccess performs the rotation-mode pipeline:
// drop the previous access binding, slide the refresh binding onto the
// new ajti with KEEPTTL, and write the new access binding with its own
// TTL. Returns the previous ajti (may be empty if absent).
func (c *Cache) RotateAccess(ctx context.Context, rjti, newAjti, userID string, accessTTL time.Duration) (prevAjti string, err error) {
	refreshKey := c.Key(KindRefresh, rjti)
	prevAjti, err = c.Get(ctx, refreshKey)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return "", err
	}

	pipe := c.client.Pipeline()
	if prevAjti != "" {
		pipe.Del(ctx, c.Key(KindAccess, prevAjti))
	}
	pipe.Set(ctx, refreshKey, newAjti, redis.KeepTTL)
	pipe.Set(ctx, c.Key(KindAccess, newAjti), userID, accessTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", err
	}
	return prevAjti, nil
}

// VerifyAccessOwner confirms the cached owner of an access binding
// matches sub.
func (c *Cache) VerifyAccessOwner(ctx context.Context, ajti, sub string) error {
	owner, err := c.Get(ctx, c.Key(KindAccess, ajti))
	if err != nil {
		return err
	}
	if owner != sub {
		return ErrNotFound
	}
	return nil
}

// DeleteAccess removes a single access binding directly, leaving the
// refresh binding in place.
func (c *Cache) DeleteAccess(ctx context.Context, ajti string) error {
	return c.client.Del(ctx, c.Key(KindAccess, ajti)).Err()
}

// SetOTP stores a namespaced one-time value with the given TTL.
func (c *Cache) SetOTP(ctx context.Context, namespace string, value string, ttl time.Duration) error {
	return c.client.Set(ctx, c.NamespaceKey(namespace), value, ttl).Err()
}

// ConsumeOTP atomically reads and deletes a namespaced OTP value,
// returning ErrNotFound if it was never set or already consumed. Uses
// GetDel so the read and delete happen as a single round trip, avoiding
// the check-then-act race a separate GET+DEL would have.
func (c *Cache) ConsumeOTP(ctx context.Context, namespace string) (string, error) {
	val, err := c.client.GetDel(ctx, c.NamespaceKey(namespace)).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}
