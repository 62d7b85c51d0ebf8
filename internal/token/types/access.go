package types

import (
	"context"
	"crypto/rsa"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/VinukaThejana/auth-rs/internal/token/cache"
	"github.com/VinukaThejana/auth-rs/internal/token/claims"
	"github.com/VinukaThejana/auth-rs/internal/token/keystore"
)

var ErrAccessInvalid = errors.New("access token is invalid")

// AccessToken is the short-lived, cache-bound credential verified on
// every authenticated request.
type AccessToken struct {
	engine *Engine
	keys   keystore.KeyPair
	exp    time.Duration
}

func NewAccessToken(engine *Engine, keys keystore.KeyPair, exp time.Duration) *AccessToken {
	return &AccessToken{engine: engine, keys: keys, exp: exp}
}

func (t *AccessToken) PublicKey() *rsa.PublicKey   { return t.keys.Public }
func (t *AccessToken) PrivateKey() *rsa.PrivateKey { return t.keys.Private }
func (t *AccessToken) Kind() cache.TokenKind       { return cache.KindAccess }
func (t *AccessToken) Exp() time.Duration          { return t.exp }

// CreateBound signs an access token for an ajti/rjti pair already bound
// in the cache by the owning refresh token's Create (bound mode). It
// performs no cache writes of its own.
func (t *AccessToken) CreateBound(userID, rjti, ajti string) (*Response, error) {
	now := t.engine.Clock.Now()
	expAt := now + int64(t.exp.Seconds())
	c := claims.NewPrimaryClaims(userID, ajti, rjti, now, expAt, "")
	signed, err := encode(jwt.SigningMethodRS256, c, t.keys.Private)
	if err != nil {
		return nil, err
	}
	return &Response{Token: signed, Claims: c, Exp: time.Unix(expAt, 0)}, nil
}

// Rotate generates a fresh ajti for rjti and atomically slides the
// cache bindings onto it.
func (t *AccessToken) Rotate(ctx context.Context, userID, rjti string) (*Response, error) {
	newAjti := t.engine.IDs.NewID()
	now := t.engine.Clock.Now()
	expAt := now + int64(t.exp.Seconds())

	if _, err := t.engine.Cache.RotateAccess(ctx, rjti, newAjti, userID, t.exp); err != nil {
		return nil, err
	}

	c := claims.NewPrimaryClaims(userID, newAjti, rjti, now, expAt, "")
	signed, err := encode(jwt.SigningMethodRS256, c, t.keys.Private)
	if err != nil {
		return nil, err
	}
	return &Response{Token: signed, Claims: c, Exp: time.Unix(expAt, 0)}, nil
}

// Refresh is a convenience wrapper around Rotate used by the Refresh RPC
// flow.
func (t *AccessToken) Refresh(ctx context.Context, userID, rjti string) (*Response, error) {
	return t.Rotate(ctx, userID, rjti)
}

// Verify decodes token and confirms its cache binding's owner matches
// the claimed subject — the revocation hook that lets a cache delete
// revoke a token before its signed exp.
func (t *AccessToken) Verify(ctx context.Context, token string) (*claims.PrimaryClaims, error) {
	c, err := decodePrimary(token, t.keys.Public)
	if err != nil {
		return nil, ErrAccessInvalid
	}
	if err := t.engine.Cache.VerifyAccessOwner(ctx, c.JTI(), c.Sub()); err != nil {
		return nil, ErrAccessInvalid
	}
	return c, nil
}
