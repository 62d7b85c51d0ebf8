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

var ErrRefreshInvalid = errors.New("refresh token is invalid")

// RefreshToken is the credential that owns a login session: its jti
// (rjti) keys the durable session row and the cache binding pair.
type RefreshToken struct {
	engine *Engine
	keys   keystore.KeyPair
	exp    time.Duration
}

func NewRefreshToken(engine *Engine, keys keystore.KeyPair, exp time.Duration) *RefreshToken {
	return &RefreshToken{engine: engine, keys: keys, exp: exp}
}

func (t *RefreshToken) PublicKey() *rsa.PublicKey   { return t.keys.Public }
func (t *RefreshToken) PrivateKey() *rsa.PrivateKey { return t.keys.Private }
func (t *RefreshToken) Kind() cache.TokenKind       { return cache.KindRefresh }
func (t *RefreshToken) Exp() time.Duration          { return t.exp }

// Create issues a fresh refresh token for userID, writing the paired
// refresh/access cache bindings atomically.
func (t *RefreshToken) Create(ctx context.Context, userID string, accessExp time.Duration) (*Response, *PairedIDs, error) {
	rjti := t.engine.IDs.NewID()
	ajti := t.engine.IDs.NewID()
	now := t.engine.Clock.Now()
	expAt := now + int64(t.exp.Seconds())

	c := claims.NewPrimaryClaims(userID, rjti, rjti, now, expAt, ajti)
	signed, err := encode(jwt.SigningMethodRS256, c, t.keys.Private)
	if err != nil {
		return nil, nil, err
	}

	if err := t.engine.Cache.SetRefreshAccessPair(ctx, rjti, ajti, userID, t.exp, accessExp); err != nil {
		return nil, nil, err
	}

	return &Response{
			Token:  signed,
			Claims: c,
			Exp:    time.Unix(expAt, 0),
		}, &PairedIDs{RJTI: rjti, AJTI: ajti}, nil
}

// Delete revokes rjti by removing its refresh binding and the paired
// access binding from the cache, which is the authoritative revocation
// (see DESIGN.md's resolution of the Refresh.Delete ordering question).
// It does not touch the durable store: the session row for rjti is
// deleted by the caller (Logout) afterward. A missing refresh binding
// returns cache.ErrNotFound.
func (t *RefreshToken) Delete(ctx context.Context, rjti string) error {
	if err := t.engine.Cache.DeleteRefreshAccessPair(ctx, rjti); err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return cache.ErrNotFound
		}
		return err
	}
	return nil
}

// Decode parses rjti's claims without any cache check (refresh tokens
// are verified for cache presence explicitly by the refresh flow, not
// via a generic Verify).
func (t *RefreshToken) Decode(token string) (*claims.PrimaryClaims, error) {
	c, err := decodePrimary(token, t.keys.Public)
	if err != nil {
		return nil, ErrRefreshInvalid
	}
	return c, nil
}

// PairedIDs carries the rjti/ajti pair extracted from a freshly issued
// refresh token, consumed by the factory to issue the bound-mode access
// token.
type PairedIDs struct {
	RJTI string
	AJTI string
}
