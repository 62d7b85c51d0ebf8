package types

import (
	"crypto/rsa"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/VinukaThejana/auth-rs/internal/token/cache"
	"github.com/VinukaThejana/auth-rs/internal/token/claims"
	"github.com/VinukaThejana/auth-rs/internal/token/keystore"
)

var ErrReauthInvalid = errors.New("reauth token is invalid")

// ReauthToken is a short-lived (1-10 minute) credential gating sensitive
// operations (password/email/username change, account deletion). No
// cache interaction.
type ReauthToken struct {
	engine *Engine
	keys   keystore.KeyPair
	exp    time.Duration
}

func NewReauthToken(engine *Engine, keys keystore.KeyPair, exp time.Duration) *ReauthToken {
	return &ReauthToken{engine: engine, keys: keys, exp: exp}
}

func (t *ReauthToken) PublicKey() *rsa.PublicKey   { return t.keys.Public }
func (t *ReauthToken) PrivateKey() *rsa.PrivateKey { return t.keys.Private }
func (t *ReauthToken) Kind() cache.TokenKind       { return cache.KindReauth }
func (t *ReauthToken) Exp() time.Duration          { return t.exp }

// Create issues a reauth token bound to the same sub/rjti as an
// already-verified access token, carrying custom as an optional
// free-form payload (e.g. a pending new email address).
func (t *ReauthToken) Create(sub, rjti, custom string) (*Response, error) {
	now := t.engine.Clock.Now()
	expAt := now + int64(t.exp.Seconds())
	jti := t.engine.IDs.NewID()
	c := claims.NewPrimaryClaims(sub, jti, rjti, now, expAt, custom)
	signed, err := encode(jwt.SigningMethodRS256, c, t.keys.Private)
	if err != nil {
		return nil, err
	}
	return &Response{Token: signed, Claims: c, Exp: time.Unix(expAt, 0)}, nil
}

// Verify relies solely on signature and exp.
func (t *ReauthToken) Verify(token string) (*claims.PrimaryClaims, error) {
	c, err := decodePrimary(token, t.keys.Public)
	if err != nil {
		return nil, ErrReauthInvalid
	}
	return c, nil
}
