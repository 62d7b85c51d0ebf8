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

var ErrSessionInvalid = errors.New("session token is invalid")

// SessionToken carries the user's extended profile claims for client
// consumption. It has no cache interaction and no per-request
// revocation path — it is a stateless profile carrier.
type SessionToken struct {
	engine *Engine
	keys   keystore.KeyPair
	exp    time.Duration
}

func NewSessionToken(engine *Engine, keys keystore.KeyPair, exp time.Duration) *SessionToken {
	return &SessionToken{engine: engine, keys: keys, exp: exp}
}

func (t *SessionToken) PublicKey() *rsa.PublicKey   { return t.keys.Public }
func (t *SessionToken) PrivateKey() *rsa.PrivateKey { return t.keys.Private }
func (t *SessionToken) Kind() cache.TokenKind       { return cache.KindSession }
func (t *SessionToken) Exp() time.Duration          { return t.exp }

// Create signs the extended profile envelope and returns it; no cache
// write occurs.
func (t *SessionToken) Create(rjti string, profile claims.Profile) (*Response, error) {
	now := t.engine.Clock.Now()
	expAt := now + int64(t.exp.Seconds())
	jti := t.engine.IDs.NewID()
	c := claims.NewExtendedClaims(jti, rjti, now, expAt, profile)
	signed, err := encode(jwt.SigningMethodRS256, c, t.keys.Private)
	if err != nil {
		return nil, err
	}
	return &Response{Token: signed, Claims: c, Exp: time.Unix(expAt, 0)}, nil
}

// Verify relies solely on signature and exp.
func (t *SessionToken) Verify(token string) (*claims.ExtendedClaims, error) {
	c, err := decodeExtended(token, t.keys.Public)
	if err != nil {
		return nil, ErrSessionInvalid
	}
	return c, nil
}
