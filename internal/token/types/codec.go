// Package types implements the four concrete token types (refresh,
// access, session, reauth) sharing a common Token capability set.
package types

import (
	"crypto/rsa"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/VinukaThejana/auth-rs/internal/clock"
	"github.com/VinukaThejana/auth-rs/internal/token/cache"
	"github.com/VinukaThejana/auth-rs/internal/token/claims"
)

// Engine bundles the dependencies every token type needs: the clock/id
// source and the cache protocol client. Token types are plain structs
// parameterized by *Engine rather than constructing these themselves,
// which is how the factory composes them without mutual references.
type Engine struct {
	Clock clock.Clock
	IDs   clock.IDGenerator
	Cache *cache.Cache
}

// Response carries a created token's signed string alongside its claims
// and absolute expiry.
type Response struct {
	Token  string
	Claims claims.Claims
	Exp    time.Time
}

// Token is the capability set shared by all four token types.
type Token interface {
	PublicKey() *rsa.PublicKey
	PrivateKey() *rsa.PrivateKey
	Exp() time.Duration
	Kind() cache.TokenKind
}

func encode(method jwt.SigningMethod, c claims.Claims, priv *rsa.PrivateKey) (string, error) {
	tok := jwt.NewWithClaims(method, c)
	return tok.SignedString(priv)
}

func decodePrimary(token string, pub *rsa.PublicKey) (*claims.PrimaryClaims, error) {
	var out claims.PrimaryClaims
	_, err := jwt.ParseWithClaims(token, &out, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return pub, nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func decodeExtended(token string, pub *rsa.PublicKey) (*claims.ExtendedClaims, error) {
	var out claims.ExtendedClaims
	_, err := jwt.ParseWithClaims(token, &out, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return pub, nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
