// Package claims defines the two claim envelopes carried by the token
// engine: PrimaryClaims (refresh/access/reauth) and ExtendedClaims
// (session, which flattens the user's public profile alongside the
// primary envelope).
package claims

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the read-only accessor contract every envelope exposes,
// on top of the jwt.Claims interface jwt/v5 itself requires (which it
// embeds).
type Claims interface {
	jwt.Claims

	Sub() string
	JTI() string
	RJTI() string
	IAT() int64
	Exp() int64
	NBF() int64
	Custom() string
}

// PrimaryClaims is the envelope used by refresh, access and reauth
// tokens.
type PrimaryClaims struct {
	Subject        string `json:"sub"`
	ID             string `json:"jti"`
	RefreshID      string `json:"rjti"`
	IssuedAt       int64  `json:"iat"`
	NotBefore      int64  `json:"nbf"`
	ExpiresAt      int64  `json:"exp"`
	CustomClaim    string `json:"custom,omitempty"`
}

// NewPrimaryClaims builds a PrimaryClaims envelope. If rjti is empty it
// defaults to jti (a refresh token's rjti equals its own jti).
func NewPrimaryClaims(sub, jti, rjti string, iat, exp int64, custom string) *PrimaryClaims {
	if rjti == "" {
		rjti = jti
	}
	return &PrimaryClaims{
		Subject:     sub,
		ID:          jti,
		RefreshID:   rjti,
		IssuedAt:    iat,
		NotBefore:   iat,
		ExpiresAt:   exp,
		CustomClaim: custom,
	}
}

func (c *PrimaryClaims) Sub() string { return c.Subject }
func (c *PrimaryClaims) JTI() string { return c.ID }
func (c *PrimaryClaims) RJTI() string { return c.RefreshID }
func (c *PrimaryClaims) IAT() int64 { return c.IssuedAt }
func (c *PrimaryClaims) Exp() int64 { return c.ExpiresAt }
func (c *PrimaryClaims) NBF() int64 { return c.NotBefore }
func (c *PrimaryClaims) Custom() string { return c.CustomClaim }

func (c *PrimaryClaims) GetExpirationTime() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(time.Unix(c.ExpiresAt, 0)), nil
}

func (c *PrimaryClaims) GetIssuedAt() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(time.Unix(c.IssuedAt, 0)), nil
}

func (c *PrimaryClaims) GetNotBefore() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(time.Unix(c.NotBefore, 0)), nil
}

func (c *PrimaryClaims) GetIssuer() (string, error) { return "", nil }
func (c *PrimaryClaims) GetSubject() (string, error) { return c.Subject, nil }
func (c *PrimaryClaims) GetAudience() (jwt.ClaimStrings, error) {
	return nil, nil
}

// Profile is the subset of the user's public profile flattened into the
// session token's extended claims.
type Profile struct {
	UserID             string `json:"id"`
	Email              string `json:"email"`
	Username           string `json:"username"`
	Name               string `json:"name"`
	PhotoURL           string `json:"photo_url,omitempty"`
	IsEmailVerified    bool   `json:"is_email_verified"`
	IsTwoFactorEnabled bool   `json:"is_two_factor_enabled"`
}

// ExtendedClaims flattens PrimaryClaims alongside a user Profile: both
// are embedded so their fields serialize as one flat JSON object rather
// than a nested "profile" key. Used exclusively by the session token.
type ExtendedClaims struct {
	PrimaryClaims
	Profile
}

// NewExtendedClaims builds the session token's claim envelope.
func NewExtendedClaims(jti, rjti string, iat, exp int64, profile Profile) *ExtendedClaims {
	return &ExtendedClaims{
		PrimaryClaims: *NewPrimaryClaims(profile.UserID, jti, rjti, iat, exp, ""),
		Profile:       profile,
	}
}
