// Package keystore loads the four RSA key pairs (refresh, access,
// session, reauth) from base64-encoded PEM configuration once at
// start-up.
package keystore

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"

	"github.com/VinukaThejana/auth-rs/internal/config"
)

// KeyPair is an immutable RSA signing/verification pair for one token
// type.
type KeyPair struct {
	Private *rsa.PrivateKey
	Public  *rsa.PublicKey
}

// KeyStore holds the four token types' key pairs for the process
// lifetime.
type KeyStore struct {
	Refresh KeyPair
	Access  KeyPair
	Session KeyPair
	Reauth  KeyPair
}

// Load decodes and parses all four key pairs from configuration.
func Load(cfg config.TokenConfig) (*KeyStore, error) {
	refresh, err := loadPair(cfg.Refresh)
	if err != nil {
		return nil, fmt.Errorf("refresh key pair: %w", err)
	}
	access, err := loadPair(cfg.Access)
	if err != nil {
		return nil, fmt.Errorf("access key pair: %w", err)
	}
	session, err := loadPair(cfg.Session)
	if err != nil {
		return nil, fmt.Errorf("session key pair: %w", err)
	}
	reauth, err := loadPair(cfg.Reauth)
	if err != nil {
		return nil, fmt.Errorf("reauth key pair: %w", err)
	}

	return &KeyStore{
		Refresh: *refresh,
		Access:  *access,
		Session: *session,
		Reauth:  *reauth,
	}, nil
}

func loadPair(cfg config.KeyPairConfig) (*KeyPair, error) {
	privPEM, err := base64.StdEncoding.DecodeString(cfg.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("decode private key base64: %w", err)
	}
	pubPEM, err := base64.StdEncoding.DecodeString(cfg.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("decode public key base64: %w", err)
	}

	privBlock, _ := pem.Decode(privPEM)
	if privBlock == nil {
		return nil, fmt.Errorf("invalid private key PEM")
	}
	priv, err := x509.ParsePKCS1PrivateKey(privBlock.Bytes)
	if err != nil {
		pkcs8, err2 := x509.ParsePKCS8PrivateKey(privBlock.Bytes)
		if err2 != nil {
			return nil, fmt.Errorf("parse private key: %w", err)
		}
		rsaPriv, ok := pkcs8.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("private key is not RSA")
		}
		priv = rsaPriv
	}

	pubBlock, _ := pem.Decode(pubPEM)
	if pubBlock == nil {
		return nil, fmt.Errorf("invalid public key PEM")
	}
	pubAny, err := x509.ParsePKIXPublicKey(pubBlock.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}
	pub, ok := pubAny.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("public key is not RSA")
	}

	return &KeyPair{Private: priv, Public: pub}, nil
}
