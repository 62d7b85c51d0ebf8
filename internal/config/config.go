// Package config describes the service's static configuration, loaded
// once at start-up via go-zero's conf package and treated as immutable
// for process lifetime.
package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/zeromicro/go-zero/zrpc"
)

// KeyPairConfig is a single base64-encoded PEM RSA key pair for one token
// type.
type KeyPairConfig struct {
	PrivateKey string `json:",env=PRIVATE_KEY"`
	PublicKey  string `json:",env=PUBLIC_KEY"`
}

// TokenConfig groups the four token types' key pairs and expiries.
type TokenConfig struct {
	Refresh KeyPairConfig
	Access  KeyPairConfig
	Session KeyPairConfig
	Reauth  KeyPairConfig

	RefreshExpire time.Duration `json:",default=360h"`
	AccessExpire  time.Duration `json:",default=1h"`
	SessionExpire time.Duration `json:",default=360h"`
	ReauthExpire  time.Duration `json:",default=5m"`
}

// DatabaseConfig is the durable relational store connection.
type DatabaseConfig struct {
	DataSource string `json:",env=DATABASE_URL"`
	Schema     string `json:",default=auth"`
}

// CacheConfig is the key-value cache connection.
type CacheConfig struct {
	Addr     string `json:",env=REDIS_ADDR"`
	Password string `json:",optional"`
	DB       int    `json:",default=0"`
	Schema   string `json:",default=auth"`
}

// Config is the root configuration shared by the auth and admin RPC
// services.
type Config struct {
	zrpc.RpcServerConf

	Env    string `json:",default=dev,options=dev|staging|prod"`
	Domain string

	Database DatabaseConfig
	Cache    CacheConfig
	Token    TokenConfig

	IPInfoToken string `json:",optional,env=IPINFO_TOKEN"`

	SweepCron string `json:",default=@hourly"`
}

// Validate enforces the configured expiry and port bounds. Call after
// conf.MustLoad.
func (c Config) Validate() error {
	if c.Token.RefreshExpire < 15*24*time.Hour || c.Token.RefreshExpire > 90*24*time.Hour {
		return fmt.Errorf("token.refreshExpire out of bounds [15d,90d]: %s", c.Token.RefreshExpire)
	}
	if c.Token.SessionExpire < 15*24*time.Hour || c.Token.SessionExpire > 90*24*time.Hour {
		return fmt.Errorf("token.sessionExpire out of bounds [15d,90d]: %s", c.Token.SessionExpire)
	}
	if c.Token.AccessExpire < 30*time.Minute || c.Token.AccessExpire > 6*time.Hour {
		return fmt.Errorf("token.accessExpire out of bounds [30m,6h]: %s", c.Token.AccessExpire)
	}
	if c.Token.ReauthExpire < time.Minute || c.Token.ReauthExpire > 10*time.Minute {
		return fmt.Errorf("token.reauthExpire out of bounds [1m,10m]: %s", c.Token.ReauthExpire)
	}
	if c.ListenOn == "" {
		return fmt.Errorf("listenOn is required")
	}
	_, portStr, err := net.SplitHostPort(c.ListenOn)
	if err != nil {
		return fmt.Errorf("listenOn %q is not host:port: %w", c.ListenOn, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("listenOn port %q is not numeric: %w", portStr, err)
	}
	if port < 50050 || port > 50060 {
		return fmt.Errorf("listenOn port out of bounds [50050,50060]: %d", port)
	}
	return nil
}
