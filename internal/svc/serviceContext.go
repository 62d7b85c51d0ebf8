package svc

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/VinukaThejana/auth-rs/internal/adminstore"
	"github.com/VinukaThejana/auth-rs/internal/clock"
	"github.com/VinukaThejana/auth-rs/internal/config"
	"github.com/VinukaThejana/auth-rs/internal/geoip"
	"github.com/VinukaThejana/auth-rs/internal/mailer"
	"github.com/VinukaThejana/auth-rs/internal/sessionstore"
	"github.com/VinukaThejana/auth-rs/internal/sweeper"
	"github.com/VinukaThejana/auth-rs/internal/token/cache"
	"github.com/VinukaThejana/auth-rs/internal/token/factory"
	"github.com/VinukaThejana/auth-rs/internal/token/keystore"
	"github.com/VinukaThejana/auth-rs/internal/token/types"
	"github.com/VinukaThejana/auth-rs/internal/useragent"
	"github.com/VinukaThejana/auth-rs/internal/userstore"
)

// ServiceContext is the set of shared, process-lifetime dependencies
// every RPC logic struct is constructed against, built once in
// NewServiceContext and never mutated afterward.
type ServiceContext struct {
	Config config.Config

	Clock clock.Clock
	IDs   clock.IDGenerator

	Keys    *keystore.KeyStore
	Cache   *cache.Cache
	Factory *factory.Factory

	Refresh *types.RefreshToken
	Access  *types.AccessToken
	Session *types.SessionToken
	Reauth  *types.ReauthToken

	Users    *userstore.Store
	Sessions *sessionstore.Store
	Admins   *adminstore.Store

	Mailer mailer.Mailer
	Sweep  *sweeper.Sweeper
}

// NewServiceContext connects to Postgres and Redis, loads the RSA key
// material, wires the token engine, and starts the session sweeper.
// Call Sweep.Stop() at shutdown.
func NewServiceContext(c config.Config) *ServiceContext {
	db := sqlx.MustConnect("postgres", c.Database.DataSource)
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	logx.Info("connected to postgres")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     c.Cache.Addr,
		Password: c.Cache.Password,
		DB:       c.Cache.DB,
	})
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		logx.Errorf("failed to ping redis: %v", err)
		panic(fmt.Errorf("connect redis: %w", err))
	}
	logx.Info("connected to redis")

	keys, err := keystore.Load(c.Token)
	if err != nil {
		panic(fmt.Errorf("load key material: %w", err))
	}

	ids := clock.NewULIDGenerator()
	tokenCache := cache.New(redisClient, c.Cache.Schema)
	engine := &types.Engine{
		Clock: clock.Real,
		IDs:   ids,
		Cache: tokenCache,
	}

	refresh := types.NewRefreshToken(engine, keys.Refresh, c.Token.RefreshExpire)
	access := types.NewAccessToken(engine, keys.Access, c.Token.AccessExpire)
	session := types.NewSessionToken(engine, keys.Session, c.Token.SessionExpire)
	reauth := types.NewReauthToken(engine, keys.Reauth, c.Token.ReauthExpire)

	users := userstore.New(db)
	sessions := sessionstore.New(db, useragent.NewCoarseParser(), geoip.NewIPInfoClient(c.IPInfoToken))
	admins := adminstore.New(db)

	sweep, err := sweeper.New(c.SweepCron, sessions, clock.Real)
	if err != nil {
		panic(fmt.Errorf("build session sweeper: %w", err))
	}
	sweep.Start()

	return &ServiceContext{
		Config: c,

		Clock: clock.Real,
		IDs:   ids,

		Keys:    keys,
		Cache:   tokenCache,
		Factory: &factory.Factory{Refresh: refresh, Access: access, Session: session},

		Refresh: refresh,
		Access:  access,
		Session: session,
		Reauth:  reauth,

		Users:    users,
		Sessions: sessions,
		Admins:   admins,

		Mailer: mailer.NewLoggingMailer(),
		Sweep:  sweep,
	}
}
