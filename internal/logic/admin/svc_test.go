package admin

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/VinukaThejana/auth-rs/internal/adminstore"
	"github.com/VinukaThejana/auth-rs/internal/clock"
	"github.com/VinukaThejana/auth-rs/internal/mailer"
	"github.com/VinukaThejana/auth-rs/internal/svc"
	"github.com/VinukaThejana/auth-rs/internal/token/cache"
)

func newTestServiceContext(t *testing.T) (*svc.ServiceContext, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	sqlxDB := sqlx.NewDb(db, "postgres")

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	ctx := &svc.ServiceContext{
		Clock:  clock.Real,
		IDs:    clock.NewULIDGenerator(),
		Cache:  cache.New(redisClient, "auth"),
		Admins: adminstore.New(sqlxDB),
		Mailer: mailer.NewLoggingMailer(),
	}

	return ctx, mock
}
