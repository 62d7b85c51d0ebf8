// Package sessionstore is thin CRUD over the `session` table,
// enriched with user-agent and geolocation data at Create time.
// Grounded on shared/repository/repository.go's BaseRepository
// convention and third_party/database/postgres.go's connection setup.
package sessionstore

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/VinukaThejana/auth-rs/internal/geoip"
	"github.com/VinukaThejana/auth-rs/internal/models"
	"github.com/VinukaThejana/auth-rs/internal/useragent"
)

const (
	insertSessionQuery = `
		INSERT INTO session (
			id, user_id, ip_address, login_at, exp,
			device_vendor, device_model, os_name, os_version, browser_name, borwser_version,
			country, city, region, timezone, lat, lon, map_url
		) VALUES (
			:id, :user_id, :ip_address, :login_at, :exp,
			:device_vendor, :device_model, :os_name, :os_version, :browser_name, :borwser_version,
			:country, :city, :region, :timezone, :lat, :lon, :map_url
		)`

	deleteSessionQuery = `DELETE FROM session WHERE id = $1`

	// 60-second grace so sessions expiring within the next minute are
	// eagerly collected alongside ones that already expired.
	deleteExpiredForUserQuery = `DELETE FROM session WHERE user_id = $1 AND exp <= $2`
	deleteAllExpiredQuery     = `DELETE FROM session WHERE exp <= $1`
	deleteAllForUserQuery     = `DELETE FROM session WHERE user_id = $1`
)

const expiryGrace = 60 * time.Second

// Store is the durable session repository.
type Store struct {
	db      *sqlx.DB
	ua      useragent.Parser
	geo     geoip.Lookup
}

func New(db *sqlx.DB, ua useragent.Parser, geo geoip.Lookup) *Store {
	return &Store{db: db, ua: ua, geo: geo}
}

// Create inserts a session row for a freshly issued refresh token.
// Parsing/geolocation failures are swallowed (stored as null): unknown
// fields are stored as null, only database errors propagate.
func (s *Store) Create(ctx context.Context, rjti, userID, ip, userAgent string, loginAt, exp int64) error {
	row := &models.Session{
		ID:        rjti,
		UserID:    userID,
		IPAddress: ip,
		LoginAt:   loginAt,
		Exp:       exp,
	}

	if device := s.ua.Parse(userAgent); device != nil {
		row.DeviceVendor = device.Vendor
		row.DeviceModel = device.Model
		row.OSName = device.OSName
		row.OSVersion = device.OSVersion
		row.BrowserName = device.BrowserName
		row.BrowserVersion = device.BrowserVersion
	}

	if isLocatable(ip) {
		loc, err := s.geo.Lookup(ctx, ip)
		if err != nil {
			logx.WithContext(ctx).Errorf("session geoip lookup failed, storing null location: %v", err)
		} else if loc != nil {
			row.Country = loc.Country
			row.City = loc.City
			row.Region = loc.Region
			row.Timezone = loc.Timezone
			row.Lat = loc.Lat
			row.Lon = loc.Lon
			row.MapURL = loc.MapURL
		}
	}

	_, err := s.db.NamedExecContext(ctx, insertSessionQuery, row)
	return err
}

func isLocatable(ip string) bool {
	return ip != "" && ip != "127.0.0.1" && ip != "::1"
}

func (s *Store) Delete(ctx context.Context, rjti string) error {
	_, err := s.db.ExecContext(ctx, deleteSessionQuery, rjti)
	return err
}

// DeleteExpired removes rows for userID whose exp falls within the
// 60-second grace window (expired already, or about to).
func (s *Store) DeleteExpired(ctx context.Context, userID string, now int64) error {
	_, err := s.db.ExecContext(ctx, deleteExpiredForUserQuery, userID, now+int64(expiryGrace.Seconds()))
	return err
}

// DeleteAllExpired is the batch variant used by the periodic sweeper.
func (s *Store) DeleteAllExpired(ctx context.Context, now int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, deleteAllExpiredQuery, now+int64(expiryGrace.Seconds()))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteAllForUser revokes every session for userID, used by
// ResetPassword and ChangePassword.
func (s *Store) DeleteAllForUser(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx, deleteAllForUserQuery, userID)
	return err
}
