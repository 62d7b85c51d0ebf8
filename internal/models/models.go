// Package models holds the sqlx row structs for the six persisted
// tables, generalized from
// shared/models/models.go's BaseModel convention.
package models

import "database/sql"

// User is the `user` table.
type User struct {
	ID                 string         `db:"id"`
	Email              string         `db:"email"`
	Username           string         `db:"username"`
	Name               string         `db:"name"`
	Password           sql.NullString `db:"password"`
	PhotoURL           sql.NullString `db:"photo_url"`
	IsEmailVerified    bool           `db:"is_email_verified"`
	IsTwoFactorEnabled bool           `db:"is_two_factor_enabled"`
}

// Provider is the `provider` table, static reference data.
type Provider struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	LogoURL string `db:"logo_url"`
}

// UserProvider is the `user_provider` linkage table.
type UserProvider struct {
	UserID              string         `db:"user_id"`
	ProviderID           string         `db:"provider_id"`
	ProviderGivenUserID sql.NullString `db:"provider_given_user_id"`
	LinkedAt            int64          `db:"linked_at"`
}

// Session is the `session` table. The BrowserVersion field is
// correctly spelled in Go; only its db tag preserves the original
// schema's borwser_version typo (see DESIGN.md Open Questions).
type Session struct {
	ID             string          `db:"id"`
	UserID         string          `db:"user_id"`
	IPAddress      string          `db:"ip_address"`
	LoginAt        int64           `db:"login_at"`
	Exp            int64           `db:"exp"`
	DeviceVendor   sql.NullString  `db:"device_vendor"`
	DeviceModel    sql.NullString  `db:"device_model"`
	OSName         sql.NullString  `db:"os_name"`
	OSVersion      sql.NullString  `db:"os_version"`
	BrowserName    sql.NullString  `db:"browser_name"`
	BrowserVersion sql.NullString  `db:"borwser_version"`
	Country        sql.NullString  `db:"country"`
	City           sql.NullString  `db:"city"`
	Region         sql.NullString  `db:"region"`
	Timezone       sql.NullString  `db:"timezone"`
	Lat            sql.NullFloat64 `db:"lat"`
	Lon            sql.NullFloat64 `db:"lon"`
	MapURL         sql.NullString  `db:"map_url"`
}

// Admin is the `admin` table.
type Admin struct {
	ID          string `db:"id"`
	Email       string `db:"email"`
	Description string `db:"description"`
}

// AdminAPIKey is the `admin_api_key` table. Key stores a bcrypt hash of
// the secret, never the cleartext. OwnedBy targets admin.email, not
// admin.id (preserved; see DESIGN.md Open Questions).
type AdminAPIKey struct {
	ID          string `db:"id"`
	Key         string `db:"key"`
	Description string `db:"description"`
	OwnedBy     string `db:"owned_by"`
	CreatedAt   int64  `db:"created_at"`
	LastUsed    int64  `db:"last_used"`
}
