package useragent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_ChromeOnWindows(t *testing.T) {
	ua := "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/117.0.0.0 Safari/537.36"
	d := NewCoarseParser().Parse(ua)

	assert.Equal(t, "Chrome", d.BrowserName.String)
	assert.Equal(t, "117.0.0.0", d.BrowserVersion.String)
	assert.Equal(t, "Windows", d.OSName.String)
	assert.Equal(t, "10.0", d.OSVersion.String)
}

func TestParse_SafariOnIPhone(t *testing.T) {
	ua := "Mozilla/5.0 (iPhone; CPU iPhone OS 16_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.5 Safari/604.1"
	d := NewCoarseParser().Parse(ua)

	assert.Equal(t, "Safari", d.BrowserName.String)
	assert.Equal(t, "16.5", d.BrowserVersion.String)
	assert.Equal(t, "iOS", d.OSName.String)
	assert.Equal(t, "16.5", d.OSVersion.String)
	assert.Equal(t, "Apple", d.Vendor.String)
	assert.Equal(t, "iPhone", d.Model.String)
}

func TestParse_Empty(t *testing.T) {
	assert.Nil(t, NewCoarseParser().Parse(""))
}

func TestParse_UnrecognizedLeavesFieldsNull(t *testing.T) {
	d := NewCoarseParser().Parse("curl/8.0.1")
	assert.False(t, d.BrowserName.Valid)
	assert.False(t, d.OSName.Valid)
}
