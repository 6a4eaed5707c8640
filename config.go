package spacetraveling

import (
	"time"

	"github.com/jardelbordignon/spacetraveling/views"
)

// CMSConfig holds the headless CMS connection settings.
type CMSConfig struct {
	APIURL      string `mapstructure:"api_url"`      // e.g. https://spacetraveling.cdn.prismic.io/api/v2
	AccessToken string `mapstructure:"access_token"` // optional permanent access token
	PageSize    int    `mapstructure:"page_size"`    // listing page size (default 10)
	Timeout     string `mapstructure:"timeout"`      // duration string (default "10s")
}

// ServerConfig holds the HTTP server and storage settings.
type ServerConfig struct {
	Addr          string `mapstructure:"addr"`           // listen address (default ":3000")
	DatabasePath  string `mapstructure:"database_path"`  // snapshot SQLite path (default "data/snapshots.db")
	StaticDir     string `mapstructure:"static_dir"`     // user-owned assets (default "public")
	SessionSecret string `mapstructure:"session_secret"` // required: preview session encryption secret
	CookieSecure  bool   `mapstructure:"cookie_secure"`  // set true for HTTPS
	SnapshotTTL   string `mapstructure:"snapshot_ttl"`   // page staleness window (default "12h")
}

// Config is the top-level configuration structure, loaded from YAML.
type Config struct {
	Site   views.SiteConfig `mapstructure:"site"`
	CMS    CMSConfig        `mapstructure:"cms"`
	Server ServerConfig     `mapstructure:"server"`
}

// FillDefaults applies default values where the config file is silent.
func (c *Config) FillDefaults() {
	if c.Site.Name == "" {
		c.Site.Name = "spacetraveling"
	}
	if c.Site.URL == "" {
		c.Site.URL = "http://localhost:3000"
	}
	if c.CMS.PageSize == 0 {
		c.CMS.PageSize = 10
	}
	if c.CMS.Timeout == "" {
		c.CMS.Timeout = "10s"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":3000"
	}
	if c.Server.DatabasePath == "" {
		c.Server.DatabasePath = "data/snapshots.db"
	}
	if c.Server.StaticDir == "" {
		c.Server.StaticDir = "public"
	}
	if c.Server.SnapshotTTL == "" {
		c.Server.SnapshotTTL = "12h"
	}
}

// SnapshotTTLDuration parses the configured staleness window. Generated
// pages older than this are regenerated on the next request.
func (c *Config) SnapshotTTLDuration() time.Duration {
	d, err := time.ParseDuration(c.Server.SnapshotTTL)
	if err != nil || d <= 0 {
		return 12 * time.Hour
	}
	return d
}

// CMSTimeoutDuration parses the CMS request timeout.
func (c *Config) CMSTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.CMS.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// Option configures additional App behavior.
type Option func(*App)

// WithStaticDir overrides the directory for user-owned static assets.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}
