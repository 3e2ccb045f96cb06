package config

import "time"

// Config holds runtime settings for the catalog admin CLI.
//
// Fields:
//   - APIBaseURL: root of the catalog REST API (scheme, host, optional path).
//   - DBPath: SQLite file holding the durable session copy.
//   - RequestTimeout: upper bound for a single API request.
//   - PageSize: products per page in paginated listing.
//   - SearchDebounce: quiet period between typed search text and the query.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL     string
	DBPath         string
	RequestTimeout time.Duration
	PageSize       int
	SearchDebounce time.Duration
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:3000"
	c.DBPath = "catalog-admin.db"
	c.RequestTimeout = 15 * time.Second
	c.PageSize = 10
	c.SearchDebounce = 500 * time.Millisecond
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
