// Package config loads runtime settings for the admin console. Values are
// layered: defaults first, then the JSON config file (if given), then
// command-line flags, with later sources winning.
package config

import "time"

// Config holds the console's runtime settings.
//
// Fields:
//   - APIBaseURL: base URL of the backend HTTP API.
//   - RequestTimeout: maximum wait per HTTP exchange.
//   - SessionDBPath: path of the local session database file.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	SessionDBPath  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 15 * time.Second
	c.SessionDBPath = "admin-session.db"
}

// LoadConfig constructs a Config from defaults, JSON file, and flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
