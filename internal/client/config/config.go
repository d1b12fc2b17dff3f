package config

import "time"

// Config holds runtime settings for the lexsearch CLI.
//
// Fields:
//   - BaseURL: root of the backend HTTP API.
//   - RequestTimeout: per-request bound on the HTTP transport.
//   - HealthCheckInterval: how often the client probes backend reachability.
//   - SessionDBPath: location of the local session database.
type Config struct {
	BaseURL             string
	RequestTimeout      time.Duration
	HealthCheckInterval time.Duration
	SessionDBPath       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://lexsearch-backend.up.railway.app"
	c.RequestTimeout = 15 * time.Second
	c.HealthCheckInterval = 30 * time.Second
	c.SessionDBPath = "session.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including an optional .env file), JSON (if present)
// and command-line flags (if present). Later sources take precedence over
// earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
