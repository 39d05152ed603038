package config

import "time"

// Config holds runtime settings for the Fynd client.
//
// Fields:
//   - BaseURL: root of the backend REST API, without a trailing slash.
//   - RequestTimeout: per-request deadline; zero means no client timeout,
//     which matters for large highlight-video uploads.
//   - DataFile: path of the local SQLite file holding the session.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	DataFile       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 0
	c.DataFile = "fynd.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, a JSON file (if present) and command-line flags (if
// present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
