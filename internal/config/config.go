package config

import "time"

// Config holds runtime settings for the ResearchHub CLI.
//
// Fields:
//   - BaseURL: origin of the backend REST API.
//   - RequestTimeout: upper bound for any single HTTP request; on expiry the
//     call surfaces as a network failure.
//   - DownloadDir: where downloaded paper versions are written.
//   - DevLogging: switches the logger to human-readable development output.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	DownloadDir    string
	DevLogging     bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8080"
	c.RequestTimeout = 30 * time.Second
	c.DownloadDir = "downloads"
	c.DevLogging = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, a JSON file (if given via -c/-config) and command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
