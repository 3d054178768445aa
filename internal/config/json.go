package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/researchhub/hubcli/internal/flagx"
	"github.com/researchhub/hubcli/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the file can specify the timeout either as a string like
// "30s" or as integer nanoseconds.
type JSONConfig struct {
	BaseURL        string         `json:"base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	DownloadDir    string         `json:"download_dir"`
	DevLogging     bool           `json:"dev_logging"`
}

// parseJSON overlays cfg with values from the JSON file named by the -c or
// -config flag. If no file is given the function is a no-op. Read or
// unmarshal errors panic; the process has no useful way to continue with a
// half-applied config.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	var jc JSONConfig

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.DownloadDir != "" {
		cfg.DownloadDir = jc.DownloadDir
	}
	if jc.DevLogging {
		cfg.DevLogging = true
	}
}
