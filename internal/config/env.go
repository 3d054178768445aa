package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// envConfig is a DTO used exclusively for environment parsing via cleanenv.
// Only variables that are actually set overlay the runtime Config, so the
// zero values here never clobber earlier sources.
type envConfig struct {
	BaseURL        string        `env:"HUBCLI_BASE_URL"`
	RequestTimeout time.Duration `env:"HUBCLI_REQUEST_TIMEOUT"`
	DownloadDir    string        `env:"HUBCLI_DOWNLOAD_DIR"`
	DevLogging     bool          `env:"HUBCLI_DEV_LOGGING"`
}

func parseEnv(cfg *Config) {
	var ec envConfig
	if err := cleanenv.ReadEnv(&ec); err != nil {
		panic(err)
	}

	if ec.BaseURL != "" {
		cfg.BaseURL = ec.BaseURL
	}
	if ec.RequestTimeout > 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.DownloadDir != "" {
		cfg.DownloadDir = ec.DownloadDir
	}
	if ec.DevLogging {
		cfg.DevLogging = true
	}
}
