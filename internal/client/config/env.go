package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables. A .env
// file in the working directory is loaded first, if present; real process
// environment always wins over the file (godotenv never overrides).
//
// Recognized variables:
//
//	FYND_BASE_URL         base URL of the backend REST API
//	FYND_REQUEST_TIMEOUT  request timeout, Go duration syntax ("30s")
//	FYND_DATA_FILE        path of the local session database file
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("FYND_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("FYND_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("FYND_DATA_FILE"); v != "" {
		cfg.DataFile = v
	}
}
