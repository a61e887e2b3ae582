package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that override configuration file values.
const (
	EnvStateFile       = "BUILDSTATE_STATE_FILE"
	EnvMetricsTextfile = "BUILDSTATE_METRICS_TEXTFILE"
)

var envFiles = []string{".env", ".env.local"}

// loadEnvFile loads environment variables from the first readable .env file.
// Existing process environment variables are not overwritten.
func loadEnvFile() {
	for _, envPath := range envFiles {
		if err := godotenv.Load(envPath); err == nil {
			return
		}
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvStateFile); v != "" {
		cfg.State.File = v
	}
	if v := os.Getenv(EnvMetricsTextfile); v != "" {
		cfg.Metrics.Textfile = v
	}
}
