package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names. A .env file in the working directory is
// loaded first so local setups can keep them out of the shell profile.
const (
	envBaseURL        = "LEXSEARCH_API_URL"
	envRequestTimeout = "LEXSEARCH_TIMEOUT"
	envSessionDBPath  = "LEXSEARCH_SESSION_DB"
)

// parseEnv overlays Config with values from the process environment.
// Missing .env files are fine; real environment variables win over the
// file's contents (godotenv does not overwrite existing variables).
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv(envSessionDBPath); v != "" {
		cfg.SessionDBPath = v
	}
}
