package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds everything the server reads from the environment. The
// .env file (if any) is loaded by main before Load runs.
type Config struct {
	Port          string
	GeminiAPIKey  string
	GeminiModel   string
	GenTimeout    time.Duration
	BoardFile     string
	UsersFile     string
	SessionSecret string
	CORSOrigin    string
}

// Load reads the configuration from environment variables, applying
// defaults suitable for local development.
func Load() Config {
	cfg := Config{
		Port:          getenv("PORT", "8080"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getenv("GEMINI_MODEL", "gemini-2.5-flash"),
		GenTimeout:    30 * time.Second,
		BoardFile:     getenv("BOARD_FILE", "data/intros.json"),
		UsersFile:     getenv("USERS_FILE", "data/users.json"),
		SessionSecret: getenv("SESSION_SECRET", "dev-only-secret"),
		CORSOrigin:    getenv("CORS_ORIGIN", "*"),
	}
	if v := os.Getenv("GEN_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.GenTimeout = time.Duration(secs) * time.Second
		}
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
