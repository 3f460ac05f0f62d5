// config.go - Handles configuration for the project

package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath     string        // Path to the SQLite database file
	ListenAddr string        // Address the HTTP server binds to
	JWTSecret  string        // Secret key for signing session tokens
	SessionTTL time.Duration // How long a session token stays valid
}

// Load reads config from the environment (optionally seeded from a .env
// file) and falls back to development defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBPath:     getEnv("DB_PATH", "cafes.db"),
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),
		JWTSecret:  getEnv("JWT_SECRET", "supersecret"),
		SessionTTL: getDuration("SESSION_TTL", 72*time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
