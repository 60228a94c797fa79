package config

import (
	"fmt"
	"os"
	"time"
)

const (
	// Auth
	TokenTTL   = 3 * time.Hour
	AuthCookie = "auth_token"

	// Public submission rate limit (per client IP)
	SubmissionLimit  = 10
	SubmissionWindow = 24 * time.Hour

	// HTTP server
	ReadTimeout  = 10 * time.Second
	WriteTimeout = 10 * time.Second
)

// Config holds the environment-backed settings of the service.
type Config struct {
	Port        string
	DatabaseDSN string
	RedisAddr   string
	JWTSecret   string
	CORSOrigin  string
}

// Load reads the configuration from environment variables. The .env file
// is loaded by the entrypoints before calling this.
func Load() (Config, error) {
	cfg := Config{
		Port:       getenv("PORT", "8080"),
		RedisAddr:  getenv("REDIS_ADDR", "localhost:6379"),
		CORSOrigin: getenv("CORS_ALLOWED_ORIGINS", "*"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is not set")
	}

	cfg.DatabaseDSN = os.Getenv("DATABASE_DSN")
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			getenv("DB_HOST", "localhost"),
			getenv("DB_USER", "user"),
			getenv("DB_PASSWORD", "password"),
			getenv("DB_NAME", "complaintdesk"),
			getenv("DB_PORT", "5432"),
		)
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
