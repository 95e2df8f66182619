// Package config loads runtime settings from the environment, with an
// optional .env overlay for local development.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the JobHub server.
type Config struct {
	Port         string
	ClientOrigin string

	DatabaseDSN string

	JWTSecret string
	TokenTTL  time.Duration

	// Object storage (S3-compatible, MinIO in development)
	S3Endpoint      string
	S3Region        string
	S3Bucket        string
	S3AccessKey     string
	S3SecretKey     string
	S3PublicBaseURL string

	RedisAddr string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first if present; real environment variables win.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getenv("PORT", "8080"),
		ClientOrigin: getenv("CLIENT_ORIGIN", "http://localhost:5173"),

		DatabaseDSN: os.Getenv("DATABASE_URL"),

		JWTSecret: getenv("JWT_SECRET", "supersecret"),
		TokenTTL:  7 * 24 * time.Hour,

		S3Endpoint:      getenv("S3_ENDPOINT", "http://127.0.0.1:9000"),
		S3Region:        getenv("S3_REGION", "us-east-1"),
		S3Bucket:        getenv("S3_BUCKET", "jobhub"),
		S3AccessKey:     getenv("S3_ACCESS_KEY", "admin"),
		S3SecretKey:     getenv("S3_SECRET_KEY", "secretpassword"),
		S3PublicBaseURL: getenv("S3_PUBLIC_BASE_URL", "http://127.0.0.1:9000"),

		RedisAddr: getenv("REDIS_ADDR", "127.0.0.1:6379"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     os.Getenv("SMTP_PORT"),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),
	}

	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s",
			getenv("DB_USER", "postgres"),
			getenv("DB_PASSWORD", "postgres"),
			getenv("DB_HOST", "localhost"),
			getenv("DB_PORT", "5432"),
			getenv("DB_NAME", "jobhub"),
		)
	}

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			cfg.TokenTTL = d
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
