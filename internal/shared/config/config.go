package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBFile             string
	Port               string
	Env                string
	JWTSecret          string
	AdminPassword      string
	AuditRetentionDays int
	RateLimitPerMinute int
	RateLimitBurst     int
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		DBFile:             os.Getenv("DB_FILE"),
		Port:               os.Getenv("PORT"),
		Env:                os.Getenv("ENV"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		AdminPassword:      os.Getenv("ADMIN_PASSWORD"),
		AuditRetentionDays: envInt("AUDIT_RETENTION_DAYS", 90),
		RateLimitPerMinute: envInt("RATE_LIMIT_PER_MINUTE", 120),
		RateLimitBurst:     envInt("RATE_LIMIT_BURST", 30),
	}

	// Default values
	if cfg.DBFile == "" {
		cfg.DBFile = "ai_support_bot.db"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "change_this_secret_for_prod"
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "admin123"
	}

	return cfg
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("⚠️ invalid %s=%q, using default %d", key, raw, fallback)
		return fallback
	}
	return v
}
