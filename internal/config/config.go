package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv string
	Port   string

	DBHost string
	DBUser string
	DBPass string
	DBName string
	DBPort string

	RedisURL string

	SessionSecret string
	SessionTTL    time.Duration

	UploadRoot   string
	SeedFile     string
	TemplateGlob string
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "8000"),

		DBHost: getEnv("DB_HOST", "localhost"),
		DBUser: getEnv("DB_USER", "postgres"),
		DBPass: os.Getenv("DB_PASS"),
		DBName: getEnv("DB_NAME", "leafclinic"),
		DBPort: getEnv("DB_PORT", "5432"),

		RedisURL: os.Getenv("REDIS_URL"),

		SessionSecret: getEnv("SESSION_SECRET", "change-me"),

		UploadRoot:   getEnv("UPLOAD_ROOT", "static/uploads"),
		SeedFile:     getEnv("DISEASE_SEED_FILE", "data/diseases.csv"),
		TemplateGlob: getEnv("TEMPLATE_GLOB", "web/templates/*.tmpl"),
	}

	ttlMinutes := 60
	if ttlStr := os.Getenv("SESSION_TTL_MINUTES"); ttlStr != "" {
		minutes, err := strconv.Atoi(ttlStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL_MINUTES: %w", err)
		}
		ttlMinutes = minutes
	}
	cfg.SessionTTL = time.Duration(ttlMinutes) * time.Minute

	return cfg, nil
}

// DSN builds the Postgres connection string from the individual pieces.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPass, c.DBName, c.DBPort,
	)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
