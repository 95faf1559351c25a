package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port          string
	MongoURI      string
	DBName        string
	SessionSecret string
	SessionTTL    time.Duration
	StaticDir     string
	CORSOrigins   []string

	// StrictRatings rejects missing or out-of-range ratings instead of
	// storing them as invalid values.
	StrictRatings bool
	RatingMin     int
	RatingMax     int

	ResendAPIKey string
	FromEmail    string
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "3000"),
		MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:        getEnv("DB_NAME", "Feedbacks"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		StaticDir:     getEnv("STATIC_DIR", "public"),
		CORSOrigins:   splitList(getEnv("CORS_ORIGINS", "*")),
		ResendAPIKey:  os.Getenv("RESEND_API_KEY"),
		FromEmail:     os.Getenv("FROM_EMAIL"),
	}

	if cfg.SessionSecret == "" {
		return Config{}, fmt.Errorf("SESSION_SECRET required")
	}

	var err error
	if cfg.SessionTTL, err = time.ParseDuration(getEnv("SESSION_TTL", "30m")); err != nil {
		return Config{}, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	if cfg.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL must be positive")
	}
	if cfg.StrictRatings, err = strconv.ParseBool(getEnv("STRICT_RATINGS", "false")); err != nil {
		return Config{}, fmt.Errorf("invalid STRICT_RATINGS: %w", err)
	}
	if cfg.RatingMin, err = strconv.Atoi(getEnv("RATING_MIN", "1")); err != nil {
		return Config{}, fmt.Errorf("invalid RATING_MIN: %w", err)
	}
	if cfg.RatingMax, err = strconv.Atoi(getEnv("RATING_MAX", "5")); err != nil {
		return Config{}, fmt.Errorf("invalid RATING_MAX: %w", err)
	}
	if cfg.RatingMin > cfg.RatingMax {
		return Config{}, fmt.Errorf("RATING_MIN %d exceeds RATING_MAX %d", cfg.RatingMin, cfg.RatingMax)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
