package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the backend.
type Config struct {
	Addr          string
	DatabaseURL   string
	JWTSecret     string
	TokenTTL      time.Duration
	ResetTokenTTL time.Duration
	PurgeInterval time.Duration
	UploadDir     string
	MaxUploadSize int64
	AllowedOrigin string
	LogPretty     bool

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	ResetBaseURL string
}

// Load reads configuration from a .env file (if present) and the
// environment, with sane defaults. JWT_SECRET is the only required
// setting.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:          strings.TrimSpace(os.Getenv("ADDR")),
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:     strings.TrimSpace(os.Getenv("JWT_SECRET")),
		TokenTTL:      parseHours(os.Getenv("TOKEN_TTL_HOURS")),
		ResetTokenTTL: parseHours(os.Getenv("RESET_TOKEN_TTL_HOURS")),
		PurgeInterval: parseHours(os.Getenv("PURGE_INTERVAL_HOURS")),
		UploadDir:     strings.TrimSpace(os.Getenv("UPLOAD_DIR")),
		MaxUploadSize: parseSize(os.Getenv("MAX_UPLOAD_SIZE_MB")),
		AllowedOrigin: strings.TrimSpace(os.Getenv("ALLOWED_ORIGIN")),
		LogPretty:     os.Getenv("LOG_PRETTY") == "true",

		SMTPHost:     strings.TrimSpace(os.Getenv("SMTP_HOST")),
		SMTPPort:     strings.TrimSpace(os.Getenv("SMTP_PORT")),
		SMTPUsername: strings.TrimSpace(os.Getenv("SMTP_USERNAME")),
		SMTPPassword: strings.TrimSpace(os.Getenv("SMTP_PASSWORD")),
		SMTPFrom:     strings.TrimSpace(os.Getenv("SMTP_FROM")),
		ResetBaseURL: strings.TrimSpace(os.Getenv("RESET_BASE_URL")),
	}

	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "studydesk.db"
	}
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if cfg.ResetTokenTTL == 0 {
		cfg.ResetTokenTTL = time.Hour
	}
	if cfg.PurgeInterval == 0 {
		cfg.PurgeInterval = time.Hour
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	if cfg.MaxUploadSize == 0 {
		cfg.MaxUploadSize = 16 << 20
	}
	if cfg.SMTPPort == "" {
		cfg.SMTPPort = "587"
	}
	if cfg.ResetBaseURL == "" {
		cfg.ResetBaseURL = "http://localhost:3000/reset-password"
	}

	if cfg.JWTSecret == "" {
		return cfg, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// SMTPConfigured reports whether outgoing mail can actually be sent;
// otherwise reset links are only logged.
func (c Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPFrom != ""
}

func parseHours(raw string) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	hours, err := time.ParseDuration(raw + "h")
	if err != nil || hours <= 0 {
		return 0
	}
	return hours
}

func parseSize(raw string) int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	mb, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || mb <= 0 {
		return 0
	}
	return mb << 20
}
