package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ADDR", "DATABASE_URL", "JWT_SECRET", "TOKEN_TTL_HOURS",
		"RESET_TOKEN_TTL_HOURS", "PURGE_INTERVAL_HOURS", "UPLOAD_DIR",
		"MAX_UPLOAD_SIZE_MB", "ALLOWED_ORIGIN", "LOG_PRETTY",
		"SMTP_HOST", "SMTP_PORT", "SMTP_USERNAME", "SMTP_PASSWORD",
		"SMTP_FROM", "RESET_BASE_URL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.DatabaseURL != "studydesk.db" {
		t.Errorf("DatabaseURL = %q, want studydesk.db", cfg.DatabaseURL)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %v, want 24h", cfg.TokenTTL)
	}
	if cfg.ResetTokenTTL != time.Hour {
		t.Errorf("ResetTokenTTL = %v, want 1h", cfg.ResetTokenTTL)
	}
	if cfg.PurgeInterval != time.Hour {
		t.Errorf("PurgeInterval = %v, want 1h", cfg.PurgeInterval)
	}
	if cfg.UploadDir != "uploads" {
		t.Errorf("UploadDir = %q, want uploads", cfg.UploadDir)
	}
	if cfg.MaxUploadSize != 16<<20 {
		t.Errorf("MaxUploadSize = %d, want 16 MiB", cfg.MaxUploadSize)
	}
	if cfg.SMTPConfigured() {
		t.Error("SMTPConfigured without SMTP settings")
	}
}

func TestLoadRequiresSecret(t *testing.T) {
	clearEnv(t)

	if _, err := Load(); err == nil {
		t.Fatal("Load without JWT_SECRET succeeded")
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("ADDR", ":9090")
	t.Setenv("TOKEN_TTL_HOURS", "2")
	t.Setenv("MAX_UPLOAD_SIZE_MB", "4")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_FROM", "noreply@example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Addr)
	}
	if cfg.TokenTTL != 2*time.Hour {
		t.Errorf("TokenTTL = %v, want 2h", cfg.TokenTTL)
	}
	if cfg.MaxUploadSize != 4<<20 {
		t.Errorf("MaxUploadSize = %d, want 4 MiB", cfg.MaxUploadSize)
	}
	if !cfg.SMTPConfigured() {
		t.Error("SMTPConfigured = false with host and from set")
	}
}
