package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("ENV")
	os.Unsetenv("DATABASE_URL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "5000" {
		t.Errorf("expected default port 5000, got %s", cfg.Port)
	}
	if !cfg.IsDev() {
		t.Error("expected default env to be development")
	}
	if cfg.UsePostgres() {
		t.Error("expected in-memory mode without DATABASE_URL")
	}
}

func TestLoadFromEnv(t *testing.T) {
	os.Setenv("PORT", "9090")
	os.Setenv("DATABASE_URL", "postgres://localhost/healthtrack")
	defer os.Unsetenv("PORT")
	defer os.Unsetenv("DATABASE_URL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if !cfg.UsePostgres() {
		t.Error("expected postgres mode with DATABASE_URL set")
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{Port: "5000", Env: "development", JWTSecret: "healthtrack-dev-secret", TokenTTLHrs: 24, UploadDir: "uploads"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg.Env = "production"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for default secret in production")
	}

	cfg.JWTSecret = "something-else"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg.TokenTTLHrs = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero token ttl")
	}
}
