package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"ENV", "HTTP_ADDR", "DATABASE_URL", "JWT_SECRET", "JWT_EXPIRES_IN",
		"CORS_ALLOWED_ORIGINS", "RATE_LIMIT_PER_MIN", "REQUEST_TIMEOUT",
		"ENFORCE_TASK_OWNERSHIP", "SEED_ADMIN",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Env != "dev" {
		t.Errorf("Env = %q, want dev", cfg.Env)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.JWTExpiry != 0 {
		t.Errorf("JWTExpiry = %v, want 0 (tokens never expire by default)", cfg.JWTExpiry)
	}
	if cfg.EnforceTaskOwnership {
		t.Error("EnforceTaskOwnership should default to false")
	}
	if cfg.UsernameMinLen != 3 || cfg.PasswordMinLen != 5 {
		t.Errorf("min lengths = %d/%d, want 3/5", cfg.UsernameMinLen, cfg.PasswordMinLen)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:3000" {
		t.Errorf("AllowedOrigins = %v, want the single default client origin", cfg.AllowedOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("JWT_EXPIRES_IN", "24h")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("ENFORCE_TASK_OWNERSHIP", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Env != "prod" || cfg.HTTPAddr != ":9000" || cfg.JWTSecret != "super-secret" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("JWTExpiry = %v, want 24h", cfg.JWTExpiry)
	}
	if cfg.RequestTimeout != 2*time.Second {
		t.Errorf("RequestTimeout = %v, want 2s", cfg.RequestTimeout)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if !cfg.EnforceTaskOwnership {
		t.Error("EnforceTaskOwnership should be true")
	}
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("JWT_EXPIRES_IN", "not-a-duration")
	t.Setenv("RATE_LIMIT_PER_MIN", "many")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.JWTExpiry != 0 {
		t.Errorf("JWTExpiry = %v, want fallback 0", cfg.JWTExpiry)
	}
	if cfg.RateLimitPerMinute != 30 {
		t.Errorf("RateLimitPerMinute = %d, want fallback 30", cfg.RateLimitPerMinute)
	}
}
