package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "jobmatch")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	for _, k := range []string{"STORE_DRIVER", "SEED_FILE", "JWT_SECRET", "ADMIN_PASSWORD", "AUTH_TOKEN_TTL", "AUTH_RATE_LIMIT_RPS", "AUTH_RATE_LIMIT_BURST", "REDIS_HOST", "REDIS_PORT", "REDIS_DB", "REDIS_TTL"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Store.Driver != StoreDriverMemory {
		t.Fatalf("expected memory driver, got %q", cfg.Store.Driver)
	}
	if cfg.Auth.TokenTTL != time.Hour {
		t.Fatalf("expected 1h token ttl, got %s", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.RateLimitRPS != 5 || cfg.Auth.RateLimitBurst != 10 {
		t.Fatalf("unexpected rate limit: %+v", cfg.Auth)
	}
	if cfg.Redis.Host != "" || cfg.Redis.Port != "6379" || cfg.Redis.TTL != 600*time.Second {
		t.Fatalf("unexpected redis config: %+v", cfg.Redis)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "8080")

	_, err := Load()
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected errMissingRequiredEnv, got %v", err)
	}
	if !strings.Contains(err.Error(), "APP_NAME, APP_ENV") {
		t.Fatalf("expected missing keys in error, got %v", err)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	setRequired(t)
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("REDIS_TTL", "soon")

	_, err := Load()
	if !errors.Is(err, errInvalidEnv) {
		t.Fatalf("expected errInvalidEnv, got %v", err)
	}
	if !strings.Contains(err.Error(), "STORE_DRIVER") || !strings.Contains(err.Error(), "REDIS_TTL") {
		t.Fatalf("expected offending keys in error, got %v", err)
	}
}

func TestLoad_SQLiteDriver(t *testing.T) {
	setRequired(t)
	t.Setenv("STORE_DRIVER", "SQLite")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Store.Driver != StoreDriverSQLite {
		t.Fatalf("expected sqlite driver, got %q", cfg.Store.Driver)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("JOBMATCH_DOTENV_PROBE=yes\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("JOBMATCH_DOTENV_PROBE", "")
	os.Unsetenv("JOBMATCH_DOTENV_PROBE")

	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := os.Getenv("JOBMATCH_DOTENV_PROBE"); got != "yes" {
		t.Fatalf("expected value from .env, got %q", got)
	}
}
