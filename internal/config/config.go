package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDriverMemory = "memory"
	StoreDriverSQLite = "sqlite"
)

type Config struct {
	App   AppConfig
	Store StoreConfig
	Auth  AuthConfig
	Redis RedisConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type StoreConfig struct {
	Driver string
	// SeedFile overrides the embedded seed data when set.
	SeedFile string
}

type AuthConfig struct {
	JWTSecret      string
	AdminPassword  string
	TokenTTL       time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

// LoadDotEnv loads the given .env files into the process environment. A
// missing file is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

func Load() (Config, error) {
	cfg := Config{}

	var missing, malformed []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	optInt := func(key string, def int) int {
		raw := opt(key)
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			malformed = append(malformed, key)
			return def
		}
		return v
	}
	optFloat := func(key string, def float64) float64 {
		raw := opt(key)
		if raw == "" {
			return def
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			malformed = append(malformed, key)
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Store = StoreConfig{
		Driver:   strings.ToLower(opt("STORE_DRIVER")),
		SeedFile: opt("SEED_FILE"),
	}
	switch cfg.Store.Driver {
	case "":
		cfg.Store.Driver = StoreDriverMemory
	case StoreDriverMemory, StoreDriverSQLite:
	default:
		malformed = append(malformed, "STORE_DRIVER")
	}

	cfg.Auth = AuthConfig{
		JWTSecret:      opt("JWT_SECRET"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		TokenTTL:       time.Duration(optInt("AUTH_TOKEN_TTL", 3600)) * time.Second,
		RateLimitRPS:   optFloat("AUTH_RATE_LIMIT_RPS", 5),
		RateLimitBurst: optInt("AUTH_RATE_LIMIT_BURST", 10),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
		DB:       optInt("REDIS_DB", 0),
		TTL:      time.Duration(optInt("REDIS_TTL", 600)) * time.Second,
	}
	if cfg.Redis.Port == "" {
		cfg.Redis.Port = "6379"
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(malformed) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(malformed, ", "))
	}

	return cfg, nil
}
