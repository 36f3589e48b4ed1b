package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	App        AppConfig
	JWT        JWTConfig
	Storage    StorageConfig
	Database   DatabaseConfig
	Validation ValidationConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type JWTConfig struct {
	Secret    string
	ExpiresIn time.Duration
	// AdminUsers lists user IDs that receive the admin role claim on login.
	AdminUsers []string
}

type StorageConfig struct {
	// Driver selects the store backing: "memory" (default) or "postgres".
	Driver string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout time.Duration
	PoolMaxConns   int32
	PoolMinConns   int32
}

// ValidationConfig bounds the deferred validation jitter window. Completion
// fires uniformly within [MinDelay, MaxDelay) after a submission is accepted.
type ValidationConfig struct {
	MinDelay time.Duration
	MaxDelay time.Duration
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, fallback string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return fallback
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "learn-loop"),
		Environment: opt("APP_ENV", "development"),
		HTTPPort:    opt("HTTP_PORT", "3000"),
	}

	cfg.JWT = JWTConfig{
		Secret:     req("JWT_SECRET"),
		ExpiresIn:  durationEnv("JWT_EXPIRES_IN", 7*24*time.Hour),
		AdminUsers: splitList(os.Getenv("ADMIN_USERS")),
	}

	cfg.Storage = StorageConfig{Driver: opt("STORAGE_DRIVER", StorageMemory)}
	if cfg.Storage.Driver != StorageMemory && cfg.Storage.Driver != StoragePostgres {
		return Config{}, fmt.Errorf("unknown STORAGE_DRIVER: %s", cfg.Storage.Driver)
	}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST", ""),
		DBPort:         opt("DB_PORT", "5432"),
		DBName:         opt("DB_NAME", ""),
		DBUser:         opt("DB_USER", ""),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBSSLMode:      opt("DB_SSL_MODE", "disable"),
		ConnectTimeout: durationEnv("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:   int32Env("DB_POOL_MAX_CONNS", 0),
		PoolMinConns:   int32Env("DB_POOL_MIN_CONNS", 0),
	}

	cfg.Validation = ValidationConfig{
		MinDelay: millisEnv("VALIDATION_DELAY_MIN_MS", 2000*time.Millisecond),
		MaxDelay: millisEnv("VALIDATION_DELAY_MAX_MS", 5000*time.Millisecond),
	}
	if cfg.Validation.MinDelay < 0 || cfg.Validation.MaxDelay <= cfg.Validation.MinDelay {
		return Config{}, fmt.Errorf("invalid validation delay window: [%s, %s)", cfg.Validation.MinDelay, cfg.Validation.MaxDelay)
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func millisEnv(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms < 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}

func int32Env(key string, fallback int32) int32 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v < 0 {
		return fallback
	}
	return int32(v)
}
