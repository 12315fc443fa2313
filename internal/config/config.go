package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go-warehouse-ops/pkg/validator"
)

type Config struct {
	Port                      string        `validate:"required"`
	UpstreamBaseURL           string        `validate:"required,url"`
	UpstreamTimeout           time.Duration `validate:"gt=0"`
	PrintBaseURL              string        `validate:"required,url"`
	DefaultWarehouseCode      string        `validate:"notblank"`
	DefaultWarehouseName      string
	DefaultProductionLocation string        `validate:"notblank"`
	RedisAddress              string
	LookupCacheTTL            time.Duration `validate:"gte=0"`
	BusyLockTTL               time.Duration `validate:"gt=0"`
	FormIdleTTL               time.Duration `validate:"gt=0"`
	LogLevel                  string
	AllowOrigins              string
}

// Load reads the environment. Call godotenv first if a .env file is used.
func Load() (*Config, error) {
	cfg := &Config{
		Port:                      env("PORT", "3000"),
		UpstreamBaseURL:           strings.TrimRight(env("UPSTREAM_BASE_URL", "http://103.94.238.252:8003/api"), "/"),
		PrintBaseURL:              strings.TrimRight(env("PRINT_BASE_URL", "https://103.94.238.252:8003"), "/"),
		DefaultWarehouseCode:      env("DEFAULT_WAREHOUSE_CODE", "WH-16"),
		DefaultWarehouseName:      env("DEFAULT_WAREHOUSE_NAME", "GUDANG UTAMA MMT"),
		DefaultProductionLocation: env("DEFAULT_PRODUCTION_LOCATION", "GPM"),
		RedisAddress:              os.Getenv("REDIS_ADDRESS"),
		LogLevel:                  env("LOG_LEVEL", "info"),
		AllowOrigins:              env("ALLOW_ORIGINS", "*"),
	}

	var err error
	if cfg.UpstreamTimeout, err = duration("UPSTREAM_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.LookupCacheTTL, err = duration("LOOKUP_CACHE_TTL", 10*time.Minute); err != nil {
		return nil, err
	}
	if cfg.BusyLockTTL, err = duration("BUSY_LOCK_TTL", 30*time.Second); err != nil {
		return nil, err
	}

	if cfg.FormIdleTTL, err = duration("FORM_IDLE_TTL", 8*time.Hour); err != nil {
		return nil, err
	}

	if err := validator.FirstError(validator.ValidateStruct(cfg)); err != nil {
		return nil, err
	}
	return cfg, nil
}

func env(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func duration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
