package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	SinkRedis  = "redis"
	SinkSQLite = "sqlite"
	SinkMemory = "memory"
)

type Config struct {
	Env                    string
	LogLevel               string
	AppURL                 string
	RateLimit              int
	ShutdownTimeoutSeconds int
	SinkDriver             string
	StorageKey             string
	StorageFormat          string
	DatabaseDSN            string
	RedisAddr              string
}

func Load() (Config, error) {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	rateLimit, err := getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60)
	if err != nil {
		return Config{}, err
	}
	shutdownTimeout, err := getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Env:                    getEnv("APP_ENV", EnvLocal),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		RateLimit:              rateLimit,
		ShutdownTimeoutSeconds: shutdownTimeout,
		SinkDriver:             strings.ToLower(getEnv("SINK_DRIVER", SinkSQLite)),
		StorageKey:             getEnv("STORAGE_KEY", "tasks"),
		StorageFormat:          strings.ToLower(getEnv("STORAGE_FORMAT", "json")),
		DatabaseDSN:            getEnv("DATABASE_DSN", "tasks.db"),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	switch cfg.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("APP_ENV must be one of local, dev, prod (got %q)", cfg.Env)
	}
	if cfg.RateLimit <= 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	if cfg.StorageKey == "" {
		return errors.New("STORAGE_KEY must not be empty")
	}
	switch cfg.StorageFormat {
	case "json", "yaml", "yml":
	default:
		return fmt.Errorf("STORAGE_FORMAT must be json or yaml (got %q)", cfg.StorageFormat)
	}
	switch cfg.SinkDriver {
	case SinkSQLite:
		if cfg.DatabaseDSN == "" {
			return errors.New("DATABASE_DSN must not be empty")
		}
	case SinkRedis, SinkMemory:
	default:
		return fmt.Errorf("SINK_DRIVER must be one of redis, sqlite, memory (got %q)", cfg.SinkDriver)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) (int, error) {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s", key)
		}
		return i, nil
	}
	return defaultVal, nil
}
