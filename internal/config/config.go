package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Storage backends.
const (
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

type Config struct {
	Port           string        `env:"PORT" envDefault:"8080"`
	Environment    string        `env:"ENVIRONMENT" envDefault:"development"`
	RawLogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
	StorageBackend string        `env:"STORAGE_BACKEND" envDefault:"redis"`
	RedisURL       string        `env:"REDIS_URL" envDefault:"localhost:6379"`
	SQLitePath     string        `env:"SQLITE_PATH" envDefault:"./data/quest.db"`
	SaveTTL        time.Duration `env:"SAVE_TTL" envDefault:"0s"` // 0 keeps saves forever
	RandomSeed     uint64        `env:"RANDOM_SEED" envDefault:"0"`
	OTelEndpoint   string        `env:"OTEL_ENDPOINT"`
	EventsEnabled  bool          `env:"EVENTS_ENABLED" envDefault:"true"`

	LogLevel slog.Level
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.LogLevel = parseLogLevel(cfg.RawLogLevel)
	cfg.StorageBackend = strings.ToLower(strings.TrimSpace(cfg.StorageBackend))

	switch cfg.StorageBackend {
	case BackendRedis, BackendSQLite, BackendMemory:
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
	return cfg, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
