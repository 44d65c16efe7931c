package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds process configuration, populated from the environment.
type Config struct {
	// Addr is the listen address for the HTTP API.
	Addr string `env:"FEEDWATCH_ADDR, default=:8080"`
	// DBPath is the SQLite database file location.
	DBPath string `env:"FEEDWATCH_DB_PATH, default=data/feedwatch.db"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"FEEDWATCH_LOG_LEVEL, default=info"`
	// LogFormat is text or json.
	LogFormat string `env:"FEEDWATCH_LOG_FORMAT, default=text"`
	// SweepInterval enables the periodic orphan-entry sweep when non-zero.
	SweepInterval time.Duration `env:"FEEDWATCH_SWEEP_INTERVAL, default=0"`
	// RateLimit caps API requests per second per client when non-zero.
	RateLimit float64 `env:"FEEDWATCH_RATE_LIMIT, default=0"`
}

func Load(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, fmt.Errorf("process config: %w", err)
	}
	cfg.DBPath = filepath.Clean(cfg.DBPath)
	return cfg, nil
}
