// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config controls the session and where saves go.
type Config struct {
	Seed      int64  `env:"UNIONROSTER_SEED"`
	SaveDir   string `env:"UNIONROSTER_SAVE_DIR"`
	RedisAddr string `env:"UNIONROSTER_REDIS_ADDR"`
	LogLevel  string `env:"UNIONROSTER_LOG_LEVEL"  envDefault:"warn"`
}

var now = time.Now

// Load parses the environment and fills derived defaults. Without
// UNIONROSTER_SEED the session is seeded from the clock.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if v, ok := os.LookupEnv("UNIONROSTER_SEED"); !ok || v == "" {
		cfg.Seed = now().UnixNano()
	}
	if cfg.SaveDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve save dir: %w", err)
		}
		cfg.SaveDir = filepath.Join(home, ".unionroster", "saves")
	}
	return cfg, nil
}

// Level maps LogLevel to a slog level. Unknown names mean warn.
func (c Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return lvl
}
