// Package config loads runtime settings from COGNOMEN_* environment
// variables and the optional naming-tables file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/talgya/cognomen/internal/naming"
)

// Config holds every environment-controlled setting.
type Config struct {
	DBPath      string `env:"COGNOMEN_DB"            envDefault:"data/cognomen.db"`
	Seed        int64  `env:"COGNOMEN_SEED"          envDefault:"42"`
	Polities    int    `env:"COGNOMEN_POLITIES"      envDefault:"8"`
	Minor       int    `env:"COGNOMEN_MINOR"         envDefault:"2"`
	TurnsPerEra int    `env:"COGNOMEN_TURNS_PER_ERA" envDefault:"12"`
	PlayerName  string `env:"COGNOMEN_PLAYER"        envDefault:"Player"`
	Locale      string `env:"COGNOMEN_LOCALE"        envDefault:"en-US"`
	LogLevel    string `env:"COGNOMEN_LOG_LEVEL"     envDefault:"info"`
	// DisplayMode overrides the persisted preference when set.
	DisplayMode string `env:"COGNOMEN_DISPLAY_MODE"`
	TablesPath  string `env:"COGNOMEN_TABLES"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings no match could run with.
func (c Config) Validate() error {
	if c.Polities <= 0 {
		return fmt.Errorf("COGNOMEN_POLITIES must be positive, got %d", c.Polities)
	}
	if c.Minor < 0 {
		return fmt.Errorf("COGNOMEN_MINOR must not be negative, got %d", c.Minor)
	}
	if c.TurnsPerEra <= 0 {
		return fmt.Errorf("COGNOMEN_TURNS_PER_ERA must be positive, got %d", c.TurnsPerEra)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.DisplayMode != "" {
		if _, err := naming.ParseDisplayMode(c.DisplayMode); err != nil {
			return fmt.Errorf("COGNOMEN_DISPLAY_MODE: %w", err)
		}
	}
	return nil
}

// ParseLevel maps debug, info, warn or error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// InitLogger installs a text logger on stderr as the slog default.
func InitLogger(level string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	}))
	slog.SetDefault(logger)
	return logger, nil
}
