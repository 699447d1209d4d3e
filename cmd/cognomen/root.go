package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/talgya/cognomen/internal/config"
	"github.com/talgya/cognomen/internal/engine"
	"github.com/talgya/cognomen/internal/locale"
	"github.com/talgya/cognomen/internal/naming"
	"github.com/talgya/cognomen/internal/persistence"
)

// app carries what every subcommand needs once the root has loaded it.
type app struct {
	cfg    config.Config
	tables config.Tables
}

func newRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "cognomen",
		Short:        "Dynamic polity names for strategy matches",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}
			if _, err := config.InitLogger(cfg.LogLevel); err != nil {
				return err
			}
			tables, err := config.LoadTables(cfg.TablesPath)
			if err != nil {
				return fmt.Errorf("error loading tables: %w", err)
			}
			a.cfg = cfg
			a.tables = tables
			slog.Debug("config loaded", "db", cfg.DBPath, "locale", cfg.Locale, "tables", cfg.TablesPath)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		newNameCommand(a),
		newSimulateCommand(a),
		newModeCommand(a),
		newHistoryCommand(a),
	)
	return cmd
}

func (a *app) openDB() (*persistence.DB, error) {
	if dir := filepath.Dir(a.cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := persistence.Open(a.cfg.DBPath)
	if err != nil {
		return nil, err
	}
	slog.Debug("database opened", "path", a.cfg.DBPath)
	return db, nil
}

func (a *app) adjectives() (*locale.Adjectives, error) {
	cat, err := locale.LoadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("load locales: %w", err)
	}
	loc := cat.Localizer(a.cfg.Locale)
	if loc.Locale() != a.cfg.Locale {
		slog.Warn("locale not available, using fallback", "requested", a.cfg.Locale, "locale", loc.Locale())
	}
	return locale.NewAdjectives(loc, a.tables.DLCAdjectives), nil
}

// modes returns the environment override when set, else the stored
// preference. A nil db means no stored preference.
func (a *app) modes(db *persistence.DB) engine.ModeSource {
	if a.cfg.DisplayMode != "" {
		return engine.FixedMode(naming.DisplayMode(a.cfg.DisplayMode))
	}
	if db == nil {
		return engine.FixedMode(naming.DefaultDisplayMode)
	}
	return db
}
