package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/cognomen/internal/naming"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/cognomen.db", cfg.DBPath)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 8, cfg.Polities)
	assert.Equal(t, 12, cfg.TurnsPerEra)
	assert.Equal(t, "en-US", cfg.Locale)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.DisplayMode)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("COGNOMEN_DB", "/tmp/x.db")
	t.Setenv("COGNOMEN_SEED", "7")
	t.Setenv("COGNOMEN_POLITIES", "12")
	t.Setenv("COGNOMEN_LOCALE", "fr-FR")
	t.Setenv("COGNOMEN_LOG_LEVEL", "debug")
	t.Setenv("COGNOMEN_DISPLAY_MODE", string(naming.ModeFullAvatar))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 12, cfg.Polities)
	assert.Equal(t, "fr-FR", cfg.Locale)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, string(naming.ModeFullAvatar), cfg.DisplayMode)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"not a number", "COGNOMEN_SEED", "abc"},
		{"no polities", "COGNOMEN_POLITIES", "0"},
		{"negative minor", "COGNOMEN_MINOR", "-1"},
		{"zero era length", "COGNOMEN_TURNS_PER_ERA", "0"},
		{"log level", "COGNOMEN_LOG_LEVEL", "loud"},
		{"display mode", "COGNOMEN_DISPLAY_MODE", "Banner"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug":  slog.LevelDebug,
		"":       slog.LevelInfo,
		"INFO":   slog.LevelInfo,
		"warn":   slog.LevelWarn,
		" error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestInitLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	logger, err := InitLogger("warn")
	require.NoError(t, err)
	assert.Same(t, logger, slog.Default())
	assert.False(t, logger.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, logger.Enabled(t.Context(), slog.LevelWarn))

	_, err = InitLogger("verbose")
	assert.Error(t, err)
}

func writeTables(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadTablesDefaults(t *testing.T) {
	tables, err := LoadTables("")
	require.NoError(t, err)
	assert.Equal(t, naming.DefaultEraThresholds(), tables.Thresholds)
	assert.Equal(t, "Nigerian", tables.DLCAdjectives["Civilization_Era6_Nigeria"])
}

func TestLoadTablesMergesOverrides(t *testing.T) {
	path := writeTables(t, `
eras:
  2: {medium: 4, large: 9}
dlc_adjectives:
  Civilization_Era6_Nigeria: Naija
  Civilization_Era6_Mali: Malian
`)
	tables, err := LoadTables(path)
	require.NoError(t, err)

	assert.Equal(t, naming.TerritoryRange{Medium: 4, Large: 9}, tables.Thresholds[2])
	assert.Equal(t, naming.TerritoryRange{Medium: 3, Large: 6}, tables.Thresholds[1])
	assert.Equal(t, "Naija", tables.DLCAdjectives["Civilization_Era6_Nigeria"])
	assert.Equal(t, "Malian", tables.DLCAdjectives["Civilization_Era6_Mali"])
	assert.Equal(t, "Bantu", tables.DLCAdjectives["Civilization_Era1_Bantu"])
}

func TestLoadTablesErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTables(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
	t.Run("malformed", func(t *testing.T) {
		_, err := LoadTables(writeTables(t, "eras: [1, 2"))
		assert.Error(t, err)
	})
	t.Run("medium above large", func(t *testing.T) {
		_, err := LoadTables(writeTables(t, "eras:\n  3: {medium: 13, large: 12}\n"))
		assert.ErrorIs(t, err, naming.ErrThresholds)
	})
	t.Run("decreasing across eras", func(t *testing.T) {
		_, err := LoadTables(writeTables(t, "eras:\n  4: {medium: 1, large: 2}\n"))
		assert.ErrorIs(t, err, naming.ErrThresholds)
	})
	t.Run("empty adjective", func(t *testing.T) {
		_, err := LoadTables(writeTables(t, "dlc_adjectives:\n  Civilization_Era1_Bantu: \"\"\n"))
		assert.Error(t, err)
	})
}
