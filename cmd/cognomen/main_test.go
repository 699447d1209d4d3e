package main

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/cognomen/internal/naming"
	"github.com/talgya/cognomen/internal/persistence"
)

// run executes the CLI against a temporary database and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func tempDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "cognomen.db")
	t.Setenv("COGNOMEN_DB", path)
	t.Setenv("COGNOMEN_LOG_LEVEL", "error")
	return path
}

func TestNameCommand(t *testing.T) {
	tempDB(t)

	out, err := run(t, "name",
		"--civic", "Monarchy",
		"--era", "2",
		"--territories", "10",
		"--adjective", "Celtic",
		"--leader", "Boudicca",
		"--gender", "female",
		"--mode", "FullBoth",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "form:        monarchy")
	assert.Contains(t, out, "size:        large")
	assert.Contains(t, out, "government:  Celtic Kingdom")
	assert.Contains(t, out, "avatar:      Queen Boudicca")
	assert.Contains(t, out, "long name:   Celtic Kingdom (Queen Boudicca) (FullBoth)")
}

func TestNameCommandResolvesCultureAndIdeology(t *testing.T) {
	tempDB(t)

	out, err := run(t, "name",
		"--civic", "Civics_Government06_Choice02",
		"--axis", "Authoritarianism=7",
		"--axis", "Collectivism=-8",
		"--adjective", "Civilization_Era5_France",
		"--leader", "Napoleon",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "government:  French People's Democratic Republic")
	assert.Contains(t, out, "avatar:      President Napoleon")
	assert.Contains(t, out, "long name:   French People's Democratic Republic (Napoleon) (FullEmpireAvatar)")
}

func TestNameCommandVassal(t *testing.T) {
	tempDB(t)

	out, err := run(t, "name",
		"--civic", "Republic",
		"--adjective", "Civilization_Era2_Celts",
		"--liege-era", "5",
		"--liege-adjective", "Civilization_Era5_France",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "government:  French Celtic Protectorate")
}

func TestNameCommandVassalWithoutLiegeAdjective(t *testing.T) {
	tempDB(t)

	for era, want := range map[string]string{
		"5": "government:  Celtic Celtic Protectorate\n",
		"6": "government:  Celtic Celtic State\n",
		"2": "government:  Tributary Celtic State\n",
	} {
		out, err := run(t, "name", "--adjective", "Celtic", "--liege-era", era)
		require.NoError(t, err)
		assert.Contains(t, out, want, "liege era %s", era)
		assert.NotContains(t, out, "government:   ", "liege era %s", era)
	}
}

func TestNameCommandErrors(t *testing.T) {
	tempDB(t)

	for _, args := range [][]string{
		{"name", "--civic", "Anarchy"},
		{"name", "--axis", "Collectivism"},
		{"name", "--axis", "Collectivism=lots"},
		{"name", "--gender", "other"},
		{"name", "--mode", "Banner"},
	} {
		_, err := run(t, args...)
		assert.Error(t, err, strings.Join(args, " "))
	}
}

func TestModeCommands(t *testing.T) {
	tempDB(t)

	out, err := run(t, "mode", "get")
	require.NoError(t, err)
	assert.Equal(t, "FullEmpireAvatar (saved)\n", out)

	out, err = run(t, "mode", "set", "EmpireAvatar")
	require.NoError(t, err)
	assert.Contains(t, out, "display mode set to EmpireAvatar")

	out, err = run(t, "mode", "get")
	require.NoError(t, err)
	assert.Equal(t, "EmpireAvatar (saved)\n", out)

	_, err = run(t, "mode", "set", "Banner")
	assert.ErrorIs(t, err, naming.ErrUnknownDisplayMode)

	t.Setenv("COGNOMEN_DISPLAY_MODE", "FullAvatar")
	out, err = run(t, "mode", "get")
	require.NoError(t, err)
	assert.Equal(t, "FullAvatar (COGNOMEN_DISPLAY_MODE)\n", out)

	out, err = run(t, "mode", "list")
	require.NoError(t, err)
	for _, info := range naming.Modes() {
		assert.Contains(t, out, string(info.Mode))
	}
}

func TestSimulateAndHistory(t *testing.T) {
	path := tempDB(t)
	t.Setenv("COGNOMEN_TURNS_PER_ERA", "3")
	t.Setenv("COGNOMEN_POLITIES", "4")
	t.Setenv("COGNOMEN_MINOR", "1")

	out, err := run(t, "simulate")
	require.NoError(t, err)
	assert.Contains(t, out, "Contemporary era")
	assert.Contains(t, out, "saved (")

	db, err := persistence.Open(path)
	require.NoError(t, err)
	m, err := db.LatestMatch()
	require.NoError(t, err)
	final, err := db.FinalNames(m.ID)
	require.NoError(t, err)
	require.NoError(t, db.Close())
	assert.Len(t, final, 5)
	assert.Equal(t, 4, m.Polities)

	out, err = run(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, m.ID)
	for _, r := range final {
		assert.Contains(t, out, r.FullName)
	}

	out, err = run(t, "history", "--match", m.ID, "--slot", "0", "--events", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Nomadic Tribe")
}

func TestSimulateDryRun(t *testing.T) {
	tempDB(t)
	t.Setenv("COGNOMEN_POLITIES", "3")

	out, err := run(t, "simulate", "--dry-run", "--turns", "5", "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "turn 5, Neolithic era")
	assert.NotContains(t, out, "saved")

	_, err = run(t, "history")
	assert.Error(t, err)
}
