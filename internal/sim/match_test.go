package sim

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/cognomen/internal/engine"
	"github.com/talgya/cognomen/internal/locale"
	"github.com/talgya/cognomen/internal/naming"
)

// recorder counts listener calls.
type recorder struct {
	calls map[string]int
}

func newRecorder() *recorder { return &recorder{calls: map[string]int{}} }

func (r *recorder) LoadMatch()                     { r.calls["load"]++ }
func (r *recorder) PresentationStarted()           { r.calls["started"]++ }
func (r *recorder) PresentationStopped()           { r.calls["stopped"]++ }
func (r *recorder) EndMatch()                      { r.calls["end"]++ }
func (r *recorder) PolityInitialized(int)          { r.calls["initialized"]++ }
func (r *recorder) CivicChoiceChanged(int)         { r.calls["civic"]++ }
func (r *recorder) IdeologyChanged(int)            { r.calls["ideology"]++ }
func (r *recorder) TerritoryOwnerChanged(_, _ int) { r.calls["territory"]++ }
func (r *recorder) NameRefreshed(int)              { r.calls["refreshed"]++ }

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.TurnsPerEra = 4
	return cfg
}

func TestClockCallbacks(t *testing.T) {
	c := NewClock(3)
	var turns, eras []int
	c.OnTurn = func(turn int) { turns = append(turns, turn) }
	c.OnEra = func(turn int) { eras = append(eras, turn) }

	c.Advance(7)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, turns)
	assert.Equal(t, []int{3, 6}, eras)
	assert.Equal(t, 7, c.Turn)

	assert.Equal(t, DefaultTurnsPerEra, NewClock(0).TurnsPerEra)
}

func TestNewMatchLayout(t *testing.T) {
	cfg := smallConfig()
	cfg.Polities = 12
	m := NewMatch(cfg)

	require.Equal(t, 14, m.PolityCount())

	human, ok := m.Polity(0)
	require.True(t, ok)
	assert.True(t, human.Major)
	assert.True(t, human.Human)
	assert.Equal(t, "Player", human.Persona())
	assert.Equal(t, "Nomadic Tribe", human.RoughName)

	late, _ := m.Polity(11)
	assert.False(t, late.GenderKnown, "slots past the avatar limit have no gender")

	minor, ok := m.Polity(12)
	require.True(t, ok)
	assert.False(t, minor.Major)
	assert.Equal(t, "Highland Clans", minor.RoughName)

	_, ok = m.Polity(14)
	assert.False(t, ok)
	_, ok = m.Polity(-1)
	assert.False(t, ok)
}

func TestMatchIsDeterministic(t *testing.T) {
	a := NewMatch(smallConfig())
	b := NewMatch(smallConfig())
	a.Run(20)
	b.Run(20)

	for i := range a.Polities {
		pa, _ := a.Polity(i)
		pb, _ := b.Polity(i)
		assert.Equal(t, pa, pb, "polity %d", i)
	}
	assert.Equal(t, a.Events, b.Events)
}

func TestMatchReachesLastEraWithAllCivics(t *testing.T) {
	cfg := smallConfig()
	m := NewMatch(cfg)
	m.Run(cfg.TurnsPerEra * (MaxEra + 2))

	for _, p := range m.majors() {
		assert.Equal(t, MaxEra, p.Era)
		for ci, c := range p.Civics {
			assert.Equal(t, engine.CivicEnacted, c.Status, "polity %d civic %d", p.Index, ci+1)
			_, ok := naming.CivicForChoice(c.Choice)
			assert.True(t, ok, "choice %s maps to a civic", c.Choice)
		}
	}
}

func TestMatchRaisesEvents(t *testing.T) {
	cfg := smallConfig()
	m := NewMatch(cfg)
	r := newRecorder()
	m.Subscribe(r)

	m.Start()
	assert.Equal(t, 1, r.calls["load"])
	assert.Equal(t, 1, r.calls["started"])
	assert.Equal(t, m.PolityCount(), r.calls["initialized"])
	assert.Equal(t, m.PolityCount(), r.calls["refreshed"])

	m.Run(cfg.TurnsPerEra * 4)
	assert.Positive(t, r.calls["civic"])
	assert.Positive(t, r.calls["ideology"])

	m.Stop()
	assert.Equal(t, 1, r.calls["stopped"])
	assert.Equal(t, 1, r.calls["end"])
}

func TestTerritoryIsConserved(t *testing.T) {
	cfg := smallConfig()
	m := NewMatch(cfg)
	total := func() int {
		n := m.unclaimed
		for _, p := range m.majors() {
			n += p.Territories
		}
		return n
	}
	start := total()
	m.Run(40)
	assert.Equal(t, start, total())
	for _, p := range m.majors() {
		assert.GreaterOrEqual(t, p.Territories, 1)
	}
}

func TestAxisReading(t *testing.T) {
	economic := axes[0]
	assert.Equal(t, naming.AxisReading{Orientation: naming.Liberalism, Level: -4}, economic.reading(-4))
	assert.Equal(t, naming.AxisReading{Orientation: naming.Collectivism, Level: 7}, economic.reading(7))
	assert.Equal(t, naming.AxisReading{Orientation: naming.Regulationism}, economic.reading(0))
}

func TestVassalize(t *testing.T) {
	m := NewMatch(smallConfig())
	majors := m.majors()
	for _, p := range majors {
		p.Territories = 4
	}
	majors[2].Territories = 1
	majors[5].Territories = 9

	m.vassalize(10, majors)
	require.NotNil(t, majors[2].Liege)
	assert.Equal(t, majors[5].Index, *majors[2].Liege)

	majors[2].Territories = 12
	m.checkIndependence(11, majors)
	assert.Nil(t, majors[2].Liege)
}

func TestEraName(t *testing.T) {
	assert.Equal(t, "Neolithic", EraName(0))
	assert.Equal(t, "Contemporary", EraName(6))
	assert.Equal(t, "Era 9", EraName(9))
}

func TestMatchWithNamer(t *testing.T) {
	cat, err := locale.LoadEmbedded()
	require.NoError(t, err)

	cfg := smallConfig()
	m := NewMatch(cfg)
	namer := engine.NewNamer(m, locale.NewAdjectives(cat.Localizer(locale.BaseLocale), nil), engine.FixedMode(naming.ModeFullBoth))
	namer.Logger = slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	m.Subscribe(namer)
	m.Names = namer

	m.Start()
	first, _ := m.Polity(1)
	assert.Equal(t, "Nomadic Tribe", first.RoughName)
	assert.Contains(t, []string{"Nomadic Tribe", "Nomadic Chiefdom"}, namer.FullName(1))

	m.Run(cfg.TurnsPerEra * (MaxEra + 1))

	for _, p := range m.majors() {
		snap, _ := m.Polity(p.Index)
		full := namer.FullName(p.Index)
		assert.NotEmpty(t, full)
		assert.NotEqual(t, snap.RoughName, full)
		assert.True(t, strings.HasSuffix(namer.AvatarName(p.Index), snap.Persona()))
		assert.Equal(t, full+" ("+namer.AvatarName(p.Index)+")", namer.LongName(p.Index))
		assert.NotContains(t, full, "FactionAdjective_", "every culture resolves an adjective")
	}

	minor := m.Polities[cfg.Polities]
	assert.Equal(t, minor.Name, namer.FullName(minor.Index))

	var eras int
	for _, e := range m.Events {
		if e.Category == "era" {
			eras++
		}
	}
	assert.Equal(t, cfg.Polities*MaxEra, eras)
}
