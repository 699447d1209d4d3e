// Package sim is a reference host: a small deterministic match that owns
// polity state and raises the events the naming engine listens to.
package sim

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/cognomen/internal/engine"
	"github.com/talgya/cognomen/internal/naming"
)

// Config holds match generation parameters.
type Config struct {
	Seed        int64
	Polities    int // major polities
	Minor       int // minor polities, slotted after the majors
	TurnsPerEra int
	HumanSlot   int // -1 for an all-AI match
	PlayerName  string
	Territories int // unclaimed land at start; 0 means four per major polity
}

// DefaultConfig returns an eight-player match with one human.
func DefaultConfig() Config {
	return Config{
		Seed:        42,
		Polities:    8,
		Minor:       2,
		TurnsPerEra: DefaultTurnsPerEra,
		HumanSlot:   0,
		PlayerName:  "Player",
	}
}

// avatarSlots is how many slots have a leader avatar summary. Later slots
// cannot resolve their leader's gender.
const avatarSlots = 10

// Listener receives match events. *engine.Namer implements it.
type Listener interface {
	LoadMatch()
	PresentationStarted()
	PresentationStopped()
	EndMatch()
	PolityInitialized(index int)
	CivicChoiceChanged(index int)
	IdeologyChanged(index int)
	TerritoryOwnerChanged(oldOwner, newOwner int)
	NameRefreshed(index int)
}

// Names reads display names back for event descriptions.
type Names interface {
	LongName(index int) string
}

// Event is a notable occurrence in the match.
type Event struct {
	Turn        int    `json:"turn"`
	Description string `json:"description"`
	Category    string `json:"category"` // "civics", "ideology", "territory", "era", "vassal"
}

// axis is one ideological spectrum with its two poles and its centre.
type axis struct {
	left, centre, right naming.Orientation
}

var axes = [4]axis{
	{naming.Liberalism, naming.Regulationism, naming.Collectivism},     // economic
	{naming.Internationalism, naming.Sovereignism, naming.Nationalism}, // geopolitical
	{naming.Anarchist, naming.Republican, naming.Authoritarianism},     // order
	{naming.Progressive, naming.Moderate, naming.Conservative},         // social
}

const maxAxisLevel = 10

func (a axis) reading(level int) naming.AxisReading {
	switch {
	case level < 0:
		return naming.AxisReading{Orientation: a.left, Level: level}
	case level > 0:
		return naming.AxisReading{Orientation: a.right, Level: level}
	default:
		return naming.AxisReading{Orientation: a.centre}
	}
}

// Polity is the mutable state of one match slot.
type Polity struct {
	Index       int
	Major       bool
	Name        string // minor polities only
	Culture     Culture
	Persona     Persona
	Human       bool
	Era         int
	Territories int
	Civics      []engine.Civic // one per government civic, in civic order
	Axes        [4]int         // signed level per axis
	Liege       *int
	GenderKnown bool
}

// Match owns every polity and advances them turn by turn.
type Match struct {
	Config   Config
	Polities []*Polity
	Events   []Event
	Clock    *Clock
	Names    Names

	listeners []Listener
	rng       *rand.Rand
	ideology  opensimplex.Noise
	growth    opensimplex.Noise
	unclaimed int
}

// NewMatch generates a match in the Neolithic era.
func NewMatch(cfg Config) *Match {
	if cfg.Polities <= 0 {
		cfg.Polities = DefaultConfig().Polities
	}
	if cfg.Territories <= 0 {
		cfg.Territories = cfg.Polities * 4
	}

	m := &Match{
		Config:    cfg,
		Clock:     NewClock(cfg.TurnsPerEra),
		rng:       rand.New(rand.NewSource(cfg.Seed)),
		ideology:  opensimplex.New(cfg.Seed),
		growth:    opensimplex.New(cfg.Seed + 1),
		unclaimed: cfg.Territories,
	}
	m.Clock.OnTurn = m.playTurn
	m.Clock.OnEra = m.advanceEra

	offset := m.rng.Intn(len(personas))
	for i := 0; i < cfg.Polities; i++ {
		m.Polities = append(m.Polities, &Polity{
			Index:       i,
			Major:       true,
			Culture:     culturesByEra[0][0],
			Persona:     personas[(i+offset)%len(personas)],
			Human:       i == cfg.HumanSlot,
			Territories: 1,
			Civics:      make([]engine.Civic, len(civicUnlockEra)),
			GenderKnown: i < avatarSlots,
		})
	}
	for i := 0; i < cfg.Minor; i++ {
		m.Polities = append(m.Polities, &Polity{
			Index:       cfg.Polities + i,
			Name:        minorNames[i%len(minorNames)],
			Territories: 1,
		})
	}

	slog.Info("match generated",
		"seed", cfg.Seed,
		"polities", cfg.Polities,
		"minor", cfg.Minor,
		"territories", cfg.Territories,
	)
	return m
}

// Subscribe registers a listener for match events.
func (m *Match) Subscribe(l Listener) {
	m.listeners = append(m.listeners, l)
}

// Start loads the match into listeners, initializes every polity, then
// brings the presentation up and refreshes every name.
func (m *Match) Start() {
	m.notify(func(l Listener) { l.LoadMatch() })
	for _, p := range m.Polities {
		m.notify(func(l Listener) { l.PolityInitialized(p.Index) })
	}
	m.notify(func(l Listener) { l.PresentationStarted() })
	for _, p := range m.Polities {
		m.notify(func(l Listener) { l.NameRefreshed(p.Index) })
	}
}

// Stop tears the presentation down and ends the match.
func (m *Match) Stop() {
	m.notify(func(l Listener) {
		l.PresentationStopped()
		l.EndMatch()
	})
}

// Run plays n turns.
func (m *Match) Run(turns int) {
	m.Clock.Advance(turns)
}

// PolityCount implements engine.Host.
func (m *Match) PolityCount() int {
	return len(m.Polities)
}

// Polity implements engine.Host.
func (m *Match) Polity(index int) (engine.Polity, bool) {
	if index < 0 || index >= len(m.Polities) {
		return engine.Polity{}, false
	}
	p := m.Polities[index]
	if !p.Major {
		return engine.Polity{Index: p.Index, RoughName: p.Name}, true
	}

	snap := engine.Polity{
		Index:        p.Index,
		Major:        true,
		RoughName:    p.Culture.Name,
		Culture:      p.Culture.ID,
		AdjectiveKey: p.Culture.AdjectiveKey,
		Civics:       append([]engine.Civic(nil), p.Civics...),
		Era:          p.Era,
		Territories:  p.Territories,
		Human:        p.Human,
		PersonaName:  p.Persona.Name,
		Gender:       p.Persona.Gender,
		GenderKnown:  p.GenderKnown,
	}
	if p.Human {
		snap.UserName = m.Config.PlayerName
	}
	for k, level := range p.Axes {
		snap.Axes = append(snap.Axes, axes[k].reading(level))
	}
	if p.Liege != nil {
		liege := *p.Liege
		snap.Liege = &liege
	}
	return snap, true
}

func (m *Match) majors() []*Polity {
	var out []*Polity
	for _, p := range m.Polities {
		if p.Major {
			out = append(out, p)
		}
	}
	return out
}

func (m *Match) notify(fn func(l Listener)) {
	for _, l := range m.listeners {
		fn(l)
	}
}

func (m *Match) emit(turn int, category, format string, args ...any) {
	m.Events = append(m.Events, Event{
		Turn:        turn,
		Description: fmt.Sprintf(format, args...),
		Category:    category,
	})
}

// Record appends an event at the current turn.
func (m *Match) Record(category, description string) {
	m.emit(m.Clock.Turn, category, "%s", description)
}

func (m *Match) longName(p *Polity) string {
	if m.Names != nil {
		return m.Names.LongName(p.Index)
	}
	if p.Major {
		return p.Culture.Name
	}
	return p.Name
}

// playTurn drifts ideologies, enacts pending civics and moves borders.
func (m *Match) playTurn(turn int) {
	majors := m.majors()

	for _, p := range majors {
		m.driftIdeology(turn, p)
		for ci, c := range p.Civics {
			if c.Status == engine.CivicAvailable && m.rng.Float64() < 0.25 {
				m.enact(turn, p, ci)
			}
		}
	}

	m.moveBorders(turn, majors)
	m.checkIndependence(turn, majors)
}

func (m *Match) driftIdeology(turn int, p *Polity) {
	if p.Era == 0 {
		return
	}
	changed := false
	for k := range p.Axes {
		v := m.ideology.Eval2(float64(turn)*0.08, float64(p.Index*len(axes)+k)*1.7)
		level := int(math.Round(v * maxAxisLevel))
		level = max(-maxAxisLevel, min(maxAxisLevel, level))
		if level != p.Axes[k] {
			p.Axes[k] = level
			changed = true
		}
	}
	if changed {
		m.notify(func(l Listener) { l.IdeologyChanged(p.Index) })
	}
}

func (m *Match) enact(turn int, p *Polity, ci int) {
	choice := 1 + m.rng.Intn(2)
	p.Civics[ci] = engine.Civic{
		Choice: naming.ChoiceID(fmt.Sprintf("Civics_Government%02d_Choice%02d", ci+1, choice)),
		Status: engine.CivicEnacted,
	}
	m.notify(func(l Listener) { l.CivicChoiceChanged(p.Index) })
	m.emit(turn, "civics", "%s enacts %s", m.longName(p), p.Civics[ci].Choice)
}

// moveBorders lets growing polities claim free land and shrinking ones lose
// a territory to the fastest grower.
func (m *Match) moveBorders(turn int, majors []*Polity) {
	if len(majors) == 0 {
		return
	}
	growth := make([]float64, len(majors))
	fastest := 0
	for i, p := range majors {
		growth[i] = m.growth.Eval2(float64(turn)*0.15, float64(p.Index)*2.3)
		if growth[i] > growth[fastest] {
			fastest = i
		}
	}

	for i, p := range majors {
		switch {
		case growth[i] > 0.3 && m.unclaimed > 0:
			m.unclaimed--
			p.Territories++
			m.notify(func(l Listener) { l.TerritoryOwnerChanged(-1, p.Index) })
		case growth[i] < -0.4 && p.Territories > 1 && i != fastest:
			winner := majors[fastest]
			p.Territories--
			winner.Territories++
			m.notify(func(l Listener) { l.TerritoryOwnerChanged(p.Index, winner.Index) })
			m.emit(turn, "territory", "%s loses a territory to %s", m.longName(p), m.longName(winner))
		}
	}
}

// checkIndependence frees vassals that outgrow their liege.
func (m *Match) checkIndependence(turn int, majors []*Polity) {
	for _, p := range majors {
		if p.Liege == nil {
			continue
		}
		liege := m.Polities[*p.Liege]
		if p.Territories > liege.Territories {
			p.Liege = nil
			m.notify(func(l Listener) { l.NameRefreshed(p.Index) })
			m.emit(turn, "vassal", "%s breaks free of %s", m.longName(p), m.longName(liege))
		}
	}
}

// advanceEra moves every major polity to the next era with a new culture,
// then lets the strongest polity vassalize the weakest.
func (m *Match) advanceEra(turn int) {
	majors := m.majors()
	if len(majors) == 0 || majors[0].Era >= MaxEra {
		return
	}

	era := majors[0].Era + 1
	cultures := culturesByEra[era]
	perm := m.rng.Perm(len(cultures))

	for j, p := range majors {
		for ci, c := range p.Civics {
			if c.Status == engine.CivicAvailable {
				m.enact(turn, p, ci)
			}
		}

		before := m.longName(p)
		p.Era = era
		p.Culture = cultures[perm[j%len(perm)]]
		for ci := range p.Civics {
			if civicUnlockEra[ci+1] == era {
				p.Civics[ci].Status = engine.CivicAvailable
			}
		}
		m.notify(func(l Listener) { l.NameRefreshed(p.Index) })
		m.emit(turn, "era", "%s enter the %s era as %s", before, EraName(era), m.longName(p))
	}

	if era >= 2 {
		m.vassalize(turn, majors)
	}
	slog.Info("era advanced", "turn", turn, "era", EraName(era))
}

func (m *Match) vassalize(turn int, majors []*Polity) {
	var weakest, strongest *Polity
	for _, p := range majors {
		if p.Liege != nil {
			continue
		}
		if strongest == nil || p.Territories > strongest.Territories {
			strongest = p
		}
		if m.isLiege(p) {
			continue
		}
		if weakest == nil || p.Territories < weakest.Territories {
			weakest = p
		}
	}
	if weakest == nil || strongest == nil || weakest == strongest {
		return
	}
	if weakest.Territories*3 > strongest.Territories {
		return
	}

	idx := strongest.Index
	weakest.Liege = &idx
	m.notify(func(l Listener) { l.NameRefreshed(weakest.Index) })
	m.emit(turn, "vassal", "%s submits to %s", m.longName(weakest), m.longName(strongest))
}

func (m *Match) isLiege(p *Polity) bool {
	for _, o := range m.Polities {
		if o.Liege != nil && *o.Liege == p.Index {
			return true
		}
	}
	return false
}
