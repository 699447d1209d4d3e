// Package engine keeps a match's polity names current. The host raises
// events; the engine pulls a polity snapshot, regenerates its names and
// caches them for display calls.
package engine

import "github.com/talgya/cognomen/internal/naming"

// CivicStatus is the host-side state of a civic.
type CivicStatus uint8

const (
	CivicLocked CivicStatus = iota
	CivicAvailable
	CivicEnacted
)

// Civic is one civic of a polity with its active choice.
type Civic struct {
	Choice naming.ChoiceID
	Status CivicStatus
}

// Polity is a read-only snapshot of the host's state for one polity.
type Polity struct {
	Index     int
	Major     bool   // minor polities keep their rough name
	RoughName string // the host's own name, e.g. "Celts"

	Culture      string // culture identifier, e.g. "Civilization_Era2_Celts"
	AdjectiveKey string // string-table key of the culture adjective

	Civics      []Civic
	Axes        []naming.AxisReading
	Era         int
	Territories int
	Liege       *int // index of the liege polity, nil when independent

	Human       bool
	UserName    string // player name, used when Human
	PersonaName string // AI persona name
	Gender      naming.Gender
	GenderKnown bool // false when the host could not resolve the avatar
}

// Persona returns the untitled leader name.
func (p Polity) Persona() string {
	if p.Human {
		return p.UserName
	}
	return p.PersonaName
}

// EnactedChoices lists the choices of enacted civics.
func (p Polity) EnactedChoices() []naming.ChoiceID {
	var out []naming.ChoiceID
	for _, c := range p.Civics {
		if c.Status == CivicEnacted {
			out = append(out, c.Choice)
		}
	}
	return out
}

// Host owns polity state.
type Host interface {
	// PolityCount is the number of polity slots in the match, minor ones included.
	PolityCount() int
	// Polity returns a snapshot, or false for an unknown index.
	Polity(index int) (Polity, bool)
}

// AdjectiveResolver resolves a culture's adjective from its identifier and
// string-table key.
type AdjectiveResolver interface {
	Adjective(culture, key string) string
}

// ModeSource supplies the configured display mode.
type ModeSource interface {
	DisplayMode() naming.DisplayMode
}

// ModeFunc adapts a function to ModeSource.
type ModeFunc func() naming.DisplayMode

// DisplayMode calls f.
func (f ModeFunc) DisplayMode() naming.DisplayMode { return f() }

// FixedMode always returns the same mode.
func FixedMode(m naming.DisplayMode) ModeSource {
	return ModeFunc(func() naming.DisplayMode { return m })
}
