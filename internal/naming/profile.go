package naming

// Civic is one enacted governance trait. Several may hold at once.
type Civic uint16

const (
	NaturalRight Civic = 1 << iota
	DivineMandate
	SmallCouncil
	Autarchy
	Republic
	Aristocracy
	Monarchy
	AbsoluteMonarchy
	ConstitutionalMonarchy
	OnePartyState
	Oligarchy
	DemocraticRepublic
)

var civicNames = map[Civic]string{
	NaturalRight:           "NaturalRight",
	DivineMandate:          "DivineMandate",
	SmallCouncil:           "SmallCouncil",
	Autarchy:               "Autarchy",
	Republic:               "Republic",
	Aristocracy:            "Aristocracy",
	Monarchy:               "Monarchy",
	AbsoluteMonarchy:       "AbsoluteMonarchy",
	ConstitutionalMonarchy: "ConstitutionalMonarchy",
	OnePartyState:          "OnePartyState",
	Oligarchy:              "Oligarchy",
	DemocraticRepublic:     "DemocraticRepublic",
}

// String returns the trait name of a single civic flag.
func (c Civic) String() string {
	if name, ok := civicNames[c]; ok {
		return name
	}
	return "Civic(?)"
}

// ParseCivic looks up a civic by its trait name.
func ParseCivic(name string) (Civic, bool) {
	for c, n := range civicNames {
		if n == name {
			return c, true
		}
	}
	return 0, false
}

// ChoiceID identifies an enactable civic choice in the host's data.
type ChoiceID string

// choiceCivics maps host choice names to the trait they grant.
// Choices absent from the table contribute nothing.
var choiceCivics = map[ChoiceID]Civic{
	// Founding Myths
	"Civics_Government01_Choice01": NaturalRight,
	"Civics_Government01_Choice02": DivineMandate,
	// Leadership
	"Civics_Government02_Choice01": SmallCouncil,
	"Civics_Government02_Choice02": Autarchy,
	// Political Entitlement
	"Civics_Government03_Choice01": Aristocracy,
	"Civics_Government03_Choice02": Republic,
	// Political Influence
	"Civics_Government04_Choice01": Monarchy,
	"Civics_Government04_Choice02": Aristocracy,
	// Monarchy Power
	"Civics_Government05_Choice01": AbsoluteMonarchy,
	"Civics_Government05_Choice02": ConstitutionalMonarchy,
	// Republic Evolution
	"Civics_Government06_Choice01": OnePartyState,
	"Civics_Government06_Choice02": DemocraticRepublic,
	// Aristocracy Evolution
	"Civics_Government07_Choice01": Oligarchy,
	"Civics_Government07_Choice02": DemocraticRepublic,
}

// CivicForChoice returns the trait granted by a choice, if any.
func CivicForChoice(id ChoiceID) (Civic, bool) {
	c, ok := choiceCivics[id]
	return c, ok
}

// Orientation names one pole of an ideological axis.
type Orientation string

const (
	// Economic
	Liberalism    Orientation = "Liberalism"
	Regulationism Orientation = "Regulationism"
	Collectivism  Orientation = "Collectivism"
	// Geopolitical
	Internationalism Orientation = "Internationalism"
	Sovereignism     Orientation = "Sovereignism"
	Nationalism      Orientation = "Nationalism"
	// Order
	Authoritarianism Orientation = "Authoritarianism"
	Republican       Orientation = "Republican"
	Anarchist        Orientation = "Anarchist"
	// Social
	Progressive  Orientation = "Progressive"
	Moderate     Orientation = "Moderate"
	Conservative Orientation = "Conservative"
)

// AxisReading is the signed level of an axis, tagged with its current orientation.
type AxisReading struct {
	Orientation Orientation
	Level       int
}

// AxisThreshold is the minimum magnitude for an axis to count toward a
// composite ideology.
const AxisThreshold = 6

// Profile accumulates the traits and axis magnitudes that drive naming.
type Profile struct {
	Civics Civic

	Individualism int
	Collectivism  int
	Authority     int
	Liberty       int
}

// BuildProfile folds enacted choices and axis readings into a profile.
// Axis readings are applied in order; when an orientation appears twice the
// last reading wins.
func BuildProfile(enacted []ChoiceID, axes []AxisReading) Profile {
	var p Profile
	for _, id := range enacted {
		p.Enact(id)
	}
	for _, a := range axes {
		p.Read(a)
	}
	return p
}

// Has reports whether every flag in c is set.
func (p Profile) Has(c Civic) bool {
	return p.Civics&c == c
}

// Set adds traits. Traits are never removed.
func (p *Profile) Set(c Civic) {
	p.Civics |= c
}

// Enact sets the trait granted by a choice. Unknown choices are ignored.
func (p *Profile) Enact(id ChoiceID) {
	if c, ok := choiceCivics[id]; ok {
		p.Set(c)
	}
}

// Read stores the magnitude of an axis reading in the slot for its
// orientation, replacing any earlier value. Orientations without a slot
// are ignored.
func (p *Profile) Read(a AxisReading) {
	level := a.Level
	if level < 0 {
		level = -level
	}
	switch a.Orientation {
	case Liberalism:
		p.Individualism = level
	case Collectivism:
		p.Collectivism = level
	case Authoritarianism:
		p.Authority = level
	case Anarchist:
		p.Liberty = level
	}
}

// IsSocialist: liberty and collectivism both at threshold.
func (p Profile) IsSocialist() bool {
	return p.Liberty >= AxisThreshold && p.Collectivism >= AxisThreshold
}

// IsCommunist: authority and collectivism both at threshold.
func (p Profile) IsCommunist() bool {
	return p.Authority >= AxisThreshold && p.Collectivism >= AxisThreshold
}

// IsRepublican: liberty and individualism both at threshold. Not used by the
// generator.
func (p Profile) IsRepublican() bool {
	return p.Liberty >= AxisThreshold && p.Individualism >= AxisThreshold
}

// IsFascist: authority and individualism both at threshold.
func (p Profile) IsFascist() bool {
	return p.Authority >= AxisThreshold && p.Individualism >= AxisThreshold
}
