package naming

// Gender selects between the male and female form of a title. Anything other
// than Male takes the female form.
type Gender uint8

const (
	Male Gender = iota
	Female
)

// String returns "male" or "female".
func (g Gender) String() string {
	if g == Male {
		return "male"
	}
	return "female"
}

// Result holds the names produced for one polity.
type Result struct {
	Form           string // rule that matched, e.g. "monarchy"
	Title          string // ruler title, empty when none applies
	GovernmentName string // e.g. "Celtic Kingdom"
	AvatarName     string // e.g. "Queen Boudicca"
}

// rule is one row of the naming table. Rows are tried in order and the first
// match wins, so a later row never sees a profile an earlier row accepts.
type rule struct {
	form  string
	match func(p Profile) bool
	name  func(p Profile, size SizeTier, adj string, g Gender) (title, government string)
}

var rules = []rule{
	// Early Modern and later
	{
		form:  "parliamentary-republic",
		match: func(p Profile) bool { return p.Has(Aristocracy | DemocraticRepublic) },
		name: func(p Profile, _ SizeTier, adj string, _ Gender) (string, string) {
			return "Prime Minister", adj + " " + democraticSuffix(p)
		},
	},
	{
		form:  "presidential-republic",
		match: func(p Profile) bool { return p.Has(Republic | DemocraticRepublic) },
		name: func(p Profile, _ SizeTier, adj string, _ Gender) (string, string) {
			return "President", adj + " " + democraticSuffix(p)
		},
	},
	{
		form:  "democratic-republic",
		match: func(p Profile) bool { return p.Has(DemocraticRepublic) },
		name: func(p Profile, _ SizeTier, adj string, _ Gender) (string, string) {
			return "President", adj + " " + democraticSuffix(p)
		},
	},
	{
		form:  "one-party-state",
		match: func(p Profile) bool { return p.Has(OnePartyState) },
		name: func(p Profile, _ SizeTier, adj string, _ Gender) (string, string) {
			return "Chairman", adj + " " + ideologySuffix(p, "Socialist Republic", "People's Republic", "State", "Republic")
		},
	},
	{
		form:  "oligarchy",
		match: func(p Profile) bool { return p.Has(Oligarchy) },
		name: func(p Profile, _ SizeTier, adj string, g Gender) (string, string) {
			return gendered(g, "Prince", "Princess"),
				adj + " " + ideologySuffix(p, "Socialist Commonwealth", "People's Commonwealth", "Junta", "Commonwealth")
		},
	},
	{
		form:  "kingdom",
		match: func(p Profile) bool { return p.Has(AbsoluteMonarchy) || p.Has(ConstitutionalMonarchy) },
		name: func(_ Profile, _ SizeTier, adj string, g Gender) (string, string) {
			return gendered(g, "King", "Queen"), adj + " Kingdom"
		},
	},

	// Classical and Medieval
	{
		form:  "republic",
		match: func(p Profile) bool { return p.Has(Republic) },
		name: func(_ Profile, size SizeTier, adj string, g Gender) (string, string) {
			switch size {
			case SizeLarge:
				return gendered(g, "Most Serene Prince", "Most Serene Princess"), "Most Serene " + adj + " Republic"
			case SizeMedium:
				return gendered(g, "Serene Prince", "Serene Princess"), "Serene " + adj + " Republic"
			default:
				return gendered(g, "Prince", "Princess"), adj + " Republic"
			}
		},
	},
	{
		form:  "aristocracy",
		match: func(p Profile) bool { return p.Has(Aristocracy) },
		name: func(_ Profile, size SizeTier, adj string, g Gender) (string, string) {
			switch size {
			case SizeLarge:
				return gendered(g, "King", "Queen"), adj + " Commonwealth"
			case SizeMedium:
				return gendered(g, "Grand Prince", "Grand Princess"), "Grand " + adj + " principality"
			default:
				return gendered(g, "Prince", "Princess"), adj + " Principality"
			}
		},
	},
	{
		form:  "monarchy",
		match: func(p Profile) bool { return p.Has(Monarchy) },
		name: func(_ Profile, size SizeTier, adj string, g Gender) (string, string) {
			switch size {
			case SizeLarge:
				return gendered(g, "King", "Queen"), adj + " Kingdom"
			case SizeMedium:
				return gendered(g, "Duc", "Duchess"), adj + " Duchy"
			default:
				return gendered(g, "Count", "Countess"), adj + " County"
			}
		},
	},

	// Earlier eras
	{
		form:  "dynasty",
		match: func(p Profile) bool { return p.Has(Autarchy | DivineMandate) },
		name: func(_ Profile, _ SizeTier, adj string, g Gender) (string, string) {
			return gendered(g, "God-King", "God-Queen"), adj + " Dynasty"
		},
	},
	{
		form:  "empire",
		match: func(p Profile) bool { return p.Has(Autarchy | NaturalRight) },
		name: func(_ Profile, _ SizeTier, adj string, g Gender) (string, string) {
			return gendered(g, "King", "Queen"), adj + " Empire"
		},
	},
	{
		form:  "kritarchy",
		match: func(p Profile) bool { return p.Has(SmallCouncil | DivineMandate) },
		name: func(_ Profile, _ SizeTier, adj string, _ Gender) (string, string) {
			return "Judge", adj + " Kritarchy"
		},
	},
	{
		form:  "senate",
		match: func(p Profile) bool { return p.Has(SmallCouncil | NaturalRight) },
		name: func(_ Profile, _ SizeTier, adj string, _ Gender) (string, string) {
			return "Senator", adj + " Republic"
		},
	},
	{
		form:  "theocracy",
		match: func(p Profile) bool { return p.Has(DivineMandate) },
		name: func(_ Profile, size SizeTier, adj string, g Gender) (string, string) {
			if size == SizeLarge {
				return gendered(g, "God-Emperor", "God-Empress"), adj + " Empire"
			}
			return gendered(g, "God-King", "God-Queen"), adj + " Theocracy"
		},
	},
	{
		form:  "culture",
		match: func(p Profile) bool { return p.Has(NaturalRight) },
		name: func(_ Profile, size SizeTier, adj string, g Gender) (string, string) {
			if size == SizeLarge {
				return gendered(g, "Patriarch", "Matriarch"), adj + " Civilization"
			}
			return gendered(g, "Elder", "Eldess"), adj + " Culture"
		},
	},
}

// tribe is used when no rule matches.
var tribe = rule{
	form:  "tribe",
	match: func(Profile) bool { return true },
	name: func(_ Profile, size SizeTier, adj string, g Gender) (string, string) {
		if size == SizeLarge {
			return gendered(g, "High Chief", "High Chiefess"), adj + " Chiefdom"
		}
		return gendered(g, "Chief", "Chiefess"), adj + " Tribe"
	},
}

// Generate names a polity from its profile, size tier, culture adjective and
// leader. It is a pure function of its arguments.
func Generate(p Profile, size SizeTier, adjective, leader string, g Gender) Result {
	r := matchRule(p)
	title, government := r.name(p, size, adjective, g)

	avatar := leader
	if title != "" {
		avatar = title + " " + leader
	}
	return Result{
		Form:           r.form,
		Title:          title,
		GovernmentName: government,
		AvatarName:     avatar,
	}
}

// Forms lists the rule names in priority order, fallback last.
func Forms() []string {
	out := make([]string, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, r.form)
	}
	return append(out, tribe.form)
}

func matchRule(p Profile) rule {
	for _, r := range rules {
		if r.match(p) {
			return r
		}
	}
	return tribe
}

// democraticSuffix is shared by the three democratic-republic rows.
func democraticSuffix(p Profile) string {
	return ideologySuffix(p, "Democratic Socialist Republic", "People's Democratic Republic", "Union", "Republic")
}

// ideologySuffix picks a suffix by composite ideology. Socialist takes
// precedence over communist, communist over fascist.
func ideologySuffix(p Profile, socialist, communist, fascist, plain string) string {
	switch {
	case p.IsSocialist():
		return socialist
	case p.IsCommunist():
		return communist
	case p.IsFascist():
		return fascist
	default:
		return plain
	}
}

func gendered(g Gender, male, female string) string {
	if g == Male {
		return male
	}
	return female
}
