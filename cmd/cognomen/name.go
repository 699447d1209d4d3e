package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/talgya/cognomen/internal/naming"
)

type nameOptions struct {
	civics         []string
	axes           []string
	era            int
	territories    int
	leader         string
	gender         string
	adjective      string
	liegeEra       int
	liegeAdjective string
	mode           string
	rough          string
}

func newNameCommand(a *app) *cobra.Command {
	var opts nameOptions

	cmd := &cobra.Command{
		Use:   "name",
		Short: "Generate the names of one polity",
		Long: `Generate the names of one polity from its civics, ideology and size.

Adjectives given as a culture identifier (Civilization_...) are resolved
through the configured locale, other values are used as they are.`,
		Example: `  cognomen name --civic Monarchy --era 2 --territories 10 --adjective Celtic --leader Boudicca --gender female
  cognomen name --civic DemocraticRepublic --axis Authoritarianism=7 --axis Collectivism=-8 --adjective Civilization_Era5_France`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runName(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringSliceVar(&opts.civics, "civic", nil, "enacted civic trait or choice id (repeatable)")
	f.StringArrayVar(&opts.axes, "axis", nil, "ideology reading as Orientation=Level (repeatable)")
	f.IntVar(&opts.era, "era", 0, "era index")
	f.IntVar(&opts.territories, "territories", 1, "territory count")
	f.StringVar(&opts.leader, "leader", "Boudicca", "leader or player name")
	f.StringVar(&opts.gender, "gender", "male", "leader gender: male or female")
	f.StringVar(&opts.adjective, "adjective", "Celtic", "culture adjective or culture id")
	f.IntVar(&opts.liegeEra, "liege-era", -1, "liege era index; negative means independent")
	f.StringVar(&opts.liegeAdjective, "liege-adjective", "", "liege adjective or culture id (default: the polity's own adjective)")
	f.StringVar(&opts.mode, "mode", "", "display mode (default: COGNOMEN_DISPLAY_MODE or "+string(naming.DefaultDisplayMode)+")")
	f.StringVar(&opts.rough, "rough", "", "the host's rough name (default: the adjective)")

	return cmd
}

func (a *app) runName(cmd *cobra.Command, opts nameOptions) error {
	var profile naming.Profile
	for _, raw := range opts.civics {
		c, err := parseCivicFlag(raw)
		if err != nil {
			return err
		}
		profile.Set(c)
	}
	for _, raw := range opts.axes {
		reading, err := parseAxisFlag(raw)
		if err != nil {
			return err
		}
		profile.Read(reading)
	}

	gender, err := parseGender(opts.gender)
	if err != nil {
		return err
	}

	mode := naming.DefaultDisplayMode
	switch {
	case opts.mode != "":
		if mode, err = naming.ParseDisplayMode(opts.mode); err != nil {
			return err
		}
	case a.cfg.DisplayMode != "":
		mode = naming.DisplayMode(a.cfg.DisplayMode)
	}

	adjectives, err := a.adjectives()
	if err != nil {
		return err
	}
	resolve := func(s string) string {
		if strings.HasPrefix(s, "Civilization_") {
			return adjectives.Adjective(s, "FactionAdjective_"+s)
		}
		return s
	}
	adjective := resolve(opts.adjective)

	size := a.tables.Thresholds.Classify(opts.era, opts.territories)
	result := naming.Generate(profile, size, adjective, opts.leader, gender)

	government := result.GovernmentName
	if opts.liegeEra >= 0 {
		liegeAdjective := adjective
		if opts.liegeAdjective != "" {
			liegeAdjective = resolve(opts.liegeAdjective)
		}
		government = naming.VassalName(adjective, opts.liegeEra, liegeAdjective)
	}

	rough := opts.rough
	if rough == "" {
		rough = adjective
	}
	long := naming.ResolveLongName(mode, naming.LongNameInput{
		GovernmentName: government,
		AvatarName:     result.AvatarName,
		PersonaName:    opts.leader,
		Adjective:      adjective,
		RoughName:      rough,
	})

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "form:        %s\n", result.Form)
	fmt.Fprintf(out, "size:        %s\n", size)
	fmt.Fprintf(out, "title:       %s\n", result.Title)
	fmt.Fprintf(out, "government:  %s\n", government)
	fmt.Fprintf(out, "avatar:      %s\n", result.AvatarName)
	fmt.Fprintf(out, "long name:   %s (%s)\n", long, mode)
	return nil
}

// parseCivicFlag accepts a trait name (Monarchy) or a host choice id
// (Civics_Government04_Choice01).
func parseCivicFlag(s string) (naming.Civic, error) {
	if c, ok := naming.ParseCivic(s); ok {
		return c, nil
	}
	if c, ok := naming.CivicForChoice(naming.ChoiceID(s)); ok {
		return c, nil
	}
	return 0, fmt.Errorf("unknown civic %q", s)
}

func parseAxisFlag(s string) (naming.AxisReading, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return naming.AxisReading{}, fmt.Errorf("axis %q: want Orientation=Level", s)
	}
	level, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return naming.AxisReading{}, fmt.Errorf("axis %q: %w", s, err)
	}
	return naming.AxisReading{Orientation: naming.Orientation(strings.TrimSpace(name)), Level: level}, nil
}

func parseGender(s string) (naming.Gender, error) {
	switch strings.ToLower(s) {
	case "male", "m":
		return naming.Male, nil
	case "female", "f":
		return naming.Female, nil
	}
	return naming.Male, fmt.Errorf("unknown gender %q", s)
}
