package main

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/talgya/cognomen/internal/engine"
	"github.com/talgya/cognomen/internal/persistence"
	"github.com/talgya/cognomen/internal/sim"
)

type simulateOptions struct {
	turns  int
	seed   int64
	dryRun bool
}

func newSimulateCommand(a *app) *cobra.Command {
	var opts simulateOptions

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play a demo match through the eras and print the final names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("seed") {
				opts.seed = a.cfg.Seed
			}
			return a.runSimulate(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVar(&opts.turns, "turns", 0, "turns to play (default: every era)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "match seed (default: COGNOMEN_SEED)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "do not write the match journal")

	return cmd
}

func (a *app) runSimulate(out io.Writer, opts simulateOptions) error {
	var db *persistence.DB
	if !opts.dryRun {
		var err error
		if db, err = a.openDB(); err != nil {
			return err
		}
		defer db.Close()
	}

	adjectives, err := a.adjectives()
	if err != nil {
		return err
	}

	match := sim.NewMatch(sim.Config{
		Seed:        opts.seed,
		Polities:    a.cfg.Polities,
		Minor:       a.cfg.Minor,
		TurnsPerEra: a.cfg.TurnsPerEra,
		HumanSlot:   0,
		PlayerName:  a.cfg.PlayerName,
	})
	modes := a.modes(db)

	namer := engine.NewNamer(match, adjectives, modes)
	namer.Thresholds = a.tables.Thresholds

	matchID := ""
	if db != nil {
		if matchID, err = db.CreateMatch(opts.seed, a.cfg.Polities, modes.DisplayMode()); err != nil {
			return err
		}
	}

	var records []persistence.NameRecord
	forms := make(map[int]string)
	namer.OnRenamed = func(p engine.Polity, n engine.Naming) {
		records = append(records, persistence.NameRecord{
			MatchID:    matchID,
			Turn:       match.Clock.Turn,
			Slot:       p.Index,
			Form:       n.Result.Form,
			FullName:   n.Entry.FullName,
			LongName:   n.Entry.LongName,
			AvatarName: n.Entry.AvatarName,
		})
		if !p.Major {
			return
		}
		if prev, ok := forms[p.Index]; ok && prev != n.Result.Form {
			match.Record("names", fmt.Sprintf("the %s rises", n.Entry.LongName))
		}
		forms[p.Index] = n.Result.Form
	}

	match.Subscribe(namer)
	match.Names = namer

	turns := opts.turns
	if turns <= 0 {
		turns = match.Clock.TurnsPerEra * (sim.MaxEra + 1)
	}

	match.Start()
	match.Run(turns)
	printNames(out, match, namer)
	match.Stop()

	slog.Info("match finished",
		"turns", turns,
		"events", len(match.Events),
		"renames", len(records),
	)

	if db == nil {
		return nil
	}
	if err := db.SaveNames(records); err != nil {
		return fmt.Errorf("save names: %w", err)
	}
	if err := db.SaveEvents(matchID, match.Events); err != nil {
		return fmt.Errorf("save events: %w", err)
	}
	fmt.Fprintf(out, "\nmatch %s saved (%d names, %d events)\n", matchID, len(records), len(match.Events))
	return nil
}

func printNames(out io.Writer, match *sim.Match, namer *engine.Namer) {
	era := 0
	if len(match.Polities) > 0 {
		era = match.Polities[0].Era
	}
	fmt.Fprintf(out, "turn %d, %s era\n\n", match.Clock.Turn, sim.EraName(era))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SLOT\tROUGH\tFULL NAME\tLONG NAME")
	for i := range match.Polities {
		p, _ := match.Polity(i)
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i, p.RoughName, namer.FullName(i), namer.LongName(i))
	}
	w.Flush()
}
