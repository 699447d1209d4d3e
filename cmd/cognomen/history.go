package main

import (
	"database/sql"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/talgya/cognomen/internal/persistence"
)

type historyOptions struct {
	matchID string
	slot    int
	events  int
}

func newHistoryCommand(a *app) *cobra.Command {
	var opts historyOptions

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print the names recorded for a simulated match",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			var m persistence.Match
			if opts.matchID == "" {
				m, err = db.LatestMatch()
			} else {
				m, err = db.GetMatch(opts.matchID)
			}
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("no match recorded; run simulate first")
			}
			if err != nil {
				return err
			}

			var records []persistence.NameRecord
			if opts.slot >= 0 {
				records, err = db.Names(m.ID, opts.slot)
			} else {
				records, err = db.FinalNames(m.ID)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "match %s  seed %d  polities %d  mode %s  %s\n\n", m.ID, m.Seed, m.Polities, m.DisplayMode, m.CreatedAt)

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TURN\tSLOT\tFORM\tFULL NAME\tLONG NAME")
			for _, r := range records {
				fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\n", r.Turn, r.Slot, r.Form, r.FullName, r.LongName)
			}
			w.Flush()

			if opts.events <= 0 {
				return nil
			}
			events, err := db.RecentEvents(m.ID, opts.events)
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			for _, e := range events {
				fmt.Fprintf(out, "[%d] %-9s %s\n", e.Turn, e.Category, e.Description)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.matchID, "match", "", "match id (default: latest)")
	cmd.Flags().IntVar(&opts.slot, "slot", -1, "show every rename of one slot instead of final names")
	cmd.Flags().IntVar(&opts.events, "events", 10, "recent events to print")

	return cmd
}
