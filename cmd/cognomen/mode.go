package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talgya/cognomen/internal/naming"
)

func newModeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mode",
		Short: "Show or change the display-mode preference",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Print the display mode in effect",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				db, err := a.openDB()
				if err != nil {
					return err
				}
				defer db.Close()

				mode := a.modes(db).DisplayMode()
				source := "saved"
				if a.cfg.DisplayMode != "" {
					source = "COGNOMEN_DISPLAY_MODE"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", mode, source)
				return nil
			},
		},
		&cobra.Command{
			Use:     "set <mode>",
			Short:   "Save the display-mode preference",
			Args:    cobra.ExactArgs(1),
			Example: `  cognomen mode set FullBoth`,
			RunE: func(cmd *cobra.Command, args []string) error {
				mode, err := naming.ParseDisplayMode(args[0])
				if err != nil {
					return err
				}
				db, err := a.openDB()
				if err != nil {
					return err
				}
				defer db.Close()

				if err := db.SetDisplayMode(mode); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "display mode set to %s\n", mode)
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List the display modes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				out := cmd.OutOrStdout()
				for _, info := range naming.Modes() {
					marker := " "
					if info.Mode == naming.DefaultDisplayMode {
						marker = "*"
					}
					fmt.Fprintf(out, "%s %-17s %s\n", marker, info.Mode, info.Title)
					fmt.Fprintf(out, "  %-17s %s\n", "", info.Description)
				}
				return nil
			},
		},
	)

	return cmd
}
