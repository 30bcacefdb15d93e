package cmd

import (
	"github.com/spf13/cobra"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive terminal interface",
		Long: `Starts a full-screen interface with a sequence editor, the island
definition fields and a results table.

Keys: tab moves between fields, ctrl+s finds islands, ctrl+o loads a
file, enter on the table shows an island, ctrl+g highlights all islands,
ctrl+y copies the locations, ctrl+l shows the activity log, esc quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApplication()
			if err != nil {
				return err
			}
			return a.RunTUI(cmd.Context())
		},
	}
}
