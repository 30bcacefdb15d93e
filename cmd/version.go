package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cpgislands/internal/metadata"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of " + metadata.Package,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", metadata.Package, rootCmd.Version)
		},
	}
}
