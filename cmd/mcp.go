package cmd

import (
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the island finder as MCP tools over stdio",
		Long: `Runs a Model Context Protocol server on stdin/stdout. It offers the
tools annotate_cpg_islands, load_sequence_file, get_feature and
highlight_islands. Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApplication()
			if err != nil {
				return err
			}
			return a.RunMCP(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
