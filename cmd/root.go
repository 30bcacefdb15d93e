package cmd

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"cpgislands/internal/app"
	"cpgislands/internal/metadata"
)

// logLevel holds the value of the persistent --log-level flag.
var logLevel string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   metadata.Package,
	Short: metadata.Description,
	Long: metadata.NiceTitle + ` scans a DNA sequence with a fixed-size window
and reports every window whose GC content reaches a minimum ratio.

Run without a subcommand to print the program banner. Use "annotate" for
one-shot results, "tui" for the interactive interface, or "mcp" to expose
the finder as MCP tools on stdio.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. an invalid sequence)
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApplication()
		if err != nil {
			return err
		}
		return a.RunBanner(cmd.OutOrStdout())
	},
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "` + metadata.Package + ` version %s\n" .Version}}`)

	// fang prints the error; we just exit non-zero
	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(rootCmd.Version)); err != nil {
		os.Exit(1)
	}
}

func newApplication() (*app.Application, error) {
	return app.NewApplication(app.NewConfig(logLevel, os.Args))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level: debug, info, warn or error (default from config, else warn)")

	rootCmd.AddCommand(newAnnotateCmd())
	rootCmd.AddCommand(newTUICmd())
	rootCmd.AddCommand(newMCPCmd())
	rootCmd.AddCommand(newVersionCmd())
}
