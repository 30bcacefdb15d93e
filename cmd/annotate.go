package cmd

import (
	"github.com/spf13/cobra"

	"cpgislands/internal/cli"
)

func newAnnotateCmd() *cobra.Command {
	var (
		opts   cli.Options
		output string
	)

	cmd := &cobra.Command{
		Use:   "annotate",
		Short: "Find CpG islands in a sequence and print their locations",
		Long: `Finds every window of --island-size bases whose GC ratio is at least
--gc-ratio and prints one "start end" line per island (0-based, end
exclusive).

The sequence comes from --sequence or from a FASTA or GenBank file given
with --file. Island size and ratio default to the configured island
definition. Any error reported for the input ends the command with exit
status 1.`,
		Example: `  cpgislands annotate --sequence ATATGCGCATAT --island-size 4 --gc-ratio 0.5
  cpgislands annotate --file chr1.fasta --output table
  cpgislands annotate --file seq.gb --feature 0 --highlight`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cli.ParseOutputFormat(output)
			if err != nil {
				return err
			}
			opts.Format = format

			a, err := newApplication()
			if err != nil {
				return err
			}
			return a.RunAnnotate(cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.Sequence, "sequence", "s", "", "DNA sequence to scan")
	flags.StringVarP(&opts.File, "file", "f", "", "FASTA or GenBank file holding a single record")
	flags.StringVar(&opts.IslandSize, "island-size", "", "Window size in bases (default from config)")
	flags.StringVar(&opts.GCRatio, "gc-ratio", "", "Minimum GC ratio between 0 and 1 (default from config)")
	flags.IntVar(&opts.Feature, "feature", -1, "Show the bases of the island with this index")
	flags.BoolVar(&opts.Highlight, "highlight", false, "Print the sequence with island bases in upper case")
	flags.StringVarP(&output, "output", "o", string(cli.OutputFormatText), "Output format: text, table, json or yaml")
	cmd.MarkFlagsMutuallyExclusive("sequence", "file")
	cmd.MarkFlagsOneRequired("sequence", "file")

	return cmd
}
