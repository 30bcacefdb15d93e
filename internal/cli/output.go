package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"cpgislands/internal/cpg"
)

// OutputFormat represents the output format of the annotate command
type OutputFormat string

const (
	OutputFormatText  OutputFormat = "text"
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates a --output value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case OutputFormatText, OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	case "":
		return OutputFormatText, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want text, table, json or yaml)", s)
	}
}

// Location is one island in the command's structured output.
type Location struct {
	Start int     `json:"start" yaml:"start"`
	End   int     `json:"end" yaml:"end"`
	GC    float64 `json:"gc_percent" yaml:"gcPercent"`
}

// Feature is the island picked with --feature.
type Feature struct {
	Index int    `json:"index" yaml:"index"`
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
	Bases string `json:"bases" yaml:"bases"`
}

// Result is everything the views were told during one annotate run.
type Result struct {
	Sequence    string     `json:"sequence" yaml:"sequence"`
	Locations   []Location `json:"locations" yaml:"locations"`
	Feature     *Feature   `json:"feature,omitempty" yaml:"feature,omitempty"`
	Highlighted string     `json:"highlighted,omitempty" yaml:"highlighted,omitempty"`
}

func newLocations(seq string, pairs [][2]int) []Location {
	locs := make([]Location, 0, len(pairs))
	for _, p := range pairs {
		loc := Location{Start: p[0], End: p[1]}
		if p[0] >= 0 && p[1] <= len(seq) && p[0] < p[1] {
			loc.GC = cpg.GCContent(seq[p[0]:p[1]])
		}
		locs = append(locs, loc)
	}
	return locs
}

// highlight upper-cases the bases inside any island and lower-cases the rest.
func highlight(seq string, pairs [][2]int) string {
	mask := cpg.CoverageMask(len(seq), pairs)
	var b strings.Builder
	b.Grow(len(seq))
	for i := 0; i < len(seq); i++ {
		c := seq[i]
		if mask[i] {
			b.WriteString(strings.ToUpper(string(c)))
		} else {
			b.WriteString(strings.ToLower(string(c)))
		}
	}
	return b.String()
}

// Render writes r to w in the given format.
func Render(w io.Writer, format OutputFormat, r Result) error {
	switch format {
	case OutputFormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case OutputFormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to convert to YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	case OutputFormatTable:
		return renderTable(w, r)
	default:
		return renderText(w, r)
	}
}

// renderText prints one "start end" line per island.
func renderText(w io.Writer, r Result) error {
	for _, l := range r.Locations {
		if _, err := fmt.Fprintf(w, "%d %d\n", l.Start, l.End); err != nil {
			return err
		}
	}
	if r.Feature != nil {
		fmt.Fprintf(w, "\nFeature %d: [%d:%d] %s\n", r.Feature.Index, r.Feature.Start, r.Feature.End, r.Feature.Bases)
	}
	if r.Highlighted != "" {
		fmt.Fprintf(w, "\n%s\n", r.Highlighted)
	}
	return nil
}

// renderTable formats the islands as a table
func renderTable(w io.Writer, r Result) error {
	if len(r.Locations) == 0 {
		_, err := fmt.Fprintln(w, text.FgYellow.Sprint("No islands found"))
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("#"),
		text.FgHiCyan.Sprint("START"),
		text.FgHiCyan.Sprint("END"),
		text.FgHiCyan.Sprint("GC %"),
	})
	for i, l := range r.Locations {
		t.AppendRow(table.Row{i, l.Start, l.End, fmt.Sprintf("%.1f", l.GC)})
	}
	t.AppendFooter(table.Row{"", "", text.FgHiBlue.Sprint("Total:"), len(r.Locations)})
	t.Render()

	if r.Feature != nil {
		fmt.Fprintf(w, "\n%s %d [%d:%d] %s\n", text.FgHiBlue.Sprint("Feature:"),
			r.Feature.Index, r.Feature.Start, r.Feature.End, r.Feature.Bases)
	}
	if r.Highlighted != "" {
		fmt.Fprintf(w, "\n%s\n", r.Highlighted)
	}
	return nil
}
