// Package cli implements the command-line view set. A View satisfies the
// application, sequence input and results view interfaces at once and
// turns command flags into the view events a user would trigger by hand.
package cli

import (
	"fmt"
	"io"

	"cpgislands/internal/event"
	"cpgislands/internal/metadata"
	"cpgislands/internal/presenters"
	"cpgislands/pkg/logging"
)

// ShownError carries a message the presenters reported to the view.
type ShownError struct {
	Message string
}

func (e *ShownError) Error() string {
	return e.Message
}

// Options are the inputs of one annotate run.
type Options struct {
	Sequence string
	File     string
	// IslandSize and GCRatio are passed through as typed; empty means the
	// configured default.
	IslandSize string
	GCRatio    string
	// Feature selects an island to show in detail; negative means none.
	Feature   int
	Highlight bool
	Format    OutputFormat
}

// View is the command-line view.
type View struct {
	out    io.Writer
	banner bool

	fileLoadRequested *event.Event[string]
	submitted         *event.Event[presenters.Submission]
	featureSelected   *event.Event[int]
	globalHighlight   *event.Signal

	seq          string
	defaultSize  string
	defaultRatio string
	computed     bool
	result       Result
	shown        *ShownError
}

// NewView creates a view writing to out. With banner set, Start prints the
// program banner.
func NewView(out io.Writer, banner bool) *View {
	return &View{
		out:               out,
		banner:            banner,
		fileLoadRequested: event.New[string]("file_load_requested"),
		submitted:         event.New[presenters.Submission]("submitted"),
		featureSelected:   event.New[int]("feature_selected"),
		globalHighlight:   event.NewSignal("global_highlight"),
	}
}

func (v *View) FileLoadRequested() *event.Event[string]        { return v.fileLoadRequested }
func (v *View) Submitted() *event.Event[presenters.Submission] { return v.submitted }
func (v *View) FeatureSelected() *event.Event[int]             { return v.featureSelected }
func (v *View) GlobalHighlight() *event.Signal                 { return v.globalHighlight }

// Start prints the banner when the view was created for it.
func (v *View) Start() {
	if v.banner {
		fmt.Fprint(v.out, metadata.Banner())
	}
}

// SetSeq stores the sequence text, either loaded from a file or echoed
// back with the results.
func (v *View) SetSeq(text string) {
	v.seq = text
	v.result.Sequence = text
}

func (v *View) SetIslandDefinitionDefaults(islandSize, minimumGCRatio string) {
	v.defaultSize = islandSize
	v.defaultRatio = minimumGCRatio
}

// ShowError keeps the first message; the command reports it on exit.
func (v *View) ShowError(message string) {
	logging.Debug("CLI", "Error shown: %s", message)
	if v.shown == nil {
		v.shown = &ShownError{Message: message}
	}
}

func (v *View) SetLocations(pairs [][2]int) {
	v.computed = true
	v.result.Locations = newLocations(v.result.Sequence, pairs)
}

func (v *View) ShowFeature(index, start, end int, bases string) {
	v.result.Feature = &Feature{Index: index, Start: start, End: end, Bases: bases}
}

func (v *View) HighlightLocations(pairs [][2]int) {
	v.result.Highlighted = highlight(v.result.Sequence, pairs)
}

// Annotate replays a user session: load the file if one is given, submit
// the form, then select a feature and highlight when asked to. The first
// error shown stops the run and is returned as a *ShownError.
func (v *View) Annotate(opts Options) error {
	if opts.File != "" {
		v.fileLoadRequested.Fire(opts.File)
		if v.shown != nil {
			return v.shown
		}
	}

	seq := opts.Sequence
	if seq == "" {
		seq = v.seq
	}
	if seq == "" {
		return fmt.Errorf("no sequence given: use --sequence or --file")
	}

	sub := presenters.Submission{
		Sequence:       seq,
		IslandSize:     firstNonEmpty(opts.IslandSize, v.defaultSize),
		MinimumGCRatio: firstNonEmpty(opts.GCRatio, v.defaultRatio),
	}
	v.submitted.Fire(sub)
	if v.shown != nil {
		return v.shown
	}
	if !v.computed {
		return fmt.Errorf("annotation produced no result")
	}

	if opts.Feature >= 0 {
		v.featureSelected.Fire(opts.Feature)
		if v.shown != nil {
			return v.shown
		}
	}
	if opts.Highlight {
		event.Emit(v.globalHighlight)
	}

	return Render(v.out, opts.Format, v.result)
}

// Result returns what the view has been shown so far.
func (v *View) Result() Result {
	return v.result
}

func firstNonEmpty(values ...string) string {
	for _, s := range values {
		if s != "" {
			return s
		}
	}
	return ""
}

var (
	_ presenters.ApplicationView = (*View)(nil)
	_ presenters.SeqInputView    = (*View)(nil)
	_ presenters.ResultsView     = (*View)(nil)
)
