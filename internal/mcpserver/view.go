package mcpserver

import (
	"cpgislands/internal/event"
	"cpgislands/internal/presenters"
	"cpgislands/pkg/logging"
)

// reply collects what the presenters told the view during one tool call.
type reply struct {
	errMessage string
	seq        string
	pairs      [][2]int
	computed   bool
	feature    *FeatureResult
	highlight  [][2]int
}

// View is the view set behind the MCP tools. Tool handlers fire its events
// and read back what the presenters rendered into it.
type View struct {
	fileLoadRequested *event.Event[string]
	submitted         *event.Event[presenters.Submission]
	featureSelected   *event.Event[int]
	globalHighlight   *event.Signal

	started      bool
	defaultSize  string
	defaultRatio string
	reply        reply
}

func NewView() *View {
	return &View{
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

func (v *View) Start() {
	v.started = true
	logging.Info("MCPServer", "View started")
}

// Started reports whether the application has started the view.
func (v *View) Started() bool { return v.started }

func (v *View) SetSeq(text string) { v.reply.seq = text }

func (v *View) SetIslandDefinitionDefaults(islandSize, minimumGCRatio string) {
	v.defaultSize = islandSize
	v.defaultRatio = minimumGCRatio
}

func (v *View) ShowError(message string) {
	if v.reply.errMessage == "" {
		v.reply.errMessage = message
	}
}

func (v *View) SetLocations(pairs [][2]int) {
	v.reply.computed = true
	v.reply.pairs = pairs
}

func (v *View) ShowFeature(index, start, end int, bases string) {
	v.reply.feature = &FeatureResult{Index: index, Start: start, End: end, Bases: bases}
}

func (v *View) HighlightLocations(pairs [][2]int) {
	v.reply.highlight = pairs
}

// begin clears the reply before a tool fires view events.
func (v *View) begin() {
	v.reply = reply{}
}

var (
	_ presenters.ApplicationView = (*View)(nil)
	_ presenters.SeqInputView    = (*View)(nil)
	_ presenters.ResultsView     = (*View)(nil)
)
