package model

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"cpgislands/internal/event"
	"cpgislands/internal/presenters"
	"cpgislands/pkg/logging"
)

// InitialModel constructs the TUI model with its widgets and view adapters.
// logChannel may be nil when nothing feeds the activity log.
func InitialModel(cfg TUIConfig, logChannel <-chan logging.LogEntry) *Model {
	width := cfg.SequenceWidth
	if width <= 0 {
		width = DefaultSequenceWidth
	}

	seq := textarea.New()
	seq.Placeholder = "Paste a DNA sequence (A, C, G, T)"
	seq.ShowLineNumbers = false
	seq.CharLimit = 0
	seq.SetWidth(width)
	seq.SetHeight(8)
	seq.Focus()

	size := textinput.New()
	size.Prompt = "Island size: "
	size.CharLimit = 12
	size.Width = 12

	ratio := textinput.New()
	ratio.Prompt = "Minimum GC ratio: "
	ratio.CharLimit = 12
	ratio.Width = 12

	path := textinput.New()
	path.Prompt = "File: "
	path.Placeholder = "path/to/sequence.fasta"
	path.Width = 50

	results := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Start", Width: 8},
			{Title: "End", Width: 8},
		}),
		table.WithFocused(false),
		table.WithHeight(10),
	)

	m := &Model{
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		CurrentAppMode:  ModeInitializing,
		Focus:           FocusSequence,
		DebugMode:       cfg.DebugMode,
		SequenceWidth:   width,
		SequenceInput:   seq,
		IslandSizeInput: size,
		GCRatioInput:    ratio,
		FilePathInput:   path,
		ResultsTable:    results,
		ActivityLog:     []string{},
		LogViewport:     viewport.New(DefaultWidth-4, DefaultHeight-6),
		LogChannel:      logChannel,
		Keys:            DefaultKeyMap(),
		Help:            help.New(),
	}

	m.AppView = &ApplicationView{m: m, fileLoadRequested: event.New[string]("file_load_requested")}
	m.InputView = &SeqInputView{m: m, submitted: event.New[presenters.Submission]("submitted")}
	m.ResultsView = &ResultsView{
		m:               m,
		featureSelected: event.New[int]("feature_selected"),
		globalHighlight: event.NewSignal("global_highlight"),
	}

	return m
}

// SetFocus moves keyboard focus to f, blurring the previous widget.
func (m *Model) SetFocus(f Focus) {
	m.SequenceInput.Blur()
	m.IslandSizeInput.Blur()
	m.GCRatioInput.Blur()
	m.ResultsTable.Blur()

	m.Focus = f
	switch f {
	case FocusSequence:
		m.SequenceInput.Focus()
	case FocusIslandSize:
		m.IslandSizeInput.Focus()
	case FocusGCRatio:
		m.GCRatioInput.Focus()
	case FocusResults:
		m.ResultsTable.Focus()
	}
}

// Submission returns the form content as typed.
func (m *Model) Submission() presenters.Submission {
	return presenters.Submission{
		Sequence:       m.SequenceInput.Value(),
		IslandSize:     m.IslandSizeInput.Value(),
		MinimumGCRatio: m.GCRatioInput.Value(),
	}
}

// SelectedLocation returns the pair of the highlighted feature, if any.
func (m *Model) SelectedLocation() ([2]int, bool) {
	if m.Feature == nil {
		return [2]int{}, false
	}
	return [2]int{m.Feature.Start, m.Feature.End}, true
}
