package model

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"

	"cpgislands/internal/event"
	"cpgislands/internal/presenters"
	"cpgislands/pkg/logging"
)

// The three views below are thin adapters: presenters call them from inside
// Update, so they mutate the Model directly.

// ApplicationView is the top-level window.
type ApplicationView struct {
	m                 *Model
	fileLoadRequested *event.Event[string]
}

func (v *ApplicationView) FileLoadRequested() *event.Event[string] { return v.fileLoadRequested }

// Start switches the model out of its initializing mode.
func (v *ApplicationView) Start() {
	v.m.CurrentAppMode = ModeMain
	v.m.StatusBarMessage = "Ready"
	v.m.StatusBarMessageType = StatusBarInfo
	logging.Info("TUI", "Application window started")
}

// SeqInputView is the form on the left side of the window.
type SeqInputView struct {
	m         *Model
	submitted *event.Event[presenters.Submission]
}

func (v *SeqInputView) Submitted() *event.Event[presenters.Submission] { return v.submitted }

// SetSeq replaces the text of the sequence box, typically after a file was loaded.
func (v *SeqInputView) SetSeq(text string) {
	v.m.SequenceInput.SetValue(text)
	v.m.StatusBarMessage = fmt.Sprintf("Loaded %d bases", len(text))
	v.m.StatusBarMessageType = StatusBarSuccess
}

func (v *SeqInputView) SetIslandDefinitionDefaults(islandSize, minimumGCRatio string) {
	v.m.IslandSizeInput.SetValue(islandSize)
	v.m.GCRatioInput.SetValue(minimumGCRatio)
}

func (v *SeqInputView) ShowError(message string) {
	v.m.showError(message)
}

// ResultsView is the results table and sequence pane on the right side.
type ResultsView struct {
	m               *Model
	featureSelected *event.Event[int]
	globalHighlight *event.Signal
}

func (v *ResultsView) FeatureSelected() *event.Event[int] { return v.featureSelected }
func (v *ResultsView) GlobalHighlight() *event.Signal     { return v.globalHighlight }

func (v *ResultsView) SetSeq(text string) {
	v.m.ResultSeq = text
}

// SetLocations refills the results table. Previous highlights and the
// selected feature belong to the old result and are dropped.
func (v *ResultsView) SetLocations(pairs [][2]int) {
	m := v.m
	m.Locations = pairs
	m.Highlighted = nil
	m.Feature = nil
	m.ErrorMessage = ""
	m.ResultVersion++

	rows := make([]table.Row, 0, len(pairs))
	for i, p := range pairs {
		rows = append(rows, table.Row{
			strconv.Itoa(i),
			strconv.Itoa(p[0]),
			strconv.Itoa(p[1]),
		})
	}
	m.ResultsTable.SetRows(rows)
	m.ResultsTable.SetCursor(0)
}

func (v *ResultsView) ShowFeature(index, start, end int, bases string) {
	v.m.Feature = &FeatureDetail{Index: index, Start: start, End: end, Bases: bases}
}

func (v *ResultsView) HighlightLocations(pairs [][2]int) {
	v.m.Highlighted = pairs
}

func (v *ResultsView) ShowError(message string) {
	v.m.showError(message)
}

func (m *Model) showError(message string) {
	logging.Debug("TUI", "Error shown: %s", message)
	m.ErrorMessage = message
	m.StatusBarMessage = message
	m.StatusBarMessageType = StatusBarError
}

var (
	_ presenters.ApplicationView = (*ApplicationView)(nil)
	_ presenters.SeqInputView    = (*SeqInputView)(nil)
	_ presenters.ResultsView     = (*ResultsView)(nil)
)
