package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"cpgislands/internal/event"
	"cpgislands/internal/tui/model"
	"cpgislands/pkg/logging"
)

const statusClearAfter = 5 * time.Second

// clipboardWriteAll is replaced in tests.
var clipboardWriteAll = clipboard.WriteAll

func handleMainKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	keys := m.Keys
	switch {
	case key.Matches(msg, keys.Quit):
		return quit(m)

	case key.Matches(msg, keys.Tab):
		m.SetFocus(m.Focus.Next())
		return m, nil

	case key.Matches(msg, keys.ShiftTab):
		m.SetFocus(m.Focus.Prev())
		return m, nil

	case key.Matches(msg, keys.Submit):
		return submit(m)

	case key.Matches(msg, keys.LoadFile):
		m.CurrentAppMode = model.ModeFilePrompt
		m.FilePathInput.SetValue("")
		return m, m.FilePathInput.Focus()

	case key.Matches(msg, keys.GlobalHighlight):
		event.Emit(m.ResultsView.GlobalHighlight())
		if len(m.Highlighted) == 0 {
			return m, m.SetStatusMessage("No islands to highlight", model.StatusBarWarning, statusClearAfter)
		}
		return m, m.SetStatusMessage(fmt.Sprintf("Highlighted %d islands", len(m.Highlighted)), model.StatusBarInfo, statusClearAfter)

	case key.Matches(msg, keys.CopyLocations):
		return copyLocations(m)

	case key.Matches(msg, keys.ToggleLog):
		m.CurrentAppMode = model.ModeLogOverlay
		refreshLogViewport(m)
		return m, nil

	case key.Matches(msg, keys.Help):
		m.CurrentAppMode = model.ModeHelpOverlay
		return m, nil

	case key.Matches(msg, keys.SelectFeature):
		switch m.Focus {
		case model.FocusResults:
			return selectFeature(m)
		case model.FocusIslandSize, model.FocusGCRatio:
			return submit(m)
		}
	}

	return forwardToFocused(m, msg)
}

// submit fires the form content at the presenters. Any error is shown by
// the views during the fire.
func submit(m *model.Model) (*model.Model, tea.Cmd) {
	m.ErrorMessage = ""
	version := m.ResultVersion

	m.InputView.Submitted().Fire(m.Submission())

	if m.ErrorMessage != "" {
		return m, m.SetStatusMessage(m.ErrorMessage, model.StatusBarError, statusClearAfter)
	}
	if m.ResultVersion == version {
		return m, nil
	}
	logging.Debug(controllerSubsystem, "Submission produced %d islands", len(m.Locations))
	return m, m.SetStatusMessage(fmt.Sprintf("%d islands found", len(m.Locations)), model.StatusBarSuccess, statusClearAfter)
}

func selectFeature(m *model.Model) (*model.Model, tea.Cmd) {
	if len(m.ResultsTable.Rows()) == 0 {
		return m, nil
	}
	m.ResultsView.FeatureSelected().Fire(m.ResultsTable.Cursor())
	return m, nil
}

func copyLocations(m *model.Model) (*model.Model, tea.Cmd) {
	if len(m.Locations) == 0 {
		return m, m.SetStatusMessage("No locations to copy", model.StatusBarWarning, statusClearAfter)
	}
	lines := make([]string, len(m.Locations))
	for i, p := range m.Locations {
		lines[i] = fmt.Sprintf("%d %d", p[0], p[1])
	}
	if err := clipboardWriteAll(strings.Join(lines, "\n")); err != nil {
		logging.Error(controllerSubsystem, err, "Failed to copy locations to clipboard")
		return m, m.SetStatusMessage("Failed to copy locations", model.StatusBarError, statusClearAfter)
	}
	return m, m.SetStatusMessage(fmt.Sprintf("Copied %d locations", len(m.Locations)), model.StatusBarSuccess, statusClearAfter)
}

func handleFilePromptKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.FilePathInput.Blur()
		m.CurrentAppMode = model.ModeMain
		return m, nil

	case "enter":
		path := strings.TrimSpace(m.FilePathInput.Value())
		m.FilePathInput.Blur()
		m.CurrentAppMode = model.ModeMain
		if path == "" {
			return m, nil
		}

		m.ErrorMessage = ""
		m.AppView.FileLoadRequested().Fire(path)
		if m.ErrorMessage != "" {
			return m, m.SetStatusMessage(m.ErrorMessage, model.StatusBarError, statusClearAfter)
		}
		m.SetFocus(model.FocusSequence)
		return m, m.SetStatusMessage(m.StatusBarMessage, model.StatusBarSuccess, statusClearAfter)
	}

	var cmd tea.Cmd
	m.FilePathInput, cmd = m.FilePathInput.Update(msg)
	return m, cmd
}

func handleLogOverlayKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Esc), key.Matches(msg, m.Keys.ToggleLog):
		m.CurrentAppMode = model.ModeMain
		return m, nil
	case msg.String() == "y":
		if err := clipboardWriteAll(strings.Join(m.ActivityLog, "\n")); err != nil {
			logging.Error(controllerSubsystem, err, "Failed to copy activity log to clipboard")
			return m, m.SetStatusMessage("Failed to copy logs", model.StatusBarError, statusClearAfter)
		}
		return m, m.SetStatusMessage("Activity log copied to clipboard", model.StatusBarSuccess, statusClearAfter)
	}

	var cmd tea.Cmd
	m.LogViewport, cmd = m.LogViewport.Update(msg)
	return m, cmd
}

func handleHelpOverlayKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if key.Matches(msg, m.Keys.Esc) || key.Matches(msg, m.Keys.Help) {
		m.CurrentAppMode = model.ModeMain
	}
	return m, nil
}

// forwardToFocused hands msg to the widget that has focus.
func forwardToFocused(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.Focus {
	case model.FocusSequence:
		m.SequenceInput, cmd = m.SequenceInput.Update(msg)
	case model.FocusIslandSize:
		m.IslandSizeInput, cmd = m.IslandSizeInput.Update(msg)
	case model.FocusGCRatio:
		m.GCRatioInput, cmd = m.GCRatioInput.Update(msg)
	case model.FocusResults:
		m.ResultsTable, cmd = m.ResultsTable.Update(msg)
	}
	return m, cmd
}
