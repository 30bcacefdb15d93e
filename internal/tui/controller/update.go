package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"cpgislands/internal/tui/model"
	"cpgislands/pkg/logging"
)

const controllerSubsystem = "Controller"

// mainControllerDispatch routes every message to the handler for the
// current mode.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case model.NewLogEntryMsg:
		handleNewLogEntry(m, msg)
		return m, model.ListenForLogEntriesCmd(m.LogChannel)

	case model.ClearStatusBarMsg:
		m.ClearStatusMessage()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return quit(m)
		}
		switch m.CurrentAppMode {
		case model.ModeFilePrompt:
			return handleFilePromptKey(m, msg)
		case model.ModeLogOverlay:
			return handleLogOverlayKey(m, msg)
		case model.ModeHelpOverlay:
			return handleHelpOverlayKey(m, msg)
		case model.ModeQuitting:
			return m, nil
		default:
			return handleMainKey(m, msg)
		}
	}

	return forwardToFocused(m, msg)
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	logging.Debug(controllerSubsystem, "Quitting")
	m.CurrentAppMode = model.ModeQuitting
	return m, tea.Quit
}
