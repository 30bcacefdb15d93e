package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"cpgislands/internal/tui/model"
)

// handleWindowSizeMsg updates the model with the new terminal dimensions.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Help.Width = msg.Width

	m.LogViewport.Width = max(msg.Width-6, 10)
	m.LogViewport.Height = max(msg.Height-8, 3)
	return m, nil
}
