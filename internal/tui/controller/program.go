package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"cpgislands/internal/tui/model"
)

// NewProgram wraps an already wired model in a full-screen program.
func NewProgram(m *model.Model, opts ...tea.ProgramOption) *tea.Program {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	return tea.NewProgram(NewAppModel(m), opts...)
}
