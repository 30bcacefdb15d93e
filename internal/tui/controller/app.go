package controller

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"cpgislands/internal/tui/model"
	"cpgislands/internal/tui/view"
)

// AppModel adapts *model.Model to the tea.Model interface.
type AppModel struct {
	model *model.Model
}

// NewAppModel creates a new AppModel
func NewAppModel(m *model.Model) *AppModel {
	return &AppModel{model: m}
}

// Model returns the wrapped model.
func (a *AppModel) Model() *model.Model {
	return a.model
}

// Init starts the cursor blink and the activity log listener.
func (a *AppModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, model.ListenForLogEntriesCmd(a.model.LogChannel))
}

// Update implements tea.Model.
func (a *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := mainControllerDispatch(a.model, msg)
	a.model = m
	return a, cmd
}

// View implements tea.Model.
func (a *AppModel) View() string {
	return view.Render(a.model)
}
