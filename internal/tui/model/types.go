package model

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"cpgislands/pkg/logging"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeInitializing AppMode = iota
	ModeMain
	ModeFilePrompt
	ModeLogOverlay
	ModeHelpOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeInitializing:
		return "Initializing"
	case ModeMain:
		return "Main"
	case ModeFilePrompt:
		return "FilePrompt"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// Focus identifies the widget receiving key presses in ModeMain.
type Focus int

const (
	FocusSequence Focus = iota
	FocusIslandSize
	FocusGCRatio
	FocusResults
	focusCount
)

// Next returns the focus after f, wrapping around.
func (f Focus) Next() Focus { return (f + 1) % focusCount }

// Prev returns the focus before f, wrapping around.
func (f Focus) Prev() Focus { return (f + focusCount - 1) % focusCount }

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Constants for UI
const (
	MaxActivityLogLines  = 1000
	DefaultSequenceWidth = 60
	DefaultWidth         = 100
	DefaultHeight        = 30
)

// TUIConfig carries the settings the TUI needs at start-up.
type TUIConfig struct {
	DebugMode     bool
	SequenceWidth int
}

// FeatureDetail is the island selected in the results table.
type FeatureDetail struct {
	Index int
	Start int
	End   int
	Bases string
}

// Model represents the state of the TUI application.
type Model struct {
	Width  int
	Height int

	CurrentAppMode AppMode
	Focus          Focus
	DebugMode      bool
	SequenceWidth  int

	// Input widgets
	SequenceInput   textarea.Model
	IslandSizeInput textinput.Model
	GCRatioInput    textinput.Model
	FilePathInput   textinput.Model

	// Results
	ResultsTable  table.Model
	ResultSeq     string
	Locations     [][2]int
	Highlighted   [][2]int
	Feature       *FeatureDetail
	ErrorMessage  string
	ResultVersion int // incremented on every SetLocations

	// Status bar
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	// Activity log
	ActivityLog      []string
	ActivityLogDirty bool
	LogViewport      viewport.Model
	LogChannel       <-chan logging.LogEntry

	Keys KeyMap
	Help help.Model

	// Presenter-facing views
	AppView     *ApplicationView
	InputView   *SeqInputView
	ResultsView *ResultsView
}

// SetStatusMessage shows message in the status bar and returns a command
// that clears it after clearAfter unless a newer message replaced it.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// ClearStatusMessage empties the status bar.
func (m *Model) ClearStatusMessage() {
	m.StatusBarMessage = ""
	m.StatusBarMessageType = StatusBarInfo
}
