package controller

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpgislands/internal/cpg"
	"cpgislands/internal/loader"
	"cpgislands/internal/models"
	"cpgislands/internal/presenters"
	"cpgislands/internal/tui/model"
	"cpgislands/pkg/logging"
)

// newWiredApp builds the TUI model behind the real model and presenter stack.
func newWiredApp(t *testing.T) *AppModel {
	t.Helper()
	m := model.InitialModel(model.TUIConfig{SequenceWidth: 20}, nil)

	seqInput := models.NewSeqInputModel(loader.New())
	results := models.NewResultsModel()
	app := models.NewApplicationModel(seqInput, results, cpg.IslandDefinition{IslandSize: 4, MinimumGCRatio: 0.5})

	presenters.NewApplicationPresenter(app, m.AppView).RegisterForEvents()
	presenters.NewSeqInputPresenter(seqInput, m.InputView).RegisterForEvents()
	presenters.NewResultsPresenter(results, m.ResultsView).RegisterForEvents()

	app.Run([]string{"cpgislands"})
	return NewAppModel(m)
}

func send(a *AppModel, msg tea.Msg) tea.Cmd {
	_, cmd := a.Update(msg)
	return cmd
}

func keyMsg(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func TestApp_StartsWithDefaults(t *testing.T) {
	a := newWiredApp(t)
	m := a.Model()

	assert.Equal(t, model.ModeMain, m.CurrentAppMode)
	assert.Equal(t, "4", m.IslandSizeInput.Value())
	assert.Equal(t, "0.5", m.GCRatioInput.Value())
	assert.NotEmpty(t, a.View())
}

func TestApp_SubmitAndSelectFeature(t *testing.T) {
	a := newWiredApp(t)
	m := a.Model()
	m.SequenceInput.SetValue("ATATGCGCATAT")

	cmd := send(a, keyMsg(tea.KeyCtrlS))
	assert.NotNil(t, cmd)
	assert.Empty(t, m.ErrorMessage)
	assert.Equal(t, [][2]int{{2, 6}, {3, 7}, {4, 8}, {5, 9}, {6, 10}}, m.Locations)
	assert.Equal(t, "5 islands found", m.StatusBarMessage)
	assert.Len(t, m.ResultsTable.Rows(), 5)

	// Move to the results table and pick the second island.
	send(a, keyMsg(tea.KeyTab))
	send(a, keyMsg(tea.KeyTab))
	send(a, keyMsg(tea.KeyTab))
	require.Equal(t, model.FocusResults, m.Focus)
	send(a, keyMsg(tea.KeyDown))
	send(a, keyMsg(tea.KeyEnter))

	require.NotNil(t, m.Feature)
	assert.Equal(t, model.FeatureDetail{Index: 1, Start: 3, End: 7, Bases: "TGCG"}, *m.Feature)
}

func TestApp_SubmitInvalidIslandSize(t *testing.T) {
	a := newWiredApp(t)
	m := a.Model()
	m.SequenceInput.SetValue("ATATGCGCATAT")
	m.IslandSizeInput.SetValue("abc")

	send(a, keyMsg(tea.KeyCtrlS))
	assert.Equal(t, "Invalid integer for island size: abc", m.ErrorMessage)
	assert.Equal(t, model.StatusBarError, m.StatusBarMessageType)
	assert.Empty(t, m.ResultsTable.Rows())
}

func TestApp_EnterInRatioFieldSubmits(t *testing.T) {
	a := newWiredApp(t)
	m := a.Model()
	m.SequenceInput.SetValue("ATATGCGCATAT")
	m.SetFocus(model.FocusGCRatio)

	send(a, keyMsg(tea.KeyEnter))
	assert.Len(t, m.Locations, 5)
}

func TestApp_GlobalHighlight(t *testing.T) {
	a := newWiredApp(t)
	m := a.Model()

	send(a, keyMsg(tea.KeyCtrlG))
	assert.Equal(t, "No islands to highlight", m.StatusBarMessage)

	m.SequenceInput.SetValue("ATATGCGCATAT")
	send(a, keyMsg(tea.KeyCtrlS))
	send(a, keyMsg(tea.KeyCtrlG))
	assert.Len(t, m.Highlighted, 5)
}

func TestApp_LoadFile(t *testing.T) {
	a := newWiredApp(t)
	m := a.Model()

	path := filepath.Join(t.TempDir(), "seq.fasta")
	require.NoError(t, os.WriteFile(path, []byte(">x\nATATGCGCATAT\n"), 0644))

	send(a, keyMsg(tea.KeyCtrlO))
	require.Equal(t, model.ModeFilePrompt, m.CurrentAppMode)
	send(a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(path)})
	send(a, keyMsg(tea.KeyEnter))

	assert.Equal(t, model.ModeMain, m.CurrentAppMode)
	assert.Equal(t, "ATATGCGCATAT", m.SequenceInput.Value())
	assert.Empty(t, m.ErrorMessage)
}

func TestApp_LoadFileError(t *testing.T) {
	a := newWiredApp(t)
	m := a.Model()

	send(a, keyMsg(tea.KeyCtrlO))
	send(a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(filepath.Join(t.TempDir(), "missing.gb"))})
	send(a, keyMsg(tea.KeyEnter))

	assert.Contains(t, m.ErrorMessage, "Sequence parsing error: ")
	assert.Empty(t, m.SequenceInput.Value())
}

func TestApp_FilePromptCancel(t *testing.T) {
	a := newWiredApp(t)
	m := a.Model()

	send(a, keyMsg(tea.KeyCtrlO))
	send(a, keyMsg(tea.KeyEsc))
	assert.Equal(t, model.ModeMain, m.CurrentAppMode, "esc in the prompt cancels instead of quitting")
}

func TestApp_CopyLocations(t *testing.T) {
	orig := clipboardWriteAll
	defer func() { clipboardWriteAll = orig }()

	var copied string
	clipboardWriteAll = func(s string) error {
		copied = s
		return nil
	}

	a := newWiredApp(t)
	m := a.Model()

	send(a, keyMsg(tea.KeyCtrlY))
	assert.Equal(t, "No locations to copy", m.StatusBarMessage)

	m.SequenceInput.SetValue("ATATGCGCATAT")
	send(a, keyMsg(tea.KeyCtrlS))
	send(a, keyMsg(tea.KeyCtrlY))
	assert.Equal(t, "2 6\n3 7\n4 8\n5 9\n6 10", copied)

	clipboardWriteAll = func(string) error { return errors.New("no clipboard") }
	send(a, keyMsg(tea.KeyCtrlY))
	assert.Equal(t, model.StatusBarError, m.StatusBarMessageType)
}

func TestApp_Overlays(t *testing.T) {
	a := newWiredApp(t)
	m := a.Model()

	send(a, keyMsg(tea.KeyCtrlL))
	assert.Equal(t, model.ModeLogOverlay, m.CurrentAppMode)
	send(a, keyMsg(tea.KeyEsc))
	assert.Equal(t, model.ModeMain, m.CurrentAppMode)

	send(a, keyMsg(tea.KeyF1))
	assert.Equal(t, model.ModeHelpOverlay, m.CurrentAppMode)
	send(a, keyMsg(tea.KeyF1))
	assert.Equal(t, model.ModeMain, m.CurrentAppMode)
}

func TestApp_LogEntries(t *testing.T) {
	a := newWiredApp(t)
	m := a.Model()

	send(a, model.NewLogEntryMsg{Entry: logging.LogEntry{Level: logging.LevelInfo, Subsystem: "Test", Message: "hello"}})
	require.Len(t, m.ActivityLog, 1)
	assert.Contains(t, m.ActivityLog[0], "[INFO] Test: hello")
}

func TestApp_WindowSizeAndStatusClear(t *testing.T) {
	a := newWiredApp(t)
	m := a.Model()

	send(a, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.Width)
	assert.Equal(t, 40, m.Height)

	send(a, model.ClearStatusBarMsg{})
	assert.Empty(t, m.StatusBarMessage)
}

func TestApp_Quit(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		a := newWiredApp(t)
		cmd := send(a, keyMsg(k))
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
		assert.Equal(t, model.ModeQuitting, a.Model().CurrentAppMode)
	}
}

func TestNewProgram(t *testing.T) {
	assert.NotNil(t, NewProgram(model.InitialModel(model.TUIConfig{}, nil)))
}
