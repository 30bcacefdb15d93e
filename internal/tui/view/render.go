package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cpgislands/internal/metadata"
	"cpgislands/internal/tui/components"
	"cpgislands/internal/tui/design"
	"cpgislands/internal/tui/model"
	"cpgislands/internal/tui/utils"
)

// Render builds the whole screen for the current mode.
func Render(m *model.Model) string {
	switch m.CurrentAppMode {
	case model.ModeInitializing:
		return "Starting " + metadata.NiceTitle + "...\n"
	case model.ModeQuitting:
		return "Goodbye.\n"
	case model.ModeLogOverlay:
		return renderLogOverlay(m)
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	}

	parts := []string{
		renderHeader(m),
		lipgloss.JoinHorizontal(lipgloss.Top, renderForm(m), renderResults(m)),
	}
	if m.CurrentAppMode == model.ModeFilePrompt {
		parts = append(parts, renderFilePrompt(m))
	}
	if m.ErrorMessage != "" {
		parts = append(parts, design.TextErrorStyle.Render(utils.TruncateString(m.ErrorMessage, m.Width)))
	}
	if m.ResultSeq != "" {
		parts = append(parts, renderSequencePane(m))
	}
	parts = append(parts, renderStatusBar(m), m.Help.ShortHelpView(m.Keys.ShortHelp()))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderHeader(m *model.Model) string {
	title := fmt.Sprintf("%s %s", metadata.NiceTitle, metadata.Version)
	return design.HeaderStyle.Width(m.Width).Render(utils.TruncateString(title, m.Width))
}

func panel(title, body string, focused bool) string {
	style := design.PanelStyle
	if focused {
		style = design.PanelFocusedStyle
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, design.PanelTitleStyle.Render(title), body))
}

func renderForm(m *model.Model) string {
	seq := panel("Sequence", m.SequenceInput.View(), m.Focus == model.FocusSequence)
	size := panel("Island definition", lipgloss.JoinVertical(lipgloss.Left,
		m.IslandSizeInput.View(),
		m.GCRatioInput.View(),
	), m.Focus == model.FocusIslandSize || m.Focus == model.FocusGCRatio)
	return lipgloss.JoinVertical(lipgloss.Left, seq, size)
}

func renderResults(m *model.Model) string {
	title := "Islands"
	if m.ResultVersion > 0 {
		title = fmt.Sprintf("Islands (%d)", len(m.Locations))
	}

	body := m.ResultsTable.View()
	if m.ResultVersion > 0 && len(m.Locations) == 0 {
		body = design.DimStyle.Render("No islands found")
	}
	if f := m.Feature; f != nil {
		detail := fmt.Sprintf("Feature %d: [%d:%d]\n%s", f.Index, f.Start, f.End,
			utils.TruncateString(f.Bases, m.SequenceWidth))
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", detail)
	}
	return panel(title, body, m.Focus == model.FocusResults)
}

func renderFilePrompt(m *model.Model) string {
	return panel("Load sequence file (enter to load, esc to cancel)", m.FilePathInput.View(), true)
}

func renderSequencePane(m *model.Model) string {
	var selected *[2]int
	if loc, ok := m.SelectedLocation(); ok {
		selected = &loc
	}
	title := "Sequence"
	if len(m.Highlighted) > 0 {
		title = fmt.Sprintf("Sequence (%d islands highlighted)", len(m.Highlighted))
	}
	return panel(title, RenderSequence(m.ResultSeq, m.SequenceWidth, m.Highlighted, selected), false)
}

func renderStatusBar(m *model.Model) string {
	bar := components.NewStatusBar(m.Width).
		WithLeftText(fmt.Sprintf("%d bases", len(m.SequenceInput.Value()))).
		WithRightText(m.CurrentAppMode.String())
	if m.StatusBarMessage != "" {
		bar.WithMessage(m.StatusBarMessage, m.StatusBarMessageType)
	}
	return bar.Render()
}

func renderHelpOverlay(m *model.Model) string {
	title := design.OverlayTitleStyle.Render("KEYBOARD SHORTCUTS")
	h := m.Help
	h.ShowAll = true
	body := strings.Join([]string{title, h.View(m.Keys)}, "\n")
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, design.OverlayStyle.Render(body))
}
