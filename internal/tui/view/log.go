package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cpgislands/internal/tui/design"
	"cpgislands/internal/tui/model"
)

func renderLogOverlay(m *model.Model) string {
	title := design.OverlayTitleStyle.Render("Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)")
	content := lipgloss.JoinVertical(lipgloss.Left, title, m.LogViewport.View())
	return design.OverlayStyle.
		Width(max(m.Width-design.OverlayStyle.GetHorizontalFrameSize(), 1)).
		Height(max(m.Height-design.OverlayStyle.GetVerticalFrameSize(), 1)).
		Render(content)
}

// PrepareLogContent applies color styles based on log level keywords.
func PrepareLogContent(lines []string) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = styleLogLine(l)
	}
	return strings.Join(out, "\n")
}

func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return design.LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return design.LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return design.LogDebugStyle.Render(l)
	default:
		return design.LogInfoStyle.Render(l)
	}
}
