package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cpgislands/internal/cpg"
	"cpgislands/internal/tui/design"
)

type baseStyle int

const (
	basePlain baseStyle = iota
	baseIsland
	baseSelected
)

// RenderSequence wraps seq into lines of width bases. Bases covered by
// highlighted are drawn with the island style; bases of selected, when
// non-nil, win over that.
func RenderSequence(seq string, width int, highlighted [][2]int, selected *[2]int) string {
	if seq == "" {
		return ""
	}
	if width <= 0 {
		width = len(seq)
	}

	islands := cpg.CoverageMask(len(seq), highlighted)
	var picked []bool
	if selected != nil {
		picked = cpg.CoverageMask(len(seq), [][2]int{*selected})
	}

	styleAt := func(i int) baseStyle {
		switch {
		case picked != nil && picked[i]:
			return baseSelected
		case islands[i]:
			return baseIsland
		default:
			return basePlain
		}
	}

	lines := make([]string, 0, len(seq)/width+1)
	for lineStart := 0; lineStart < len(seq); lineStart += width {
		lineEnd := min(lineStart+width, len(seq))

		var b strings.Builder
		// Render runs of equally styled bases in one call.
		runStart := lineStart
		for i := lineStart + 1; i <= lineEnd; i++ {
			if i < lineEnd && styleAt(i) == styleAt(runStart) {
				continue
			}
			b.WriteString(styleFor(styleAt(runStart)).Render(seq[runStart:i]))
			runStart = i
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func styleFor(s baseStyle) lipgloss.Style {
	switch s {
	case baseSelected:
		return design.SelectedStyle
	case baseIsland:
		return design.IslandStyle
	default:
		return design.TextStyle
	}
}
