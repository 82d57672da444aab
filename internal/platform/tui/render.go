package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bounce/internal/core"
)

// styleFor returns the foreground style for a cell color.
func styleFor(cache map[core.Color]lipgloss.Style, c core.Color) lipgloss.Style {
	if style, ok := cache[c]; ok {
		return style
	}
	style := lipgloss.NewStyle()
	if hex := c.Hex(); hex != "" {
		style = style.Foreground(lipgloss.Color(hex))
	}
	cache[c] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())
	styles := make(map[core.Color]lipgloss.Style)

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if !startColor.Set {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(styles, startColor).Render(run.String()))
		}
	}
	return sb.String()
}
