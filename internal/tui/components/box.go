package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/shade-palette/shade/internal/tui/colors"
)

// RenderBtopBox draws a rounded box with titles set into the top border.
// Titles are pre-styled; either may be empty.
// Example: ╭─ Red 550 ──────────── #EF4444 ─╮
func RenderBtopBox(leftTitle, rightTitle string, content string, width, height int, borderColor lipgloss.Color) string {
	const (
		topLeft     = "╭"
		topRight    = "╮"
		bottomLeft  = "╰"
		bottomRight = "╯"
		horizontal  = "─"
		vertical    = "│"
	)
	innerWidth := max(width-2, 1)
	border := lipgloss.NewStyle().Foreground(borderColor)

	// ╭─ left ───── right ─╮ : one dash is reserved on each titled side
	fill := innerWidth
	var left, right string
	if leftTitle != "" {
		left = border.Render(horizontal) + leftTitle
		fill -= 1 + lipgloss.Width(leftTitle)
	}
	if rightTitle != "" {
		right = rightTitle + border.Render(horizontal)
		fill -= 1 + lipgloss.Width(rightTitle)
	}
	fill = max(fill, 0)
	topBorder := border.Render(topLeft) + left + border.Render(strings.Repeat(horizontal, fill)) + right + border.Render(topRight)
	bottomBorder := border.Render(bottomLeft + strings.Repeat(horizontal, innerWidth) + bottomRight)

	contentLines := strings.Split(content, "\n")
	innerHeight := max(height-2, 0)

	lines := make([]string, 0, innerHeight)
	for i := 0; i < innerHeight; i++ {
		line := ""
		if i < len(contentLines) {
			line = contentLines[i]
		}
		if w := lipgloss.Width(line); w > innerWidth {
			line = ansi.Truncate(line, innerWidth, "")
		} else if w < innerWidth {
			line += strings.Repeat(" ", innerWidth-w)
		}
		lines = append(lines, border.Render(vertical)+line+border.Render(vertical))
	}

	return lipgloss.JoinVertical(lipgloss.Left, topBorder, strings.Join(lines, "\n"), bottomBorder)
}

// DefaultBorderColor frames popups
var DefaultBorderColor = colors.NeonPink
