package components

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"github.com/shade-palette/shade/internal/tui/colors"
)

// QuickCopyModal is the popup listing every notation of one color
type QuickCopyModal struct {
	Title       string
	Subtitle    string
	List        list.Model
	Help        help.Model
	HelpKeys    help.KeyMap
	BorderColor lipgloss.Color
	Width       int
	Height      int
}

// NewQuickCopyModal creates a quick copy popup sized around the list
func NewQuickCopyModal(title, subtitle string, l list.Model, helpModel help.Model, helpKeys help.KeyMap, borderColor lipgloss.Color) QuickCopyModal {
	return QuickCopyModal{
		Title:       title,
		Subtitle:    subtitle,
		List:        l,
		Help:        helpModel,
		HelpKeys:    helpKeys,
		BorderColor: borderColor,
		Width:       l.Width() + 6,
		Height:      l.Height() + 7,
	}
}

// View returns the inner content of the popup (without the box): five lines
// of spacing, subtitle and help around the list.
func (m QuickCopyModal) View() string {
	subtitleStyle := lipgloss.NewStyle().Foreground(colors.LightGray)

	content := lipgloss.JoinVertical(lipgloss.Left,
		"",
		subtitleStyle.Render(m.Subtitle),
		"",
		m.List.View(),
		"",
		m.Help.View(m.HelpKeys),
	)

	return lipgloss.NewStyle().Padding(0, 2).Render(content)
}

// RenderCentered renders the popup in a titled box, centered on screen
func (m QuickCopyModal) RenderCentered(screenWidth, screenHeight int, titleStyle lipgloss.Style) string {
	box := RenderBtopBox(titleStyle.Render(" "+m.Title+" "), "", m.View(), m.Width, m.Height, m.BorderColor)
	return lipgloss.Place(screenWidth, screenHeight, lipgloss.Center, lipgloss.Center, box)
}
