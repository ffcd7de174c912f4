package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/shade-palette/shade/internal/tui/components"
)

var (
	logoStyle   = lipgloss.NewStyle().Foreground(ColorNeonPink).Bold(true).PaddingLeft(GridPaddingX)
	headerStyle = lipgloss.NewStyle().Foreground(ColorLightGray)
	popupTitle  = lipgloss.NewStyle().Foreground(ColorNeonPink).Bold(true)
)

func (m RootModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case QuickCopyState:
		return m.viewQuickCopy()
	case DetailState:
		return m.viewDetail()
	}
	return m.viewGrid()
}

func (m RootModel) viewGrid() string {
	lines := m.renderGridLines()
	vh := m.gridHeight()

	start := min(m.scrollOffset, len(lines))
	end := min(start+vh, len(lines))
	visible := lines[start:end]
	for len(visible) < vh {
		visible = append(visible, "")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		strings.Join(visible, "\n"),
		m.footerView(),
	)
}

func (m RootModel) viewDetail() string {
	w := max(m.width-2, MinListWidth+4)
	h := max(m.height-lipgloss.Height(m.footerView())-HeaderHeight, 6)

	left := popupTitle.Render(" " + m.target.name + " ")
	right := lipgloss.NewStyle().Foreground(m.swatch).Render(" " + SwatchGlyph + " " + strings.ToUpper(m.target.color) + " ")
	content := lipgloss.NewStyle().Padding(1, 2).Render(m.detail.View())

	box := components.RenderBtopBox(left, right, content, w, h, m.swatch)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		box,
		m.footerView(),
	)
}

func (m RootModel) viewQuickCopy() string {
	h := m.help
	h.ShowAll = false

	modal := components.NewQuickCopyModal(
		"Quick Copy",
		m.target.name,
		m.quickCopy,
		h,
		popupHelp{m.keys},
		components.DefaultBorderColor,
	)
	modal.Width = min(modal.Width, m.width)
	modal.Height = min(modal.Height, m.height)
	return modal.RenderCentered(m.width, m.height, popupTitle)
}

func (m RootModel) headerView() string {
	left := logoStyle.Render("shade")

	info := fmt.Sprintf("%d families · %d colors", len(m.families), len(m.cells))
	if s, ok := m.Selected(); ok && m.state == GridState {
		info = fmt.Sprintf("%s · %s", s.Name, info)
	}
	right := headerStyle.Render(info)

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right)-GridPaddingX, 1)
	return left + strings.Repeat(" ", gap) + right + "\n"
}

// footerView is the toast line followed by the key help
func (m RootModel) footerView() string {
	toast := lipgloss.NewStyle().PaddingLeft(GridPaddingX).Render(m.toast.Render())
	helpView := lipgloss.NewStyle().PaddingLeft(GridPaddingX).Render(m.help.View(m.helpKeys()))
	return lipgloss.JoinVertical(lipgloss.Left, toast, helpView)
}

func (m RootModel) helpKeys() help.KeyMap {
	switch m.state {
	case DetailState:
		return detailHelp{m.keys}
	case QuickCopyState:
		return popupHelp{m.keys}
	}
	return gridHelp{m.keys}
}
