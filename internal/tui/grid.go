package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shade-palette/shade/internal/tui/colors"
)

// gridLayout is the size of the palette grid for the current terminal
type gridLayout struct {
	columns    int
	cellWidth  int
	cellHeight int
}

// layout fills the available width with the configured number of columns,
// dropping columns when cells would get narrower than MinCellWidth. The cell
// height follows the aspect ratio.
func (m RootModel) layout() gridLayout {
	cols := max(m.settings.Columns, 1)
	avail := max(m.width-2*GridPaddingX, MinCellWidth+CellGap)

	if fit := avail / (MinCellWidth + CellGap); fit < cols {
		cols = max(fit, 1)
	}
	w := max(avail/cols-CellGap, MinCellWidth)

	ratio, err := m.settings.Ratio()
	if err != nil {
		ratio = 1.5
	}
	h := max(int(math.Round(float64(w)/ratio/CellAspect)), MinCellHeight)

	return gridLayout{columns: cols, cellWidth: w, cellHeight: h}
}

// position maps a cell index to its family and index within the family
func (m RootModel) position(i int) (fi, si int) {
	for f := len(m.offsets) - 1; f >= 0; f-- {
		if m.offsets[f] <= i {
			return f, i - m.offsets[f]
		}
	}
	return 0, i
}

func (m *RootModel) moveLeft() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *RootModel) moveRight() {
	if m.cursor < len(m.cells)-1 {
		m.cursor++
	}
}

// moveDown goes one row down, continuing into the next family's first row
func (m *RootModel) moveDown() {
	if len(m.cells) == 0 {
		return
	}
	cols := m.layout().columns
	fi, si := m.position(m.cursor)
	size := len(m.families[fi].Shades)
	row, col := si/cols, si%cols

	switch {
	case (row+1)*cols < size:
		m.cursor = m.offsets[fi] + min((row+1)*cols+col, size-1)
	case fi+1 < len(m.families):
		next := len(m.families[fi+1].Shades)
		m.cursor = m.offsets[fi+1] + min(col, next-1)
	}
}

// moveUp goes one row up, continuing into the previous family's last row
func (m *RootModel) moveUp() {
	if len(m.cells) == 0 {
		return
	}
	cols := m.layout().columns
	fi, si := m.position(m.cursor)
	row, col := si/cols, si%cols

	switch {
	case row > 0:
		m.cursor = m.offsets[fi] + (row-1)*cols + col
	case fi > 0:
		prev := len(m.families[fi-1].Shades)
		lastRow := (prev - 1) / cols
		m.cursor = m.offsets[fi-1] + min(lastRow*cols+col, prev-1)
	}
}

func (m *RootModel) nextFamily() {
	fi, _ := m.position(m.cursor)
	if fi+1 < len(m.families) {
		m.cursor = m.offsets[fi+1]
	}
}

func (m *RootModel) prevFamily() {
	fi, si := m.position(m.cursor)
	switch {
	case si > 0:
		m.cursor = m.offsets[fi]
	case fi > 0:
		m.cursor = m.offsets[fi-1]
	}
}

// sectionHeight is the number of lines family fi takes: title, rows, spacer
func (m RootModel) sectionHeight(fi int, lay gridLayout) int {
	rows := (len(m.families[fi].Shades) + lay.columns - 1) / lay.columns
	return 1 + rows*lay.cellHeight + 1
}

// cursorLines returns the first and one-past-last grid line of the cursor's
// row. The first row of a family includes the family title.
func (m RootModel) cursorLines() (int, int) {
	lay := m.layout()
	fi, si := m.position(m.cursor)

	top := 0
	for f := 0; f < fi; f++ {
		top += m.sectionHeight(f, lay)
	}
	row := si / lay.columns
	start := top + 1 + row*lay.cellHeight
	end := start + lay.cellHeight
	if row == 0 {
		start = top
	}
	return start, end
}

func (m RootModel) gridHeight() int {
	return max(m.height-HeaderHeight-lipgloss.Height(m.footerView()), 1)
}

// ensureVisible scrolls the grid so the cursor row is on screen
func (m *RootModel) ensureVisible() {
	if len(m.cells) == 0 {
		m.scrollOffset = 0
		return
	}
	vh := m.gridHeight()
	top, bottom := m.cursorLines()

	if top < m.scrollOffset {
		m.scrollOffset = top
	}
	if bottom > m.scrollOffset+vh {
		m.scrollOffset = bottom - vh
	}
	m.scrollOffset = max(m.scrollOffset, 0)
}

// renderGridLines renders every family section; the view slices out what fits
func (m RootModel) renderGridLines() []string {
	lay := m.layout()
	titleStyle := lipgloss.NewStyle().Foreground(ColorNeonPink).Bold(true).PaddingLeft(GridPaddingX)
	activeFamily, _ := m.position(m.cursor)

	var lines []string
	for fi, f := range m.families {
		title := f.Name
		if fi == activeFamily {
			title = titleStyle.Underline(true).Render(title)
		} else {
			title = titleStyle.Render(title)
		}
		lines = append(lines, title)

		for start := 0; start < len(f.Shades); start += lay.columns {
			end := min(start+lay.columns, len(f.Shades))
			row := make([]string, 0, end-start+1)
			row = append(row, strings.Repeat(" ", GridPaddingX))
			for si := start; si < end; si++ {
				row = append(row, m.renderCell(m.offsets[fi]+si, lay))
			}
			joined := lipgloss.JoinHorizontal(lipgloss.Top, row...)
			lines = append(lines, strings.Split(joined, "\n")...)
		}
		lines = append(lines, "")
	}
	return lines
}

func (m RootModel) renderCell(i int, lay gridLayout) string {
	c := m.cells[i]

	ink := colors.InkOnLight
	if c.color.IsDark() {
		ink = colors.InkOnDark
	}

	name := c.shade.Name
	if i == m.cursor {
		name = CursorMarker + name
	}
	content := truncateString(name, lay.cellWidth) + "\n" +
		truncateString(strings.ToUpper(c.color.Hex()), lay.cellWidth)

	style := lipgloss.NewStyle().
		Width(lay.cellWidth).
		Height(lay.cellHeight).
		Background(c.bg).
		Foreground(ink).
		Align(lipgloss.Center, lipgloss.Center).
		MarginRight(CellGap)
	if i == m.cursor {
		style = style.Bold(true)
	}
	return style.Render(content)
}

func truncateString(s string, n int) string {
	runes := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
