package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shade-palette/shade/internal/clipboard"
	"github.com/shade-palette/shade/internal/colorspace"
	"github.com/shade-palette/shade/internal/config"
	"github.com/shade-palette/shade/internal/formats"
	"github.com/shade-palette/shade/internal/history"
	"github.com/shade-palette/shade/internal/palette"
	"github.com/shade-palette/shade/internal/tui/components"
)

type UIState int

const (
	GridState      UIState = iota // Palette grid
	QuickCopyState                // Quick copy popup over the grid
	DetailState                   // Notations of one color
)

// cell is a grid entry with its parsed color cached for rendering
type cell struct {
	shade palette.Shade
	color colorspace.Color
	bg    lipgloss.Color // opaque #rrggbb for the terminal
}

// target is the color a popup or detail view acts on
type target struct {
	color string
	name  string
}

// Options configures a RootModel
type Options struct {
	Palette   palette.Palette
	Settings  config.Settings
	Clipboard clipboard.Writer
	Reader    clipboard.Reader
	// Record stores a successful copy. Nil disables history.
	Record func(history.Entry) error
}

type RootModel struct {
	settings config.Settings
	families []palette.Family
	offsets  []int // index of each family's first cell
	cells    []cell

	width  int
	height int
	state  UIState

	// Navigation
	cursor       int // index into cells
	scrollOffset int // first visible grid line

	// Detail view and quick copy popup
	target    target
	detail    list.Model
	quickCopy list.Model
	swatch    lipgloss.Color

	help help.Model
	keys KeyMap

	toast   components.Toast
	toastID int

	clipboard clipboard.Writer
	reader    clipboard.Reader
	record    func(history.Entry) error
}

// NewRootModel builds the browser for a palette
func NewRootModel(opts Options) RootModel {
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.System{}
	}
	if opts.Reader == nil {
		opts.Reader = clipboard.System{}
	}

	families := opts.Palette.Families()
	offsets := make([]int, len(families))
	var cells []cell
	for fi, f := range families {
		offsets[fi] = len(cells)
		for si, hex := range f.Shades {
			c, _ := colorspace.ParseOrBlack(hex)
			cells = append(cells, cell{
				shade: palette.Shade{Family: f.Name, Index: si, Hex: hex, Name: palette.DisplayName(f.Name, si)},
				color: c,
				bg:    lipgloss.Color(c.Colorful().Hex()),
			})
		}
	}

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(ColorNeonCyan)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(ColorNeonCyan)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(ColorLightGray)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(ColorLightGray)

	return RootModel{
		settings:  opts.Settings,
		families:  families,
		offsets:   offsets,
		cells:     cells,
		state:     GridState,
		help:      h,
		keys:      DefaultKeyMap(opts.Settings.QuickCopy),
		clipboard: opts.Clipboard,
		reader:    opts.Reader,
		record:    opts.Record,
	}
}

func (m RootModel) Init() tea.Cmd {
	return nil
}

// State returns the active view
func (m RootModel) State() UIState {
	return m.state
}

// Selected returns the shade under the grid cursor
func (m RootModel) Selected() (palette.Shade, bool) {
	if m.cursor < 0 || m.cursor >= len(m.cells) {
		return palette.Shade{}, false
	}
	return m.cells[m.cursor].shade, true
}

// Toast returns the toast currently shown
func (m RootModel) Toast() components.Toast {
	return m.toast
}

// openDetail pushes the detail view for color
func (m *RootModel) openDetail(color, name string) {
	m.target = target{color: color, name: name}
	m.swatch = swatchColor(color)
	w, h := m.detailListSize()
	m.detail = NewEntryList(formats.Generate(color, name), m.swatch, false, w, h)
	m.state = DetailState
}

// openQuickCopy shows the popup of notations for color
func (m *RootModel) openQuickCopy(color, name string) {
	m.target = target{color: color, name: name}
	m.swatch = swatchColor(color)
	w, h := m.popupListSize()
	m.quickCopy = NewEntryList(formats.Generate(color, name), m.swatch, true, w, h)
	m.state = QuickCopyState
}

func (m RootModel) detailListSize() (int, int) {
	w := max(m.width-8, MinListWidth)
	// box border and padding take four lines
	h := max(m.height-HeaderHeight-lipgloss.Height(m.footerView())-4, 4)
	return w, h
}

// popupListSize fits every notation on a single page
func (m RootModel) popupListSize() (int, int) {
	return PopupWidth - PopupChrome, len(formats.Labels())
}

func (m *RootModel) resizeLists() {
	if m.state == DetailState {
		m.detail.SetSize(m.detailListSize())
	}
	if m.state == QuickCopyState {
		m.quickCopy.SetSize(m.popupListSize())
	}
}

func swatchColor(color string) lipgloss.Color {
	c, _ := colorspace.ParseOrBlack(color)
	return lipgloss.Color(c.Colorful().Hex())
}
