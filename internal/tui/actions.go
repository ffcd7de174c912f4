package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shade-palette/shade/internal/clipboard"
	"github.com/shade-palette/shade/internal/formats"
	"github.com/shade-palette/shade/internal/palette"
)

// Action is something the user can do with a color. Run builds the command
// that carries it out.
type Action struct {
	Title string
	Run   func() tea.Cmd
}

// openDetailMsg pushes the detail view for a color
type openDetailMsg struct {
	color string
	name  string
}

// openQuickCopyMsg opens the quick copy popup for a color
type openQuickCopyMsg struct {
	color string
	name  string
}

// CopiedMsg reports the outcome of a clipboard write
type CopiedMsg struct {
	Color string
	Name  string
	Entry formats.Entry
	Err   error
}

// clipboardColorMsg carries a color read from the clipboard
type clipboardColorMsg struct {
	color string
	ok    bool
}

// toastExpiredMsg hides the toast with the given id
type toastExpiredMsg struct {
	id int
}

func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// copyCmd writes the entry's value to the clipboard exactly once
func copyCmd(w clipboard.Writer, color, name string, e formats.Entry) tea.Cmd {
	return func() tea.Msg {
		return CopiedMsg{Color: color, Name: name, Entry: e, Err: w.Copy(e.Value)}
	}
}

func readClipboardCmd(r clipboard.Reader) tea.Cmd {
	return func() tea.Msg {
		color, ok := clipboard.ReadColor(r)
		return clipboardColorMsg{color: color, ok: ok}
	}
}

// shadeActions lists what can be done with a grid cell, primary action first.
func (m RootModel) shadeActions(s palette.Shade) []Action {
	quick := m.settings.QuickCopy
	return []Action{
		{
			Title: "Show Details",
			Run:   func() tea.Cmd { return send(openDetailMsg{color: s.Hex, name: s.Name}) },
		},
		{
			Title: "Quick Copy",
			Run:   func() tea.Cmd { return send(openQuickCopyMsg{color: s.Hex, name: s.Name}) },
		},
		{
			Title: "Copy " + quick,
			Run: func() tea.Cmd {
				e, ok := formats.Find(formats.Generate(s.Hex, s.Name), quick)
				if !ok {
					return nil
				}
				return copyCmd(m.clipboard, s.Hex, s.Name, e)
			},
		},
	}
}

// entryAction copies one row of the detail view or the quick copy popup
func (m RootModel) entryAction(color, name string, e formats.Entry) Action {
	return Action{
		Title: "Copy to Clipboard",
		Run:   func() tea.Cmd { return copyCmd(m.clipboard, color, name, e) },
	}
}
