package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	NextFamily key.Binding
	PrevFamily key.Binding
	Top        key.Binding
	Bottom     key.Binding

	Open        key.Binding
	QuickCopy   key.Binding
	CopyDefault key.Binding
	Paste       key.Binding

	Copy key.Binding
	Back key.Binding
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings. quickLabel names the
// format copied by the one-key copy.
func DefaultKeyMap(quickLabel string) KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("j/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("h/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("l/→", "right"),
		),
		NextFamily: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next family"),
		),
		PrevFamily: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev family"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "details"),
		),
		QuickCopy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "quick copy"),
		),
		CopyDefault: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy "+quickLabel),
		),
		Paste: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "from clipboard"),
		),
		Copy: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "copy"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// gridHelp is the help.KeyMap shown under the palette grid
type gridHelp struct{ k KeyMap }

func (h gridHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Open, h.k.QuickCopy, h.k.CopyDefault, h.k.Help, h.k.Quit}
}

func (h gridHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.Up, h.k.Down, h.k.Left, h.k.Right},
		{h.k.NextFamily, h.k.PrevFamily, h.k.Top, h.k.Bottom},
		{h.k.Open, h.k.QuickCopy, h.k.CopyDefault, h.k.Paste},
		{h.k.Help, h.k.Quit},
	}
}

// detailHelp is the help.KeyMap shown under the detail list
type detailHelp struct{ k KeyMap }

func (h detailHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Copy, h.k.Back, h.k.Help}
}

func (h detailHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.Up, h.k.Down},
		{h.k.Copy, h.k.Back},
		{h.k.Help},
	}
}

// popupHelp is the help.KeyMap shown inside the quick copy popup
type popupHelp struct{ k KeyMap }

func (h popupHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Up, h.k.Down, h.k.Copy, h.k.Back}
}

func (h popupHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
