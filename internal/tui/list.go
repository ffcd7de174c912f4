package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shade-palette/shade/internal/formats"
)

// EntryItem implements list.Item for one notation of a color
type EntryItem struct {
	entry  formats.Entry
	swatch lipgloss.Color
}

func (i EntryItem) Title() string       { return i.entry.Label }
func (i EntryItem) Description() string { return i.entry.Value }
func (i EntryItem) FilterValue() string { return i.entry.Label }

// entryDelegate renders entries either as two-line rows (detail view) or
// as single "LABEL  value" lines (quick copy popup).
type entryDelegate struct {
	compact bool
}

func (d entryDelegate) Height() int {
	if d.compact {
		return 1
	}
	return 2
}

func (d entryDelegate) Spacing() int {
	if d.compact {
		return 0
	}
	return 1
}

func (d entryDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

func (d entryDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(EntryItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	titleStyle := lipgloss.NewStyle().
		Foreground(ColorWhite).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(ColorLightGray)

	if isSelected {
		titleStyle = titleStyle.Foreground(ColorNeonPink)
		descStyle = descStyle.Foreground(ColorNeonCyan)
	}

	// Left border indicator for selected item
	prefix := "  "
	if isSelected {
		prefix = lipgloss.NewStyle().
			Foreground(ColorNeonPink).
			Render("▌ ")
	}

	if d.compact {
		label := titleStyle.Width(CompactLabelWidth).Render(truncateString(i.Title(), CompactLabelWidth-1))
		valueWidth := m.Width() - lipgloss.Width(prefix) - CompactLabelWidth
		value := descStyle.Render(truncateString(i.Description(), valueWidth))
		fmt.Fprint(w, prefix+label+value)
		return
	}

	width := max(m.Width()-4, MinListWidth)
	swatch := lipgloss.NewStyle().Foreground(i.swatch).Render(SwatchGlyph) + " "

	line1 := prefix + swatch + titleStyle.Render(truncateString(i.Title(), width-2))
	line2 := prefix + "  " + descStyle.Render(truncateString(i.Description(), width-2))
	fmt.Fprintf(w, "%s\n%s", line1, line2)
}

// NewEntryList creates a list.Model of color notations
func NewEntryList(entries []formats.Entry, swatch lipgloss.Color, compact bool, width, height int) list.Model {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = EntryItem{entry: e, swatch: swatch}
	}

	l := list.New(items, entryDelegate{compact: compact}, width, height)
	l.SetShowTitle(false) // The surrounding box carries the title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	// The compact list is sized to show every entry at once
	l.SetShowPagination(!compact)
	// esc and q belong to the views, not the list
	l.KeyMap.Quit.SetEnabled(false)

	l.Styles.NoItems = lipgloss.NewStyle().
		Foreground(ColorNeonCyan).
		Padding(2, 0)

	l.SetStatusBarItemName("format", "formats")

	return l
}

// selectedEntry returns the entry under the list cursor
func selectedEntry(l list.Model) (formats.Entry, bool) {
	if item := l.SelectedItem(); item != nil {
		if ei, ok := item.(EntryItem); ok {
			return ei.entry, true
		}
	}
	return formats.Entry{}, false
}
