package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shade-palette/shade/internal/history"
	"github.com/shade-palette/shade/internal/tui/components"
	"github.com/shade-palette/shade/internal/utils"
)

// Update handles messages and updates the model
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeLists()
		m.ensureVisible()
		return m, nil

	case openDetailMsg:
		utils.Debug("Opening details for %s (%s)", msg.name, msg.color)
		m.openDetail(msg.color, msg.name)
		return m, nil

	case openQuickCopyMsg:
		m.openQuickCopy(msg.color, msg.name)
		return m, nil

	case clipboardColorMsg:
		if !msg.ok {
			return m, m.showToast(components.ToastError, "Clipboard does not contain a color")
		}
		utils.Debug("Opening clipboard color %s", msg.color)
		m.openDetail(msg.color, ClipboardName)
		return m, m.showToast(components.ToastInfo, "Showing "+msg.color+" from clipboard")

	case CopiedMsg:
		return m.handleCopied(msg)

	case toastExpiredMsg:
		if msg.id == m.toastID {
			m.toast = components.Toast{}
			m.ensureVisible()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.state {
		case GridState:
			return m.updateGrid(msg)
		case QuickCopyState:
			return m.updateQuickCopy(msg)
		case DetailState:
			return m.updateDetail(msg)
		}
	}

	return m, nil
}

func (m RootModel) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	shade, ok := m.Selected()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.moveUp()
	case key.Matches(msg, m.keys.Down):
		m.moveDown()
	case key.Matches(msg, m.keys.Left):
		m.moveLeft()
	case key.Matches(msg, m.keys.Right):
		m.moveRight()
	case key.Matches(msg, m.keys.NextFamily):
		m.nextFamily()
	case key.Matches(msg, m.keys.PrevFamily):
		m.prevFamily()
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = max(len(m.cells)-1, 0)
	case key.Matches(msg, m.keys.Paste):
		return m, readClipboardCmd(m.reader)
	case ok && key.Matches(msg, m.keys.Open):
		return m, m.shadeActions(shade)[0].Run()
	case ok && key.Matches(msg, m.keys.QuickCopy):
		return m, m.shadeActions(shade)[1].Run()
	case ok && key.Matches(msg, m.keys.CopyDefault):
		return m, m.shadeActions(shade)[2].Run()
	}

	m.ensureVisible()
	return m, nil
}

func (m RootModel) updateQuickCopy(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.state = GridState
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		m.state = GridState
		e, ok := selectedEntry(m.quickCopy)
		if !ok {
			return m, nil
		}
		return m, m.entryAction(m.target.color, m.target.name, e).Run()
	case key.Matches(msg, m.keys.Help):
		return m, nil
	}

	var cmd tea.Cmd
	m.quickCopy, cmd = m.quickCopy.Update(msg)
	return m, cmd
}

func (m RootModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.state = GridState
		m.ensureVisible()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		e, ok := selectedEntry(m.detail)
		if !ok {
			return m, nil
		}
		return m, m.entryAction(m.target.color, m.target.name, e).Run()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeLists()
		return m, nil
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

// handleCopied reports a clipboard write and records successful ones
func (m RootModel) handleCopied(msg CopiedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		utils.Debug("Copy of %s for %s failed: %v", msg.Entry.Label, msg.Name, msg.Err)
		return m, m.showToast(components.ToastError, fmt.Sprintf("Failed to copy %s: %v", msg.Entry.Label, msg.Err))
	}

	utils.Debug("Copied %s of %s: %s", msg.Entry.Label, msg.Name, msg.Entry.Value)
	if m.record != nil {
		err := m.record(history.Entry{
			Color: msg.Color,
			Name:  msg.Name,
			Label: msg.Entry.Label,
			Value: msg.Entry.Value,
		})
		if err != nil {
			utils.Debug("Failed to record copy: %v", err)
		}
	}
	return m, m.showToast(components.ToastSuccess, fmt.Sprintf("Copied %s to clipboard", msg.Entry.Label))
}

// showToast replaces the current toast and schedules its removal
func (m *RootModel) showToast(kind components.ToastKind, text string) tea.Cmd {
	m.toastID++
	m.toast = components.NewToast(kind, text)
	m.ensureVisible()

	d := time.Duration(m.settings.ToastSeconds) * time.Second
	if d <= 0 {
		return nil
	}
	id := m.toastID
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}
