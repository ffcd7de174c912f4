package colors

import "github.com/charmbracelet/lipgloss"

// === Chrome ===
var (
	NeonPink  = lipgloss.Color("#ff79c6")
	NeonCyan  = lipgloss.Color("#8be9fd")
	Gray      = lipgloss.Color("#44475a") // Borders
	LightGray = lipgloss.Color("#a9b1d6") // Secondary text
	White     = lipgloss.Color("#f8f8f2")
)

// === Toasts ===
var (
	Success = lipgloss.Color("#50fa7b")
	Error   = lipgloss.Color("#ff5555")
	Info    = lipgloss.Color("#8be9fd")
)

// === Text drawn on top of a palette cell ===
var (
	InkOnLight = lipgloss.Color("#09090b")
	InkOnDark  = lipgloss.Color("#fafafa")
)
