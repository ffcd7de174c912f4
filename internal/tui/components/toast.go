package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/shade-palette/shade/internal/tui/colors"
)

// ToastKind is the severity of a toast
type ToastKind int

const (
	ToastNone ToastKind = iota
	ToastSuccess
	ToastError
	ToastInfo
)

type toastInfo struct {
	icon  string
	color lipgloss.Color
}

var toastMap = map[ToastKind]toastInfo{
	ToastSuccess: {"✔", colors.Success},
	ToastError:   {"✖", colors.Error},
	ToastInfo:    {"•", colors.Info},
}

// Icon returns the toast icon
func (k ToastKind) Icon() string {
	if info, ok := toastMap[k]; ok {
		return info.icon
	}
	return ""
}

// Color returns the toast color
func (k ToastKind) Color() lipgloss.Color {
	if info, ok := toastMap[k]; ok {
		return info.color
	}
	return colors.Gray
}

// Toast is a short-lived message shown in the footer
type Toast struct {
	Kind    ToastKind
	Message string
}

// NewToast creates a toast
func NewToast(kind ToastKind, message string) Toast {
	return Toast{Kind: kind, Message: message}
}

// Visible reports whether there is anything to show
func (t Toast) Visible() bool {
	return t.Kind != ToastNone && t.Message != ""
}

// Render returns the styled icon and message, or an empty string when hidden
func (t Toast) Render() string {
	if !t.Visible() {
		return ""
	}
	return lipgloss.NewStyle().Foreground(t.Kind.Color()).Bold(t.Kind == ToastError).
		Render(t.Kind.Icon() + " " + t.Message)
}
