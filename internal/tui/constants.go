package tui

import "github.com/shade-palette/shade/internal/tui/colors"

const (
	// Grid layout
	GridPaddingX  = 1
	CellGap       = 1
	MinCellWidth  = 8
	MinCellHeight = 2
	// A terminal cell is roughly twice as tall as it is wide
	CellAspect = 2.0

	// Chrome
	HeaderHeight = 2
	MinListWidth = 20

	// Quick copy popup. The list column is wide enough for the longest
	// value, "device-cmyk(33.33% 33.33% 33.33% 33.33% / 0.333)".
	PopupWidth        = 76
	PopupChrome       = 6 // border and horizontal padding
	CompactLabelWidth = 18

	// Marker drawn in front of the selected cell's name
	CursorMarker = "▶ "
	SwatchGlyph  = "●"

	// Name of a color opened from the clipboard
	ClipboardName = "Clipboard"
)

// Aliases used throughout the views
var (
	ColorNeonPink  = colors.NeonPink
	ColorNeonCyan  = colors.NeonCyan
	ColorLightGray = colors.LightGray
	ColorWhite     = colors.White
)
