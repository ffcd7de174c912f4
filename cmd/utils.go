package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/shade-palette/shade/internal/clipboard"
	"github.com/shade-palette/shade/internal/colorspace"
	"github.com/shade-palette/shade/internal/formats"
)

// resolveColor turns command arguments into a color and display name.
// Arguments are joined so unquoted input like `rgb(1, 2, 3)` or `red 550`
// works. A palette name resolves to its shade; any other input must parse as
// a color. Without arguments the clipboard is read.
func resolveColor(args []string, name string) (string, string, error) {
	input := strings.TrimSpace(strings.Join(args, " "))

	if input == "" {
		c, ok := clipboard.ReadColor(clipboardReader)
		if !ok {
			return "", "", fmt.Errorf("clipboard does not contain a color")
		}
		input = c
	} else if s, ok := activePalette.Lookup(input); ok {
		if name == "" {
			name = s.Name
		}
		return s.Hex, name, nil
	}

	if err := formats.Validate(input); err != nil {
		return "", "", err
	}

	if name == "" {
		name = input
		if c, err := colorspace.Parse(input); err == nil {
			if s, ok := activePalette.FindColor(c); ok {
				name = s.Name
			}
		}
	}
	return input, name, nil
}

// Output styling, disabled automatically when stdout is not a terminal

func successText(format string, a ...any) string {
	return color.New(color.FgGreen).Sprintf(format, a...)
}

func errorText(format string, a ...any) string {
	return color.New(color.FgRed).Sprintf(format, a...)
}

func mutedText(format string, a ...any) string {
	return color.New(color.FgHiBlack).Sprintf(format, a...)
}

func headingText(format string, a ...any) string {
	return color.New(color.FgHiMagenta, color.Bold).Sprintf(format, a...)
}
