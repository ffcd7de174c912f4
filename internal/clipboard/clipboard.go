package clipboard

import (
	"strings"

	"github.com/atotto/clipboard"

	"github.com/shade-palette/shade/internal/colorspace"
)

// Writer places text on a clipboard.
type Writer interface {
	Copy(text string) error
}

// Reader returns the clipboard's current text.
type Reader interface {
	Paste() (string, error)
}

// System is the operating system clipboard.
type System struct{}

// Copy writes text to the system clipboard.
func (System) Copy(text string) error {
	return clipboard.WriteAll(text)
}

// Paste reads text from the system clipboard.
func (System) Paste() (string, error) {
	return clipboard.ReadAll()
}

// Unsupported reports whether no clipboard utility was found on this system.
func Unsupported() bool {
	return clipboard.Unsupported
}

const maxColorLength = 256

// ExtractColor returns text trimmed if it parses as a color, or empty string otherwise
func ExtractColor(text string) string {
	text = strings.TrimSpace(text)

	// Quick reject: empty, too long or spans lines
	if text == "" || len(text) > maxColorLength || strings.ContainsAny(text, "\n\r") {
		return ""
	}

	if _, err := colorspace.Parse(text); err != nil {
		return ""
	}
	return text
}

// ReadColor reads r and returns the color it holds, if any.
func ReadColor(r Reader) (string, bool) {
	text, err := r.Paste()
	if err != nil {
		return "", false
	}
	c := ExtractColor(text)
	return c, c != ""
}
