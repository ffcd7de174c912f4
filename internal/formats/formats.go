// Package formats turns a color into the list of notations the browser
// shows and copies.
package formats

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shade-palette/shade/internal/colorspace"
)

// Labels of the generated entries, in display order.
const (
	LabelName     = "NAME"
	LabelHex      = "HEX"
	LabelRGB      = "RGB"
	LabelRGBOnly  = "Only RGB Value"
	LabelHSL      = "HSL"
	LabelHSLOnly  = "Only HSL Value"
	LabelHWB      = "HWB"
	LabelHWBOnly  = "Only HWB Value"
	LabelCMYK     = "CMYK"
	LabelCMYKOnly = "Only CMYK Value"
	LabelLab      = "LAB"
	LabelLabOnly  = "Only LAB Value"
	LabelLCh      = "LCH"
	LabelLChOnly  = "Only LCH Value"
)

var labels = []string{
	LabelName, LabelHex,
	LabelRGB, LabelRGBOnly,
	LabelHSL, LabelHSLOnly,
	LabelHWB, LabelHWBOnly,
	LabelCMYK, LabelCMYKOnly,
	LabelLab, LabelLabOnly,
	LabelLCh, LabelLChOnly,
}

// Entry is one labelled notation of a color.
type Entry struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Labels returns the entry labels in the order Generate produces them.
func Labels() []string {
	return append([]string(nil), labels...)
}

// Generate expresses color in every supported notation. name is the display
// name of the color; its whitespace is replaced by "/" in the NAME entry.
//
// color is not validated: input that does not parse is rendered as black.
// Use Validate first when invalid input should be reported.
func Generate(color, name string) []Entry {
	c, _ := colorspace.ParseOrBlack(color)

	rgb := c.RGB()
	hsl := c.HSL()
	hwb := c.HWB()
	cmyk := c.CMYK()
	lab := c.Lab()
	lch := c.LCh()

	labValues := join(lab.L, lab.A, lab.B)
	lchValues := join(lch.L, lch.C, lch.H)

	return []Entry{
		{LabelName, slashName(name)},
		{LabelHex, strings.ToUpper(c.Hex())},
		{LabelRGB, c.RGBString()},
		{LabelRGBOnly, join(rgb.R, rgb.G, rgb.B)},
		{LabelHSL, c.HSLString()},
		{LabelHSLOnly, join(hsl.H, hsl.S, hsl.L)},
		{LabelHWB, c.HWBString()},
		{LabelHWBOnly, join(hwb.H, hwb.W, hwb.B)},
		{LabelCMYK, c.CMYKString()},
		{LabelCMYKOnly, join(cmyk.C, cmyk.M, cmyk.Y, cmyk.K)},
		{LabelLab, fmt.Sprintf("lab(%s)", labValues)},
		{LabelLabOnly, labValues},
		{LabelLCh, fmt.Sprintf("lch(%s)", lchValues)},
		{LabelLChOnly, lchValues},
	}
}

// Validate reports whether color can be parsed.
func Validate(color string) error {
	_, err := colorspace.Parse(color)
	return err
}

// Find returns the entry with the given label, ignoring case.
func Find(entries []Entry, label string) (Entry, bool) {
	for _, e := range entries {
		if strings.EqualFold(e.Label, strings.TrimSpace(label)) {
			return e, true
		}
	}
	return Entry{}, false
}

// IsLabel reports whether label names one of the generated entries.
func IsLabel(label string) bool {
	for _, l := range labels {
		if strings.EqualFold(l, strings.TrimSpace(label)) {
			return true
		}
	}
	return false
}

func slashName(name string) string {
	return strings.Map(func(r rune) rune {
		if isNameSpace(r) {
			return '/'
		}
		return r
	}, name)
}

// isNameSpace reports the whitespace replaced in names: Unicode spaces and
// line breaks plus the byte order mark U+FEFF. NEL (U+0085) is kept.
func isNameSpace(r rune) bool {
	switch r {
	case '\u0085':
		return false
	case '\ufeff':
		return true
	}
	return unicode.IsSpace(r)
}

func join(values ...float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = colorspace.Num(v)
	}
	return strings.Join(parts, " ")
}
