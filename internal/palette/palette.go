// Package palette holds the color families shown by the browser.
//
// A Palette is immutable once built: constructors copy their input and
// accessors hand out copies, so a palette can be shared freely.
package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shade-palette/shade/internal/colorspace"
)

// ErrInvalidPalette is returned when palette data fails validation.
var ErrInvalidPalette = errors.New("invalid palette")

// Family is a named, ordered sequence of shades.
type Family struct {
	Name   string   `yaml:"name" json:"name"`
	Shades []string `yaml:"shades" json:"shades"`
}

// Shade is one cell of the palette grid.
type Shade struct {
	Family string `json:"family"`
	Index  int    `json:"index"`
	Hex    string `json:"hex"`
	Name   string `json:"name"`
}

// Palette is an ordered collection of families.
type Palette struct {
	families []Family
}

var defaultPalette = mustNew(defaultFamilies)

// Default returns the compiled-in palette.
func Default() Palette {
	return defaultPalette
}

// New validates families and builds a palette from a copy of them. Every
// family needs a unique non-empty name and at least one shade, and every shade
// must be a parseable color.
func New(families []Family) (Palette, error) {
	if len(families) == 0 {
		return Palette{}, fmt.Errorf("%w: no families", ErrInvalidPalette)
	}

	seen := make(map[string]bool, len(families))
	out := make([]Family, 0, len(families))
	for i, f := range families {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			return Palette{}, fmt.Errorf("%w: family %d has no name", ErrInvalidPalette, i+1)
		}
		key := strings.ToLower(name)
		if seen[key] {
			return Palette{}, fmt.Errorf("%w: duplicate family %q", ErrInvalidPalette, name)
		}
		seen[key] = true

		if len(f.Shades) == 0 {
			return Palette{}, fmt.Errorf("%w: family %q has no shades", ErrInvalidPalette, name)
		}
		shades := make([]string, len(f.Shades))
		for j, s := range f.Shades {
			if _, err := colorspace.Parse(s); err != nil {
				return Palette{}, fmt.Errorf("%w: %s shade %d: %v", ErrInvalidPalette, name, j+1, err)
			}
			shades[j] = strings.TrimSpace(s)
		}
		out = append(out, Family{Name: name, Shades: shades})
	}
	return Palette{families: out}, nil
}

func mustNew(families []Family) Palette {
	p, err := New(families)
	if err != nil {
		panic(err)
	}
	return p
}

// DisplayName names the shade at index within family using the design-token
// style scale: index 0 is 50, index 1 is 150, and so on.
func DisplayName(family string, index int) string {
	return fmt.Sprintf("%s %d", family, index*100+50)
}

// Len returns the number of shades across all families.
func (p Palette) Len() int {
	n := 0
	for _, f := range p.families {
		n += len(f.Shades)
	}
	return n
}

// Families returns a copy of the palette's families.
func (p Palette) Families() []Family {
	out := make([]Family, len(p.families))
	for i, f := range p.families {
		out[i] = Family{Name: f.Name, Shades: append([]string(nil), f.Shades...)}
	}
	return out
}

// Family finds a family by name, ignoring case.
func (p Palette) Family(name string) (Family, bool) {
	for _, f := range p.families {
		if strings.EqualFold(f.Name, strings.TrimSpace(name)) {
			return Family{Name: f.Name, Shades: append([]string(nil), f.Shades...)}, true
		}
	}
	return Family{}, false
}

// Shades enumerates every shade in palette order.
func (p Palette) Shades() []Shade {
	out := make([]Shade, 0, p.Len())
	for _, f := range p.families {
		for i, hex := range f.Shades {
			out = append(out, Shade{
				Family: f.Name,
				Index:  i,
				Hex:    hex,
				Name:   DisplayName(f.Name, i),
			})
		}
	}
	return out
}

// Lookup finds a shade by display name. Matching ignores case and accepts
// "/" in place of the space, so both "Red 50" and "red/50" resolve.
func (p Palette) Lookup(name string) (Shade, bool) {
	want := normalizeName(name)
	for _, s := range p.Shades() {
		if normalizeName(s.Name) == want {
			return s, true
		}
	}
	return Shade{}, false
}

// FindColor returns the first shade with the same color as c.
func (p Palette) FindColor(c colorspace.Color) (Shade, bool) {
	for _, s := range p.Shades() {
		if sc, err := colorspace.Parse(s.Hex); err == nil && sc.Equal(c) {
			return s, true
		}
	}
	return Shade{}, false
}

func normalizeName(name string) string {
	return strings.Join(strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == '/' || r == ' ' || r == '\t'
	}), " ")
}
