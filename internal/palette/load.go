package palette

import (
	"fmt"
	"os"

	"github.com/h2non/filetype"
	"gopkg.in/yaml.v3"
)

// Parse reads a palette from YAML. The document is a list of families:
//
//	- name: Brand
//	  shades: ["#fdf2f8", "#ec4899", "#500724"]
//
// Binary input such as an image is rejected before decoding.
func Parse(data []byte) (Palette, error) {
	if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
		return Palette{}, fmt.Errorf("%w: got %s data, want YAML", ErrInvalidPalette, kind.MIME.Value)
	}
	var families []Family
	if err := yaml.Unmarshal(data, &families); err != nil {
		return Palette{}, fmt.Errorf("%w: %v", ErrInvalidPalette, err)
	}
	return New(families)
}

// Load reads a YAML palette file.
func Load(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Palette{}, fmt.Errorf("failed to read palette: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return Palette{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Marshal encodes the palette in the format Parse reads.
func (p Palette) Marshal() ([]byte, error) {
	return yaml.Marshal(p.families)
}
