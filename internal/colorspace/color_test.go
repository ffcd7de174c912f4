package colorspace

import (
	"errors"
	"math"
	"testing"
)

func TestStringForms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		hex   string
		rgb   string
		hsl   string
		hwb   string
		cmyk  string
	}{
		{"pure red", "#FF0000", "#ff0000", "rgb(255, 0, 0)", "hsl(0, 100%, 50%)", "hwb(0 0% 0%)", "device-cmyk(0% 100% 100% 0%)"},
		{"black", "#000000", "#000000", "rgb(0, 0, 0)", "hsl(0, 0%, 0%)", "hwb(0 0% 100%)", "device-cmyk(0% 0% 0% 100%)"},
		{"white", "#ffffff", "#ffffff", "rgb(255, 255, 255)", "hsl(0, 0%, 100%)", "hwb(0 100% 0%)", "device-cmyk(0% 0% 0% 0%)"},
		{"mid gray", "#808080", "#808080", "rgb(128, 128, 128)", "hsl(0, 0%, 50%)", "hwb(0 50% 50%)", "device-cmyk(0% 0% 0% 49.8%)"},
		{"blue 500", "#3b82f6", "#3b82f6", "rgb(59, 130, 246)", "hsl(217, 91%, 60%)", "hwb(217 23% 4%)", "device-cmyk(76.02% 47.15% 0% 3.53%)"},
		{"short hex", "#0f0", "#00ff00", "rgb(0, 255, 0)", "hsl(120, 100%, 50%)", "hwb(120 0% 0%)", "device-cmyk(100% 0% 100% 0%)"},
		{"named", "Orange", "#ffa500", "rgb(255, 165, 0)", "hsl(39, 100%, 50%)", "hwb(39 0% 0%)", "device-cmyk(0% 35.29% 100% 0%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if got := c.Hex(); got != tt.hex {
				t.Errorf("Hex() = %q, want %q", got, tt.hex)
			}
			if got := c.RGBString(); got != tt.rgb {
				t.Errorf("RGBString() = %q, want %q", got, tt.rgb)
			}
			if got := c.HSLString(); got != tt.hsl {
				t.Errorf("HSLString() = %q, want %q", got, tt.hsl)
			}
			if got := c.HWBString(); got != tt.hwb {
				t.Errorf("HWBString() = %q, want %q", got, tt.hwb)
			}
			if got := c.CMYKString(); got != tt.cmyk {
				t.Errorf("CMYKString() = %q, want %q", got, tt.cmyk)
			}
		})
	}
}

func TestAlphaForms(t *testing.T) {
	c, err := Parse("#ff000080")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got := c.Hex(); got != "#ff000080" {
		t.Errorf("Hex() = %q, want #ff000080", got)
	}
	if got := c.RGBString(); got != "rgba(255, 0, 0, 0.5)" {
		t.Errorf("RGBString() = %q", got)
	}
	if got := c.HSLString(); got != "hsla(0, 100%, 50%, 0.5)" {
		t.Errorf("HSLString() = %q", got)
	}
	if got := c.HWBString(); got != "hwb(0 0% 0% / 0.5)" {
		t.Errorf("HWBString() = %q", got)
	}

	transparent := MustParse("transparent")
	if transparent.Alpha() != 0 {
		t.Errorf("transparent alpha = %v, want 0", transparent.Alpha())
	}
}

func TestLabAndLCh(t *testing.T) {
	black := MustParse("#000")
	if lab := black.Lab(); lab.L != 0 || lab.A != 0 || lab.B != 0 {
		t.Errorf("black Lab = %+v, want zeros", lab)
	}
	if lch := black.LCh(); lch.L != 0 || lch.C != 0 || lch.H != 0 {
		t.Errorf("black LCh = %+v, want zeros", lch)
	}

	white := MustParse("#fff").Lab()
	assertNear(t, "white L", white.L, 100, 0.01)
	assertNear(t, "white a", white.A, 0, 0.01)
	assertNear(t, "white b", white.B, 0, 0.01)

	// Reference values for sRGB red relative to D50.
	red := MustParse("red")
	lab := red.Lab()
	assertNear(t, "red L", lab.L, 54.29, 0.1)
	assertNear(t, "red a", lab.A, 80.8, 0.3)
	assertNear(t, "red b", lab.B, 69.9, 0.3)

	lch := red.LCh()
	assertNear(t, "red LCh L", lch.L, lab.L, 0.001)
	assertNear(t, "red chroma", lch.C, math.Hypot(lab.A, lab.B), 0.02)
	assertNear(t, "red hue", lch.H, 40.85, 0.3)
	if want := (LCh{L: 54.29, C: 106.84, H: 40.85, Alpha: 1}); lch != want {
		t.Errorf("red LCh = %+v, want %+v", lch, want)
	}
	if want := (Lab{L: 54.29, A: 80.81, B: 69.89, Alpha: 1}); lab != want {
		t.Errorf("red Lab = %+v, want %+v", lab, want)
	}

	gray := MustParse("#fafafa")
	if lab := gray.Lab(); lab.A != 0 || lab.B != 0 {
		t.Errorf("gray Lab = %+v, want a = b = 0", lab)
	}
	if lch := gray.LCh(); lch.C != 0 || lch.H != 0 {
		t.Errorf("gray LCh = %+v, want c = h = 0", lch)
	}

	// a rounds to zero here; the hue must still follow b.
	assertNear(t, "olive hue", MustParse("#807028").LCh().H, 90, 0.5)

	// Negative b wraps the hue into 0-360.
	blue := MustParse("#0000ff").LCh()
	if blue.H < 0 || blue.H >= 360 {
		t.Errorf("blue hue = %v, want within [0, 360)", blue.H)
	}
	assertNear(t, "blue hue", blue.H, 301.36, 0.5)
}

func TestParseRoundTrip(t *testing.T) {
	inputs := []string{"#3b82f6", "#ef4444", "#fafaf9", "#0c0a09", "#a3e635", "#7c3aed"}

	for _, in := range inputs {
		c := MustParse(in)
		forms := map[string]string{
			"hex":  c.Hex(),
			"rgb":  c.RGBString(),
			"hsl":  c.HSLString(),
			"hwb":  c.HWBString(),
			"cmyk": c.CMYKString(),
			"lab":  "lab(" + Num(c.Lab().L) + " " + Num(c.Lab().A) + " " + Num(c.Lab().B) + ")",
			"lch":  "lch(" + Num(c.LCh().L) + " " + Num(c.LCh().C) + " " + Num(c.LCh().H) + ")",
		}
		for kind, s := range forms {
			back, err := Parse(s)
			if err != nil {
				t.Errorf("%s: Parse(%q) error: %v", in, s, err)
				continue
			}
			// hsl and hwb are rounded to whole percents, which can move a channel by a few units.
			tolerance := 1.0
			if kind == "hsl" || kind == "hwb" {
				tolerance = 4
			}
			assertChannelsNear(t, in+" via "+kind, back.RGB(), c.RGB(), tolerance)
		}
		if got := MustParse(c.Hex()).Hex(); got != c.Hex() {
			t.Errorf("hex round trip of %s = %s", in, got)
		}
	}
}

func TestParseSyntaxVariants(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"rgb(255 0 0)", "#ff0000"},
		{"rgba(255, 0, 0, 1)", "#ff0000"},
		{"rgb(100%, 0%, 0%)", "#ff0000"},
		{"rgb(255 0 0 / 50%)", "#ff000080"},
		{"  #FF0000  ", "#ff0000"},
		{"hsl(120deg 100% 50%)", "#00ff00"},
		{"hsl(0.5turn, 100%, 50%)", "#00ffff"},
		{"hsl(-120, 100%, 50%)", "#0000ff"},
		{"hwb(0 100% 100%)", "#808080"},
		{"device-cmyk(0% 100% 100% 0%)", "#ff0000"},
		{"device-cmyk(0 1 1 0)", "#ff0000"},
		{"lab(0 0 0)", "#000000"},
		{"lch(100 0 0)", "#ffffff"},
		{"#f008", "#ff000087"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if got := c.Hex(); got != tt.want {
				t.Errorf("Parse(%q).Hex() = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"#12",
		"#12345",
		"#gggggg",
		"ff0000",
		"rgb(1, 2)",
		"rgb(1, 2, 3, 4, 5)",
		"rgb(a, b, c)",
		"rgb(1, 2 / 3)",
		"hsl(x, 10%, 10%)",
		"cmyk(0, 0, 0, 0)",
		"lab(nan 0 0)",
		"notacolor",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			if !errors.Is(err, ErrInvalidColor) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidColor", in, err)
			}
			c, ok := ParseOrBlack(in)
			if ok {
				t.Errorf("ParseOrBlack(%q) reported success", in)
			}
			if c.Hex() != "#000000" {
				t.Errorf("ParseOrBlack(%q) = %s, want black", in, c.Hex())
			}
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic on invalid input")
		}
	}()
	MustParse("nope")
}

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{255, "255"},
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{53.24, "53.24"},
		{-12.5, "-12.5"},
	}
	for _, tt := range tests {
		if got := Num(tt.in); got != tt.want {
			t.Errorf("Num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRoundHalfUp(t *testing.T) {
	if got := round(0.5, 0); got != 1 {
		t.Errorf("round(0.5) = %v, want 1", got)
	}
	if got := round(-0.5, 0); got != 0 || math.Signbit(got) {
		t.Errorf("round(-0.5) = %v, want +0", got)
	}
	if got := round(49.80392, 2); got != 49.8 {
		t.Errorf("round(49.80392, 2) = %v, want 49.8", got)
	}
}

func TestIsDark(t *testing.T) {
	if !MustParse("#0f172a").IsDark() {
		t.Error("slate 900 should be dark")
	}
	if MustParse("#f8fafc").IsDark() {
		t.Error("slate 50 should be light")
	}
}

func assertNear(t *testing.T, what string, got, want, delta float64) {
	t.Helper()
	if math.Abs(got-want) > delta {
		t.Errorf("%s = %v, want %v ± %v", what, got, want, delta)
	}
}

func assertChannelsNear(t *testing.T, what string, got, want RGB, delta float64) {
	t.Helper()
	if math.Abs(got.R-want.R) > delta || math.Abs(got.G-want.G) > delta || math.Abs(got.B-want.B) > delta {
		t.Errorf("%s: got %+v, want %+v", what, got, want)
	}
}
