package colorspace

import (
	"fmt"
	"strconv"
	"strings"
)

// Hex returns the lowercase #rrggbb form, or #rrggbbaa when the color is not opaque.
func (c Color) Hex() string {
	rgb := c.RGB()
	var sb strings.Builder
	sb.WriteByte('#')
	for _, v := range []float64{rgb.R, rgb.G, rgb.B} {
		fmt.Fprintf(&sb, "%02x", int(v))
	}
	if rgb.A < 1 {
		fmt.Fprintf(&sb, "%02x", int(round(rgb.A*255, 0)))
	}
	return sb.String()
}

// RGBString returns rgb(r, g, b), or rgba(r, g, b, a) for translucent colors.
func (c Color) RGBString() string {
	v := c.RGB()
	if v.A < 1 {
		return fmt.Sprintf("rgba(%s, %s, %s, %s)", Num(v.R), Num(v.G), Num(v.B), Num(v.A))
	}
	return fmt.Sprintf("rgb(%s, %s, %s)", Num(v.R), Num(v.G), Num(v.B))
}

// HSLString returns hsl(h, s%, l%), or hsla(h, s%, l%, a) for translucent colors.
func (c Color) HSLString() string {
	v := c.HSL()
	if v.A < 1 {
		return fmt.Sprintf("hsla(%s, %s%%, %s%%, %s)", Num(v.H), Num(v.S), Num(v.L), Num(v.A))
	}
	return fmt.Sprintf("hsl(%s, %s%%, %s%%)", Num(v.H), Num(v.S), Num(v.L))
}

// HWBString returns hwb(h w% b%) with an optional "/ a" alpha component.
func (c Color) HWBString() string {
	v := c.HWB()
	return fmt.Sprintf("hwb(%s %s%% %s%%%s)", Num(v.H), Num(v.W), Num(v.B), alphaSuffix(v.A))
}

// CMYKString returns device-cmyk(c% m% y% k%) with an optional "/ a" alpha component.
func (c Color) CMYKString() string {
	v := c.CMYK()
	return fmt.Sprintf("device-cmyk(%s%% %s%% %s%% %s%%%s)", Num(v.C), Num(v.M), Num(v.Y), Num(v.K), alphaSuffix(v.A))
}

// String implements fmt.Stringer using the hex form.
func (c Color) String() string {
	return c.Hex()
}

// Num formats a channel value with the shortest decimal representation,
// e.g. 255, 53.24 or -0.5.
func Num(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func alphaSuffix(a float64) string {
	if a < 1 {
		return " / " + Num(a)
	}
	return ""
}
