// Package colorspace parses CSS-style color strings and expresses a color in
// the RGB, HSL, HWB, CMYK, CIE Lab and CIE LCh color spaces.
//
// RGB, HSL and HWB math is done by go-colorful. Lab and LCh are computed here
// from the sRGB matrices with a D50 white. This package also fixes channel
// ranges, rounding precision and string serialization.
package colorspace

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB color with alpha. Channels are kept unrounded so that
// conversions do not accumulate rounding error; rounding only happens when a
// color is expressed in a particular space.
type Color struct {
	c colorful.Color
	a float64
}

// RGB holds 0-255 channels rounded to integers.
type RGB struct {
	R, G, B float64
	A       float64
}

// HSL holds hue in degrees and saturation/lightness in percent, rounded to integers.
type HSL struct {
	H, S, L float64
	A       float64
}

// HWB holds hue in degrees and whiteness/blackness in percent, rounded to integers.
type HWB struct {
	H, W, B float64
	A       float64
}

// CMYK holds percentages rounded to two decimals.
type CMYK struct {
	C, M, Y, K float64
	A          float64
}

// Lab is CIE L*a*b* relative to D50, rounded to two decimals.
type Lab struct {
	L, A, B float64
	Alpha   float64
}

// LCh is the cylindrical form of Lab, rounded to two decimals.
type LCh struct {
	L, C, H float64
	Alpha   float64
}

const (
	alphaPrecision = 3
	radToDeg       = 180 / math.Pi

	// CIE constants for the Lab companding function
	labEpsilon = 216.0 / 24389
	labKappa   = 24389.0 / 27
)

// whiteD50 is the D50 reference white in XYZ, Y normalized to 100.
var whiteD50 = [3]float64{96.422, 100, 82.521}

// Black is opaque black, the value unparseable input falls back to.
var Black = Color{c: colorful.Color{}, a: 1}

// New builds a color from 0-255 channels and a 0-1 alpha. Out of range values
// are clamped.
func New(r, g, b, a float64) Color {
	return Color{
		c: colorful.Color{
			R: clamp(r, 0, 255) / 255,
			G: clamp(g, 0, 255) / 255,
			B: clamp(b, 0, 255) / 255,
		},
		a: clamp(a, 0, 1),
	}
}

// FromColorful wraps a go-colorful color. Out of gamut colors are clamped.
func FromColorful(c colorful.Color, a float64) Color {
	return Color{c: c.Clamped(), a: clamp(a, 0, 1)}
}

// Colorful returns the underlying go-colorful value.
func (c Color) Colorful() colorful.Color {
	return c.c
}

// Alpha returns the opacity in the range 0-1.
func (c Color) Alpha() float64 {
	return c.a
}

// Equal reports whether two colors have the same rounded RGBA value.
func (c Color) Equal(o Color) bool {
	return c.RGB() == o.RGB()
}

// IsDark reports whether light text reads better than dark text on c.
func (c Color) IsDark() bool {
	l, _, _ := c.c.Lab()
	return l < 0.6
}

// RGB returns the color with 0-255 integer channels.
func (c Color) RGB() RGB {
	return RGB{
		R: round(c.c.R*255, 0),
		G: round(c.c.G*255, 0),
		B: round(c.c.B*255, 0),
		A: round(c.a, alphaPrecision),
	}
}

// HSL returns the color in the HSL space.
func (c Color) HSL() HSL {
	h, s, l := c.c.Hsl()
	return HSL{
		H: round(h, 0),
		S: round(s*100, 0),
		L: round(l*100, 0),
		A: round(c.a, alphaPrecision),
	}
}

// HWB returns the color in the HWB space.
func (c Color) HWB() HWB {
	h, _, v := c.c.Hsv()
	lo := math.Min(c.c.R, math.Min(c.c.G, c.c.B))
	return HWB{
		H: round(h, 0),
		W: round(lo*100, 0),
		B: round(100-v*100, 0),
		A: round(c.a, alphaPrecision),
	}
}

// CMYK returns the naive (device) CMYK conversion of the color.
func (c Color) CMYK() CMYK {
	k := 1 - math.Max(c.c.R, math.Max(c.c.G, c.c.B))
	var cy, m, y float64
	if k < 1 {
		cy = (1 - c.c.R - k) / (1 - k)
		m = (1 - c.c.G - k) / (1 - k)
		y = (1 - c.c.B - k) / (1 - k)
	}
	return CMYK{
		C: round(cy*100, 2),
		M: round(m*100, 2),
		Y: round(y*100, 2),
		K: round(k*100, 2),
		A: round(c.a, alphaPrecision),
	}
}

// Lab returns the color in CIE Lab (D50).
func (c Color) Lab() Lab {
	l, a, b := c.lab()
	return Lab{
		L:     round(l, 2),
		A:     round(a, 2),
		B:     round(b, 2),
		Alpha: round(c.a, alphaPrecision),
	}
}

// LCh returns the color in CIE LCh (D50). The hue is taken from a and b
// rounded to three decimals, so near-neutral colors get a stable hue of 0.
func (c Color) LCh() LCh {
	l, a, b := c.lab()
	a, b = round(a, 3), round(b, 3)

	h := math.Atan2(b, a) * radToDeg
	if h < 0 {
		h += 360
	}
	return LCh{
		L:     round(l, 2),
		C:     round(math.Sqrt(a*a+b*b), 2),
		H:     round(h, 2),
		Alpha: round(c.a, alphaPrecision),
	}
}

// lab returns unrounded Lab values with L in 0-100.
func (c Color) lab() (l, a, b float64) {
	x, y, z := c.xyz()
	fx := labF(x / whiteD50[0])
	fy := labF(y / whiteD50[1])
	fz := labF(z / whiteD50[2])
	return 116*fy - 16, 500 * (fx - fy), 200 * (fy - fz)
}

// xyz returns CIE XYZ in 0-100, adapted to D50 and clamped to its white.
func (c Color) xyz() (x, y, z float64) {
	r, g, b := linearize(c.c.R), linearize(c.c.G), linearize(c.c.B)
	x, y, z = adaptToD50(
		(r*0.4124564+g*0.3575761+b*0.1804375)*100,
		(r*0.2126729+g*0.7151522+b*0.0721750)*100,
		(r*0.0193339+g*0.1191920+b*0.9503041)*100,
	)
	return clamp(x, 0, whiteD50[0]), clamp(y, 0, whiteD50[1]), clamp(z, 0, whiteD50[2])
}

// fromXyz converts D50 XYZ in 0-100 back to sRGB.
func fromXyz(x, y, z, alpha float64) Color {
	x, y, z = adaptToD65(x, y, z)
	return New(
		unlinearize(0.032404542*x-0.015371385*y-0.004985314*z),
		unlinearize(-0.00969266*x+0.018760108*y+0.00041556*z),
		unlinearize(0.000556434*x-0.002040259*y+0.010572252*z),
		alpha,
	)
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

func linearize(v float64) float64 {
	if v < 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// unlinearize returns a 0-255 channel.
func unlinearize(v float64) float64 {
	if v > 0.0031308 {
		return 255 * (1.055*math.Pow(v, 1/2.4) - 0.055)
	}
	return 255 * 12.92 * v
}

// adaptToD50 applies the Bradford chromatic adaptation from sRGB's D65 white.
func adaptToD50(x, y, z float64) (float64, float64, float64) {
	return x*1.0478112 + y*0.0228866 + z*-0.050127,
		x*0.0295424 + y*0.9904844 + z*-0.0170491,
		x*-0.0092345 + y*0.0150436 + z*0.7521316
}

// adaptToD65 is the inverse of adaptToD50.
func adaptToD65(x, y, z float64) (float64, float64, float64) {
	return x*0.9555766 + y*-0.0230393 + z*0.0631636,
		x*-0.0282895 + y*1.0099416 + z*0.0210077,
		x*0.0122982 + y*-0.020483 + z*1.3299098
}

// round rounds half toward positive infinity and never returns negative zero.
func round(v float64, digits int) float64 {
	base := math.Pow(10, float64(digits))
	r := math.Floor(v*base+0.5) / base
	if r == 0 {
		return 0
	}
	return r
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
