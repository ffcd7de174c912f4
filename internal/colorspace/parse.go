package colorspace

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned when a string is not a recognised color.
var ErrInvalidColor = errors.New("invalid color")

var (
	hexPattern  = regexp.MustCompile(`^#([0-9a-f]{3,4}|[0-9a-f]{6}|[0-9a-f]{8})$`)
	funcPattern = regexp.MustCompile(`^([a-z-]+)\(\s*(.*?)\s*\)$`)
)

// Parse reads a color in hex, functional (rgb, hsl, hwb, device-cmyk, lab,
// lch) or CSS named notation. Matching is case-insensitive.
func Parse(s string) (Color, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if in == "" {
		return Black, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}

	if strings.HasPrefix(in, "#") {
		c, ok := parseHex(in)
		if !ok {
			return Black, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return c, nil
	}

	if m := funcPattern.FindStringSubmatch(in); m != nil {
		var (
			c  Color
			ok bool
		)
		switch m[1] {
		case "rgb", "rgba":
			c, ok = parseRGB(m[2])
		case "hsl", "hsla":
			c, ok = parseHSL(m[2])
		case "hwb":
			c, ok = parseHWB(m[2])
		case "device-cmyk":
			c, ok = parseCMYK(m[2])
		case "lab":
			c, ok = parseLab(m[2])
		case "lch":
			c, ok = parseLCh(m[2])
		}
		if !ok {
			return Black, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return c, nil
	}

	if in == "transparent" {
		return New(0, 0, 0, 0), nil
	}
	if rgba, ok := colornames.Map[in]; ok {
		return New(float64(rgba.R), float64(rgba.G), float64(rgba.B), 1), nil
	}
	return Black, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// MustParse is like Parse but panics on invalid input. It is meant for
// compiled-in color tables.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseOrBlack parses s and falls back to opaque black when s is not a color.
// The boolean reports whether parsing succeeded.
func ParseOrBlack(s string) (Color, bool) {
	c, err := Parse(s)
	if err != nil {
		return Black, false
	}
	return c, true
}

func parseHex(in string) (Color, bool) {
	if !hexPattern.MatchString(in) {
		return Color{}, false
	}
	digits := in[1:]
	if len(digits) <= 4 {
		var sb strings.Builder
		for _, r := range digits {
			sb.WriteRune(r)
			sb.WriteRune(r)
		}
		digits = sb.String()
	}

	c, err := colorful.Hex("#" + digits[:6])
	if err != nil {
		return Color{}, false
	}
	alpha := 1.0
	if len(digits) == 8 {
		v, err := strconv.ParseUint(digits[6:], 16, 8)
		if err != nil {
			return Color{}, false
		}
		alpha = round(float64(v)/255, 2)
	}
	return FromColorful(c, alpha), true
}

func parseRGB(body string) (Color, bool) {
	ch, alpha, ok := splitArgs(body, 3)
	if !ok {
		return Color{}, false
	}
	var v [3]float64
	for i, s := range ch {
		if v[i], ok = parseRGBChannel(s); !ok {
			return Color{}, false
		}
	}
	return New(v[0], v[1], v[2], alpha), true
}

func parseHSL(body string) (Color, bool) {
	ch, alpha, ok := splitArgs(body, 3)
	if !ok {
		return Color{}, false
	}
	h, ok1 := parseHue(ch[0])
	s, ok2 := parsePercent(ch[1])
	l, ok3 := parsePercent(ch[2])
	if !ok1 || !ok2 || !ok3 {
		return Color{}, false
	}
	return FromColorful(colorful.Hsl(h, clamp(s, 0, 100)/100, clamp(l, 0, 100)/100), alpha), true
}

func parseHWB(body string) (Color, bool) {
	ch, alpha, ok := splitArgs(body, 3)
	if !ok {
		return Color{}, false
	}
	h, ok1 := parseHue(ch[0])
	w, ok2 := parsePercent(ch[1])
	b, ok3 := parsePercent(ch[2])
	if !ok1 || !ok2 || !ok3 {
		return Color{}, false
	}
	w, b = clamp(w, 0, 100)/100, clamp(b, 0, 100)/100
	if w+b >= 1 {
		gray := w / (w + b) * 255
		return New(gray, gray, gray, alpha), true
	}
	v := 1 - b
	return FromColorful(colorful.Hsv(h, 1-w/v, v), alpha), true
}

func parseCMYK(body string) (Color, bool) {
	ch, alpha, ok := splitArgs(body, 4)
	if !ok {
		return Color{}, false
	}
	var v [4]float64
	for i, s := range ch {
		if strings.HasSuffix(s, "%") {
			p, ok := parsePercent(s)
			if !ok {
				return Color{}, false
			}
			v[i] = p / 100
		} else {
			n, err := parseFloat(s)
			if err != nil {
				return Color{}, false
			}
			v[i] = n
		}
		v[i] = clamp(v[i], 0, 1)
	}
	k := v[3]
	return New(255*(1-v[0])*(1-k), 255*(1-v[1])*(1-k), 255*(1-v[2])*(1-k), alpha), true
}

func parseLab(body string) (Color, bool) {
	ch, alpha, ok := splitArgs(body, 3)
	if !ok {
		return Color{}, false
	}
	l, ok1 := parsePercent(ch[0])
	a, err2 := parseFloat(ch[1])
	b, err3 := parseFloat(ch[2])
	if !ok1 || err2 != nil || err3 != nil {
		return Color{}, false
	}
	return fromLab(l, a, b, alpha), true
}

func parseLCh(body string) (Color, bool) {
	ch, alpha, ok := splitArgs(body, 3)
	if !ok {
		return Color{}, false
	}
	l, ok1 := parsePercent(ch[0])
	c, err2 := parseFloat(ch[1])
	h, ok3 := parseHue(ch[2])
	if !ok1 || err2 != nil || !ok3 {
		return Color{}, false
	}
	L, a, b := colorful.HclToLab(h, c, l)
	return fromLab(L, a, b, alpha), true
}

// fromLab converts D50 Lab with L in 0-100 back to sRGB.
func fromLab(l, a, b, alpha float64) Color {
	l = clamp(l, 0, 100)
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200

	y := l / labKappa
	if l > labKappa*labEpsilon {
		y = fy * fy * fy
	}
	return fromXyz(labFInv(fx)*whiteD50[0], y*whiteD50[1], labFInv(fz)*whiteD50[2], alpha)
}

func labFInv(f float64) float64 {
	if cube := f * f * f; cube > labEpsilon {
		return cube
	}
	return (116*f - 16) / labKappa
}

// splitArgs splits a functional notation body into n channel strings and an
// alpha value. Both the legacy comma syntax and the space syntax with an
// optional "/ alpha" part are accepted.
func splitArgs(body string, n int) ([]string, float64, bool) {
	var fields []string
	alpha := ""

	if strings.Contains(body, ",") {
		if strings.Contains(body, "/") {
			return nil, 0, false
		}
		for _, f := range strings.Split(body, ",") {
			f = strings.TrimSpace(f)
			if f == "" {
				return nil, 0, false
			}
			fields = append(fields, f)
		}
		if len(fields) == n+1 {
			alpha = fields[n]
			fields = fields[:n]
		}
	} else {
		main, rest, found := strings.Cut(body, "/")
		fields = strings.Fields(main)
		if found {
			alpha = strings.TrimSpace(rest)
			if alpha == "" {
				return nil, 0, false
			}
		}
	}

	if len(fields) != n {
		return nil, 0, false
	}
	a, ok := parseAlpha(alpha)
	if !ok {
		return nil, 0, false
	}
	return fields, a, true
}

func parseAlpha(s string) (float64, bool) {
	if s == "" {
		return 1, true
	}
	if strings.HasSuffix(s, "%") {
		v, ok := parsePercent(s)
		return clamp(v/100, 0, 1), ok
	}
	v, err := parseFloat(s)
	if err != nil {
		return 0, false
	}
	return clamp(v, 0, 1), true
}

func parseRGBChannel(s string) (float64, bool) {
	if strings.HasSuffix(s, "%") {
		v, ok := parsePercent(s)
		return v * 2.55, ok
	}
	v, err := parseFloat(s)
	return v, err == nil
}

// parsePercent accepts "50%" as well as a bare "50".
func parsePercent(s string) (float64, bool) {
	v, err := parseFloat(strings.TrimSuffix(s, "%"))
	return v, err == nil
}

// parseHue returns the hue in degrees normalised to [0, 360).
func parseHue(s string) (float64, bool) {
	scale := 1.0
	switch {
	case strings.HasSuffix(s, "deg"):
		s = strings.TrimSuffix(s, "deg")
	case strings.HasSuffix(s, "grad"):
		s, scale = strings.TrimSuffix(s, "grad"), 0.9
	case strings.HasSuffix(s, "rad"):
		s, scale = strings.TrimSuffix(s, "rad"), radToDeg
	case strings.HasSuffix(s, "turn"):
		s, scale = strings.TrimSuffix(s, "turn"), 360
	}
	v, err := parseFloat(s)
	if err != nil {
		return 0, false
	}
	v = math.Mod(v*scale, 360)
	if v < 0 {
		v += 360
	}
	return v, true
}

// parseFloat is strconv.ParseFloat restricted to finite values.
func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}
	return v, nil
}
