package emblem

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// RGBA represents a colour with red, green, blue and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R*255 + 0.5)),
		G: uint8(clamp255(c.G*255 + 0.5)),
		B: uint8(clamp255(c.B*255 + 0.5)),
		A: uint8(clamp255(c.A*255 + 0.5)),
	}
}

// WithAlpha returns the colour with its alpha scaled by a.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A *= a
	return c
}

// Lerp performs linear interpolation between two colours.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// ParseColor parses an SVG colour value: "#RGB", "#RGBA", "#RRGGBB",
// "#RRGGBBAA" or a CSS colour keyword such as "lightskyblue".
func ParseColor(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return RGBA{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
			A: float64(c.A) / 255,
		}, nil
	}
	return RGBA{}, fmt.Errorf("emblem: unknown colour %q", s)
}

func parseHexColor(hex string) (RGBA, error) {
	var r, g, b, a uint32
	a = 255

	var ok bool
	switch len(hex) {
	case 3, 4: // RGB, RGBA
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		if len(hex) == 4 {
			ok = ok && parseHex(hex[3:4], &a)
			a *= 17
		}
		r, g, b = r*17, g*17, b*17
	case 6, 8: // RRGGBB, RRGGBBAA
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
		if len(hex) == 8 {
			ok = ok && parseHex(hex[6:8], &a)
		}
	}
	if !ok {
		return RGBA{}, fmt.Errorf("emblem: malformed hex colour %q", "#"+hex)
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

// parseHex parses hex digits into val and reports whether all were valid.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
