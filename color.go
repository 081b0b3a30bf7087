package spiro

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// Color is a solid, non-premultiplied 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

var _ color.Color = Color{}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Hex decomposes a packed 24-bit 0xRRGGBB code into an opaque color.
// Bits above the low 24 are ignored.
func Hex(code uint32) Color {
	return Color{
		R: uint8((code & 0x00ff0000) >> 16),
		G: uint8((code & 0x0000ff00) >> 8),
		B: uint8(code & 0x000000ff),
		A: 0xff,
	}
}

// FromColor converts any color.Color to a Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// String formats the color as #rrggbb, or #rrggbbaa when translucent.
func (c Color) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// PaletteColor names one of the fixed drawing colors.
type PaletteColor int

// Palette colors.
const (
	Black PaletteColor = iota
	Red
	Yellow
	Green
	Cyan
	Blue
	Magenta
	White
)

var paletteCodes = [...]uint32{
	Black:   0x000000,
	Red:     0xff0000,
	Yellow:  0xffff00,
	Green:   0x00ff00,
	Cyan:    0x00ffff,
	Blue:    0x0000ff,
	Magenta: 0xff00ff,
	White:   0xffffff,
}

var paletteNames = [...]string{
	Black:   "black",
	Red:     "red",
	Yellow:  "yellow",
	Green:   "green",
	Cyan:    "cyan",
	Blue:    "blue",
	Magenta: "magenta",
	White:   "white",
}

// Color resolves the palette entry. Unknown entries resolve to black.
func (p PaletteColor) Color() Color {
	if p < 0 || int(p) >= len(paletteCodes) {
		return Hex(0x000000)
	}
	return Hex(paletteCodes[p])
}

func (p PaletteColor) String() string {
	if p < 0 || int(p) >= len(paletteNames) {
		return fmt.Sprintf("PaletteColor(%d)", int(p))
	}
	return paletteNames[p]
}

// Palette returns every palette entry in declaration order.
func Palette() []PaletteColor {
	return []PaletteColor{Black, Red, Yellow, Green, Cyan, Blue, Magenta, White}
}

// ParseColor resolves a color description. Accepted forms, in lookup order:
//   - a palette name ("yellow")
//   - an SVG/CSS color name ("cornflowerblue")
//   - a hex code: "#rgb", "#rrggbb", "#rrggbbaa", or "0xrrggbb"
//
// Names are matched case-insensitively.
func ParseColor(s string) (Color, error) {
	name := cases.Fold().String(strings.TrimSpace(s))
	if name == "" {
		return Color{}, fmt.Errorf("spiro: empty color")
	}
	for _, p := range Palette() {
		if p.String() == name {
			return p.Color(), nil
		}
	}
	if c, ok := colornames.Map[name]; ok {
		return FromColor(c), nil
	}

	hex, ok := strings.CutPrefix(name, "#")
	if !ok {
		hex, ok = strings.CutPrefix(name, "0x")
	}
	if !ok {
		return Color{}, fmt.Errorf("spiro: unknown color %q", s)
	}

	var r, g, b uint32
	a := uint32(0xff)
	var valid bool
	switch len(hex) {
	case 3:
		valid = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6:
		valid = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8:
		valid = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) &&
			parseHex(hex[4:6], &b) && parseHex(hex[6:8], &a)
	default:
		valid = false
	}
	if !valid {
		return Color{}, fmt.Errorf("spiro: malformed hex color %q", s)
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

// parseHex reads lowercase hex digits into val.
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
		default:
			return false
		}
	}
	return true
}
