package widget

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a packed RGB565 pixel: rrrrrggggggbbbbb.
type Color uint16

// Panel palette (ST77xx conventions).
const (
	Black   Color = 0x0000
	White   Color = 0xFFFF
	Red     Color = 0xF800
	Green   Color = 0x07E0
	Blue    Color = 0x001F
	Cyan    Color = 0x07FF
	Magenta Color = 0xF81F
	Yellow  Color = 0xFFE0
	Orange  Color = 0xFC00
)

// RGB packs 8-bit channels into RGB565, dropping the low bits.
func RGB(r, g, b uint8) Color {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return Color((rr << 11) | (gg << 5) | bb)
}

// RGB888 expands the packed value back to 8-bit channels.
func (c Color) RGB888() (r, g, b uint8) {
	p := uint16(c)
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((uint32(rr) * 255) / 31)
	g = uint8((uint32(gg) * 255) / 63)
	b = uint8((uint32(bb) * 255) / 31)
	return r, g, b
}

// RGBA returns the opaque color.RGBA used by tinygo display drivers.
func (c Color) RGBA() color.RGBA {
	r, g, b := c.RGB888()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

var colorNames = map[string]Color{
	"black":   Black,
	"white":   White,
	"red":     Red,
	"green":   Green,
	"blue":    Blue,
	"cyan":    Cyan,
	"magenta": Magenta,
	"yellow":  Yellow,
	"orange":  Orange,
}

// ParseColor accepts a palette name ("yellow"), a packed RGB565 value
// ("0xFFE0") or a 24-bit web color ("#ffcc00").
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := colorNames[s]; ok {
		return c, nil
	}
	switch {
	case strings.HasPrefix(s, "#") && len(s) == 7:
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("widget: bad color %q: %w", s, err)
		}
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	case strings.HasPrefix(s, "0x"):
		v, err := strconv.ParseUint(s[2:], 16, 16)
		if err != nil {
			return 0, fmt.Errorf("widget: bad color %q: %w", s, err)
		}
		return Color(v), nil
	}
	return 0, fmt.Errorf("widget: unknown color %q", s)
}

// String returns the palette name or the packed value in hex.
func (c Color) String() string {
	for name, v := range colorNames {
		if v == c {
			return name
		}
	}
	return fmt.Sprintf("0x%04x", uint16(c))
}
