package gfx

import (
	"image/color"

	"tftgauge/widget"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// DefaultFont is used when no font option is given. It is a concrete
// *tinyfont.Font so the boot terminal can take it too.
var DefaultFont = &proggy.TinySZ8pt7b

type rectFiller interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// Canvas implements widget.Driver on top of a tinygo display.
//
// Text follows Adafruit-GFX conventions: the cursor is the top-left corner of
// the next glyph cell, Print paints the cell background unless the background
// equals the foreground, and SetTextSize scales glyph pixels to n×n blocks.
type Canvas struct {
	d      drivers.Displayer
	filler rectFiller
	w, h   int

	font       tinyfont.Fonter
	fontHeight int16
	fontOffset int16

	fg, bg widget.Color
	size   int
	cx, cy int
}

var _ widget.Driver = (*Canvas)(nil)

// Option configures a Canvas.
type Option func(*Canvas)

// WithFont selects the text font; metrics are derived with LineMetrics.
func WithFont(f tinyfont.Fonter) Option {
	return func(c *Canvas) { c.font = f }
}

// WithFontMetrics overrides the derived line height and baseline offset.
func WithFontMetrics(height, offset int16) Option {
	return func(c *Canvas) {
		c.fontHeight = height
		c.fontOffset = offset
	}
}

// NewCanvas returns a canvas drawing on d.
func NewCanvas(d drivers.Displayer, opts ...Option) *Canvas {
	c := &Canvas{
		d:    d,
		font: DefaultFont,
		fg:   widget.White,
		bg:   widget.White,
		size: 1,
	}
	if f, ok := d.(rectFiller); ok {
		c.filler = f
	}
	w, h := d.Size()
	c.w, c.h = int(w), int(h)

	for _, opt := range opts {
		opt(c)
	}
	if c.fontHeight <= 0 {
		if fh, off, err := LineMetrics(c.font); err == nil {
			c.fontHeight, c.fontOffset = fh, off
		} else {
			c.fontHeight, c.fontOffset = 8, 7
		}
	}
	return c
}

// Size returns the drawable area in pixels.
func (c *Canvas) Size() (w, h int) { return c.w, c.h }

// Cursor returns the current text cursor.
func (c *Canvas) Cursor() (x, y int) { return c.cx, c.cy }

// LineHeight returns the unscaled text line height.
func (c *Canvas) LineHeight() int { return int(c.fontHeight) }

// Flush pushes pending pixels to the panel.
func (c *Canvas) Flush() error { return c.d.Display() }

// Clear fills the whole canvas.
func (c *Canvas) Clear(col widget.Color) {
	c.fillRect(0, 0, c.w, c.h, col.RGBA())
}

func (c *Canvas) SetTextColor(fg, bg widget.Color) {
	c.fg, c.bg = fg, bg
}

func (c *Canvas) SetTextSize(n int) {
	if n < 1 {
		n = 1
	}
	c.size = n
}

func (c *Canvas) SetCursor(x, y int) {
	c.cx, c.cy = x, y
}

func (c *Canvas) Print(s string) {
	fg := c.fg.RGBA()
	bg := c.bg.RGBA()
	lineH := int(c.fontHeight) * c.size

	for _, r := range s {
		switch r {
		case '\n':
			c.cx = 0
			c.cy += lineH
			continue
		case '\r':
			continue
		}

		adv := int(c.font.GetGlyph(r).Info().XAdvance) * c.size
		if c.bg != c.fg {
			c.fillRect(c.cx, c.cy, adv, lineH, bg)
		}

		var target drivers.Displayer = c.d
		if c.size > 1 {
			target = &scaledDisplay{d: c, ox: int16(c.cx), oy: int16(c.cy), n: int16(c.size)}
		}
		tinyfont.DrawChar(target, c.font, int16(c.cx), int16(c.cy)+c.fontOffset, r, fg)
		c.cx += adv
	}
}

func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col widget.Color) {
	drawLine(c, x0, y0, x1, y1, col.RGBA())
}

func (c *Canvas) FillCircle(x, y, r int, col widget.Color) {
	fillCircle(c, x, y, r, col.RGBA())
}

func (c *Canvas) FillTriangle(x0, y0, x1, y1, x2, y2 int, col widget.Color) {
	fillTriangle(c, x0, y0, x1, y1, x2, y2, col.RGBA())
}

func (c *Canvas) setPixel(x, y int, col color.RGBA) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.d.SetPixel(int16(x), int16(y), col)
}

func (c *Canvas) fillRect(x, y, w, h int, col color.RGBA) {
	x0 := clampInt(x, 0, c.w)
	y0 := clampInt(y, 0, c.h)
	x1 := clampInt(x+w, 0, c.w)
	y1 := clampInt(y+h, 0, c.h)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	if c.filler != nil {
		if err := c.filler.FillRectangle(int16(x0), int16(y0), int16(x1-x0), int16(y1-y0), col); err == nil {
			return
		}
	}
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.d.SetPixel(int16(px), int16(py), col)
		}
	}
}

// scaledDisplay blows glyph pixels up to n×n blocks anchored at (ox, oy).
type scaledDisplay struct {
	d      *Canvas
	ox, oy int16
	n      int16
}

func (s *scaledDisplay) Size() (x, y int16) { return s.d.d.Size() }
func (s *scaledDisplay) Display() error     { return nil }

func (s *scaledDisplay) SetPixel(x, y int16, c color.RGBA) {
	bx := int(s.ox) + int(x-s.ox)*int(s.n)
	by := int(s.oy) + int(y-s.oy)*int(s.n)
	s.d.fillRect(bx, by, int(s.n), int(s.n), c)
}
