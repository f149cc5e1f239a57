package gfx

import (
	"image/color"

	"tftgauge/hal"
	"tftgauge/widget"

	"tinygo.org/x/drivers"
)

// FramebufferDisplay adapts an RGB565 hal.Framebuffer to drivers.Displayer.
type FramebufferDisplay struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*FramebufferDisplay)(nil)

// NewFramebufferDisplay returns a displayer writing into fb.
func NewFramebufferDisplay(fb hal.Framebuffer) *FramebufferDisplay {
	return &FramebufferDisplay{fb: fb}
}

func (d *FramebufferDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *FramebufferDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	w := d.fb.Width()
	h := d.fb.Height()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}

	pixel := uint16(widget.RGB(c.R, c.G, c.B))
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

// Display presents the framebuffer.
func (d *FramebufferDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *FramebufferDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return nil
	}

	w := d.fb.Width()
	h := d.fb.Height()

	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := uint16(widget.RGB(c.R, c.G, c.B))
	lo := byte(pixel)
	hi := byte(pixel >> 8)

	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
	return nil
}

// SetScroll is a no-op; framebuffers have no hardware scroll.
func (d *FramebufferDisplay) SetScroll(line int16) {}

// SetRotation accepts only the native orientation.
func (d *FramebufferDisplay) SetRotation(rotation drivers.Rotation) error {
	if rotation != drivers.Rotation0 {
		return hal.ErrNotImplemented
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
