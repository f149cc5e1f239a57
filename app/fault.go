package app

import (
	"strings"
	"unicode/utf8"

	"tftgauge/gfx"
	"tftgauge/hal"
	"tftgauge/widget"

	"tinygo.org/x/tinyfont"
)

// faultScreen paints err onto the panel, wrapped to the panel width, so a
// board without a serial console still shows why it stopped.
func faultScreen(h hal.HAL, err error) {
	if h == nil || err == nil {
		return
	}
	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return
	}

	c := gfx.NewCanvas(gfx.NewFramebufferDisplay(fb))
	c.Clear(widget.White)
	c.SetTextColor(widget.Black, widget.White)

	_, outbox := tinyfont.LineWidth(gfx.DefaultFont, "0")
	w, hgt := c.Size()
	cols := 1
	if outbox > 0 {
		cols = max(w/int(outbox), 1)
	}

	y := 0
	for _, line := range append([]string{"tftgauge fault:"}, strings.Split(err.Error(), "\n")...) {
		for line != "" {
			if y+c.LineHeight() > hgt {
				_ = c.Flush()
				return
			}
			var chunk string
			chunk, line = takeRunes(line, cols)
			c.SetCursor(0, y)
			c.Print(chunk)
			y += c.LineHeight()
			line = strings.TrimLeft(line, " ")
		}
	}
	_ = c.Flush()
}

// takeRunes splits s after n runes.
func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	i, count := 0, 0
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
