package hal

import "tftgauge/widget"

// Pixel packing is widget.Color's; the helpers here only deal with byte order.

func rgb888From565(p uint16) (r, g, b uint8) {
	return widget.Color(p).RGB888()
}

// FillRGB565 paints every pixel of a little-endian RGB565 buffer.
func FillRGB565(buf []byte, r, g, b uint8) {
	pixel := uint16(widget.RGB(r, g, b))
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i+1 < len(buf); i += 2 {
		buf[i] = lo
		buf[i+1] = hi
	}
}

// SwapRGB565 copies little-endian RGB565 pixels from src into dst as
// big-endian, the wire order ST77xx panels expect. It returns the number of
// bytes written.
func SwapRGB565(dst, src []byte) int {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	n &^= 1
	for i := 0; i < n; i += 2 {
		dst[i] = src[i+1]
		dst[i+1] = src[i]
	}
	return n
}

// RGBAt decodes the pixel at (x, y) of an RGB565 framebuffer.
func RGBAt(fb Framebuffer, x, y int) (r, g, b uint8) {
	if fb == nil || x < 0 || y < 0 || x >= fb.Width() || y >= fb.Height() {
		return 0, 0, 0
	}
	buf := fb.Buffer()
	off := y*fb.StrideBytes() + x*2
	if off < 0 || off+1 >= len(buf) {
		return 0, 0, 0
	}
	return rgb888From565(uint16(buf[off]) | uint16(buf[off+1])<<8)
}
