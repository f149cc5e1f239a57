package hal

import "image"

// decodeRGB565 expands a little-endian RGB565 buffer into dst.
func decodeRGB565(dst *image.RGBA, src []byte, stride int) {
	b := dst.Bounds()
	for y := 0; y < b.Dy(); y++ {
		row := y * stride
		for x := 0; x < b.Dx(); x++ {
			i := row + x*2
			if i+1 >= len(src) {
				return
			}
			r, g, bb := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
			j := dst.PixOffset(b.Min.X+x, b.Min.Y+y)
			dst.Pix[j+0] = r
			dst.Pix[j+1] = g
			dst.Pix[j+2] = bb
			dst.Pix[j+3] = 0xFF
		}
	}
}

// Image returns a copy of fb as an RGBA image.
func Image(fb Framebuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	buf := make([]byte, len(fb.Buffer()))
	snapshot(fb, buf)
	decodeRGB565(img, buf, fb.StrideBytes())
	return img
}

// snapshot copies any framebuffer; the host one is read under its lock.
func snapshot(fb Framebuffer, dst []byte) {
	if s, ok := fb.(interface{ snapshotRGB565([]byte) }); ok {
		s.snapshotRGB565(dst)
		return
	}
	copy(dst, fb.Buffer())
}
