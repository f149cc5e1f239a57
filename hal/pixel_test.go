//go:build !tinygo

package hal

import "testing"

func TestFillRGB565RoundTrip(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		lo, hi  byte
	}{
		{0, 0, 0, 0x00, 0x00},
		{0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
		{0xFF, 0, 0, 0x00, 0xF8},
		{0, 0xFF, 0, 0xE0, 0x07},
		{0, 0, 0xFF, 0x1F, 0x00},
	}
	for _, tt := range tests {
		fb := NewMemFramebuffer(2, 1)
		FillRGB565(fb.Buffer(), tt.r, tt.g, tt.b)
		buf := fb.Buffer()
		if buf[2] != tt.lo || buf[3] != tt.hi {
			t.Fatalf("FillRGB565(%d,%d,%d) pixel 1 = %#02x %#02x; want %#02x %#02x", tt.r, tt.g, tt.b, buf[2], buf[3], tt.lo, tt.hi)
		}
		r, g, b := RGBAt(fb, 1, 0)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Fatalf("RGBAt after FillRGB565(%d,%d,%d) = %d,%d,%d", tt.r, tt.g, tt.b, r, g, b)
		}
	}
}

func TestSwapRGB565(t *testing.T) {
	src := []byte{0x1F, 0xF8, 0xE0, 0x07, 0xAA}
	dst := make([]byte, 8)

	n := SwapRGB565(dst, src)
	if n != 4 {
		t.Fatalf("SwapRGB565 n = %d; want 4", n)
	}
	want := []byte{0xF8, 0x1F, 0x07, 0xE0}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %#02x; want %#02x", i, dst[i], want[i])
		}
	}

	if n := SwapRGB565(dst[:1], src); n != 0 {
		t.Fatalf("SwapRGB565 into 1 byte n = %d; want 0", n)
	}
}
