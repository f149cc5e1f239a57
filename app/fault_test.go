package app

import (
	"errors"
	"strings"
	"testing"

	"tftgauge/widget"

	"github.com/stretchr/testify/assert"
)

func TestFaultScreen(t *testing.T) {
	h := newFakeHAL()
	faultScreen(h, errors.New("app: serial source needs a serial port"))

	assert.Equal(t, 1, h.fb.presents)
	assert.Equal(t, widget.White, h.pixel(159, 127))

	dark := 0
	for y := 0; y < 40; y++ {
		for x := 0; x < 160; x++ {
			if h.pixel(x, y) == widget.Black {
				dark++
			}
		}
	}
	assert.Greater(t, dark, 0)
}

func TestFaultScreenStopsAtBottom(t *testing.T) {
	h := newFakeHAL()
	faultScreen(h, errors.New(strings.Repeat("overflow ", 200)))
	assert.Equal(t, 1, h.fb.presents)
}

func TestFaultScreenNoop(t *testing.T) {
	h := newFakeHAL()
	faultScreen(h, nil)
	assert.Equal(t, 0, h.fb.presents)
	faultScreen(nil, errors.New("x"))
}

func TestTakeRunes(t *testing.T) {
	tests := []struct {
		s, prefix, rest string
		n               int
	}{
		{"abcdef", "abc", "def", 3},
		{"ab", "ab", "", 5},
		{"ab", "", "ab", 0},
		{"äöü", "äö", "ü", 2},
	}
	for _, tt := range tests {
		p, r := takeRunes(tt.s, tt.n)
		assert.Equal(t, tt.prefix, p, tt.s)
		assert.Equal(t, tt.rest, r, tt.s)
	}
}
