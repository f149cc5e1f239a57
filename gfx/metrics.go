package gfx

import (
	"errors"
	"fmt"

	"tinygo.org/x/tinyfont"
)

// LineMetrics derives a text cell height and the baseline offset from the
// top of the cell by scanning the printable ASCII glyphs of font.
func LineMetrics(font tinyfont.Fonter) (fontHeight int16, fontOffset int16, err error) {
	if font == nil {
		return 0, 0, errors.New("gfx: nil font")
	}

	minY := 0
	maxY := 0
	first := true
	for r := rune(0x21); r <= 0x7e; r++ {
		info := font.GetGlyph(r).Info()
		if info.Height == 0 {
			continue
		}
		yoff := int(info.YOffset)
		h := int(info.Height)
		if first {
			minY = yoff
			maxY = yoff + h
			first = false
			continue
		}
		if yoff < minY {
			minY = yoff
		}
		if yoff+h > maxY {
			maxY = yoff + h
		}
	}
	if first {
		return 0, 0, errors.New("gfx: font has no glyphs")
	}

	height := maxY - minY
	offset := -minY
	if height <= 0 || offset < 0 {
		return 0, 0, fmt.Errorf("gfx: invalid metrics: height=%d offset=%d", height, offset)
	}
	if height > 127 || offset > 127 {
		return 0, 0, fmt.Errorf("gfx: metrics too large: height=%d offset=%d", height, offset)
	}
	return int16(height), int16(offset), nil
}
