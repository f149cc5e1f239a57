package gfx

import "image/color"

// drawLine plots a Bresenham line including both endpoints.
func drawLine(c *Canvas, x0, y0, x1, y1 int, col color.RGBA) {
	if x0 == x1 {
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		c.fillRect(x0, y0, 1, y1-y0+1, col)
		return
	}
	if y0 == y1 {
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		c.fillRect(x0, y0, x1-x0+1, 1, col)
		return
	}

	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.setPixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fillCircle fills a disc as horizontal spans. The r*r+r bound matches the
// rounded look of small Adafruit-GFX circles.
func fillCircle(c *Canvas, cx, cy, r int, col color.RGBA) {
	if r < 0 {
		return
	}
	lim := r*r + r
	for dy := -r; dy <= r; dy++ {
		dx := 0
		for (dx+1)*(dx+1)+dy*dy <= lim {
			dx++
		}
		c.fillRect(cx-dx, cy+dy, 2*dx+1, 1, col)
	}
}

// fillTriangle fills a triangle of either winding. Degenerate triangles
// collapse to their outline.
func fillTriangle(c *Canvas, x0, y0, x1, y1, x2, y2 int, col color.RGBA) {
	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		drawLine(c, x0, y0, x1, y1, col)
		drawLine(c, x1, y1, x2, y2, col)
		drawLine(c, x2, y2, x0, y0, col)
		return
	}
	if area < 0 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	minX, maxX := min3(x0, x1, x2), max3(x0, x1, x2)
	minY, maxY := min3(y0, y1, y2), max3(y0, y1, y2)
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= c.w {
		maxX = c.w - 1
	}
	if maxY >= c.h {
		maxY = c.h - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	for y := minY; y <= maxY; y++ {
		start := -1
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(x1, y1, x2, y2, x, y)
			w1 := edgeFn(x2, y2, x0, y0, x, y)
			w2 := edgeFn(x0, y0, x1, y1, x, y)
			inside := (w0 | w1 | w2) >= 0
			if inside && start < 0 {
				start = x
			}
			if !inside && start >= 0 {
				c.fillRect(start, y, x-start, 1, col)
				start = -1
			}
		}
		if start >= 0 {
			c.fillRect(start, y, maxX-start+1, 1, col)
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min3(a, b, c int) int {
	if a > b {
		a = b
	}
	if a > c {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if a < b {
		a = b
	}
	if a < c {
		a = c
	}
	return a
}
