package widget

import "fmt"

// Default arc swept by a SegGauge, in degrees. 0° points down the screen and
// angles grow clockwise, so 90..200 runs from the left edge over the top.
const (
	DefaultStartDeg = 90
	DefaultEndDeg   = 200
)

// GaugeConfig configures a SegGauge. Angles are in whole degrees.
type GaugeConfig struct {
	Radius        int
	CenterX       int
	CenterY       int
	SegmentLength int // radial thickness of each segment
	StepDeg       int // angular width per segment, gap included
	SpacingDeg    int // gap carved from each side of a step

	ActiveColor     Color
	BackgroundColor Color

	// StartDeg and EndDeg bound the arc; both zero selects the default arc.
	StartDeg int
	EndDeg   int

	// WarnFraction > 0 paints active segments at or past it in WarnColor.
	WarnFraction float64
	WarnColor    Color
}

// Point is a screen coordinate.
type Point struct {
	X, Y int
}

// Segment is the computed geometry of one gauge slice.
//
// The four corners outline a trapezoid: outer band leading/trailing edge and
// inner band trailing/leading edge, in drawing order.
type Segment struct {
	Deg      int
	Fraction float64
	Color    Color

	OuterLeading  Point
	OuterTrailing Point
	InnerTrailing Point
	InnerLeading  Point
}

// SegGauge is a segmented radial gauge. Draw repaints every segment, so it
// keeps no state between calls.
type SegGauge struct {
	d   Driver
	cfg GaugeConfig
}

// NewSegGauge validates cfg and returns a gauge drawing through d.
func NewSegGauge(d Driver, cfg GaugeConfig) (*SegGauge, error) {
	if d == nil {
		return nil, ErrNilDriver
	}
	if cfg.StartDeg == 0 && cfg.EndDeg == 0 {
		cfg.StartDeg = DefaultStartDeg
		cfg.EndDeg = DefaultEndDeg
	}
	if cfg.StepDeg <= 0 {
		return nil, fmt.Errorf("%w: step %d", ErrInvalidStep, cfg.StepDeg)
	}
	if cfg.EndDeg <= cfg.StartDeg {
		return nil, fmt.Errorf("%w: arc %d..%d", ErrInvalidRange, cfg.StartDeg, cfg.EndDeg)
	}
	return &SegGauge{d: d, cfg: cfg}, nil
}

// Config returns the effective config, defaults applied.
func (g *SegGauge) Config() GaugeConfig { return g.cfg }

// Degrees returns the center angle of every segment, in drawing order.
func (g *SegGauge) Degrees() []int {
	var out []int
	for deg := g.cfg.StartDeg; deg <= g.cfg.EndDeg; deg += g.cfg.StepDeg {
		out = append(out, deg)
	}
	return out
}

// Fraction returns the position of the segment at deg along the arc.
// The denominator includes one extra step, so the last segment sits below 1.
func (g *SegGauge) Fraction(deg int) float64 {
	c := g.cfg
	return float64(deg-c.StartDeg) / float64(c.EndDeg-c.StartDeg+c.StepDeg)
}

// Segments computes the geometry and color of every segment for value.
//
// value is already a fraction of the gauge range, not a physical reading.
// A segment is active when its fraction is strictly below value; value is
// not clamped, so anything above 1 lights every segment and anything at or
// below 0 lights none.
func (g *SegGauge) Segments(value float64) []Segment {
	c := g.cfg
	half := c.StepDeg / 2
	inner := c.Radius - c.SegmentLength

	var out []Segment
	for deg := c.StartDeg; deg <= c.EndDeg; deg += c.StepDeg {
		frac := g.Fraction(deg)

		col := c.BackgroundColor
		if frac < value {
			col = c.ActiveColor
			if c.WarnFraction > 0 && frac >= c.WarnFraction {
				col = c.WarnColor
			}
		}

		lead := deg - half + c.SpacingDeg
		trail := deg + half - c.SpacingDeg
		out = append(out, Segment{
			Deg:           deg,
			Fraction:      frac,
			Color:         col,
			OuterLeading:  g.polar(lead, c.Radius),
			OuterTrailing: g.polar(trail, c.Radius),
			InnerTrailing: g.polar(trail, inner),
			InnerLeading:  g.polar(lead, inner),
		})
	}
	return out
}

// Draw fills two triangles per segment covering its trapezoid.
func (g *SegGauge) Draw(value float64) {
	for _, s := range g.Segments(value) {
		ol, ot, it, il := s.OuterLeading, s.OuterTrailing, s.InnerTrailing, s.InnerLeading
		g.d.FillTriangle(ol.X, ol.Y, ot.X, ot.Y, it.X, it.Y, s.Color)
		g.d.FillTriangle(ol.X, ol.Y, it.X, it.Y, il.X, il.Y, s.Color)
	}
}

func (g *SegGauge) polar(deg, r int) Point {
	return Point{
		X: g.cfg.CenterX - PolarX(deg, r),
		Y: g.cfg.CenterY + PolarY(deg, r),
	}
}
