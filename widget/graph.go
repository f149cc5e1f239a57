package widget

import (
	"fmt"
	"math"
	"strconv"
)

// TraceConfig configures a Graph.
type TraceConfig struct {
	Title      string
	Min        float64
	Max        float64
	TraceColor Color
}

// Graph is a scrolling line-trace: every Draw plots one sample one column to
// the right of the previous one, wrapping at the viewport edge, while a scan
// line two columns ahead erases what was drawn on the previous pass.
//
// The scan cursor belongs to the Graph, so several graphs on one display do
// not disturb each other.
type Graph struct {
	d   Driver
	cfg TraceConfig

	cursor int
}

// NewGraph returns a Graph drawing through d with its cursor at column 0.
func NewGraph(d Driver, cfg TraceConfig) (*Graph, error) {
	if d == nil {
		return nil, ErrNilDriver
	}
	if cfg.Max == cfg.Min {
		return nil, fmt.Errorf("%w: min %v equals max %v", ErrInvalidRange, cfg.Min, cfg.Max)
	}
	return &Graph{d: d, cfg: cfg}, nil
}

// Config returns the construction config.
func (g *Graph) Config() TraceConfig { return g.cfg }

// Cursor returns the column the last sample was plotted at.
func (g *Graph) Cursor() int { return g.cursor }

// Offset returns the vertical pixel offset above PlotBottom for value.
// Values outside [Min, Max] are not clamped and land off the plot.
func (g *Graph) Offset(value float64) int {
	return int(math.Round(PlotHeight * Normalize(value, g.cfg.Min, g.cfg.Max)))
}

// Draw renders labels and rules, moves the scan line and plots value.
func (g *Graph) Draw(value float64) {
	d := g.d

	d.SetTextColor(White, Black)
	d.SetTextSize(1)
	d.SetCursor(ViewportCenterX-(len(g.cfg.Title)*GlyphWidth)/2, TitleRow)
	d.Print(g.cfg.Title)

	d.SetCursor(0, TitleRow)
	d.Print(formatLabel(g.cfg.Max))
	d.SetCursor(0, LabelRow)
	d.Print(formatLabel(g.cfg.Min))
	d.SetCursor(RightLabelCol, LabelRow)
	d.Print(formatLabel(value))

	d.DrawLine(0, TopRuleRow, ViewportWidth, TopRuleRow, White)
	d.DrawLine(0, BottomRuleRow, ViewportWidth, BottomRuleRow, White)

	// Erase/redraw happens at the old column; the dot goes to the new one.
	d.DrawLine(g.cursor, PlotTop, g.cursor, PlotBottom, Black)
	d.DrawLine(g.cursor+CursorLead, PlotTop, g.cursor+CursorLead, PlotBottom, White)

	offset := g.Offset(value)

	g.cursor = (g.cursor + 1) % ViewportWidth
	d.FillCircle(g.cursor, PlotBottom-offset, DotRadius, g.cfg.TraceColor)
}

func formatLabel(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
