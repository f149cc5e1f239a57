package widget

// Driver is the display surface the widgets draw through.
//
// It mirrors the Adafruit-GFX style primitive set: a text cursor with
// foreground/background colors, single-pixel lines, filled discs and filled
// triangles. Implementations must clip out-of-bounds coordinates and accept
// triangles in any winding order. Widgets never inspect driver state.
type Driver interface {
	SetTextColor(fg, bg Color)
	SetTextSize(n int)
	SetCursor(x, y int)
	Print(s string)
	DrawLine(x0, y0, x1, y1 int, c Color)
	FillCircle(x, y, r int, c Color)
	FillTriangle(x0, y0, x1, y1, x2, y2 int, c Color)
}

// Viewport layout for a 160x128 landscape panel.
const (
	ViewportWidth   = 160
	ViewportHeight  = 128
	ViewportCenterX = ViewportWidth / 2

	// GlyphWidth is the cell width used to estimate text extents.
	GlyphWidth = 6

	TitleRow      = 0
	TopRuleRow    = 12
	BottomRuleRow = 116
	PlotTop       = TopRuleRow + 1
	PlotBottom    = BottomRuleRow - 1
	PlotHeight    = 102
	LabelRow      = 121
	RightLabelCol = 130

	// CursorLead is how far ahead of the erased column the scan line is drawn.
	CursorLead = 2
	DotRadius  = 2
)
