package widget_test

import (
	"errors"
	"reflect"
	"testing"

	"tftgauge/widget"
	"tftgauge/widget/widgettest"
)

func newGraph(t *testing.T, cfg widget.TraceConfig) (*widget.Graph, *widgettest.Recorder) {
	t.Helper()
	rec := &widgettest.Recorder{}
	g, err := widget.NewGraph(rec, cfg)
	if err != nil {
		t.Fatalf("NewGraph() err = %v", err)
	}
	return g, rec
}

func TestGraphDrawSequence(t *testing.T) {
	g, rec := newGraph(t, widget.TraceConfig{Title: "Temp", Min: 20, Max: 100, TraceColor: widget.Yellow})

	g.Draw(50)

	want := []string{
		"SetTextColor(0xffff, 0x0000)",
		"SetTextSize(1)",
		"SetCursor(68, 0)",
		`Print("Temp")`,
		"SetCursor(0, 0)",
		`Print("100.00")`,
		"SetCursor(0, 121)",
		`Print("20.00")`,
		"SetCursor(130, 121)",
		`Print("50.00")`,
		"DrawLine(0, 12, 160, 12, 0xffff)",
		"DrawLine(0, 116, 160, 116, 0xffff)",
		"DrawLine(0, 13, 0, 115, 0x0000)",
		"DrawLine(2, 13, 2, 115, 0xffff)",
		"FillCircle(1, 51, 2, 0xffe0)",
	}
	if got := rec.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Draw() calls =\n%q\nwant\n%q", got, want)
	}
}

func TestGraphOffsetUsesLiteralFormula(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		value    float64
		want     int
	}{
		// 50/(100-20) = 0.625, not (50-20)/80 = 0.375.
		{"nonzero min", 20, 100, 50, 64},
		{"zero min", 0, 100, 50, 51},
		{"at max", 0, 100, 100, 102},
		{"below range", 0, 100, -50, -51},
		{"above range", 0, 100, 200, 204},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, rec := newGraph(t, widget.TraceConfig{Title: "x", Min: tt.min, Max: tt.max})
			if got := g.Offset(tt.value); got != tt.want {
				t.Errorf("Offset(%v) = %d, want %d", tt.value, got, tt.want)
			}
			g.Draw(tt.value)
			dot, ok := rec.Last(widgettest.OpFillCircle)
			if !ok {
				t.Fatalf("Draw() did not plot a dot")
			}
			if got, want := dot.Args[1], widget.PlotBottom-tt.want; got != want {
				t.Errorf("dot y = %d, want %d", got, want)
			}
		})
	}
}

func TestGraphCursorAdvancesPerDraw(t *testing.T) {
	g, rec := newGraph(t, widget.TraceConfig{Title: "t", Min: 0, Max: 10})

	values := []float64{0, 3, -7, 1e9, 5}
	for n := 1; n <= 2*widget.ViewportWidth+3; n++ {
		g.Draw(values[n%len(values)])
		if got, want := g.Cursor(), n%widget.ViewportWidth; got != want {
			t.Fatalf("after %d draws Cursor() = %d, want %d", n, got, want)
		}
	}

	// The scan line is erased at the old column, the dot lands on the new one.
	rec.Reset()
	before := g.Cursor()
	g.Draw(5)
	lines := rec.Filter(widgettest.OpDrawLine)
	if len(lines) != 4 {
		t.Fatalf("Draw() drew %d lines, want 4", len(lines))
	}
	if got := lines[2].Args[0]; got != before {
		t.Errorf("erase column = %d, want %d", got, before)
	}
	if got := lines[3].Args[0]; got != before+widget.CursorLead {
		t.Errorf("scan column = %d, want %d", got, before+widget.CursorLead)
	}
	dot, _ := rec.Last(widgettest.OpFillCircle)
	if got := dot.Args[0]; got != (before+1)%widget.ViewportWidth {
		t.Errorf("dot column = %d, want %d", got, (before+1)%widget.ViewportWidth)
	}
}

func TestGraphCursorWraps(t *testing.T) {
	g, rec := newGraph(t, widget.TraceConfig{Title: "t", Min: 0, Max: 10})
	for i := 0; i < widget.ViewportWidth-1; i++ {
		g.Draw(1)
	}
	rec.Reset()

	g.Draw(1)
	dot, _ := rec.Last(widgettest.OpFillCircle)
	if dot.Args[0] != 0 {
		t.Errorf("dot column after wrap = %d, want 0", dot.Args[0])
	}
	if g.Cursor() != 0 {
		t.Errorf("Cursor() after wrap = %d, want 0", g.Cursor())
	}
}

func TestGraphsKeepIndependentCursors(t *testing.T) {
	a, _ := newGraph(t, widget.TraceConfig{Title: "a", Min: 0, Max: 1})
	b, _ := newGraph(t, widget.TraceConfig{Title: "b", Min: 0, Max: 1})

	for i := 0; i < 7; i++ {
		a.Draw(0.5)
	}
	b.Draw(0.5)

	if a.Cursor() != 7 || b.Cursor() != 1 {
		t.Errorf("cursors = (%d, %d), want (7, 1)", a.Cursor(), b.Cursor())
	}
}

func TestGraphTitleCentering(t *testing.T) {
	tests := []struct {
		title string
		wantX int
	}{
		{"", 80},
		{"T", 77},
		{"Pressure", 56},
		{"A very long instrument title", -4},
	}
	for _, tt := range tests {
		g, rec := newGraph(t, widget.TraceConfig{Title: tt.title, Min: 0, Max: 1})
		g.Draw(0)
		c := rec.Filter(widgettest.OpSetCursor)[0]
		if c.Args[0] != tt.wantX || c.Args[1] != 0 {
			t.Errorf("title %q cursor = (%d, %d), want (%d, 0)", tt.title, c.Args[0], c.Args[1], tt.wantX)
		}
	}
}

func TestNewGraphValidation(t *testing.T) {
	if _, err := widget.NewGraph(&widgettest.Recorder{}, widget.TraceConfig{Min: 5, Max: 5}); !errors.Is(err, widget.ErrInvalidRange) {
		t.Errorf("NewGraph(min == max) err = %v, want ErrInvalidRange", err)
	}
	if _, err := widget.NewGraph(nil, widget.TraceConfig{Min: 0, Max: 5}); !errors.Is(err, widget.ErrNilDriver) {
		t.Errorf("NewGraph(nil) err = %v, want ErrNilDriver", err)
	}
	g, err := widget.NewGraph(&widgettest.Recorder{}, widget.TraceConfig{Title: "ok", Min: 5, Max: -5})
	if err != nil {
		t.Fatalf("NewGraph(inverted range) err = %v, want nil", err)
	}
	if g.Cursor() != 0 {
		t.Errorf("new Cursor() = %d, want 0", g.Cursor())
	}
}
