package app

import (
	"fmt"

	"tftgauge/gfx"
	"tftgauge/internal/buildinfo"
	"tftgauge/widget"

	"tinygo.org/x/tinyterm"
)

// bootScreen prints the build and the active configuration in a terminal
// covering the whole panel.
func bootScreen(d *gfx.FramebufferDisplay, cfg Config) {
	h, off, err := gfx.LineMetrics(gfx.DefaultFont)
	if err != nil {
		h, off = 8, 7
	}
	_ = d.FillRectangle(0, 0, widget.ViewportWidth, widget.ViewportHeight, widget.Black.RGBA())

	t := tinyterm.NewTerminal(d)
	t.Configure(&tinyterm.Config{
		Font:       gfx.DefaultFont,
		FontHeight: h,
		FontOffset: off,
	})
	fmt.Fprintf(t, "tftgauge %s\r\n", buildinfo.Short())
	fmt.Fprintf(t, "mode   %s\r\n", cfg.Mode)
	fmt.Fprintf(t, "title  %s\r\n", cfg.Trace.Title)
	fmt.Fprintf(t, "range  %g..%g\r\n", cfg.Trace.Min, cfg.Trace.Max)
	fmt.Fprintf(t, "source %s\r\n", cfg.Source)
	_ = d.Display()
}
