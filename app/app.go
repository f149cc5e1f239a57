// Package app wires the instruments to a HAL: it pulls one sample per step
// and redraws the trace and/or gauge into the panel framebuffer.
package app

import (
	"errors"
	"fmt"

	"tftgauge/gfx"
	"tftgauge/hal"
	"tftgauge/widget"
)

type instrument struct {
	h      hal.HAL
	cfg    Config
	src    Source
	disp   *gfx.FramebufferDisplay
	canvas *gfx.Canvas
	graph  *widget.Graph
	gauge  *widget.SegGauge
	boot   int
	warn   bool
}

// New builds the instruments described by cfg on h and returns the per-tick
// step function. Samples come from the source named in cfg.
func New(h hal.HAL, cfg Config) (func() error, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	var src Source
	switch cfg.Source {
	case SourceSerial:
		s := h.Serial()
		if s == nil {
			return nil, errors.New("app: serial source needs a serial port")
		}
		src = NewLineSource(s, h.Logger())
	default:
		src = NewSineSource(cfg.Trace.Min, cfg.Trace.Max, cfg.Period)
	}
	return NewWithSource(h, cfg, src)
}

// NewWithSource is New with an explicit sample source.
func NewWithSource(h hal.HAL, cfg Config, src Source) (func() error, error) {
	in, err := newInstrument(h, cfg, src)
	if err != nil {
		if l := h.Logger(); l != nil {
			l.WriteLineString("app: " + err.Error())
		}
		return nil, err
	}
	return in.step, nil
}

func newInstrument(h hal.HAL, cfg Config, src Source) (*instrument, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.New("app: nil source")
	}
	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return nil, errors.New("app: no framebuffer")
	}
	fb := disp.Framebuffer()
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("app: unsupported pixel format %d", fb.Format())
	}

	in := &instrument{h: h, cfg: cfg, src: src}
	in.disp = gfx.NewFramebufferDisplay(fb)
	in.canvas = gfx.NewCanvas(in.disp)
	in.canvas.Clear(widget.Black)

	if cfg.drawsGraph() {
		g, err := widget.NewGraph(in.canvas, cfg.Trace)
		if err != nil {
			return nil, fmt.Errorf("graph: %w", err)
		}
		in.graph = g
	}
	if cfg.drawsGauge() {
		g, err := widget.NewSegGauge(in.canvas, cfg.Gauge)
		if err != nil {
			return nil, fmt.Errorf("gauge: %w", err)
		}
		in.gauge = g
	}

	if cfg.BootSteps > 0 {
		bootScreen(in.disp, cfg)
		in.boot = cfg.BootSteps
	}

	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("app: %s mode, %q %g..%g, source %s",
			cfg.Mode, cfg.Trace.Title, cfg.Trace.Min, cfg.Trace.Max, cfg.Source))
	}
	if err := in.flush(); err != nil {
		return nil, err
	}
	return in, nil
}

func (in *instrument) step() error {
	if in.boot > 0 {
		in.boot--
		if in.boot == 0 {
			in.canvas.Clear(widget.Black)
			return in.flush()
		}
		return nil
	}

	v, ok := in.src.Next()
	if !ok {
		return nil
	}

	// The gauge shares the trace's literal normalization.
	frac := widget.Normalize(v, in.cfg.Trace.Min, in.cfg.Trace.Max)
	if in.graph != nil {
		in.graph.Draw(v)
	}
	if in.gauge != nil {
		in.gauge.Draw(frac)
	}
	in.setWarn(in.cfg.Gauge.WarnFraction > 0 && frac >= in.cfg.Gauge.WarnFraction)
	return in.flush()
}

func (in *instrument) setWarn(on bool) {
	if on == in.warn {
		return
	}
	in.warn = on
	led := in.h.LED()
	if led == nil {
		return
	}
	if on {
		led.High()
	} else {
		led.Low()
	}
}

func (in *instrument) flush() error {
	err := in.canvas.Flush()
	if errors.Is(err, hal.ErrNotImplemented) {
		return nil
	}
	return err
}
