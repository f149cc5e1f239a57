package app

import (
	"fmt"

	"tftgauge/widget"
)

// Mode selects which instruments are drawn.
type Mode string

const (
	ModeGraph Mode = "graph"
	ModeGauge Mode = "gauge"
	ModeBoth  Mode = "both"
)

// SourceKind selects where samples come from.
type SourceKind string

const (
	SourceSine   SourceKind = "sine"
	SourceSerial SourceKind = "serial"
)

type Config struct {
	Mode  Mode
	Trace widget.TraceConfig
	Gauge widget.GaugeConfig

	Source SourceKind
	// Period is the sine source period in steps.
	Period int

	// BootSteps keeps the boot terminal on screen for that many steps.
	// Zero skips it.
	BootSteps int
}

// Dim grey used for unlit gauge segments.
const unlit widget.Color = 0x2104

// DefaultConfig returns a 0..100 trace with a gauge centred in the plot area.
func DefaultConfig() Config {
	return Config{
		Mode: ModeGraph,
		Trace: widget.TraceConfig{
			Title:      "Sensor",
			Min:        0,
			Max:        100,
			TraceColor: widget.Yellow,
		},
		Gauge: widget.GaugeConfig{
			Radius:          40,
			CenterX:         widget.ViewportCenterX,
			CenterY:         64,
			SegmentLength:   10,
			StepDeg:         10,
			SpacingDeg:      2,
			ActiveColor:     widget.Green,
			BackgroundColor: unlit,
			StartDeg:        widget.DefaultStartDeg,
			EndDeg:          widget.DefaultEndDeg,
			WarnFraction:    0.8,
			WarnColor:       widget.Red,
		},
		Source: SourceSine,
		Period: widget.ViewportWidth,
	}
}

func (c Config) validate() error {
	switch c.Mode {
	case ModeGraph, ModeGauge, ModeBoth:
	default:
		return fmt.Errorf("app: unknown mode %q", c.Mode)
	}
	switch c.Source {
	case SourceSine, SourceSerial:
	default:
		return fmt.Errorf("app: unknown source %q", c.Source)
	}
	return nil
}

func (c Config) drawsGraph() bool { return c.Mode == ModeGraph || c.Mode == ModeBoth }
func (c Config) drawsGauge() bool { return c.Mode == ModeGauge || c.Mode == ModeBoth }
