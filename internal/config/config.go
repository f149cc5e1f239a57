// Package config loads instrument settings from defaults, an optional YAML
// or TOML file and TFTGAUGE_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"tftgauge/app"
	"tftgauge/hal"
	"tftgauge/widget"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. TFTGAUGE_SERIAL_PORT.
const EnvPrefix = "TFTGAUGE"

type Gauge struct {
	Radius          int     `mapstructure:"radius" yaml:"radius"`
	CenterX         int     `mapstructure:"center_x" yaml:"center_x"`
	CenterY         int     `mapstructure:"center_y" yaml:"center_y"`
	SegmentLength   int     `mapstructure:"segment_length" yaml:"segment_length"`
	StepDeg         int     `mapstructure:"step_deg" yaml:"step_deg"`
	SpacingDeg      int     `mapstructure:"spacing_deg" yaml:"spacing_deg"`
	StartDeg        int     `mapstructure:"start_deg" yaml:"start_deg"`
	EndDeg          int     `mapstructure:"end_deg" yaml:"end_deg"`
	ActiveColor     string  `mapstructure:"active_color" yaml:"active_color"`
	BackgroundColor string  `mapstructure:"background_color" yaml:"background_color"`
	WarnFraction    float64 `mapstructure:"warn_fraction" yaml:"warn_fraction"`
	WarnColor       string  `mapstructure:"warn_color" yaml:"warn_color"`
}

type Serial struct {
	Port string `mapstructure:"port" yaml:"port"` // e.g. /dev/ttyACM0; empty reads stdin
	Baud int    `mapstructure:"baud" yaml:"baud"`
}

type Panel struct {
	SPI       string `mapstructure:"spi" yaml:"spi"` // e.g. /dev/spidev0.0; empty picks the first port
	DC        string `mapstructure:"dc" yaml:"dc"`
	RST       string `mapstructure:"rst" yaml:"rst"`
	SpeedHz   int64  `mapstructure:"speed_hz" yaml:"speed_hz"`
	RowOffset int    `mapstructure:"row_offset" yaml:"row_offset"`
	ColOffset int    `mapstructure:"col_offset" yaml:"col_offset"`
	Rotated   bool   `mapstructure:"rotated" yaml:"rotated"`
	BGR       bool   `mapstructure:"bgr" yaml:"bgr"`
}

type Config struct {
	Mode       string  `mapstructure:"mode" yaml:"mode"` // graph | gauge | both
	Title      string  `mapstructure:"title" yaml:"title"`
	Min        float64 `mapstructure:"min" yaml:"min"`
	Max        float64 `mapstructure:"max" yaml:"max"`
	TraceColor string  `mapstructure:"trace_color" yaml:"trace_color"`
	Gauge      Gauge   `mapstructure:"gauge" yaml:"gauge"`

	Source    string `mapstructure:"source" yaml:"source"` // sine | serial
	Period    int    `mapstructure:"period" yaml:"period"`
	BootSteps int    `mapstructure:"boot_steps" yaml:"boot_steps"`

	// Host runner
	Hz     int    `mapstructure:"hz" yaml:"hz"`
	Ticks  uint64 `mapstructure:"ticks" yaml:"ticks"`
	Scale  int    `mapstructure:"scale" yaml:"scale"`
	Serial Serial `mapstructure:"serial" yaml:"serial"`
	Panel  Panel  `mapstructure:"panel" yaml:"panel"`
}

// Default mirrors app.DefaultConfig plus host runner settings.
func Default() Config {
	a := app.DefaultConfig()
	return Config{
		Mode:       string(a.Mode),
		Title:      a.Trace.Title,
		Min:        a.Trace.Min,
		Max:        a.Trace.Max,
		TraceColor: a.Trace.TraceColor.String(),
		Gauge: Gauge{
			Radius:          a.Gauge.Radius,
			CenterX:         a.Gauge.CenterX,
			CenterY:         a.Gauge.CenterY,
			SegmentLength:   a.Gauge.SegmentLength,
			StepDeg:         a.Gauge.StepDeg,
			SpacingDeg:      a.Gauge.SpacingDeg,
			StartDeg:        a.Gauge.StartDeg,
			EndDeg:          a.Gauge.EndDeg,
			ActiveColor:     a.Gauge.ActiveColor.String(),
			BackgroundColor: a.Gauge.BackgroundColor.String(),
			WarnFraction:    a.Gauge.WarnFraction,
			WarnColor:       a.Gauge.WarnColor.String(),
		},
		Source: string(a.Source),
		Period: a.Period,
		Hz:     30,
		Scale:  4,
		Serial: Serial{Baud: hal.DefaultBaud},
		Panel: Panel{
			DC:      "GPIO25",
			RST:     "GPIO27",
			SpeedHz: 8_000_000,
		},
	}
}

// Load reads path (optional) over the defaults and applies environment
// overrides.
func Load(path string) (Config, error) {
	v := viper.New()
	if err := setDefaults(v, Default()); err != nil {
		return Config{}, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return c, nil
}

// setDefaults registers every field of d so environment overrides apply to
// keys that no file mentions.
func setDefaults(v *viper.Viper, d Config) error {
	b, err := yaml.Marshal(d)
	if err != nil {
		return err
	}
	var m map[string]any
	if err := yaml.Unmarshal(b, &m); err != nil {
		return err
	}
	walkDefaults(v, "", m)
	return nil
}

func walkDefaults(v *viper.Viper, prefix string, m map[string]any) {
	for k, val := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := val.(map[string]any); ok {
			walkDefaults(v, key, sub)
			continue
		}
		v.SetDefault(key, val)
	}
}

// App converts the file form into the app configuration.
func (c Config) App() (app.Config, error) {
	var errs []error
	color := func(name, s string) widget.Color {
		col, err := widget.ParseColor(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
		return col
	}

	a := app.Config{
		Mode: app.Mode(c.Mode),
		Trace: widget.TraceConfig{
			Title:      c.Title,
			Min:        c.Min,
			Max:        c.Max,
			TraceColor: color("trace_color", c.TraceColor),
		},
		Gauge: widget.GaugeConfig{
			Radius:          c.Gauge.Radius,
			CenterX:         c.Gauge.CenterX,
			CenterY:         c.Gauge.CenterY,
			SegmentLength:   c.Gauge.SegmentLength,
			StepDeg:         c.Gauge.StepDeg,
			SpacingDeg:      c.Gauge.SpacingDeg,
			ActiveColor:     color("gauge.active_color", c.Gauge.ActiveColor),
			BackgroundColor: color("gauge.background_color", c.Gauge.BackgroundColor),
			StartDeg:        c.Gauge.StartDeg,
			EndDeg:          c.Gauge.EndDeg,
			WarnFraction:    c.Gauge.WarnFraction,
			WarnColor:       color("gauge.warn_color", c.Gauge.WarnColor),
		},
		Source:    app.SourceKind(c.Source),
		Period:    c.Period,
		BootSteps: c.BootSteps,
	}
	if err := errors.Join(errs...); err != nil {
		return app.Config{}, fmt.Errorf("config: %w", err)
	}
	return a, nil
}

const exampleHeader = `# tftgauge configuration.
# Every key can be overridden with a TFTGAUGE_ environment variable,
# nested keys joined by underscores (TFTGAUGE_SERIAL_PORT=/dev/ttyACM0).
`

// WriteExample writes the defaults as YAML to path. It refuses to replace an
// existing file.
func WriteExample(path string) error {
	b, err := yaml.Marshal(Default())
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := f.WriteString(exampleHeader); err != nil {
		f.Close()
		return err
	}
	if _, err := f.Write(b); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
