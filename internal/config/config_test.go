package config

import (
	"os"
	"path/filepath"
	"testing"

	"tftgauge/app"
	"tftgauge/widget"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	a, err := c.App()
	require.NoError(t, err)
	assert.Equal(t, app.DefaultConfig(), a)
}

func TestLoadYAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gauge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
mode: gauge
title: Boost
max: 2.5
gauge:
  radius: 30
  warn_color: orange
serial:
  port: /dev/ttyACM0
`), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gauge", c.Mode)
	assert.Equal(t, "Boost", c.Title)
	assert.Equal(t, 2.5, c.Max)
	assert.Equal(t, 30, c.Gauge.Radius)
	assert.Equal(t, "orange", c.Gauge.WarnColor)
	assert.Equal(t, Default().Gauge.StepDeg, c.Gauge.StepDeg, "untouched keys keep defaults")
	assert.Equal(t, "/dev/ttyACM0", c.Serial.Port)
	assert.Equal(t, 9600, c.Serial.Baud)

	a, err := c.App()
	require.NoError(t, err)
	assert.Equal(t, app.ModeGauge, a.Mode)
	assert.Equal(t, widget.Orange, a.Gauge.WarnColor)
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gauge.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
mode = "both"
trace_color = "#00ff00"

[panel]
spi = "/dev/spidev0.1"
rotated = true
`), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "both", c.Mode)
	assert.Equal(t, "/dev/spidev0.1", c.Panel.SPI)
	assert.True(t, c.Panel.Rotated)
	assert.Equal(t, "GPIO25", c.Panel.DC)

	a, err := c.App()
	require.NoError(t, err)
	assert.Equal(t, widget.Green, a.Trace.TraceColor)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TFTGAUGE_MAX", "250")
	t.Setenv("TFTGAUGE_SERIAL_BAUD", "115200")
	t.Setenv("TFTGAUGE_GAUGE_WARN_FRACTION", "0.5")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 250.0, c.Max)
	assert.Equal(t, 115200, c.Serial.Baud)
	assert.Equal(t, 0.5, c.Gauge.WarnFraction)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	c := Default()
	c.TraceColor = "mauve"
	c.Gauge.WarnColor = "0xZZ"
	_, err = c.App()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trace_color")
	assert.Contains(t, err.Error(), "gauge.warn_color")
}

func TestWriteExample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tftgauge.yaml")
	require.NoError(t, WriteExample(path))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	assert.Error(t, WriteExample(path), "existing file is kept")
}
