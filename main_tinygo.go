//go:build tinygo

package main

import (
	"tftgauge/app"
	"tftgauge/hal"
)

// On hardware the samples arrive on the board's serial port, one per line.
func main() {
	cfg := app.DefaultConfig()
	cfg.Source = app.SourceSerial
	cfg.BootSteps = 60
	app.Run(hal.New(), cfg, 30)
}
