package app

import (
	"time"

	"tftgauge/hal"
)

// Run steps the instruments hz times per second and never returns
// (TinyGo/native entrypoint). Step errors are logged. A failed setup is
// painted on the panel and parks the firmware.
func Run(h hal.HAL, cfg Config, hz int) {
	step, err := New(h, cfg)
	if err != nil {
		faultScreen(h, err)
		select {}
	}
	if hz <= 0 {
		hz = 30
	}

	t := time.NewTicker(time.Second / time.Duration(hz))
	defer t.Stop()
	for range t.C {
		if err := step(); err != nil {
			if l := h.Logger(); l != nil {
				l.WriteLineString("app: step: " + err.Error())
			}
		}
	}
}
