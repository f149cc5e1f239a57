//go:build tinygo && baremetal && !pybadge

package hal

import (
	"machine"
)

type tinyGoHAL struct {
	logger *uartLogger
	led    *pinLED
	fb     Framebuffer
	serial Serial
}

// New returns a HAL for boards without a wired panel. Samples and log lines
// share machine.Serial; the framebuffer is a stub.
func New() HAL {
	uart := machine.Serial
	uart.Configure(machine.UARTConfig{BaudRate: 115200})

	return &tinyGoHAL{
		logger: &uartLogger{uart: uart},
		led:    newPinLED(machine.LED),
		fb:     &stubFramebuffer{w: PanelWidth, h: PanelHeight, format: PixelFormatRGB565},
		serial: &uartSerial{uart: uart},
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) LED() LED         { return h.led }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Serial() Serial   { return h.serial }
