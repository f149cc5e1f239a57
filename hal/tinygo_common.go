//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type tinyGoDisplay struct {
	fb Framebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

type uartLogger struct {
	uart machine.Serialer
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	l.uart.Write(b)
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type pinLED struct {
	pin machine.Pin
}

func (l *pinLED) High() { l.pin.High() }
func (l *pinLED) Low()  { l.pin.Low() }

func newPinLED(pin machine.Pin) *pinLED {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &pinLED{pin: pin}
}

type uartSerial struct {
	uart machine.Serialer
}

// Read blocks until at least one byte is buffered.
func (s *uartSerial) Read(p []byte) (int, error) {
	if s.uart == nil {
		return 0, ErrNotImplemented
	}
	if len(p) == 0 {
		return 0, nil
	}
	for s.uart.Buffered() == 0 {
		time.Sleep(time.Millisecond)
	}
	n := 0
	for n < len(p) && s.uart.Buffered() > 0 {
		c, err := s.uart.ReadByte()
		if err != nil {
			return n, err
		}
		p[n] = c
		n++
	}
	return n, nil
}

func (s *uartSerial) Write(p []byte) (int, error) {
	if s.uart == nil {
		return 0, ErrNotImplemented
	}
	return s.uart.Write(p)
}
