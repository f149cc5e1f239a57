package hal

import (
	"errors"
	"io"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp little-endian: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Panel geometry of the ST7735 class displays the instruments target.
const (
	PanelWidth  = 160
	PanelHeight = 128
)

// DefaultBaud is used when a serial port is opened without an explicit rate.
const DefaultBaud = 9600

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Serial is a byte stream to the sample producer (UART, USB CDC, stdin).
type Serial interface {
	io.Reader
	io.Writer
}

// HAL provides the only contact point between the firmware and the outside world.
type HAL interface {
	Logger() Logger
	LED() LED
	Display() Display
	Serial() Serial
}

// AppFactory builds the per-tick step function of an app bound to h.
type AppFactory func(h HAL) (step func() error, err error)
