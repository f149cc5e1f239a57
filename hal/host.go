//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type hostHAL struct {
	logger *hostLogger
	led    *hostLED
	fb     Framebuffer
	serial Serial
	closer io.Closer
}

// Option customizes the host HAL.
type Option func(*hostOptions)

type hostOptions struct {
	logOut     io.Writer
	fb         Framebuffer
	serialPath string
	serialBaud int
	serial     Serial
}

// WithLogOutput sends log lines to w instead of stderr.
func WithLogOutput(w io.Writer) Option {
	return func(o *hostOptions) { o.logOut = w }
}

// WithFramebuffer replaces the in-memory framebuffer, e.g. with an SPI panel.
func WithFramebuffer(fb Framebuffer) Option {
	return func(o *hostOptions) { o.fb = fb }
}

// WithSerialPort reads samples from a serial device instead of stdin.
func WithSerialPort(path string, baud int) Option {
	return func(o *hostOptions) {
		o.serialPath = path
		o.serialBaud = baud
	}
}

// WithSerial uses s as the sample stream.
func WithSerial(s Serial) Option {
	return func(o *hostOptions) { o.serial = s }
}

// New returns a host HAL implementation.
func New(opts ...Option) (HAL, error) {
	return newHost(opts...)
}

func newHost(opts ...Option) (*hostHAL, error) {
	o := hostOptions{logOut: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	logger := newHostLogger(o.logOut)
	h := &hostHAL{
		logger: logger,
		led:    &hostLED{logger: logger},
		fb:     o.fb,
		serial: o.serial,
	}
	if h.fb == nil {
		h.fb = newHostFramebuffer(PanelWidth, PanelHeight)
	}

	switch {
	case h.serial != nil:
	case o.serialPath != "":
		port, err := openSerialPort(o.serialPath, o.serialBaud)
		if err != nil {
			return nil, fmt.Errorf("hal: open serial %s: %w", o.serialPath, err)
		}
		h.serial = port
		h.closer = port
		logger.log.Info().Str("port", o.serialPath).Int("baud", o.serialBaud).Msg("serial open")
	default:
		h.serial = &hostSerial{r: os.Stdin, w: os.Stdout}
	}
	return h, nil
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) LED() LED         { return h.led }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Serial() Serial   { return h.serial }

// Close releases the serial port if one was opened.
func (h *hostHAL) Close() error {
	if h.closer == nil {
		return nil
	}
	err := h.closer.Close()
	h.closer = nil
	return err
}

type hostDisplay struct {
	fb Framebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostLogger struct {
	mu  sync.Mutex
	log zerolog.Logger
}

func newHostLogger(w io.Writer) *hostLogger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return &hostLogger{log: zerolog.New(out).With().Timestamp().Logger()}
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Info().Msg(s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Info().Msg(string(b))
}

type hostLED struct {
	mu     sync.Mutex
	on     bool
	logger *hostLogger
}

func (l *hostLED) High() { l.set(true) }
func (l *hostLED) Low()  { l.set(false) }

// set only logs transitions; the app drives the LED every tick.
func (l *hostLED) set(on bool) {
	l.mu.Lock()
	changed := l.on != on
	l.on = on
	l.mu.Unlock()
	if !changed {
		return
	}
	if on {
		l.logger.WriteLineString("led: HIGH")
	} else {
		l.logger.WriteLineString("led: LOW")
	}
}
