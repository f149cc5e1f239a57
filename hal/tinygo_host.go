//go:build tinygo && !baremetal

package hal

import (
	"fmt"
	"os"
	"runtime"
)

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	led    *tinyGoHostLED
	fb     *tinyGoHostFramebuffer
	serial Serial
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU pin mapping.
func New() HAL {
	l := &tinyGoHostLogger{}
	return &tinyGoHostHAL{
		logger: l,
		led:    &tinyGoHostLED{logger: l},
		fb:     newTinyGoHostFramebuffer(PanelWidth, PanelHeight),
		serial: tinyGoHostSerial{},
	}
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) LED() LED         { return h.led }
func (h *tinyGoHostHAL) Display() Display { return tinyGoHostDisplay{fb: h.fb} }
func (h *tinyGoHostHAL) Serial() Serial   { return h.serial }

type tinyGoHostDisplay struct {
	fb Framebuffer
}

func (d tinyGoHostDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}

type tinyGoHostLED struct {
	on     bool
	logger *tinyGoHostLogger
}

func (l *tinyGoHostLED) High() {
	if !l.on {
		l.logger.WriteLineString(fmt.Sprintf("led: HIGH (tinygo/%s)", runtime.GOOS))
	}
	l.on = true
}

func (l *tinyGoHostLED) Low() {
	if l.on {
		l.logger.WriteLineString(fmt.Sprintf("led: LOW (tinygo/%s)", runtime.GOOS))
	}
	l.on = false
}

type tinyGoHostSerial struct{}

func (tinyGoHostSerial) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (tinyGoHostSerial) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
