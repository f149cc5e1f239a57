// Package panel drives an ST7735 TFT over SPI from a Linux host using periph.
//
// The device keeps a little-endian RGB565 framebuffer in memory and
// implements hal.Framebuffer, so the same gauges that render into the preview
// window can render onto real glass. Present only sends the rows that changed
// since the previous flush.
package panel

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"tftgauge/hal"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// ST7735 commands.
const (
	cmdSWRESET = 0x01
	cmdSLPOUT  = 0x11
	cmdNORON   = 0x13
	cmdDISPOFF = 0x28
	cmdDISPON  = 0x29
	cmdCASET   = 0x2A
	cmdRASET   = 0x2B
	cmdRAMWR   = 0x2C
	cmdMADCTL  = 0x36
	cmdCOLMOD  = 0x3A
)

// MADCTL bits.
const (
	madctlMY  = 0x80
	madctlMX  = 0x40
	madctlMV  = 0x20
	madctlBGR = 0x08
)

const colmod16bpp = 0x05

// ErrHalted is returned by operations on a device after Halt.
var ErrHalted = errors.New("panel: halted")

// sleep is replaced in tests.
var sleep = time.Sleep

// Opts is the configuration for the panel.
type Opts struct {
	// Display dimensions in pixels, landscape.
	W int // Width (default: 160, must be ≤162)
	H int // Height (default: 128, must be ≤132)

	// Offsets of the visible area inside controller RAM. Green-tab modules
	// typically need 1 or 2 here.
	RowOffset int
	ColOffset int

	Rotated bool // 180° rotation
	BGR     bool // Panel wired with blue and red swapped

	// Optional hardware reset pin
	RST gpio.PinIO

	// SPI clock (default: 8MHz)
	Hz physic.Frequency
}

// Dev is the device handle for the panel.
type Dev struct {
	c   conn.Conn
	dc  gpio.PinOut
	rst gpio.PinIO

	w, h   int
	rowOff int
	colOff int
	stride int
	maxTx  int
	buf    []byte // what the app draws into
	last   []byte // what the panel currently shows
	tx     []byte
	halted bool
	name   string
}

var _ hal.Framebuffer = (*Dev)(nil)

// NewSPI creates a new panel connected via SPI.
//
// The SPI port is configured for Mode0, 8-bit transfers. The dc
// (Data/Command) GPIO pin must be provided and configured as an output.
//
// opts can be nil to use defaults (160x128 at 8MHz).
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	o := *opts
	if o.W == 0 {
		o.W = hal.PanelWidth
	}
	if o.H == 0 {
		o.H = hal.PanelHeight
	}
	if o.Hz == 0 {
		o.Hz = 8 * physic.MegaHertz
	}
	if o.W < 0 || o.W > 162 {
		return nil, errors.New("panel: width must be between 1 and 162")
	}
	if o.H < 0 || o.H > 132 {
		return nil, errors.New("panel: height must be between 1 and 132")
	}
	if o.RowOffset < 0 || o.ColOffset < 0 || o.W+o.ColOffset > 162 || o.H+o.RowOffset > 132 {
		return nil, errors.New("panel: offsets place the window outside controller RAM")
	}
	if dc == nil {
		return nil, errors.New("panel: dc pin is required")
	}

	c, err := p.Connect(o.Hz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("panel: connect: %w", err)
	}

	stride := o.W * 2
	d := &Dev{
		c:      c,
		dc:     dc,
		rst:    o.RST,
		w:      o.W,
		h:      o.H,
		rowOff: o.RowOffset,
		colOff: o.ColOffset,
		stride: stride,
		maxTx:  stride * o.H,
		buf:    make([]byte, stride*o.H),
		last:   make([]byte, stride*o.H),
		tx:     make([]byte, stride*o.H),
		name:   fmt.Sprint(p),
	}
	if l, ok := c.(conn.Limits); ok && l.MaxTxSize() > 0 {
		d.maxTx = l.MaxTxSize()
	}

	if err := d.init(&o); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dev) init(o *Opts) error {
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("panel: failed to pull RST low: %w", err)
		}
		sleep(10 * time.Millisecond)
		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("panel: failed to pull RST high: %w", err)
		}
		sleep(120 * time.Millisecond)
	}

	if err := d.sendCommand(cmdSWRESET); err != nil {
		return err
	}
	sleep(150 * time.Millisecond)
	if err := d.sendCommand(cmdSLPOUT); err != nil {
		return err
	}
	sleep(120 * time.Millisecond)

	madctl := byte(madctlMV | madctlMX)
	if o.Rotated {
		madctl = madctlMV | madctlMY
	}
	if o.BGR {
		madctl |= madctlBGR
	}
	if err := d.sendCommand(cmdCOLMOD, colmod16bpp); err != nil {
		return err
	}
	if err := d.sendCommand(cmdMADCTL, madctl); err != nil {
		return err
	}
	if err := d.sendCommand(cmdNORON); err != nil {
		return err
	}

	// RAM content is undefined after reset; start from black to match last.
	if err := d.writeRows(0, d.h); err != nil {
		return err
	}
	return d.sendCommand(cmdDISPON)
}

// sendCommand sends cmd with DC low followed by its parameters with DC high.
func (d *Dev) sendCommand(cmd byte, params ...byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	if err := d.c.Tx([]byte{cmd}, nil); err != nil {
		return err
	}
	if len(params) == 0 {
		return nil
	}
	return d.sendData(params)
}

func (d *Dev) sendData(data []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	for len(data) > 0 {
		n := len(data)
		if n > d.maxTx {
			n = d.maxTx
		}
		if err := d.c.Tx(data[:n], nil); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// setWindow selects the inclusive RAM area written by the next RAMWR.
func (d *Dev) setWindow(x0, y0, x1, y1 int) error {
	x0 += d.colOff
	x1 += d.colOff
	y0 += d.rowOff
	y1 += d.rowOff
	if err := d.sendCommand(cmdCASET, 0, byte(x0), 0, byte(x1)); err != nil {
		return err
	}
	if err := d.sendCommand(cmdRASET, 0, byte(y0), 0, byte(y1)); err != nil {
		return err
	}
	return d.sendCommand(cmdRAMWR)
}

// writeRows pushes rows [y0, y1) of buf, big-endian.
func (d *Dev) writeRows(y0, y1 int) error {
	if err := d.setWindow(0, y0, d.w-1, y1-1); err != nil {
		return err
	}
	src := d.buf[y0*d.stride : y1*d.stride]
	n := hal.SwapRGB565(d.tx, src)
	if err := d.sendData(d.tx[:n]); err != nil {
		return err
	}
	copy(d.last[y0*d.stride:], src)
	return nil
}

func (d *Dev) Width() int              { return d.w }
func (d *Dev) Height() int             { return d.h }
func (d *Dev) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (d *Dev) StrideBytes() int        { return d.stride }
func (d *Dev) Buffer() []byte          { return d.buf }

func (d *Dev) ClearRGB(r, g, b uint8) {
	hal.FillRGB565(d.buf, r, g, b)
}

// Present sends every run of rows that differs from what the panel shows.
func (d *Dev) Present() error {
	if d.halted {
		return ErrHalted
	}
	start := -1
	for y := 0; y <= d.h; y++ {
		dirty := false
		if y < d.h {
			row := y * d.stride
			dirty = !bytes.Equal(d.buf[row:row+d.stride], d.last[row:row+d.stride])
		}
		switch {
		case dirty && start < 0:
			start = y
		case !dirty && start >= 0:
			if err := d.writeRows(start, y); err != nil {
				return err
			}
			start = -1
		}
	}
	return nil
}

// Halt turns the display off. The device must be re-created to be used again.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	d.halted = true
	return d.sendCommand(cmdDISPOFF)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("st7735.Dev{%s, %dx%d}", d.name, d.w, d.h)
}
