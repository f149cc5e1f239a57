package panel

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/spi/spitest"
)

// dcPin remembers where in the SPI stream every DC transition happened so
// the raw recording can be split back into commands and data.
type dcPin struct {
	*gpiotest.Pin
	w     *bytes.Buffer
	marks []mark
}

type mark struct {
	l   gpio.Level
	off int
}

func (p *dcPin) Out(l gpio.Level) error {
	p.marks = append(p.marks, mark{l: l, off: p.w.Len()})
	return p.Pin.Out(l)
}

type seg struct {
	Data  bool
	Bytes []byte
}

func cmd(b ...byte) seg  { return seg{Data: false, Bytes: b} }
func data(b ...byte) seg { return seg{Data: true, Bytes: b} }

func (p *dcPin) segments() []seg {
	all := p.w.Bytes()
	var out []seg
	for i, m := range p.marks {
		end := len(all)
		if i+1 < len(p.marks) {
			end = p.marks[i+1].off
		}
		b := all[m.off:end]
		if len(b) == 0 {
			continue
		}
		isData := m.l == gpio.High
		if n := len(out); n > 0 && out[n-1].Data == isData {
			out[n-1].Bytes = append(out[n-1].Bytes, b...)
			continue
		}
		out = append(out, seg{Data: isData, Bytes: append([]byte(nil), b...)})
	}
	return out
}

func (p *dcPin) reset() {
	p.w.Reset()
	p.marks = nil
}

func newTestDev(t *testing.T, opts *Opts) (*Dev, *dcPin) {
	t.Helper()
	var slept []time.Duration
	old := sleep
	sleep = func(d time.Duration) { slept = append(slept, d) }
	t.Cleanup(func() { sleep = old })

	var buf bytes.Buffer
	dc := &dcPin{Pin: &gpiotest.Pin{N: "DC", Num: 25}, w: &buf}
	d, err := NewSPI(spitest.NewRecordRaw(&buf), dc, opts)
	require.NoError(t, err)
	assert.NotEmpty(t, slept, "init should wait after SWRESET and SLPOUT")
	return d, dc
}

func TestInitSequence(t *testing.T) {
	d, dc := newTestDev(t, nil)
	segs := dc.segments()

	require.Len(t, segs, 11)
	assert.Equal(t, []seg{
		cmd(cmdSWRESET, cmdSLPOUT, cmdCOLMOD),
		data(colmod16bpp),
		cmd(cmdMADCTL),
		data(madctlMV | madctlMX),
		cmd(cmdNORON, cmdCASET),
		data(0, 0, 0, 159),
		cmd(cmdRASET),
		data(0, 0, 0, 127),
		cmd(cmdRAMWR),
	}, segs[:9])

	ram := segs[9]
	assert.True(t, ram.Data)
	assert.Len(t, ram.Bytes, 160*128*2)
	assert.Equal(t, make([]byte, 160*128*2), ram.Bytes)
	assert.Equal(t, cmd(cmdDISPON), segs[10])

	assert.Equal(t, 160, d.Width())
	assert.Equal(t, 128, d.Height())
	assert.Equal(t, 320, d.StrideBytes())
}

func TestInitOptions(t *testing.T) {
	rst := &gpiotest.Pin{N: "RST", Num: 24}
	_, dc := newTestDev(t, &Opts{W: 128, H: 128, ColOffset: 2, RowOffset: 1, Rotated: true, BGR: true, RST: rst})

	assert.Equal(t, gpio.High, rst.L)
	segs := dc.segments()
	assert.Equal(t, data(madctlMV|madctlMY|madctlBGR), segs[3])
	assert.Equal(t, data(0, 2, 0, 129), segs[5])
	assert.Equal(t, data(0, 1, 0, 128), segs[7])
}

func TestPresentSendsOnlyDirtyRows(t *testing.T) {
	d, dc := newTestDev(t, nil)
	dc.reset()

	require.NoError(t, d.Present())
	assert.Empty(t, dc.segments(), "nothing changed")

	buf := d.Buffer()
	off := 5*d.StrideBytes() + 3*2
	buf[off] = 0x00
	buf[off+1] = 0xF8 // red, little-endian

	require.NoError(t, d.Present())
	segs := dc.segments()
	require.Len(t, segs, 6)
	assert.Equal(t, cmd(cmdCASET), segs[0])
	assert.Equal(t, data(0, 0, 0, 159), segs[1])
	assert.Equal(t, cmd(cmdRASET), segs[2])
	assert.Equal(t, data(0, 5, 0, 5), segs[3])
	assert.Equal(t, cmd(cmdRAMWR), segs[4])
	row := segs[5].Bytes
	require.Len(t, row, 320)
	assert.Equal(t, []byte{0xF8, 0x00}, row[6:8], "panel expects big-endian")

	dc.reset()
	require.NoError(t, d.Present())
	assert.Empty(t, dc.segments(), "second flush is a no-op")
}

func TestPresentGroupsRuns(t *testing.T) {
	d, dc := newTestDev(t, nil)
	dc.reset()

	buf := d.Buffer()
	for _, y := range []int{10, 11, 20} {
		buf[y*d.StrideBytes()] = 0xFF
	}
	require.NoError(t, d.Present())

	var windows [][]byte
	segs := dc.segments()
	for i, s := range segs {
		if !s.Data && len(s.Bytes) > 0 && s.Bytes[len(s.Bytes)-1] == cmdRASET {
			windows = append(windows, segs[i+1].Bytes)
		}
	}
	assert.Equal(t, [][]byte{{0, 10, 0, 11}, {0, 20, 0, 20}}, windows)
}

func TestClearRGB(t *testing.T) {
	d, _ := newTestDev(t, &Opts{W: 2, H: 2})
	d.ClearRGB(0, 0, 0xFF)
	assert.Equal(t, []byte{0x1F, 0, 0x1F, 0, 0x1F, 0, 0x1F, 0}, d.Buffer())
}

func TestHalt(t *testing.T) {
	d, dc := newTestDev(t, nil)
	dc.reset()

	require.NoError(t, d.Halt())
	assert.Equal(t, []seg{cmd(cmdDISPOFF)}, dc.segments())
	assert.ErrorIs(t, d.Present(), ErrHalted)
	assert.NoError(t, d.Halt())
	assert.Contains(t, d.String(), "160x128")
}

func TestOptsValidation(t *testing.T) {
	tests := []struct {
		name    string
		opts    *Opts
		wantErr bool
	}{
		{"nil options (uses defaults)", nil, false},
		{"valid 128x128", &Opts{W: 128, H: 128}, false},
		{"full RAM 162x132", &Opts{W: 162, H: 132}, false},
		{"width > 162", &Opts{W: 200, H: 128}, true},
		{"height > 132", &Opts{W: 160, H: 140}, true},
		{"negative width", &Opts{W: -1, H: 128}, true},
		{"offset overflow", &Opts{W: 160, H: 128, ColOffset: 3}, true},
		{"negative offset", &Opts{RowOffset: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old := sleep
			sleep = func(time.Duration) {}
			defer func() { sleep = old }()

			var buf bytes.Buffer
			dc := &dcPin{Pin: &gpiotest.Pin{N: "DC"}, w: &buf}
			_, err := NewSPI(spitest.NewRecordRaw(&buf), dc, tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	_, err := NewSPI(spitest.NewRecordRaw(&bytes.Buffer{}), nil, nil)
	assert.Error(t, err, "dc pin is required")
}
