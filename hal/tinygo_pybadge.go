//go:build tinygo && baremetal && pybadge

package hal

import (
	"machine"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/st7735"
)

type pyBadgeHAL struct {
	logger *uartLogger
	led    *pinLED
	fb     Framebuffer
	serial Serial
}

// New returns a PyBadge HAL: ST7735 160x128 on SPI1, samples and log lines
// on the USB CDC serial.
func New() HAL {
	uart := machine.Serial
	uart.Configure(machine.UARTConfig{BaudRate: 115200})

	machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.SPI1_SCK_PIN,
		SDO:       machine.SPI1_SDO_PIN,
		SDI:       machine.SPI1_SDI_PIN,
		Frequency: 16000000,
	})
	lcd := st7735.New(machine.SPI1, machine.TFT_RST, machine.TFT_DC, machine.TFT_CS, machine.TFT_LITE)
	lcd.Configure(st7735.Config{Rotation: drivers.Rotation90})

	return &pyBadgeHAL{
		logger: &uartLogger{uart: uart},
		led:    newPinLED(machine.LED),
		fb:     newST7735Framebuffer(&lcd),
		serial: &uartSerial{uart: uart},
	}
}

func (h *pyBadgeHAL) Logger() Logger   { return h.logger }
func (h *pyBadgeHAL) LED() LED         { return h.led }
func (h *pyBadgeHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *pyBadgeHAL) Serial() Serial   { return h.serial }

// st7735Framebuffer keeps an RGB565 copy in RAM and pushes it whole on Present.
type st7735Framebuffer struct {
	lcd    *st7735.Device
	w      int
	h      int
	stride int
	buf    []byte
	tx     []byte
}

func newST7735Framebuffer(lcd *st7735.Device) *st7735Framebuffer {
	w, h := lcd.Size()
	stride := int(w) * 2
	return &st7735Framebuffer{
		lcd:    lcd,
		w:      int(w),
		h:      int(h),
		stride: stride,
		buf:    make([]byte, stride*int(h)),
		tx:     make([]byte, stride*int(h)),
	}
}

func (f *st7735Framebuffer) Width() int             { return f.w }
func (f *st7735Framebuffer) Height() int            { return f.h }
func (f *st7735Framebuffer) Format() PixelFormat    { return PixelFormatRGB565 }
func (f *st7735Framebuffer) StrideBytes() int       { return f.stride }
func (f *st7735Framebuffer) Buffer() []byte         { return f.buf }
func (f *st7735Framebuffer) ClearRGB(r, g, b uint8) { FillRGB565(f.buf, r, g, b) }

func (f *st7735Framebuffer) Present() error {
	// The framebuffer is little-endian, the panel wants big-endian.
	SwapRGB565(f.tx, f.buf)
	return f.lcd.DrawRGBBitmap8(0, 0, f.tx, int16(f.w), int16(f.h))
}
