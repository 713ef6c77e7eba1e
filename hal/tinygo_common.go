//go:build tinygo && baremetal

package hal

import (
	"fmt"
	"machine"
	"time"

	"tinygo.org/x/drivers/ssd1306"
)

type tinyGoTime struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoTime() *tinyGoTime {
	t := &tinyGoTime{ch: make(chan uint64, 16)}
	go func() {
		ticker := time.NewTicker(1 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinyGoTime) Ticks() <-chan uint64   { return t.ch }
func (t *tinyGoTime) TicksPerSecond() uint32 { return 1000 }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type pinLED struct {
	pin machine.Pin
}

func (l *pinLED) High() { l.pin.High() }
func (l *pinLED) Low()  { l.pin.Low() }

// ssd1306Display flushes frames through the driver's GDDRAM buffer. The
// driver packs pixels the same way as PixelFormatMonoVLSB, so a frame is
// copied in as is.
type ssd1306Display struct {
	dev    *ssd1306.Device
	width  int
	height int
}

func newSSD1306Display(bus *machine.I2C, width, height int16) *ssd1306Display {
	dev := ssd1306.NewI2C(bus)
	dev.Configure(ssd1306.Config{
		Width:    width,
		Height:   height,
		Address:  ssd1306.Address_128_32,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	dev.ClearDisplay()
	return &ssd1306Display{dev: dev, width: int(width), height: int(height)}
}

func (d *ssd1306Display) Width() int          { return d.width }
func (d *ssd1306Display) Height() int         { return d.height }
func (d *ssd1306Display) Format() PixelFormat { return PixelFormatMonoVLSB }

func (d *ssd1306Display) Present(buf []byte) error {
	if err := d.dev.SetBuffer(buf); err != nil {
		return fmt.Errorf("ssd1306: %w: %v", ErrFrameSize, err)
	}
	return d.dev.Display()
}
