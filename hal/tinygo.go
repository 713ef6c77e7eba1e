//go:build tinygo && baremetal

package hal

import (
	"machine"
)

type tinyGoHAL struct {
	logger *uartLogger
	led    *pinLED
	disp   *ssd1306Display
	t      *tinyGoTime
}

// New returns a board HAL with an SSD1306 128x64 panel on I2C0.
//
// UART: UART0 on the board's default pins, 115200 8N1.
// I2C: I2C0 on the board's default SDA/SCL pins at 400 kHz, panel at 0x3C.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{BaudRate: 115200})

	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	bus := machine.I2C0
	bus.Configure(machine.I2CConfig{Frequency: 400 * machine.KHz})

	return &tinyGoHAL{
		logger: &uartLogger{uart: uart},
		led:    &pinLED{pin: ledPin},
		disp:   newSSD1306Display(bus, 128, 64),
		t:      newTinyGoTime(),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) LED() LED         { return h.led }
func (h *tinyGoHAL) Display() Display { return h.disp }
func (h *tinyGoHAL) Time() Time       { return h.t }
