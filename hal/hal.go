package hal

import "errors"

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

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrFrameSize      = errors.New("frame size mismatch")
)

// PixelFormat defines the encoding of a presented frame.
type PixelFormat uint8

const (
	// PixelFormatMonoVLSB is 1bpp in 8-row pages: byte (y/8)*width+x, bit y%8,
	// least significant bit on top. This is the SSD1306 GDDRAM layout.
	PixelFormatMonoVLSB PixelFormat = iota + 1
)

// FrameBytes returns the size of one frame in format f.
func FrameBytes(f PixelFormat, width, height int) int {
	switch f {
	case PixelFormatMonoVLSB:
		return width * ((height + 7) / 8)
	}
	return 0
}

// Display is the panel. Present copies or transmits buf synchronously; the
// caller may reuse buf as soon as it returns.
type Display interface {
	Width() int
	Height() int
	Format() PixelFormat
	Present(buf []byte) error
}

// Time provides a base tick stream.
//
// The tick period is platform-defined and reported by TicksPerSecond.
type Time interface {
	Ticks() <-chan uint64
	TicksPerSecond() uint32
}

// HAL provides the only contact point between the renderer and the outside world.
type HAL interface {
	Logger() Logger
	LED() LED
	Display() Display
	Time() Time
}
