// Package mono implements the 128x64 monochrome framebuffer in the panel's
// native page layout.
//
// Memory layout (SSD1306 horizontal addressing):
//
//	byte index = (y/8)*Width + x
//	bit        = y%8, bit 0 is the top row of the page
//
// So the first 128 bytes hold rows 0..7, the next 128 rows 8..15, and so on.
// Flipping the bit order turns the picture into 8-row vertical stripes of
// mirrored rows, not a crash, so the layout is pinned by golden tests.
package mono

import (
	"image/color"
	"math/bits"

	"tinygo.org/x/drivers"
)

const (
	Width  = 128
	Height = 64
	Pages  = Height / 8
	Size   = Width * Height / 8
)

// Framebuffer is a statically sized 1-bpp bitmap.
type Framebuffer struct {
	buf [Size]byte
}

var _ drivers.Displayer = (*Framebuffer)(nil)

// Clear turns every pixel off.
func (f *Framebuffer) Clear() {
	f.buf = [Size]byte{}
}

// Plot turns on the pixel at (x, y) without touching its neighbours.
// Coordinates outside the panel are ignored.
func (f *Framebuffer) Plot(x, y int) {
	if uint(x) >= Width || uint(y) >= Height {
		return
	}
	f.buf[(y>>3)*Width+x] |= 1 << uint(y&7)
}

// Unplot turns off the pixel at (x, y).
func (f *Framebuffer) Unplot(x, y int) {
	if uint(x) >= Width || uint(y) >= Height {
		return
	}
	f.buf[(y>>3)*Width+x] &^= 1 << uint(y&7)
}

// At reports whether the pixel at (x, y) is on.
func (f *Framebuffer) At(x, y int) bool {
	if uint(x) >= Width || uint(y) >= Height {
		return false
	}
	return f.buf[(y>>3)*Width+x]&(1<<uint(y&7)) != 0
}

// Bytes returns the packed buffer. It aliases the framebuffer.
func (f *Framebuffer) Bytes() []byte { return f.buf[:] }

// Count returns the number of pixels turned on.
func (f *Framebuffer) Count() int {
	n := 0
	for _, b := range f.buf {
		n += bits.OnesCount8(b)
	}
	return n
}

// Size implements drivers.Displayer.
func (f *Framebuffer) Size() (x, y int16) { return Width, Height }

// SetPixel implements drivers.Displayer. Any non-black color turns the pixel on.
func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	if c.R != 0 || c.G != 0 || c.B != 0 {
		f.Plot(int(x), int(y))
		return
	}
	f.Unplot(int(x), int(y))
}

// Display implements drivers.Displayer. Flushing is the frame loop's job.
func (f *Framebuffer) Display() error { return nil }
