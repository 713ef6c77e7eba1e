//go:build !tinygo

package hal

import (
	"fmt"
	"sync"
)

// hostDisplay stands in for the panel's display RAM. Present copies the
// frame under a lock; the window and preview read snapshots.
type hostDisplay struct {
	mu     sync.Mutex
	width  int
	height int
	buf    []byte
	frames uint64
}

func newHostDisplay(width, height int) *hostDisplay {
	return &hostDisplay{
		width:  width,
		height: height,
		buf:    make([]byte, FrameBytes(PixelFormatMonoVLSB, width, height)),
	}
}

func (d *hostDisplay) Width() int          { return d.width }
func (d *hostDisplay) Height() int         { return d.height }
func (d *hostDisplay) Format() PixelFormat { return PixelFormatMonoVLSB }

func (d *hostDisplay) Present(buf []byte) error {
	if len(buf) != len(d.buf) {
		return fmt.Errorf("hal: present %d bytes, want %d: %w", len(buf), len(d.buf), ErrFrameSize)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	copy(d.buf, buf)
	d.frames++
	return nil
}

// snapshot copies the last presented frame into dst and returns the number
// of frames presented so far.
func (d *hostDisplay) snapshot(dst []byte) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	copy(dst, d.buf)
	return d.frames
}
