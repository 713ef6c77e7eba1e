//go:build !tinygo

package hal

import (
	"io"

	"wirebox/gfx/mono"

	"golang.org/x/term"
)

// termPreview mirrors the host display on a terminal. On a TTY it redraws in
// place every frame, using a half-size rendering when the terminal is too
// small for the full panel. Otherwise only the last frame is written, once.
type termPreview struct {
	w       io.Writer
	disp    *hostDisplay
	live    bool
	compact bool

	frame []byte
	seen  uint64
}

func newTermPreview(w io.Writer, fd int, disp *hostDisplay) *termPreview {
	p := &termPreview{
		w:     w,
		disp:  disp,
		frame: make([]byte, len(disp.buf)),
	}
	if term.IsTerminal(fd) {
		p.live = true
		if cols, rows, err := term.GetSize(fd); err == nil {
			p.compact = cols < disp.width || rows < disp.height/2+1
		}
		io.WriteString(w, "\x1b[2J")
	}
	return p
}

func (p *termPreview) update() {
	n := p.disp.snapshot(p.frame)
	if !p.live || n == p.seen {
		return
	}
	p.seen = n
	io.WriteString(p.w, "\x1b[H")
	p.draw()
}

func (p *termPreview) finish() {
	if p.live {
		return
	}
	p.disp.snapshot(p.frame)
	p.draw()
}

func (p *termPreview) draw() {
	// Each cell covers one pixel, or 2x2 in compact mode; a text line holds
	// two rows of cells.
	n := 1
	if p.compact {
		n = 2
	}
	_ = mono.WriteHalfBlocks(p.w, p.disp.width/n, p.disp.height/n, func(x, y int) bool {
		return p.any(x*n, y*n, n, n)
	})
}

func (p *termPreview) any(x0, y0, w, h int) bool {
	for y := y0; y < y0+h && y < p.disp.height; y++ {
		for x := x0; x < x0+w && x < p.disp.width; x++ {
			if monoPixel(p.frame, p.disp.width, x, y) {
				return true
			}
		}
	}
	return false
}
