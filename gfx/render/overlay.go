package render

import (
	"image/color"

	"wirebox/gfx/mono"

	"tinygo.org/x/tinyfont"
)

var overlayColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// overlay draws "NN FPS" with TomThumb, one glyph at a time from a fixed
// digit buffer so the frame loop stays allocation free.
type overlay struct {
	font     tinyfont.Fonter
	advance  int16
	baseline int16
	digits   [10]byte
}

func (o *overlay) init() {
	o.font = &tinyfont.TomThumb
	_, outbox := tinyfont.LineWidth(o.font, "0")
	o.advance = int16(outbox)
	if o.advance <= 0 {
		o.advance = 4
	}
	o.baseline = 6
}

func (o *overlay) draw(fb *mono.Framebuffer, v uint32) {
	i := len(o.digits)
	for {
		i--
		o.digits[i] = byte('0' + v%10)
		v /= 10
		if v == 0 || i == 0 {
			break
		}
	}

	x := int16(0)
	for _, c := range o.digits[i:] {
		tinyfont.DrawChar(fb, o.font, x, o.baseline, rune(c), overlayColor)
		x += o.advance
	}
	x += o.advance
	for _, r := range "FPS" {
		tinyfont.DrawChar(fb, o.font, x, o.baseline, r, overlayColor)
		x += o.advance
	}
}
