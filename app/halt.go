package app

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"wirebox/gfx/mono"
	"wirebox/hal"

	"tinygo.org/x/tinyfont"
)

// halt logs err and puts a halt screen on the panel. The caller stops
// rendering afterwards.
func halt(h hal.HAL, where string, err error) {
	if l := h.Logger(); l != nil {
		l.WriteLineString("wirebox halt: " + where + ": " + err.Error())
	}

	disp := h.Display()
	if disp == nil || disp.Format() != hal.PixelFormatMonoVLSB ||
		disp.Width() != mono.Width || disp.Height() != mono.Height {
		return
	}

	var fb mono.Framebuffer
	drawHalt(&fb, where, err.Error())

	defer func() {
		// A display that panicked on the frame may panic again here.
		_ = recover()
	}()
	_ = disp.Present(fb.Bytes())
}

func drawHalt(fb *mono.Framebuffer, where, msg string) {
	fb.Clear()

	font := &tinyfont.TomThumb
	fontHeight, fontOffset := int16(7), int16(6)
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)
	if fontWidth <= 0 {
		return
	}

	fg := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	cols := int16(mono.Width) / fontWidth

	lines := []string{"HALT", "at " + where}
	for _, line := range strings.Split(msg, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}

	// Top and bottom rules.
	for x := 0; x < mono.Width; x++ {
		fb.Plot(x, 0)
		fb.Plot(x, mono.Height-1)
	}

	y := int16(2)
	for _, line := range lines {
		for len(line) > 0 {
			if y+fontHeight > mono.Height-1 {
				return
			}
			chunk, rest := takeRunes(line, cols)
			drawX := int16(0)
			for _, r := range strings.ToUpper(chunk) {
				tinyfont.DrawChar(fb, font, drawX, y+fontOffset, r, fg)
				drawX += fontWidth
			}
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
