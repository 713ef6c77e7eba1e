package hal

import "image/color"

var (
	// PixelOn and PixelOff are the colors used when a mono frame is shown on
	// an RGB surface.
	PixelOn  = color.RGBA{R: 0xE0, G: 0xF4, B: 0xFF, A: 0xFF}
	PixelOff = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
)

// monoPixel reports whether (x, y) is lit in a PixelFormatMonoVLSB frame.
func monoPixel(src []byte, width, x, y int) bool {
	i := (y>>3)*width + x
	if i < 0 || i >= len(src) {
		return false
	}
	return src[i]&(1<<uint(y&7)) != 0
}

// ExpandMono converts a PixelFormatMonoVLSB frame to packed RGBA in dst,
// which must hold width*height*4 bytes.
func ExpandMono(dst, src []byte, width, height int) {
	for y := 0; y < height; y++ {
		row := dst[y*width*4:]
		for x := 0; x < width; x++ {
			c := PixelOff
			if monoPixel(src, width, x, y) {
				c = PixelOn
			}
			j := x * 4
			row[j+0] = c.R
			row[j+1] = c.G
			row[j+2] = c.B
			row[j+3] = c.A
		}
	}
}
