package mono

import (
	"bufio"
	"io"
)

var halfBlocks = [4]string{" ", "▀", "▄", "█"}

// WriteText dumps the framebuffer as Unicode half blocks, two rows per line.
func (f *Framebuffer) WriteText(w io.Writer) error {
	return WriteHalfBlocks(w, Width, Height, f.At)
}

// WriteHalfBlocks draws a cols x rows grid of cells, two cell rows per text
// line. A missing bottom row on odd grids is drawn off.
func WriteHalfBlocks(w io.Writer, cols, rows int, on func(x, y int) bool) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < rows; y += 2 {
		for x := 0; x < cols; x++ {
			i := 0
			if on(x, y) {
				i |= 1
			}
			if y+1 < rows && on(x, y+1) {
				i |= 2
			}
			bw.WriteString(halfBlocks[i])
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
