// Package raster draws integer line segments.
package raster

// Plotter receives pixels. Coordinates are already inside the target.
type Plotter interface {
	Plot(x, y int)
}

// PlotterFunc adapts a function to Plotter.
type PlotterFunc func(x, y int)

func (f PlotterFunc) Plot(x, y int) { f(x, y) }

// Line draws (x0,y0)-(x1,y1) with Bresenham's algorithm and returns the
// number of pixels plotted, which is always max(|dx|,|dy|)+1. Endpoints are
// put in a canonical order first so a segment and its reverse cover the same
// pixels.
func Line(p Plotter, x0, y0, x1, y1 int) int {
	if x1 < x0 || (x1 == x0 && y1 < y0) {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	dx := x1 - x0
	dy := y1 - y0
	sy := 1
	if dy < 0 {
		dy = -dy
		sy = -1
	}

	if dx >= dy {
		err := 2*dy - dx
		y := y0
		for x := x0; x <= x1; x++ {
			p.Plot(x, y)
			if err > 0 {
				y += sy
				err -= 2 * dx
			}
			err += 2 * dy
		}
		return dx + 1
	}

	err := 2*dx - dy
	x := x0
	y := y0
	for i := 0; i <= dy; i++ {
		p.Plot(x, y)
		if err > 0 {
			x++
			err -= 2 * dy
		}
		err += 2 * dx
		y += sy
	}
	return dy + 1
}
