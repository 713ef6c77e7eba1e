package raster

import (
	"math/rand"
	"testing"
)

type pixel struct{ x, y int }

type recorder struct {
	order []pixel
	set   map[pixel]int
}

func newRecorder() *recorder { return &recorder{set: make(map[pixel]int)} }

func (r *recorder) Plot(x, y int) {
	p := pixel{x, y}
	r.order = append(r.order, p)
	r.set[p]++
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestLineKnownPixels(t *testing.T) {
	r := newRecorder()
	n := Line(r, 0, 0, 4, 2)
	want := []pixel{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}}
	if n != len(want) || len(r.order) != len(want) {
		t.Fatalf("plotted %d (%v), want %v", n, r.order, want)
	}
	for i := range want {
		if r.order[i] != want[i] {
			t.Fatalf("pixel %d = %v, want %v", i, r.order[i], want[i])
		}
	}
}

func TestLineDegenerateCases(t *testing.T) {
	cases := []struct {
		name           string
		x0, y0, x1, y1 int
	}{
		{"point", 5, 5, 5, 5},
		{"horizontal", 3, 7, 40, 7},
		{"vertical", 9, 60, 9, 2},
		{"diagonal", 0, 0, 20, 20},
		{"anti-diagonal", 0, 20, 20, 0},
	}
	for _, c := range cases {
		r := newRecorder()
		n := Line(r, c.x0, c.y0, c.x1, c.y1)
		want := max(abs(c.x1-c.x0), abs(c.y1-c.y0)) + 1
		if n != want || len(r.set) != want {
			t.Fatalf("%s: plotted %d, unique %d, want %d", c.name, n, len(r.set), want)
		}
		for p := range r.set {
			onX := c.x0 == c.x1 && p.x != c.x0
			onY := c.y0 == c.y1 && p.y != c.y0
			if onX || onY {
				t.Fatalf("%s: stray pixel %v", c.name, p)
			}
		}
	}
}

func TestLinePixelCountAndConnectivity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		x0, y0 := rng.Intn(128), rng.Intn(64)
		x1, y1 := rng.Intn(128), rng.Intn(64)
		r := newRecorder()
		n := Line(r, x0, y0, x1, y1)

		want := max(abs(x1-x0), abs(y1-y0)) + 1
		if n != want || len(r.order) != want {
			t.Fatalf("(%d,%d)-(%d,%d): plotted %d, want %d", x0, y0, x1, y1, len(r.order), want)
		}
		for p, c := range r.set {
			if c != 1 {
				t.Fatalf("(%d,%d)-(%d,%d): pixel %v plotted %d times", x0, y0, x1, y1, p, c)
			}
		}
		if r.set[pixel{x0, y0}] != 1 || r.set[pixel{x1, y1}] != 1 {
			t.Fatalf("(%d,%d)-(%d,%d): endpoints missing", x0, y0, x1, y1)
		}
		for j := 1; j < len(r.order); j++ {
			a, b := r.order[j-1], r.order[j]
			if abs(a.x-b.x) > 1 || abs(a.y-b.y) > 1 {
				t.Fatalf("(%d,%d)-(%d,%d): gap between %v and %v", x0, y0, x1, y1, a, b)
			}
		}
	}
}

func TestLineSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 2000; i++ {
		x0, y0 := rng.Intn(128), rng.Intn(64)
		x1, y1 := rng.Intn(128), rng.Intn(64)
		fwd, back := newRecorder(), newRecorder()
		Line(fwd, x0, y0, x1, y1)
		Line(back, x1, y1, x0, y0)
		if len(fwd.set) != len(back.set) {
			t.Fatalf("(%d,%d)-(%d,%d): %d vs %d pixels", x0, y0, x1, y1, len(fwd.set), len(back.set))
		}
		for p := range fwd.set {
			if back.set[p] == 0 {
				t.Fatalf("(%d,%d)-(%d,%d): %v missing in reverse", x0, y0, x1, y1, p)
			}
		}
	}
}

func TestPlotterFunc(t *testing.T) {
	var n int
	Line(PlotterFunc(func(x, y int) { n++ }), 0, 0, 3, 1)
	if n != 4 {
		t.Fatalf("plotted %d", n)
	}
}
