package clip

import (
	"math"
	"math/rand"
	"testing"
)

var screen = Rect{W: 128, H: 64}

func TestClipInsideUnchanged(t *testing.T) {
	s := Segment{X0: 0, Y0: 0, X1: 127, Y1: 63}
	got, ok := screen.Clip(s)
	if !ok || got != s {
		t.Fatalf("got %+v ok=%v", got, ok)
	}
}

func TestClipBoundaryIsInside(t *testing.T) {
	if !screen.Contains(0, 0) || !screen.Contains(127, 63) {
		t.Fatal("corner pixels must be inside")
	}
	if screen.Contains(128, 0) || screen.Contains(0, 64) || screen.Contains(-1, 5) {
		t.Fatal("pixels past the edge must be outside")
	}
}

func TestClipTrims(t *testing.T) {
	cases := []struct {
		in, want Segment
	}{
		{Segment{-10, 10, 20, 10}, Segment{0, 10, 20, 10}},
		{Segment{64, -32, 64, 96}, Segment{64, 0, 64, 63}},
		{Segment{-10, -10, 10, 10}, Segment{0, 0, 10, 10}},
		{Segment{100, 30, 200, 30}, Segment{100, 30, 127, 30}},
		{Segment{-64, 32, 191, 32}, Segment{0, 32, 127, 32}},
	}
	for _, c := range cases {
		got, ok := screen.Clip(c.in)
		if !ok || got != c.want {
			t.Fatalf("Clip(%+v) = %+v ok=%v, want %+v", c.in, got, ok, c.want)
		}
	}
}

func TestClipDropsOutside(t *testing.T) {
	for _, s := range []Segment{
		{-5, 0, -1, 63},    // left of the screen
		{128, 10, 300, 20}, // right
		{0, -1, 127, -40},  // above
		{10, 64, 20, 100},  // below
		{-10, 5, 5, -10},   // passes outside the top-left corner
	} {
		if got, ok := screen.Clip(s); ok {
			t.Fatalf("Clip(%+v) = %+v, want dropped", s, got)
		}
	}
}

func TestClipTotality(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	coord := func(limit int) int { return rng.Intn(4*limit) - 2*limit }
	for i := 0; i < 20000; i++ {
		s := Segment{coord(128), coord(64), coord(128), coord(64)}
		got, ok := screen.Clip(s)
		bothIn := screen.Contains(s.X0, s.Y0) && screen.Contains(s.X1, s.Y1)
		if bothIn && (!ok || got != s) {
			t.Fatalf("inside segment %+v changed to %+v ok=%v", s, got, ok)
		}
		if screen.code(s.X0, s.Y0)&screen.code(s.X1, s.Y1) != 0 && ok {
			t.Fatalf("segment %+v outside one half-plane was kept as %+v", s, got)
		}
		if !ok {
			continue
		}
		if !screen.Contains(got.X0, got.Y0) || !screen.Contains(got.X1, got.Y1) {
			t.Fatalf("Clip(%+v) = %+v escapes the screen", s, got)
		}
	}
}

func TestClipDegenerateRect(t *testing.T) {
	if _, ok := (Rect{}).Clip(Segment{0, 0, 1, 1}); ok {
		t.Fatal("empty rect must drop everything")
	}
}

func TestClipSteepNearCorner(t *testing.T) {
	cases := []struct {
		in, want Segment
	}{
		// Crosses y=0 at x~127.51 (rounds to 128), and x=127 at y~51.4.
		{Segment{130, -253, 117, 1066}, Segment{127, 51, 127, 63}},
		// Only the first few rows of x=0 are visible.
		{Segment{-30, 1084, 29, -1041}, Segment{0, 3, 0, 0}},
	}
	for _, c := range cases {
		got, ok := screen.Clip(c.in)
		if !ok || got != c.want {
			t.Fatalf("Clip(%+v) = %+v ok=%v, want %+v", c.in, got, ok, c.want)
		}
	}
}

// visibleLength is the exact length of s inside the closed pixel-centre
// rectangle [0,W-1]x[0,H-1] (Liang-Barsky in float64).
func visibleLength(r Rect, s Segment) float64 {
	dx, dy := float64(s.X1-s.X0), float64(s.Y1-s.Y0)
	t0, t1 := 0.0, 1.0
	for _, pq := range [4][2]float64{
		{-dx, float64(s.X0)},
		{dx, float64(r.W - 1 - s.X0)},
		{-dy, float64(s.Y0)},
		{dy, float64(r.H - 1 - s.Y0)},
	} {
		p, q := pq[0], pq[1]
		if p == 0 {
			if q < 0 {
				return 0
			}
			continue
		}
		if v := q / p; p < 0 {
			t0 = math.Max(t0, v)
		} else {
			t1 = math.Min(t1, v)
		}
	}
	if t1 < t0 {
		return 0
	}
	return (t1 - t0) * math.Hypot(dx, dy)
}

func TestClipKeepsVisibleEdgesAcrossClampRange(t *testing.T) {
	const limit = 2048 // projected coordinates are clamped to +-limit
	rng := rand.New(rand.NewSource(5))
	coord := func() int { return rng.Intn(2*limit+1) - limit }
	for i := 0; i < 200000; i++ {
		s := Segment{coord(), coord(), coord(), coord()}
		got, ok := screen.Clip(s)
		if !ok {
			if v := visibleLength(screen, s); v > 1 {
				t.Fatalf("Clip(%+v) dropped an edge with %.2f px visible", s, v)
			}
			continue
		}
		if !screen.Contains(got.X0, got.Y0) || !screen.Contains(got.X1, got.Y1) {
			t.Fatalf("Clip(%+v) = %+v escapes the screen", s, got)
		}
	}
}
