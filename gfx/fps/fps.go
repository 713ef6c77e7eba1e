// Package fps measures frame rate against an independent tick source.
//
// The tick source runs outside the render loop (a timer interrupt on the board,
// a ticker goroutine on the host). It is the only writer of Counter; the render
// loop only reads it.
package fps

import "sync/atomic"

// Counter is a free-running tick counter.
type Counter struct {
	ticks atomic.Uint32
}

// Tick advances the counter by one. Call it from the tick source only.
func (c *Counter) Tick() { c.ticks.Add(1) }

// Load returns the current tick count.
func (c *Counter) Load() uint32 { return c.ticks.Load() }

// Meter turns frame calls into frames-per-second samples.
type Meter struct {
	Counter        *Counter
	TicksPerSecond uint32
	// Window is the sample period in ticks. Zero means one second.
	Window uint32

	start  uint32
	frames uint32
	primed bool
	last   uint32
}

// NewMeter returns a meter sampling once per second.
func NewMeter(c *Counter, ticksPerSecond uint32) *Meter {
	return &Meter{Counter: c, TicksPerSecond: ticksPerSecond}
}

// Frame records one rendered frame. When a full window has elapsed it returns
// the rate over that window and ready == true, then starts a new window.
func (m *Meter) Frame() (fps uint32, ready bool) {
	now := m.Counter.Load()
	if !m.primed {
		// The first frame opens the window; frames are counted at their end.
		m.start = now
		m.primed = true
		return m.last, false
	}
	m.frames++

	window := m.Window
	if window == 0 {
		window = m.TicksPerSecond
	}
	elapsed := now - m.start
	if window == 0 || elapsed < window {
		return m.last, false
	}

	fps = uint32((uint64(m.frames)*uint64(m.TicksPerSecond) + uint64(elapsed)/2) / uint64(elapsed))
	m.last = fps
	m.frames = 0
	m.start = now
	return fps, true
}

// Last returns the most recent sample, or 0 before the first one.
func (m *Meter) Last() uint32 { return m.last }
