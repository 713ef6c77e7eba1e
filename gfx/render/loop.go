// Package render runs the per-frame wireframe loop: clear, transform,
// project, clip, rasterize, present.
package render

import (
	"fmt"

	"wirebox/gfx/clip"
	"wirebox/gfx/fps"
	"wirebox/gfx/mono"
	"wirebox/gfx/pipeline"
	"wirebox/gfx/raster"
	"wirebox/gfx/scene"
	"wirebox/gfx/vecmath"
)

// Sink receives a finished frame. Present must be done with buf before it
// returns; the loop starts drawing the next frame into the same buffer.
type Sink interface {
	Present(buf []byte) error
}

// Config selects what the loop draws.
type Config struct {
	Mesh       *scene.Mesh
	Motion     pipeline.Motion
	Projection vecmath.Projection

	// Meter is optional. When set, every frame is counted and each completed
	// sample is passed to OnSample.
	Meter    *fps.Meter
	OnSample func(fps uint32)

	// Overlay draws the last FPS sample in the top-left corner.
	Overlay bool
}

// Stats are cumulative counters since New.
type Stats struct {
	Frames  uint32
	Drawn   uint32
	Dropped uint32
	Pixels  uint32
	FPS     uint32
	Samples uint32
}

// Loop owns the framebuffer and all per-frame scratch state. It allocates
// nothing after New.
type Loop struct {
	cfg    Config
	state  pipeline.State
	fb     mono.Framebuffer
	proj   pipeline.Projected
	screen clip.Rect
	stats  Stats
	text   overlay
}

// New validates the mesh and returns a ready loop.
func New(cfg Config) (*Loop, error) {
	if cfg.Mesh == nil {
		return nil, scene.ErrNoMesh
	}
	if err := scene.Validate(cfg.Mesh); err != nil {
		return nil, fmt.Errorf("render: mesh %q: %w", cfg.Mesh.Name, err)
	}
	l := &Loop{
		cfg:    cfg,
		screen: clip.Rect{W: mono.Width, H: mono.Height},
	}
	l.text.init()
	return l, nil
}

// Render draws the current state into the framebuffer. It does not advance
// the animation.
func (l *Loop) Render() {
	l.fb.Clear()

	xf := pipeline.Compose(l.state, l.cfg.Motion)
	pipeline.Run(l.cfg.Mesh, xf, l.cfg.Projection, &l.proj)

	for _, e := range l.cfg.Mesh.Edges {
		a, b := l.proj.At(e.A), l.proj.At(e.B)
		seg, ok := l.screen.Clip(clip.Segment{
			X0: int(a.X), Y0: int(a.Y),
			X1: int(b.X), Y1: int(b.Y),
		})
		if !ok {
			l.stats.Dropped++
			continue
		}
		l.stats.Drawn++
		l.stats.Pixels += uint32(raster.Line(&l.fb, seg.X0, seg.Y0, seg.X1, seg.Y1))
	}

	if l.cfg.Overlay {
		l.text.draw(&l.fb, l.stats.FPS)
	}
}

// Frame renders one frame, advances the animation and hands the buffer to
// sink. A nil sink skips the flush.
func (l *Loop) Frame(sink Sink) error {
	if m := l.cfg.Meter; m != nil {
		if v, ready := m.Frame(); ready {
			l.stats.FPS = v
			l.stats.Samples++
			if l.cfg.OnSample != nil {
				l.cfg.OnSample(v)
			}
		}
	}

	l.Render()
	l.state.Advance(l.cfg.Motion)
	l.stats.Frames++

	if sink == nil {
		return nil
	}
	if err := sink.Present(l.fb.Bytes()); err != nil {
		return fmt.Errorf("render: present: %w", err)
	}
	return nil
}

func (l *Loop) Stats() Stats                   { return l.stats }
func (l *Loop) State() pipeline.State          { return l.state }
func (l *Loop) SetState(s pipeline.State)      { l.state = s }
func (l *Loop) Framebuffer() *mono.Framebuffer { return &l.fb }
func (l *Loop) Config() Config                 { return l.cfg }
