package app

import (
	"fmt"
	"strconv"
	"sync"

	"wirebox/gfx/fixed"
	"wirebox/gfx/fps"
	"wirebox/gfx/pipeline"
	"wirebox/gfx/render"
	"wirebox/gfx/scene"
	"wirebox/gfx/vecmath"
	"wirebox/hal"
	"wirebox/internal/buildinfo"
)

type Config struct {
	Scene      string
	Projection string
	// FPS turns on the frame rate meter: samples are logged, drawn in the
	// corner of the panel and blink the LED.
	FPS bool
	// Spin and Orbit are per-frame steps in degrees.
	Spin  int
	Orbit int
}

// DefaultConfig is the house scene in perspective, spinning 3 degrees and
// orbiting 1 degree per frame, with the FPS meter on.
func DefaultConfig() Config {
	return Config{
		Scene:      "house",
		Projection: "perspective",
		FPS:        true,
		Spin:       3,
		Orbit:      1,
	}
}

type system struct {
	h       hal.HAL
	cfg     Config
	loop    *render.Loop
	counter fps.Counter
	led     bool
	halted  error

	done     chan struct{}
	stopOnce sync.Once
}

// New initializes the renderer with the default config and returns its step
// function. Each call renders and presents one frame.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

// Run renders frames back to back and blocks forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, DefaultConfig())
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s, err := newSystem(h, cfg)
	if err != nil {
		halt(h, "init", err)
		return func() error { return err }
	}
	return s.step
}

func RunWithConfig(h hal.HAL, cfg Config) {
	step := NewWithConfig(h, cfg)
	for {
		if err := step(); err != nil {
			select {}
		}
	}
}

func newSystem(h hal.HAL, cfg Config) (*system, error) {
	l := h.Logger()
	if l != nil {
		l.WriteLineString("wirebox " + buildinfo.String())
	}

	if h.Display() == nil {
		return nil, fmt.Errorf("display: %w", hal.ErrNotImplemented)
	}
	mesh, err := scene.ByName(cfg.Scene)
	if err != nil {
		return nil, err
	}
	proj, err := vecmath.ProjectionByName(cfg.Projection)
	if err != nil {
		return nil, err
	}

	s := &system{h: h, cfg: cfg, done: make(chan struct{})}

	motion := pipeline.DefaultMotion()
	motion.SpinStep = fixed.Degrees(cfg.Spin)
	motion.OrbitStep = fixed.Degrees(cfg.Orbit)

	rc := render.Config{
		Mesh:       mesh,
		Motion:     motion,
		Projection: proj,
	}
	var ticks <-chan uint64
	if cfg.FPS {
		if ht := h.Time(); ht != nil {
			rc.Meter = fps.NewMeter(&s.counter, ht.TicksPerSecond())
			rc.OnSample = s.onSample
			rc.Overlay = true
			ticks = ht.Ticks()
		}
	}

	loop, err := render.New(rc)
	if err != nil {
		return nil, err
	}
	s.loop = loop
	if ticks != nil {
		go s.forwardTicks(ticks)
	}

	if l != nil {
		l.WriteLineString(fmt.Sprintf("scene=%s vertices=%d edges=%d projection=%s spin=%d orbit=%d",
			mesh.Name, len(mesh.Vertices), len(mesh.Edges), proj.Mode, cfg.Spin, cfg.Orbit))
	}
	return s, nil
}

// forwardTicks is the only writer of the tick counter. It returns when the
// tick source closes or the system halts.
func (s *system) forwardTicks(ch <-chan uint64) {
	for {
		select {
		case <-s.done:
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			s.counter.Tick()
		}
	}
}

func (s *system) stop(err error) {
	s.halted = err
	s.stopOnce.Do(func() { close(s.done) })
}

func (s *system) step() (err error) {
	if s.halted != nil {
		return s.halted
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
			s.stop(err)
			halt(s.h, "frame "+strconv.FormatUint(uint64(s.loop.Stats().Frames), 10), err)
		}
	}()

	if err := s.loop.Frame(s.h.Display()); err != nil {
		s.stop(err)
		halt(s.h, "present", err)
		return err
	}
	return nil
}

func (s *system) onSample(v uint32) {
	if l := s.h.Logger(); l != nil {
		l.WriteLineString("fps: " + strconv.FormatUint(uint64(v), 10))
	}
	led := s.h.LED()
	if led == nil {
		return
	}
	s.led = !s.led
	if s.led {
		led.High()
	} else {
		led.Low()
	}
}
