//go:build !tinygo

package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"wirebox/gfx/fixed"
	"wirebox/gfx/mono"
	"wirebox/gfx/pipeline"
	"wirebox/gfx/render"
	"wirebox/gfx/scene"
	"wirebox/gfx/vecmath"

	"golang.org/x/image/draw"
)

type options struct {
	scene      string
	projection string
	frame      int
	spin       int
	orbit      int
	scale      int
	text       bool
}

func main() {
	var opt options
	var out string
	flag.StringVar(&opt.scene, "scene", "house", "Scene to render.")
	flag.StringVar(&opt.projection, "projection", "perspective", "Projection (perspective, orthographic).")
	flag.IntVar(&opt.frame, "frame", 0, "Frame number to render.")
	flag.IntVar(&opt.spin, "spin", 3, "Spin step in degrees per frame.")
	flag.IntVar(&opt.orbit, "orbit", 1, "Orbit step in degrees per frame.")
	flag.IntVar(&opt.scale, "scale", 4, "PNG pixels per panel pixel.")
	flag.BoolVar(&opt.text, "text", false, "Write the frame as Unicode half blocks instead of PNG.")
	flag.StringVar(&out, "o", "", "Output file (default stdout).")
	flag.Parse()

	if err := run(out, opt); err != nil {
		fmt.Fprintln(os.Stderr, "wiresnap:", err)
		os.Exit(1)
	}
}

// run writes the snapshot to path, or stdout when path is empty. A failed
// write removes the partial file.
func run(path string, opt options) (err error) {
	if path == "" {
		return snap(os.Stdout, opt)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %q: %w", path, cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	return snap(f, opt)
}

func snap(w io.Writer, opt options) error {
	fb, err := renderFrame(opt)
	if err != nil {
		return err
	}
	if opt.text {
		return fb.WriteText(w)
	}
	return writePNG(w, fb, opt.scale)
}

func renderFrame(opt options) (*mono.Framebuffer, error) {
	if opt.frame < 0 {
		return nil, errors.New("frame must not be negative")
	}
	mesh, err := scene.ByName(opt.scene)
	if err != nil {
		return nil, err
	}
	proj, err := vecmath.ProjectionByName(opt.projection)
	if err != nil {
		return nil, err
	}

	motion := pipeline.DefaultMotion()
	motion.SpinStep = fixed.Degrees(opt.spin)
	motion.OrbitStep = fixed.Degrees(opt.orbit)

	loop, err := render.New(render.Config{Mesh: mesh, Motion: motion, Projection: proj})
	if err != nil {
		return nil, err
	}

	// Angles are periodic, so jump straight to frame N.
	var st pipeline.State
	st.Spin = fixed.Degrees(opt.frame % fixed.AngleSteps * opt.spin)
	st.Orbit = fixed.Degrees(opt.frame % fixed.AngleSteps * opt.orbit)
	loop.SetState(st)
	loop.Render()
	return loop.Framebuffer(), nil
}

func writePNG(w io.Writer, fb *mono.Framebuffer, scale int) error {
	if scale < 1 {
		return fmt.Errorf("invalid scale %d", scale)
	}
	src := image.NewGray(image.Rect(0, 0, mono.Width, mono.Height))
	for y := 0; y < mono.Height; y++ {
		for x := 0; x < mono.Width; x++ {
			if fb.At(x, y) {
				src.SetGray(x, y, color.Gray{Y: 0xFF})
			}
		}
	}

	dst := image.NewGray(image.Rect(0, 0, mono.Width*scale, mono.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return png.Encode(w, dst)
}
