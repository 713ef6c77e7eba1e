//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"wirebox/app"
	"wirebox/gfx/scene"
	"wirebox/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	acfg := app.DefaultConfig()
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Frame rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.BoolVar(&cfg.Preview, "preview", false, "Draw frames on the terminal in headless mode.")
	flag.StringVar(&acfg.Scene, "scene", acfg.Scene, "Scene to render ("+strings.Join(scene.Names(), ", ")+").")
	flag.StringVar(&acfg.Projection, "projection", acfg.Projection, "Projection (perspective, orthographic).")
	flag.BoolVar(&acfg.FPS, "fps", acfg.FPS, "Measure, log and show frames per second.")
	flag.IntVar(&acfg.Spin, "spin", acfg.Spin, "Spin step in degrees per frame.")
	flag.IntVar(&acfg.Orbit, "orbit", acfg.Orbit, "Orbit step in degrees per frame.")
	flag.Parse()

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, acfg)
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
