//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"voxen/app"
	"voxen/hal"
)

func main() {
	var headless hal.HeadlessConfig
	var host hal.HostConfig
	var cfg app.Config

	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&host.Width, "width", 640, "Surface width in pixels.")
	flag.IntVar(&host.Height, "height", 480, "Surface height in pixels.")
	flag.IntVar(&host.Cores, "cores", 0, "Render cores (0 = all CPUs).")
	flag.Int64Var(&cfg.Seed, "seed", 1337, "Terrain seed.")
	flag.IntVar(&cfg.Depth, "depth", 6, "Octree depth; world side is 2^depth voxels.")
	flag.BoolVar(&cfg.HalfRes, "half-res", false, "Render at half resolution, upscaled 2x.")
	flag.BoolVar(&cfg.Raymarch, "raymarch", false, "Start on the raymarch path instead of the rasterizer.")
	flag.IntVar(&cfg.TileSize, "tile", 0, "Dynamic tile queue with this tile edge (0 = static row bands).")
	flag.Parse()

	h := hal.NewWithConfig(host)
	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, cfg)
	}

	if headless.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := hal.RunHeadless(ctx, h, newApp, headless)
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, app.ErrStopped) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(h, newApp); err != nil && !errors.Is(err, app.ErrStopped) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
