//go:build tinygo

package main

import (
	"voxen/app"
	"voxen/hal"
)

func main() {
	// The on-device display is small; half resolution keeps the fill rate
	// workable and the raymarch path avoids holding a full face list.
	app.RunWithConfig(hal.New(), app.Config{
		Seed:     1337,
		Depth:    5,
		HalfRes:  true,
		Raymarch: true,
	})
}
