package app

import (
	"fmt"
	"image/color"

	"tinygo.org/x/tinyfont"

	"voxen/hal"
)

var hudColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// drawHUD paints the status line straight onto the surface, after the frame
// flush so it is never overwritten by a render tile. Owner core only.
func (s *system) drawHUD(fb hal.Framebuffer) {
	path := "raster"
	if s.raymarch {
		path = "raymarch"
	}
	line := fmt.Sprintf("frame %d  cores %d  %s", s.frames, s.st.Cores(), path)
	tinyfont.WriteLine(fbDisplay{fb: fb}, &tinyfont.TomThumb, 2, 7, line, hudColor)
}
