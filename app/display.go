package app

import (
	"image/color"

	"voxen/hal"
)

// fbDisplay adapts a framebuffer to the pixel-display shape the font
// renderer draws on. Writes silently drop on unsupported surface formats.
type fbDisplay struct {
	fb hal.Framebuffer
}

func (d fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil {
		return
	}
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	p, ok := hal.ConvertXRGB(hal.PackXRGB(c.R, c.G, c.B), d.fb.Format())
	if !ok {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}
	bpp := d.fb.Format().BytesPerPixel()
	off := iy*d.fb.StrideBytes() + ix*bpp
	if off < 0 || off+bpp > len(buf) {
		return
	}
	switch bpp {
	case 4:
		buf[off+0] = byte(p)
		buf[off+1] = byte(p >> 8)
		buf[off+2] = byte(p >> 16)
		buf[off+3] = byte(p >> 24)
	case 2:
		buf[off+0] = byte(p)
		buf[off+1] = byte(p >> 8)
	}
}

func (d fbDisplay) Display() error { return nil }
