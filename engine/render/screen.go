// Package render draws the voxel world into an owned color and depth target,
// either by rasterizing meshed faces per tile or by raymarching the store
// per pixel, and flushes the result to the platform surface.
package render

import (
	"math"

	"voxen/hal"
)

// SkyColor is the XRGB8888 background and fog target.
const SkyColor = uint32(0x0087CEEB)

// Tile is a framebuffer sub-rectangle, max-exclusive, assigned to exactly
// one core for the duration of one frame.
type Tile struct {
	MinX, MinY, MaxX, MaxY int
}

// Backend selects the triangle fill implementation.
type Backend uint8

const (
	// BackendQuad steps the edge functions incrementally four pixels at a
	// time. The default.
	BackendQuad Backend = iota
	// BackendScalar evaluates the edge functions per pixel. Kept as the
	// reference implementation; both backends must agree exactly.
	BackendScalar
)

// Screen owns the render target: a color buffer and a depth buffer sized to
// the (possibly half-resolution) target. Cores write disjoint regions; the
// buffers carry no locks.
type Screen struct {
	width  int
	height int

	physWidth  int
	physHeight int
	halfRes    bool

	color []uint32
	depth []float32

	fill fillFunc
}

// NewScreen sizes a render target against the physical surface dimensions.
// With halfRes the target is half size in both axes and Flush upscales 2x.
func NewScreen(physWidth, physHeight int, halfRes bool, backend Backend) *Screen {
	w, h := physWidth, physHeight
	if halfRes {
		w /= 2
		h /= 2
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	s := &Screen{
		width:      w,
		height:     h,
		physWidth:  physWidth,
		physHeight: physHeight,
		halfRes:    halfRes,
		color:      make([]uint32, w*h),
		depth:      make([]float32, w*h),
	}
	switch backend {
	case BackendScalar:
		s.fill = fillTriangleScalar
	default:
		s.fill = fillTriangleQuad
	}
	s.ClearTile(s.Bounds())
	return s
}

// Width returns the render target width in pixels.
func (s *Screen) Width() int { return s.width }

// Height returns the render target height in pixels.
func (s *Screen) Height() int { return s.height }

// Bounds returns the full-target tile.
func (s *Screen) Bounds() Tile {
	return Tile{MinX: 0, MinY: 0, MaxX: s.width, MaxY: s.height}
}

// ColorAt returns the stored color for a pixel, for diagnostics and tests.
func (s *Screen) ColorAt(x, y int) uint32 {
	return s.color[y*s.width+x]
}

// DepthAt returns the stored depth for a pixel.
func (s *Screen) DepthAt(x, y int) float32 {
	return s.depth[y*s.width+x]
}

// ClearTile resets the tile's depth to +Inf and its color to the sky.
func (s *Screen) ClearTile(t Tile) {
	inf := float32(math.Inf(1))
	for y := t.MinY; y < t.MaxY; y++ {
		row := y * s.width
		for x := t.MinX; x < t.MaxX; x++ {
			s.depth[row+x] = inf
			s.color[row+x] = SkyColor
		}
	}
}

// setPixel writes color under the strict less-than depth test. Last writer
// wins only for strictly nearer depth, so results are submission-order
// independent.
func (s *Screen) setPixel(idx int, z float32, color uint32) {
	if z < s.depth[idx] {
		s.depth[idx] = z
		s.color[idx] = color
	}
}

// Flush converts the target into the surface's pixel format, upscaling 2x in
// half-res mode. Unsupported surface formats are skipped, not an error.
func (s *Screen) Flush(fb hal.Framebuffer) {
	format := fb.Format()
	bpp := format.BytesPerPixel()
	if bpp == 0 {
		return
	}
	buf := fb.Buffer()
	if buf == nil {
		return
	}
	stride := fb.StrideBytes()
	pw, ph := fb.Width(), fb.Height()

	put := func(px, py int, p uint32) {
		if px >= pw || py >= ph {
			return
		}
		off := py*stride + px*bpp
		if off+bpp > len(buf) {
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

	for y := 0; y < s.height; y++ {
		row := y * s.width
		for x := 0; x < s.width; x++ {
			p, ok := hal.ConvertXRGB(s.color[row+x], format)
			if !ok {
				return
			}
			if s.halfRes {
				put(x*2, y*2, p)
				put(x*2+1, y*2, p)
				put(x*2, y*2+1, p)
				put(x*2+1, y*2+1, p)
			} else {
				put(x, y, p)
			}
		}
	}
}
