package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxen/engine/mesh"
)

// vert is a screen-space vertex: pixel x/y plus NDC depth.
type vert struct {
	x, y, z float32
}

type fillFunc func(s *Screen, v0, v1, v2 vert, color uint32, tile Tile)

// DrawTile rasterizes the face list into the tile. Faces are read-only and
// may be shared by all cores; the tile's pixels are exclusively owned by the
// caller for this frame.
func (s *Screen) DrawTile(faces []mesh.Face, viewProj mgl32.Mat4, tile Tile) {
	halfW := float32(s.width) * 0.5
	halfH := float32(s.height) * 0.5

	for i := range faces {
		f := &faces[i]
		corners := f.Corners()

		var clip [4]mgl32.Vec4
		behind := false
		for j, c := range corners {
			clip[j] = viewProj.Mul4x1(mgl32.Vec4{c[0], c[1], c[2], 1})
			if clip[j].W() <= 0 {
				behind = true
				break
			}
		}
		if behind {
			continue
		}

		var ndc [4][3]float32
		for j := range clip {
			w := clip[j].W()
			ndc[j] = [3]float32{clip[j].X() / w, clip[j].Y() / w, clip[j].Z() / w}
		}

		// Reject the whole quad when all corners sit outside one clip plane.
		if allBelow(ndc, 0, -1) || allAbove(ndc, 0, 1) ||
			allBelow(ndc, 1, -1) || allAbove(ndc, 1, 1) {
			continue
		}

		var sv [4]vert
		for j := range ndc {
			sv[j] = vert{
				x: ndc[j][0]*halfW + halfW,
				y: -ndc[j][1]*halfH + halfH,
				z: ndc[j][2],
			}
		}

		// Backface cull: screen space has Y down, front faces wind
		// clockwise with positive signed area.
		if (sv[1].x-sv[0].x)*(sv[2].y-sv[0].y)-(sv[1].y-sv[0].y)*(sv[2].x-sv[0].x) <= 0 {
			continue
		}

		minX, maxX := int(sv[0].x), int(sv[0].x)
		minY, maxY := int(sv[0].y), int(sv[0].y)
		for _, v := range sv[1:] {
			minX = min(minX, int(v.x))
			maxX = max(maxX, int(v.x))
			minY = min(minY, int(v.y))
			maxY = max(maxY, int(v.y))
		}
		if maxX < tile.MinX || minX >= tile.MaxX || maxY < tile.MinY || minY >= tile.MaxY {
			continue
		}

		color := shade(f.Block.Color(), f.Dir)
		s.fill(s, sv[0], sv[1], sv[2], color, tile)
		s.fill(s, sv[0], sv[2], sv[3], color, tile)
	}
}

func allBelow(ndc [4][3]float32, axis int, limit float32) bool {
	return ndc[0][axis] < limit && ndc[1][axis] < limit &&
		ndc[2][axis] < limit && ndc[3][axis] < limit
}

func allAbove(ndc [4][3]float32, axis int, limit float32) bool {
	return ndc[0][axis] > limit && ndc[1][axis] > limit &&
		ndc[2][axis] > limit && ndc[3][axis] > limit
}

// Fixed-point format for edge functions: 24.8. Both fill backends share it
// so their accept/reject decisions and interpolated depths match exactly.
const fpShift = 8
const fpOne = 1 << fpShift
const fpHalf = fpOne / 2

// edge evaluates the function (B-A) x (P-A) in fixed point.
func edge(ax, ay, bx, by, px, py int64) int64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

type triSetup struct {
	minX, maxX int
	minY, maxY int

	x0, y0, x1, y1, x2, y2 int64

	area    int64
	invArea float32
	z0      float32
	z1      float32
	z2      float32
}

// setupTriangle clips the bounding box to the tile and precomputes the
// fixed-point vertices. ok is false when the triangle is degenerate,
// back-facing, or fully outside the tile.
func setupTriangle(v0, v1, v2 vert, tile Tile) (t triSetup, ok bool) {
	t.minX = max(tile.MinX, min(min(int(v0.x), int(v1.x)), int(v2.x)))
	t.maxX = min(tile.MaxX-1, max(max(int(v0.x), int(v1.x)), int(v2.x)))
	t.minY = max(tile.MinY, min(min(int(v0.y), int(v1.y)), int(v2.y)))
	t.maxY = min(tile.MaxY-1, max(max(int(v0.y), int(v1.y)), int(v2.y)))
	if t.minX > t.maxX || t.minY > t.maxY {
		return t, false
	}

	t.x0, t.y0 = int64(v0.x*fpOne), int64(v0.y*fpOne)
	t.x1, t.y1 = int64(v1.x*fpOne), int64(v1.y*fpOne)
	t.x2, t.y2 = int64(v2.x*fpOne), int64(v2.y*fpOne)

	t.area = edge(t.x0, t.y0, t.x1, t.y1, t.x2, t.y2)
	if t.area <= 0 {
		return t, false
	}
	t.invArea = 1 / float32(t.area)
	t.z0, t.z1, t.z2 = v0.z, v1.z, v2.z
	return t, true
}

func (t *triSetup) testAndWrite(s *Screen, x, y int, w0, w1, w2 int64, color uint32) {
	if w0 >= 0 && w1 >= 0 && w2 >= 0 {
		fw0 := float32(w0) * t.invArea
		fw1 := float32(w1) * t.invArea
		fw2 := float32(w2) * t.invArea
		z := fw0*t.z0 + fw1*t.z1 + fw2*t.z2
		s.setPixel(y*s.width+x, z, color)
	}
}

// fillTriangleScalar evaluates all three edge functions from scratch at
// every covered pixel center.
func fillTriangleScalar(s *Screen, v0, v1, v2 vert, color uint32, tile Tile) {
	t, ok := setupTriangle(v0, v1, v2, tile)
	if !ok {
		return
	}

	for y := t.minY; y <= t.maxY; y++ {
		py := int64(y)<<fpShift + fpHalf
		for x := t.minX; x <= t.maxX; x++ {
			px := int64(x)<<fpShift + fpHalf
			w0 := edge(t.x1, t.y1, t.x2, t.y2, px, py)
			w1 := edge(t.x2, t.y2, t.x0, t.y0, px, py)
			w2 := edge(t.x0, t.y0, t.x1, t.y1, px, py)
			t.testAndWrite(s, x, y, w0, w1, w2, color)
		}
	}
}

// fillTriangleQuad steps the edge functions incrementally along each row,
// four pixels per iteration. Integer stepping is exact, so accept/reject and
// depth match the scalar backend bit for bit.
func fillTriangleQuad(s *Screen, v0, v1, v2 vert, color uint32, tile Tile) {
	t, ok := setupTriangle(v0, v1, v2, tile)
	if !ok {
		return
	}

	// d(edge)/dx per whole pixel: -(by-ay) * fpOne.
	dw0 := (t.y1 - t.y2) * fpOne
	dw1 := (t.y2 - t.y0) * fpOne
	dw2 := (t.y0 - t.y1) * fpOne

	pxStart := int64(t.minX)<<fpShift + fpHalf
	for y := t.minY; y <= t.maxY; y++ {
		py := int64(y)<<fpShift + fpHalf
		w0 := edge(t.x1, t.y1, t.x2, t.y2, pxStart, py)
		w1 := edge(t.x2, t.y2, t.x0, t.y0, pxStart, py)
		w2 := edge(t.x0, t.y0, t.x1, t.y1, pxStart, py)

		x := t.minX
		for x+3 <= t.maxX {
			t.testAndWrite(s, x, y, w0, w1, w2, color)
			t.testAndWrite(s, x+1, y, w0+dw0, w1+dw1, w2+dw2, color)
			t.testAndWrite(s, x+2, y, w0+dw0*2, w1+dw1*2, w2+dw2*2, color)
			t.testAndWrite(s, x+3, y, w0+dw0*3, w1+dw1*3, w2+dw2*3, color)
			w0 += dw0 * 4
			w1 += dw1 * 4
			w2 += dw2 * 4
			x += 4
		}
		for ; x <= t.maxX; x++ {
			t.testAndWrite(s, x, y, w0, w1, w2, color)
			w0 += dw0
			w1 += dw1
			w2 += dw2
		}
	}
}
