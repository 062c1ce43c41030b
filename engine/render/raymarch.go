package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"voxen/engine/camera"
	"voxen/engine/world"
)

const (
	// rayMaxSteps bounds the DDA walk regardless of world contents.
	rayMaxSteps = 192
	// rayFogDist is where hits fade fully into the sky.
	rayFogDist = float32(48.0)
)

// RayMarch renders the row band [startY, endY) by casting one ray per pixel
// straight against the voxel store, bypassing meshing. Cost per pixel is
// bounded by the step budget, independent of scene complexity.
func (s *Screen) RayMarch(store *world.Octree, pose camera.Pose, startY, endY int) {
	s.RayMarchTile(store, pose, Tile{MinX: 0, MinY: startY, MaxX: s.width, MaxY: endY})
}

// RayMarchTile raymarches one tile. The tile's pixels must be exclusively
// owned by the caller for this frame.
func (s *Screen) RayMarchTile(store *world.Octree, pose camera.Pose, tile Tile) {
	forward := pose.Forward()
	right := forward.Cross(mgl32.Vec3{0, 1, 0}).Normalize()
	up := right.Cross(forward)

	tanHalf := float32(math.Tan(float64(camera.FovY) / 2))
	aspect := float32(s.width) / float32(s.height)
	invW := 1 / float32(s.width)
	invH := 1 / float32(s.height)

	for y := tile.MinY; y < tile.MaxY; y++ {
		v := (1 - 2*(float32(y)+0.5)*invH) * tanHalf
		row := y * s.width
		for x := tile.MinX; x < tile.MaxX; x++ {
			u := (2*(float32(x)+0.5)*invW - 1) * tanHalf * aspect
			dir := forward.Add(right.Mul(u)).Add(up.Mul(v)).Normalize()
			s.color[row+x] = castRay(store, pose.Position, dir)
		}
	}
}

// castRay walks the grid one cell boundary at a time, always stepping the
// axis with the smallest accumulated side distance.
func castRay(store *world.Octree, origin, dir mgl32.Vec3) uint32 {
	var (
		cell  [3]int
		step  [3]int
		side  [3]float32
		delta [3]float32
	)

	inf := float32(math.Inf(1))
	for a := 0; a < 3; a++ {
		cell[a] = int(floorF(origin[a]))
		d := dir[a]
		if d == 0 {
			delta[a] = inf
			side[a] = inf
			step[a] = 1
			continue
		}
		delta[a] = absF(1 / d)
		if d > 0 {
			step[a] = 1
			side[a] = (float32(cell[a]) + 1 - origin[a]) * delta[a]
		} else {
			step[a] = -1
			side[a] = (origin[a] - float32(cell[a])) * delta[a]
		}
	}

	for i := 0; i < rayMaxSteps; i++ {
		axis := 0
		if side[1] < side[axis] {
			axis = 1
		}
		if side[2] < side[axis] {
			axis = 2
		}

		dist := side[axis]
		if dist > rayFogDist {
			return SkyColor
		}
		side[axis] += delta[axis]
		cell[axis] += step[axis]

		b := store.Get(cell[0], cell[1], cell[2])
		if !b.IsOpaque() {
			continue
		}

		// Stepping in the positive direction enters through the cell's
		// negative face, and vice versa.
		faceDir := uint8(axis * 2)
		if step[axis] < 0 {
			faceDir++
		}
		return mix(shade(b.Color(), faceDir), SkyColor, dist/rayFogDist)
	}
	return SkyColor
}

func floorF(v float32) float32 { return float32(math.Floor(float64(v))) }

func absF(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
