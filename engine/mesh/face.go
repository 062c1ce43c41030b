// Package mesh extracts minimal axis-aligned quads from dense voxel chunks.
package mesh

import "voxen/engine/world"

// Face directions. The low bit is the sign: even is the negative direction
// along the axis, odd the positive one.
const (
	DirNegX = iota
	DirPosX
	DirNegY
	DirPosY
	DirNegZ
	DirPosZ
)

// Face is one axis-aligned boundary rectangle. Pos is the world-space
// minimum corner of the rectangle on its boundary plane; Size spans the two
// in-plane axes and is zero along the normal axis.
type Face struct {
	Pos   [3]int
	Size  [3]int
	Dir   uint8
	Block world.Block
}

// Axis returns the normal axis (0 = X, 1 = Y, 2 = Z).
func (f Face) Axis() int { return int(f.Dir) / 2 }

// Area returns the rectangle area in world units squared.
func (f Face) Area() int {
	switch f.Axis() {
	case 0:
		return f.Size[1] * f.Size[2]
	case 1:
		return f.Size[0] * f.Size[2]
	default:
		return f.Size[0] * f.Size[1]
	}
}

// Corners returns the rectangle's four vertices. The winding matches the
// outward normal: projected to screen space with Y flipped, front faces come
// out clockwise with positive signed area.
func (f Face) Corners() [4][3]float32 {
	p := [3]float32{float32(f.Pos[0]), float32(f.Pos[1]), float32(f.Pos[2])}
	s := [3]float32{float32(f.Size[0]), float32(f.Size[1]), float32(f.Size[2])}

	at := func(dx, dy, dz float32) [3]float32 {
		return [3]float32{p[0] + dx, p[1] + dy, p[2] + dz}
	}

	switch f.Dir {
	case DirNegX:
		return [4][3]float32{at(0, 0, 0), at(0, s[1], 0), at(0, s[1], s[2]), at(0, 0, s[2])}
	case DirPosX:
		return [4][3]float32{at(0, 0, s[2]), at(0, s[1], s[2]), at(0, s[1], 0), at(0, 0, 0)}
	case DirNegY:
		return [4][3]float32{at(0, 0, 0), at(0, 0, s[2]), at(s[0], 0, s[2]), at(s[0], 0, 0)}
	case DirPosY:
		return [4][3]float32{at(0, 0, s[2]), at(0, 0, 0), at(s[0], 0, 0), at(s[0], 0, s[2])}
	case DirNegZ:
		return [4][3]float32{at(s[0], 0, 0), at(s[0], s[1], 0), at(0, s[1], 0), at(0, 0, 0)}
	default: // DirPosZ
		return [4][3]float32{at(0, 0, 0), at(0, s[1], 0), at(s[0], s[1], 0), at(s[0], 0, 0)}
	}
}
