package mesh

import "voxen/engine/world"

// Generate produces the minimal set of boundary rectangles covering every
// solid-to-non-solid transition in the chunk, sweeping one slice plane at a
// time per axis and direction and merging the exposed cells greedily into
// maximal same-block rectangles.
//
// lod samples every 2^lod voxels: the mesh coarsens but face coordinates
// stay in world units (scaled by the step and offset by the chunk origin).
func Generate(c *world.Chunk, lod int) []Face {
	if lod < 0 {
		lod = 0
	}
	step := 1 << lod
	size := world.ChunkSize >> lod
	if size == 0 {
		return nil
	}

	origin := [3]int{
		c.Origin[0] * world.ChunkSize,
		c.Origin[1] * world.ChunkSize,
		c.Origin[2] * world.ChunkSize,
	}

	var faces []Face
	prev := make([]uint32, size)
	curr := make([]uint32, size)
	mask := make([]uint32, size)

	// cell maps plane coordinates (d, u, v) to chunk-local voxel coordinates
	// for the given axis.
	cell := func(axis, d, u, v int) (int, int, int) {
		switch axis {
		case 0:
			return d * step, u * step, v * step
		case 1:
			return u * step, d * step, v * step
		default:
			return u * step, v * step, d * step
		}
	}

	for axis := 0; axis < 3; axis++ {
		uAxis := (axis + 1) % 3
		vAxis := (axis + 2) % 3

		for i := range prev {
			prev[i] = 0
		}

		// One extra iteration with an all-empty virtual slice closes faces
		// at the chunk's far boundary.
		for d := 0; d <= size; d++ {
			if d < size {
				for v := 0; v < size; v++ {
					var row uint32
					for u := 0; u < size; u++ {
						x, y, z := cell(axis, d, u, v)
						if c.Get(x, y, z).IsOpaque() {
							row |= 1 << u
						}
					}
					curr[v] = row
				}
			} else {
				for i := range curr {
					curr[i] = 0
				}
			}

			for dirBit := 0; dirBit < 2; dirBit++ {
				isPos := dirBit == 1
				// A face exists exactly where occupancy flips between
				// slice d-1 and slice d.
				for v := 0; v < size; v++ {
					if isPos {
						mask[v] = prev[v] &^ curr[v]
					} else {
						mask[v] = ^prev[v] & curr[v]
					}
				}

				dCell := d
				if isPos {
					dCell = d - 1
				}

				for v := 0; v < size; v++ {
					for u := 0; u < size; {
						if mask[v]>>u&1 == 0 {
							u++
							continue
						}

						x, y, z := cell(axis, dCell, u, v)
						blk := c.Get(x, y, z)

						// Widen while exposed and same block.
						w := 1
						for u+w < size && mask[v]>>(u+w)&1 == 1 {
							nx, ny, nz := cell(axis, dCell, u+w, v)
							if c.Get(nx, ny, nz) != blk {
								break
							}
							w++
						}

						// Grow rows while the whole width stays exposed
						// and same block.
						rowMask := uint32(1<<w-1) << u
						h := 1
					grow:
						for v+h < size {
							if mask[v+h]&rowMask != rowMask {
								break
							}
							for k := 0; k < w; k++ {
								nx, ny, nz := cell(axis, dCell, u+k, v+h)
								if c.Get(nx, ny, nz) != blk {
									break grow
								}
							}
							h++
						}

						var pos, ext [3]int
						pos[axis] = origin[axis] + d*step
						pos[uAxis] = origin[uAxis] + u*step
						pos[vAxis] = origin[vAxis] + v*step
						ext[uAxis] = w * step
						ext[vAxis] = h * step

						dir := uint8(axis * 2)
						if isPos {
							dir++
						}
						faces = append(faces, Face{Pos: pos, Size: ext, Dir: dir, Block: blk})

						for l := 0; l < h; l++ {
							mask[v+l] &^= rowMask
						}
						u += w
					}
				}
			}

			copy(prev, curr)
		}
	}

	return faces
}
