package world

// Octree is a sparse voxel store over the bounded cube [0, 2^depth) per axis.
//
// Storage is an append-only pool of 8-entry node groups. An entry is either
// 0 (empty), a leaf carrying a block id, or the pool index of a child group.
// Group 0 is the root. The pool only grows: conflicting inserts subdivide a
// leaf into eight copies before refining one, and nothing is ever merged back.
type Octree struct {
	depth int
	size  int
	pool  []uint32
}

const (
	leafFlag  = uint32(1) << 31
	leafMask  = leafFlag - 1
	groupSize = 8
)

func leafEntry(b Block) uint32 { return leafFlag | uint32(b) }

// NewOctree returns an empty store covering [0, 2^depth) on each axis.
func NewOctree(depth int) *Octree {
	if depth < 1 {
		depth = 1
	}
	return &Octree{
		depth: depth,
		size:  1 << depth,
		pool:  make([]uint32, groupSize, groupSize*512),
	}
}

// Size returns the world edge length in voxels.
func (t *Octree) Size() int { return t.size }

// Len returns the number of allocated node groups.
func (t *Octree) Len() int { return len(t.pool) / groupSize }

// childIndex picks the 3-bit child slot from one bit of each coordinate,
// a digit of the Morton code for (x, y, z).
func childIndex(x, y, z, level int) uint32 {
	return uint32((x>>level)&1 | ((y>>level)&1)<<1 | ((z>>level)&1)<<2)
}

func (t *Octree) inRange(x, y, z int) bool {
	return uint(x) < uint(t.size) && uint(y) < uint(t.size) && uint(z) < uint(t.size)
}

// Get returns the block at (x, y, z), or Air for out-of-range coordinates,
// empty entries, and unset space. A leaf anywhere on the path covers its
// whole subcube, so the walk stops at the first leaf it meets.
func (t *Octree) Get(x, y, z int) Block {
	if !t.inRange(x, y, z) {
		return Air
	}

	group := uint32(0)
	for level := t.depth - 1; level >= 0; level-- {
		e := t.pool[group*groupSize+childIndex(x, y, z, level)]
		if e == 0 {
			return Air
		}
		if e&leafFlag != 0 {
			return Block(e & leafMask)
		}
		group = e
	}
	return Air
}

// Set stores b at (x, y, z). Out-of-range coordinates and Air are no-ops.
// Empty entries on the path get a fresh group; a conflicting leaf is
// subdivided into eight copies of itself first, preserving the appearance of
// the previously uniform region.
func (t *Octree) Set(x, y, z int, b Block) {
	if !t.inRange(x, y, z) || b.IsAir() {
		return
	}

	leaf := leafEntry(b)
	group := uint32(0)
	for level := t.depth - 1; level > 0; level-- {
		i := group*groupSize + childIndex(x, y, z, level)
		e := t.pool[i]
		switch {
		case e == 0:
			child := t.allocGroup(0)
			t.pool[i] = child
			group = child
		case e == leaf:
			// The whole subcube is already this block.
			return
		case e&leafFlag != 0:
			child := t.allocGroup(e)
			t.pool[i] = child
			group = child
		default:
			group = e
		}
	}
	t.pool[group*groupSize+childIndex(x, y, z, 0)] = leaf
}

// SetRegion stores b as one coarse leaf covering the aligned cube of edge
// 2^log2edge whose minimum corner is (x, y, z). The corner must be aligned to
// the edge length and in range, and b must not be Air; otherwise no-op.
// A later conflicting Set inside the cube subdivides it back into eight
// copies, so the rest of the region keeps its appearance.
func (t *Octree) SetRegion(x, y, z, log2edge int, b Block) {
	if b.IsAir() || log2edge < 0 || log2edge >= t.depth {
		return
	}
	mask := 1<<log2edge - 1
	if x&mask != 0 || y&mask != 0 || z&mask != 0 {
		return
	}
	if !t.inRange(x, y, z) {
		return
	}

	leaf := leafEntry(b)
	group := uint32(0)
	for level := t.depth - 1; level > log2edge; level-- {
		i := group*groupSize + childIndex(x, y, z, level)
		e := t.pool[i]
		switch {
		case e == 0:
			child := t.allocGroup(0)
			t.pool[i] = child
			group = child
		case e == leaf:
			return
		case e&leafFlag != 0:
			child := t.allocGroup(e)
			t.pool[i] = child
			group = child
		default:
			group = e
		}
	}
	t.pool[group*groupSize+childIndex(x, y, z, log2edge)] = leaf
}

// allocGroup appends a new 8-entry group with every slot set to fill and
// returns its index.
func (t *Octree) allocGroup(fill uint32) uint32 {
	idx := uint32(len(t.pool) / groupSize)
	for i := 0; i < groupSize; i++ {
		t.pool = append(t.pool, fill)
	}
	return idx
}
