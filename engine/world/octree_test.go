package world

import "testing"

func TestOctreeGetEmpty(t *testing.T) {
	tr := NewOctree(5)
	if got := tr.Get(3, 4, 5); got != Air {
		t.Fatalf("Get(3,4,5) = %v, want Air", got)
	}
}

func TestOctreeOutOfRange(t *testing.T) {
	tr := NewOctree(5)
	size := tr.Size()

	cases := [][3]int{
		{-1, 0, 0}, {0, -1, 0}, {0, 0, -1},
		{size, 0, 0}, {0, size, 0}, {0, 0, size},
		{size * 2, size * 2, size * 2},
	}
	for _, c := range cases {
		if got := tr.Get(c[0], c[1], c[2]); got != Air {
			t.Fatalf("Get(%v) = %v, want Air", c, got)
		}
		tr.Set(c[0], c[1], c[2], Stone)
	}

	if got := tr.Len(); got != 1 {
		t.Fatalf("Len() after out-of-range sets = %d, want 1 (root only)", got)
	}
}

func TestOctreeSetAirIsNoop(t *testing.T) {
	tr := NewOctree(4)
	tr.Set(1, 2, 3, Air)
	if got := tr.Len(); got != 1 {
		t.Fatalf("Len() after Set(Air) = %d, want 1", got)
	}
}

func TestOctreeSetGetRoundTrip(t *testing.T) {
	tr := NewOctree(5)
	size := tr.Size()

	points := [][3]int{
		{0, 0, 0},
		{size - 1, size - 1, size - 1},
		{10, 1, 10},
		{7, 13, 22},
		{1, 0, size - 1},
	}
	blocks := []Block{Stone, Grass, Dirt, Bedrock, Stone}

	for i, p := range points {
		tr.Set(p[0], p[1], p[2], blocks[i])
	}
	for i, p := range points {
		if got := tr.Get(p[0], p[1], p[2]); got != blocks[i] {
			t.Fatalf("Get(%v) = %v, want %v", p, got, blocks[i])
		}
	}
}

func TestOctreeOverwrite(t *testing.T) {
	tr := NewOctree(4)
	tr.Set(5, 5, 5, Stone)
	tr.Set(5, 5, 5, Grass)
	if got := tr.Get(5, 5, 5); got != Grass {
		t.Fatalf("Get(5,5,5) = %v, want Grass", got)
	}
}

func TestOctreeAdjacentColumn(t *testing.T) {
	tr := NewOctree(5)
	tr.Set(10, 1, 10, Dirt)
	tr.Set(10, 2, 10, Dirt)

	if got := tr.Get(10, 1, 10); got != Dirt {
		t.Fatalf("Get(10,1,10) = %v, want Dirt", got)
	}
	if got := tr.Get(10, 2, 10); got != Dirt {
		t.Fatalf("Get(10,2,10) = %v, want Dirt", got)
	}
	if got := tr.Get(10, 1, 11); got != Air {
		t.Fatalf("Get(10,1,11) = %v, want Air", got)
	}
}

// A conflicting insert inside a uniform region must split the leaf into
// eight copies first, so every sibling coordinate keeps its old block.
func TestOctreeSubdividePreservesRegion(t *testing.T) {
	tr := NewOctree(4)

	// One coarse leaf covering the 2x2x2 cube at (8,8,8).
	base := [3]int{8, 8, 8}
	tr.SetRegion(base[0], base[1], base[2], 1, Stone)

	tr.Set(base[0], base[1], base[2], Grass)

	if got := tr.Get(base[0], base[1], base[2]); got != Grass {
		t.Fatalf("Get(base) = %v, want Grass", got)
	}
	for dz := 0; dz < 2; dz++ {
		for dy := 0; dy < 2; dy++ {
			for dx := 0; dx < 2; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				p := [3]int{base[0] + dx, base[1] + dy, base[2] + dz}
				if got := tr.Get(p[0], p[1], p[2]); got != Stone {
					t.Fatalf("Get(%v) = %v, want Stone after sibling overwrite", p, got)
				}
			}
		}
	}
}

func TestOctreeMonotonicGrowth(t *testing.T) {
	tr := NewOctree(5)
	prev := tr.Len()
	for i := 0; i < 20; i++ {
		tr.Set(i, i%tr.Size(), (i*7)%tr.Size(), Stone)
		if n := tr.Len(); n < prev {
			t.Fatalf("Len() shrank from %d to %d", prev, n)
		} else {
			prev = n
		}
	}
}
