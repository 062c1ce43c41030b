package world

import "testing"

func TestGeneratorDeterministic(t *testing.T) {
	a := NewOctree(6)
	b := NewOctree(6)
	NewGenerator(42).Populate(a)
	NewGenerator(42).Populate(b)

	for z := 0; z < a.Size(); z += 3 {
		for y := 0; y < a.Size(); y += 2 {
			for x := 0; x < a.Size(); x += 3 {
				if ga, gb := a.Get(x, y, z), b.Get(x, y, z); ga != gb {
					t.Fatalf("Get(%d,%d,%d): %v vs %v for same seed", x, y, z, ga, gb)
				}
			}
		}
	}
}

func TestGeneratorFloor(t *testing.T) {
	tr := NewOctree(6)
	NewGenerator(1).Populate(tr)

	for z := 0; z < tr.Size(); z++ {
		for x := 0; x < tr.Size(); x++ {
			if got := tr.Get(x, 0, z); got != Bedrock {
				t.Fatalf("Get(%d,0,%d) = %v, want Bedrock", x, z, got)
			}
			// Every column has a grass cap somewhere above the floor.
			found := false
			for y := 1; y < tr.Size(); y++ {
				if tr.Get(x, y, z) == Grass {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("column (%d,%d) has no grass cap", x, z)
			}
		}
	}
}

func TestFillChunkMirrorsStore(t *testing.T) {
	tr := NewOctree(6)
	tr.Set(3, 4, 5, Stone)
	tr.Set(0, 0, 0, Bedrock)

	c := NewChunk(0, 0, 0)
	FillChunk(c, tr)

	if got := c.Get(3, 4, 5); got != Stone {
		t.Fatalf("chunk Get(3,4,5) = %v, want Stone", got)
	}
	if got := c.Get(0, 0, 0); got != Bedrock {
		t.Fatalf("chunk Get(0,0,0) = %v, want Bedrock", got)
	}
	if got := c.Get(1, 1, 1); got != Air {
		t.Fatalf("chunk Get(1,1,1) = %v, want Air", got)
	}
}
