package world

import (
	"encoding/binary"
	"testing"
)

func TestChunkBoundsAbsorbed(t *testing.T) {
	c := NewChunk(0, 0, 0)
	c.Set(-1, 0, 0, Stone)
	c.Set(ChunkSize, 0, 0, Stone)
	if got := c.Get(-1, 0, 0); got != Air {
		t.Fatalf("Get(-1,0,0) = %v, want Air", got)
	}
	if got := c.Get(ChunkSize, 0, 0); got != Air {
		t.Fatalf("Get(ChunkSize,0,0) = %v, want Air", got)
	}
}

func TestChunkSetGet(t *testing.T) {
	c := NewChunk(0, 0, 0)
	c.Set(1, 2, 3, Grass)
	if got := c.Get(1, 2, 3); got != Grass {
		t.Fatalf("Get(1,2,3) = %v, want Grass", got)
	}
}

func decodeRLE(t *testing.T, rle []byte) []Block {
	t.Helper()
	if len(rle)%3 != 0 {
		t.Fatalf("RLE length = %d, want multiple of 3", len(rle))
	}
	var out []Block
	for i := 0; i < len(rle); i += 3 {
		b := Block(rle[i])
		n := binary.LittleEndian.Uint16(rle[i+1 : i+3])
		for j := uint16(0); j < n; j++ {
			out = append(out, b)
		}
	}
	return out
}

func TestChunkCompressEmpty(t *testing.T) {
	c := NewChunk(0, 0, 0)
	rle := c.Compress()

	blocks := decodeRLE(t, rle)
	if len(blocks) != ChunkVolume {
		t.Fatalf("decoded length = %d, want %d", len(blocks), ChunkVolume)
	}
	for i, b := range blocks {
		if b != Air {
			t.Fatalf("decoded[%d] = %v, want Air", i, b)
		}
	}
}

func TestChunkCompressRoundTrip(t *testing.T) {
	c := NewChunk(0, 0, 0)
	for x := 0; x < ChunkSize; x++ {
		c.Set(x, 0, 0, Bedrock)
		c.Set(x, 1, 0, Dirt)
		c.Set(x, 2, 0, Grass)
	}
	c.Set(5, 3, 0, Stone)

	blocks := decodeRLE(t, c.Compress())
	if len(blocks) != ChunkVolume {
		t.Fatalf("decoded length = %d, want %d", len(blocks), ChunkVolume)
	}
	for z := 0; z < ChunkSize; z++ {
		for y := 0; y < ChunkSize; y++ {
			for x := 0; x < ChunkSize; x++ {
				want := c.Get(x, y, z)
				got := blocks[x+y*ChunkSize+z*ChunkSize*ChunkSize]
				if got != want {
					t.Fatalf("decoded(%d,%d,%d) = %v, want %v", x, y, z, got, want)
				}
			}
		}
	}
}
