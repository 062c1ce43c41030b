package world

import "encoding/binary"

const (
	// ChunkSize is the dense chunk edge length in voxels.
	ChunkSize = 32
	// ChunkVolume is the voxel count of one dense chunk.
	ChunkVolume = ChunkSize * ChunkSize * ChunkSize
)

// Chunk is a dense fixed-size voxel grid. It is the meshing input: whoever
// populates it owns it, and both the RLE encoding and the face list derived
// from it are regenerate-on-demand artifacts, not authoritative state.
type Chunk struct {
	// Origin is the chunk position in chunk units; world voxel coordinates
	// are Origin*ChunkSize + local.
	Origin [3]int
	blocks [ChunkVolume]Block
}

// NewChunk returns an all-air chunk at the given chunk-space origin.
func NewChunk(ox, oy, oz int) *Chunk {
	return &Chunk{Origin: [3]int{ox, oy, oz}}
}

// Get returns the block at local coordinates, or Air when out of range.
func (c *Chunk) Get(x, y, z int) Block {
	if uint(x) >= ChunkSize || uint(y) >= ChunkSize || uint(z) >= ChunkSize {
		return Air
	}
	return c.blocks[x+y*ChunkSize+z*ChunkSize*ChunkSize]
}

// Set stores the block at local coordinates; out of range is a no-op.
func (c *Chunk) Set(x, y, z int, b Block) {
	if uint(x) >= ChunkSize || uint(y) >= ChunkSize || uint(z) >= ChunkSize {
		return
	}
	c.blocks[x+y*ChunkSize+z*ChunkSize*ChunkSize] = b
}

// Compress run-length encodes the chunk contents as repeated
// (block, little-endian uint16 count) records in x, then y, then z order.
func (c *Chunk) Compress() []byte {
	rle := make([]byte, 0, 64)

	last := c.blocks[0]
	var count uint16
	flush := func() {
		rle = append(rle, byte(last))
		rle = binary.LittleEndian.AppendUint16(rle, count)
	}

	for _, b := range c.blocks {
		if b == last && count < 0xFFFF {
			count++
			continue
		}
		flush()
		last = b
		count = 1
	}
	flush()
	return rle
}
