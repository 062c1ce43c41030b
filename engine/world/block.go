// Package world holds the voxel data model: block types, dense chunks for
// meshing, and the sparse octree store queried by rendering and physics.
package world

// Block identifies a voxel type. Zero is air.
type Block uint8

const (
	Air Block = iota
	Stone
	Grass
	Dirt
	Bedrock
)

func (b Block) IsAir() bool { return b == Air }

// IsOpaque reports whether the block occludes the faces behind it.
func (b Block) IsOpaque() bool { return b != Air }

// blockColors maps blocks to XRGB8888 shading colors.
var blockColors = [...]uint32{
	Air:     0x00000000,
	Stone:   0x00808080,
	Grass:   0x0000C030,
	Dirt:    0x008B4513,
	Bedrock: 0x00202020,
}

// Color returns the XRGB8888 base color for b. Unknown blocks shade white.
func (b Block) Color() uint32 {
	if int(b) < len(blockColors) {
		return blockColors[b]
	}
	return 0x00FFFFFF
}
