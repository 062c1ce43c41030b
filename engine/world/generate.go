package world

import "github.com/aquilax/go-perlin"

// Generator builds the start world. It is deterministic for a given seed.
type Generator struct {
	noise *perlin.Perlin
	// Amplitude is the terrain height swing in voxels above BaseHeight.
	Amplitude int
	// BaseHeight is the ground level of the flat part of the world.
	BaseHeight int
}

const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseLevels = 3
	noiseScale  = 48.0
)

// NewGenerator returns a terrain generator for the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		noise:      perlin.NewPerlin(noiseAlpha, noiseBeta, noiseLevels, seed),
		Amplitude:  6,
		BaseHeight: 3,
	}
}

// heightAt samples the terrain height field at a world column.
func (g *Generator) heightAt(x, z int) int {
	n := g.noise.Noise2D(float64(x)/noiseScale, float64(z)/noiseScale)
	h := g.BaseHeight + int((n+1)*0.5*float64(g.Amplitude))
	if h < 2 {
		h = 2
	}
	return h
}

// Populate fills the store with a bedrock floor, dirt body, grass cap, and
// the occasional stone outcrop. Columns cover the full store footprint.
func (g *Generator) Populate(t *Octree) {
	size := t.Size()
	for z := 0; z < size; z++ {
		for x := 0; x < size; x++ {
			h := g.heightAt(x, z)
			if h >= size {
				h = size - 1
			}
			t.Set(x, 0, z, Bedrock)
			for y := 1; y < h; y++ {
				t.Set(x, y, z, Dirt)
			}
			t.Set(x, h, z, Grass)

			// Stone outcrops where the noise ridges sharply.
			n := g.noise.Noise2D(float64(x)/(noiseScale*0.25), float64(z)/(noiseScale*0.25))
			if n > 0.62 {
				t.Set(x, h+1, z, Stone)
			}
		}
	}
}

// FillChunk copies the store contents covering the chunk's world region into
// the dense grid, so the mesher can run over plain array lookups.
func FillChunk(c *Chunk, t *Octree) {
	wx := c.Origin[0] * ChunkSize
	wy := c.Origin[1] * ChunkSize
	wz := c.Origin[2] * ChunkSize
	for z := 0; z < ChunkSize; z++ {
		for y := 0; y < ChunkSize; y++ {
			for x := 0; x < ChunkSize; x++ {
				c.Set(x, y, z, t.Get(wx+x, wy+y, wz+z))
			}
		}
	}
}
