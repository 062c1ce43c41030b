package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"voxen/engine/camera"
	"voxen/engine/mesh"
	"voxen/engine/world"
)

// wall builds a face on the plane x=plane spanning y,z in [-2,2), facing
// the negative X side.
func wall(plane int, b world.Block) mesh.Face {
	return mesh.Face{
		Pos:   [3]int{plane, -2, -2},
		Size:  [3]int{0, 4, 4},
		Dir:   mesh.DirNegX,
		Block: b,
	}
}

// lookPosX is a camera at the origin looking straight down +X.
func lookPosX() camera.Pose {
	return camera.Pose{Position: mgl32.Vec3{0, 0, 0}, Yaw: 0, Pitch: 0}
}

func drawnPixels(s *Screen) int {
	n := 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.ColorAt(x, y) != SkyColor {
				n++
			}
		}
	}
	return n
}

func TestDrawTileFrontFaceVisible(t *testing.T) {
	s := NewScreen(64, 64, false, BackendScalar)
	vp := lookPosX().ViewProjection(1)

	s.DrawTile([]mesh.Face{wall(4, world.Stone)}, vp, s.Bounds())

	want := shade(world.Stone.Color(), mesh.DirNegX)
	if got := s.ColorAt(32, 32); got != want {
		t.Fatalf("ColorAt(32, 32) = %#08x, want %#08x", got, want)
	}
	if n := drawnPixels(s); n == 0 {
		t.Fatal("wall facing the camera drew no pixels")
	}
}

func TestDrawTileBackfaceCulled(t *testing.T) {
	s := NewScreen(64, 64, false, BackendScalar)
	vp := lookPosX().ViewProjection(1)

	// Same plane, but the outward normal points away from the camera.
	f := wall(4, world.Stone)
	f.Dir = mesh.DirPosX
	s.DrawTile([]mesh.Face{f}, vp, s.Bounds())

	if n := drawnPixels(s); n != 0 {
		t.Fatalf("back-facing wall drew %d pixels, want 0", n)
	}
}

func TestDrawTileBehindCameraRejected(t *testing.T) {
	s := NewScreen(64, 64, false, BackendScalar)
	vp := lookPosX().ViewProjection(1)

	f := wall(-4, world.Stone)
	f.Dir = mesh.DirPosX // normal +X, toward the camera, but behind it
	s.DrawTile([]mesh.Face{f}, vp, s.Bounds())

	if n := drawnPixels(s); n != 0 {
		t.Fatalf("wall behind the camera drew %d pixels, want 0", n)
	}
}

func TestDrawTileDepthOrderIndependent(t *testing.T) {
	near := wall(4, world.Stone)
	far := wall(6, world.Grass)
	vp := lookPosX().ViewProjection(1)

	a := NewScreen(64, 64, false, BackendScalar)
	a.DrawTile([]mesh.Face{near, far}, vp, a.Bounds())

	b := NewScreen(64, 64, false, BackendScalar)
	b.DrawTile([]mesh.Face{far, near}, vp, b.Bounds())

	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if a.ColorAt(x, y) != b.ColorAt(x, y) {
				t.Fatalf("color at (%d, %d): near-first %#08x, far-first %#08x",
					x, y, a.ColorAt(x, y), b.ColorAt(x, y))
			}
			if a.DepthAt(x, y) != b.DepthAt(x, y) {
				t.Fatalf("depth at (%d, %d): near-first %v, far-first %v",
					x, y, a.DepthAt(x, y), b.DepthAt(x, y))
			}
		}
	}

	// Where both walls cover the pixel, the nearer one must win.
	want := shade(world.Stone.Color(), mesh.DirNegX)
	if got := a.ColorAt(32, 32); got != want {
		t.Fatalf("ColorAt(32, 32) = %#08x, want nearer wall %#08x", got, want)
	}
}

func TestDrawTileStaysInsideTile(t *testing.T) {
	s := NewScreen(64, 64, false, BackendScalar)
	vp := lookPosX().ViewProjection(1)

	tile := Tile{MinX: 16, MinY: 8, MaxX: 40, MaxY: 24}
	s.DrawTile([]mesh.Face{wall(4, world.Stone)}, vp, tile)

	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			inside := x >= tile.MinX && x < tile.MaxX && y >= tile.MinY && y < tile.MaxY
			if !inside && s.ColorAt(x, y) != SkyColor {
				t.Fatalf("pixel (%d, %d) outside the tile was written", x, y)
			}
		}
	}
	if s.ColorAt(32, 16) == SkyColor {
		t.Fatal("wall covering the tile drew nothing inside it")
	}
}

// meshedScene generates a terrain chunk and meshes it, giving the backends a
// scene with many differently sized and oriented faces.
func meshedScene(t *testing.T) []mesh.Face {
	t.Helper()
	store := world.NewOctree(6)
	world.NewGenerator(7).Populate(store)
	c := world.NewChunk(0, 0, 0)
	world.FillChunk(c, store)
	faces := mesh.Generate(c, 0)
	if len(faces) == 0 {
		t.Fatal("generated scene meshed to zero faces")
	}
	return faces
}

func TestBackendsAgreeExactly(t *testing.T) {
	faces := meshedScene(t)
	pose := camera.Pose{Position: mgl32.Vec3{-6, 12, 16}, Yaw: 0.4, Pitch: -0.5}
	vp := pose.ViewProjection(float32(80) / float32(60))

	scalar := NewScreen(80, 60, false, BackendScalar)
	quad := NewScreen(80, 60, false, BackendQuad)

	// Tiled on one, whole-frame on the other, so tiling seams are covered
	// by the same comparison.
	for ty := 0; ty < 60; ty += 16 {
		for tx := 0; tx < 80; tx += 16 {
			tile := Tile{MinX: tx, MinY: ty, MaxX: min(tx+16, 80), MaxY: min(ty+16, 60)}
			quad.DrawTile(faces, vp, tile)
		}
	}
	scalar.DrawTile(faces, vp, scalar.Bounds())

	if drawnPixels(scalar) == 0 {
		t.Fatal("scene drew no pixels")
	}
	for y := 0; y < 60; y++ {
		for x := 0; x < 80; x++ {
			if scalar.ColorAt(x, y) != quad.ColorAt(x, y) {
				t.Fatalf("color at (%d, %d): scalar %#08x, quad %#08x",
					x, y, scalar.ColorAt(x, y), quad.ColorAt(x, y))
			}
			if scalar.DepthAt(x, y) != quad.DepthAt(x, y) {
				t.Fatalf("depth at (%d, %d): scalar %v, quad %v",
					x, y, scalar.DepthAt(x, y), quad.DepthAt(x, y))
			}
		}
	}
}
