package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"voxen/engine/camera"
	"voxen/engine/mesh"
	"voxen/engine/world"
)

// flatFloor builds a 64-wide world with a single grass layer at y=3.
func flatFloor() *world.Octree {
	store := world.NewOctree(6)
	for z := 0; z < store.Size(); z++ {
		for x := 0; x < store.Size(); x++ {
			store.Set(x, 3, z, world.Grass)
		}
	}
	return store
}

func TestCastRayHitsFloorFromAbove(t *testing.T) {
	store := flatFloor()

	got := castRay(store, mgl32.Vec3{32.5, 10, 32.5}, mgl32.Vec3{0, -1, 0})

	// The ray enters the grass cell through its top face at distance 6.
	want := mix(shade(world.Grass.Color(), mesh.DirPosY), SkyColor, 6.0/rayFogDist)
	if got != want {
		t.Fatalf("castRay(down) = %#08x, want %#08x", got, want)
	}
}

func TestCastRayHitsSideFace(t *testing.T) {
	store := flatFloor()

	// Traveling +X at floor height enters the next cell through its -X face.
	got := castRay(store, mgl32.Vec3{28.5, 3.5, 32.5}, mgl32.Vec3{1, 0, 0})

	want := mix(shade(world.Grass.Color(), mesh.DirNegX), SkyColor, 0.5/rayFogDist)
	if got != want {
		t.Fatalf("castRay(+X) = %#08x, want %#08x", got, want)
	}
}

func TestCastRayMissesToSky(t *testing.T) {
	store := flatFloor()

	if got := castRay(store, mgl32.Vec3{32.5, 10, 32.5}, mgl32.Vec3{0, 1, 0}); got != SkyColor {
		t.Fatalf("castRay(up) = %#08x, want sky", got)
	}
	// Horizontal ray above the floor runs out of fog range.
	if got := castRay(store, mgl32.Vec3{32.5, 8.5, 32.5}, mgl32.Vec3{1, 0, 0}); got != SkyColor {
		t.Fatalf("castRay(level) = %#08x, want sky", got)
	}
}

func TestRayMarchSeesFloor(t *testing.T) {
	store := flatFloor()
	s := NewScreen(32, 32, false, BackendQuad)
	pose := camera.Pose{Position: mgl32.Vec3{32, 10, 32}, Pitch: camera.ClampPitch(-1.2)}

	s.RayMarch(store, pose, 0, s.Height())

	if got := s.ColorAt(16, 16); got == SkyColor {
		t.Fatal("center pixel is sky when looking down at the floor")
	}
	if n := drawnPixels(s); n < 32*32/2 {
		t.Fatalf("only %d non-sky pixels looking down at the floor", n)
	}
}

func TestRayMarchTileStaysInsideTile(t *testing.T) {
	store := world.NewOctree(4) // empty: every ray resolves to sky
	s := NewScreen(16, 16, false, BackendQuad)

	const sentinel = uint32(0x00ABCDEF)
	for i := range s.color {
		s.color[i] = sentinel
	}

	tile := Tile{MinX: 4, MinY: 4, MaxX: 12, MaxY: 12}
	s.RayMarchTile(store, camera.Pose{Position: mgl32.Vec3{8, 8, 8}}, tile)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			inside := x >= 4 && x < 12 && y >= 4 && y < 12
			if inside && s.ColorAt(x, y) != SkyColor {
				t.Fatalf("pixel (%d, %d) inside the tile = %#08x, want sky", x, y, s.ColorAt(x, y))
			}
			if !inside && s.ColorAt(x, y) != sentinel {
				t.Fatalf("pixel (%d, %d) outside the tile was written", x, y)
			}
		}
	}
}
