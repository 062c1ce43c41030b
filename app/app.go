// Package app wires the engine together: world generation, meshing, the
// render target, and one scheduler loop per core.
package app

import (
	"errors"
	"fmt"
	"runtime"

	"voxen/engine/mesh"
	"voxen/engine/player"
	"voxen/engine/render"
	"voxen/engine/sched"
	"voxen/engine/world"
	"voxen/hal"
)

// ErrStopped is returned by the host step once the engine loops have wound
// down.
var ErrStopped = errors.New("engine stopped")

type Config struct {
	// Seed drives terrain generation.
	Seed int64
	// Depth is the octree depth; the world is a cube of side 2^Depth.
	// Zero means depth 6 (64 voxels).
	Depth int
	// HalfRes renders at half resolution and upscales 2x on flush.
	HalfRes bool
	// Raymarch starts on the per-pixel DDA path instead of the meshed
	// rasterizer. R toggles at runtime either way.
	Raymarch bool
	// TileSize switches region assignment from static row bands to a
	// dynamic tile queue with the given tile edge. Zero keeps row bands.
	TileSize int
}

type system struct {
	h   hal.HAL
	cfg Config

	store    *world.Octree
	faces    []mesh.Face
	player   *player.Player
	controls *player.Controls

	scr   *render.Screen
	st    *sched.State
	bands []render.Tile
	queue *sched.TileQueue
	logs  *sched.LogBox

	ticks <-chan uint64

	raymarch bool
	frames   uint64
}

// New starts the engine with default config and returns the host step.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// Run starts the engine and blocks forever (bare-metal entrypoint).
func Run(h hal.HAL) {
	_ = New(h)
	select {}
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s := newSystem(h, cfg)
	s.start()
	return s.hostStep
}

func RunWithConfig(h hal.HAL, cfg Config) {
	_ = NewWithConfig(h, cfg)
	select {}
}

func newSystem(h hal.HAL, cfg Config) *system {
	if cfg.Depth <= 0 {
		cfg.Depth = 6
	}

	s := &system{
		h:        h,
		cfg:      cfg,
		store:    world.NewOctree(cfg.Depth),
		controls: player.NewControls(),
		logs:     &sched.LogBox{},
		raymarch: cfg.Raymarch,
	}

	world.NewGenerator(cfg.Seed).Populate(s.store)
	s.faces = s.remesh()

	center := float32(s.store.Size()) / 2
	s.player = player.Spawn(s.store, center, center)

	fb := h.Display().Framebuffer()
	s.scr = render.NewScreen(fb.Width(), fb.Height(), cfg.HalfRes, render.BackendQuad)

	if tm := h.Time(); tm != nil {
		s.ticks = tm.Ticks()
	}

	cores := h.Cores().Count()
	s.st = sched.NewState(cores)
	if cfg.TileSize > 0 {
		s.queue = sched.NewTileQueue(sched.Tiles(s.scr.Width(), s.scr.Height(), cfg.TileSize))
	} else {
		s.bands = sched.RowBands(s.scr.Width(), s.scr.Height(), cores)
	}

	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf(
			"voxen: world %d^3, %d faces, %d cores, target %dx%d",
			s.store.Size(), len(s.faces), cores, s.scr.Width(), s.scr.Height()))
	}
	return s
}

// remesh rebuilds the full face list from the store, chunk by chunk. The
// result is swapped in whole; published slices are never mutated.
func (s *system) remesh() []mesh.Face {
	var faces []mesh.Face
	chunks := (s.store.Size() + world.ChunkSize - 1) / world.ChunkSize
	for cy := 0; cy < chunks; cy++ {
		for cz := 0; cz < chunks; cz++ {
			for cx := 0; cx < chunks; cx++ {
				c := world.NewChunk(cx, cy, cz)
				world.FillChunk(c, s.store)
				faces = append(faces, mesh.Generate(c, 0)...)
			}
		}
	}
	return faces
}

func (s *system) start() {
	s.h.Cores().Launch(func(id int) {
		defer s.recoverPanic(id)
		sched.Run(id, s.st, sched.Hooks{
			Step:   s.step,
			Render: s.renderCore,
			Flush:  s.flush,
		})
	})
}

// step runs input and physics on the owner core and produces the frame
// snapshot. A nil face slice selects the raymarch path for the frame.
func (s *system) step() (sched.Snapshot, bool) {
	if !s.waitTick() {
		return sched.Snapshot{}, false
	}
	s.drainInput()
	if s.controls.Quit() {
		return sched.Snapshot{}, false
	}
	if s.controls.TogglePath() {
		s.raymarch = !s.raymarch
	}

	s.player.Step(s.store, s.controls.Input())

	if s.queue != nil {
		s.queue.Reset()
	}

	snap := sched.Snapshot{Pose: s.player.Pose()}
	if !s.raymarch {
		snap.Faces = s.faces
	}
	return snap, true
}

// waitTick paces the owner loop against the platform tick stream: at most
// one physics step per tick. A queued backlog is swallowed so a stalled
// frame does not bank catch-up steps. false means cancellation arrived
// while waiting.
func (s *system) waitTick() bool {
	if s.ticks == nil {
		return !s.st.Cancelled()
	}
	for {
		select {
		case <-s.ticks:
			for {
				select {
				case <-s.ticks:
				default:
					return true
				}
			}
		default:
		}
		if s.st.Cancelled() {
			return false
		}
		runtime.Gosched()
	}
}

func (s *system) drainInput() {
	kb := s.h.Input().Keyboard()
	if kb == nil {
		return
	}
	ch := kb.Events()
	if ch == nil {
		return
	}
	for {
		select {
		case ev := <-ch:
			s.controls.HandleKey(ev)
		default:
			return
		}
	}
}

func (s *system) renderCore(coreID int, snap sched.Snapshot) {
	if s.queue != nil {
		for {
			tile, ok := s.queue.Next()
			if !ok {
				return
			}
			s.renderTile(tile, snap)
		}
	}
	s.renderTile(s.bands[coreID], snap)
}

func (s *system) renderTile(tile render.Tile, snap sched.Snapshot) {
	s.scr.ClearTile(tile)
	if snap.Faces == nil {
		s.scr.RayMarchTile(s.store, snap.Pose, tile)
		return
	}
	aspect := float32(s.scr.Width()) / float32(s.scr.Height())
	s.scr.DrawTile(snap.Faces, snap.Pose.ViewProjection(aspect), tile)
}

func (s *system) flush() {
	fb := s.h.Display().Framebuffer()
	if fb == nil {
		return
	}
	s.scr.Flush(fb)
	s.frames++
	s.drawHUD(fb)
	_ = fb.Present()

	if l := s.h.Logger(); l != nil {
		s.logs.Drain(l.WriteLineString)
	}
}

// hostStep is polled by the host at its own cadence; the engine loops run
// freely underneath it. On cancellation it drains any lines the loops left
// behind, the panic path in particular, before reporting the stop.
func (s *system) hostStep() error {
	if s.st.Cancelled() {
		if l := s.h.Logger(); l != nil {
			s.logs.Drain(l.WriteLineString)
		}
		return ErrStopped
	}
	return nil
}