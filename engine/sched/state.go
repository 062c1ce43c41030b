// Package sched synchronizes one render loop per core around a shared frame
// index. The owner core (id 0) publishes a per-frame snapshot, workers spin
// on the index, and a completion counter forms the frame barrier before the
// owner flushes. All waiting is busy-wait with Gosched; nothing blocks.
package sched

import (
	"runtime"
	"sync/atomic"

	"voxen/engine/camera"
	"voxen/engine/mesh"
)

// Snapshot is the per-frame input published by the owner before the frame
// index is advanced. Workers treat it as immutable for the frame; the face
// slice is swapped whole, never mutated in place.
type Snapshot struct {
	Pose  camera.Pose
	Faces []mesh.Face
}

// State is the shared frame state. The frame index store after the snapshot
// write orders the snapshot before any worker that observes the new index,
// and the done increments order region writes before the owner's flush.
type State struct {
	_ [0]func() // prevent accidental copying.

	cores int

	frame  atomic.Uint64
	done   atomic.Uint32
	cancel atomic.Bool

	snap Snapshot
}

// NewState creates frame state for the given core count.
func NewState(cores int) *State {
	if cores < 1 {
		cores = 1
	}
	return &State{cores: cores}
}

// Cores returns the participating core count.
func (s *State) Cores() int { return s.cores }

// PublishFrame stores the snapshot and advances the frame index. Owner only.
func (s *State) PublishFrame(snap Snapshot) uint64 {
	s.snap = snap
	return s.frame.Add(1)
}

// Frame returns the current frame index.
func (s *State) Frame() uint64 { return s.frame.Load() }

// Snapshot returns the published frame input. Valid only after observing a
// frame index advance.
func (s *State) Snapshot() Snapshot { return s.snap }

// WaitFrame spins until the frame index moves past last or the state is
// cancelled. ok is false on cancellation.
func (s *State) WaitFrame(last uint64) (frame uint64, ok bool) {
	for {
		if s.Cancelled() {
			return last, false
		}
		if f := s.frame.Load(); f != last {
			return f, true
		}
		runtime.Gosched()
	}
}

// SignalDone marks this worker's region complete for the current frame.
func (s *State) SignalDone() { s.done.Add(1) }

// WaitWorkers spins until all workers have signalled, then resets the
// counter for the next frame. With one core it returns immediately. Owner
// only; ok is false on cancellation.
func (s *State) WaitWorkers() (ok bool) {
	need := uint32(s.cores - 1)
	for s.done.Load() < need {
		if s.Cancelled() {
			return false
		}
		runtime.Gosched()
	}
	s.done.Store(0)
	return true
}

// Cancel sets the shared cancellation flag. It reports whether this call was
// the one that set it, so panic handling runs once.
func (s *State) Cancel() bool {
	return s.cancel.CompareAndSwap(false, true)
}

// Cancelled reports whether the loops should wind down.
func (s *State) Cancelled() bool { return s.cancel.Load() }
