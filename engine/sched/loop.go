package sched

// Hooks connect a core loop to the application. Step and Flush run only on
// the owner core; Render runs on every core with the frame's snapshot and
// must confine itself to the core's assigned region.
type Hooks struct {
	// Step advances input and physics and produces the next frame's
	// snapshot. Returning false cancels all loops.
	Step func() (Snapshot, bool)
	// Render draws this core's region for the frame.
	Render func(coreID int, snap Snapshot)
	// Flush presents the finished frame. May be nil.
	Flush func()
}

// Run executes the frame loop for one core until cancellation. Core 0 is
// the owner: it publishes the snapshot, renders its own region, waits out
// the frame barrier and flushes. All other cores spin on the frame index,
// render their region, and signal completion.
func Run(coreID int, st *State, h Hooks) {
	if coreID == 0 {
		runOwner(st, h)
		return
	}
	runWorker(coreID, st, h)
}

func runOwner(st *State, h Hooks) {
	for !st.Cancelled() {
		snap, ok := h.Step()
		if !ok {
			st.Cancel()
			return
		}
		st.PublishFrame(snap)
		h.Render(0, snap)
		if !st.WaitWorkers() {
			return
		}
		if h.Flush != nil {
			h.Flush()
		}
	}
}

func runWorker(coreID int, st *State, h Hooks) {
	// The frame index starts at 0 and only PublishFrame advances it, so a
	// worker that comes up after the owner has already published still sees
	// the pending frame instead of waiting past it.
	var last uint64
	for {
		frame, ok := st.WaitFrame(last)
		if !ok {
			return
		}
		last = frame
		h.Render(coreID, st.Snapshot())
		st.SignalDone()
	}
}
