//go:build !tinygo

package hal

import "time"

const hostTickDur = time.Millisecond

// hostTime emits a 1 kHz tick stream. Sends never block: a tick that finds
// the channel full is dropped, so consumers pace on tick arrival rather than
// counting them.
type hostTime struct {
	ch chan uint64
}

func newHostTime() *hostTime {
	t := &hostTime{ch: make(chan uint64, 16)}
	go t.run()
	return t
}

func (t *hostTime) run() {
	tk := time.NewTicker(hostTickDur)
	defer tk.Stop()

	var seq uint64
	for range tk.C {
		seq++
		select {
		case t.ch <- seq:
		default:
		}
	}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }
