//go:build tinygo

package hal

import (
	"sync"
	"time"
)

// tinyGoCores runs everything on the single TinyGo scheduler; the engine
// still sees the same Launch contract as on multicore targets.
type tinyGoCores struct {
	once sync.Once
}

func (c *tinyGoCores) Count() int { return 1 }

func (c *tinyGoCores) Launch(task func(id int)) {
	c.once.Do(func() {
		go task(0)
	})
}

type tinyGoTime struct {
	ch chan uint64
}

func newTinyGoTime() *tinyGoTime {
	t := &tinyGoTime{ch: make(chan uint64, 16)}
	go func() {
		var seq uint64
		for {
			time.Sleep(time.Millisecond)
			seq++
			select {
			case t.ch <- seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinyGoTime) Ticks() <-chan uint64 { return t.ch }
