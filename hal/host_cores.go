//go:build !tinygo

package hal

import (
	"runtime"
	"sync"
)

// hostCores emulates firmware multiprocessing start-up with one OS-thread
// locked goroutine per logical core.
type hostCores struct {
	count int
	once  sync.Once
}

func newHostCores(count int) *hostCores {
	if count <= 0 {
		count = runtime.NumCPU()
	}
	return &hostCores{count: count}
}

func (c *hostCores) Count() int { return c.count }

func (c *hostCores) Launch(task func(id int)) {
	c.once.Do(func() {
		for id := 0; id < c.count; id++ {
			go func(id int) {
				runtime.LockOSThread()
				task(id)
			}(id)
		}
	})
}
