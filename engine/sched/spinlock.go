package sched

import (
	"runtime"
	"sync/atomic"
)

// SpinLock serializes very short critical sections, such as a surface blit
// shared by more than one core. Busy-waits with Gosched while contended.
type SpinLock struct {
	state int32
}

// Lock acquires the lock.
func (s *SpinLock) Lock() {
	for !atomic.CompareAndSwapInt32(&s.state, 0, 1) {
		runtime.Gosched()
	}
}

// Unlock releases the lock.
func (s *SpinLock) Unlock() {
	atomic.StoreInt32(&s.state, 0)
}

// TryLock acquires the lock without waiting.
func (s *SpinLock) TryLock() bool {
	return atomic.CompareAndSwapInt32(&s.state, 0, 1)
}
