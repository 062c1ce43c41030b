package sched

import "sync/atomic"

// logLineBytes caps a diagnostic line; longer lines are truncated.
const logLineBytes = 96

const logBoxSlots = 16

type logSlot struct {
	// ready gates the consumer: 0 while a producer is still copying into
	// the slot, stored to 1 only after buf and n are complete.
	ready atomic.Uint32
	n     uint16
	buf   [logLineBytes]byte
}

// LogBox is a fixed-size multi-producer single-consumer queue for short
// diagnostic lines from worker cores. Producers never block and never
// allocate; when the box is full the line is dropped. The owner drains it
// after each flush.
type LogBox struct {
	_     [0]func() // prevent accidental copying.
	head  atomic.Uint32
	tail  atomic.Uint32
	slots [logBoxSlots]logSlot
}

// TrySend enqueues a line, reporting false when the box is full.
func (b *LogBox) TrySend(line string) bool {
	head := b.head.Load()
	tail := b.tail.Load()
	if head-tail >= logBoxSlots {
		return false
	}

	// Reserve a slot. The reservation alone does not publish it; the
	// consumer skips the slot until ready flips after the copy.
	if !b.head.CompareAndSwap(head, head+1) {
		return false
	}

	slot := &b.slots[head%logBoxSlots]
	n := copy(slot.buf[:], line)
	slot.n = uint16(n)
	slot.ready.Store(1)
	return true
}

// TryRecv dequeues one line, reporting false when the box is empty. Single
// consumer only.
func (b *LogBox) TryRecv() (string, bool) {
	tail := b.tail.Load()
	head := b.head.Load()
	if tail == head {
		return "", false
	}

	slot := &b.slots[tail%logBoxSlots]
	if slot.ready.Load() == 0 {
		// Reserved but not yet written; try again later.
		return "", false
	}
	line := string(slot.buf[:slot.n])
	slot.ready.Store(0)
	b.tail.Store(tail + 1)
	return line, true
}

// Drain passes every queued line to fn, in order.
func (b *LogBox) Drain(fn func(line string)) {
	for {
		line, ok := b.TryRecv()
		if !ok {
			return
		}
		fn(line)
	}
}
