package sched

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"testing"
)

func TestLogBoxTryRecvEmpty(t *testing.T) {
	var b LogBox

	_, ok := b.TryRecv()
	if ok {
		t.Fatalf("TryRecv() ok = true, want false")
	}
}

func TestLogBoxOrdered(t *testing.T) {
	var b LogBox

	for i := 0; i < 3; i++ {
		if !b.TrySend(fmt.Sprintf("line %d", i)) {
			t.Fatalf("TrySend() ok = false at line %d, want true", i)
		}
	}
	for i := 0; i < 3; i++ {
		line, ok := b.TryRecv()
		if !ok {
			t.Fatalf("TryRecv() ok = false at line %d, want true", i)
		}
		if want := fmt.Sprintf("line %d", i); line != want {
			t.Fatalf("TryRecv() = %q, want %q", line, want)
		}
	}
}

func TestLogBoxDropsWhenFull(t *testing.T) {
	var b LogBox

	for i := 0; i < logBoxSlots; i++ {
		if !b.TrySend("x") {
			t.Fatalf("TrySend() ok = false at slot %d, want true", i)
		}
	}
	if b.TrySend("overflow") {
		t.Fatalf("TrySend() ok = true when full, want false")
	}
}

func TestLogBoxTruncatesLongLines(t *testing.T) {
	var b LogBox

	b.TrySend(strings.Repeat("a", logLineBytes*2))
	line, ok := b.TryRecv()
	if !ok {
		t.Fatal("TryRecv() ok = false, want true")
	}
	if len(line) != logLineBytes {
		t.Fatalf("len(line) = %d, want %d", len(line), logLineBytes)
	}
}

// Draining while producers are still sending must deliver whole lines: a
// reserved slot may not be consumed until its copy has completed.
func TestLogBoxDrainDuringSendsSeesWholeLines(t *testing.T) {
	var b LogBox

	const producers = 4
	const perProducer = 200

	valid := map[string]bool{}
	for p := 0; p < producers; p++ {
		valid[fmt.Sprintf("producer %d reporting in", p)] = true
	}

	start := make(chan struct{})
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(producers)
	for p := 0; p < producers; p++ {
		go func(p int) {
			defer wg.Done()
			<-start
			line := fmt.Sprintf("producer %d reporting in", p)
			for i := 0; i < perProducer; i++ {
				for !b.TrySend(line) {
					runtime.Gosched()
				}
			}
		}(p)
	}
	go func() {
		wg.Wait()
		close(done)
	}()

	close(start)
	received := 0
	for {
		line, ok := b.TryRecv()
		if ok {
			if !valid[line] {
				t.Fatalf("TryRecv() = %q, not a line any producer sent", line)
			}
			received++
			continue
		}
		select {
		case <-done:
			b.Drain(func(l string) {
				if !valid[l] {
					t.Errorf("Drain() delivered %q, not a line any producer sent", l)
				}
				received++
			})
			if want := producers * perProducer; received != want {
				t.Fatalf("received %d lines, want %d", received, want)
			}
			return
		default:
			runtime.Gosched()
		}
	}
}

func TestLogBoxDrainConcurrentProducers(t *testing.T) {
	var b LogBox

	const producers = 4
	var wg sync.WaitGroup
	wg.Add(producers)
	var sent [producers]int
	for p := 0; p < producers; p++ {
		go func(p int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if b.TrySend("w") {
					sent[p]++
				}
			}
		}(p)
	}
	wg.Wait()

	total := 0
	for _, n := range sent {
		total += n
	}
	got := 0
	b.Drain(func(string) { got++ })
	if got != total {
		t.Fatalf("Drain() delivered %d lines, want %d", got, total)
	}
}
