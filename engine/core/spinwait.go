package core

import (
	"runtime"
	"sync/atomic"
)

// Spins before Backoff starts yielding to the scheduler.
const maxSpinCount = 64

// Backoff is an exponential spin-wait. Each Wait spins twice as long as the
// previous one until the cap is reached, then yields the processor.
type Backoff struct {
	count int
}

func (b *Backoff) Wait() {
	if b.count < maxSpinCount {
		for i := 0; i < b.count+1; i++ {
			spinHint()
		}
		b.count = b.count*2 + 1
		return
	}
	runtime.Gosched()
}

// Reset restarts the backoff from the shortest spin.
func (b *Backoff) Reset() {
	b.count = 0
}

// IsYielding reports whether Wait has reached the cap and yields now.
func (b *Backoff) IsYielding() bool {
	return b.count >= maxSpinCount
}

var spinSink atomic.Uint32

//go:noinline
func spinHint() {
	spinSink.Add(1)
}

// SpinLock is a test-and-test-and-set lock for very short critical sections.
// The zero value is unlocked. It must not be copied after first use.
type SpinLock struct {
	state atomic.Uint32
}

func (l *SpinLock) Lock() {
	var b Backoff
	for {
		if l.state.Load() == 0 && l.state.CompareAndSwap(0, 1) {
			return
		}
		b.Wait()
	}
}

func (l *SpinLock) TryLock() bool {
	return l.state.CompareAndSwap(0, 1)
}

func (l *SpinLock) Unlock() {
	l.state.Store(0)
}
