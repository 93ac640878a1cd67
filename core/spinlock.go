package core

import (
	"runtime"
	"sync/atomic"
)

// SpinLock is a test-and-test-and-set spinlock: the fast path is a single
// compare-and-swap; the slow path repeatedly reads the flag (a plain load,
// cheaper than a failed CAS under contention) and cooperatively yields to
// the Go scheduler between observed-held states.
//
// Release is a plain store of false; Go's memory model gives atomic
// stores/loads acquire/release semantics, so Unlock happens-before the
// next successful Lock observes the unlocked state.
type SpinLock struct {
	held atomic.Bool

	// contention counts fast-path CAS failures. Optional instrumentation;
	// zero-value SpinLock still behaves correctly, it just never counts.
	contention atomic.Uint64
}

// Lock acquires the spinlock, blocking the calling goroutine (via
// runtime.Gosched, never a real OS block) until it succeeds.
//
// Complexity: O(1) uncontended; unbounded in the worst case under heavy
// contention, bounded in practice by however many goroutines hold the
// lock ahead of the caller.
func (s *SpinLock) Lock() {
	// Fast path: a single CAS. Most calls are uncontended.
	if s.held.CompareAndSwap(false, true) {
		return
	}
	s.contention.Add(1)

	// Slow path: test-and-test-and-set. Spin reading (cheap) until we
	// observe the lock free, then retry the CAS.
	for {
		for s.held.Load() {
			runtime.Gosched()
		}
		if s.held.CompareAndSwap(false, true) {
			return
		}
	}
}

// TryLock attempts to acquire the spinlock without blocking.
// Complexity: O(1).
func (s *SpinLock) TryLock() bool {
	return s.held.CompareAndSwap(false, true)
}

// Unlock releases the spinlock. The caller must hold it.
// Complexity: O(1).
func (s *SpinLock) Unlock() {
	s.held.Store(false)
}

// ContentionCount reports how many times Lock's fast-path CAS has failed
// since construction. Useful for diagnosing hot NodeData/BagSegment
// instances under load; never required for correctness.
// Complexity: O(1).
func (s *SpinLock) ContentionCount() uint64 {
	return s.contention.Load()
}
