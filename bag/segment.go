package bag

import (
	"errors"
	"runtime"
	"sync/atomic"
)

// ErrInvariantViolation is a fatal internal-invariant error: a segment's
// head/tail block was nil while nElems reported > 0, or vice versa. This
// should never happen and indicates a bug in this package.
var ErrInvariantViolation = errors.New("bag: headBlock/tailBlock/nElems invariant violated")

// Segment is one BagSegment: one worker thread's lock-protected deque,
// backed by an unrolled linked list of blocks.
//
// Invariant: headBlock == nil iff tailBlock == nil iff nElems == 0.
type Segment[T any] struct {
	status statusWord

	headBlock *block[T]
	tailBlock *block[T]
	nElems    atomic.Int64

	initialBlockSize int
	maxBlockSize     int
	tightSpins       int
}

// NewSegment constructs an empty Segment with the given block-growth
// bounds and tight-spin count (clamped to [MinTightSpins, MaxTightSpins]).
func NewSegment[T any](initialBlockSize, maxBlockSize, tightSpins int) *Segment[T] {
	if initialBlockSize <= 0 {
		initialBlockSize = DefaultInitialBlockSize
	}
	if maxBlockSize < initialBlockSize {
		maxBlockSize = DefaultMaxBlockSize
	}
	if tightSpins < MinTightSpins {
		tightSpins = MinTightSpins
	} else if tightSpins > MaxTightSpins {
		tightSpins = MaxTightSpins
	}

	return &Segment[T]{
		initialBlockSize: initialBlockSize,
		maxBlockSize:     maxBlockSize,
		tightSpins:       tightSpins,
	}
}

// Len returns the segment's current element count (lock-free read).
func (s *Segment[T]) Len() int { return int(s.nElems.Load()) }

// IsEmpty reports whether the segment currently holds no elements.
func (s *Segment[T]) IsEmpty() bool { return s.nElems.Load() == 0 }

// TryAcquire attempts to move the segment from UNLOCKED to want via a
// single CAS (the "best-case" scan step).
func (s *Segment[T]) TryAcquire(want Status) bool {
	return s.status.tryAcquire(want)
}

// AcquireBlocking pins to this segment and spins until it acquires want,
// yielding cooperatively after tightSpins tight iterations (the
// "average-case" acquisition path).
func (s *Segment[T]) AcquireBlocking(want Status) {
	spins := 0
	for {
		if s.status.load() == Unlocked && s.status.tryAcquire(want) {
			return
		}
		spins++
		if spins >= s.tightSpins {
			runtime.Gosched()
			spins = 0
		}
	}
}

// Release returns the segment to UNLOCKED. The caller must currently hold it.
func (s *Segment[T]) Release() { s.status.release() }

// PushLocked appends x to the tail block, growing the unrolled list if
// the tail block is full. The caller must hold the segment in Add status.
func (s *Segment[T]) PushLocked(x T) {
	if s.tailBlock == nil {
		s.headBlock = newBlock[T](s.initialBlockSize)
		s.tailBlock = s.headBlock
	} else if s.tailBlock.full() {
		newCap := nextBlockCapacity(s.tailBlock.capacity(), s.initialBlockSize, s.maxBlockSize)
		nb := newBlock[T](newCap)
		s.tailBlock.next = nb
		s.tailBlock = nb
	}
	s.tailBlock.push(x)
	s.nElems.Add(1)
}

// PopLocked removes and returns the oldest element. The caller must hold
// the segment in Remove status. Returns ok == false if the segment is
// empty.
func (s *Segment[T]) PopLocked() (x T, ok bool) {
	if s.headBlock == nil {
		return x, false
	}
	if s.headBlock.empty() {
		// An emptied head block is unlinked and freed.
		s.headBlock = s.headBlock.next
		if s.headBlock == nil {
			s.tailBlock = nil
			return x, false
		}
	}
	x = s.headBlock.pop()
	s.nElems.Add(-1)
	if s.headBlock.empty() && s.headBlock.next == nil {
		// Last block just drained; reset to the nil/nil/0 invariant
		// immediately rather than waiting for the next Pop.
		s.headBlock = nil
		s.tailBlock = nil
	}

	return x, true
}

// TakeElementsLocked bulk-transfers up to n elements starting at the head
// block, with one contiguous slice copy per block and moving on to the
// next block when the head block runs out, reducing nElems atomically
// once rather than per element. The caller must hold the segment in
// Remove status.
func (s *Segment[T]) TakeElementsLocked(n int) []T {
	if n <= 0 || s.headBlock == nil {
		return nil
	}

	out := make([]T, 0, n)
	for len(out) < n && s.headBlock != nil {
		if s.headBlock.empty() {
			s.headBlock = s.headBlock.next
			if s.headBlock == nil {
				s.tailBlock = nil
			}
			continue
		}
		avail := s.headBlock.len()
		want := n - len(out)
		take := avail
		if take > want {
			take = want
		}
		out = append(out, s.headBlock.data[s.headBlock.start:s.headBlock.start+take]...)
		s.headBlock.start += take
		if s.headBlock.empty() && s.headBlock.next == nil {
			s.headBlock = nil
			s.tailBlock = nil
		}
	}
	if len(out) > 0 {
		s.nElems.Add(-int64(len(out)))
	}

	return out
}

// CheckInvariant returns ErrInvariantViolation if the nil/nil/0 three-way
// invariant is violated. Intended for tests and defensive assertions, not
// the hot path.
func (s *Segment[T]) CheckInvariant() error {
	nilHead := s.headBlock == nil
	nilTail := s.tailBlock == nil
	zero := s.nElems.Load() == 0
	if nilHead == nilTail && nilTail == zero {
		return nil
	}

	return ErrInvariantViolation
}
