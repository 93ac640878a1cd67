package bag

import "sync/atomic"

// Bag is a set of Segments sized by per-locale parallelism, plus two
// atomic round-robin counters used to pick a starting segment for
// enqueue and dequeue respectively. A Bag is a bag and not a queue:
// no FIFO/LIFO order is guaranteed across segments.
type Bag[T any] struct {
	segments    []*Segment[T]
	startIdxEnq atomic.Uint64
	startIdxDeq atomic.Uint64
}

// New constructs a Bag with maxTaskPar segments, each configured with the
// given block-growth bounds and tight-spin count.
func New[T any](maxTaskPar, initialBlockSize, maxBlockSize, tightSpins int) *Bag[T] {
	if maxTaskPar < 1 {
		maxTaskPar = 1
	}
	segs := make([]*Segment[T], maxTaskPar)
	for i := range segs {
		segs[i] = NewSegment[T](initialBlockSize, maxBlockSize, tightSpins)
	}

	return &Bag[T]{segments: segs}
}

// NumSegments returns the number of per-thread segments in this Bag.
func (b *Bag[T]) NumSegments() int { return len(b.segments) }

// Size reports the total number of elements across all segments.
// Complexity: O(numSegments).
func (b *Bag[T]) Size() int {
	total := 0
	for _, s := range b.segments {
		total += s.Len()
	}

	return total
}

// nextEnqHint returns the next round-robin enqueue hint index.
func (b *Bag[T]) nextEnqHint() int {
	n := uint64(len(b.segments))
	idx := b.startIdxEnq.Add(1) - 1

	return int(idx % n)
}

// nextDeqHint returns the next round-robin dequeue hint index.
func (b *Bag[T]) nextDeqHint() int {
	n := uint64(len(b.segments))
	idx := b.startIdxDeq.Add(1) - 1

	return int(idx % n)
}

// AddBestCase implements the "best-case" enqueue: scan every segment
// once, try to CAS each to Add, and push into the first one that
// accepts. Falls back to AddAverageCase on the round-robin hint if every
// segment is momentarily contended.
func (b *Bag[T]) AddBestCase(x T) {
	n := len(b.segments)
	hint := b.nextEnqHint()
	for i := 0; i < n; i++ {
		seg := b.segments[(hint+i)%n]
		if seg.TryAcquire(Add) {
			seg.PushLocked(x)
			seg.Release()

			return
		}
	}
	// Every segment was contended on the single scan; pin to the hint
	// and spin-wait (average-case) rather than spinning the scan itself.
	b.AddAverageCase(x)
}

// AddAverageCase implements the "average-case" enqueue: pin to the
// round-robin hinted segment and spin-wait for it specifically.
func (b *Bag[T]) AddAverageCase(x T) {
	hint := b.nextEnqHint()
	seg := b.segments[hint]
	seg.AcquireBlocking(Add)
	seg.PushLocked(x)
	seg.Release()
}

// RemoveBestCase implements the "best-case" dequeue: scan segments
// starting at the hint, taking from the first one that is both
// non-empty and acquirable. Returns ok == false if every segment was
// empty or contended on this single scan (the caller may retry).
func (b *Bag[T]) RemoveBestCase() (x T, ok bool) {
	n := len(b.segments)
	hint := b.nextDeqHint()
	for i := 0; i < n; i++ {
		seg := b.segments[(hint+i)%n]
		if seg.IsEmpty() {
			continue
		}
		if seg.TryAcquire(Remove) {
			x, ok = seg.PopLocked()
			seg.Release()
			if ok {
				return x, true
			}
		}
	}

	return x, false
}

// RemoveAverageCase implements the "average-case" dequeue: scan segments
// starting at the hint, accepting an acquisition even if it required
// spin-waiting on a contended-but-nonempty segment. Returns ok == false
// only once every segment has been observed empty.
func (b *Bag[T]) RemoveAverageCase() (x T, ok bool) {
	n := len(b.segments)
	hint := b.nextDeqHint()
	for i := 0; i < n; i++ {
		seg := b.segments[(hint+i)%n]
		if seg.IsEmpty() {
			continue
		}
		seg.AcquireBlocking(Remove)
		x, ok = seg.PopLocked()
		seg.Release()
		if ok {
			return x, true
		}
	}

	return x, false
}

// BulkAdd pushes every element of xs into the Bag using the best-case
// enqueue strategy. Used by workqueue to deliver an aggregated batch to a
// remote locale's Bag in one call rather than one AddWork at a time.
func (b *Bag[T]) BulkAdd(xs []T) {
	for _, x := range xs {
		b.AddBestCase(x)
	}
}

// TakeElements bulk-dequeues up to n elements, scanning segments from the
// dequeue hint and draining whichever ones are non-empty until n elements
// are collected or every segment has been scanned once.
func (b *Bag[T]) TakeElements(n int) []T {
	out := make([]T, 0, n)
	segN := len(b.segments)
	hint := b.nextDeqHint()
	for i := 0; i < segN && len(out) < n; i++ {
		seg := b.segments[(hint+i)%segN]
		if seg.IsEmpty() {
			continue
		}
		seg.AcquireBlocking(Remove)
		taken := seg.TakeElementsLocked(n - len(out))
		seg.Release()
		out = append(out, taken...)
	}

	return out
}
