// Package bag implements the concurrent work-stealing "bag": an unrolled
// linked list of geometrically-growing blocks (BagSegmentBlock), owned one
// per worker thread (BagSegment), collected per locale into a Bag.
//
// Each BagSegment is guarded by a status word, not a general mutex: the
// word records which single operation (ADD, REMOVE, LOOKUP) currently
// owns the segment, via compare-and-swap from UNLOCKED. Producers and
// consumers pick a segment using a round-robin hint, then race to acquire
// it; losing that race means trying another segment (best-case) or
// spin-waiting on the hinted one (average-case).
package bag
