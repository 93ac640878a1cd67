package core

import (
	"sort"
	"sync/atomic"
)

// NodeData is the incidence list for a single vertex or edge.
// NeighborDescT is the descriptor type stored: for a vertex-side
// NodeData this is EdgeID, for an edge-side NodeData this is VertexID.
//
// Invariants:
//   - While lock is held, no reader may observe the neighbors slice.
//   - isSorted is false after any append, until HasNeighbor,
//     SortedSnapshot or RemoveDuplicates re-sorts it.
//   - size equals the logical length of neighbors even when a reader
//     skips the lock (numNeighbors is lock-free).
type NodeData[NeighborDescT Integral] struct {
	lock      SpinLock
	neighbors []NeighborDescT
	isSorted  bool
	size      atomic.Int64
}

// NewNodeData returns an empty, ready-to-use NodeData.
// Complexity: O(1).
func NewNodeData[T Integral]() *NodeData[T] {
	return &NodeData[T]{}
}

// AddNeighbors appends ns to the neighbor list under the spinlock,
// amortized-constant per element via Go's slice growth, and marks the
// list unsorted. Parallel-safe with other writers of the same NodeData;
// NOT safe with a concurrent reader.
//
// Complexity: O(len(ns)) amortized.
func (n *NodeData[T]) AddNeighbors(ns ...T) {
	if len(ns) == 0 {
		return
	}
	n.lock.Lock()
	n.neighbors = append(n.neighbors, ns...)
	n.isSorted = false
	n.size.Add(int64(len(ns)))
	n.lock.Unlock()
}

// HasNeighbor reports whether n is present in the neighbor list, sorting
// the backing slice lazily if it is not already sorted, then binary
// searching. Acquires the spinlock for the duration of the call.
//
// Complexity: O(d log d) on the first call after a write (sort), O(log d)
// thereafter, where d is the degree.
func (n *NodeData[T]) HasNeighbor(needle T) bool {
	n.lock.Lock()
	defer n.lock.Unlock()

	if !n.isSorted {
		sort.Slice(n.neighbors, func(i, j int) bool { return n.neighbors[i] < n.neighbors[j] })
		n.isSorted = true
	}
	idx := sort.Search(len(n.neighbors), func(i int) bool { return n.neighbors[i] >= needle })

	return idx < len(n.neighbors) && n.neighbors[idx] == needle
}

// NumNeighbors returns the current degree: a lock-free read of the
// atomic size counter, decoupled from the append critical section so
// degree queries never contend with writers.
//
// Complexity: O(1).
func (n *NodeData[T]) NumNeighbors() int {
	return int(n.size.Load())
}

// Iterate returns the underlying neighbor slice directly, without
// acquiring the lock or copying. The caller is responsible for ensuring
// no concurrent AddNeighbors call is in flight on this NodeData while the
// returned slice is read.
//
// Complexity: O(1).
func (n *NodeData[T]) Iterate() []T {
	return n.neighbors
}

// Sorted reports whether the backing slice is currently known-sorted.
// Exposed mainly for tests; not part of the append/query hot path.
// Complexity: O(1).
func (n *NodeData[T]) Sorted() bool {
	n.lock.Lock()
	defer n.lock.Unlock()

	return n.isSorted
}

// SortedSnapshot forces a sort (if needed) and returns a defensive copy
// of the neighbor list, safe to retain and read without further locking.
// Used by analytics (degree listings, butterfly counts) that need a
// stable, ordered view. Unlike Iterate, this is safe even with concurrent
// appends in flight, since it copies under the lock.
//
// Complexity: O(d log d) amortized, O(d) space.
func (n *NodeData[T]) SortedSnapshot() []T {
	n.lock.Lock()
	defer n.lock.Unlock()

	if !n.isSorted {
		sort.Slice(n.neighbors, func(i, j int) bool { return n.neighbors[i] < n.neighbors[j] })
		n.isSorted = true
	}
	out := make([]T, len(n.neighbors))
	copy(out, n.neighbors)

	return out
}

// RemoveDuplicates sorts (if needed) and collapses adjacent duplicate
// entries in place, returning the number of duplicates removed. Useful
// after generator passes (e.g. Chung-Lu) that can double-sample the
// same inclusion.
//
// Complexity: O(d log d).
func (n *NodeData[T]) RemoveDuplicates() int {
	n.lock.Lock()
	defer n.lock.Unlock()

	if !n.isSorted {
		sort.Slice(n.neighbors, func(i, j int) bool { return n.neighbors[i] < n.neighbors[j] })
		n.isSorted = true
	}
	if len(n.neighbors) == 0 {
		return 0
	}

	write := 1
	for read := 1; read < len(n.neighbors); read++ {
		if n.neighbors[read] != n.neighbors[write-1] {
			n.neighbors[write] = n.neighbors[read]
			write++
		}
	}
	removed := len(n.neighbors) - write
	n.neighbors = n.neighbors[:write]
	n.size.Store(int64(write))

	return removed
}
