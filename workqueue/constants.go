package workqueue

import "time"

// Default aggregation capacities and the pacing watcher's tick interval.
const (
	DefaultBoundedAggCapacity = 4096
	DefaultDynamicAggMinCap   = 64
	DefaultDynamicAggMaxCap   = 4096

	// DefaultMinFlushVelocity is the minimum acceptable items/ms flowing
	// out of a local Bag before the pacing watcher forces a flush.
	DefaultMinFlushVelocity = 0.1

	DefaultWatcherInterval = 1 * time.Millisecond
)

// Aggregation selects how addWork batches cross-locale enqueues.
type Aggregation int

const (
	// NoAggregation performs a direct, synchronous remote append per call.
	NoAggregation Aggregation = iota
	// BoundedAggregation batches into a fixed-capacity per-destination buffer.
	BoundedAggregation
	// DynamicAggregation batches into a buffer whose capacity grows with
	// observed throughput, up to DefaultDynamicAggMaxCap.
	DynamicAggregation
)
