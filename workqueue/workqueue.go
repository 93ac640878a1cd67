package workqueue

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mandysack/chgl/bag"
	"github.com/mandysack/chgl/locale"
	"github.com/mandysack/chgl/termination"
)

// ErrShutdown is returned by AddWork once Shutdown has been called for
// the calling locale.
var ErrShutdown = errors.New("workqueue: locale is shut down")

// Option configures a WorkQueue at construction.
type Option[T any] func(*WorkQueue[T])

// WithAggregation selects the cross-locale batching strategy.
func WithAggregation[T any](kind Aggregation) Option[T] {
	return func(w *WorkQueue[T]) { w.aggKind = kind }
}

// WithBoundedCapacity overrides DefaultBoundedAggCapacity.
func WithBoundedCapacity[T any](capacity int) Option[T] {
	return func(w *WorkQueue[T]) {
		if capacity > 0 {
			w.boundedCap = capacity
		}
	}
}

// WithMinFlushVelocity overrides DefaultMinFlushVelocity (items/ms) used
// by the pacing watcher to decide when the local Bag is starving.
func WithMinFlushVelocity[T any](v float64) Option[T] {
	return func(w *WorkQueue[T]) {
		if v > 0 {
			w.minVelocity = v
		}
	}
}

// destBuf is the per-(source,destination) aggregation buffer.
type destBuf[T any] struct {
	mu       sync.Mutex
	pending  []T
	capacity int // current effective capacity (static for bounded, adaptive for dynamic)
}

// WorkQueue is the distributed facade over one bag.Bag per locale.
type WorkQueue[T any] struct {
	reg  *locale.Registry
	bags []*bag.Bag[T]

	aggKind     Aggregation
	boundedCap  int
	minVelocity float64

	// aggBufs[from][to] is the pending batch of items queued on locale
	// `from` destined for locale `to`. Only used when aggKind != NoAggregation.
	aggBufs [][]*destBuf[T]

	// asyncDetector tracks in-flight asynchronous batch-transport tasks
	// spawned when an aggregation buffer fills.
	asyncDetector *termination.Detector

	shutdownFlags []atomic.Bool
}

// New constructs a WorkQueue with one Bag per locale in reg, each sized
// maxTaskPar segments with the given block-growth/spin bounds.
func New[T any](reg *locale.Registry, maxTaskPar, initialBlockSize, maxBlockSize, tightSpins int, opts ...Option[T]) *WorkQueue[T] {
	n := reg.NumLocales()
	bags := make([]*bag.Bag[T], n)
	for i := range bags {
		bags[i] = bag.New[T](maxTaskPar, initialBlockSize, maxBlockSize, tightSpins)
	}

	w := &WorkQueue[T]{
		reg:           reg,
		bags:          bags,
		aggKind:       NoAggregation,
		boundedCap:    DefaultBoundedAggCapacity,
		minVelocity:   DefaultMinFlushVelocity,
		asyncDetector: termination.New(),
		shutdownFlags: make([]atomic.Bool, n),
	}
	for _, opt := range opts {
		opt(w)
	}

	if w.aggKind != NoAggregation {
		w.aggBufs = make([][]*destBuf[T], n)
		for i := range w.aggBufs {
			w.aggBufs[i] = make([]*destBuf[T], n)
			for j := range w.aggBufs[i] {
				cap := w.boundedCap
				if w.aggKind == DynamicAggregation {
					cap = DefaultDynamicAggMinCap
				}
				w.aggBufs[i][j] = &destBuf[T]{capacity: cap}
			}
		}
	}

	return w
}

// NumLocales returns the number of locales this WorkQueue spans.
func (w *WorkQueue[T]) NumLocales() int { return len(w.bags) }

// AsyncDetector exposes the internal TerminationDetector tracking
// in-flight asynchronous batch transports.
func (w *WorkQueue[T]) AsyncDetector() *termination.Detector { return w.asyncDetector }

// AddWork enqueues w destined for locid, called from the perspective of
// locale `from`. If locid == from, it pushes directly into the local
// Bag. Otherwise it routes through the configured aggregation strategy,
// or performs a direct synchronous remote append if none is configured.
// Returns ErrShutdown if Shutdown(from) was previously called.
func (w *WorkQueue[T]) AddWork(from, locid locale.ID, item T) error {
	if w.shutdownFlags[from].Load() {
		return ErrShutdown
	}
	if locid == from {
		w.bags[locid].AddBestCase(item)

		return nil
	}

	switch w.aggKind {
	case NoAggregation:
		// Direct remote append: synchronous, no TD bookkeeping needed.
		w.bags[locid].AddAverageCase(item)

		return nil
	default:
		w.bufferForTransport(from, locid, item)

		return nil
	}
}

// bufferForTransport appends item to the (from,locid) aggregation buffer
// and, once it reaches capacity, spawns an asynchronous transport task
// that bulk-delivers the batch to locid's Bag.
func (w *WorkQueue[T]) bufferForTransport(from, locid locale.ID, item T) {
	buf := w.aggBufs[from][locid]
	buf.mu.Lock()
	buf.pending = append(buf.pending, item)
	full := len(buf.pending) >= buf.capacity
	var batch []T
	if full {
		batch = buf.pending
		buf.pending = nil
		if w.aggKind == DynamicAggregation && buf.capacity < DefaultDynamicAggMaxCap {
			buf.capacity *= 2
			if buf.capacity > DefaultDynamicAggMaxCap {
				buf.capacity = DefaultDynamicAggMaxCap
			}
		}
	}
	buf.mu.Unlock()

	if len(batch) == 0 {
		return
	}
	w.asyncDetector.Started(1)
	go func(dest locale.ID, batch []T) {
		defer w.asyncDetector.Finished(1)
		w.bags[dest].BulkAdd(batch)
	}(locid, batch)
}

// GetWork performs a non-blocking local dequeue from the caller's own
// locale's Bag. Returns ok == false when the local Bag is empty.
func (w *WorkQueue[T]) GetWork(here locale.ID) (item T, ok bool) {
	return w.bags[here].RemoveAverageCase()
}

// FlushLocal drains every pending aggregation buffer whose source is
// `from`, synchronously delivering each batch before returning, then
// waits for any previously spawned asynchronous transports to complete.
// Blocks until every item batched from `from` has reached its
// destination Bag.
func (w *WorkQueue[T]) FlushLocal(from locale.ID) {
	if w.aggKind != NoAggregation {
		for to := 0; to < len(w.bags); to++ {
			if locale.ID(to) == from {
				continue
			}
			buf := w.aggBufs[from][to]
			buf.mu.Lock()
			batch := buf.pending
			buf.pending = nil
			buf.mu.Unlock()
			if len(batch) > 0 {
				w.bags[to].BulkAdd(batch)
			}
		}
	}
	w.asyncDetector.Wait(0, 0)
}

// Flush drains every locale's aggregation buffers in parallel, then
// waits for all asynchronous transports to complete — the quiescence
// barrier used after a generator finishes populating the queue.
func (w *WorkQueue[T]) Flush() {
	var wg sync.WaitGroup
	for loc := 0; loc < len(w.bags); loc++ {
		wg.Add(1)
		go func(loc locale.ID) {
			defer wg.Done()
			w.FlushLocal(loc)
		}(locale.ID(loc))
	}
	wg.Wait()
}

// Shutdown sets locale `loc`'s shutdown flag; future AddWork calls from
// that locale return ErrShutdown.
func (w *WorkQueue[T]) Shutdown(loc locale.ID) {
	w.shutdownFlags[loc].Store(true)
}

// IsShutdown reports whether Shutdown(loc) has been called.
func (w *WorkQueue[T]) IsShutdown(loc locale.ID) bool {
	return w.shutdownFlags[loc].Load()
}

// StartPacingWatcher launches the background velocity watcher for locale
// loc: it samples the local Bag's size once per DefaultWatcherInterval,
// and whenever the observed drain velocity (items/ms leaving the Bag)
// drops below minVelocity it triggers FlushLocal, whether or not any
// aggregation buffer holds items, to avoid work starving behind a
// not-yet-full aggregation buffer. Returns a stop function.
func (w *WorkQueue[T]) StartPacingWatcher(loc locale.ID) (stop func()) {
	stopCh := make(chan struct{})
	go func() {
		ticker := time.NewTicker(DefaultWatcherInterval)
		defer ticker.Stop()
		lastSize := w.bags[loc].Size()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				size := w.bags[loc].Size()
				delta := lastSize - size // items drained this interval
				lastSize = size
				velocity := float64(delta) / (float64(DefaultWatcherInterval) / float64(time.Millisecond))
				if velocity < w.minVelocity {
					w.FlushLocal(loc)
				}
			}
		}
	}()

	return func() { close(stopCh) }
}

// DoWorkLoop is the canonical consumer loop: per locale, it spawns
// maxTaskPar worker goroutines plus one pacing
// watcher; each worker repeatedly calls GetWork, invoking handler on
// success and yielding cooperatively when empty, until Shutdown(loc) is
// observed or both the WorkQueue's async detector and the caller-supplied
// td have terminated.
func (w *WorkQueue[T]) DoWorkLoop(loc locale.ID, maxTaskPar int, td *termination.Detector, handler func(item T)) {
	stopWatcher := w.StartPacingWatcher(loc)
	defer stopWatcher()

	var wg sync.WaitGroup
	wg.Add(maxTaskPar)
	for i := 0; i < maxTaskPar; i++ {
		go func() {
			defer wg.Done()
			for {
				if w.IsShutdown(loc) {
					return
				}
				item, ok := w.GetWork(loc)
				if !ok {
					if w.AsyncDetector().HasTerminated() && td.HasTerminated() {
						return
					}
					time.Sleep(time.Millisecond)
					continue
				}
				handler(item)
			}
		}()
	}
	wg.Wait()
}
