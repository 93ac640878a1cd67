package termination

import (
	"sync/atomic"
	"time"
)

// Default backoff bounds for Wait.
const (
	DefaultMinBackoff = 1 * time.Millisecond
	DefaultMaxBackoff = 64 * time.Millisecond
)

// Detector is TerminationDetector: two globally visible counters, started
// and finished. A consistent read of started == finished means the work
// this Detector tracks has quiesced.
//
// In the real distributed runtime these counters are per-locale and
// summed; here the whole process shares one Detector instance (the
// locale.Registry model treats cross-locale calls as in-process function
// calls, so a single pair of atomics already gives a globally consistent
// view).
type Detector struct {
	started  atomic.Int64
	finished atomic.Int64

	minBackoff time.Duration
	maxBackoff time.Duration
}

// Option configures a Detector's Wait backoff bounds.
type Option func(*Detector)

// WithBackoff overrides the default [min,max] backoff bounds used by Wait.
func WithBackoff(min, max time.Duration) Option {
	return func(d *Detector) {
		if min > 0 {
			d.minBackoff = min
		}
		if max >= min {
			d.maxBackoff = max
		}
	}
}

// New constructs a Detector with both counters at zero.
func New(opts ...Option) *Detector {
	d := &Detector{minBackoff: DefaultMinBackoff, maxBackoff: DefaultMaxBackoff}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Started atomically increments the started counter by n. Callers must
// invoke this BEFORE enqueuing the n units of derived work it accounts
// for.
func (d *Detector) Started(n int64) {
	d.started.Add(n)
}

// Finished atomically increments the finished counter by n. Callers must
// invoke this AFTER their handler for the n units of work completes.
func (d *Detector) Finished(n int64) {
	d.finished.Add(n)
}

// StartedCount returns the current started counter value.
func (d *Detector) StartedCount() int64 { return d.started.Load() }

// FinishedCount returns the current finished counter value.
func (d *Detector) FinishedCount() int64 { return d.finished.Load() }

// HasTerminated reports whether a consistent read observed
// started == finished. Reading finished before started (rather than the
// other way around) biases any race toward under- rather than
// over-reporting termination: if new work starts between the two reads,
// started will have grown and the equality will correctly fail.
//
// Complexity: O(1).
func (d *Detector) HasTerminated() bool {
	finished := d.finished.Load()
	started := d.started.Load()

	return started == finished
}

// Wait polls HasTerminated with exponential backoff between minBackoff
// and maxBackoff (falling back to the Detector's configured bounds when
// either argument is <= 0), returning once quiescence is observed. It has
// no timeout or cancellation: it blocks until HasTerminated reports true.
func (d *Detector) Wait(minBackoff, maxBackoff time.Duration) {
	if minBackoff <= 0 {
		minBackoff = d.minBackoff
	}
	if maxBackoff <= 0 || maxBackoff < minBackoff {
		maxBackoff = d.maxBackoff
	}

	backoff := minBackoff
	for !d.HasTerminated() {
		time.Sleep(backoff)
		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}
}
