// Package workqueue implements WorkQueue: a distributed facade over one
// bag.Bag per locale, with optional aggregation of cross-locale enqueues
// and a TerminationDetector tracking in-flight asynchronous batch
// transports.
//
// addWork(w, locid) pushes locally when locid is the caller's own locale;
// otherwise it either performs a direct synchronous remote append, or
// batches into a per-destination aggregation buffer (bounded or dynamic)
// that is transported asynchronously once full. flushLocal/flush drain
// those buffers and block until delivery completes. doWorkLoop is the
// canonical multi-worker consumer loop.
package workqueue
