// Package termination implements TerminationDetector: a distributed pair
// of started/finished counters used to detect quiescence of dynamically
// generated work, such as the recursive task generation in s-walk and
// BFS.
//
// Callers must increment Started before enqueuing derived work and call
// Finished after their handler completes, so that the invariant
// pending_work <= started - finished holds at every observable moment.
// Misplacing either call breaks quiescence detection.
package termination
