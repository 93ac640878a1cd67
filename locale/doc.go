// Package locale models the distributed-runtime concept of a "Locale": a
// compute node with its own memory, identified by an integer ID, plus a
// privatization registry that lets every locale hold a local replica of a
// logically shared object.
//
// Go has no built-in distributed-locale runtime, so this package realizes
// "privatization" (interface abstraction over per-locale local-read
// operations) with plain goroutines: every process owns the full set of
// Locales, each Locale runs its own worker pool, and "run this closure on
// locale L" is just a function call routed to the owning Locale's data —
// the same per-object locks used throughout core/bag/destbuffer are what
// make that call concurrency-safe, not any network boundary.
package locale
