// Package generators implements three random hypergraph generators:
// Erdős–Rényi (a fixed number of uniformly drawn inclusions, with an
// optional coupon-collector probability correction), Chung–Lu
// (degree-sequence-driven prefix-sum sampling), and BTER (degree-class
// affinity blocks generated by repeated Erdős–Rényi sub-draws, topped up
// by a residual Chung–Lu pass). All three write through
// hypergraph.AddInclusionBuffered and call FlushBuffers when done.
//
// RNG streams are per-task: every goroutine doing sampling work owns a
// *rand.Rand seeded from (baseOffset, locale id, task id) so that no two
// concurrent samplers share mutable RNG state.
package generators
