// Package chgl is a distributed-style, parallel hypergraph engine.
//
// 🚀 What is chgl?
//
//	A concurrency-first library that builds, mutates, and analyzes
//	bipartite vertex/edge incidence structures (hypergraphs) across
//	simulated compute partitions ("locales"), with:
//
//	  • A locked, lazily-sorted adjacency store (core, hypergraph)
//	  • A work-stealing bag and distributed work queue (bag, workqueue)
//	  • Termination detection for dynamically generated work (termination)
//	  • Random hypergraph generators: Erdős–Rényi, Chung–Lu, BTER (generators)
//	  • s-walk / BFS analytic traversal built on the above (traverse)
//
// ✨ Design goals
//
//   - Minimum communication overhead — cross-partition writes are batched
//     through DestinationBuffer rather than sent one at a time.
//   - Per-object locking — every NodeData and every BagSegment guards only
//     itself; there is no global graph lock on the hot path.
//   - Pure Go — no cgo; the only external dependency is stretchr/testify,
//     used in tests.
//
// Under the hood, everything is organized under subpackages:
//
//	locale/      — partition registry modeling "Locale" and privatization
//	core/        — Vertex/Edge descriptors, NodeData, SpinLock
//	destbuffer/  — DestinationBuffer and the buffered-inclusion protocol
//	bag/         — BagSegmentBlock / BagSegment / Bag work store
//	workqueue/   — multi-locale WorkQueue facade over Bag
//	termination/ — TerminationDetector (started/finished quiescence)
//	hypergraph/  — AdjListHyperGraph: construction, inclusion, analytics
//	generators/  — generateErdosRenyi / generateChungLu / generateBTER
//	traverse/    — s-walk and BFS over the hypergraph
//	util/        — sorted-array intersection helpers
//
//	go get github.com/mandysack/chgl
package chgl
