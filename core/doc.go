// Package core defines the hypergraph's descriptor types (VertexID,
// EdgeID), the per-node incidence list (NodeData), and the
// test-and-test-and-set SpinLock that protects it.
//
// NodeData is the leaf-most, highest-contention type in the engine: every
// inclusion insert touches exactly two NodeData instances (one vertex-side,
// one edge-side), so its lock scope is deliberately as small as possible —
// one NodeData's SpinLock protects that NodeData only, never the graph.
//
// Concurrency model:
//   - addNeighbors acquires the SpinLock, appends, marks isSorted=false,
//     bumps the atomic size counter, releases. Safe with concurrent writers
//     on the SAME NodeData; never safe with a concurrent reader of the
//     same NodeData (callers must not read mid-append).
//   - numNeighbors is a lock-free atomic load.
//   - hasNeighbor sorts lazily under the lock, then binary-searches.
//
// Descriptor conversions (ToVertexID/ToEdgeID) never fail: out-of-range
// bounds checking is a hypergraph-domain concern and lives in
// hypergraph.ToVertex/ToEdge, which panic on a bad id (a precondition
// violation treated as a fatal assertion).
package core
