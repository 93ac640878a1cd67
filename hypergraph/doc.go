// Package hypergraph implements AdjListHyperGraph: the adjacency-list
// hypergraph store.
//
// A hypergraph has two independent, dense integer id spaces — vertices
// and edges — each backed by an array of core.NodeData: the vertex array
// stores, per vertex, the list of incident EdgeIDs; the edge array
// stores, per edge, the list of incident VertexIDs. Both arrays are
// partitioned across a locale.Registry by contiguous id blocks, and each
// locale owns one destbuffer.Buffer used to batch incoming cross-locale
// inclusion writes (the buffered inclusion protocol).
//
// AddInclusion is the direct, unbuffered path: correct but pays full
// locking cost on every call. AddInclusionBuffered routes through the
// owning locale's DestinationBuffer and is the path generators use.
// FlushBuffers is the quiescence barrier that must run after a batch of
// buffered inserts before any reader can rely on seeing them.
package hypergraph
