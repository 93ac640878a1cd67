package hypergraph

import (
	"fmt"
	"sync"

	"github.com/mandysack/chgl/core"
	"github.com/mandysack/chgl/destbuffer"
)

// AddInclusion adds the inclusion (v,e) directly: it acquires the v-side
// and e-side NodeData locks (via core.NodeData's own SpinLock) and
// appends immediately. Correct but pays full cross-locale latency on
// every call, unlike AddInclusionBuffered.
//
// Complexity: O(1) amortized.
func (g *AdjListHyperGraph) AddInclusion(v core.VertexID, e core.EdgeID) error {
	if int64(v) < 0 || int64(v) >= int64(g.numVertices) {
		return fmt.Errorf("%w: %v", ErrOutOfVertices, v)
	}
	if int64(e) < 0 || int64(e) >= int64(g.numEdges) {
		return fmt.Errorf("%w: %v", ErrOutOfEdges, e)
	}

	g.vertexData[v].AddNeighbors(e)
	g.edgeData[e].AddNeighbors(v)

	return nil
}

// AddInclusionBuffered implements the buffered insert routing: (v, e,
// Vertex) is appended to owner(v)'s DestinationBuffer and
// (e, v, Edge) to owner(e)'s. If either Append reports the buffer became
// full, that buffer is immediately drained and cleared on its owning
// locale (a synchronous function call in this in-process model).
//
// Complexity: O(1) amortized; O(bufferCapacity) on the call that fills a buffer.
func (g *AdjListHyperGraph) AddInclusionBuffered(v core.VertexID, e core.EdgeID) error {
	if int64(v) < 0 || int64(v) >= int64(g.numVertices) {
		return fmt.Errorf("%w: %v", ErrOutOfVertices, v)
	}
	if int64(e) < 0 || int64(e) >= int64(g.numEdges) {
		return fmt.Errorf("%w: %v", ErrOutOfEdges, e)
	}

	ownerV := g.ownerOfVertex(v)
	bufV := g.destBufs[ownerV]
	if bufV.Append(int64(v), int64(e), destbuffer.Vertex) {
		g.drainAndClear(bufV)
	}

	ownerE := g.ownerOfEdge(e)
	bufE := g.destBufs[ownerE]
	if bufE.Append(int64(e), int64(v), destbuffer.Edge) {
		g.drainAndClear(bufE)
	}

	return nil
}

// drainAndClear drains buf into this graph's NodeData arrays, then clears it.
func (g *AdjListHyperGraph) drainAndClear(buf *destbuffer.Buffer) {
	buf.DrainAndClear(
		func(srcID, destID int64) { // Vertex kind: append destID (edge) to vertex srcID
			g.vertexData[srcID].AddNeighbors(core.EdgeID(destID))
		},
		func(srcID, destID int64) { // Edge kind: append destID (vertex) to edge srcID
			g.edgeData[srcID].AddNeighbors(core.VertexID(destID))
		},
	)
}

// FlushBuffers is the quiescence barrier after a generator finishes: on
// every locale in parallel, drain then clear its DestinationBuffer.
// Must be called before any reader relies on seeing previously-buffered
// inclusions.
//
// Complexity: O(numLocales * bufferCapacity).
func (g *AdjListHyperGraph) FlushBuffers() {
	var wg sync.WaitGroup
	wg.Add(len(g.destBufs))
	for _, buf := range g.destBufs {
		go func(buf *destbuffer.Buffer) {
			defer wg.Done()
			g.drainAndClear(buf)
		}(buf)
	}
	wg.Wait()
}
