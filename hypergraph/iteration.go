package hypergraph

import "github.com/mandysack/chgl/core"

// GetVertices returns every vertex id in [0, NumVertices()) in ascending order.
//
// Complexity: O(numVertices).
func (g *AdjListHyperGraph) GetVertices() []core.VertexID {
	out := make([]core.VertexID, g.numVertices)
	for i := range out {
		out[i] = core.VertexID(i)
	}

	return out
}

// GetEdges returns every edge id in [0, NumEdges()) in ascending order.
//
// Complexity: O(numEdges).
func (g *AdjListHyperGraph) GetEdges() []core.EdgeID {
	out := make([]core.EdgeID, g.numEdges)
	for i := range out {
		out[i] = core.EdgeID(i)
	}

	return out
}

// VertexNeighbors returns a snapshot of the edges currently incident to
// v, sorted (not deduplicated; see NodeData.RemoveDuplicates for
// post-generation cleanup when a generator may have produced repeated
// inclusions).
//
// Complexity: O(d log d) where d is v's degree, dominated by the lazy sort.
func (g *AdjListHyperGraph) VertexNeighbors(v core.VertexID) []core.EdgeID {
	return g.vertexData[v].SortedSnapshot()
}

// EdgeNeighbors returns a snapshot of the vertices currently incident to
// e, sorted (not deduplicated; see NodeData.RemoveDuplicates for
// post-generation cleanup when a generator may have produced repeated
// inclusions).
//
// Complexity: O(d log d) where d is e's degree.
func (g *AdjListHyperGraph) EdgeNeighbors(e core.EdgeID) []core.VertexID {
	return g.edgeData[e].SortedSnapshot()
}
