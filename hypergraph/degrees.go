package hypergraph

import "github.com/mandysack/chgl/core"

// GetVertexDegrees returns, for every vertex id in [0, NumVertices()), the
// number of edges currently incident to it.
//
// Complexity: O(numVertices).
func (g *AdjListHyperGraph) GetVertexDegrees() []int {
	degrees := make([]int, g.numVertices)
	for i, nd := range g.vertexData {
		degrees[i] = nd.NumNeighbors()
	}

	return degrees
}

// GetEdgeDegrees returns, for every edge id in [0, NumEdges()), the number
// of vertices currently incident to it.
//
// Complexity: O(numEdges).
func (g *AdjListHyperGraph) GetEdgeDegrees() []int {
	degrees := make([]int, g.numEdges)
	for i, nd := range g.edgeData {
		degrees[i] = nd.NumNeighbors()
	}

	return degrees
}

// ForEachVertexDegree invokes fn(vertexID, degree) for every vertex,
// skipping the intermediate slice allocation GetVertexDegrees pays.
//
// Complexity: O(numVertices).
func (g *AdjListHyperGraph) ForEachVertexDegree(fn func(v core.VertexID, degree int)) {
	for i, nd := range g.vertexData {
		fn(core.VertexID(i), nd.NumNeighbors())
	}
}

// ForEachEdgeDegree invokes fn(edgeID, degree) for every edge.
//
// Complexity: O(numEdges).
func (g *AdjListHyperGraph) ForEachEdgeDegree(fn func(e core.EdgeID, degree int)) {
	for i, nd := range g.edgeData {
		fn(core.EdgeID(i), nd.NumNeighbors())
	}
}

// GetVerticesWithDegreeValue returns every vertex whose current degree
// equals target, in ascending id order.
//
// Complexity: O(numVertices).
func (g *AdjListHyperGraph) GetVerticesWithDegreeValue(target int) []core.VertexID {
	var out []core.VertexID
	g.ForEachVertexDegree(func(v core.VertexID, degree int) {
		if degree == target {
			out = append(out, v)
		}
	})

	return out
}

// GetEdgesWithDegreeValue returns every edge whose current degree equals
// target, in ascending id order.
//
// Complexity: O(numEdges).
func (g *AdjListHyperGraph) GetEdgesWithDegreeValue(target int) []core.EdgeID {
	var out []core.EdgeID
	g.ForEachEdgeDegree(func(e core.EdgeID, degree int) {
		if degree == target {
			out = append(out, e)
		}
	})

	return out
}
