package hypergraph

import "github.com/mandysack/chgl/core"

// GetVertexNumButterflies counts the butterflies (4-cycles v-e1-u-e2-v)
// that include vertex v, using a distance-two multiplicity approach:
// every other vertex u reachable from v through some incident edge is
// tallied by how many distinct edges reach it, and each tally of k
// contributes C(k,2) butterflies (one per pair of edges shared with u).
//
// Complexity: O(d * avgEdgeDegree) where d is v's degree.
func (g *AdjListHyperGraph) GetVertexNumButterflies(v core.VertexID) int64 {
	mult := make(map[core.VertexID]int64)
	for _, e := range g.vertexData[v].SortedSnapshot() {
		for _, u := range g.edgeData[e].SortedSnapshot() {
			if u == v {
				continue
			}
			mult[u]++
		}
	}

	var total int64
	for _, k := range mult {
		total += k * (k - 1) / 2
	}

	return total
}

// GetEdgeButterflies counts the butterflies that include edge e, by the
// symmetric construction over e's incident vertices and the edges they
// reach.
//
// Complexity: O(d * avgVertexDegree) where d is e's degree.
func (g *AdjListHyperGraph) GetEdgeButterflies(e core.EdgeID) int64 {
	mult := make(map[core.EdgeID]int64)
	for _, v := range g.edgeData[e].SortedSnapshot() {
		for _, e2 := range g.vertexData[v].SortedSnapshot() {
			if e2 == e {
				continue
			}
			mult[e2]++
		}
	}

	var total int64
	for _, k := range mult {
		total += k * (k - 1) / 2
	}

	return total
}

// GetInclusionNumCaterpillars returns the number of caterpillars (wedges)
// centered on the inclusion (v,e): every pairing of some other edge
// incident to v with some other vertex incident to e, following the
// standard bipartite-motif formulation. This is the denominator of the
// metamorphosis coefficient.
//
// Complexity: O(1) given cached degrees.
func (g *AdjListHyperGraph) GetInclusionNumCaterpillars(v core.VertexID, e core.EdgeID) int64 {
	degV := int64(g.vertexData[v].NumNeighbors())
	degE := int64(g.edgeData[e].NumNeighbors())

	return (degV - 1) * (degE - 1)
}

// GetInclusionNumButterflies returns the number of butterflies through
// the specific inclusion (v,e): pairs (e', v') with e' incident to v
// (e' != e), v' incident to e (v' != v), where e' is also incident to v'.
//
// Complexity: O(deg(v) * deg(e)) worst case.
func (g *AdjListHyperGraph) GetInclusionNumButterflies(v core.VertexID, e core.EdgeID) int64 {
	otherVerticesOfE := make(map[core.VertexID]struct{})
	for _, u := range g.edgeData[e].SortedSnapshot() {
		if u != v {
			otherVerticesOfE[u] = struct{}{}
		}
	}

	var total int64
	for _, e2 := range g.vertexData[v].SortedSnapshot() {
		if e2 == e {
			continue
		}
		for _, u := range g.edgeData[e2].SortedSnapshot() {
			if _, ok := otherVerticesOfE[u]; ok {
				total++
			}
		}
	}

	return total
}

// GetInclusionMetamorphCoef returns the metamorphosis coefficient of
// inclusion (v,e): the fraction of caterpillars centered on (v,e) that
// close into butterflies. Returns 0 when there are no caterpillars
// (division-by-zero resolved as 0, not NaN or panic).
//
// Complexity: O(deg(v) * deg(e)).
func (g *AdjListHyperGraph) GetInclusionMetamorphCoef(v core.VertexID, e core.EdgeID) float64 {
	caterpillars := g.GetInclusionNumCaterpillars(v, e)
	if caterpillars <= 0 {
		return 0
	}

	return float64(g.GetInclusionNumButterflies(v, e)) / float64(caterpillars)
}

// VertexPerDegreeMetamorphosisCoefficients averages, per distinct vertex
// degree d, the metamorphosis coefficient over every inclusion incident
// to a degree-d vertex, then averages those per-vertex means across all
// vertices sharing degree d.
//
// Complexity: O(numVertices * avgDegree^2).
func (g *AdjListHyperGraph) VertexPerDegreeMetamorphosisCoefficients() map[int]float64 {
	sums := make(map[int]float64)
	counts := make(map[int]int)

	for i, nd := range g.vertexData {
		v := core.VertexID(i)
		deg := nd.NumNeighbors()
		if deg == 0 {
			continue
		}

		var sum float64
		var n int
		for _, e := range nd.SortedSnapshot() {
			sum += g.GetInclusionMetamorphCoef(v, e)
			n++
		}
		if n == 0 {
			continue
		}

		sums[deg] += sum / float64(n)
		counts[deg]++
	}

	out := make(map[int]float64, len(sums))
	for deg, total := range sums {
		out[deg] = total / float64(counts[deg])
	}

	return out
}

// EdgePerDegreeMetamorphosisCoefficients is the edge-side symmetric
// counterpart of VertexPerDegreeMetamorphosisCoefficients.
//
// Complexity: O(numEdges * avgDegree^2).
func (g *AdjListHyperGraph) EdgePerDegreeMetamorphosisCoefficients() map[int]float64 {
	sums := make(map[int]float64)
	counts := make(map[int]int)

	for i, nd := range g.edgeData {
		e := core.EdgeID(i)
		deg := nd.NumNeighbors()
		if deg == 0 {
			continue
		}

		var sum float64
		var n int
		for _, v := range nd.SortedSnapshot() {
			sum += g.GetInclusionMetamorphCoef(v, e)
			n++
		}
		if n == 0 {
			continue
		}

		sums[deg] += sum / float64(n)
		counts[deg]++
	}

	out := make(map[int]float64, len(sums))
	for deg, total := range sums {
		out[deg] = total / float64(counts[deg])
	}

	return out
}
