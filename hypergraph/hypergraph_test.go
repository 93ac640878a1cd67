package hypergraph_test

import (
	"testing"

	"github.com/mandysack/chgl/core"
	"github.com/mandysack/chgl/hypergraph"
	"github.com/mandysack/chgl/locale"
	"github.com/stretchr/testify/require"
)

func newReg(t *testing.T, n int) *locale.Registry {
	t.Helper()
	reg, err := locale.NewRegistry(n, 2)
	require.NoError(t, err)

	return reg
}

func TestNewGraphRejectsNilRegistry(t *testing.T) {
	_, err := hypergraph.NewGraph(4, 4, nil)
	require.ErrorIs(t, err, hypergraph.ErrNilRegistry)
}

func TestNewGraphStartsEmpty(t *testing.T) {
	reg := newReg(t, 1)
	g, err := hypergraph.NewGraph(4, 3, reg)
	require.NoError(t, err)
	require.Equal(t, 4, g.NumVertices())
	require.Equal(t, 3, g.NumEdges())

	for _, d := range g.GetVertexDegrees() {
		require.Zero(t, d)
	}
	for _, d := range g.GetEdgeDegrees() {
		require.Zero(t, d)
	}
}

// TestTinyErdosRenyiScenario builds a small fixed hypergraph directly
// (standing in for a tiny ER draw) and checks degree/neighbor queries
// agree with the inclusions added.
func TestTinyErdosRenyiScenario(t *testing.T) {
	reg := newReg(t, 1)
	g, err := hypergraph.NewGraph(3, 2, reg)
	require.NoError(t, err)

	require.NoError(t, g.AddInclusion(0, 0))
	require.NoError(t, g.AddInclusion(1, 0))
	require.NoError(t, g.AddInclusion(1, 1))
	require.NoError(t, g.AddInclusion(2, 1))

	require.Equal(t, []int{1, 2, 1}, g.GetVertexDegrees())
	require.Equal(t, []int{2, 2}, g.GetEdgeDegrees())

	require.Equal(t, []core.EdgeID{0, 1}, g.VertexNeighbors(1))
	require.Equal(t, []core.VertexID{0, 1}, g.EdgeNeighbors(0))
}

func TestAddInclusionOutOfRange(t *testing.T) {
	reg := newReg(t, 1)
	g, err := hypergraph.NewGraph(2, 2, reg)
	require.NoError(t, err)

	require.ErrorIs(t, g.AddInclusion(5, 0), hypergraph.ErrOutOfVertices)
	require.ErrorIs(t, g.AddInclusion(0, 5), hypergraph.ErrOutOfEdges)
}

// TestK23Butterflies reproduces the complete-bipartite-like K_{2,3}
// scenario: 2 vertices, 3 edges, each edge incident to both vertices.
// Each vertex should have C(3,2)=3 butterflies with the other.
func TestK23Butterflies(t *testing.T) {
	reg := newReg(t, 1)
	g, err := hypergraph.NewGraph(2, 3, reg)
	require.NoError(t, err)

	for e := core.EdgeID(0); e < 3; e++ {
		require.NoError(t, g.AddInclusion(0, e))
		require.NoError(t, g.AddInclusion(1, e))
	}

	require.Equal(t, int64(3), g.GetVertexNumButterflies(0))
	require.Equal(t, int64(3), g.GetVertexNumButterflies(1))

	for e := core.EdgeID(0); e < 3; e++ {
		require.Equal(t, int64(2), g.GetEdgeButterflies(e))
	}
}

func TestInclusionCaterpillarsAndMetamorphCoef(t *testing.T) {
	reg := newReg(t, 1)
	g, err := hypergraph.NewGraph(2, 3, reg)
	require.NoError(t, err)

	for e := core.EdgeID(0); e < 3; e++ {
		require.NoError(t, g.AddInclusion(0, e))
		require.NoError(t, g.AddInclusion(1, e))
	}

	// vertex 0 has degree 3, edge 0 has degree 2: caterpillars = 2*1 = 2.
	require.Equal(t, int64(2), g.GetInclusionNumCaterpillars(0, 0))
	require.Equal(t, int64(2), g.GetInclusionNumButterflies(0, 0))
	require.InDelta(t, 1.0, g.GetInclusionMetamorphCoef(0, 0), 1e-9)
}

func TestMetamorphCoefZeroCaterpillarsIsZeroNotNaN(t *testing.T) {
	reg := newReg(t, 1)
	g, err := hypergraph.NewGraph(2, 1, reg)
	require.NoError(t, err)
	require.NoError(t, g.AddInclusion(0, 0))

	require.Zero(t, g.GetInclusionNumCaterpillars(0, 0))
	require.Zero(t, g.GetInclusionMetamorphCoef(0, 0))
}

func TestPerDegreeMetamorphosisCoefficients(t *testing.T) {
	reg := newReg(t, 1)
	g, err := hypergraph.NewGraph(2, 3, reg)
	require.NoError(t, err)

	for e := core.EdgeID(0); e < 3; e++ {
		require.NoError(t, g.AddInclusion(0, e))
		require.NoError(t, g.AddInclusion(1, e))
	}

	vertexCoefs := g.VertexPerDegreeMetamorphosisCoefficients()
	require.Contains(t, vertexCoefs, 3)
	require.InDelta(t, 1.0, vertexCoefs[3], 1e-9)

	edgeCoefs := g.EdgePerDegreeMetamorphosisCoefficients()
	require.Contains(t, edgeCoefs, 2)
	require.InDelta(t, 1.0, edgeCoefs[2], 1e-9)
}

// TestBufferedVsDirectEquivalence checks the round-trip property: adding
// the same set of inclusions via the direct path and via the buffered
// path (followed by FlushBuffers) produces identical degree sequences
// and neighbor sets.
func TestBufferedVsDirectEquivalence(t *testing.T) {
	reg := newReg(t, 2)

	direct, err := hypergraph.NewGraph(6, 4, reg)
	require.NoError(t, err)
	buffered, err := hypergraph.NewGraph(6, 4, reg, hypergraph.WithBufferCapacity(4))
	require.NoError(t, err)

	pairs := []struct {
		v core.VertexID
		e core.EdgeID
	}{
		{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}, {5, 2}, {0, 3}, {5, 3}, {2, 0}, {3, 2},
	}

	for _, p := range pairs {
		require.NoError(t, direct.AddInclusion(p.v, p.e))
		require.NoError(t, buffered.AddInclusionBuffered(p.v, p.e))
	}
	buffered.FlushBuffers()

	require.Equal(t, direct.GetVertexDegrees(), buffered.GetVertexDegrees())
	require.Equal(t, direct.GetEdgeDegrees(), buffered.GetEdgeDegrees())

	for v := core.VertexID(0); v < 6; v++ {
		require.Equal(t, direct.VertexNeighbors(v), buffered.VertexNeighbors(v))
	}
	for e := core.EdgeID(0); e < 4; e++ {
		require.Equal(t, direct.EdgeNeighbors(e), buffered.EdgeNeighbors(e))
	}
}

func TestGetVerticesAndEdgesWithDegreeValue(t *testing.T) {
	reg := newReg(t, 1)
	g, err := hypergraph.NewGraph(3, 2, reg)
	require.NoError(t, err)

	require.NoError(t, g.AddInclusion(0, 0))
	require.NoError(t, g.AddInclusion(1, 0))
	require.NoError(t, g.AddInclusion(1, 1))
	require.NoError(t, g.AddInclusion(2, 1))

	require.Equal(t, []core.VertexID{0, 2}, g.GetVerticesWithDegreeValue(1))
	require.Equal(t, []core.VertexID{1}, g.GetVerticesWithDegreeValue(2))
	require.Equal(t, []core.EdgeID{0, 1}, g.GetEdgesWithDegreeValue(2))
}

func TestToVertexAndToEdgeConversions(t *testing.T) {
	reg := newReg(t, 1)
	g, err := hypergraph.NewGraph(4, 4, reg)
	require.NoError(t, err)

	require.Equal(t, core.VertexID(2), hypergraph.ToVertex(g, 2))
	require.Equal(t, core.EdgeID(3), hypergraph.ToEdge(g, int32(3)))

	require.Panics(t, func() { hypergraph.ToVertex(g, 99) })
	require.Panics(t, func() { hypergraph.ToEdge(g, -1) })
}
