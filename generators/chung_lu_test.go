package generators_test

import (
	"testing"

	"github.com/mandysack/chgl/generators"
	"github.com/mandysack/chgl/hypergraph"
	"github.com/mandysack/chgl/locale"
	"github.com/stretchr/testify/require"
)

func TestChungLuProducesRequestedInclusionCount(t *testing.T) {
	reg, err := locale.NewRegistry(2, 2)
	require.NoError(t, err)
	g, err := hypergraph.NewGraph(10, 10, reg)
	require.NoError(t, err)

	dV := make([]float64, 10)
	dE := make([]float64, 10)
	for i := range dV {
		dV[i] = float64(i + 1)
		dE[i] = float64(i + 1)
	}

	require.NoError(t, generators.GenerateChungLu(g, reg, 2, dV, dE, 500, generators.WithBaseSeed(7)))

	total := 0
	for _, d := range g.GetVertexDegrees() {
		total += d
	}
	require.Equal(t, 500, total)
}

func TestChungLuZeroInclusionsIsNoop(t *testing.T) {
	reg, err := locale.NewRegistry(1, 1)
	require.NoError(t, err)
	g, err := hypergraph.NewGraph(4, 4, reg)
	require.NoError(t, err)

	dV := []float64{1, 1, 1, 1}
	dE := []float64{1, 1, 1, 1}

	require.NoError(t, generators.GenerateChungLu(g, reg, 1, dV, dE, 0))

	for _, d := range g.GetVertexDegrees() {
		require.Zero(t, d)
	}
}
