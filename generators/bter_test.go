package generators_test

import (
	"testing"

	"github.com/mandysack/chgl/generators"
	"github.com/mandysack/chgl/hypergraph"
	"github.com/mandysack/chgl/locale"
	"github.com/stretchr/testify/require"
)

func TestBTERProducesNonTrivialDegrees(t *testing.T) {
	reg, err := locale.NewRegistry(1, 2)
	require.NoError(t, err)
	g, err := hypergraph.NewGraph(20, 20, reg)
	require.NoError(t, err)

	dV := make([]float64, 20)
	dE := make([]float64, 20)
	mV := make([]float64, 20)
	mE := make([]float64, 20)
	for i := range dV {
		dV[i] = float64(2 + i%5)
		dE[i] = float64(2 + i%5)
		mV[i] = 0.5
		mE[i] = 0.5
	}

	require.NoError(t, generators.GenerateBTER(g, reg, 2, dV, dE, mV, mE, generators.WithAffinityBlockSize(4), generators.WithBTERBaseSeed(11)))

	total := 0
	for _, d := range g.GetVertexDegrees() {
		total += d
	}
	require.Positive(t, total)
}

func TestBTERHandlesEmptyGraph(t *testing.T) {
	reg, err := locale.NewRegistry(1, 1)
	require.NoError(t, err)
	g, err := hypergraph.NewGraph(0, 0, reg)
	require.NoError(t, err)

	require.NoError(t, generators.GenerateBTER(g, reg, 1, nil, nil, nil, nil))
}
