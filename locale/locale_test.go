package locale_test

import (
	"testing"

	"github.com/mandysack/chgl/locale"
	"github.com/stretchr/testify/require"
)

func TestNewRegistryValidatesCount(t *testing.T) {
	_, err := locale.NewRegistry(0, 4)
	require.ErrorIs(t, err, locale.ErrNoLocales)

	reg, err := locale.NewRegistry(3, 4)
	require.NoError(t, err)
	require.Equal(t, 3, reg.NumLocales())
	for i, l := range reg.Locales {
		require.Equal(t, locale.ID(i), l.ID)
		require.Equal(t, 4, l.MaxTaskPar)
	}
}

func TestValidAndMaxTaskPar(t *testing.T) {
	reg, err := locale.NewRegistry(2, 8)
	require.NoError(t, err)
	require.True(t, reg.Valid(0))
	require.True(t, reg.Valid(1))
	require.False(t, reg.Valid(2))
	require.False(t, reg.Valid(-1))

	mp, err := reg.MaxTaskPar(1)
	require.NoError(t, err)
	require.Equal(t, 8, mp)

	_, err = reg.MaxTaskPar(5)
	require.ErrorIs(t, err, locale.ErrInvalidLocaleID)
}

func TestPrivatizeAndLookup(t *testing.T) {
	reg, err := locale.NewRegistry(3, 1)
	require.NoError(t, err)

	id, inst := reg.Privatize()
	require.Len(t, inst, 3)
	inst[0] = "local-0"
	inst[1] = "local-1"
	inst[2] = "local-2"

	got, err := reg.Lookup(id)
	require.NoError(t, err)
	require.Equal(t, "local-1", got[1])

	one, err := reg.LocalInstance(id, 2)
	require.NoError(t, err)
	require.Equal(t, "local-2", one)

	_, err = reg.Lookup(999)
	require.ErrorIs(t, err, locale.ErrUnknownPrivatized)
}

func TestOwnerOfVertexBlockDistribution(t *testing.T) {
	reg, err := locale.NewRegistry(4, 1)
	require.NoError(t, err)

	// 100 vertices over 4 locales -> blocks of 25
	require.Equal(t, locale.ID(0), reg.OwnerOfVertex(0, 100))
	require.Equal(t, locale.ID(0), reg.OwnerOfVertex(24, 100))
	require.Equal(t, locale.ID(1), reg.OwnerOfVertex(25, 100))
	require.Equal(t, locale.ID(3), reg.OwnerOfVertex(99, 100))
}

func TestOwnerOfEdgeSingleLocale(t *testing.T) {
	reg, err := locale.NewRegistry(1, 1)
	require.NoError(t, err)
	for _, eid := range []int{0, 1, 500} {
		require.Equal(t, locale.ID(0), reg.OwnerOfEdge(eid, 1000))
	}
}
