package util_test

import (
	"testing"

	"github.com/mandysack/chgl/util"
	"github.com/stretchr/testify/require"
)

func TestIntersection(t *testing.T) {
	a := []int{1, 2, 3, 5, 8}
	b := []int{2, 3, 4, 8, 9}

	require.Equal(t, []int{2, 3, 8}, util.Intersection(a, b))
	require.Equal(t, 3, util.IntersectionSize(a, b))
}

func TestIntersectionEmptyInputs(t *testing.T) {
	require.Nil(t, util.Intersection([]int{}, []int{1, 2}))
	require.Zero(t, util.IntersectionSize(nil, []int{1, 2}))
}

func TestIntersectionSizeAtLeast(t *testing.T) {
	a := []int{1, 2, 3, 4}
	b := []int{2, 4, 6}

	require.True(t, util.IntersectionSizeAtLeast(a, b, 2))
	require.False(t, util.IntersectionSizeAtLeast(a, b, 3))
	require.True(t, util.IntersectionSizeAtLeast(a, b, 0))
}
