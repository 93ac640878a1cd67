package destbuffer_test

import (
	"sync"
	"testing"

	"github.com/mandysack/chgl/destbuffer"
	"github.com/stretchr/testify/require"
)

func TestAppendAndDrain(t *testing.T) {
	b := destbuffer.New(destbuffer.WithCapacity(4))
	require.Equal(t, 4, b.Capacity())

	require.False(t, b.Append(1, 10, destbuffer.Vertex))
	require.False(t, b.Append(2, 20, destbuffer.Edge))
	require.False(t, b.Append(3, 30, destbuffer.Vertex))
	becameFull := b.Append(4, 40, destbuffer.Edge)
	require.True(t, becameFull)
	require.True(t, b.Full())

	var vertexPairs, edgePairs [][2]int64
	b.Drain(
		func(src, dest int64) { vertexPairs = append(vertexPairs, [2]int64{src, dest}) },
		func(src, dest int64) { edgePairs = append(edgePairs, [2]int64{src, dest}) },
	)
	require.ElementsMatch(t, [][2]int64{{1, 10}, {3, 30}}, vertexPairs)
	require.ElementsMatch(t, [][2]int64{{2, 20}, {4, 40}}, edgePairs)
}

func TestClearResetsInvariants(t *testing.T) {
	b := destbuffer.New(destbuffer.WithCapacity(2))
	b.Append(1, 1, destbuffer.Vertex)
	b.Append(2, 2, destbuffer.Vertex)
	require.True(t, b.Full())

	b.Clear()
	require.Equal(t, int64(0), b.Size())
	require.Equal(t, int64(0), b.Filled())
	require.False(t, b.Full())

	var got [][2]int64
	b.Drain(func(src, dest int64) { got = append(got, [2]int64{src, dest}) }, func(int64, int64) {})
	require.Empty(t, got, "cleared buffer must have no holes with stale kind")
}

func TestFilledNeverExceedsSizeOrCapacity(t *testing.T) {
	b := destbuffer.New(destbuffer.WithCapacity(100))
	const writers = 250
	var wg sync.WaitGroup
	wg.Add(writers)
	fullSignals := make(chan struct{}, writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			if b.Append(int64(i), int64(i*2), destbuffer.Vertex) {
				// The caller that fills the buffer drains and clears it,
				// reopening it for writers spinning on a closed buffer.
				b.DrainAndClear(func(int64, int64) {}, func(int64, int64) {})
				fullSignals <- struct{}{}
			}
		}(i)
	}
	wg.Wait()

	require.LessOrEqual(t, b.Filled(), b.Size())
	require.LessOrEqual(t, b.Filled(), int64(b.Capacity()))
	require.Equal(t, int64(writers%b.Capacity()), b.Filled(), "every writer must eventually land a slot")
	require.Len(t, fullSignals, writers/b.Capacity(), "one caller observes becameFull per filled buffer")
}

func TestDrainAndClearRoundTrip(t *testing.T) {
	b := destbuffer.New(destbuffer.WithCapacity(3))
	b.Append(7, 70, destbuffer.Edge)
	b.Append(8, 80, destbuffer.Vertex)

	var vCount, eCount int
	b.DrainAndClear(
		func(int64, int64) { vCount++ },
		func(int64, int64) { eCount++ },
	)
	require.Equal(t, 1, vCount)
	require.Equal(t, 1, eCount)
	require.Equal(t, int64(0), b.Size())
	require.Equal(t, int64(0), b.Filled())
}
