package bag_test

import (
	"testing"

	"github.com/mandysack/chgl/bag"
	"github.com/stretchr/testify/require"
)

func TestSegmentGeometricGrowthAndFIFOAcrossBlocks(t *testing.T) {
	// initialBlockSize=2, maxBlockSize=8, push 20, pop all; ends empty
	// with both head and tail nil.
	seg := bag.NewSegment[int](2, 8, bag.MinTightSpins)

	for i := 0; i < 20; i++ {
		require.True(t, seg.TryAcquire(bag.Add))
		seg.PushLocked(i)
		seg.Release()
	}
	require.Equal(t, 20, seg.Len())

	var popped []int
	for {
		require.True(t, seg.TryAcquire(bag.Remove))
		x, ok := seg.PopLocked()
		seg.Release()
		if !ok {
			break
		}
		popped = append(popped, x)
	}

	expected := make([]int, 20)
	for i := range expected {
		expected[i] = i
	}
	require.Equal(t, expected, popped, "pop order is FIFO within and across blocks")
	require.Equal(t, 0, seg.Len())
	require.NoError(t, seg.CheckInvariant())
}

func TestSegmentPopEmptyReturnsNotOK(t *testing.T) {
	seg := bag.NewSegment[string](bag.DefaultInitialBlockSize, bag.DefaultMaxBlockSize, bag.MinTightSpins)
	require.True(t, seg.TryAcquire(bag.Remove))
	_, ok := seg.PopLocked()
	seg.Release()
	require.False(t, ok)
}

func TestSegmentTakeElementsLocked(t *testing.T) {
	seg := bag.NewSegment[int](2, 4, bag.MinTightSpins)
	for i := 0; i < 10; i++ {
		seg.TryAcquire(bag.Add)
		seg.PushLocked(i)
		seg.Release()
	}

	seg.TryAcquire(bag.Remove)
	taken := seg.TakeElementsLocked(5)
	seg.Release()

	require.Equal(t, []int{0, 1, 2, 3, 4}, taken)
	require.Equal(t, 5, seg.Len())
}

func TestSegmentAcquireBlockingWaitsForRelease(t *testing.T) {
	seg := bag.NewSegment[int](bag.DefaultInitialBlockSize, bag.DefaultMaxBlockSize, bag.MinTightSpins)
	require.True(t, seg.TryAcquire(bag.Add))

	done := make(chan struct{})
	go func() {
		seg.AcquireBlocking(bag.Add)
		seg.PushLocked(42)
		seg.Release()
		close(done)
	}()

	seg.PushLocked(1)
	seg.Release()
	<-done
	require.Equal(t, 2, seg.Len())
}
