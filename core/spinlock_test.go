package core_test

import (
	"sync"
	"testing"

	"github.com/mandysack/chgl/core"
	"github.com/stretchr/testify/require"
)

func TestSpinLockMutualExclusion(t *testing.T) {
	var lock core.SpinLock
	counter := 0
	const n = 1000
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			lock.Lock()
			counter++
			lock.Unlock()
		}()
	}
	wg.Wait()
	require.Equal(t, n, counter)
}

func TestSpinLockTryLock(t *testing.T) {
	var lock core.SpinLock
	require.True(t, lock.TryLock())
	require.False(t, lock.TryLock(), "already held")
	lock.Unlock()
	require.True(t, lock.TryLock())
	lock.Unlock()
}

func TestSpinLockContentionCounted(t *testing.T) {
	var lock core.SpinLock
	require.Equal(t, uint64(0), lock.ContentionCount())

	lock.Lock()
	done := make(chan struct{})
	go func() {
		lock.Lock() // blocks; counted as contended fast-path failure
		lock.Unlock()
		close(done)
	}()
	lock.Unlock()
	<-done
	require.GreaterOrEqual(t, lock.ContentionCount(), uint64(1))
}
