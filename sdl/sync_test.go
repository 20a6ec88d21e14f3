package sdl

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutexIsRecursive(t *testing.T) {
	requireSDL(t, 0)
	pinThread(t)

	m, err := MakeMutex()
	require.NoError(t, err)
	defer m.Release()

	require.NoError(t, m.Lock())
	require.NoError(t, m.TryLock(), "the owning thread can lock again")

	var other error
	th, err := MakeThread("trylock", func() int32 {
		other = m.TryLock()
		return 0
	})
	require.NoError(t, err)
	_, err = th.Join()
	require.NoError(t, err)
	assert.ErrorIs(t, other, ErrTimedOut)

	require.NoError(t, m.Unlock())
	require.NoError(t, m.Unlock())
}

func TestMutexMove(t *testing.T) {
	requireSDL(t, 0)

	m, err := MakeMutex()
	require.NoError(t, err)
	h := m.Native()

	moved := m.Move()
	defer moved.Release()
	assert.False(t, m.Valid())
	assert.Equal(t, h, moved.Native())

	m.Release()
	assert.True(t, moved.Valid())
}

func TestSemaphore(t *testing.T) {
	requireSDL(t, 0)

	s, err := MakeSemaphore(2)
	require.NoError(t, err)
	defer s.Release()

	assert.Equal(t, uint32(2), s.Value())
	require.NoError(t, s.TryAcquire())
	require.NoError(t, s.Acquire())
	assert.Equal(t, uint32(0), s.Value())

	assert.ErrorIs(t, s.TryAcquire(), ErrTimedOut)
	assert.ErrorIs(t, s.AcquireTimeout(10*time.Millisecond), ErrTimedOut)

	require.NoError(t, s.Post())
	assert.Equal(t, uint32(1), s.Value())
	require.NoError(t, s.AcquireTimeout(time.Second))
}

func TestCondSignal(t *testing.T) {
	requireSDL(t, 0)
	pinThread(t)

	m, err := MakeMutex()
	require.NoError(t, err)
	defer m.Release()
	c, err := MakeCond()
	require.NoError(t, err)
	defer c.Release()

	require.NoError(t, m.Lock())
	assert.ErrorIs(t, c.WaitTimeout(m, 10*time.Millisecond), ErrTimedOut)

	ready := false
	th, err := MakeThread("signal", func() int32 {
		if m.Lock() != nil {
			return 1
		}
		ready = true
		_ = c.Signal()
		_ = m.Unlock()
		return 0
	})
	require.NoError(t, err)

	for !ready {
		require.NoError(t, c.WaitTimeout(m, 5*time.Second))
	}
	require.NoError(t, m.Unlock())

	code, err := th.Join()
	require.NoError(t, err)
	assert.Equal(t, int32(0), code)
}

func TestAtomics(t *testing.T) {
	requireSDL(t, 0)

	var n AtomicInt
	assert.Equal(t, int32(0), n.Load())
	assert.Equal(t, int32(0), n.Add(5))
	assert.Equal(t, int32(5), n.Swap(7))
	assert.True(t, n.CompareAndSwap(7, 9))
	assert.False(t, n.CompareAndSwap(7, 11))
	assert.Equal(t, int32(9), n.Load())

	var lock SpinLock
	var wg sync.WaitGroup
	total := 0
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				lock.Lock()
				total++
				lock.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 800, total)

	assert.True(t, lock.TryLock())
	assert.False(t, lock.TryLock())
	lock.Unlock()
}
