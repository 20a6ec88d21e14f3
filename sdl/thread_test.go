package sdl

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreadJoin(t *testing.T) {
	requireSDL(t, 0)

	var inside ThreadID
	th, err := MakeThread("worker", func() int32 {
		inside = CurrentThreadID()
		return 42
	})
	require.NoError(t, err)

	name, err := th.Name()
	require.NoError(t, err)
	assert.Equal(t, "worker", name)
	id := th.ID()

	code, err := th.Join()
	require.NoError(t, err)
	assert.Equal(t, int32(42), code)
	assert.Equal(t, id, inside)
	assert.False(t, th.Valid())

	_, err = th.Join()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestThreadReleaseJoins(t *testing.T) {
	requireSDL(t, 0)

	done := false
	th, err := MakeThreadWithStackSize("release", 256<<10, func() int32 {
		done = true
		return 0
	})
	require.NoError(t, err)

	th.Release()
	assert.True(t, done)
}

func TestThreadDetach(t *testing.T) {
	requireSDL(t, 0)

	finished := make(chan struct{})
	th, err := MakeThread("detached", func() int32 {
		close(finished)
		return 0
	})
	require.NoError(t, err)
	require.NoError(t, th.Detach())
	<-finished

	assert.ErrorIs(t, th.Detach(), ErrClosed)
}

func TestThreadLocal(t *testing.T) {
	requireSDL(t, 0)
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	tls, err := MakeThreadLocal[string]()
	require.NoError(t, err)
	defer tls.Release()

	_, ok := tls.Get()
	assert.False(t, ok)

	require.NoError(t, tls.Set("main"))
	require.NoError(t, tls.Set("main again"))

	var seen string
	var seenOK bool
	th, err := MakeThread("tls", func() int32 {
		seen, seenOK = tls.Get()
		if err := tls.Set("worker"); err != nil {
			return 1
		}
		return 0
	})
	require.NoError(t, err)
	code, err := th.Join()
	require.NoError(t, err)
	assert.Equal(t, int32(0), code)
	assert.False(t, seenOK, "values are per thread")
	assert.Empty(t, seen)

	v, ok := tls.Get()
	require.True(t, ok)
	assert.Equal(t, "main again", v)
}

func TestThreadPriorityString(t *testing.T) {
	assert.Equal(t, "high", ThreadPriorityHigh.String())
}

// fakeTLS keeps per-slot values for the calling thread.
type fakeTLS struct {
	next     uint32
	values   map[uint32]uintptr
	cleanups int
}

func installFakeTLS(t *testing.T) *fakeTLS {
	f := &fakeTLS{values: make(map[uint32]uintptr)}
	replace(t, &sdlTLSCreate, func() uint32 {
		f.next++
		return f.next
	})
	replace(t, &sdlTLSGet, func(id uint32) uintptr { return f.values[id] })
	replace(t, &sdlTLSSet, func(id uint32, value, _ uintptr) int32 {
		f.values[id] = value
		return 0
	})
	replace(t, &sdlTLSCleanup, func() {
		f.cleanups++
		clear(f.values)
	})
	return f
}

func TestThreadLocalReleaseKeepsOtherSlots(t *testing.T) {
	fakeSDL(t)
	f := installFakeTLS(t)
	before := callbacks.Len()

	a, err := MakeThreadLocal[string]()
	require.NoError(t, err)
	b, err := MakeThreadLocal[string]()
	require.NoError(t, err)
	require.NoError(t, a.Set("a"))
	require.NoError(t, b.Set("b"))

	a.Release()
	assert.Zero(t, f.cleanups, "other slots are still live")
	assert.Zero(t, f.values[1])
	v, ok := b.Get()
	require.True(t, ok)
	assert.Equal(t, "b", v)

	b.Release()
	assert.Equal(t, 1, f.cleanups)
	assert.Equal(t, before, callbacks.Len(), "values are unregistered on release")
}
