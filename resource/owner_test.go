package resource

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockNative hands out increasing handles and counts every call.
type mockNative struct {
	next     uintptr
	fail     bool
	acquired int
	released map[uintptr]int
}

func newMock() *mockNative {
	return &mockNative{released: make(map[uintptr]int)}
}

var errAcquire = errors.New("mock: out of handles")

func (m *mockNative) acquire() (uintptr, error) {
	if m.fail {
		return 0, errAcquire
	}
	m.acquired++
	m.next++
	return m.next, nil
}

func (m *mockNative) release(h uintptr) {
	m.released[h]++
}

func (m *mockNative) totalReleased() int {
	n := 0
	for _, c := range m.released {
		n += c
	}
	return n
}

func TestNewAndRelease(t *testing.T) {
	m := newMock()
	o := New(m.acquire, m.release)
	require.True(t, o.Valid())
	assert.True(t, o.Owning())
	assert.Equal(t, uintptr(1), o.Native())

	o.Release()
	assert.False(t, o.Valid())
	assert.Equal(t, 1, m.released[1])

	o.Release()
	require.NoError(t, o.Close())
	assert.Equal(t, 1, m.totalReleased(), "release must run exactly once")
}

func TestNewFailureIsSilent(t *testing.T) {
	m := newMock()
	m.fail = true

	o := New(m.acquire, m.release)
	require.NotNil(t, o)
	assert.False(t, o.Valid())
	assert.Zero(t, o.Native())

	o.Release()
	assert.Zero(t, m.totalReleased(), "release must not run for an empty owner")
}

func TestMove(t *testing.T) {
	m := newMock()
	a := New(m.acquire, m.release)

	b := a.Move()
	assert.False(t, a.Valid())
	assert.True(t, b.Valid())
	assert.Equal(t, uintptr(1), b.Native())

	a.Release()
	assert.Zero(t, m.totalReleased(), "moved-from owner must not release")

	b.Release()
	assert.Equal(t, 1, m.released[1])
}

func TestMoveFrom(t *testing.T) {
	m := newMock()
	a := New(m.acquire, m.release)
	b := New(m.acquire, m.release)

	b.MoveFrom(a)
	assert.Equal(t, 1, m.released[2], "previous target handle released once")
	assert.Equal(t, uintptr(1), b.Native())
	assert.False(t, a.Valid())

	b.Release()
	a.Release()
	assert.Equal(t, 1, m.released[1])
	assert.Equal(t, 2, m.totalReleased())
	assert.Equal(t, m.acquired, m.totalReleased())
}

func TestSelfMove(t *testing.T) {
	m := newMock()
	a := New(m.acquire, m.release)

	a.MoveFrom(a)
	assert.True(t, a.Valid())
	assert.Zero(t, m.totalReleased())

	a.Release()
	assert.Equal(t, 1, m.totalReleased())
}

func TestMoveFromEmptySource(t *testing.T) {
	m := newMock()
	a := New(m.acquire, m.release)
	empty := Adopt[uintptr](0, m.release)

	a.MoveFrom(empty)
	assert.False(t, a.Valid())
	assert.Equal(t, 1, m.totalReleased())
}

func TestTake(t *testing.T) {
	m := newMock()
	a := New(m.acquire, m.release)

	h, ok := a.Take()
	require.True(t, ok)
	assert.Equal(t, uintptr(1), h)
	assert.False(t, a.Valid())

	a.Release()
	assert.Zero(t, m.totalReleased())

	_, ok = a.Take()
	assert.False(t, ok)
}

func TestBorrow(t *testing.T) {
	b := Borrow[uintptr](7)
	assert.True(t, b.Valid())
	assert.False(t, b.Owning())
	assert.NotPanics(t, b.Release)
}

func TestNilOwner(t *testing.T) {
	var o *Owner[uintptr]
	assert.False(t, o.Valid())
	assert.Zero(t, o.Native())
	assert.NotPanics(t, o.Release)
	assert.NoError(t, o.Close())

	_, ok := o.Take()
	assert.False(t, ok)
	assert.False(t, o.Move().Valid())
}

func TestMake(t *testing.T) {
	m := newMock()
	lastErr := func() error { return errAcquire }

	o, err := Make(func() *Owner[uintptr] { return New(m.acquire, m.release) }, lastErr)
	require.NoError(t, err)
	assert.True(t, o.Valid())
	o.Release()

	m.fail = true
	o, err = Make(func() *Owner[uintptr] { return New(m.acquire, m.release) }, lastErr)
	assert.ErrorIs(t, err, errAcquire)
	assert.Nil(t, o)
}

// wrapped mirrors how binding types embed an Owner.
type wrapped struct {
	*Owner[uintptr]
}

func TestMakeEmbedded(t *testing.T) {
	m := newMock()
	w, err := Make(func() *wrapped { return &wrapped{New(m.acquire, m.release)} }, func() error { return errAcquire })
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.Equal(t, 1, m.totalReleased())
}

func TestFinalizeUsesAlternative(t *testing.T) {
	m := newMock()
	var finalized []uintptr
	a := New(m.acquire, m.release).WithFinalize(func(h uintptr) {
		finalized = append(finalized, h)
	})
	h := a.Native()

	b := a.Move()
	b.finalizeHandle()

	assert.Equal(t, []uintptr{h}, finalized, "Move keeps the finalize function")
	assert.Zero(t, m.totalReleased())
	assert.False(t, b.Valid())

	b.Release()
	assert.Zero(t, m.totalReleased(), "a finalized owner is empty")
}

func TestFinalizeDefaultsToRelease(t *testing.T) {
	m := newMock()
	a := New(m.acquire, m.release)
	h := a.Native()

	a.finalizeHandle()
	assert.Equal(t, 1, m.released[h])

	a.Release()
	assert.Equal(t, 1, m.released[h])
}

func TestMoveFromKeepsFinalize(t *testing.T) {
	m := newMock()
	var finalized int
	src := New(m.acquire, m.release).WithFinalize(func(uintptr) { finalized++ })
	dst := Adopt[uintptr](0, m.release)

	dst.MoveFrom(src)
	dst.finalizeHandle()
	assert.Equal(t, 1, finalized)
	assert.Zero(t, m.totalReleased())
}
