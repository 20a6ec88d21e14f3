package native

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMissingLibrary(t *testing.T) {
	lib, err := Open("libdefinitely-not-here.so.42")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, lib)
}

func TestOpenNoCandidates(t *testing.T) {
	_, err := Open("")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStub(t *testing.T) {
	var status func(int32) int32
	var handle func() uintptr
	var name func() string
	var void func(uintptr)

	Stub(&status)
	Stub(&handle)
	Stub(&name)
	Stub(&void)

	assert.Equal(t, int32(-1), status(3))
	assert.Zero(t, handle())
	assert.Empty(t, name())
	assert.NotPanics(t, func() { void(1) })
}

func TestStubRejectsNonFunc(t *testing.T) {
	var x int
	assert.Panics(t, func() { Stub(&x) })
}

func TestNilLibrary(t *testing.T) {
	var lib *Library
	assert.Empty(t, lib.Path())
	assert.True(t, lib.Missing("SDL_Init"))
	assert.Nil(t, lib.MissingSymbols())
	assert.NoError(t, lib.Close())

	_, err := lib.Symbol("SDL_Init")
	assert.ErrorIs(t, err, ErrClosed)
}

func TestDefaultLibraryBind(t *testing.T) {
	lib, err := Open()
	if err != nil {
		t.Skipf("SDL2 not available: %v", err)
	}
	defer lib.Close()

	var getPlatform func() string
	require.True(t, lib.Bind(&getPlatform, "SDL_GetPlatform"))
	assert.NotEmpty(t, getPlatform())

	var bogus func() int32
	assert.False(t, lib.Bind(&bogus, "SDL_NoSuchFunction"))
	assert.True(t, lib.Missing("SDL_NoSuchFunction"))
	assert.Equal(t, int32(-1), bogus())
	assert.Contains(t, lib.MissingSymbols(), "SDL_NoSuchFunction")
}
