package callback

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableRegisterLookup(t *testing.T) {
	var tbl Table

	a := tbl.Register("a")
	b := tbl.Register("b")
	require.NotZero(t, a)
	require.NotEqual(t, a, b)

	v, ok := tbl.Lookup(a)
	require.True(t, ok)
	assert.Equal(t, "a", v)
	assert.Equal(t, 2, tbl.Len())
}

func TestTableUnregisterReusesSlot(t *testing.T) {
	var tbl Table

	a := tbl.Register(1)
	v, ok := tbl.Unregister(a)
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = tbl.Lookup(a)
	assert.False(t, ok)

	_, ok = tbl.Unregister(a)
	assert.False(t, ok, "double unregister must fail")

	b := tbl.Register(2)
	assert.Equal(t, a, b)
	assert.Equal(t, 1, tbl.Len())
}

func TestTableInvalidIDs(t *testing.T) {
	var tbl Table

	tests := []struct {
		name string
		id   ID
	}{
		{"zero", 0},
		{"out of range", 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := tbl.Lookup(tt.id)
			assert.False(t, ok)
			_, ok = tbl.Unregister(tt.id)
			assert.False(t, ok)
		})
	}
}

func TestTableConcurrent(t *testing.T) {
	var tbl Table
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := tbl.Register(i)
			v, ok := tbl.Lookup(id)
			assert.True(t, ok)
			assert.Equal(t, i, v)
			tbl.Unregister(id)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 0, tbl.Len())
}
