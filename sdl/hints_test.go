package sdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHint = "SDLBIND_TEST_HINT"

func TestHints(t *testing.T) {
	requireSDL(t, 0)
	t.Cleanup(func() { _ = ResetHint(testHint) })

	assert.Empty(t, GetHint(testHint))
	assert.True(t, GetHintBoolean(testHint, true))

	require.NoError(t, SetHint(testHint, "1"))
	assert.Equal(t, "1", GetHint(testHint))
	assert.True(t, GetHintBoolean(testHint, false))

	require.NoError(t, SetHintWithPriority(testHint, "0", HintOverride))
	assert.Equal(t, "0", GetHint(testHint))

	assert.Error(t, SetHintWithPriority(testHint, "1", HintNormal),
		"a lower priority cannot replace an override")
	assert.Equal(t, "0", GetHint(testHint))
}

func TestHintCallback(t *testing.T) {
	requireSDL(t, 0)
	t.Cleanup(func() { _ = ResetHint(testHint) })
	require.NoError(t, SetHint(testHint, "start"))

	type change struct{ old, new string }
	var changes []change
	cb, err := AddHintCallback(testHint, func(name, oldValue, newValue string) {
		assert.Equal(t, testHint, name)
		changes = append(changes, change{oldValue, newValue})
	})
	require.NoError(t, err)
	assert.Equal(t, testHint, cb.Name())

	require.NoError(t, SetHint(testHint, "next"))
	cb.Remove()
	require.NoError(t, SetHint(testHint, "after"))

	require.Len(t, changes, 2)
	assert.Equal(t, change{"start", "start"}, changes[0], "called once on registration")
	assert.Equal(t, change{"start", "next"}, changes[1])
}
