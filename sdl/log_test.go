package sdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogNames(t *testing.T) {
	assert.Equal(t, "warn", LogPriorityWarn.String())
	assert.Equal(t, "LogPriority(9)", LogPriority(9).String())
	assert.Equal(t, "video", LogCategoryVideo.String())
	assert.Equal(t, "custom(2)", (LogCategoryCustom + 2).String())
	assert.Equal(t, "reserved(12)", LogCategory(12).String())

	p, ok := ParseLogPriority("critical")
	require.True(t, ok)
	assert.Equal(t, LogPriorityCritical, p)
	_, ok = ParseLogPriority("")
	assert.False(t, ok)
	_, ok = ParseLogPriority("loud")
	assert.False(t, ok)
}

func TestLogOutputFunction(t *testing.T) {
	requireSDL(t, 0)
	pinThread(t)
	t.Cleanup(func() {
		RestoreLogOutputFunction()
		LogResetPriorities()
	})

	type entry struct {
		category LogCategory
		priority LogPriority
		message  string
	}
	var got []entry
	require.NoError(t, SetLogOutputFunction(func(c LogCategory, p LogPriority, m string) {
		got = append(got, entry{c, p, m})
	}))

	LogSetPriority(LogCategoryInput, LogPriorityWarn)
	assert.Equal(t, LogPriorityWarn, LogGetPriority(LogCategoryInput))

	LogInfo(LogCategoryInput, "filtered out")
	LogWarn(LogCategoryInput, "kept at 100%")
	LogErrorf(LogCategoryApplication, "code %d", 3)

	require.Len(t, got, 2)
	assert.Equal(t, entry{LogCategoryInput, LogPriorityWarn, "kept at 100%"}, got[0])
	assert.Equal(t, entry{LogCategoryApplication, LogPriorityError, "code 3"}, got[1])

	LogSetAllPriority(LogPriorityVerbose)
	LogVerbose(LogCategoryTest, "verbose now")
	require.Len(t, got, 3)
	assert.Equal(t, "verbose now", got[2].message)
}

func TestLogOutputBeforeLoad(t *testing.T) {
	if IsLoaded() {
		t.Skip("library already loaded")
	}
	err := SetLogOutputFunction(func(LogCategory, LogPriority, string) {})
	assert.ErrorIs(t, err, ErrNotLoaded)
}
