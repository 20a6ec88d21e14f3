package sdl

import (
	"fmt"
	"sync"

	"github.com/bnema/sdlbind/internal/callback"
)

// LogCategory groups log messages by SDL subsystem.
type LogCategory int32

const (
	LogCategoryApplication LogCategory = iota
	LogCategoryError
	LogCategoryAssert
	LogCategorySystem
	LogCategoryAudio
	LogCategoryVideo
	LogCategoryRender
	LogCategoryInput
	LogCategoryTest

	// LogCategoryCustom is the first category free for application use.
	LogCategoryCustom LogCategory = 19
)

var logCategoryNames = [...]string{
	"application", "error", "assert", "system", "audio", "video", "render", "input", "test",
}

func (c LogCategory) String() string {
	if c >= 0 && int(c) < len(logCategoryNames) {
		return logCategoryNames[c]
	}
	if c >= LogCategoryCustom {
		return fmt.Sprintf("custom(%d)", int32(c-LogCategoryCustom))
	}
	return fmt.Sprintf("reserved(%d)", int32(c))
}

// LogPriority is the severity of a log message.
type LogPriority int32

const (
	LogPriorityVerbose LogPriority = iota + 1
	LogPriorityDebug
	LogPriorityInfo
	LogPriorityWarn
	LogPriorityError
	LogPriorityCritical
)

var logPriorityNames = [...]string{"", "verbose", "debug", "info", "warn", "error", "critical"}

func (p LogPriority) String() string {
	if p > 0 && int(p) < len(logPriorityNames) {
		return logPriorityNames[p]
	}
	return fmt.Sprintf("LogPriority(%d)", int32(p))
}

// ParseLogPriority converts a name such as "warn" to its LogPriority.
func ParseLogPriority(name string) (LogPriority, bool) {
	for i, n := range logPriorityNames {
		if i > 0 && n == name {
			return LogPriority(i), true
		}
	}
	return 0, false
}

var (
	sdlLogSetAllPriority    func(priority int32)
	sdlLogSetPriority       func(category, priority int32)
	sdlLogGetPriority       func(category int32) int32
	sdlLogResetPriorities   func()
	sdlLogMessage           func(category, priority int32, format string)
	sdlLogGetOutputFunction func(cb *uintptr, userdata *uintptr)
	sdlLogSetOutputFunction func(cb uintptr, userdata uintptr)
)

func init() {
	bind(
		"SDL_LogSetAllPriority", &sdlLogSetAllPriority,
		"SDL_LogSetPriority", &sdlLogSetPriority,
		"SDL_LogGetPriority", &sdlLogGetPriority,
		"SDL_LogResetPriorities", &sdlLogResetPriorities,
		"SDL_LogMessage", &sdlLogMessage,
		"SDL_LogGetOutputFunction", &sdlLogGetOutputFunction,
		"SDL_LogSetOutputFunction", &sdlLogSetOutputFunction,
	)
}

// LogSetAllPriority sets the priority threshold of every category.
func LogSetAllPriority(priority LogPriority) {
	sdlLogSetAllPriority(int32(priority))
}

// LogSetPriority sets the threshold of one category.
func LogSetPriority(category LogCategory, priority LogPriority) {
	sdlLogSetPriority(int32(category), int32(priority))
}

// LogGetPriority returns the threshold of one category.
func LogGetPriority(category LogCategory) LogPriority {
	return LogPriority(sdlLogGetPriority(int32(category)))
}

// LogResetPriorities restores the default thresholds.
func LogResetPriorities() {
	sdlLogResetPriorities()
}

// LogMessage logs message verbatim.
func LogMessage(category LogCategory, priority LogPriority, message string) {
	sdlLogMessage(int32(category), int32(priority), escapePercent(message))
}

// LogMessagef formats in Go and logs the result.
func LogMessagef(category LogCategory, priority LogPriority, format string, args ...any) {
	LogMessage(category, priority, fmt.Sprintf(format, args...))
}

// Log logs at info priority in the application category.
func Log(message string) { LogMessage(LogCategoryApplication, LogPriorityInfo, message) }

// Logf is the formatted form of Log.
func Logf(format string, args ...any) {
	LogMessagef(LogCategoryApplication, LogPriorityInfo, format, args...)
}

func LogVerbose(category LogCategory, message string) {
	LogMessage(category, LogPriorityVerbose, message)
}

func LogDebug(category LogCategory, message string) {
	LogMessage(category, LogPriorityDebug, message)
}

func LogInfo(category LogCategory, message string) {
	LogMessage(category, LogPriorityInfo, message)
}

func LogWarn(category LogCategory, message string) {
	LogMessage(category, LogPriorityWarn, message)
}

func LogError(category LogCategory, message string) {
	LogMessage(category, LogPriorityError, message)
}

func LogCritical(category LogCategory, message string) {
	LogMessage(category, LogPriorityCritical, message)
}

func LogVerbosef(category LogCategory, format string, args ...any) {
	LogMessagef(category, LogPriorityVerbose, format, args...)
}

func LogDebugf(category LogCategory, format string, args ...any) {
	LogMessagef(category, LogPriorityDebug, format, args...)
}

func LogInfof(category LogCategory, format string, args ...any) {
	LogMessagef(category, LogPriorityInfo, format, args...)
}

func LogWarnf(category LogCategory, format string, args ...any) {
	LogMessagef(category, LogPriorityWarn, format, args...)
}

func LogErrorf(category LogCategory, format string, args ...any) {
	LogMessagef(category, LogPriorityError, format, args...)
}

func LogCriticalf(category LogCategory, format string, args ...any) {
	LogMessagef(category, LogPriorityCritical, format, args...)
}

// LogOutputFunc receives every message SDL emits.
type LogOutputFunc func(category LogCategory, priority LogPriority, message string)

var logOutput struct {
	sync.Mutex
	id           callback.ID
	saved        bool
	origFn       uintptr
	origUserdata uintptr
}

// SetLogOutputFunction redirects SDL's log output to fn. The first call
// remembers SDL's own output function for RestoreLogOutputFunction.
func SetLogOutputFunction(fn LogOutputFunc) error {
	if !IsLoaded() {
		return &Error{Op: "SDL_LogSetOutputFunction", Err: ErrNotLoaded}
	}

	logOutput.Lock()
	defer logOutput.Unlock()

	if !logOutput.saved {
		sdlLogGetOutputFunction(&logOutput.origFn, &logOutput.origUserdata)
		logOutput.saved = true
	}

	id := callbacks.Register(fn)
	sdlLogSetOutputFunction(logTrampoline(), uintptr(id))
	if logOutput.id != 0 {
		callbacks.Unregister(logOutput.id)
	}
	logOutput.id = id
	return nil
}

// RestoreLogOutputFunction puts back the output function that was active
// before the first SetLogOutputFunction.
func RestoreLogOutputFunction() {
	logOutput.Lock()
	defer logOutput.Unlock()

	if !logOutput.saved {
		return
	}
	sdlLogSetOutputFunction(logOutput.origFn, logOutput.origUserdata)
	if logOutput.id != 0 {
		callbacks.Unregister(logOutput.id)
		logOutput.id = 0
	}
}
