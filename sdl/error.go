package sdl

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

var (
	// ErrNotLoaded is returned by every call made before Load succeeds.
	ErrNotLoaded = errors.New("sdl: library not loaded")
	// ErrUnsupported is returned when the loaded SDL2 does not export a function.
	ErrUnsupported = errors.New("sdl: function not available in this SDL2 build")
	// ErrTimedOut is returned when a timed wait expires.
	ErrTimedOut = errors.New("sdl: timed out")
	// ErrClosed is returned by operations on a released wrapper.
	ErrClosed = errors.New("sdl: resource released")
)

// Error is a failure reported by SDL through its last-error channel.
type Error struct {
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if msg == "" {
		msg = "unknown error"
	}
	if e.Op == "" {
		return "sdl: " + msg
	}
	return fmt.Sprintf("sdl: %s: %s", e.Op, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

var (
	sdlGetError   func() string
	sdlSetError   func(format string) int32
	sdlClearError func()
)

func init() {
	bind(
		"SDL_GetError", &sdlGetError,
		"SDL_SetError", &sdlSetError,
		"SDL_ClearError", &sdlClearError,
	)
}

// GetError returns the message for the last error on the calling thread, or ""
// when there is none. Callers interested in a specific failure should use the
// error returned by that call instead.
func GetError() string {
	return sdlGetError()
}

// SetError stores message verbatim as the current error.
func SetError(message string) {
	sdlSetError(escapePercent(message))
}

// SetErrorf formats and stores the current error.
func SetErrorf(format string, args ...any) {
	SetError(fmt.Sprintf(format, args...))
}

// ClearError empties the error channel.
func ClearError() {
	sdlClearError()
}

// lastError builds the error for a failed call to the native function op. It
// must run on the OS thread that made the call.
func lastError(op string) error {
	libMu.RLock()
	l := lib
	libMu.RUnlock()

	switch {
	case l == nil:
		return &Error{Op: op, Err: ErrNotLoaded}
	case l.Missing(op):
		return &Error{Op: op, Err: ErrUnsupported}
	}
	return &Error{Op: op, Message: sdlGetError()}
}

// errorf builds an error that did not come from SDL's channel.
func errorf(op string, err error, format string, args ...any) error {
	return &Error{Op: op, Message: fmt.Sprintf(format, args...), Err: err}
}

// check runs fn pinned to one OS thread and turns a false result into the
// channel's error for op. The channel is cleared first, so a call that fails
// without setting a message never reports an older one.
func check(op string, fn func() bool) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	sdlClearError()
	if fn() {
		return nil
	}
	return lastError(op)
}

// checkQuiet is check for calls that can fail without setting a message.
// Such failures get the fixed message instead of an empty one.
func checkQuiet(op string, fn func() bool, format string, args ...any) error {
	err := check(op, fn)
	var sdlErr *Error
	if errors.As(err, &sdlErr) && sdlErr.Err == nil && sdlErr.Message == "" {
		return errorf(op, nil, format, args...)
	}
	return err
}

// status runs a native call following the "negative means failure" convention.
func status(op string, fn func() int32) error {
	return check(op, func() bool { return fn() >= 0 })
}

// timed runs a blocking call that can time out: 0 is success,
// timedOut is ErrTimedOut, anything else is an SDL error.
func timed(op string, timedOut int32, fn func() int32) error {
	var rc int32
	err := check(op, func() bool {
		rc = fn()
		return rc >= 0
	})
	if err != nil {
		return err
	}
	if rc == timedOut {
		return &Error{Op: op, Err: ErrTimedOut}
	}
	return nil
}

func escapePercent(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}
