package sdl

import (
	"github.com/bnema/sdlbind/internal/callback"
	"github.com/bnema/sdlbind/resource"
)

// HintPriority decides which of several competing SetHint calls wins.
type HintPriority int32

const (
	HintDefault HintPriority = iota
	HintNormal
	HintOverride
)

func (p HintPriority) String() string {
	switch p {
	case HintDefault:
		return "default"
	case HintNormal:
		return "normal"
	case HintOverride:
		return "override"
	}
	return "unknown"
}

// A few commonly used hint names.
const (
	HintAppName                   = "SDL_APP_NAME"
	HintJoystickAllowBackgroundEv = "SDL_JOYSTICK_ALLOW_BACKGROUND_EVENTS"
	HintMouseRelativeModeWarp     = "SDL_MOUSE_RELATIVE_MODE_WARP"
	HintNoSignalHandlers          = "SDL_NO_SIGNAL_HANDLERS"
	HintTimerResolution           = "SDL_TIMER_RESOLUTION"
	HintTouchMouseEvents          = "SDL_TOUCH_MOUSE_EVENTS"
	HintVideoAllowScreensaver     = "SDL_VIDEO_ALLOW_SCREENSAVER"
	HintHIDAPIIgnoreDevices       = "SDL_HIDAPI_IGNORE_DEVICES"
)

var (
	sdlGetHint             func(name string) string
	sdlGetHintBoolean      func(name string, def int32) int32
	sdlSetHint             func(name, value string) int32
	sdlSetHintWithPriority func(name, value string, priority int32) int32
	sdlResetHint           func(name string) int32
	sdlResetHints          func()
	sdlClearHints          func()
	sdlAddHintCallback     func(name string, cb uintptr, userdata uintptr)
	sdlDelHintCallback     func(name string, cb uintptr, userdata uintptr)
)

func init() {
	bind(
		"SDL_GetHint", &sdlGetHint,
		"SDL_GetHintBoolean", &sdlGetHintBoolean,
		"SDL_SetHint", &sdlSetHint,
		"SDL_SetHintWithPriority", &sdlSetHintWithPriority,
		"SDL_ResetHint", &sdlResetHint,
		"SDL_ResetHints", &sdlResetHints,
		"SDL_ClearHints", &sdlClearHints,
		"SDL_AddHintCallback", &sdlAddHintCallback,
		"SDL_DelHintCallback", &sdlDelHintCallback,
	)
}

// GetHint returns the value of a hint, or "" when it is unset.
func GetHint(name string) string {
	return sdlGetHint(name)
}

// GetHintBoolean interprets a hint as a boolean, returning def when unset.
func GetHintBoolean(name string, def bool) bool {
	return sdlGetHintBoolean(name, sdlBool(def)) != 0
}

// SetHint sets a hint at normal priority. It fails when a higher-priority
// value is already in place.
func SetHint(name, value string) error {
	return checkQuiet("SDL_SetHint", func() bool { return sdlSetHint(name, value) == 1 },
		"%s is set with a higher priority", name)
}

// SetHintWithPriority sets a hint with an explicit priority.
func SetHintWithPriority(name, value string, priority HintPriority) error {
	return checkQuiet("SDL_SetHintWithPriority", func() bool {
		return sdlSetHintWithPriority(name, value, int32(priority)) == 1
	}, "%s is set with a priority above %s", name, priority)
}

// ResetHint restores a hint to its environment value or default.
func ResetHint(name string) error {
	return checkQuiet("SDL_ResetHint", func() bool { return sdlResetHint(name) == 1 },
		"%s is not set", name)
}

// ResetHints restores every hint to its default.
func ResetHints() {
	sdlResetHints()
}

// ClearHints clears every hint.
func ClearHints() {
	sdlClearHints()
}

// HintFunc observes changes to a hint. It is called once with the current
// value when registered.
type HintFunc func(name, oldValue, newValue string)

// HintCallback keeps a HintFunc registered until released.
type HintCallback struct {
	*resource.Owner[callback.ID]
	name string
}

// AddHintCallback registers fn for changes to the hint called name.
func AddHintCallback(name string, fn HintFunc) (*HintCallback, error) {
	if !IsLoaded() {
		return nil, &Error{Op: "SDL_AddHintCallback", Err: ErrNotLoaded}
	}
	if !Has("SDL_AddHintCallback") {
		return nil, &Error{Op: "SDL_AddHintCallback", Err: ErrUnsupported}
	}

	id := callbacks.Register(fn)
	sdlAddHintCallback(name, hintTrampoline(), uintptr(id))
	return &HintCallback{
		Owner: resource.Adopt(id, func(id callback.ID) {
			sdlDelHintCallback(name, hintTrampoline(), uintptr(id))
			callbacks.Unregister(id)
		}),
		name: name,
	}, nil
}

// Move transfers the registration to a new HintCallback.
func (h *HintCallback) Move() *HintCallback {
	return &HintCallback{Owner: h.Owner.Move(), name: h.name}
}

// Name returns the observed hint.
func (h *HintCallback) Name() string {
	return h.name
}

// Remove unregisters the callback. It is the same as Release.
func (h *HintCallback) Remove() {
	h.Release()
}
