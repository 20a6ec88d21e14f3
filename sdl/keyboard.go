package sdl

import (
	"unsafe"

	"github.com/bnema/sdlbind/bitset"
)

// Scancode is a physical key position.
type Scancode int32

const (
	ScancodeUnknown Scancode = 0

	ScancodeA Scancode = 4
	ScancodeZ Scancode = 29
	Scancode1 Scancode = 30
	Scancode0 Scancode = 39

	ScancodeReturn    Scancode = 40
	ScancodeEscape    Scancode = 41
	ScancodeBackspace Scancode = 42
	ScancodeTab       Scancode = 43
	ScancodeSpace     Scancode = 44

	ScancodeF1  Scancode = 58
	ScancodeF12 Scancode = 69

	ScancodeRight Scancode = 79
	ScancodeLeft  Scancode = 80
	ScancodeDown  Scancode = 81
	ScancodeUp    Scancode = 82

	ScancodeLCtrl  Scancode = 224
	ScancodeLShift Scancode = 225
	ScancodeLAlt   Scancode = 226
	ScancodeLGUI   Scancode = 227
	ScancodeRCtrl  Scancode = 228
	ScancodeRShift Scancode = 229
	ScancodeRAlt   Scancode = 230
	ScancodeRGUI   Scancode = 231

	NumScancodes = 512
)

// Keycode is a layout-dependent key symbol.
type Keycode int32

// KeycodeScancodeMask marks keycodes derived from a scancode.
const KeycodeScancodeMask Keycode = 1 << 30

// KeycodeFromScancode mirrors SDL_SCANCODE_TO_KEYCODE.
func KeycodeFromScancode(s Scancode) Keycode {
	return Keycode(s) | KeycodeScancodeMask
}

const (
	KeyUnknown   Keycode = 0
	KeyReturn    Keycode = '\r'
	KeyEscape    Keycode = '\x1b'
	KeyBackspace Keycode = '\b'
	KeyTab       Keycode = '\t'
	KeySpace     Keycode = ' '
	KeyA         Keycode = 'a'
	KeyZ         Keycode = 'z'
	Key0         Keycode = '0'
	Key9         Keycode = '9'

	KeyF1    = Keycode(ScancodeF1) | KeycodeScancodeMask
	KeyF12   = Keycode(ScancodeF12) | KeycodeScancodeMask
	KeyRight = Keycode(ScancodeRight) | KeycodeScancodeMask
	KeyLeft  = Keycode(ScancodeLeft) | KeycodeScancodeMask
	KeyDown  = Keycode(ScancodeDown) | KeycodeScancodeMask
	KeyUp    = Keycode(ScancodeUp) | KeycodeScancodeMask
)

// Keymod is a set of modifier keys.
type Keymod uint16

func (Keymod) BitsetEnum() {}

const (
	KmodNone   Keymod = 0x0000
	KmodLShift Keymod = 0x0001
	KmodRShift Keymod = 0x0002
	KmodLCtrl  Keymod = 0x0040
	KmodRCtrl  Keymod = 0x0080
	KmodLAlt   Keymod = 0x0100
	KmodRAlt   Keymod = 0x0200
	KmodLGUI   Keymod = 0x0400
	KmodRGUI   Keymod = 0x0800
	KmodNum    Keymod = 0x1000
	KmodCaps   Keymod = 0x2000
	KmodMode   Keymod = 0x4000
	KmodScroll Keymod = 0x8000

	KmodCtrl  = KmodLCtrl | KmodRCtrl
	KmodShift = KmodLShift | KmodRShift
	KmodAlt   = KmodLAlt | KmodRAlt
	KmodGUI   = KmodLGUI | KmodRGUI
)

var keymodNames = []bitset.Name[Keymod]{
	{Flag: KmodLShift, Name: "lshift"},
	{Flag: KmodRShift, Name: "rshift"},
	{Flag: KmodLCtrl, Name: "lctrl"},
	{Flag: KmodRCtrl, Name: "rctrl"},
	{Flag: KmodLAlt, Name: "lalt"},
	{Flag: KmodRAlt, Name: "ralt"},
	{Flag: KmodLGUI, Name: "lgui"},
	{Flag: KmodRGUI, Name: "rgui"},
	{Flag: KmodNum, Name: "num"},
	{Flag: KmodCaps, Name: "caps"},
	{Flag: KmodMode, Name: "mode"},
	{Flag: KmodScroll, Name: "scroll"},
}

func (m Keymod) String() string {
	return bitset.Format(m, keymodNames, "none")
}

var (
	sdlGetKeyboardFocus         func() uintptr
	sdlGetKeyboardState         func(numkeys *int32) uintptr
	sdlResetKeyboard            func()
	sdlGetModState              func() int32
	sdlSetModState              func(mod int32)
	sdlGetKeyFromScancode       func(s int32) int32
	sdlGetScancodeFromKey       func(k int32) int32
	sdlGetScancodeName          func(s int32) string
	sdlGetScancodeFromName      func(name string) int32
	sdlGetKeyName               func(k int32) string
	sdlGetKeyFromName           func(name string) int32
	sdlStartTextInput           func()
	sdlStopTextInput            func()
	sdlIsTextInputActive        func() int32
	sdlIsTextInputShown         func() int32
	sdlClearComposition         func()
	sdlHasScreenKeyboardSupport func() int32
)

func init() {
	bind(
		"SDL_GetKeyboardFocus", &sdlGetKeyboardFocus,
		"SDL_GetKeyboardState", &sdlGetKeyboardState,
		"SDL_ResetKeyboard", &sdlResetKeyboard,
		"SDL_GetModState", &sdlGetModState,
		"SDL_SetModState", &sdlSetModState,
		"SDL_GetKeyFromScancode", &sdlGetKeyFromScancode,
		"SDL_GetScancodeFromKey", &sdlGetScancodeFromKey,
		"SDL_GetScancodeName", &sdlGetScancodeName,
		"SDL_GetScancodeFromName", &sdlGetScancodeFromName,
		"SDL_GetKeyName", &sdlGetKeyName,
		"SDL_GetKeyFromName", &sdlGetKeyFromName,
		"SDL_StartTextInput", &sdlStartTextInput,
		"SDL_StopTextInput", &sdlStopTextInput,
		"SDL_IsTextInputActive", &sdlIsTextInputActive,
		"SDL_IsTextInputShown", &sdlIsTextInputShown,
		"SDL_ClearComposition", &sdlClearComposition,
		"SDL_HasScreenKeyboardSupport", &sdlHasScreenKeyboardSupport,
	)
}

// GetKeyboardFocus returns the window with keyboard focus.
func GetKeyboardFocus() Window {
	return Window(sdlGetKeyboardFocus())
}

// GetKeyboardState returns SDL's key state array indexed by Scancode. The slice
// aliases SDL memory that is updated as events are pumped; it is nil before
// Load.
func GetKeyboardState() []uint8 {
	var n int32
	p := sdlGetKeyboardState(&n)
	if p == 0 || n <= 0 {
		return nil
	}
	return unsafe.Slice((*uint8)(cPointer(p)), n)
}

// IsKeyPressed reports whether s is held according to GetKeyboardState.
func IsKeyPressed(s Scancode) bool {
	state := GetKeyboardState()
	return s >= 0 && int(s) < len(state) && state[s] != 0
}

// ResetKeyboard releases every pressed key.
func ResetKeyboard() {
	sdlResetKeyboard()
}

// GetModState returns the current modifier keys.
func GetModState() Keymod {
	return Keymod(sdlGetModState())
}

// SetModState overrides the modifier state.
func SetModState(mod Keymod) {
	sdlSetModState(int32(mod))
}

// GetKeyFromScancode maps a position to a symbol under the current layout.
func GetKeyFromScancode(s Scancode) Keycode {
	return Keycode(sdlGetKeyFromScancode(int32(s)))
}

// GetScancodeFromKey maps a symbol to a position under the current layout.
func GetScancodeFromKey(k Keycode) Scancode {
	return Scancode(sdlGetScancodeFromKey(int32(k)))
}

// GetScancodeName returns a human readable name, "" if it has none.
func GetScancodeName(s Scancode) string {
	return sdlGetScancodeName(int32(s))
}

// GetScancodeFromName looks up a scancode by name.
func GetScancodeFromName(name string) (Scancode, error) {
	var s int32
	err := check("SDL_GetScancodeFromName", func() bool {
		s = sdlGetScancodeFromName(name)
		return s > 0
	})
	return Scancode(s), err
}

// GetKeyName returns a human readable name, "" if it has none.
func GetKeyName(k Keycode) string {
	return sdlGetKeyName(int32(k))
}

// GetKeyFromName looks up a keycode by name.
func GetKeyFromName(name string) (Keycode, error) {
	var k int32
	err := check("SDL_GetKeyFromName", func() bool {
		k = sdlGetKeyFromName(name)
		return k > 0
	})
	return Keycode(k), err
}

func (s Scancode) String() string { return GetScancodeName(s) }

func (k Keycode) String() string { return GetKeyName(k) }

// StartTextInput enables text input events.
func StartTextInput() { sdlStartTextInput() }

// StopTextInput disables text input events.
func StopTextInput() { sdlStopTextInput() }

// IsTextInputActive reports whether text input events are enabled.
func IsTextInputActive() bool { return sdlIsTextInputActive() == 1 }

// IsTextInputShown reports whether an input method UI is visible.
func IsTextInputShown() bool { return sdlIsTextInputShown() == 1 }

// ClearComposition discards pending input method text.
func ClearComposition() { sdlClearComposition() }

// HasScreenKeyboardSupport reports whether the platform has an on-screen
// keyboard.
func HasScreenKeyboardSupport() bool { return sdlHasScreenKeyboardSupport() == 1 }
