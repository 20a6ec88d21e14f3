package sdl

import (
	"fmt"
	"strings"

	"github.com/bnema/sdlbind/bitset"
	"github.com/bnema/sdlbind/resource"
)

// Window is a borrowed SDL_Window pointer. This package never creates or
// destroys windows; 0 means "no window".
type Window uintptr

// SystemCursor selects one of the platform's built-in cursors.
type SystemCursor int32

const (
	SystemCursorArrow SystemCursor = iota
	SystemCursorIBeam
	SystemCursorWait
	SystemCursorCrosshair
	SystemCursorWaitArrow
	SystemCursorSizeNWSE
	SystemCursorSizeNESW
	SystemCursorSizeWE
	SystemCursorSizeNS
	SystemCursorSizeAll
	SystemCursorNo
	SystemCursorHand
)

// Button is a mouse button number.
type Button uint8

const (
	ButtonLeft Button = iota + 1
	ButtonMiddle
	ButtonRight
	ButtonX1
	ButtonX2
)

// Mask returns the ButtonMask bit for b.
func (b Button) Mask() ButtonMask {
	if b == 0 {
		return 0
	}
	return ButtonMask(1) << (b - 1)
}

// ButtonMask is a set of pressed mouse buttons.
type ButtonMask uint32

func (ButtonMask) BitsetEnum() {}

const (
	ButtonMaskLeft   = ButtonMask(1) << (ButtonLeft - 1)
	ButtonMaskMiddle = ButtonMask(1) << (ButtonMiddle - 1)
	ButtonMaskRight  = ButtonMask(1) << (ButtonRight - 1)
	ButtonMaskX1     = ButtonMask(1) << (ButtonX1 - 1)
	ButtonMaskX2     = ButtonMask(1) << (ButtonX2 - 1)
)

var buttonMaskNames = []bitset.Name[ButtonMask]{
	{Flag: ButtonMaskLeft, Name: "left"},
	{Flag: ButtonMaskMiddle, Name: "middle"},
	{Flag: ButtonMaskRight, Name: "right"},
	{Flag: ButtonMaskX1, Name: "x1"},
	{Flag: ButtonMaskX2, Name: "x2"},
}

func (m ButtonMask) String() string {
	return bitset.Format(m, buttonMaskNames, "none")
}

// MouseState is a snapshot of the pointer position and buttons.
type MouseState struct {
	X, Y    int32
	Buttons ButtonMask
}

// IsButtonDown reports whether b was held.
func (s MouseState) IsButtonDown(b Button) bool {
	return bitset.Any(s.Buttons, b.Mask())
}

const (
	cursorQuery   = -1
	cursorDisable = 0
	cursorEnable  = 1
)

var (
	sdlGetMouseFocus         func() uintptr
	sdlGetMouseState         func(x, y *int32) uint32
	sdlGetGlobalMouseState   func(x, y *int32) uint32
	sdlGetRelativeMouseState func(x, y *int32) uint32
	sdlWarpMouseInWindow     func(w uintptr, x, y int32)
	sdlWarpMouseGlobal       func(x, y int32) int32
	sdlSetRelativeMouseMode  func(enabled int32) int32
	sdlGetRelativeMouseMode  func() int32
	sdlCaptureMouse          func(enabled int32) int32
	sdlCreateCursor          func(data, mask *byte, w, h, hotX, hotY int32) uintptr
	sdlCreateSystemCursor    func(id int32) uintptr
	sdlFreeCursor            func(c uintptr)
	sdlGetCursor             func() uintptr
	sdlGetDefaultCursor      func() uintptr
	sdlSetCursor             func(c uintptr)
	sdlShowCursor            func(toggle int32) int32
)

func init() {
	bind(
		"SDL_GetMouseFocus", &sdlGetMouseFocus,
		"SDL_GetMouseState", &sdlGetMouseState,
		"SDL_GetGlobalMouseState", &sdlGetGlobalMouseState,
		"SDL_GetRelativeMouseState", &sdlGetRelativeMouseState,
		"SDL_WarpMouseInWindow", &sdlWarpMouseInWindow,
		"SDL_WarpMouseGlobal", &sdlWarpMouseGlobal,
		"SDL_SetRelativeMouseMode", &sdlSetRelativeMouseMode,
		"SDL_GetRelativeMouseMode", &sdlGetRelativeMouseMode,
		"SDL_CaptureMouse", &sdlCaptureMouse,
		"SDL_CreateCursor", &sdlCreateCursor,
		"SDL_CreateSystemCursor", &sdlCreateSystemCursor,
		"SDL_FreeCursor", &sdlFreeCursor,
		"SDL_GetCursor", &sdlGetCursor,
		"SDL_GetDefaultCursor", &sdlGetDefaultCursor,
		"SDL_SetCursor", &sdlSetCursor,
		"SDL_ShowCursor", &sdlShowCursor,
	)
}

// GetMouseFocus returns the window with mouse focus.
func GetMouseFocus() Window {
	return Window(sdlGetMouseFocus())
}

// GetMouseState returns the pointer position relative to the focus window.
func GetMouseState() MouseState {
	var s MouseState
	s.Buttons = ButtonMask(sdlGetMouseState(&s.X, &s.Y))
	return s
}

// GetGlobalMouseState returns the pointer position on the desktop.
func GetGlobalMouseState() MouseState {
	var s MouseState
	s.Buttons = ButtonMask(sdlGetGlobalMouseState(&s.X, &s.Y))
	return s
}

// GetRelativeMouseState returns the motion since the previous call.
func GetRelativeMouseState() MouseState {
	var s MouseState
	s.Buttons = ButtonMask(sdlGetRelativeMouseState(&s.X, &s.Y))
	return s
}

// WarpMouseInWindow moves the pointer within w, or the focus window when w is 0.
func WarpMouseInWindow(w Window, x, y int32) {
	sdlWarpMouseInWindow(uintptr(w), x, y)
}

// WarpMouseGlobal moves the pointer in desktop coordinates.
func WarpMouseGlobal(x, y int32) error {
	return status("SDL_WarpMouseGlobal", func() int32 { return sdlWarpMouseGlobal(x, y) })
}

// SetRelativeMouseMode hides the pointer and reports only relative motion.
func SetRelativeMouseMode(enabled bool) error {
	return status("SDL_SetRelativeMouseMode", func() int32 { return sdlSetRelativeMouseMode(sdlBool(enabled)) })
}

// GetRelativeMouseMode reports whether relative mode is on.
func GetRelativeMouseMode() bool {
	return sdlGetRelativeMouseMode() == 1
}

// CaptureMouse tracks the mouse outside the focus window.
func CaptureMouse(enabled bool) error {
	return status("SDL_CaptureMouse", func() int32 { return sdlCaptureMouse(sdlBool(enabled)) })
}

// ShowCursor shows or hides the cursor.
func ShowCursor(show bool) error {
	toggle := int32(cursorDisable)
	if show {
		toggle = cursorEnable
	}
	return status("SDL_ShowCursor", func() int32 { return sdlShowCursor(toggle) })
}

// IsCursorShown reports whether the cursor is visible.
func IsCursorShown() (bool, error) {
	var rc int32
	err := status("SDL_ShowCursor", func() int32 {
		rc = sdlShowCursor(cursorQuery)
		return rc
	})
	return rc == cursorEnable, err
}

// Cursor is an SDL cursor. Cursors returned by DefaultCursor and CurrentCursor
// belong to SDL and are not freed.
type Cursor struct {
	*resource.Owner[uintptr]
}

// NewSystemCursor creates a built-in cursor; on failure the result is not Valid.
func NewSystemCursor(id SystemCursor) *Cursor {
	create := func() uintptr { return sdlCreateSystemCursor(int32(id)) }
	return &Cursor{resource.New(handleFrom("SDL_CreateSystemCursor", create), sdlFreeCursor)}
}

// MakeSystemCursor creates a built-in cursor and reports why it failed.
func MakeSystemCursor(id SystemCursor) (*Cursor, error) {
	return resource.Make(func() *Cursor { return NewSystemCursor(id) }, func() error {
		return lastError("SDL_CreateSystemCursor")
	})
}

// NewCursor creates a monochrome cursor from bit data, see PackCursor. w must
// be a multiple of 8.
func NewCursor(data, mask []byte, w, h, hotX, hotY int32) *Cursor {
	create := func() uintptr {
		if len(data) == 0 || len(data) != len(mask) {
			SetError("cursor data and mask must be non-empty and the same length")
			return 0
		}
		return sdlCreateCursor(&data[0], &mask[0], w, h, hotX, hotY)
	}
	return &Cursor{resource.New(handleFrom("SDL_CreateCursor", create), sdlFreeCursor)}
}

// MakeCursor creates a monochrome cursor and reports why it failed.
func MakeCursor(data, mask []byte, w, h, hotX, hotY int32) (*Cursor, error) {
	return resource.Make(func() *Cursor { return NewCursor(data, mask, w, h, hotX, hotY) }, func() error {
		return lastError("SDL_CreateCursor")
	})
}

// MakeCursorFromString creates a cursor from rows drawn with PackCursor's
// alphabet.
func MakeCursorFromString(rows []string, hotX, hotY int32) (*Cursor, error) {
	data, mask, w, h, err := PackCursor(rows)
	if err != nil {
		return nil, err
	}
	return MakeCursor(data, mask, w, h, hotX, hotY)
}

// DefaultCursor returns SDL's default cursor without taking ownership.
func DefaultCursor() *Cursor {
	return &Cursor{resource.Borrow(sdlGetDefaultCursor())}
}

// CurrentCursor returns the active cursor without taking ownership.
func CurrentCursor() *Cursor {
	return &Cursor{resource.Borrow(sdlGetCursor())}
}

// Move transfers ownership to a new Cursor.
func (c *Cursor) Move() *Cursor { return &Cursor{c.Owner.Move()} }

// SetCurrent makes c the active cursor.
func (c *Cursor) SetCurrent() {
	sdlSetCursor(c.Native())
}

// PackCursor converts rows of text into cursor data and mask bits:
//
//	'X' black, '.' white, ' ' transparent, 'o' inverted
//
// Every row must have the same width, which must be a multiple of 8.
func PackCursor(rows []string) (data, mask []byte, w, h int32, err error) {
	if len(rows) == 0 {
		return nil, nil, 0, 0, fmt.Errorf("cursor: no rows")
	}
	width := len(rows[0])
	if width == 0 || width%8 != 0 {
		return nil, nil, 0, 0, fmt.Errorf("cursor: width %d is not a positive multiple of 8", width)
	}

	size := width / 8 * len(rows)
	data = make([]byte, size)
	mask = make([]byte, size)
	for y, row := range rows {
		if len(row) != width {
			return nil, nil, 0, 0, fmt.Errorf("cursor: row %d has width %d, want %d", y, len(row), width)
		}
		for x := 0; x < width; x++ {
			i := y*width/8 + x/8
			bit := byte(0x80) >> (x % 8)
			switch row[x] {
			case 'X':
				data[i] |= bit
				mask[i] |= bit
			case '.':
				mask[i] |= bit
			case 'o':
				data[i] |= bit
			case ' ':
			default:
				return nil, nil, 0, 0, fmt.Errorf("cursor: unexpected %q at row %d column %d (use %s)",
					row[x], y, x, strings.Join([]string{"'X'", "'.'", "'o'", "' '"}, ", "))
			}
		}
	}
	return data, mask, int32(width), int32(len(rows)), nil
}
