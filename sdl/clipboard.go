package sdl

var (
	sdlGetClipboardText        func() uintptr
	sdlSetClipboardText        func(text string) int32
	sdlHasClipboardText        func() int32
	sdlGetPrimarySelectionText func() uintptr
	sdlSetPrimarySelectionText func(text string) int32
	sdlHasPrimarySelectionText func() int32
)

func init() {
	bind(
		"SDL_GetClipboardText", &sdlGetClipboardText,
		"SDL_SetClipboardText", &sdlSetClipboardText,
		"SDL_HasClipboardText", &sdlHasClipboardText,
		"SDL_GetPrimarySelectionText", &sdlGetPrimarySelectionText,
		"SDL_SetPrimarySelectionText", &sdlSetPrimarySelectionText,
		"SDL_HasPrimarySelectionText", &sdlHasPrimarySelectionText,
	)
}

// GetClipboardText returns the clipboard contents. Failure and an empty
// clipboard both yield "".
func GetClipboardText() string {
	return takeString(sdlGetClipboardText())
}

// SetClipboardText replaces the clipboard contents.
func SetClipboardText(text string) error {
	return status("SDL_SetClipboardText", func() int32 { return sdlSetClipboardText(text) })
}

// HasClipboardText reports whether the clipboard holds non-empty text.
func HasClipboardText() bool {
	return sdlHasClipboardText() == 1
}

// GetPrimarySelectionText returns the X11/Wayland primary selection. Failure
// and an empty selection both yield "".
func GetPrimarySelectionText() string {
	return takeString(sdlGetPrimarySelectionText())
}

// SetPrimarySelectionText replaces the primary selection.
func SetPrimarySelectionText(text string) error {
	return status("SDL_SetPrimarySelectionText", func() int32 { return sdlSetPrimarySelectionText(text) })
}

// HasPrimarySelectionText reports whether the primary selection holds
// non-empty text.
func HasPrimarySelectionText() bool {
	return sdlHasPrimarySelectionText() == 1
}
