//go:build windows

package sdl

import (
	"golang.org/x/sys/windows"
)

// wchar_t is UTF-16 on Windows.
type wchar = uint16

func wideToString(p uintptr) string {
	if p == 0 {
		return ""
	}
	return windows.UTF16PtrToString((*uint16)(cPointer(p)))
}

func wideBufferString(buf []wchar) string {
	return windows.UTF16ToString(buf)
}

func stringToWide(s string) []wchar {
	w, err := windows.UTF16FromString(s)
	if err != nil {
		return []wchar{0}
	}
	return w
}
