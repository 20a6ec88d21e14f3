//go:build windows

package native

import (
	"golang.org/x/sys/windows"
)

// DefaultNames lists the file names SDL2 is usually installed under.
func DefaultNames() []string {
	return []string{"SDL2.dll"}
}

func openLibrary(path string) (uintptr, error) {
	handle, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, err
	}
	return uintptr(handle), nil
}

func lookupSymbol(handle uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), name)
}

func closeLibrary(handle uintptr) error {
	return windows.FreeLibrary(windows.Handle(handle))
}
