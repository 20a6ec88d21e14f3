//go:build !(darwin || linux || freebsd || netbsd || windows)

package native

import "fmt"

// DefaultNames returns nothing on platforms without runtime loading support.
func DefaultNames() []string {
	return nil
}

func openLibrary(path string) (uintptr, error) {
	return 0, fmt.Errorf("runtime library loading is not supported on this platform")
}

func lookupSymbol(uintptr, string) (uintptr, error) {
	return 0, fmt.Errorf("not implemented")
}

func closeLibrary(uintptr) error {
	return nil
}
