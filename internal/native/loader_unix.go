//go:build darwin || linux || freebsd || netbsd

package native

import (
	"runtime"

	"github.com/ebitengine/purego"
)

// DefaultNames lists the file names SDL2 is usually installed under.
func DefaultNames() []string {
	if runtime.GOOS == "darwin" {
		return []string{
			"libSDL2-2.0.0.dylib",
			"libSDL2.dylib",
			"/opt/homebrew/lib/libSDL2.dylib",
			"/usr/local/lib/libSDL2.dylib",
			"SDL2.framework/SDL2",
		}
	}
	return []string{
		"libSDL2-2.0.so.0",
		"libSDL2-2.0.so",
		"libSDL2.so",
	}
}

func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func lookupSymbol(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func closeLibrary(handle uintptr) error {
	return purego.Dlclose(handle)
}
