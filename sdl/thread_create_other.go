//go:build !windows

package sdl

var (
	sdlCreateThread              func(fn uintptr, name string, data uintptr) uintptr
	sdlCreateThreadWithStackSize func(fn uintptr, name string, stackSize uintptr, data uintptr) uintptr
)

func init() {
	bind(
		"SDL_CreateThread", &sdlCreateThread,
		"SDL_CreateThreadWithStackSize", &sdlCreateThreadWithStackSize,
	)
}

// The thread constructors are variables so the platform signatures above
// stay behind one shape.
var (
	nativeCreateThread = func(fn uintptr, name string, data uintptr) uintptr {
		return sdlCreateThread(fn, name, data)
	}
	nativeCreateThreadWithStackSize = func(fn uintptr, name string, stackSize, data uintptr) uintptr {
		return sdlCreateThreadWithStackSize(fn, name, stackSize, data)
	}
)
