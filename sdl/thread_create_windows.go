//go:build windows

package sdl

// The exported Windows entry points take the C runtime's thread begin/end
// functions; passing NULL lets SDL pick them.
var (
	sdlCreateThread              func(fn uintptr, name string, data uintptr, begin, end uintptr) uintptr
	sdlCreateThreadWithStackSize func(fn uintptr, name string, stackSize uintptr, data uintptr, begin, end uintptr) uintptr
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
		return sdlCreateThread(fn, name, data, 0, 0)
	}
	nativeCreateThreadWithStackSize = func(fn uintptr, name string, stackSize, data uintptr) uintptr {
		return sdlCreateThreadWithStackSize(fn, name, stackSize, data, 0, 0)
	}
)
