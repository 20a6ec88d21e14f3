package sdl

import "unsafe"

var sdlFree func(p uintptr)

func init() {
	bind("SDL_free", &sdlFree)
}

// goString copies the NUL-terminated string at p.
func goString(p uintptr) string {
	if p == 0 {
		return ""
	}
	n := 0
	for *(*byte)(cPointer(p + uintptr(n))) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(cPointer(p)), n))
}

// takeString copies the SDL-allocated string at p and frees it.
func takeString(p uintptr) string {
	if p == 0 {
		return ""
	}
	s := goString(p)
	sdlFree(p)
	return s
}

// cString returns a NUL-terminated copy of s. The caller keeps the slice alive
// for as long as native code may read it.
func cString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

func sdlBool(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// cPointer converts an address returned by native code. Native memory is never
// moved by the Go runtime, and every such conversion goes through here.
func cPointer(p uintptr) unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(nil), p)
}
