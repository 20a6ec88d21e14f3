package sdl

import (
	"github.com/ebitengine/purego"

	"github.com/bnema/sdlbind/resource"
)

var (
	sdlLoadObject   func(file string) uintptr
	sdlLoadFunction func(handle uintptr, name string) uintptr
	sdlUnloadObject func(handle uintptr)
)

func init() {
	bind(
		"SDL_LoadObject", &sdlLoadObject,
		"SDL_LoadFunction", &sdlLoadFunction,
		"SDL_UnloadObject", &sdlUnloadObject,
	)
}

// LoadObject opens a shared object through SDL.
func LoadObject(file string) (uintptr, error) {
	return handleFrom("SDL_LoadObject", func() uintptr { return sdlLoadObject(file) })()
}

// LoadFunction resolves name in an object opened with LoadObject.
func LoadFunction(handle uintptr, name string) (uintptr, error) {
	return handleFrom("SDL_LoadFunction", func() uintptr { return sdlLoadFunction(handle, name) })()
}

// UnloadObject closes an object opened with LoadObject.
func UnloadObject(handle uintptr) {
	sdlUnloadObject(handle)
}

// SharedObject is a shared library opened through SDL.
type SharedObject struct {
	*resource.Owner[uintptr]
}

// NewSharedObject opens file; on failure the result is not Valid.
func NewSharedObject(file string) *SharedObject {
	load := func() uintptr { return sdlLoadObject(file) }
	return &SharedObject{resource.New(handleFrom("SDL_LoadObject", load), sdlUnloadObject)}
}

// MakeSharedObject opens file and reports why it failed.
func MakeSharedObject(file string) (*SharedObject, error) {
	return resource.Make(func() *SharedObject { return NewSharedObject(file) }, func() error {
		return lastError("SDL_LoadObject")
	})
}

// Move transfers ownership to a new SharedObject.
func (o *SharedObject) Move() *SharedObject { return &SharedObject{o.Owner.Move()} }

// Function returns the address of name.
func (o *SharedObject) Function(name string) (uintptr, error) {
	if !o.Valid() {
		return 0, &Error{Op: "SDL_LoadFunction", Err: ErrClosed}
	}
	return LoadFunction(o.Native(), name)
}

// Bind resolves name and stores a callable Go function in fptr, which must
// point to a func variable whose signature matches the C function:
//
//	var abs func(int32) int32
//	err := libc.Bind(&abs, "abs")
//
// The function must not be called after the object is released.
func (o *SharedObject) Bind(fptr any, name string) error {
	addr, err := o.Function(name)
	if err != nil {
		return err
	}
	purego.RegisterFunc(fptr, addr)
	return nil
}
