// Package sdl binds the SDL2 C library without cgo.
//
// The library is opened at runtime by Load. Until then, and for any entry point
// the installed SDL2 does not export, calls fail with ErrNotLoaded or
// ErrUnsupported instead of crashing.
//
// Fallible calls return an error built from SDL's last-error message, read on
// the same OS thread as the failing call. Calls whose failure cannot be told
// apart from an empty result, such as GetClipboardText or GetHint, return the
// raw value.
//
// Native objects are wrapped in types embedding resource.Owner. Each has a
// NewX constructor that fails silently, leaving the wrapper invalid, and a MakeX
// factory that reports the failure. Release or Close frees the object exactly
// once; Move hands it to a new wrapper.
package sdl
