package sdl

import (
	"sync"

	"github.com/bnema/sdlbind/internal/native"
)

// symbol is one native entry point and the Go variable it is bound to.
type symbol struct {
	name string
	fptr any
}

var (
	libMu   sync.RWMutex
	lib     *native.Library
	symbols []symbol
)

// bind registers function variables for Load. Until Load succeeds every
// registered variable holds a stub, so calls fail with ErrNotLoaded instead of
// crashing.
func bind(pairs ...any) {
	for i := 0; i+1 < len(pairs); i += 2 {
		name := pairs[i].(string)
		fptr := pairs[i+1]
		native.Stub(fptr)
		symbols = append(symbols, symbol{name: name, fptr: fptr})
	}
}

// Load opens the SDL2 shared library and binds every entry point this package
// uses. Candidates are tried in order; with none, the platform's usual names are
// tried. Symbols the installed SDL2 lacks stay unbound and the functions using
// them report ErrUnsupported.
//
// Load must complete before any other function of this package is used from
// another goroutine.
func Load(candidates ...string) error {
	libMu.Lock()
	defer libMu.Unlock()

	if lib != nil {
		return nil
	}

	l, err := native.Open(candidates...)
	if err != nil {
		return &Error{Op: "Load", Message: err.Error(), Err: ErrNotLoaded}
	}
	for _, s := range symbols {
		l.Bind(s.fptr, s.name)
	}
	lib = l
	return nil
}

// Unload restores the stubs and closes the library. Timers, threads and
// callbacks created through this package must be gone before calling it.
func Unload() error {
	libMu.Lock()
	defer libMu.Unlock()

	if lib == nil {
		return nil
	}
	for _, s := range symbols {
		native.Stub(s.fptr)
	}
	err := lib.Close()
	lib = nil
	return err
}

// IsLoaded reports whether Load has succeeded.
func IsLoaded() bool {
	libMu.RLock()
	defer libMu.RUnlock()
	return lib != nil
}

// LibraryPath returns the name the loaded library was opened with.
func LibraryPath() string {
	libMu.RLock()
	defer libMu.RUnlock()
	return lib.Path()
}

// MissingSymbols lists the entry points the loaded library does not export.
func MissingSymbols() []string {
	libMu.RLock()
	defer libMu.RUnlock()
	return lib.MissingSymbols()
}

// Has reports whether the loaded library exports the named entry point.
func Has(name string) bool {
	libMu.RLock()
	defer libMu.RUnlock()
	return lib != nil && !lib.Missing(name)
}
