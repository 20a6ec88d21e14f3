// Package native locates and opens shared libraries at runtime and binds their
// symbols to Go function variables without cgo.
package native

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/ebitengine/purego"
)

var (
	// ErrNotFound is returned when none of the candidate library names could be opened.
	ErrNotFound = errors.New("native: shared library not found")
	// ErrClosed is returned by operations on a closed Library.
	ErrClosed = errors.New("native: library is closed")
)

// Library is an opened shared object.
type Library struct {
	mu      sync.Mutex
	path    string
	handle  uintptr
	missing map[string]struct{}
	closed  bool
}

// Open tries each candidate in order and returns the first library that loads.
// When no candidate is given the platform defaults from DefaultNames are used.
func Open(candidates ...string) (*Library, error) {
	if len(candidates) == 0 {
		candidates = DefaultNames()
	}

	var errs []string
	for _, name := range candidates {
		if name == "" {
			continue
		}
		handle, err := openLibrary(name)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", name, err))
			continue
		}
		return &Library{
			path:    name,
			handle:  handle,
			missing: make(map[string]struct{}),
		}, nil
	}

	if len(errs) == 0 {
		return nil, ErrNotFound
	}
	return nil, fmt.Errorf("%w (%s)", ErrNotFound, strings.Join(errs, "; "))
}

// Path returns the name the library was opened with.
func (l *Library) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Symbol resolves the address of name.
func (l *Library) Symbol(name string) (uintptr, error) {
	if l == nil {
		return 0, ErrClosed
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return 0, ErrClosed
	}
	return lookupSymbol(l.handle, name)
}

// Bind resolves name and stores a callable Go function in fptr, which must be a
// pointer to a func variable. A missing symbol leaves fptr holding a stub and is
// recorded so that callers can report it; it is not an error for the library as a
// whole.
func (l *Library) Bind(fptr any, name string) bool {
	addr, err := l.Symbol(name)
	if err != nil || addr == 0 {
		Stub(fptr)
		l.mu.Lock()
		if l.missing != nil {
			l.missing[name] = struct{}{}
		}
		l.mu.Unlock()
		return false
	}
	purego.RegisterFunc(fptr, addr)
	return true
}

// Missing reports whether a previous Bind failed to resolve name.
func (l *Library) Missing(name string) bool {
	if l == nil {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.missing[name]
	return ok
}

// MissingSymbols returns every unresolved symbol name, sorted.
func (l *Library) MissingSymbols() []string {
	if l == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	names := make([]string, 0, len(l.missing))
	for name := range l.missing {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close unloads the library. Close is idempotent.
func (l *Library) Close() error {
	if l == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	return closeLibrary(l.handle)
}

// Stub replaces the function stored in fptr with one that returns zero values,
// except that signed 32-bit results are -1 so status-code style calls read as
// failures.
func Stub(fptr any) {
	v := reflect.ValueOf(fptr)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Func {
		panic(fmt.Sprintf("native: Stub expects a pointer to a func, got %T", fptr))
	}

	fnType := v.Elem().Type()
	stub := reflect.MakeFunc(fnType, func([]reflect.Value) []reflect.Value {
		out := make([]reflect.Value, fnType.NumOut())
		for i := range out {
			zero := reflect.New(fnType.Out(i)).Elem()
			if zero.Kind() == reflect.Int32 {
				zero.SetInt(-1)
			}
			out[i] = zero
		}
		return out
	})
	v.Elem().Set(stub)
}
