// Package resource provides a single generic owner for native handles that must
// be released exactly once.
package resource

import (
	"runtime"
	"sync"
)

// Owner holds a native handle together with the function that releases it.
// The zero handle means "nothing owned". An Owner with a nil release function
// is a non-owning view.
type Owner[H comparable] struct {
	mu       sync.Mutex
	native   H
	release  func(H)
	finalize func(H)
}

// New calls acquire and adopts the handle it returns. Acquisition failure is
// silent: the result holds the zero handle and Valid reports false. Use Make
// when the failure reason matters.
func New[H comparable](acquire func() (H, error), release func(H)) *Owner[H] {
	h, err := acquire()
	if err != nil {
		var zero H
		h = zero
	}
	return Adopt(h, release)
}

// Adopt takes ownership of an already-acquired handle.
func Adopt[H comparable](h H, release func(H)) *Owner[H] {
	o := &Owner[H]{native: h, release: release}
	o.track()
	return o
}

// Borrow wraps h without taking ownership; releasing the result does nothing.
func Borrow[H comparable](h H) *Owner[H] {
	return &Owner[H]{native: h}
}

// Validator is implemented by Owner and by every type that embeds one.
type Validator interface {
	Valid() bool
}

// Make runs ctor and converts an invalid result into the error reported by
// lastError. The calling goroutine stays on one OS thread for the duration so
// that thread-local error state read by lastError belongs to ctor's call.
func Make[T Validator](ctor func() T, lastError func() error) (T, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	v := ctor()
	if !v.Valid() {
		var zero T
		return zero, lastError()
	}
	return v, nil
}

// WithFinalize sets the function used when the garbage collector finds o still
// holding a handle, in place of the release function. Finalizers share one
// goroutine, so a release that can block needs a non-blocking alternative here.
func (o *Owner[H]) WithFinalize(fn func(H)) *Owner[H] {
	if o == nil {
		return o
	}
	o.mu.Lock()
	o.finalize = fn
	o.mu.Unlock()
	return o
}

// Native returns the held handle, or the zero handle.
func (o *Owner[H]) Native() H {
	if o == nil {
		var zero H
		return zero
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.native
}

// Valid reports whether a handle is held.
func (o *Owner[H]) Valid() bool {
	var zero H
	return o.Native() != zero
}

// Owning reports whether releasing o will release the handle.
func (o *Owner[H]) Owning() bool {
	if o == nil {
		return false
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.release != nil
}

// Take relinquishes the handle without releasing it. The caller becomes
// responsible for it and o is left empty.
func (o *Owner[H]) Take() (H, bool) {
	var zero H
	if o == nil {
		return zero, false
	}

	o.mu.Lock()
	h := o.native
	o.native = zero
	o.mu.Unlock()

	runtime.SetFinalizer(o, nil)
	return h, h != zero
}

// Move transfers the handle into a new Owner and leaves o empty.
func (o *Owner[H]) Move() *Owner[H] {
	if o == nil {
		return &Owner[H]{}
	}

	o.mu.Lock()
	release, finalize := o.release, o.finalize
	o.mu.Unlock()

	h, _ := o.Take()
	return Adopt(h, release).WithFinalize(finalize)
}

// MoveFrom releases whatever o holds and then takes src's handle, leaving src
// empty. Moving an owner into itself does nothing.
func (o *Owner[H]) MoveFrom(src *Owner[H]) {
	if o == nil || o == src {
		return
	}

	o.Release()
	if src == nil {
		return
	}

	src.mu.Lock()
	release, finalize := src.release, src.finalize
	src.mu.Unlock()
	h, _ := src.Take()

	o.mu.Lock()
	o.native = h
	o.release = release
	o.finalize = finalize
	o.mu.Unlock()
	o.track()
}

// Release frees the handle if one is held. Subsequent calls do nothing.
func (o *Owner[H]) Release() {
	if o == nil {
		return
	}

	var zero H
	o.mu.Lock()
	h := o.native
	release := o.release
	o.native = zero
	o.mu.Unlock()

	runtime.SetFinalizer(o, nil)
	if h != zero && release != nil {
		release(h)
	}
}

// Close releases the handle. It always returns nil.
func (o *Owner[H]) Close() error {
	o.Release()
	return nil
}

// track installs a finalizer so a forgotten owner still releases its handle.
func (o *Owner[H]) track() {
	var zero H
	if o.native == zero || o.release == nil {
		return
	}
	runtime.SetFinalizer(o, (*Owner[H]).finalizeHandle)
}

// finalizeHandle is the finalizer installed by track.
func (o *Owner[H]) finalizeHandle() {
	var zero H
	o.mu.Lock()
	h := o.native
	fn := o.finalize
	if fn == nil {
		fn = o.release
	}
	o.native = zero
	o.mu.Unlock()

	if h != zero && fn != nil {
		fn(h)
	}
}
