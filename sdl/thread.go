package sdl

import (
	"sync/atomic"

	"github.com/bnema/sdlbind/internal/callback"
	"github.com/bnema/sdlbind/resource"
)

// ThreadID identifies an OS thread.
type ThreadID uint64

// ThreadPriority is a scheduling hint for the calling thread.
type ThreadPriority int32

const (
	ThreadPriorityLow ThreadPriority = iota
	ThreadPriorityNormal
	ThreadPriorityHigh
	ThreadPriorityTimeCritical
)

func (p ThreadPriority) String() string {
	switch p {
	case ThreadPriorityLow:
		return "low"
	case ThreadPriorityNormal:
		return "normal"
	case ThreadPriorityHigh:
		return "high"
	case ThreadPriorityTimeCritical:
		return "time-critical"
	}
	return "unknown"
}

var (
	sdlGetThreadName     func(t uintptr) uintptr
	sdlGetThreadID       func(t uintptr) uintptr
	sdlThreadID          func() uintptr
	sdlWaitThread        func(t uintptr, status *int32)
	sdlDetachThread      func(t uintptr)
	sdlSetThreadPriority func(priority int32) int32

	sdlTLSCreate  func() uint32
	sdlTLSGet     func(id uint32) uintptr
	sdlTLSSet     func(id uint32, value uintptr, destructor uintptr) int32
	sdlTLSCleanup func()
)

func init() {
	bind(
		"SDL_GetThreadName", &sdlGetThreadName,
		"SDL_GetThreadID", &sdlGetThreadID,
		"SDL_ThreadID", &sdlThreadID,
		"SDL_WaitThread", &sdlWaitThread,
		"SDL_DetachThread", &sdlDetachThread,
		"SDL_SetThreadPriority", &sdlSetThreadPriority,

		"SDL_TLSCreate", &sdlTLSCreate,
		"SDL_TLSGet", &sdlTLSGet,
		"SDL_TLSSet", &sdlTLSSet,
		"SDL_TLSCleanup", &sdlTLSCleanup,
	)
}

// CurrentThreadID returns the id of the calling OS thread.
func CurrentThreadID() ThreadID {
	return ThreadID(sdlThreadID())
}

// SetThreadPriority sets the priority of the calling OS thread.
func SetThreadPriority(priority ThreadPriority) error {
	return status("SDL_SetThreadPriority", func() int32 { return sdlSetThreadPriority(int32(priority)) })
}

// ThreadFunc is the body of a Thread. Its result is the thread's exit status.
type ThreadFunc func() int32

// Thread runs a Go function on an SDL-created OS thread. Releasing a Thread
// that has not been joined or detached waits for it to finish. A Thread the
// garbage collector finds unreleased is detached instead.
type Thread struct {
	*resource.Owner[uintptr]
	name string
}

func createThread(name string, stackSize uintptr, fn ThreadFunc) func() (uintptr, error) {
	return func() (uintptr, error) {
		id := callbacks.Register(func() int32 { return fn() })
		op := "SDL_CreateThread"
		if stackSize > 0 {
			op = "SDL_CreateThreadWithStackSize"
		}

		var h uintptr
		err := check(op, func() bool {
			if stackSize > 0 {
				h = nativeCreateThreadWithStackSize(threadTrampoline(), name, stackSize, uintptr(id))
			} else {
				h = nativeCreateThread(threadTrampoline(), name, uintptr(id))
			}
			return h != 0
		})
		if err != nil {
			callbacks.Unregister(id)
		}
		return h, err
	}
}

func joinThread(h uintptr) {
	sdlWaitThread(h, nil)
}

func detachThread(h uintptr) {
	sdlDetachThread(h)
}

func newThread(name string, stackSize uintptr, fn ThreadFunc) *Thread {
	owner := resource.New(createThread(name, stackSize, fn), joinThread)
	return &Thread{Owner: owner.WithFinalize(detachThread), name: name}
}

// NewThread starts fn on a new thread; on failure the result is not Valid.
func NewThread(name string, fn ThreadFunc) *Thread {
	return newThread(name, 0, fn)
}

// MakeThread starts fn on a new thread and reports why it failed.
func MakeThread(name string, fn ThreadFunc) (*Thread, error) {
	return resource.Make(func() *Thread { return NewThread(name, fn) }, func() error {
		return lastError("SDL_CreateThread")
	})
}

// MakeThreadWithStackSize is MakeThread with an explicit stack size in bytes.
func MakeThreadWithStackSize(name string, stackSize uintptr, fn ThreadFunc) (*Thread, error) {
	return resource.Make(func() *Thread {
		return newThread(name, stackSize, fn)
	}, func() error {
		return lastError("SDL_CreateThreadWithStackSize")
	})
}

// Move transfers ownership to a new Thread.
func (t *Thread) Move() *Thread { return &Thread{Owner: t.Owner.Move(), name: t.name} }

// ID returns the thread's id, or 0 once joined or detached.
func (t *Thread) ID() ThreadID {
	h := t.Native()
	if h == 0 {
		return 0
	}
	return ThreadID(sdlGetThreadID(h))
}

// Name returns the name SDL reports for the thread.
func (t *Thread) Name() (string, error) {
	h := t.Native()
	if h == 0 {
		return "", &Error{Op: "SDL_GetThreadName", Err: ErrClosed}
	}
	p := sdlGetThreadName(h)
	if p == 0 {
		return "", errorf("SDL_GetThreadName", nil, "thread has no name")
	}
	return goString(p), nil
}

// Joinable reports whether Join may be called: the thread is still owned and
// is not the calling thread.
func (t *Thread) Joinable() bool {
	return t.Valid() && t.ID() != CurrentThreadID()
}

// Join waits for the thread to finish and returns its exit status.
func (t *Thread) Join() (int32, error) {
	if !t.Joinable() {
		return 0, &Error{Op: "SDL_WaitThread", Err: ErrClosed}
	}
	h, _ := t.Take()
	var exitCode int32
	sdlWaitThread(h, &exitCode)
	return exitCode, nil
}

// Detach lets the thread clean up after itself when it finishes.
func (t *Thread) Detach() error {
	h, ok := t.Take()
	if !ok {
		return &Error{Op: "SDL_DetachThread", Err: ErrClosed}
	}
	sdlDetachThread(h)
	return nil
}

// ThreadLocal is an SDL thread-local storage slot holding Go values. Each OS
// thread sees its own value. Releasing it clears the calling thread's value;
// other threads drop theirs when they exit. SDL has no way to free a slot id.
type ThreadLocal[T any] struct {
	*resource.Owner[uint32]
}

// liveTLS counts unreleased ThreadLocals. SDL_TLSCleanup frees every slot of
// the calling thread, so it only runs once none is left.
var liveTLS atomic.Int32

func createTLS() (uint32, error) {
	var id uint32
	err := check("SDL_TLSCreate", func() bool {
		id = sdlTLSCreate()
		return id != 0
	})
	if err == nil {
		liveTLS.Add(1)
	}
	return id, err
}

func releaseTLS(id uint32) {
	if prev := callback.ID(sdlTLSGet(id)); prev != 0 {
		sdlTLSSet(id, 0, 0)
		callbacks.Unregister(prev)
	}
	if liveTLS.Add(-1) == 0 {
		sdlTLSCleanup()
	}
}

// NewThreadLocal creates a slot; on failure the result is not Valid.
func NewThreadLocal[T any]() *ThreadLocal[T] {
	return &ThreadLocal[T]{resource.New(createTLS, releaseTLS)}
}

// MakeThreadLocal creates a slot and reports why it failed.
func MakeThreadLocal[T any]() (*ThreadLocal[T], error) {
	return resource.Make(NewThreadLocal[T], func() error { return lastError("SDL_TLSCreate") })
}

// Move transfers ownership to a new ThreadLocal.
func (l *ThreadLocal[T]) Move() *ThreadLocal[T] { return &ThreadLocal[T]{l.Owner.Move()} }

// Get returns the calling thread's value.
func (l *ThreadLocal[T]) Get() (T, bool) {
	var zero T
	id := l.Native()
	if id == 0 {
		return zero, false
	}
	v, ok := lookupCallback[T](sdlTLSGet(id))
	if !ok {
		return zero, false
	}
	return v, true
}

// Set stores v for the calling thread, replacing any previous value. Goroutines
// using a ThreadLocal should be pinned with runtime.LockOSThread.
func (l *ThreadLocal[T]) Set(v T) error {
	id := l.Native()
	if id == 0 {
		return &Error{Op: "SDL_TLSSet", Err: ErrClosed}
	}

	prev := callback.ID(sdlTLSGet(id))
	key := callbacks.Register(v)
	err := status("SDL_TLSSet", func() int32 {
		return sdlTLSSet(id, uintptr(key), tlsDestructorTrampoline())
	})
	if err != nil {
		callbacks.Unregister(key)
		return err
	}
	if prev != 0 {
		callbacks.Unregister(prev)
	}
	return nil
}
