package sdl

import (
	"math"
	"time"

	"github.com/bnema/sdlbind/resource"
)

const (
	mutexTimedOut = 1
	mutexMaxWait  = math.MaxUint32
)

var (
	sdlCreateMutex  func() uintptr
	sdlDestroyMutex func(m uintptr)
	sdlLockMutex    func(m uintptr) int32
	sdlTryLockMutex func(m uintptr) int32
	sdlUnlockMutex  func(m uintptr) int32

	sdlCreateSemaphore  func(initial uint32) uintptr
	sdlDestroySemaphore func(s uintptr)
	sdlSemWait          func(s uintptr) int32
	sdlSemTryWait       func(s uintptr) int32
	sdlSemWaitTimeout   func(s uintptr, ms uint32) int32
	sdlSemPost          func(s uintptr) int32
	sdlSemValue         func(s uintptr) uint32

	sdlCreateCond      func() uintptr
	sdlDestroyCond     func(c uintptr)
	sdlCondSignal      func(c uintptr) int32
	sdlCondBroadcast   func(c uintptr) int32
	sdlCondWait        func(c, m uintptr) int32
	sdlCondWaitTimeout func(c, m uintptr, ms uint32) int32
)

func init() {
	bind(
		"SDL_CreateMutex", &sdlCreateMutex,
		"SDL_DestroyMutex", &sdlDestroyMutex,
		"SDL_LockMutex", &sdlLockMutex,
		"SDL_TryLockMutex", &sdlTryLockMutex,
		"SDL_UnlockMutex", &sdlUnlockMutex,

		"SDL_CreateSemaphore", &sdlCreateSemaphore,
		"SDL_DestroySemaphore", &sdlDestroySemaphore,
		"SDL_SemWait", &sdlSemWait,
		"SDL_SemTryWait", &sdlSemTryWait,
		"SDL_SemWaitTimeout", &sdlSemWaitTimeout,
		"SDL_SemPost", &sdlSemPost,
		"SDL_SemValue", &sdlSemValue,

		"SDL_CreateCond", &sdlCreateCond,
		"SDL_DestroyCond", &sdlDestroyCond,
		"SDL_CondSignal", &sdlCondSignal,
		"SDL_CondBroadcast", &sdlCondBroadcast,
		"SDL_CondWait", &sdlCondWait,
		"SDL_CondWaitTimeout", &sdlCondWaitTimeout,
	)
}

// handleFrom adapts a native constructor returning NULL on failure.
func handleFrom(op string, create func() uintptr) func() (uintptr, error) {
	return func() (uintptr, error) {
		var h uintptr
		err := check(op, func() bool {
			h = create()
			return h != 0
		})
		return h, err
	}
}

func millis(d time.Duration) uint32 {
	switch {
	case d <= 0:
		return 0
	case d >= time.Duration(mutexMaxWait-1)*time.Millisecond:
		return mutexMaxWait - 1
	}
	return uint32(d / time.Millisecond)
}

// Mutex is an SDL mutex. SDL mutexes are recursive: the owning thread may lock
// again and must unlock once per lock. Callers that lock from Go should pin the
// goroutine with runtime.LockOSThread for the duration.
type Mutex struct {
	*resource.Owner[uintptr]
}

// NewMutex creates a mutex; on failure the result is not Valid.
func NewMutex() *Mutex {
	return &Mutex{resource.New(handleFrom("SDL_CreateMutex", sdlCreateMutex), sdlDestroyMutex)}
}

// MakeMutex creates a mutex and reports why it failed.
func MakeMutex() (*Mutex, error) {
	return resource.Make(NewMutex, func() error { return lastError("SDL_CreateMutex") })
}

// Move transfers ownership to a new Mutex.
func (m *Mutex) Move() *Mutex { return &Mutex{m.Owner.Move()} }

// Lock blocks until the mutex is held.
func (m *Mutex) Lock() error {
	return status("SDL_LockMutex", func() int32 { return sdlLockMutex(m.Native()) })
}

// TryLock takes the mutex if it is free and returns ErrTimedOut otherwise.
func (m *Mutex) TryLock() error {
	return timed("SDL_TryLockMutex", mutexTimedOut, func() int32 { return sdlTryLockMutex(m.Native()) })
}

// Unlock releases one level of locking.
func (m *Mutex) Unlock() error {
	return status("SDL_UnlockMutex", func() int32 { return sdlUnlockMutex(m.Native()) })
}

// Semaphore is an SDL counting semaphore.
type Semaphore struct {
	*resource.Owner[uintptr]
}

// NewSemaphore creates a semaphore with the given initial count.
func NewSemaphore(initial uint32) *Semaphore {
	create := func() uintptr { return sdlCreateSemaphore(initial) }
	return &Semaphore{resource.New(handleFrom("SDL_CreateSemaphore", create), sdlDestroySemaphore)}
}

// MakeSemaphore creates a semaphore and reports why it failed.
func MakeSemaphore(initial uint32) (*Semaphore, error) {
	return resource.Make(func() *Semaphore { return NewSemaphore(initial) }, func() error {
		return lastError("SDL_CreateSemaphore")
	})
}

// Move transfers ownership to a new Semaphore.
func (s *Semaphore) Move() *Semaphore { return &Semaphore{s.Owner.Move()} }

// Acquire blocks until the count is positive and decrements it.
func (s *Semaphore) Acquire() error {
	return status("SDL_SemWait", func() int32 { return sdlSemWait(s.Native()) })
}

// TryAcquire decrements the count if it is positive and returns ErrTimedOut
// otherwise.
func (s *Semaphore) TryAcquire() error {
	return timed("SDL_SemTryWait", mutexTimedOut, func() int32 { return sdlSemTryWait(s.Native()) })
}

// AcquireTimeout is Acquire bounded by d, with millisecond resolution.
func (s *Semaphore) AcquireTimeout(d time.Duration) error {
	return timed("SDL_SemWaitTimeout", mutexTimedOut, func() int32 {
		return sdlSemWaitTimeout(s.Native(), millis(d))
	})
}

// Post increments the count, waking one waiter.
func (s *Semaphore) Post() error {
	return status("SDL_SemPost", func() int32 { return sdlSemPost(s.Native()) })
}

// Value returns the current count.
func (s *Semaphore) Value() uint32 {
	return sdlSemValue(s.Native())
}

// Cond is an SDL condition variable.
type Cond struct {
	*resource.Owner[uintptr]
}

// NewCond creates a condition variable; on failure the result is not Valid.
func NewCond() *Cond {
	return &Cond{resource.New(handleFrom("SDL_CreateCond", sdlCreateCond), sdlDestroyCond)}
}

// MakeCond creates a condition variable and reports why it failed.
func MakeCond() (*Cond, error) {
	return resource.Make(NewCond, func() error { return lastError("SDL_CreateCond") })
}

// Move transfers ownership to a new Cond.
func (c *Cond) Move() *Cond { return &Cond{c.Owner.Move()} }

// Signal wakes one waiter.
func (c *Cond) Signal() error {
	return status("SDL_CondSignal", func() int32 { return sdlCondSignal(c.Native()) })
}

// Broadcast wakes every waiter.
func (c *Cond) Broadcast() error {
	return status("SDL_CondBroadcast", func() int32 { return sdlCondBroadcast(c.Native()) })
}

// Wait atomically unlocks m and waits for a signal. m must be locked by the
// calling thread.
func (c *Cond) Wait(m *Mutex) error {
	return status("SDL_CondWait", func() int32 { return sdlCondWait(c.Native(), m.Native()) })
}

// WaitTimeout is Wait bounded by d and returns ErrTimedOut on expiry.
func (c *Cond) WaitTimeout(m *Mutex, d time.Duration) error {
	return timed("SDL_CondWaitTimeout", mutexTimedOut, func() int32 {
		return sdlCondWaitTimeout(c.Native(), m.Native(), millis(d))
	})
}
