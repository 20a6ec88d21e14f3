package sdl

var (
	sdlAtomicTryLock func(lock *int32) int32
	sdlAtomicLock    func(lock *int32)
	sdlAtomicUnlock  func(lock *int32)
	sdlAtomicCAS     func(a *int32, oldval, newval int32) int32
	sdlAtomicSet     func(a *int32, v int32) int32
	sdlAtomicGet     func(a *int32) int32
	sdlAtomicAdd     func(a *int32, v int32) int32
)

func init() {
	bind(
		"SDL_AtomicTryLock", &sdlAtomicTryLock,
		"SDL_AtomicLock", &sdlAtomicLock,
		"SDL_AtomicUnlock", &sdlAtomicUnlock,
		"SDL_AtomicCAS", &sdlAtomicCAS,
		"SDL_AtomicSet", &sdlAtomicSet,
		"SDL_AtomicGet", &sdlAtomicGet,
		"SDL_AtomicAdd", &sdlAtomicAdd,
	)
}

// SpinLock is an SDL spin lock. The zero value is unlocked. It must not be
// copied after first use.
type SpinLock struct {
	v int32
}

// TryLock takes the lock if it is free.
func (l *SpinLock) TryLock() bool {
	return sdlAtomicTryLock(&l.v) != 0
}

// Lock spins until the lock is held.
func (l *SpinLock) Lock() {
	sdlAtomicLock(&l.v)
}

// Unlock releases the lock.
func (l *SpinLock) Unlock() {
	sdlAtomicUnlock(&l.v)
}

// AtomicInt is an integer manipulated through SDL's atomic operations, for
// values shared with native code. The zero value is 0.
type AtomicInt struct {
	v int32
}

// CompareAndSwap sets the value to newval if it equals oldval.
func (a *AtomicInt) CompareAndSwap(oldval, newval int32) bool {
	return sdlAtomicCAS(&a.v, oldval, newval) != 0
}

// Swap stores v and returns the previous value.
func (a *AtomicInt) Swap(v int32) int32 {
	return sdlAtomicSet(&a.v, v)
}

// Load returns the value.
func (a *AtomicInt) Load() int32 {
	return sdlAtomicGet(&a.v)
}

// Add adds v and returns the previous value.
func (a *AtomicInt) Add(v int32) int32 {
	return sdlAtomicAdd(&a.v, v)
}

// Ptr returns the address SDL operates on, for passing to native code.
func (a *AtomicInt) Ptr() *int32 {
	return &a.v
}
