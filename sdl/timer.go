package sdl

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/sdlbind/internal/callback"
	"github.com/bnema/sdlbind/resource"
)

// TimerID identifies a timer added with AddTimer.
type TimerID int32

var (
	sdlGetTicks64              func() uint64
	sdlGetPerformanceCounter   func() uint64
	sdlGetPerformanceFrequency func() uint64
	sdlDelay                   func(ms uint32)
	sdlAddTimer                func(interval uint32, cb uintptr, param uintptr) int32
	sdlRemoveTimer             func(id int32) int32
)

func init() {
	bind(
		"SDL_GetTicks64", &sdlGetTicks64,
		"SDL_GetPerformanceCounter", &sdlGetPerformanceCounter,
		"SDL_GetPerformanceFrequency", &sdlGetPerformanceFrequency,
		"SDL_Delay", &sdlDelay,
		"SDL_AddTimer", &sdlAddTimer,
		"SDL_RemoveTimer", &sdlRemoveTimer,
	)
}

// GetTicks64 returns milliseconds since SDL was initialized.
func GetTicks64() uint64 {
	return sdlGetTicks64()
}

// Ticks is GetTicks64 as a Duration.
func Ticks() time.Duration {
	return time.Duration(sdlGetTicks64()) * time.Millisecond
}

// GetPerformanceCounter returns the high resolution counter.
func GetPerformanceCounter() uint64 {
	return sdlGetPerformanceCounter()
}

// GetPerformanceFrequency returns the counter's ticks per second.
func GetPerformanceFrequency() uint64 {
	return sdlGetPerformanceFrequency()
}

// Delay blocks the calling OS thread for at least d.
func Delay(d time.Duration) {
	sdlDelay(millis(d))
}

// timerHandler is what the timer trampoline dispatches to. fire returns the
// next interval in milliseconds, or 0 to stop.
type timerHandler interface {
	fire(interval uint32) uint32
}

// TimerCallbackFunc has SDL's timer callback contract: it receives the current
// interval and returns the next one, with 0 cancelling the timer.
type TimerCallbackFunc func(interval uint32) uint32

func (f TimerCallbackFunc) fire(interval uint32) uint32 { return f(interval) }

var timerRegistrations sync.Map // TimerID -> callback.ID

// AddTimer schedules fn on SDL's timer thread. The registration is dropped by
// RemoveTimer.
func AddTimer(interval uint32, fn TimerCallbackFunc) (TimerID, error) {
	id, key, err := addTimer(interval, fn)
	if err != nil {
		return 0, err
	}
	timerRegistrations.Store(id, key)
	return id, nil
}

// RemoveTimer cancels a timer added with AddTimer. It reports whether the timer
// was still pending.
func RemoveTimer(id TimerID) bool {
	if key, ok := timerRegistrations.LoadAndDelete(id); ok {
		defer callbacks.Unregister(key.(callback.ID))
	}
	return sdlRemoveTimer(int32(id)) != 0
}

func addTimer(interval uint32, h timerHandler) (TimerID, callback.ID, error) {
	key := callbacks.Register(h)
	var id int32
	err := check("SDL_AddTimer", func() bool {
		id = sdlAddTimer(interval, timerTrampoline(), uintptr(key))
		return id > 0
	})
	if err != nil {
		callbacks.Unregister(key)
		return 0, 0, err
	}
	return TimerID(id), key, nil
}

// Timer runs a Go function after an interval, once or repeatedly, until it is
// released. The callback runs on SDL's timer thread.
type Timer struct {
	*resource.Owner[TimerID]
	core *timerCore
}

// timerCore is shared by a Timer and everything it is moved into, so the
// registered callback never needs to change.
type timerCore struct {
	interval time.Duration
	repeat   bool
	fn       func()
	fired    atomic.Int64
}

func (c *timerCore) fire(uint32) uint32 {
	c.fired.Add(1)
	c.fn()
	if !c.repeat {
		return 0
	}
	return millis(c.interval)
}

// NewTimer starts a timer; on failure the result is not Valid.
func NewTimer(interval time.Duration, repeat bool, fn func()) *Timer {
	core := &timerCore{interval: interval, repeat: repeat, fn: fn}
	var key callback.ID
	owner := resource.New(func() (TimerID, error) {
		id, k, err := addTimer(millis(interval), core)
		key = k
		return id, err
	}, func(id TimerID) {
		sdlRemoveTimer(int32(id))
		callbacks.Unregister(key)
	})
	return &Timer{Owner: owner, core: core}
}

// MakeTimer starts a timer and reports why it failed.
func MakeTimer(interval time.Duration, repeat bool, fn func()) (*Timer, error) {
	return resource.Make(func() *Timer { return NewTimer(interval, repeat, fn) }, func() error {
		return lastError("SDL_AddTimer")
	})
}

// Move transfers ownership to a new Timer. The callback keeps running without
// interruption.
func (t *Timer) Move() *Timer {
	return &Timer{Owner: t.Owner.Move(), core: t.core}
}

// ID returns the SDL timer id, or 0 once released.
func (t *Timer) ID() TimerID { return t.Native() }

// Interval returns the configured interval.
func (t *Timer) Interval() time.Duration { return t.core.interval }

// Repeat reports whether the timer re-arms after firing.
func (t *Timer) Repeat() bool { return t.core.repeat }

// Fired returns how many times the callback has run.
func (t *Timer) Fired() int64 { return t.core.fired.Load() }
