package sdl

import (
	"sync"

	"github.com/ebitengine/purego"

	"github.com/bnema/sdlbind/internal/callback"
)

// Go values reachable from native callbacks are kept here and passed to SDL as
// the userdata pointer. Each callback signature has exactly one native
// trampoline for the lifetime of the process.
var callbacks callback.Table

func lookupCallback[F any](userdata uintptr) (F, bool) {
	v, ok := callbacks.Lookup(callback.ID(userdata))
	if !ok {
		var zero F
		return zero, false
	}
	fn, ok := v.(F)
	return fn, ok
}

// Uint32 (*SDL_TimerCallback)(Uint32 interval, void *param)
var timerTrampoline = sync.OnceValue(func() uintptr {
	return purego.NewCallback(func(interval uint32, param uintptr) uint32 {
		h, ok := lookupCallback[timerHandler](param)
		if !ok {
			return 0
		}
		return h.fire(interval)
	})
})

// int (*SDL_ThreadFunction)(void *data)
var threadTrampoline = sync.OnceValue(func() uintptr {
	return purego.NewCallback(func(data uintptr) int32 {
		v, ok := callbacks.Unregister(callback.ID(data))
		if !ok {
			return -1
		}
		fn, ok := v.(func() int32)
		if !ok {
			return -1
		}
		return fn()
	})
})

// void (*SDL_HintCallback)(void *userdata, const char *name, const char *oldValue, const char *newValue)
var hintTrampoline = sync.OnceValue(func() uintptr {
	return purego.NewCallback(func(userdata, name, oldValue, newValue uintptr) {
		fn, ok := lookupCallback[HintFunc](userdata)
		if !ok {
			return
		}
		fn(goString(name), goString(oldValue), goString(newValue))
	})
})

// void (*SDL_LogOutputFunction)(void *userdata, int category, SDL_LogPriority priority, const char *message)
var logTrampoline = sync.OnceValue(func() uintptr {
	return purego.NewCallback(func(userdata uintptr, category int32, priority int32, message uintptr) {
		fn, ok := lookupCallback[LogOutputFunc](userdata)
		if !ok {
			return
		}
		fn(LogCategory(category), LogPriority(priority), goString(message))
	})
})

// void (*destructor)(void *) for SDL_TLSSet. The value stored in TLS is the
// callback id itself, so the destructor only drops the registration.
var tlsDestructorTrampoline = sync.OnceValue(func() uintptr {
	return purego.NewCallback(func(value uintptr) {
		callbacks.Unregister(callback.ID(value))
	})
})

// SDL_AssertState (*SDL_AssertionHandler)(const SDL_AssertData *data, void *userdata)
var assertTrampoline = sync.OnceValue(func() uintptr {
	return purego.NewCallback(dispatchAssertion)
})
