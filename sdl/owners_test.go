package sdl

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/sdlbind/internal/callback"
)

// owned is the part of every wrapper the lifecycle tests need.
type owned interface {
	Valid() bool
	Release()
}

type ownerCase struct {
	name    string
	op      string
	install func(t *testing.T, c *handleCounter)
	make    func() (owned, error)
	move    func(owned) owned
}

func ownerCases() []ownerCase {
	return []ownerCase{
		{
			name: "mutex",
			op:   "SDL_CreateMutex",
			install: func(t *testing.T, c *handleCounter) {
				replace(t, &sdlCreateMutex, c.create)
				replace(t, &sdlDestroyMutex, c.destroy)
			},
			make: func() (owned, error) { return MakeMutex() },
			move: func(o owned) owned { return o.(*Mutex).Move() },
		},
		{
			name: "semaphore",
			op:   "SDL_CreateSemaphore",
			install: func(t *testing.T, c *handleCounter) {
				replace(t, &sdlCreateSemaphore, func(uint32) uintptr { return c.create() })
				replace(t, &sdlDestroySemaphore, c.destroy)
			},
			make: func() (owned, error) { return MakeSemaphore(1) },
			move: func(o owned) owned { return o.(*Semaphore).Move() },
		},
		{
			name: "cond",
			op:   "SDL_CreateCond",
			install: func(t *testing.T, c *handleCounter) {
				replace(t, &sdlCreateCond, c.create)
				replace(t, &sdlDestroyCond, c.destroy)
			},
			make: func() (owned, error) { return MakeCond() },
			move: func(o owned) owned { return o.(*Cond).Move() },
		},
		{
			name: "thread",
			op:   "SDL_CreateThread",
			install: func(t *testing.T, c *handleCounter) {
				replace(t, &nativeCreateThread, func(fn uintptr, name string, data uintptr) uintptr {
					h := c.create()
					if h != 0 {
						callbacks.Unregister(callback.ID(data))
					}
					return h
				})
				replace(t, &sdlWaitThread, func(h uintptr, _ *int32) { c.destroy(h) })
			},
			make: func() (owned, error) { return MakeThread("worker", func() int32 { return 0 }) },
			move: func(o owned) owned { return o.(*Thread).Move() },
		},
		{
			name: "timer",
			op:   "SDL_AddTimer",
			install: func(t *testing.T, c *handleCounter) {
				replace(t, &sdlAddTimer, func(uint32, uintptr, uintptr) int32 { return int32(c.create()) })
				replace(t, &sdlRemoveTimer, func(id int32) int32 {
					c.destroy(uintptr(id))
					return 1
				})
			},
			make: func() (owned, error) { return MakeTimer(time.Hour, false, func() {}) },
			move: func(o owned) owned { return o.(*Timer).Move() },
		},
		{
			name: "cursor",
			op:   "SDL_CreateSystemCursor",
			install: func(t *testing.T, c *handleCounter) {
				replace(t, &sdlCreateSystemCursor, func(int32) uintptr { return c.create() })
				replace(t, &sdlFreeCursor, c.destroy)
			},
			make: func() (owned, error) { return MakeSystemCursor(SystemCursorHand) },
			move: func(o owned) owned { return o.(*Cursor).Move() },
		},
		{
			name: "sensor",
			op:   "SDL_SensorOpen",
			install: func(t *testing.T, c *handleCounter) {
				replace(t, &sdlSensorOpen, func(int32) uintptr { return c.create() })
				replace(t, &sdlSensorClose, c.destroy)
			},
			make: func() (owned, error) { return MakeSensor(0) },
			move: func(o owned) owned { return o.(*Sensor).Move() },
		},
		{
			name: "rwops",
			op:   "SDL_RWFromFile",
			install: func(t *testing.T, c *handleCounter) {
				replace(t, &sdlRWFromFile, func(string, string) uintptr { return c.create() })
				replace(t, &sdlRWclose, func(h uintptr) int32 {
					c.destroy(h)
					return 0
				})
			},
			make: func() (owned, error) { return RWFromFile("data.bin", "rb") },
			move: func(o owned) owned { return o.(*RWops).Move() },
		},
		{
			name: "shared object",
			op:   "SDL_LoadObject",
			install: func(t *testing.T, c *handleCounter) {
				replace(t, &sdlLoadObject, func(string) uintptr { return c.create() })
				replace(t, &sdlUnloadObject, c.destroy)
			},
			make: func() (owned, error) { return MakeSharedObject("libplugin.so") },
			move: func(o owned) owned { return o.(*SharedObject).Move() },
		},
		{
			name: "hid device",
			op:   "SDL_hid_open",
			install: func(t *testing.T, c *handleCounter) {
				replace(t, &sdlHIDOpen, func(uint16, uint16, *wchar) uintptr { return c.create() })
				replace(t, &sdlHIDClose, c.destroy)
			},
			make: func() (owned, error) { return OpenHID(0x046d, 0xc52b, "") },
			move: func(o owned) owned { return o.(*HIDDevice).Move() },
		},
		{
			name: "subsystem",
			op:   "SDL_InitSubSystem",
			install: func(t *testing.T, c *handleCounter) {
				replace(t, &sdlInitSubSystem, func(uint32) int32 {
					if c.create() == 0 {
						return -1
					}
					return 0
				})
				replace(t, &sdlQuitSubSystem, func(flags uint32) { c.destroy(uintptr(flags)) })
			},
			make: func() (owned, error) { return MakeSubsystem(InitTimer) },
			move: func(o owned) owned { return o.(*Subsystem).Move() },
		},
		{
			name: "thread local",
			op:   "SDL_TLSCreate",
			install: func(t *testing.T, c *handleCounter) {
				replace(t, &sdlTLSCreate, func() uint32 { return uint32(c.create()) })
				replace(t, &sdlTLSCleanup, func() {})
				replace(t, &sdlTLSSet, func(id uint32, _, _ uintptr) int32 {
					c.destroy(uintptr(id))
					return 0
				})
				// Each slot holds a value, so release clears it through sdlTLSSet.
				replace(t, &sdlTLSGet, func(id uint32) uintptr {
					return uintptr(callbacks.Register(id))
				})
			},
			make: func() (owned, error) { return MakeThreadLocal[int]() },
			move: func(o owned) owned { return o.(*ThreadLocal[int]).Move() },
		},
	}
}

func TestOwnerLifecycle(t *testing.T) {
	for _, tc := range ownerCases() {
		t.Run(tc.name, func(t *testing.T) {
			ch := fakeSDL(t)

			t.Run("release once", func(t *testing.T) {
				c := newHandleCounter(ch)
				tc.install(t, c)

				o, err := tc.make()
				require.NoError(t, err)
				require.True(t, o.Valid())
				assert.Equal(t, 1, c.acquired)

				o.Release()
				o.Release()
				assert.False(t, o.Valid())
				assert.Equal(t, c.acquired, c.totalReleased())
			})

			t.Run("move", func(t *testing.T) {
				c := newHandleCounter(ch)
				tc.install(t, c)

				o, err := tc.make()
				require.NoError(t, err)
				moved := tc.move(o)
				assert.False(t, o.Valid())
				assert.True(t, moved.Valid())

				o.Release()
				assert.Zero(t, c.totalReleased(), "a moved-from wrapper releases nothing")

				moved.Release()
				assert.Equal(t, 1, c.totalReleased())
			})

			t.Run("failure", func(t *testing.T) {
				c := newHandleCounter(ch)
				c.fail = true
				tc.install(t, c)

				o, err := tc.make()
				assert.Nil(t, o)
				var sdlErr *Error
				require.ErrorAs(t, err, &sdlErr)
				assert.Equal(t, tc.op, sdlErr.Op)
				assert.Equal(t, fakeFailure, sdlErr.Message)
				assert.Zero(t, c.acquired)
				assert.Zero(t, c.totalReleased())
			})
		})
	}
}

func TestTouchDeviceIsNotOwned(t *testing.T) {
	ch := fakeSDL(t)
	c := newHandleCounter(ch)
	replace(t, &sdlGetTouchDevice, func(int32) int64 { return int64(c.create()) })

	d, err := MakeTouchDevice(0)
	require.NoError(t, err)
	assert.False(t, d.Owning())
	d.Release()
	assert.Equal(t, 1, c.acquired)

	c.fail = true
	_, err = MakeTouchDevice(1)
	var sdlErr *Error
	require.ErrorAs(t, err, &sdlErr)
	assert.Equal(t, "SDL_GetTouchDevice", sdlErr.Op)
}

func TestHintCallbackLifecycle(t *testing.T) {
	fakeSDL(t)
	var added, removed int
	replace(t, &sdlAddHintCallback, func(string, uintptr, uintptr) { added++ })
	replace(t, &sdlDelHintCallback, func(string, uintptr, uintptr) { removed++ })
	before := callbacks.Len()

	cb, err := AddHintCallback(HintAppName, func(string, string, string) {})
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, before+1, callbacks.Len())

	moved := cb.Move()
	cb.Remove()
	assert.Zero(t, removed)

	moved.Remove()
	moved.Remove()
	assert.Equal(t, 1, removed)
	assert.Equal(t, before, callbacks.Len())
}

func TestUnreleasedThreadIsDetached(t *testing.T) {
	ch := fakeSDL(t)
	c := newHandleCounter(ch)
	detached := make(chan uintptr, 1)
	replace(t, &nativeCreateThread, func(_ uintptr, _ string, data uintptr) uintptr {
		callbacks.Unregister(callback.ID(data))
		return c.create()
	})
	replace(t, &sdlWaitThread, func(h uintptr, _ *int32) { c.destroy(h) })
	replace(t, &sdlDetachThread, func(h uintptr) { detached <- h })

	func() {
		_, err := MakeThread("forgotten", func() int32 { return 0 })
		require.NoError(t, err)
	}()

	require.Eventually(t, func() bool {
		runtime.GC()
		return len(detached) == 1
	}, 5*time.Second, 10*time.Millisecond)
	assert.Zero(t, c.totalReleased(), "the finalizer must not wait for the thread")
}
