package sdl

import (
	"strings"
	"testing"

	"github.com/bnema/sdlbind/internal/native"
)

// replace swaps a native function variable for the duration of a test.
func replace[F any](t *testing.T, fptr *F, fn F) {
	t.Helper()
	old := *fptr
	*fptr = fn
	t.Cleanup(func() { *fptr = old })
}

// fakeChannel stands in for SDL's error slot.
type fakeChannel struct {
	msg     string
	cleared int
}

// fakeSDL marks the package as loaded without a real library and routes the
// error functions to a fakeChannel. Every other entry point keeps its stub
// until a test replaces it.
func fakeSDL(t *testing.T) *fakeChannel {
	t.Helper()

	libMu.Lock()
	prev := lib
	lib = &native.Library{}
	libMu.Unlock()
	t.Cleanup(func() {
		libMu.Lock()
		lib = prev
		libMu.Unlock()
	})

	ch := &fakeChannel{}
	replace(t, &sdlGetError, func() string { return ch.msg })
	replace(t, &sdlSetError, func(format string) int32 {
		ch.msg = strings.ReplaceAll(format, "%%", "%")
		return -1
	})
	replace(t, &sdlClearError, func() {
		ch.cleared++
		ch.msg = ""
	})
	return ch
}

// handleCounter hands out fake native handles and counts how often each one is
// released.
type handleCounter struct {
	ch       *fakeChannel
	fail     bool
	next     uintptr
	acquired int
	released map[uintptr]int
}

const fakeFailure = "Out of memory"

func newHandleCounter(ch *fakeChannel) *handleCounter {
	return &handleCounter{ch: ch, released: make(map[uintptr]int)}
}

func (c *handleCounter) create() uintptr {
	if c.fail {
		c.ch.msg = fakeFailure
		return 0
	}
	c.acquired++
	c.next++
	return 0x1000 + c.next
}

func (c *handleCounter) destroy(h uintptr) {
	c.released[h]++
}

func (c *handleCounter) totalReleased() int {
	n := 0
	for _, count := range c.released {
		n += count
	}
	return n
}
