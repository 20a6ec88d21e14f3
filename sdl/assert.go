package sdl

import (
	"sync"

	"github.com/bnema/sdlbind/internal/callback"
)

// AssertState is what an assertion handler tells SDL to do next.
type AssertState int32

const (
	AssertionRetry AssertState = iota
	AssertionBreak
	AssertionAbort
	AssertionIgnore
	AssertionAlwaysIgnore
)

func (s AssertState) String() string {
	switch s {
	case AssertionRetry:
		return "retry"
	case AssertionBreak:
		return "break"
	case AssertionAbort:
		return "abort"
	case AssertionIgnore:
		return "ignore"
	case AssertionAlwaysIgnore:
		return "always-ignore"
	}
	return "unknown"
}

// AssertData describes one SDL_assert site.
type AssertData struct {
	AlwaysIgnore bool
	TriggerCount uint32
	Condition    string
	Filename     string
	Line         int
	Function     string
}

// assertData mirrors SDL_AssertData.
type assertData struct {
	alwaysIgnore int32
	triggerCount uint32
	condition    uintptr
	filename     uintptr
	linenum      int32
	function     uintptr
	next         uintptr
}

func (d *assertData) data() AssertData {
	return AssertData{
		AlwaysIgnore: d.alwaysIgnore != 0,
		TriggerCount: d.triggerCount,
		Condition:    goString(d.condition),
		Filename:     goString(d.filename),
		Line:         int(d.linenum),
		Function:     goString(d.function),
	}
}

// AssertionHandler decides what happens when an assertion fails. It runs on
// the thread that failed the assertion.
type AssertionHandler func(AssertData) AssertState

var (
	sdlSetAssertionHandler        func(handler uintptr, userdata uintptr)
	sdlGetAssertionHandler        func(userdata *uintptr) uintptr
	sdlGetDefaultAssertionHandler func() uintptr
	sdlGetAssertionReport         func() uintptr
	sdlResetAssertionReport       func()
)

func init() {
	bind(
		"SDL_SetAssertionHandler", &sdlSetAssertionHandler,
		"SDL_GetAssertionHandler", &sdlGetAssertionHandler,
		"SDL_GetDefaultAssertionHandler", &sdlGetDefaultAssertionHandler,
		"SDL_GetAssertionReport", &sdlGetAssertionReport,
		"SDL_ResetAssertionReport", &sdlResetAssertionReport,
	)
}

var assertHandler struct {
	sync.Mutex
	id callback.ID
}

// SetAssertionHandler routes failed assertions to fn. A nil fn puts SDL's
// default handler back.
func SetAssertionHandler(fn AssertionHandler) error {
	if !IsLoaded() {
		return &Error{Op: "SDL_SetAssertionHandler", Err: ErrNotLoaded}
	}

	assertHandler.Lock()
	defer assertHandler.Unlock()

	var id callback.ID
	if fn == nil {
		sdlSetAssertionHandler(0, 0)
	} else {
		id = callbacks.Register(fn)
		sdlSetAssertionHandler(assertTrampoline(), uintptr(id))
	}
	if assertHandler.id != 0 {
		callbacks.Unregister(assertHandler.id)
	}
	assertHandler.id = id
	return nil
}

// UsingDefaultAssertionHandler reports whether SDL's own handler is active.
func UsingDefaultAssertionHandler() bool {
	if !IsLoaded() {
		return false
	}
	var userdata uintptr
	return sdlGetAssertionHandler(&userdata) == sdlGetDefaultAssertionHandler()
}

// AssertionReport lists every assertion that has failed since the last
// ResetAssertionReport.
func AssertionReport() []AssertData {
	var report []AssertData
	for p := sdlGetAssertionReport(); p != 0; {
		d := (*assertData)(cPointer(p))
		report = append(report, d.data())
		p = d.next
	}
	return report
}

// ResetAssertionReport clears the report and the trigger counts.
func ResetAssertionReport() {
	sdlResetAssertionReport()
}

// dispatchAssertion hands one failed assertion to the registered handler. An
// unknown userdata means the handler was replaced while SDL still held the old
// one, so the assertion is ignored.
func dispatchAssertion(data, userdata uintptr) int32 {
	fn, ok := lookupCallback[AssertionHandler](userdata)
	if !ok || data == 0 {
		return int32(AssertionIgnore)
	}
	return int32(fn((*assertData)(cPointer(data)).data()))
}
