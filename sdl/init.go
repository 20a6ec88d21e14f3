package sdl

import (
	"strings"

	"github.com/bnema/sdlbind/bitset"
	"github.com/bnema/sdlbind/resource"
)

// InitFlags selects SDL subsystems.
type InitFlags uint32

func (InitFlags) BitsetEnum() {}

const (
	InitTimer          InitFlags = 0x00000001
	InitAudio          InitFlags = 0x00000010
	InitVideo          InitFlags = 0x00000020
	InitJoystick       InitFlags = 0x00000200
	InitHaptic         InitFlags = 0x00001000
	InitGameController InitFlags = 0x00002000
	InitEvents         InitFlags = 0x00004000
	InitSensor         InitFlags = 0x00008000
	InitNoParachute    InitFlags = 0x00100000

	InitEverything = InitTimer | InitAudio | InitVideo | InitEvents |
		InitJoystick | InitHaptic | InitGameController | InitSensor
)

var initFlagNames = []bitset.Name[InitFlags]{
	{Flag: InitTimer, Name: "timer"},
	{Flag: InitAudio, Name: "audio"},
	{Flag: InitVideo, Name: "video"},
	{Flag: InitJoystick, Name: "joystick"},
	{Flag: InitHaptic, Name: "haptic"},
	{Flag: InitGameController, Name: "gamecontroller"},
	{Flag: InitEvents, Name: "events"},
	{Flag: InitSensor, Name: "sensor"},
	{Flag: InitNoParachute, Name: "noparachute"},
}

func (f InitFlags) String() string {
	return bitset.Format(f, initFlagNames, "none")
}

// ParseInitFlags converts subsystem names such as "video" or "sensor" into a
// mask. "everything" selects every subsystem. Unknown names are returned
// separately.
func ParseInitFlags(names []string) (InitFlags, []string) {
	var flags InitFlags
	var unknown []string
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if name == "everything" {
			bitset.OrAssign(&flags, InitEverything)
			continue
		}
		found := false
		for _, n := range initFlagNames {
			if n.Name == name {
				bitset.OrAssign(&flags, n.Flag)
				found = true
				break
			}
		}
		if !found {
			unknown = append(unknown, name)
		}
	}
	return flags, unknown
}

var (
	sdlInit          func(flags uint32) int32
	sdlInitSubSystem func(flags uint32) int32
	sdlQuitSubSystem func(flags uint32)
	sdlWasInit       func(flags uint32) uint32
	sdlQuit          func()
)

func init() {
	bind(
		"SDL_Init", &sdlInit,
		"SDL_InitSubSystem", &sdlInitSubSystem,
		"SDL_QuitSubSystem", &sdlQuitSubSystem,
		"SDL_WasInit", &sdlWasInit,
		"SDL_Quit", &sdlQuit,
	)
}

// Init initializes the given subsystems.
func Init(flags InitFlags) error {
	return status("SDL_Init", func() int32 { return sdlInit(uint32(flags)) })
}

// InitSubSystem initializes additional subsystems after Init.
func InitSubSystem(flags InitFlags) error {
	return status("SDL_InitSubSystem", func() int32 { return sdlInitSubSystem(uint32(flags)) })
}

// QuitSubSystem shuts down the given subsystems.
func QuitSubSystem(flags InitFlags) {
	sdlQuitSubSystem(uint32(flags))
}

// WasInit returns the subset of flags that is currently initialized. A zero
// mask asks for every initialized subsystem.
func WasInit(flags InitFlags) InitFlags {
	return InitFlags(sdlWasInit(uint32(flags)))
}

// IsInitialized reports whether every subsystem in flags is initialized.
func IsInitialized(flags InitFlags) bool {
	return bitset.Has(WasInit(flags), flags)
}

// Quit shuts down all subsystems.
func Quit() {
	sdlQuit()
}

// Subsystem keeps a set of subsystems initialized until released.
type Subsystem struct {
	*resource.Owner[InitFlags]
}

func acquireSubsystem(flags InitFlags) func() (InitFlags, error) {
	return func() (InitFlags, error) {
		if err := InitSubSystem(flags); err != nil {
			return 0, err
		}
		return flags, nil
	}
}

// NewSubsystem initializes flags; on failure the result is not Valid.
func NewSubsystem(flags InitFlags) *Subsystem {
	return &Subsystem{resource.New(acquireSubsystem(flags), QuitSubSystem)}
}

// MakeSubsystem initializes flags and reports why it failed.
func MakeSubsystem(flags InitFlags) (*Subsystem, error) {
	return resource.Make(func() *Subsystem { return NewSubsystem(flags) }, func() error {
		return lastError("SDL_InitSubSystem")
	})
}

// Flags returns the subsystems held.
func (s *Subsystem) Flags() InitFlags {
	return s.Native()
}

// Move transfers ownership to a new Subsystem.
func (s *Subsystem) Move() *Subsystem {
	return &Subsystem{s.Owner.Move()}
}
