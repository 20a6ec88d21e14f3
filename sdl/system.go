package sdl

import (
	"time"
	"unsafe"
)

var (
	sdlGetCPUCount         func() int32
	sdlGetCPUCacheLineSize func() int32
	sdlGetSystemRAM        func() int32
	sdlSIMDGetAlignment    func() uintptr
	sdlHasRDTSC            func() int32
	sdlHasAltiVec          func() int32
	sdlHasMMX              func() int32
	sdlHas3DNow            func() int32
	sdlHasSSE              func() int32
	sdlHasSSE2             func() int32
	sdlHasSSE3             func() int32
	sdlHasSSE41            func() int32
	sdlHasSSE42            func() int32
	sdlHasAVX              func() int32
	sdlHasAVX2             func() int32
	sdlHasAVX512F          func() int32
	sdlHasARMSIMD          func() int32
	sdlHasNEON             func() int32
	sdlHasLSX              func() int32
	sdlHasLASX             func() int32
	sdlGetPowerInfo        func(secs, pct *int32) int32
	sdlGetBasePath         func() uintptr
	sdlGetPrefPath         func(org, app string) uintptr
	sdlGetPreferredLocales func() uintptr
	sdlOpenURL             func(url string) int32
)

func init() {
	bind(
		"SDL_GetCPUCount", &sdlGetCPUCount,
		"SDL_GetCPUCacheLineSize", &sdlGetCPUCacheLineSize,
		"SDL_GetSystemRAM", &sdlGetSystemRAM,
		"SDL_SIMDGetAlignment", &sdlSIMDGetAlignment,
		"SDL_HasRDTSC", &sdlHasRDTSC,
		"SDL_HasAltiVec", &sdlHasAltiVec,
		"SDL_HasMMX", &sdlHasMMX,
		"SDL_Has3DNow", &sdlHas3DNow,
		"SDL_HasSSE", &sdlHasSSE,
		"SDL_HasSSE2", &sdlHasSSE2,
		"SDL_HasSSE3", &sdlHasSSE3,
		"SDL_HasSSE41", &sdlHasSSE41,
		"SDL_HasSSE42", &sdlHasSSE42,
		"SDL_HasAVX", &sdlHasAVX,
		"SDL_HasAVX2", &sdlHasAVX2,
		"SDL_HasAVX512F", &sdlHasAVX512F,
		"SDL_HasARMSIMD", &sdlHasARMSIMD,
		"SDL_HasNEON", &sdlHasNEON,
		"SDL_HasLSX", &sdlHasLSX,
		"SDL_HasLASX", &sdlHasLASX,
		"SDL_GetPowerInfo", &sdlGetPowerInfo,
		"SDL_GetBasePath", &sdlGetBasePath,
		"SDL_GetPrefPath", &sdlGetPrefPath,
		"SDL_GetPreferredLocales", &sdlGetPreferredLocales,
		"SDL_OpenURL", &sdlOpenURL,
	)
}

// GetCPUCount returns the number of logical CPU cores.
func GetCPUCount() int { return int(sdlGetCPUCount()) }

// GetCPUCacheLineSize returns the L1 cache line size in bytes.
func GetCPUCacheLineSize() int { return int(sdlGetCPUCacheLineSize()) }

// GetSystemRAM returns the amount of RAM in MiB.
func GetSystemRAM() int { return int(sdlGetSystemRAM()) }

// SIMDGetAlignment returns the alignment SIMD allocations need.
func SIMDGetAlignment() uintptr { return sdlSIMDGetAlignment() }

// CPUFeature is a CPU capability SDL can detect.
type CPUFeature int

const (
	CPURDTSC CPUFeature = iota
	CPUAltiVec
	CPUMMX
	CPU3DNow
	CPUSSE
	CPUSSE2
	CPUSSE3
	CPUSSE41
	CPUSSE42
	CPUAVX
	CPUAVX2
	CPUAVX512F
	CPUARMSIMD
	CPUNEON
	CPULSX
	CPULASX
)

var cpuFeatures = []struct {
	name  string
	query *func() int32
}{
	CPURDTSC:   {"RDTSC", &sdlHasRDTSC},
	CPUAltiVec: {"AltiVec", &sdlHasAltiVec},
	CPUMMX:     {"MMX", &sdlHasMMX},
	CPU3DNow:   {"3DNow", &sdlHas3DNow},
	CPUSSE:     {"SSE", &sdlHasSSE},
	CPUSSE2:    {"SSE2", &sdlHasSSE2},
	CPUSSE3:    {"SSE3", &sdlHasSSE3},
	CPUSSE41:   {"SSE4.1", &sdlHasSSE41},
	CPUSSE42:   {"SSE4.2", &sdlHasSSE42},
	CPUAVX:     {"AVX", &sdlHasAVX},
	CPUAVX2:    {"AVX2", &sdlHasAVX2},
	CPUAVX512F: {"AVX-512F", &sdlHasAVX512F},
	CPUARMSIMD: {"ARM SIMD", &sdlHasARMSIMD},
	CPUNEON:    {"NEON", &sdlHasNEON},
	CPULSX:     {"LSX", &sdlHasLSX},
	CPULASX:    {"LASX", &sdlHasLASX},
}

func (f CPUFeature) String() string {
	if f >= 0 && int(f) < len(cpuFeatures) {
		return cpuFeatures[f].name
	}
	return "unknown"
}

// HasCPUFeature reports whether the CPU supports f.
func HasCPUFeature(f CPUFeature) bool {
	if f < 0 || int(f) >= len(cpuFeatures) {
		return false
	}
	return (*cpuFeatures[f].query)() == 1
}

// CPUFeatures returns every supported feature.
func CPUFeatures() []CPUFeature {
	var out []CPUFeature
	for f := range cpuFeatures {
		if HasCPUFeature(CPUFeature(f)) {
			out = append(out, CPUFeature(f))
		}
	}
	return out
}

// PowerState is the battery state.
type PowerState int32

const (
	PowerStateUnknown PowerState = iota
	PowerStateOnBattery
	PowerStateNoBattery
	PowerStateCharging
	PowerStateCharged
)

func (s PowerState) String() string {
	switch s {
	case PowerStateOnBattery:
		return "on battery"
	case PowerStateNoBattery:
		return "no battery"
	case PowerStateCharging:
		return "charging"
	case PowerStateCharged:
		return "charged"
	}
	return "unknown"
}

// PowerInfo is a battery snapshot. Unknown values are zero.
type PowerInfo struct {
	State     PowerState
	Remaining time.Duration
	// Percentage is in 0..1.
	Percentage float32
}

// GetPowerInfo returns the current battery state.
func GetPowerInfo() PowerInfo {
	secs, pct := int32(-1), int32(-1)
	state := sdlGetPowerInfo(&secs, &pct)
	if state < 0 {
		state = int32(PowerStateUnknown)
	}
	return PowerInfo{
		State:      PowerState(state),
		Remaining:  time.Duration(max(secs, 0)) * time.Second,
		Percentage: float32(max(pct, 0)) / 100,
	}
}

// GetBasePath returns the directory the application was run from, with a
// trailing separator.
func GetBasePath() (string, error) {
	var p uintptr
	err := check("SDL_GetBasePath", func() bool {
		p = sdlGetBasePath()
		return p != 0
	})
	return takeString(p), err
}

// GetPrefPath returns a writable per-user directory for org and app, creating
// it if needed.
func GetPrefPath(org, app string) (string, error) {
	var p uintptr
	err := check("SDL_GetPrefPath", func() bool {
		p = sdlGetPrefPath(org, app)
		return p != 0
	})
	return takeString(p), err
}

// Locale is a language and optional country, such as "en" and "GB".
type Locale struct {
	Language string
	Country  string
}

func (l Locale) String() string {
	if l.Country == "" {
		return l.Language
	}
	return l.Language + "_" + l.Country
}

// GetPreferredLocales returns the user's locales, most preferred first.
func GetPreferredLocales() ([]Locale, error) {
	var p uintptr
	err := check("SDL_GetPreferredLocales", func() bool {
		p = sdlGetPreferredLocales()
		return p != 0
	})
	if err != nil {
		return nil, err
	}
	defer sdlFree(p)

	type rawLocale struct {
		language uintptr
		country  uintptr
	}
	var locales []Locale
	for i := 0; ; i++ {
		raw := (*rawLocale)(cPointer(p + uintptr(i)*unsafe.Sizeof(rawLocale{})))
		if raw.language == 0 {
			break
		}
		locales = append(locales, Locale{Language: goString(raw.language), Country: goString(raw.country)})
	}
	return locales, nil
}

// OpenURL opens url with the platform's default handler.
func OpenURL(url string) error {
	return status("SDL_OpenURL", func() int32 { return sdlOpenURL(url) })
}
