package sdl

// Platform identifies the operating system SDL was built for.
type Platform int

const (
	PlatformUnknown Platform = iota
	PlatformAIX
	PlatformAndroid
	PlatformBSDI
	PlatformDreamcast
	PlatformEmscripten
	PlatformFreeBSD
	PlatformHaiku
	PlatformHPUX
	PlatformIrix
	PlatformLinux
	PlatformMiNT
	PlatformMacOS
	PlatformNaCl
	PlatformNetBSD
	PlatformOpenBSD
	PlatformOS2
	PlatformOSF
	PlatformQNX
	PlatformRISCOS
	PlatformSolaris
	PlatformWindows
	PlatformWinRT
	PlatformWinGDK
	PlatformXboxOne
	PlatformXboxSeries
	PlatformIOS
	PlatformTVOS
	PlatformPS2
	PlatformPSP
	PlatformVita
	PlatformNGage
	Platform3DS
)

// platformNames holds the strings SDL_GetPlatform reports.
var platformNames = map[string]Platform{
	"AIX":                  PlatformAIX,
	"Android":              PlatformAndroid,
	"BSDI":                 PlatformBSDI,
	"Dreamcast":            PlatformDreamcast,
	"Emscripten":           PlatformEmscripten,
	"FreeBSD":              PlatformFreeBSD,
	"Haiku":                PlatformHaiku,
	"HP-UX":                PlatformHPUX,
	"Irix":                 PlatformIrix,
	"Linux":                PlatformLinux,
	"Atari MiNT":           PlatformMiNT,
	"Mac OS X":             PlatformMacOS,
	"macOS":                PlatformMacOS,
	"NaCl":                 PlatformNaCl,
	"NetBSD":               PlatformNetBSD,
	"OpenBSD":              PlatformOpenBSD,
	"OS/2":                 PlatformOS2,
	"OSF/1":                PlatformOSF,
	"QNX Neutrino":         PlatformQNX,
	"RISC OS":              PlatformRISCOS,
	"Solaris":              PlatformSolaris,
	"Windows":              PlatformWindows,
	"WinRT":                PlatformWinRT,
	"WinGDK":               PlatformWinGDK,
	"Xbox One":             PlatformXboxOne,
	"Xbox Series X|S":      PlatformXboxSeries,
	"iOS":                  PlatformIOS,
	"tvOS":                 PlatformTVOS,
	"PlayStation 2":        PlatformPS2,
	"PlayStation Portable": PlatformPSP,
	"PlayStation Vita":     PlatformVita,
	"Nokia N-Gage":         PlatformNGage,
	"Nintendo 3DS":         Platform3DS,
}

// ParsePlatform maps a platform string to its Platform. Unrecognized strings,
// including ones from newer SDL releases, map to PlatformUnknown.
func ParsePlatform(name string) Platform {
	return platformNames[name]
}

// GetPlatform returns the platform SDL was built for.
func GetPlatform() Platform {
	return ParsePlatform(GetPlatformName())
}

// GetPlatformName returns the raw platform string.
func GetPlatformName() string {
	return sdlGetPlatform()
}

func (p Platform) String() string {
	if p == PlatformMacOS {
		return "macOS"
	}
	for name, v := range platformNames {
		if v == p {
			return name
		}
	}
	return "Unknown"
}
