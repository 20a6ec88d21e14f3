package sdl

import "fmt"

// Version is an SDL release number.
type Version struct {
	Major uint8
	Minor uint8
	Patch uint8
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Num packs v the way the SDL_VERSIONNUM macro does. The packing is ambiguous
// once Minor reaches 10, so use AtLeast to order versions.
func (v Version) Num() int {
	return int(v.Major)*1000 + int(v.Minor)*100 + int(v.Patch)
}

// AtLeast reports whether v is major.minor.patch or newer.
func (v Version) AtLeast(major, minor, patch uint8) bool {
	if v.Major != major {
		return v.Major > major
	}
	if v.Minor != minor {
		return v.Minor > minor
	}
	return v.Patch >= patch
}

var (
	sdlGetVersion  func(v *Version)
	sdlGetRevision func() string
	sdlGetPlatform func() string
)

func init() {
	bind(
		"SDL_GetVersion", &sdlGetVersion,
		"SDL_GetRevision", &sdlGetRevision,
		"SDL_GetPlatform", &sdlGetPlatform,
	)
}

// GetVersion returns the version of the loaded library. It is the zero
// Version before Load.
func GetVersion() Version {
	var v Version
	sdlGetVersion(&v)
	return v
}

// GetRevision returns the source revision the library was built from.
func GetRevision() string {
	return sdlGetRevision()
}

// VersionAtLeast reports whether the loaded library is at least the given
// release.
func VersionAtLeast(major, minor, patch uint8) bool {
	return GetVersion().AtLeast(major, minor, patch)
}
