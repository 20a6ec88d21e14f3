package sdl

import "fmt"

// GestureID identifies a recorded $1 gesture template.
type GestureID int64

// AllTouchDevices makes RecordGesture and LoadDollarTemplates apply to every
// touch device.
const AllTouchDevices TouchID = -1

var (
	sdlRecordGesture          func(touchID int64) int32
	sdlSaveAllDollarTemplates func(dst uintptr) int32
	sdlSaveDollarTemplate     func(gestureID int64, dst uintptr) int32
	sdlLoadDollarTemplates    func(touchID int64, src uintptr) int32
)

func init() {
	bind(
		"SDL_RecordGesture", &sdlRecordGesture,
		"SDL_SaveAllDollarTemplates", &sdlSaveAllDollarTemplates,
		"SDL_SaveDollarTemplate", &sdlSaveDollarTemplate,
		"SDL_LoadDollarTemplates", &sdlLoadDollarTemplates,
	)
}

// RecordGesture starts recording a template on touch, or on every device with
// AllTouchDevices. The recorded gesture arrives as an SDL_DOLLARRECORD event.
func RecordGesture(touch TouchID) error {
	return checkQuiet("SDL_RecordGesture", func() bool {
		return sdlRecordGesture(int64(touch)) == 1
	}, "touch device %d not found", touch)
}

// SaveAllDollarTemplates writes every recorded template to dst and returns how
// many were written.
func SaveAllDollarTemplates(dst *RWops) (int, error) {
	h, err := dst.handle("SDL_SaveAllDollarTemplates")
	if err != nil {
		return 0, err
	}
	var n int32
	err = checkQuiet("SDL_SaveAllDollarTemplates", func() bool {
		n = sdlSaveAllDollarTemplates(h)
		return n > 0
	}, "no templates written")
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// SaveDollarTemplate writes the template for gesture to dst.
func SaveDollarTemplate(gesture GestureID, dst *RWops) error {
	h, err := dst.handle("SDL_SaveDollarTemplate")
	if err != nil {
		return err
	}
	return checkQuiet("SDL_SaveDollarTemplate", func() bool {
		return sdlSaveDollarTemplate(int64(gesture), h) > 0
	}, "gesture %d not found", gesture)
}

// LoadDollarTemplates reads templates from src into touch, or into every device
// with AllTouchDevices, and returns how many were loaded.
func LoadDollarTemplates(touch TouchID, src *RWops) (int, error) {
	h, err := src.handle("SDL_LoadDollarTemplates")
	if err != nil {
		return 0, err
	}
	var n int32
	err = checkQuiet("SDL_LoadDollarTemplates", func() bool {
		n = sdlLoadDollarTemplates(int64(touch), h)
		return n > 0
	}, "no templates loaded")
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (g GestureID) String() string {
	return fmt.Sprintf("gesture-%016x", uint64(g))
}
