package sdl

import "github.com/bnema/sdlbind/resource"

// TouchID identifies a touch device.
type TouchID int64

// FingerID identifies one finger on a touch device.
type FingerID int64

const (
	// TouchMouseID is the mouse instance id used for synthetic mouse events
	// generated from touch input.
	TouchMouseID uint32 = 0xFFFFFFFF
	// MouseTouchID is the touch id used for synthetic touch events generated
	// from mouse input.
	MouseTouchID TouchID = -1
)

// TouchDeviceType describes how touch coordinates relate to the screen.
type TouchDeviceType int32

const (
	TouchDeviceInvalid TouchDeviceType = iota - 1
	TouchDeviceDirect
	TouchDeviceIndirectAbsolute
	TouchDeviceIndirectRelative
)

func (t TouchDeviceType) String() string {
	switch t {
	case TouchDeviceDirect:
		return "direct"
	case TouchDeviceIndirectAbsolute:
		return "indirect-absolute"
	case TouchDeviceIndirectRelative:
		return "indirect-relative"
	}
	return "invalid"
}

// Finger is one contact point, with coordinates normalized to 0..1.
type Finger struct {
	ID       FingerID
	X        float32
	Y        float32
	Pressure float32
}

var (
	sdlGetNumTouchDevices func() int32
	sdlGetTouchDevice     func(index int32) int64
	sdlGetTouchName       func(index int32) string
	sdlGetTouchDeviceType func(id int64) int32
	sdlGetNumTouchFingers func(id int64) int32
	sdlGetTouchFinger     func(id int64, index int32) uintptr
)

func init() {
	bind(
		"SDL_GetNumTouchDevices", &sdlGetNumTouchDevices,
		"SDL_GetTouchDevice", &sdlGetTouchDevice,
		"SDL_GetTouchName", &sdlGetTouchName,
		"SDL_GetTouchDeviceType", &sdlGetTouchDeviceType,
		"SDL_GetNumTouchFingers", &sdlGetNumTouchFingers,
		"SDL_GetTouchFinger", &sdlGetTouchFinger,
	)
}

// GetNumTouchDevices returns the number of registered touch devices.
func GetNumTouchDevices() int {
	n := sdlGetNumTouchDevices()
	if n < 0 {
		return 0
	}
	return int(n)
}

// TouchDevice is a touch device looked up by index. SDL owns the device, so
// releasing it frees nothing.
type TouchDevice struct {
	*resource.Owner[TouchID]
	index int
}

// NewTouchDevice looks up the device at index; on failure the result is not
// Valid.
func NewTouchDevice(index int) *TouchDevice {
	acquire := func() (TouchID, error) {
		var id int64
		err := check("SDL_GetTouchDevice", func() bool {
			id = sdlGetTouchDevice(int32(index))
			return id != 0
		})
		return TouchID(id), err
	}
	return &TouchDevice{Owner: resource.New(acquire, nil), index: index}
}

// MakeTouchDevice looks up the device at index and reports why it failed.
func MakeTouchDevice(index int) (*TouchDevice, error) {
	return resource.Make(func() *TouchDevice { return NewTouchDevice(index) }, func() error {
		return lastError("SDL_GetTouchDevice")
	})
}

// TouchDevices returns every device that can be looked up.
func TouchDevices() []*TouchDevice {
	n := GetNumTouchDevices()
	devices := make([]*TouchDevice, 0, n)
	for i := 0; i < n; i++ {
		if d := NewTouchDevice(i); d.Valid() {
			devices = append(devices, d)
		}
	}
	return devices
}

// Move transfers the device to a new TouchDevice.
func (d *TouchDevice) Move() *TouchDevice {
	return &TouchDevice{Owner: d.Owner.Move(), index: d.index}
}

// Index returns the index the device was looked up with.
func (d *TouchDevice) Index() int { return d.index }

// ID returns the device id.
func (d *TouchDevice) ID() TouchID { return d.Native() }

// Name returns the device name, "" when SDL has none.
func (d *TouchDevice) Name() string {
	return sdlGetTouchName(int32(d.index))
}

// Type returns the device type.
func (d *TouchDevice) Type() TouchDeviceType {
	return TouchDeviceType(sdlGetTouchDeviceType(int64(d.Native())))
}

// FingerCount returns the number of active fingers.
func (d *TouchDevice) FingerCount() int {
	n := sdlGetNumTouchFingers(int64(d.Native()))
	if n < 0 {
		return 0
	}
	return int(n)
}

// Finger returns a copy of the finger at index.
func (d *TouchDevice) Finger(index int) (Finger, error) {
	var p uintptr
	err := check("SDL_GetTouchFinger", func() bool {
		p = sdlGetTouchFinger(int64(d.Native()), int32(index))
		return p != 0
	})
	if err != nil {
		return Finger{}, err
	}
	return *(*Finger)(cPointer(p)), nil
}

// Fingers returns every active finger.
func (d *TouchDevice) Fingers() []Finger {
	n := d.FingerCount()
	fingers := make([]Finger, 0, n)
	for i := 0; i < n; i++ {
		f, err := d.Finger(i)
		if err != nil {
			break
		}
		fingers = append(fingers, f)
	}
	return fingers
}
