package sdl

import (
	"github.com/bnema/sdlbind/resource"
)

// SensorType is the kind of a sensor.
type SensorType int32

const (
	SensorInvalid SensorType = iota - 1
	SensorUnknown
	SensorAccel
	SensorGyro
	SensorAccelL
	SensorGyroL
	SensorAccelR
	SensorGyroR
)

func (t SensorType) String() string {
	switch t {
	case SensorInvalid:
		return "invalid"
	case SensorAccel:
		return "accelerometer"
	case SensorGyro:
		return "gyroscope"
	case SensorAccelL:
		return "accelerometer (left)"
	case SensorGyroL:
		return "gyroscope (left)"
	case SensorAccelR:
		return "accelerometer (right)"
	case SensorGyroR:
		return "gyroscope (right)"
	}
	return "unknown"
}

// StandardGravity is Earth's gravity in m/s², as reported by accelerometers at
// rest.
const StandardGravity float32 = 9.80665

// SensorID is a sensor's instance id, stable while it stays connected.
type SensorID int32

var (
	sdlLockSensors                    func()
	sdlUnlockSensors                  func()
	sdlNumSensors                     func() int32
	sdlSensorGetDeviceName            func(index int32) string
	sdlSensorGetDeviceType            func(index int32) int32
	sdlSensorGetDeviceNonPortableType func(index int32) int32
	sdlSensorGetDeviceInstanceID      func(index int32) int32
	sdlSensorOpen                     func(index int32) uintptr
	sdlSensorFromInstanceID           func(id int32) uintptr
	sdlSensorGetName                  func(s uintptr) string
	sdlSensorGetType                  func(s uintptr) int32
	sdlSensorGetNonPortableType       func(s uintptr) int32
	sdlSensorGetInstanceID            func(s uintptr) int32
	sdlSensorGetData                  func(s uintptr, data *float32, n int32) int32
	sdlSensorGetDataWithTimestamp     func(s uintptr, timestamp *uint64, data *float32, n int32) int32
	sdlSensorClose                    func(s uintptr)
	sdlSensorUpdate                   func()
)

func init() {
	bind(
		"SDL_LockSensors", &sdlLockSensors,
		"SDL_UnlockSensors", &sdlUnlockSensors,
		"SDL_NumSensors", &sdlNumSensors,
		"SDL_SensorGetDeviceName", &sdlSensorGetDeviceName,
		"SDL_SensorGetDeviceType", &sdlSensorGetDeviceType,
		"SDL_SensorGetDeviceNonPortableType", &sdlSensorGetDeviceNonPortableType,
		"SDL_SensorGetDeviceInstanceID", &sdlSensorGetDeviceInstanceID,
		"SDL_SensorOpen", &sdlSensorOpen,
		"SDL_SensorFromInstanceID", &sdlSensorFromInstanceID,
		"SDL_SensorGetName", &sdlSensorGetName,
		"SDL_SensorGetType", &sdlSensorGetType,
		"SDL_SensorGetNonPortableType", &sdlSensorGetNonPortableType,
		"SDL_SensorGetInstanceID", &sdlSensorGetInstanceID,
		"SDL_SensorGetData", &sdlSensorGetData,
		"SDL_SensorGetDataWithTimestamp", &sdlSensorGetDataWithTimestamp,
		"SDL_SensorClose", &sdlSensorClose,
		"SDL_SensorUpdate", &sdlSensorUpdate,
	)
}

// LockSensors blocks other threads from changing the sensor list.
func LockSensors() { sdlLockSensors() }

// UnlockSensors undoes LockSensors.
func UnlockSensors() { sdlUnlockSensors() }

// NumSensors returns the number of attached sensors.
func NumSensors() int {
	n := sdlNumSensors()
	if n < 0 {
		return 0
	}
	return int(n)
}

// SensorUpdate polls sensors when the event loop is not running.
func SensorUpdate() { sdlSensorUpdate() }

// SensorInfo describes an attached sensor by device index, before it is
// opened. Indexes shift when devices come and go.
type SensorInfo struct {
	Index int
}

// SensorInfos lists every attached sensor.
func SensorInfos() []SensorInfo {
	LockSensors()
	defer UnlockSensors()

	n := NumSensors()
	infos := make([]SensorInfo, n)
	for i := range infos {
		infos[i] = SensorInfo{Index: i}
	}
	return infos
}

// Name returns the device name.
func (i SensorInfo) Name() (string, error) {
	var name string
	err := check("SDL_SensorGetDeviceName", func() bool {
		name = sdlSensorGetDeviceName(int32(i.Index))
		return name != ""
	})
	return name, err
}

// Type returns the device type, SensorInvalid for a bad index.
func (i SensorInfo) Type() SensorType {
	return SensorType(sdlSensorGetDeviceType(int32(i.Index)))
}

// NonPortableType returns the platform-specific type code.
func (i SensorInfo) NonPortableType() int {
	return int(sdlSensorGetDeviceNonPortableType(int32(i.Index)))
}

// InstanceID returns the device's instance id.
func (i SensorInfo) InstanceID() (SensorID, error) {
	var id int32
	err := check("SDL_SensorGetDeviceInstanceID", func() bool {
		id = sdlSensorGetDeviceInstanceID(int32(i.Index))
		return id >= 0
	})
	return SensorID(id), err
}

// Open opens the sensor.
func (i SensorInfo) Open() (*Sensor, error) {
	return MakeSensor(i.Index)
}

// Sensor is an opened sensor.
type Sensor struct {
	*resource.Owner[uintptr]
}

// NewSensor opens the sensor at index; on failure the result is not Valid.
func NewSensor(index int) *Sensor {
	open := func() uintptr { return sdlSensorOpen(int32(index)) }
	return &Sensor{resource.New(handleFrom("SDL_SensorOpen", open), sdlSensorClose)}
}

// MakeSensor opens the sensor at index and reports why it failed.
func MakeSensor(index int) (*Sensor, error) {
	return resource.Make(func() *Sensor { return NewSensor(index) }, func() error {
		return lastError("SDL_SensorOpen")
	})
}

// SensorFromInstanceID returns an already opened sensor without taking
// ownership of it.
func SensorFromInstanceID(id SensorID) (*Sensor, error) {
	var h uintptr
	err := check("SDL_SensorFromInstanceID", func() bool {
		h = sdlSensorFromInstanceID(int32(id))
		return h != 0
	})
	if err != nil {
		return nil, err
	}
	return &Sensor{resource.Borrow(h)}, nil
}

// Move transfers ownership to a new Sensor.
func (s *Sensor) Move() *Sensor { return &Sensor{s.Owner.Move()} }

// Name returns the sensor name.
func (s *Sensor) Name() (string, error) {
	var name string
	err := check("SDL_SensorGetName", func() bool {
		name = sdlSensorGetName(s.Native())
		return name != ""
	})
	return name, err
}

// Type returns the sensor type.
func (s *Sensor) Type() SensorType {
	return SensorType(sdlSensorGetType(s.Native()))
}

// NonPortableType returns the platform-specific type code.
func (s *Sensor) NonPortableType() int {
	return int(sdlSensorGetNonPortableType(s.Native()))
}

// InstanceID returns the sensor's instance id.
func (s *Sensor) InstanceID() (SensorID, error) {
	var id int32
	err := check("SDL_SensorGetInstanceID", func() bool {
		id = sdlSensorGetInstanceID(s.Native())
		return id >= 0
	})
	return SensorID(id), err
}

// Data returns up to n current readings. Accelerometers report m/s² and
// gyroscopes rad/s on the x, y and z axes.
func (s *Sensor) Data(n int) ([]float32, error) {
	if n <= 0 {
		return nil, nil
	}
	values := make([]float32, n)
	err := status("SDL_SensorGetData", func() int32 {
		return sdlSensorGetData(s.Native(), &values[0], int32(n))
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

// DataWithTimestamp is Data plus the reading's timestamp in microseconds.
func (s *Sensor) DataWithTimestamp(n int) ([]float32, uint64, error) {
	if n <= 0 {
		return nil, 0, nil
	}
	values := make([]float32, n)
	var ts uint64
	err := status("SDL_SensorGetDataWithTimestamp", func() int32 {
		return sdlSensorGetDataWithTimestamp(s.Native(), &ts, &values[0], int32(n))
	})
	if err != nil {
		return nil, 0, err
	}
	return values, ts, nil
}
