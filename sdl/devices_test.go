package sdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceTypeNames(t *testing.T) {
	assert.Equal(t, "gyroscope (left)", SensorGyroL.String())
	assert.Equal(t, "unknown", SensorUnknown.String())
	assert.Equal(t, "invalid", SensorInvalid.String())
	assert.Equal(t, "direct", TouchDeviceDirect.String())
	assert.Equal(t, "invalid", TouchDeviceType(42).String())

	info := HIDDeviceInfo{VendorID: 0x054c, ProductID: 0x09cc, Manufacturer: "Sony", Product: "Wireless Controller"}
	assert.Equal(t, "054c:09cc Sony Wireless Controller", info.String())
}

func TestSensorEnumeration(t *testing.T) {
	requireSDL(t, InitSensor)

	LockSensors()
	infos := SensorInfos()
	UnlockSensors()
	assert.Len(t, infos, NumSensors())

	for _, info := range infos {
		s, err := info.Open()
		if err != nil {
			continue
		}
		id, err := s.InstanceID()
		require.NoError(t, err)

		borrowed, err := SensorFromInstanceID(id)
		require.NoError(t, err)
		assert.False(t, borrowed.Owning())
		assert.Equal(t, s.Type(), borrowed.Type())

		SensorUpdate()
		_, err = s.Data(3)
		assert.NoError(t, err)
		s.Release()
	}

	_, err := MakeSensor(NumSensors() + 10)
	assert.Error(t, err)
}

func TestTouchEnumeration(t *testing.T) {
	requireSDL(t, InitEvents)

	devices := TouchDevices()
	assert.Len(t, devices, GetNumTouchDevices())
	for _, d := range devices {
		assert.NotZero(t, d.ID())
		assert.Len(t, d.Fingers(), d.FingerCount())
	}

	_, err := MakeTouchDevice(GetNumTouchDevices() + 10)
	assert.Error(t, err)
}

func TestHIDEnumeration(t *testing.T) {
	requireSDL(t, 0)
	if !Has("SDL_hid_enumerate") {
		t.Skip("hidapi not available")
	}
	require.NoError(t, HIDInit())
	defer HIDExit()

	infos, err := HIDDeviceInfos(0, 0)
	if err != nil {
		t.Skipf("enumeration failed: %v", err)
	}
	for _, info := range infos {
		assert.NotEmpty(t, info.Path)
	}
}
