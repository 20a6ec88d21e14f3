package sdl

import (
	"fmt"
	"time"

	"github.com/bnema/sdlbind/resource"
)

// hidMaxString bounds the wide-character buffers used for device strings.
const hidMaxString = 256

// hidDeviceInfo mirrors SDL_hid_device_info.
type hidDeviceInfo struct {
	path              uintptr
	vendorID          uint16
	productID         uint16
	serialNumber      uintptr
	releaseNumber     uint16
	manufacturer      uintptr
	product           uintptr
	usagePage         uint16
	usage             uint16
	interfaceNumber   int32
	interfaceClass    int32
	interfaceSubclass int32
	interfaceProtocol int32
	next              uintptr
}

// HIDDeviceInfo describes a HID device found by HIDDeviceInfos.
type HIDDeviceInfo struct {
	Path              string
	VendorID          uint16
	ProductID         uint16
	SerialNumber      string
	ReleaseNumber     uint16
	Manufacturer      string
	Product           string
	UsagePage         uint16
	Usage             uint16
	InterfaceNumber   int
	InterfaceClass    int
	InterfaceSubclass int
	InterfaceProtocol int
}

func (i HIDDeviceInfo) String() string {
	return fmt.Sprintf("%04x:%04x %s %s", i.VendorID, i.ProductID, i.Manufacturer, i.Product)
}

var (
	sdlHIDInit                  func() int32
	sdlHIDExit                  func() int32
	sdlHIDDeviceChangeCount     func() uint32
	sdlHIDEnumerate             func(vendorID, productID uint16) uintptr
	sdlHIDFreeEnumeration       func(devs uintptr)
	sdlHIDOpen                  func(vendorID, productID uint16, serial *wchar) uintptr
	sdlHIDOpenPath              func(path string, exclusive int32) uintptr
	sdlHIDWrite                 func(dev uintptr, data *byte, length uintptr) int32
	sdlHIDReadTimeout           func(dev uintptr, data *byte, length uintptr, ms int32) int32
	sdlHIDRead                  func(dev uintptr, data *byte, length uintptr) int32
	sdlHIDSetNonblocking        func(dev uintptr, nonblock int32) int32
	sdlHIDSendFeatureReport     func(dev uintptr, data *byte, length uintptr) int32
	sdlHIDGetFeatureReport      func(dev uintptr, data *byte, length uintptr) int32
	sdlHIDClose                 func(dev uintptr)
	sdlHIDGetManufacturerString func(dev uintptr, s *wchar, maxlen uintptr) int32
	sdlHIDGetProductString      func(dev uintptr, s *wchar, maxlen uintptr) int32
	sdlHIDGetSerialNumberString func(dev uintptr, s *wchar, maxlen uintptr) int32
	sdlHIDGetIndexedString      func(dev uintptr, index int32, s *wchar, maxlen uintptr) int32
	sdlHIDBLEScan               func(active int32)
)

func init() {
	bind(
		"SDL_hid_init", &sdlHIDInit,
		"SDL_hid_exit", &sdlHIDExit,
		"SDL_hid_device_change_count", &sdlHIDDeviceChangeCount,
		"SDL_hid_enumerate", &sdlHIDEnumerate,
		"SDL_hid_free_enumeration", &sdlHIDFreeEnumeration,
		"SDL_hid_open", &sdlHIDOpen,
		"SDL_hid_open_path", &sdlHIDOpenPath,
		"SDL_hid_write", &sdlHIDWrite,
		"SDL_hid_read_timeout", &sdlHIDReadTimeout,
		"SDL_hid_read", &sdlHIDRead,
		"SDL_hid_set_nonblocking", &sdlHIDSetNonblocking,
		"SDL_hid_send_feature_report", &sdlHIDSendFeatureReport,
		"SDL_hid_get_feature_report", &sdlHIDGetFeatureReport,
		"SDL_hid_close", &sdlHIDClose,
		"SDL_hid_get_manufacturer_string", &sdlHIDGetManufacturerString,
		"SDL_hid_get_product_string", &sdlHIDGetProductString,
		"SDL_hid_get_serial_number_string", &sdlHIDGetSerialNumberString,
		"SDL_hid_get_indexed_string", &sdlHIDGetIndexedString,
		"SDL_hid_ble_scan", &sdlHIDBLEScan,
	)
}

// HIDInit initializes the HID subsystem. Opening a device does this implicitly.
func HIDInit() error {
	return status("SDL_hid_init", sdlHIDInit)
}

// HIDExit frees HID subsystem resources.
func HIDExit() error {
	return status("SDL_hid_exit", sdlHIDExit)
}

// HIDDeviceChangeCount returns a counter that changes when devices come or go.
// 0 means change detection is unavailable.
func HIDDeviceChangeCount() uint32 {
	return sdlHIDDeviceChangeCount()
}

// HIDBLEScan starts or stops a Bluetooth LE scan on platforms that need one.
func HIDBLEScan(active bool) {
	sdlHIDBLEScan(sdlBool(active))
}

// HIDDeviceInfos lists devices matching vendorID and productID; 0 matches
// anything.
func HIDDeviceInfos(vendorID, productID uint16) ([]HIDDeviceInfo, error) {
	if !IsLoaded() {
		return nil, &Error{Op: "SDL_hid_enumerate", Err: ErrNotLoaded}
	}

	head := sdlHIDEnumerate(vendorID, productID)
	if head == 0 {
		return nil, nil
	}
	defer sdlHIDFreeEnumeration(head)

	var infos []HIDDeviceInfo
	for p := head; p != 0; {
		raw := (*hidDeviceInfo)(cPointer(p))
		infos = append(infos, HIDDeviceInfo{
			Path:              goString(raw.path),
			VendorID:          raw.vendorID,
			ProductID:         raw.productID,
			SerialNumber:      wideToString(raw.serialNumber),
			ReleaseNumber:     raw.releaseNumber,
			Manufacturer:      wideToString(raw.manufacturer),
			Product:           wideToString(raw.product),
			UsagePage:         raw.usagePage,
			Usage:             raw.usage,
			InterfaceNumber:   int(raw.interfaceNumber),
			InterfaceClass:    int(raw.interfaceClass),
			InterfaceSubclass: int(raw.interfaceSubclass),
			InterfaceProtocol: int(raw.interfaceProtocol),
		})
		p = raw.next
	}
	return infos, nil
}

// HIDDevice is an opened HID device.
type HIDDevice struct {
	*resource.Owner[uintptr]
}

// NewHIDDevice opens the first device matching vendorID and productID, and
// serial when it is not empty; on failure the result is not Valid.
func NewHIDDevice(vendorID, productID uint16, serial string) *HIDDevice {
	open := func() uintptr {
		if serial == "" {
			return sdlHIDOpen(vendorID, productID, nil)
		}
		w := stringToWide(serial)
		return sdlHIDOpen(vendorID, productID, &w[0])
	}
	return &HIDDevice{resource.New(handleFrom("SDL_hid_open", open), sdlHIDClose)}
}

// OpenHID opens a device by ids and reports why it failed.
func OpenHID(vendorID, productID uint16, serial string) (*HIDDevice, error) {
	return resource.Make(func() *HIDDevice { return NewHIDDevice(vendorID, productID, serial) }, func() error {
		return lastError("SDL_hid_open")
	})
}

// OpenHIDPath opens a device by the platform path from HIDDeviceInfos.
func OpenHIDPath(path string, exclusive bool) (*HIDDevice, error) {
	return resource.Make(func() *HIDDevice {
		open := func() uintptr { return sdlHIDOpenPath(path, sdlBool(exclusive)) }
		return &HIDDevice{resource.New(handleFrom("SDL_hid_open_path", open), sdlHIDClose)}
	}, func() error {
		return lastError("SDL_hid_open_path")
	})
}

// Move transfers ownership to a new HIDDevice.
func (d *HIDDevice) Move() *HIDDevice { return &HIDDevice{d.Owner.Move()} }

func (d *HIDDevice) handle(op string) (uintptr, error) {
	h := d.Native()
	if h == 0 {
		return 0, &Error{Op: op, Err: ErrClosed}
	}
	return h, nil
}

// transfer runs a call returning a byte count or -1.
func (d *HIDDevice) transfer(op string, buf []byte, call func(h uintptr, p *byte, n uintptr) int32) (int, error) {
	h, err := d.handle(op)
	if err != nil {
		return 0, err
	}
	if len(buf) == 0 {
		return 0, nil
	}
	var n int32
	err = check(op, func() bool {
		n = call(h, &buf[0], uintptr(len(buf)))
		return n >= 0
	})
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// Write sends an output report. The first byte is the report id, 0 for devices
// with a single report.
func (d *HIDDevice) Write(report []byte) (int, error) {
	return d.transfer("SDL_hid_write", report, sdlHIDWrite)
}

// Read reads an input report into buf. In non-blocking mode it returns 0 when
// no report is waiting.
func (d *HIDDevice) Read(buf []byte) (int, error) {
	return d.transfer("SDL_hid_read", buf, sdlHIDRead)
}

// ReadTimeout is Read bounded by timeout; a negative timeout blocks.
func (d *HIDDevice) ReadTimeout(buf []byte, timeout time.Duration) (int, error) {
	ms := int32(-1)
	if timeout >= 0 {
		ms = int32(millis(timeout))
	}
	return d.transfer("SDL_hid_read_timeout", buf, func(h uintptr, p *byte, n uintptr) int32 {
		return sdlHIDReadTimeout(h, p, n, ms)
	})
}

// SetNonblocking switches Read between blocking and non-blocking mode.
func (d *HIDDevice) SetNonblocking(nonblocking bool) error {
	h, err := d.handle("SDL_hid_set_nonblocking")
	if err != nil {
		return err
	}
	return status("SDL_hid_set_nonblocking", func() int32 { return sdlHIDSetNonblocking(h, sdlBool(nonblocking)) })
}

// SendFeatureReport sends a feature report; the first byte is the report id.
func (d *HIDDevice) SendFeatureReport(report []byte) (int, error) {
	return d.transfer("SDL_hid_send_feature_report", report, sdlHIDSendFeatureReport)
}

// FeatureReport reads the feature report whose id is buf[0] into buf.
func (d *HIDDevice) FeatureReport(buf []byte) (int, error) {
	return d.transfer("SDL_hid_get_feature_report", buf, sdlHIDGetFeatureReport)
}

func (d *HIDDevice) wideString(op string, call func(h uintptr, s *wchar, n uintptr) int32) (string, error) {
	h, err := d.handle(op)
	if err != nil {
		return "", err
	}
	buf := make([]wchar, hidMaxString)
	err = status(op, func() int32 { return call(h, &buf[0], uintptr(len(buf))) })
	if err != nil {
		return "", err
	}
	return wideBufferString(buf), nil
}

// Manufacturer returns the manufacturer string.
func (d *HIDDevice) Manufacturer() (string, error) {
	return d.wideString("SDL_hid_get_manufacturer_string", sdlHIDGetManufacturerString)
}

// Product returns the product string.
func (d *HIDDevice) Product() (string, error) {
	return d.wideString("SDL_hid_get_product_string", sdlHIDGetProductString)
}

// SerialNumber returns the serial number string.
func (d *HIDDevice) SerialNumber() (string, error) {
	return d.wideString("SDL_hid_get_serial_number_string", sdlHIDGetSerialNumberString)
}

// IndexedString returns the string descriptor at index.
func (d *HIDDevice) IndexedString(index int) (string, error) {
	return d.wideString("SDL_hid_get_indexed_string", func(h uintptr, s *wchar, n uintptr) int32 {
		return sdlHIDGetIndexedString(h, int32(index), s, n)
	})
}
