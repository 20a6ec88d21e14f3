package sdl

import (
	"encoding/binary"
	"math/bits"
	"unsafe"
)

// Endian is a byte order.
type Endian int

const (
	LittleEndian Endian = iota
	BigEndian
)

func (e Endian) String() string {
	if e == BigEndian {
		return "big"
	}
	return "little"
}

// ByteOrder is the byte order of the host.
var ByteOrder = func() Endian {
	if binary.NativeEndian.Uint16([]byte{1, 0}) == 1 {
		return LittleEndian
	}
	return BigEndian
}()

// Integer is the set of fixed-width integers the endian helpers accept.
type Integer interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

// Swap reverses the byte order of v.
func Swap[T Integer](v T) T {
	switch unsafe.Sizeof(v) {
	case 2:
		return T(bits.ReverseBytes16(uint16(v)))
	case 4:
		return T(bits.ReverseBytes32(uint32(v)))
	case 8:
		return T(bits.ReverseBytes64(uint64(v)))
	}
	return v
}

// SwapLE converts between little-endian and host order.
func SwapLE[T Integer](v T) T {
	if ByteOrder == LittleEndian {
		return v
	}
	return Swap(v)
}

// SwapBE converts between big-endian and host order.
func SwapBE[T Integer](v T) T {
	if ByteOrder == BigEndian {
		return v
	}
	return Swap(v)
}
