package sdl

import "math/bits"

// MostSignificantBitIndex32 returns the index of the highest set bit, or -1
// for zero.
func MostSignificantBitIndex32(x uint32) int {
	return bits.Len32(x) - 1
}

// HasExactlyOneBitSet32 reports whether x is a power of two.
func HasExactlyOneBitSet32(x uint32) bool {
	return bits.OnesCount32(x) == 1
}
