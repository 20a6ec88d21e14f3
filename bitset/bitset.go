// Package bitset provides bitwise operators for flag enumerations that opt in
// by declaring a BitsetEnum method.
//
// Go cannot forbid the built-in operators on a named integer type, so the
// guarantee is one-directional: the generic helpers below refuse types that have
// not opted in, and code that wants the check goes through them.
package bitset

// Enum is satisfied by integer-backed types that declare themselves flag sets:
//
//	type InitFlag uint32
//
//	func (InitFlag) BitsetEnum() {}
type Enum interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int8 | ~int16 | ~int32 | ~int64
	BitsetEnum()
}

// Or returns a | b.
func Or[T Enum](a, b T) T { return a | b }

// And returns a & b.
func And[T Enum](a, b T) T { return a & b }

// Xor returns a ^ b.
func Xor[T Enum](a, b T) T { return a ^ b }

// Not returns the bitwise complement of a.
func Not[T Enum](a T) T { return ^a }

// OrAssign sets *dst to *dst | v and returns dst.
func OrAssign[T Enum](dst *T, v T) *T {
	*dst |= v
	return dst
}

// AndAssign sets *dst to *dst & v and returns dst.
func AndAssign[T Enum](dst *T, v T) *T {
	*dst &= v
	return dst
}

// XorAssign sets *dst to *dst ^ v and returns dst.
func XorAssign[T Enum](dst *T, v T) *T {
	*dst ^= v
	return dst
}

// Union folds Or over flags.
func Union[T Enum](flags ...T) T {
	var out T
	for _, f := range flags {
		out |= f
	}
	return out
}

// Has reports whether every bit of mask is set in v.
func Has[T Enum](v, mask T) bool { return v&mask == mask }

// Any reports whether v and mask share at least one bit.
func Any[T Enum](v, mask T) bool { return v&mask != 0 }

// Set returns v with the bits of mask set.
func Set[T Enum](v, mask T) T { return v | mask }

// Clear returns v with the bits of mask cleared.
func Clear[T Enum](v, mask T) T { return v &^ mask }
