package sdl

import (
	"encoding/hex"
)

// GUID is a 128-bit identifier as used for joysticks and game controllers.
type GUID [16]byte

// String returns the 32-character lowercase hex form.
func (g GUID) String() string {
	return hex.EncodeToString(g[:])
}

// IsZero reports whether every byte is zero.
func (g GUID) IsZero() bool {
	return g == GUID{}
}

// GUIDFromString parses the hex form written by GUID.String. Like SDL, it reads
// up to 32 hex digits, treats invalid digits as 0 and leaves missing bytes
// zero.
func GUIDFromString(s string) GUID {
	var g GUID
	for i := 0; i < len(g) && 2*i+1 < len(s); i++ {
		g[i] = hexNibble(s[2*i])<<4 | hexNibble(s[2*i+1])
	}
	return g
}

func hexNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
