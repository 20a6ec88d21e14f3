package bitset

import (
	"fmt"
	"strings"
)

// Name pairs a flag value with its display name.
type Name[T Enum] struct {
	Flag T
	Name string
}

// Format renders v as "A|B|0x40", listing named flags in the order given and any
// leftover bits in hex. A zero value renders as zero, or "0" when zero is empty.
func Format[T Enum](v T, names []Name[T], zero string) string {
	if v == 0 {
		if zero == "" {
			return "0"
		}
		return zero
	}

	var parts []string
	rest := v
	for _, n := range names {
		if n.Flag != 0 && Has(v, n.Flag) {
			parts = append(parts, n.Name)
			rest = Clear(rest, n.Flag)
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint64(rest)))
	}
	return strings.Join(parts, "|")
}
