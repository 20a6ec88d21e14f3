//go:build !windows

package sdl

// wchar_t is UTF-32 outside Windows.
type wchar = int32

func wideToString(p uintptr) string {
	if p == 0 {
		return ""
	}
	var runes []rune
	for i := 0; ; i++ {
		c := *(*wchar)(cPointer(p + uintptr(i)*4))
		if c == 0 {
			break
		}
		runes = append(runes, rune(c))
	}
	return string(runes)
}

func wideBufferString(buf []wchar) string {
	runes := make([]rune, 0, len(buf))
	for _, c := range buf {
		if c == 0 {
			break
		}
		runes = append(runes, rune(c))
	}
	return string(runes)
}

func stringToWide(s string) []wchar {
	out := make([]wchar, 0, len(s)+1)
	for _, r := range s {
		out = append(out, wchar(r))
	}
	return append(out, 0)
}
