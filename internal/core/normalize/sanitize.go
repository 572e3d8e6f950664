package normalize

import (
	"strings"
	"unicode/utf8"
)

// Scrub drops bytes that never carry meaning in a question and would otherwise leak into
// generated SQL or logs:
// - invalid UTF-8 bytes
// - NUL and ASCII controls other than '\n', '\r', '\t'
// - DEL (0x7F)
// - C1 controls U+0080..U+009F
// Returns s unchanged (no allocation) when it is already clean
func Scrub(s string) string {
	i := cleanPrefix(s)
	if i == len(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:i])
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if keep(r, size) {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

// cleanPrefix returns the length of the longest prefix of s that Scrub would keep verbatim
func cleanPrefix(s string) int {
	i := 0
	for i < len(s) {
		if c := s[i]; c >= 0x20 && c < 0x7F {
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if !keep(r, size) {
			return i
		}
		i += size
	}
	return i
}

func keep(r rune, size int) bool {
	switch {
	case r == utf8.RuneError && size == 1:
		return false
	case r == '\n' || r == '\r' || r == '\t':
		return true
	case r < 0x20 || r == 0x7F:
		return false
	case r >= 0x80 && r <= 0x9F:
		return false
	}
	return true
}
