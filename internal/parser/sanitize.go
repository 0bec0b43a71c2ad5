package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/acarl005/stripansi"
)

// Sanitize strips ANSI escape sequences, control characters and invalid
// Unicode from runner output. Newlines survive; every other C0 control, DEL,
// the C1 range and Unicode non-characters are dropped, as are bytes that do
// not decode as UTF-8. Visible glyphs, including the ✓ ✘ ✗ and - status
// markers the classifier keys on, pass through untouched.
//
// Sanitize is idempotent: applying it twice returns the same string.
func Sanitize(s string) string {
	s = stripansi.Strip(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if keepRune(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func keepRune(r rune) bool {
	switch {
	case r == '\n':
		return true
	case r < 0x20: // C0 controls, including NUL, CR, tab
		return false
	case r == 0x7F: // DEL
		return false
	case r >= 0x80 && r <= 0x9F: // C1 controls
		return false
	case r == utf8.RuneError: // invalid byte sequences decode to this
		return false
	case r >= 0xFDD0 && r <= 0xFDEF: // non-character block
		return false
	case r&0xFFFE == 0xFFFE: // U+xxFFFE and U+xxFFFF of every plane
		return false
	}
	return true
}
