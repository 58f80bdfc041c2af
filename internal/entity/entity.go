/*
Package entity formats and decodes hexadecimal numeric character references,
i.e. the HTML form "&#x1f642;" of a code-point.

Only the canonical form is recognized: "&#x" (or "&#X"), followed by 1 to 6
hex digits of either case without leading zeros, terminated by ';'. Anything
else, including references missing the terminating semicolon, is not a
reference for the purpose of this package.
*/
package entity

import (
	"strconv"
	"unicode/utf8"
)

// MaxLen is the length of the longest canonical reference, "&#x10ffff;".
const MaxLen = 10

// Append appends the numeric character reference for r to dst.
func Append(dst []byte, r rune) []byte {
	dst = append(dst, '&', '#', 'x')
	dst = strconv.AppendUint(dst, uint64(r), 16)
	return append(dst, ';')
}

// String returns the numeric character reference for r.
func String(r rune) string {
	return string(Append(make([]byte, 0, MaxLen), r))
}

// Decode decodes a numeric character reference at the start of s.
// It returns the code-point and the number of bytes consumed. If s does not
// start with a canonical reference to a valid code-point, size is 0.
func Decode(s string) (r rune, size int) {
	if len(s) < 5 || s[0] != '&' || s[1] != '#' || (s[2] != 'x' && s[2] != 'X') {
		return utf8.RuneError, 0
	}
	n := 3
	if s[n] == '0' { // leading zeros are not canonical
		return utf8.RuneError, 0
	}
	var x rune
	for n < len(s) && n < MaxLen {
		c := s[n]
		switch {
		case '0' <= c && c <= '9':
			x = x<<4 | rune(c-'0')
		case 'a' <= c && c <= 'f':
			x = x<<4 | rune(c-'a'+10)
		case 'A' <= c && c <= 'F':
			x = x<<4 | rune(c-'A'+10)
		case c == ';':
			if n == 3 || !utf8.ValidRune(x) {
				return utf8.RuneError, 0
			}
			return x, n + 1
		default:
			return utf8.RuneError, 0
		}
		n++
	}
	return utf8.RuneError, 0
}
