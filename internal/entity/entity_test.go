package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, "&#x1f642;", String(0x1F642))
	assert.Equal(t, "&#x23;", String('#'))
	assert.Equal(t, "&#x10ffff;", String(0x10FFFF))
	assert.Equal(t, "&#x200d;&#xfe0f;", string(Append(Append(nil, 0x200D), 0xFE0F)))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		in   string
		r    rune
		size int
	}{
		{"&#x1f642;", 0x1F642, 9},
		{"&#x1F642;rest", 0x1F642, 9},
		{"&#X1f642;", 0x1F642, 9},
		{"&#x200d;&#x2640;", 0x200D, 8},
		{"&#x10ffff;", 0x10FFFF, 10},
		{"&#x1f642", 0, 0},     // truncated
		{"&#x1f642 ;", 0, 0},   // garbage before ';'
		{"&#x01f642;", 0, 0},   // leading zero
		{"&#x;", 0, 0},         // no digits
		{"&#128578;", 0, 0},    // decimal
		{"&#xd800;", 0, 0},     // surrogate
		{"&#x110000;", 0, 0},   // out of range
		{"&#x1000000;", 0, 0},  // too many digits
		{"&amp;", 0, 0},        // named
		{"", 0, 0},
	}
	for _, tt := range tests {
		r, size := Decode(tt.in)
		assert.Equal(t, tt.size, size, "size for %q", tt.in)
		if tt.size > 0 {
			assert.Equal(t, tt.r, r, "code-point for %q", tt.in)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, r := range []rune{0x23, 0xA9, 0x200D, 0x2640, 0xFE0F, 0x1F46E, 0xE007F} {
		s := String(r)
		d, size := Decode(s)
		assert.Equal(t, len(s), size)
		assert.Equal(t, r, d)
	}
}
