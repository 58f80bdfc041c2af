package seqtab

import "testing"

func TestCodepointString(t *testing.T) {
	tests := []struct {
		c    Codepoint
		want string
	}{
		{0x23, "23"},
		{0x200D, "200d"},
		{0x1F46E, "1f46e"},
		{0xE007F, "e007f"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Codepoint(%#x).String() = %q, want %q", uint32(tt.c), got, tt.want)
		}
	}
}

func TestSequenceStemAndString(t *testing.T) {
	s := Seq(0x1F46E, 0x1F3FC, 0x200D, 0x2640, 0xFE0F)
	if got := s.Stem("-"); got != "1f46e-1f3fc-200d-2640-fe0f" {
		t.Errorf("Stem = %q", got)
	}
	if got := s.String(); got != "\U0001F46E\U0001F3FC\u200D\u2640\uFE0F" {
		t.Errorf("String = %q", got)
	}
	if s.Len() != 5 {
		t.Errorf("Len = %d, want 5", s.Len())
	}
}

func TestSequenceKind(t *testing.T) {
	tests := []struct {
		name string
		seq  Sequence
		want Kind
	}{
		{"simple", Seq(0x1F642), Simple},
		{"zwj", Seq(0x1F46E, 0x1F3FC, 0x200D, 0x2640, 0xFE0F), ZWJSequence},
		{"flag", Seq(0x1F1FA, 0x1F1F8), Flag},
		{"keycap", Seq(0x23, 0xFE0F, 0x20E3), KeycapSeq},
		{"modified", Seq(0x1F9DA, 0x1F3FB), Modified},
		{"tag", Seq(0x1F3F4, 0xE0067, 0xE0062, 0xE0073, 0xE0063, 0xE0074, 0xE007F), TagSequence},
		{"presentation", Seq(0x2764, 0xFE0F), Presentation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.seq.Kind(); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
	if Kind(42).String() != "Unknown" {
		t.Errorf("expected unknown kind to print as 'Unknown'")
	}
}

func TestStatusNames(t *testing.T) {
	for _, s := range []Status{Component, FullyQualified, MinimallyQualified, Unqualified} {
		if StatusFromString(s.String()) != s {
			t.Errorf("status %v does not survive a round trip through its name", s)
		}
	}
	if StatusFromString("qualified") != 0 {
		t.Errorf("expected unknown status name to yield 0")
	}
	if Status(0).String() != "Status(0)" {
		t.Errorf("unexpected name for zero status: %s", Status(0))
	}
}
