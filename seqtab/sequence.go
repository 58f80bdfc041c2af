package seqtab

import (
	"strconv"
	"strings"
)

// Codepoint is a single Unicode scalar value.
type Codepoint uint32

// MaxCodepoint is the largest valid Unicode scalar value.
const MaxCodepoint Codepoint = 0x10FFFF

// Code-points with a special role in emoji sequences.
const (
	ZWJ           Codepoint = 0x200D // zero width joiner
	TextStyle     Codepoint = 0xFE0E // variation selector 15
	EmojiStyle    Codepoint = 0xFE0F // variation selector 16
	Keycap        Codepoint = 0x20E3 // combining enclosing keycap
	CancelTag     Codepoint = 0xE007F
	BlackFlag     Codepoint = 0x1F3F4
	ModifierFirst Codepoint = 0x1F3FB // Fitzpatrick type 1-2
	ModifierLast  Codepoint = 0x1F3FF // Fitzpatrick type 6
)

// String returns the lowercase hexadecimal value of c, without leading zeros.
func (c Codepoint) String() string {
	return strconv.FormatUint(uint64(c), 16)
}

// IsValid is true for Unicode scalar values, i.e. excluding surrogates.
func (c Codepoint) IsValid() bool {
	return c <= MaxCodepoint && (c < 0xD800 || c > 0xDFFF)
}

// IsModifier is true for skin tone modifiers.
func (c Codepoint) IsModifier() bool {
	return c >= ModifierFirst && c <= ModifierLast
}

// IsVariationSelector is true for text and emoji presentation selectors.
func (c Codepoint) IsVariationSelector() bool {
	return c == TextStyle || c == EmojiStyle
}

func (c Codepoint) isRegionalIndicator() bool {
	return c >= 0x1F1E6 && c <= 0x1F1FF
}

func (c Codepoint) isTag() bool {
	return c >= 0xE0020 && c <= 0xE007E
}

// --- Status ----------------------------------------------------------------

// Status is the UTS #51 qualification of a sequence.
type Status uint8

const (
	Component Status = iota + 1
	FullyQualified
	MinimallyQualified
	Unqualified
)

var statusNames = [...]string{
	Component:          "component",
	FullyQualified:     "fully-qualified",
	MinimallyQualified: "minimally-qualified",
	Unqualified:        "unqualified",
}

func (s Status) String() string {
	if s > 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "Status(" + strconv.Itoa(int(s)) + ")"
}

// StatusFromString returns the status for a name as used in emoji-test.txt.
// Returns 0 for unknown names.
func StatusFromString(name string) Status {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range statusNames {
		if s > 0 && n == name {
			return Status(s)
		}
	}
	return 0
}

// DefaultStatuses are the statuses loaded if clients do not choose otherwise.
// Unqualified entries are left out, as they cover plain text symbols like
// U+263A without a presentation selector.
var DefaultStatuses = []Status{FullyQualified, MinimallyQualified, Component}

// --- Kind ------------------------------------------------------------------

// Kind is a structural classification of an emoji sequence.
type Kind int

const (
	Simple       Kind = iota // a single code-point
	ZWJSequence              // emoji joined by U+200D
	Flag                     // two regional indicators
	KeycapSeq                // digit, '#' or '*' plus U+20E3
	Modified                 // base plus skin tone
	TagSequence              // black flag plus tag characters (subdivision flags)
	Presentation             // base plus presentation selector
)

var kindNames = [...]string{
	Simple:       "Simple",
	ZWJSequence:  "ZWJ",
	Flag:         "Flag",
	KeycapSeq:    "Keycap",
	Modified:     "Modified",
	TagSequence:  "Tag",
	Presentation: "Presentation",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// --- Sequence --------------------------------------------------------------

// Sequence is a recognized emoji, consisting of one or more code-points.
// Sequences are read-only after a table has been loaded.
type Sequence struct {
	Codepoints []Codepoint
	Status     Status
	Name       string // CLDR short name, if known
	Since      string // emoji version of first appearance, e.g. "E5.0"
}

// Seq creates an anonymous sequence from code-points.
func Seq(cps ...Codepoint) Sequence {
	return Sequence{Codepoints: cps, Status: FullyQualified}
}

// Len returns the number of code-points in s.
func (s Sequence) Len() int {
	return len(s.Codepoints)
}

// Runes returns the code-points of s as runes.
func (s Sequence) Runes() []rune {
	r := make([]rune, len(s.Codepoints))
	for i, c := range s.Codepoints {
		r[i] = rune(c)
	}
	return r
}

// String returns the emoji glyph text, i.e. the UTF-8 encoding of s.
func (s Sequence) String() string {
	return string(s.Runes())
}

// Stem returns the code-points of s in lowercase hex, joined by sep.
// For sep = "-" this is the file name stem of the emoji's image asset.
func (s Sequence) Stem(sep string) string {
	var sb strings.Builder
	for i, c := range s.Codepoints {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}

// Kind classifies s structurally. ZWJ takes precedence over modifiers and
// presentation selectors.
func (s Sequence) Kind() Kind {
	cps := s.Codepoints
	switch {
	case len(cps) <= 1:
		return Simple
	case len(cps) == 2 && cps[0].isRegionalIndicator() && cps[1].isRegionalIndicator():
		return Flag
	case cps[len(cps)-1] == Keycap:
		return KeycapSeq
	case cps[0] == BlackFlag && cps[len(cps)-1] == CancelTag:
		return TagSequence
	}
	kind := Simple
	for _, c := range cps[1:] {
		switch {
		case c == ZWJ:
			return ZWJSequence
		case c.IsModifier():
			kind = Modified
		case c.IsVariationSelector() && kind == Simple:
			kind = Presentation
		}
	}
	return kind
}

// compare orders sequences by descending length, then by ascending
// code-point values.
func compare(a, b Sequence) int {
	if a.Len() != b.Len() {
		return b.Len() - a.Len()
	}
	for i := range a.Codepoints {
		if a.Codepoints[i] != b.Codepoints[i] {
			if a.Codepoints[i] < b.Codepoints[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
