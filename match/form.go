package match

import "strings"

// Form selects the textual representation a matcher recognizes.
type Form int

const (
	Codepoints Form = iota // emoji as plain characters
	Entities               // emoji as numeric character references
)

var formNames = [...]string{
	Codepoints: "codepoints",
	Entities:   "entities",
}

func (f Form) String() string {
	if f.valid() {
		return formNames[f]
	}
	return "unknown"
}

func (f Form) valid() bool {
	return f >= Codepoints && f <= Entities
}

// ParseForm returns the form for a name ("codepoints" or "entities").
// The empty name selects Codepoints.
func ParseForm(name string) (Form, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "codepoints", "codepoint":
		return Codepoints, nil
	case "entities", "entity":
		return Entities, nil
	}
	return -1, ErrUnknownForm
}
