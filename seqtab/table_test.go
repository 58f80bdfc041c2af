package seqtab

import (
	"errors"
	"strings"
	"testing"
	"unicode"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const sampleData = `# emoji-test.txt
# Version: 99.0

# group: Smileys & Emotion
1F642                                      ; fully-qualified     # 🙂 E1.0 slightly smiling face
263A FE0F                                  ; fully-qualified     # ☺️ E0.6 smiling face
263A                                       ; unqualified         # ☺ E0.6 smiling face
1F46E 1F3FC 200D 2640 FE0F                 ; fully-qualified     # 👮🏼‍♀️ E4.0 woman police officer: medium-light skin tone
1F46E 1F3FC 200D 2640                      ; minimally-qualified # 👮🏼‍♀ E4.0 woman police officer: medium-light skin tone
1F46E                                      ; fully-qualified     # 👮 E0.6 police officer
1F3FC                                      ; component           # 🏼 E1.0 medium-light skin tone
`

func TestParseSample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.seqtab")
	defer teardown()
	//
	tab, err := Parse(strings.NewReader(sampleData))
	if err != nil {
		t.Fatal(err)
	}
	if tab.Version() != "99.0" {
		t.Errorf("expected version 99.0, have %q", tab.Version())
	}
	if tab.Len() != 6 {
		t.Fatalf("expected 6 sequences (unqualified skipped), have %d", tab.Len())
	}
	first := tab.At(0)
	if first.Stem("-") != "1f46e-1f3fc-200d-2640-fe0f" {
		t.Errorf("expected longest sequence first, have %s", first.Stem("-"))
	}
	if first.Name != "woman police officer: medium-light skin tone" || first.Since != "E4.0" {
		t.Errorf("unexpected comment fields: name=%q since=%q", first.Name, first.Since)
	}
	if _, ok := tab.Lookup(0x263A); ok {
		t.Errorf("expected unqualified U+263A to be excluded by default")
	}
	if s, ok := tab.Lookup(0x1F3FC); !ok || s.Status != Component {
		t.Errorf("expected component U+1F3FC to be loaded, have %v", s)
	}
}

func TestParseWithStatuses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.seqtab")
	defer teardown()
	//
	tab, err := Parse(strings.NewReader(sampleData), WithStatuses(Unqualified))
	if err != nil {
		t.Fatal(err)
	}
	if tab.Len() != 1 {
		t.Fatalf("expected 1 unqualified sequence, have %d", tab.Len())
	}
	if tab.At(0).String() != "☺" {
		t.Errorf("expected ☺, have %q", tab.At(0).String())
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.seqtab")
	defer teardown()
	//
	cases := []struct {
		name string
		data string
		err  error
		line int
	}{
		{"no version", "1F642 ; fully-qualified # 🙂 E1.0 x\n", ErrNoVersion, 0},
		{"bad hex", "# Version: 1.0\n1F6G2 ; fully-qualified\n", ErrBadCodepoint, 2},
		{"surrogate", "# Version: 1.0\nD800 ; fully-qualified\n", ErrBadCodepoint, 2},
		{"out of range", "# Version: 1.0\n110000 ; fully-qualified\n", ErrBadCodepoint, 2},
		{"empty", "# Version: 1.0\n  ; fully-qualified\n", ErrEmptySequence, 2},
		{"no status", "# Version: 1.0\n1F642\n", ErrBadStatus, 2},
		{"unknown status", "# Version: 1.0\n1F642 ; qualified\n", ErrBadStatus, 2},
		{"duplicate", "# Version: 1.0\n1F642 ; fully-qualified\n\n1F642 ; component\n", ErrDuplicate, 4},
	}
	for _, c := range cases {
		_, err := Parse(strings.NewReader(c.data))
		if !errors.Is(err, c.err) {
			t.Errorf("%s: expected error %v, have %v", c.name, c.err, err)
			continue
		}
		var terr *TableError
		if !errors.As(err, &terr) {
			t.Errorf("%s: expected a *TableError, have %T", c.name, err)
		} else if terr.Line != c.line {
			t.Errorf("%s: expected error at line %d, have %d", c.name, c.line, terr.Line)
		}
	}
}

func TestNew(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.seqtab")
	defer teardown()
	//
	tab, err := New("1.0", []Sequence{Seq(0x1F642), Seq(0x1F46E, 0x1F3FC), Seq(0x1F46E)})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"1f46e-1f3fc", "1f46e", "1f642"}
	for i, s := range tab.All() {
		if s.Stem("-") != want[i] {
			t.Errorf("expected sequence #%d to be %s, is %s", i, want[i], s.Stem("-"))
		}
	}
	if _, err = New("1.0", []Sequence{Seq()}); !errors.Is(err, ErrEmptySequence) {
		t.Errorf("expected empty sequence to be rejected, have %v", err)
	}
	if _, err = New("", []Sequence{Seq(0x1F642)}); !errors.Is(err, ErrNoVersion) {
		t.Errorf("expected missing version to be rejected, have %v", err)
	}
	if _, err = New("1.0", []Sequence{Seq(0x1F642), Seq(0x1F642)}); !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected duplicate to be rejected, have %v", err)
	}
}

func TestDefaultTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.seqtab")
	defer teardown()
	//
	tab := Default()
	if tab.Version() != "15.1" {
		t.Errorf("expected embedded data of version 15.1, have %q", tab.Version())
	}
	if tab.Len() < 4000 {
		t.Errorf("expected several thousand sequences, have %d", tab.Len())
	}
	for _, cps := range [][]Codepoint{
		{0x1F642},
		{0x1F9DA},
		{0x1F46E, 0x1F3FC, 0x200D, 0x2640, 0xFE0F},
		{0x0023, 0xFE0F, 0x20E3},
	} {
		if _, ok := tab.Lookup(cps...); !ok {
			t.Errorf("expected %s to be in default table", Seq(cps...).Stem(" "))
		}
	}
	if _, ok := tab.Lookup(0x2019); ok {
		t.Errorf("right single quotation mark must not be an emoji")
	}
	if Default() != tab {
		t.Errorf("expected default table to be loaded once")
	}
}

func TestDefaultTableOrdering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.seqtab")
	defer teardown()
	//
	tab := Default()
	seen := make(map[string]bool, tab.Len())
	prev := Sequence{}
	for i, s := range tab.All() {
		if i > 0 && compare(prev, s) >= 0 {
			t.Fatalf("table not strictly ordered at #%d: %s before %s", i, prev.Stem(" "), s.Stem(" "))
		}
		// every proper prefix must come later, i.e. must not have been seen yet
		for n := 1; n < s.Len(); n++ {
			if seen[Seq(s.Codepoints[:n]...).Stem("-")] {
				t.Fatalf("prefix of %s sorts before it", s.Stem(" "))
			}
		}
		seen[s.Stem("-")] = true
		prev = s
	}
}

func TestCodepointRangeTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.seqtab")
	defer teardown()
	//
	rt := Default().Codepoints()
	for _, r := range []rune{0x1F642, 0x200D, 0xFE0F, 0x2640} {
		if !unicode.Is(rt, r) {
			t.Errorf("expected U+%04X to be part of some sequence", r)
		}
	}
	for _, r := range []rune{'a', ' ', 0x2019} {
		if unicode.Is(rt, r) {
			t.Errorf("expected U+%04X not to be part of any sequence", r)
		}
	}
}

func TestNilTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify.seqtab")
	defer teardown()
	//
	var tab *Table
	if rt := tab.Codepoints(); rt != nil {
		t.Errorf("expected nil table to have no code-points, have %v", rt)
	}
	if tab.Len() != 0 {
		t.Errorf("expected nil table to be empty")
	}
	for range tab.All() {
		t.Errorf("expected no sequences in nil table")
	}
	if _, ok := tab.Lookup(0x1F642); ok {
		t.Errorf("expected lookup in nil table to fail")
	}
}
