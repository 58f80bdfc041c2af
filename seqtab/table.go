package seqtab

import (
	"bufio"
	"bytes"
	_ "embed"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Table is an ordered, read-only list of emoji sequences, tied to an emoji
// data version.
//
// Sequences are sorted by descending number of code-points, then by
// code-point values. No sequence is a prefix of a sequence sorting after it.
type Table struct {
	version string
	seqs    []Sequence
	index   map[string]int
	cpOnce  sync.Once
	cps     *unicode.RangeTable
}

// New creates a table from a list of sequences. The sequences will be
// sorted; the slice is not retained.
func New(version string, seqs []Sequence) (*Table, error) {
	if version == "" {
		return nil, tableError(0, "", ErrNoVersion)
	}
	t := &Table{
		version: version,
		seqs:    make([]Sequence, 0, len(seqs)),
		index:   make(map[string]int, len(seqs)),
	}
	for _, s := range seqs {
		if err := t.add(0, s); err != nil {
			return nil, err
		}
	}
	t.sort()
	return t, nil
}

func (t *Table) add(line int, s Sequence) error {
	if s.Len() == 0 {
		return tableError(line, s.Name, ErrEmptySequence)
	}
	for _, c := range s.Codepoints {
		if !c.IsValid() {
			return tableError(line, s.Stem(" "), ErrBadCodepoint)
		}
	}
	key := s.Stem("-")
	if _, dup := t.index[key]; dup {
		return tableError(line, s.Stem(" "), ErrDuplicate)
	}
	t.index[key] = -1
	t.seqs = append(t.seqs, s)
	return nil
}

func (t *Table) sort() {
	slices.SortStableFunc(t.seqs, compare)
	for i, s := range t.seqs {
		t.index[s.Stem("-")] = i
	}
}

// Version returns the emoji data version of t, e.g. "15.1".
func (t *Table) Version() string {
	if t == nil {
		return ""
	}
	return t.version
}

// Len returns the number of sequences in t.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.seqs)
}

// At returns the i-th sequence in match priority order.
func (t *Table) At(i int) Sequence {
	return t.seqs[i]
}

// All iterates over the sequences of t in match priority order.
func (t *Table) All() iter.Seq2[int, Sequence] {
	return func(yield func(int, Sequence) bool) {
		if t == nil {
			return
		}
		for i, s := range t.seqs {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Lookup finds the sequence consisting of exactly the code-points cps.
func (t *Table) Lookup(cps ...Codepoint) (Sequence, bool) {
	if t == nil {
		return Sequence{}, false
	}
	i, ok := t.index[Seq(cps...).Stem("-")]
	if !ok {
		return Sequence{}, false
	}
	return t.seqs[i], true
}

// Codepoints returns a range table of every code-point occurring in any
// sequence of t. Clients may use it to quickly rule out text which cannot
// contain an emoji. A nil table has no range table.
func (t *Table) Codepoints() *unicode.RangeTable {
	if t == nil {
		return nil
	}
	t.cpOnce.Do(func() {
		var runes []rune
		for _, s := range t.seqs {
			runes = append(runes, s.Runes()...)
		}
		t.cps = rangetable.New(runes...)
	})
	return t.cps
}

// --- Loading ---------------------------------------------------------------

type loadOptions struct {
	statuses []Status
}

// Option configures loading of a table.
type Option func(*loadOptions)

// WithStatuses restricts the entries loaded to the given statuses.
func WithStatuses(st ...Status) Option {
	return func(o *loadOptions) {
		o.statuses = st
	}
}

// Parse reads sequence data in the format of the UTS #51 file "emoji-test.txt":
//
//	1F46E 1F3FC 200D 2640 FE0F ; fully-qualified # 👮🏼‍♀️ E4.0 woman police officer: medium-light skin tone
//
// The header line "# Version: …" determines the version of the table.
func Parse(r io.Reader, opts ...Option) (*Table, error) {
	o := loadOptions{statuses: DefaultStatuses}
	for _, opt := range opts {
		opt(&o)
	}
	t := &Table{index: make(map[string]int, 4096)}
	scanner := bufio.NewScanner(r)
	lineno := 0
	skipped := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line[0] == '#' {
			if v, ok := strings.CutPrefix(line[1:], " Version:"); ok && t.version == "" {
				t.version = strings.TrimSpace(v)
			}
			continue
		}
		seq, err := parseEntry(lineno, line)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(o.statuses, seq.Status) {
			skipped++
			continue
		}
		if err = t.add(lineno, seq); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if t.version == "" {
		return nil, tableError(0, "", ErrNoVersion)
	}
	t.sort()
	tracer().Debugf("loaded %d emoji sequences (version %s), skipped %d", len(t.seqs), t.version, skipped)
	return t, nil
}

func parseEntry(lineno int, line string) (Sequence, error) {
	data, comment, _ := strings.Cut(line, "#")
	fields, status, found := strings.Cut(data, ";")
	if !found {
		return Sequence{}, tableError(lineno, line, ErrBadStatus)
	}
	seq := Sequence{Status: StatusFromString(status)}
	if seq.Status == 0 {
		return Sequence{}, tableError(lineno, line, ErrBadStatus)
	}
	for _, hex := range strings.Fields(fields) {
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil || !Codepoint(n).IsValid() {
			return Sequence{}, tableError(lineno, line, ErrBadCodepoint)
		}
		seq.Codepoints = append(seq.Codepoints, Codepoint(n))
	}
	if len(seq.Codepoints) == 0 {
		return Sequence{}, tableError(lineno, line, ErrEmptySequence)
	}
	// comment is "<glyph> E<version> <name>"
	cfields := strings.Fields(comment)
	if len(cfields) > 1 && strings.HasPrefix(cfields[1], "E") {
		seq.Since = cfields[1]
		seq.Name = strings.Join(cfields[2:], " ")
	}
	return seq, nil
}

// --- Embedded data ---------------------------------------------------------

//go:embed data/emoji-test.txt
var emojiTestData []byte

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the table for the embedded emoji data, loaded with the
// default statuses. The table is loaded on first use.
//
// The embedded data is part of the build; if it cannot be parsed, Default
// panics.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Parse(bytes.NewReader(emojiTestData))
		if err != nil {
			panic(err)
		}
		defaultTable = t
	})
	return defaultTable
}

// Data returns a reader for the embedded emoji data, e.g. for loading it
// with different options.
func Data() io.Reader {
	return bytes.NewReader(emojiTestData)
}
