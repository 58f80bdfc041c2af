package match

import (
	"fmt"
	"iter"
	"regexp"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/emojify/internal/entity"
	"github.com/npillmayer/emojify/seqtab"
)

// Source is a provider of emoji sequences, usually a *seqtab.Table.
type Source interface {
	Version() string
	Len() int
	At(i int) seqtab.Sequence
}

var _ Source = (*seqtab.Table)(nil)

// Match is an occurrence of an emoji sequence in a text.
// Start and End are byte offsets into the text.
type Match struct {
	Start, End int
	Sequence   seqtab.Sequence
	Form       Form
}

// Text returns the matched part of s.
func (m Match) Text(s string) string {
	return s[m.Start:m.End]
}

// Matcher finds emoji sequences of one form in text.
type Matcher struct {
	form    Form
	version string
	seqs    []seqtab.Sequence // longest first
	trie    *trie
	patOnce sync.Once
	pattern string
	reOnce  sync.Once
	re      *regexp.Regexp
	reErr   error
}

// Build compiles a matcher for the sequences of src.
// It fails with a *BuildError if src has no sequences or contains an empty
// sequence. Building twice from the same source yields matchers with
// identical behavior.
func Build(src Source, form Form) (*Matcher, error) {
	if !form.valid() {
		return nil, &BuildError{Form: form, Index: -1, Err: ErrUnknownForm}
	}
	if src == nil || src.Len() == 0 {
		return nil, &BuildError{Form: form, Index: -1, Err: ErrEmptyTable}
	}
	m := &Matcher{
		form:    form,
		version: src.Version(),
		seqs:    make([]seqtab.Sequence, src.Len()),
	}
	cpcount := 0
	for i := range m.seqs {
		m.seqs[i] = src.At(i)
		if m.seqs[i].Len() == 0 {
			return nil, &BuildError{Form: form, Index: i, Err: ErrEmptySequence}
		}
		cpcount += m.seqs[i].Len()
	}
	// A table is sorted already; other sources may not be.
	slices.SortStableFunc(m.seqs, func(a, b seqtab.Sequence) int {
		return b.Len() - a.Len()
	})
	m.trie = newTrie(cpcount)
	for i, s := range m.seqs {
		m.trie.insert(s.Codepoints, i)
	}
	tracer().Debugf("built %s matcher for %d sequences, %d trie nodes", form, len(m.seqs), len(m.trie.nodes))
	return m, nil
}

// Form returns the input form m recognizes.
func (m *Matcher) Form() Form {
	return m.form
}

// Version returns the emoji data version m has been built from.
func (m *Matcher) Version() string {
	return m.version
}

// Len returns the number of sequences m recognizes.
func (m *Matcher) Len() int {
	return len(m.seqs)
}

// next decodes the unit of input at the start of s: a UTF-8 encoded rune
// or a numeric character reference, depending on the form.
// size is 0 if s does not start with a valid unit.
func (m *Matcher) next(s string) (rune, int) {
	if m.form == Entities {
		return entity.Decode(s)
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return r, 0
	}
	return r, size
}

// MatchAt returns the longest sequence starting at byte offset at of text.
func (m *Matcher) MatchAt(text string, at int) (Match, bool) {
	node, best, end := int32(0), int32(-1), at
	for pos := at; pos < len(text); {
		r, size := m.next(text[pos:])
		if size == 0 {
			break
		}
		child, ok := m.trie.step(node, r)
		if !ok {
			break
		}
		node, pos = child, pos+size
		if t := m.trie.terminal(node); t >= 0 {
			best, end = t, pos
		}
	}
	if best < 0 {
		return Match{}, false
	}
	return Match{Start: at, End: end, Sequence: m.seqs[best], Form: m.form}, true
}

// skip returns the number of bytes to advance from the start of s if no
// match starts there.
func (m *Matcher) skip(s string) int {
	if m.form == Entities {
		if i := strings.IndexByte(s[1:], '&'); i >= 0 {
			return i + 1
		}
		return len(s)
	}
	_, size := utf8.DecodeRuneInString(s)
	return size
}

// All iterates over the matches in text, from left to right.
func (m *Matcher) All(text string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		for i := 0; i < len(text); {
			if mt, ok := m.MatchAt(text, i); ok {
				if !yield(mt) {
					return
				}
				i = mt.End
				continue
			}
			i += m.skip(text[i:])
		}
	}
}

// FindAll returns all matches in text. It returns nil if there are none.
func (m *Matcher) FindAll(text string) []Match {
	var matches []Match
	for mt := range m.All(text) {
		matches = append(matches, mt)
	}
	return matches
}

// Contains is true if text contains at least one emoji sequence.
func (m *Matcher) Contains(text string) bool {
	for range m.All(text) {
		return true
	}
	return false
}

// ReplaceAll replaces every match in text with the result of repl.
// If there is no match, text is returned unchanged.
func (m *Matcher) ReplaceAll(text string, repl func(Match) string) string {
	var sb strings.Builder
	last, found := 0, false
	for mt := range m.All(text) {
		if !found {
			sb.Grow(len(text) + 64)
			found = true
		}
		sb.WriteString(text[last:mt.Start])
		sb.WriteString(repl(mt))
		last = mt.End
	}
	if !found {
		return text
	}
	sb.WriteString(text[last:])
	return sb.String()
}

// --- Regular expressions ---------------------------------------------------

// Pattern returns a regular expression equivalent to m: an alternation of
// all sequences, longest first. As Go regular expressions prefer the
// leftmost alternative, the longest sequence wins at any position.
// Entity patterns are case-insensitive.
func (m *Matcher) Pattern() string {
	m.patOnce.Do(func() {
		var sb strings.Builder
		sb.Grow(len(m.seqs) * 32)
		if m.form == Entities {
			sb.WriteString("(?i)")
		}
		sb.WriteString("(?:")
		for i, s := range m.seqs {
			if i > 0 {
				sb.WriteByte('|')
			}
			for _, c := range s.Codepoints {
				if m.form == Entities {
					sb.WriteString(entity.String(rune(c)))
				} else {
					fmt.Fprintf(&sb, `\x{%s}`, c)
				}
			}
		}
		sb.WriteByte(')')
		m.pattern = sb.String()
	})
	return m.pattern
}

// Regexp returns the compiled form of Pattern. It is compiled on first use.
func (m *Matcher) Regexp() (*regexp.Regexp, error) {
	m.reOnce.Do(func() {
		m.re, m.reErr = regexp.Compile(m.Pattern())
		if m.reErr != nil {
			tracer().Errorf("cannot compile %s pattern: %v", m.form, m.reErr)
		}
	})
	return m.re, m.reErr
}

// --- Defaults --------------------------------------------------------------

var defaults [2]struct {
	once sync.Once
	m    *Matcher
	err  error
}

// Default returns the matcher of the given form for the embedded emoji data.
// It is built on first use; concurrent callers wait for the build to finish.
func Default(form Form) (*Matcher, error) {
	if !form.valid() {
		return nil, &BuildError{Form: form, Index: -1, Err: ErrUnknownForm}
	}
	d := &defaults[form]
	d.once.Do(func() {
		d.m, d.err = Build(seqtab.Default(), form)
	})
	return d.m, d.err
}
