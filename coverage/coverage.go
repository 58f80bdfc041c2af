/*
Package coverage checks which emoji sequences a font is able to display by
itself.

Hosts which know the font their text will be rendered with may want to
replace only those emoji by images which the font lacks. A Font answers this
question from the font's character map:

	f, err := coverage.Load("/usr/share/fonts/noto/NotoColorEmoji.ttf")
	...
	s, err := rewrite.NewStaticizer(cp, ent, rewrite.WithFilter(f.Uncovered()))

Coverage is decided per code-point. Joiners and variation selectors are
ignored, and ligatures for multi-code-point sequences are not inspected.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package coverage

import (
	"bytes"
	"fmt"
	"unicode"

	"github.com/go-text/typesetting/font"
	"github.com/npillmayer/emojify/internal/fontload"
	"github.com/npillmayer/emojify/seqtab"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/rangetable"
)

// tracer traces with key 'emojify.coverage'
func tracer() tracing.Trace {
	return tracing.Select("emojify.coverage")
}

// Font is a font queried for emoji coverage. It is safe for concurrent use.
type Font struct {
	sf   *fontload.ScalableFont
	cmap *font.Font // read-only, shareable between goroutines
}

// Load loads a TrueType or OpenType font file.
func Load(path string) (*Font, error) {
	sf, err := fontload.LoadOpenTypeFont(path)
	if err != nil {
		return nil, err
	}
	return wrap(sf)
}

// Parse parses a TrueType or OpenType font from memory.
func Parse(data []byte) (*Font, error) {
	sf, err := fontload.ParseOpenTypeFont(data)
	if err != nil {
		return nil, err
	}
	return wrap(sf)
}

func wrap(sf *fontload.ScalableFont) (*Font, error) {
	face, err := font.ParseTTF(bytes.NewReader(sf.Binary))
	if err != nil {
		return nil, fmt.Errorf("font %q: %w", sf.Fontname, err)
	}
	tracer().Debugf("font %q has %d glyphs", sf.Fontname, sf.GlyphCount())
	return &Font{sf: sf, cmap: face.Font}, nil
}

// Name returns the full name of the font.
func (f *Font) Name() string {
	return f.sf.Fontname
}

// HasGlyph reports whether the font maps r to a glyph.
func (f *Font) HasGlyph(r rune) bool {
	_, ok := f.cmap.NominalGlyph(r)
	return ok
}

// Covers reports whether the font has a glyph for every code-point of seq
// which is displayed by itself.
func (f *Font) Covers(seq seqtab.Sequence) bool {
	if seq.Len() == 0 {
		return false
	}
	for _, c := range seq.Codepoints {
		if c == seqtab.ZWJ || c.IsVariationSelector() {
			continue
		}
		if !f.HasGlyph(rune(c)) {
			return false
		}
	}
	return true
}

// Uncovered returns a filter selecting the sequences the font does not
// cover. It is meant to be used with rewrite.WithFilter.
func (f *Font) Uncovered() func(seqtab.Sequence) bool {
	return func(seq seqtab.Sequence) bool {
		return !f.Covers(seq)
	}
}

// Report summarizes the coverage of a sequence table by a font.
type Report struct {
	Font      string
	Version   string
	Sequences int                    // sequences in the table
	Covered   int                    // sequences covered by the font
	ByKind    map[seqtab.Kind][2]int // per kind: covered, total
	Missing   *unicode.RangeTable    // code-points of the table without a glyph
}

// Percent returns the share of covered sequences.
func (r Report) Percent() float64 {
	if r.Sequences == 0 {
		return 0
	}
	return 100 * float64(r.Covered) / float64(r.Sequences)
}

// Report checks every sequence of tab against the font.
func (f *Font) Report(tab *seqtab.Table) Report {
	rep := Report{
		Font:    f.Name(),
		Version: tab.Version(),
		ByKind:  make(map[seqtab.Kind][2]int),
	}
	for _, seq := range tab.All() {
		k := seq.Kind()
		cnt := rep.ByKind[k]
		cnt[1]++
		rep.Sequences++
		if f.Covers(seq) {
			cnt[0]++
			rep.Covered++
		}
		rep.ByKind[k] = cnt
	}
	var missing []rune
	if cps := tab.Codepoints(); cps != nil {
		rangetable.Visit(cps, func(r rune) {
			if !f.HasGlyph(r) {
				missing = append(missing, r)
			}
		})
	}
	rep.Missing = rangetable.New(missing...)
	tracer().Infof("font %q covers %d of %d sequences", rep.Font, rep.Covered, rep.Sequences)
	return rep
}
