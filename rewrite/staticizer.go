package rewrite

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/emojify/assets"
	"github.com/npillmayer/emojify/match"
	"github.com/npillmayer/emojify/seqtab"
)

// DefaultClass is the CSS class of generated <img> elements.
const DefaultClass = "wp-smiley"

// Staticizer replaces emoji by references to remotely hosted images.
type Staticizer struct {
	codepoints *match.Matcher
	entities   *match.Matcher
	resolver   *assets.Resolver
	class      string
	keep       func(seqtab.Sequence) bool
}

// Option configures a Staticizer.
type Option func(*Staticizer)

// WithResolver sets the resolver consulted for the image base URL.
// Without it, the default CDN location is used.
func WithResolver(r *assets.Resolver) Option {
	return func(s *Staticizer) {
		s.resolver = r
	}
}

// WithClass sets the CSS class of generated <img> elements.
func WithClass(class string) Option {
	return func(s *Staticizer) {
		if class != "" {
			s.class = class
		}
	}
}

// WithFilter restricts replacement to sequences for which keep is true.
// Other sequences are left as they are.
func WithFilter(keep func(seqtab.Sequence) bool) Option {
	return func(s *Staticizer) {
		s.keep = keep
	}
}

// NewStaticizer creates a staticizer from a matcher for plain code-points and
// a matcher for character references.
func NewStaticizer(codepoints, entities *match.Matcher, opts ...Option) (*Staticizer, error) {
	if codepoints == nil || codepoints.Form() != match.Codepoints {
		return nil, fmt.Errorf("staticizer: codepoints: %w", ErrWrongForm)
	}
	if entities == nil || entities.Form() != match.Entities {
		return nil, fmt.Errorf("staticizer: entities: %w", ErrWrongForm)
	}
	s := &Staticizer{
		codepoints: codepoints,
		entities:   entities,
		class:      DefaultClass,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// BaseURL returns the currently effective base URL for raster images.
func (s *Staticizer) BaseURL() string {
	return s.resolver.Resolve(assets.Raster, assets.DefaultURL(assets.Raster, s.codepoints.Version()))
}

// Staticize replaces every emoji sequence in text by an <img> element:
//
//	<img src="{base}1f642.png" alt="🙂" class="wp-smiley" style="height: 1em; max-height: 1em;" />
//
// Sequences may be given as plain characters or as character references; at
// any position plain characters are tried first. The alt attribute always
// holds the emoji characters. The base URL is resolved once per call.
//
// Only text between tags is rewritten. Tags, from '<' to the next '>', are
// copied unchanged, so attribute values keep their emoji and staticizing
// the output again changes nothing. A '<' without a closing '>' is text.
func (s *Staticizer) Staticize(text string) string {
	var sb strings.Builder
	base := ""
	last := 0
	for i := 0; i < len(text); {
		if text[i] == '<' {
			if j := strings.IndexByte(text[i+1:], '>'); j >= 0 {
				i += j + 2
				continue
			}
		}
		mt, ok := s.codepoints.MatchAt(text, i)
		if !ok && text[i] == '&' {
			mt, ok = s.entities.MatchAt(text, i)
		}
		if !ok {
			_, size := utf8.DecodeRuneInString(text[i:])
			i += size
			continue
		}
		i = mt.End
		if s.keep != nil && !s.keep(mt.Sequence) {
			continue
		}
		if base == "" {
			base = s.BaseURL()
			sb.Grow(len(text) + 128)
		}
		sb.WriteString(text[last:mt.Start])
		s.writeImg(&sb, base, mt.Sequence)
		tracer().Debugf("staticize %s (%s form)", mt.Sequence.Stem(" "), mt.Form)
		last = mt.End
	}
	if base == "" {
		return text
	}
	sb.WriteString(text[last:])
	return sb.String()
}

func (s *Staticizer) writeImg(sb *strings.Builder, base string, seq seqtab.Sequence) {
	sb.WriteString(`<img src="`)
	sb.WriteString(base)
	sb.WriteString(seq.Stem("-"))
	sb.WriteByte('.')
	sb.WriteString(assets.Raster.Ext())
	sb.WriteString(`" alt="`)
	sb.WriteString(seq.String())
	sb.WriteString(`" class="`)
	sb.WriteString(s.class)
	sb.WriteString(`" style="height: 1em; max-height: 1em;" />`)
}
