package rewrite

import (
	"fmt"

	"github.com/npillmayer/emojify/internal/entity"
	"github.com/npillmayer/emojify/match"
	"github.com/npillmayer/emojify/seqtab"
)

// Encoder replaces emoji by numeric character references.
type Encoder struct {
	m *match.Matcher
}

// NewEncoder creates an encoder. m has to be a matcher for plain code-points.
func NewEncoder(m *match.Matcher) (*Encoder, error) {
	if m == nil || m.Form() != match.Codepoints {
		return nil, fmt.Errorf("encoder: %w", ErrWrongForm)
	}
	return &Encoder{m: m}, nil
}

// Encode replaces every emoji sequence in text by the concatenation of the
// references of its code-points, e.g. "&#x1f46e;&#x1f3fc;". Hex digits are
// lowercase. The output contains no emoji characters, so encoding it again
// leaves it unchanged.
func (e *Encoder) Encode(text string) string {
	buf := make([]byte, 0, 5*entity.MaxLen)
	return e.m.ReplaceAll(text, func(mt match.Match) string {
		buf = appendSequence(buf[:0], mt.Sequence)
		tracer().Debugf("encode %s -> %s", mt.Sequence.Stem(" "), buf)
		return string(buf)
	})
}

// EncodeSequence returns the character references for the code-points of seq.
func EncodeSequence(seq seqtab.Sequence) string {
	return string(appendSequence(make([]byte, 0, seq.Len()*entity.MaxLen), seq))
}

func appendSequence(dst []byte, seq seqtab.Sequence) []byte {
	for _, c := range seq.Codepoints {
		dst = entity.Append(dst, rune(c))
	}
	return dst
}
