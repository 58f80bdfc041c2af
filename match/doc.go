/*
Package match finds emoji sequences in text.

A Matcher is compiled from a table of emoji sequences for one of two input
forms:

▪︎ Codepoints: the text contains the emoji as plain UTF-8 characters.

▪︎ Entities: the emoji's code-points have already been encoded as
hexadecimal numeric character references, e.g. "&#x1f642;".

Matching is greedy: at every position the longest sequence of the table
wins, and matches never overlap. Internally a matcher walks a trie of all
sequences, remembering the deepest terminal node reached. For clients who
prefer regular expressions, a matcher will also hand out an equivalent
pattern, consisting of an alternation of all sequences, longest first.

Compiled matchers are immutable and safe for concurrent use. Default
matchers for the embedded emoji data are built once per process, on first
use.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package match

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'emojify.match'
func tracer() tracing.Trace {
	return tracing.Select("emojify.match")
}
