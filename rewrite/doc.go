/*
Package rewrite transforms emoji sequences found in text.

An Encoder replaces every emoji by numeric character references, one per
code-point, for storage in environments which cannot hold 4-byte UTF-8.
A Staticizer replaces every emoji, whether given as plain characters or as
character references, by an <img> element pointing to a remotely hosted image,
for environments which cannot display the emoji glyph natively.

Text outside of emoji sequences is never touched. Both rewriters are safe
for concurrent use.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package rewrite

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'emojify.rewrite'
func tracer() tracing.Trace {
	return tracing.Select("emojify.rewrite")
}

// ErrWrongForm is returned if a matcher of the wrong form is handed to a
// rewriter.
var ErrWrongForm = errors.New("matcher of wrong form")
