/*
Package seqtab holds the table of recognized emoji sequences.

An emoji sequence is one or more Unicode code-points which together render
as a single emoji glyph. Simple emoji consist of a single code-point, others
are composed of a base character plus skin tone modifiers, zero width joiners,
gender signs and presentation selectors. Example:

	👮🏼‍♀️  = U+1F46E U+1F3FC U+200D U+2640 U+FE0F

The table is a static, versioned data asset. It is read from the UTS #51
test data file "emoji-test.txt", which is embedded into this package.
Upgrading to a newer emoji version means swapping the data file; the version
is taken from the file's header.

Sequences in a table are ordered by descending length. A matcher trying
entries in table order will therefore always find the longest sequence
starting at a given position before any of its prefixes.

# Links

UTS #51 Unicode Emoji:
https://www.unicode.org/reports/tr51/

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package seqtab

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'emojify.seqtab'
func tracer() tracing.Trace {
	return tracing.Select("emojify.seqtab")
}
