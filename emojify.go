/*
Package emojify finds emoji in text and rewrites them for environments which
cannot store or display them.

There are two rewrites. Encode replaces every emoji sequence by HTML numeric
character references, one per code-point, for storage which cannot hold 4-byte
UTF-8 characters. Staticize replaces every emoji sequence, in plain or in
encoded form, by an <img> element pointing to a remotely hosted image:

	s := emojify.Staticize("Servus 🙂")
	// Servus <img src="https://s.w.org/images/core/emoji/15.1/72x72/1f642.png" alt="🙂" ... />

Emoji sequences are taken from the Unicode emoji test data (UTS #51), which
is embedded into the binary. A sequence is recognized as a whole, including
skin tone modifiers, zero width joiners, variation selectors and tags, with
the longest sequence winning at any position.

The package level functions use a process-wide Rewriter with default settings.
Clients may create their own Rewriter with New, configured by a
schuko.Configuration.

# Packages

▪︎ seqtab holds the table of emoji sequences.

▪︎ match compiles the table into matchers, one per input form.

▪︎ rewrite implements encoding and image substitution.

▪︎ assets resolves the image locations.

▪︎ coverage checks emoji sequences against a font.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package emojify

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/emojify/assets"
	"github.com/npillmayer/emojify/match"
	"github.com/npillmayer/emojify/rewrite"
	"github.com/npillmayer/emojify/seqtab"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'emojify'
func tracer() tracing.Trace {
	return tracing.Select("emojify")
}

// Configuration keys read by New.
const (
	KeyRasterURL = "emoji.raster-url" // base URL of raster images
	KeyVectorURL = "emoji.vector-url" // base URL of vector images
	KeyClass     = "emoji.class"      // CSS class of <img> elements
	KeyStatuses  = "emoji.statuses"   // comma separated qualification statuses
)

// Rewriter bundles the matchers and rewriters for one sequence table.
// It is safe for concurrent use.
type Rewriter struct {
	table    *seqtab.Table
	cp, ent  *match.Matcher
	resolver *assets.Resolver
	encoder  *rewrite.Encoder
	static   *rewrite.Staticizer
}

// New creates a Rewriter. conf may be nil, resulting in the default
// sequence table and the default image locations.
func New(conf schuko.Configuration) (*Rewriter, error) {
	rw := &Rewriter{resolver: assets.NewResolver()}
	var err error
	if conf != nil && conf.IsSet(KeyStatuses) {
		rw.table, err = tableFor(conf.GetString(KeyStatuses))
		if err != nil {
			return nil, err
		}
		if rw.cp, err = match.Build(rw.table, match.Codepoints); err != nil {
			return nil, err
		}
		if rw.ent, err = match.Build(rw.table, match.Entities); err != nil {
			return nil, err
		}
	} else {
		rw.table = seqtab.Default()
		if rw.cp, err = match.Default(match.Codepoints); err != nil {
			return nil, err
		}
		if rw.ent, err = match.Default(match.Entities); err != nil {
			return nil, err
		}
	}
	class := ""
	if conf != nil {
		if url := conf.GetString(KeyRasterURL); url != "" {
			rw.resolver.Register(assets.Raster, assets.Const(url))
		}
		if url := conf.GetString(KeyVectorURL); url != "" {
			rw.resolver.Register(assets.Vector, assets.Const(url))
		}
		class = conf.GetString(KeyClass)
	}
	if rw.encoder, err = rewrite.NewEncoder(rw.cp); err != nil {
		return nil, err
	}
	rw.static, err = rewrite.NewStaticizer(rw.cp, rw.ent,
		rewrite.WithResolver(rw.resolver),
		rewrite.WithClass(class))
	if err != nil {
		return nil, err
	}
	tracer().Debugf("rewriter for emoji %s with %d sequences", rw.table.Version(), rw.table.Len())
	return rw, nil
}

func tableFor(statuses string) (*seqtab.Table, error) {
	var sts []seqtab.Status
	for _, name := range strings.Split(statuses, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		st := seqtab.StatusFromString(name)
		if st == 0 {
			return nil, fmt.Errorf("configuration %s: %w: %q", KeyStatuses, seqtab.ErrBadStatus, name)
		}
		sts = append(sts, st)
	}
	if len(sts) == 0 {
		return seqtab.Default(), nil
	}
	return seqtab.Parse(seqtab.Data(), seqtab.WithStatuses(sts...))
}

// Encode replaces every emoji sequence in text by numeric character
// references.
func (rw *Rewriter) Encode(text string) string {
	return rw.encoder.Encode(text)
}

// Staticize replaces every emoji sequence in text by an <img> element.
func (rw *Rewriter) Staticize(text string) string {
	return rw.static.Staticize(text)
}

// Table returns the sequence table of rw.
func (rw *Rewriter) Table() *seqtab.Table {
	return rw.table
}

// Matcher returns the matcher of rw for input form f.
func (rw *Rewriter) Matcher(f match.Form) *match.Matcher {
	if f == match.Entities {
		return rw.ent
	}
	return rw.cp
}

// Resolver returns the image location resolver of rw. Overrides registered
// with it take effect with the next call to Staticize.
func (rw *Rewriter) Resolver() *assets.Resolver {
	return rw.resolver
}

// Settings returns the resolved image locations for a client-side emoji
// detection script.
func (rw *Rewriter) Settings() assets.Settings {
	return rw.resolver.Settings(rw.table.Version())
}

// --- Default rewriter ------------------------------------------------------

var defaultRewriter struct {
	once sync.Once
	rw   *Rewriter
}

// Default returns the process-wide Rewriter with default settings.
func Default() *Rewriter {
	defaultRewriter.once.Do(func() {
		rw, err := New(nil)
		if err != nil {
			panic(fmt.Sprintf("emojify: embedded emoji data: %v", err))
		}
		defaultRewriter.rw = rw
	})
	return defaultRewriter.rw
}

// Encode replaces every emoji sequence in text by numeric character
// references, using the default Rewriter.
func Encode(text string) string {
	return Default().Encode(text)
}

// Staticize replaces every emoji sequence in text by an <img> element,
// using the default Rewriter.
func Staticize(text string) string {
	return Default().Staticize(text)
}

// Pattern returns the regular expression matching the emoji sequences of the
// default table in input form f.
func Pattern(f match.Form) string {
	return Default().Matcher(f).Pattern()
}
