package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "encode", "static", "staticize":
		pterm.Info.Println("encode <text> / static <text>")
		pterm.Println(`
	encode replaces every emoji sequence by numeric character references,
	one per code-point:  🙂  =>  &#x1f642;

	static replaces every emoji sequence, plain or encoded, by an image:
	&#x1f642;  =>  <img src="https://s.w.org/images/core/emoji/15.1/72x72/1f642.png" alt="🙂" ... />
	`)
	case "match", "lookup":
		pterm.Info.Println("match <text> / lookup <hex> ...")
		pterm.Println(`
	match lists the emoji sequences found in a text, with byte offsets.
	Entity-encoded sequences are found as well.

	lookup looks up a sequence by its code-points, given in hex:

	    lookup 1f46e 1f3fc 200d 2640 fe0f
	`)
	case "url", "urls":
		pterm.Info.Println("url [raster|vector] [<base-url>|-]")
		pterm.Println(`
	url without arguments prints the resolved image locations.
	url raster <base-url> overrides the location of PNG images,
	url raster - removes the override.
	`)
	case "font", "cover", "coverage":
		pterm.Info.Println("font <path> / cover [<text>]")
		pterm.Println(`
	font loads a TrueType/OpenType font.
	cover without a text reports the share of emoji sequences the font has
	glyphs for. With a text, it staticizes only emoji the font cannot show.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	encode <text>     replace emoji by character references
	static <text>     replace emoji by <img> elements
	match <text>      list emoji sequences in text
	lookup <hex>...   look up a sequence by code-points
	url [kind] [url]  show or override image locations
	font <path>       load a font
	cover [<text>]    check emoji coverage of the font
	help <command>    help on a command
	quit              leave
	`)
	}
}
