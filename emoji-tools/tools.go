package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/emojify"
	"github.com/npillmayer/emojify/coverage"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/thatisuday/commando"
)

func main() {
	commando.
		SetExecutableName("emoji-tools").
		SetVersion("v0.0.1").
		SetDescription("CLI for rewriting emoji in text files and inspecting emoji data.")

	commando.
		Register("encode").
		SetDescription("Replace emoji by numeric character references. Reads stdin if no text is given.").
		SetShortDescription("encode emoji").
		AddArgument("text...", "text to encode (quote it to keep commas out)", "").
		AddFlag("input,i", "input file ('-' for stdin)", commando.String, "-").
		AddFlag("statuses,s", "qualification statuses to load, comma separated", commando.String, "-").
		AddFlag("trace,t", "print debug traces to stderr", commando.Bool, nil).
		SetAction(runEncodeCommand)

	commando.
		Register("staticize").
		SetDescription("Replace emoji by <img> elements. Reads stdin if no text is given.").
		SetShortDescription("emoji to images").
		AddArgument("text...", "text to staticize (quote it to keep commas out)", "").
		AddFlag("input,i", "input file ('-' for stdin)", commando.String, "-").
		AddFlag("raster-url,r", "base URL of PNG images", commando.String, "-").
		AddFlag("class,c", "CSS class of <img> elements", commando.String, "wp-smiley").
		AddFlag("font,f", "replace only emoji this font has no glyphs for", commando.String, "-").
		AddFlag("statuses,s", "qualification statuses to load, comma separated", commando.String, "-").
		AddFlag("trace,t", "print debug traces to stderr", commando.Bool, nil).
		SetAction(runStaticizeCommand)

	commando.
		Register("regex").
		SetDescription("Print the regular expression matching all emoji sequences.").
		SetShortDescription("emoji regex").
		AddFlag("form,F", "input form: codepoints|entities", commando.String, "codepoints").
		AddFlag("output,o", "output file ('-' for stdout)", commando.String, "-").
		AddFlag("statuses,s", "qualification statuses to load, comma separated", commando.String, "-").
		SetAction(runRegexCommand)

	commando.
		Register("table").
		SetDescription("List the emoji sequences of the embedded emoji data.").
		SetShortDescription("list emoji").
		AddArgument("names...", "optional words to look for in emoji names", "").
		AddFlag("kind,k", "only sequences of a kind (Simple, ZWJ, Flag, Keycap, Modified, Tag, Presentation)", commando.String, "-").
		AddFlag("statuses,s", "qualification statuses to load, comma separated", commando.String, "-").
		SetAction(runTableCommand)

	commando.
		Register("coverage").
		SetDescription("Report which emoji sequences a font has glyphs for.").
		SetShortDescription("font coverage").
		AddArgument("font", "TrueType/OpenType font file path", "").
		AddFlag("missing,m", "list code-points without a glyph", commando.Bool, nil).
		SetAction(runCoverageCommand)

	commando.Parse(nil)
}

// setupTracing routes tracing output to stderr, at level Debug if traces
// are requested.
func setupTracing(debug bool) {
	level := "Error"
	if debug {
		level = "Debug"
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":        "go",
		"trace.emojify":          level,
		"trace.emojify.seqtab":   level,
		"trace.emojify.match":    level,
		"trace.emojify.rewrite":  level,
		"trace.emojify.coverage": level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fatalf("cannot configure tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	for _, key := range []string{"emojify", "emojify.seqtab", "emojify.match", "emojify.rewrite", "emojify.coverage"} {
		tracing.Select(key).SetOutput(os.Stderr)
	}
}

// newRewriter creates a rewriter from command line flags. Flag values of "-"
// are treated as unset.
func newRewriter(flags map[string]commando.FlagValue) *emojify.Rewriter {
	conf := testconfig.Conf{}
	set := func(flag, key string) {
		fv, ok := flags[flag]
		if !ok {
			return
		}
		if v := mustFlagString(fv, flag); v != "" && v != "-" {
			conf[key] = v
		}
	}
	set("raster-url", emojify.KeyRasterURL)
	set("class", emojify.KeyClass)
	set("statuses", emojify.KeyStatuses)
	rw, err := emojify.New(conf)
	if err != nil {
		fatalf("%v", err)
	}
	return rw
}

// readInput returns the text argument, or the content of the input file if
// the text argument is empty.
func readInput(textArg commando.ArgValue, inFlag commando.FlagValue) string {
	if text := textArg.Value; text != "" {
		return text
	}
	path := strings.TrimSpace(mustFlagString(inFlag, "input"))
	text, err := readAll(path, os.Stdin)
	if err != nil {
		fatalf("%v", err)
	}
	return text
}

func readAll(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read input: %w", err)
	}
	return string(b), nil
}

func mustLoadFont(path string) *coverage.Font {
	f, err := coverage.Load(path)
	if err != nil {
		fatalf("cannot load font %s: %v", path, err)
	}
	return f
}

func splitCSVSpace(spec string) []string {
	return strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return s
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "emoji-tools: "+format+"\n", args...)
	os.Exit(1)
}
