package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/emojify/match"
	"github.com/npillmayer/emojify/rewrite"
	"github.com/thatisuday/commando"
)

func runEncodeCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(mustFlagBool(flags["trace"], "trace"))
	rw := newRewriter(flags)
	text := readInput(args["text"], flags["input"])
	fmt.Print(rw.Encode(text))
	if args["text"].Value != "" {
		fmt.Println()
	}
}

func runStaticizeCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(mustFlagBool(flags["trace"], "trace"))
	rw := newRewriter(flags)
	text := readInput(args["text"], flags["input"])
	var out string
	if fontPath := mustFlagString(flags["font"], "font"); fontPath != "" && fontPath != "-" {
		f := mustLoadFont(fontPath)
		class := mustFlagString(flags["class"], "class")
		st, err := rewrite.NewStaticizer(
			rw.Matcher(match.Codepoints),
			rw.Matcher(match.Entities),
			rewrite.WithResolver(rw.Resolver()),
			rewrite.WithClass(class),
			rewrite.WithFilter(f.Uncovered()),
		)
		if err != nil {
			fatalf("%v", err)
		}
		out = st.Staticize(text)
	} else {
		out = rw.Staticize(text)
	}
	fmt.Print(out)
	if args["text"].Value != "" {
		fmt.Println()
	}
}

func runRegexCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	form, err := match.ParseForm(mustFlagString(flags["form"], "form"))
	if err != nil {
		fatalf("%v", err)
	}
	rw := newRewriter(flags)
	m := rw.Matcher(form)
	if _, err := m.Regexp(); err != nil {
		fatalf("pattern does not compile: %v", err)
	}
	pattern := m.Pattern()
	out := mustFlagString(flags["output"], "output")
	if out == "" || out == "-" {
		fmt.Println(pattern)
		return
	}
	if err := os.WriteFile(out, []byte(pattern+"\n"), 0o644); err != nil {
		fatalf("cannot write %s: %v", out, err)
	}
	fmt.Printf("%s pattern for %d emoji sequences (version %s) written to %s\n",
		form, m.Len(), m.Version(), out)
}
