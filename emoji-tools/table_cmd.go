package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/emojify/rewrite"
	"github.com/npillmayer/emojify/seqtab"
	"github.com/thatisuday/commando"
	"golang.org/x/text/unicode/rangetable"
)

func runTableCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	rw := newRewriter(flags)
	kind, filterKind := parseKind(mustFlagString(flags["kind"], "kind"))
	words := splitCSVSpace(strings.ToLower(args["names"].Value))
	tab := rw.Table()
	fmt.Printf("Emoji data version %s, %d sequences\n", tab.Version(), tab.Len())
	count := 0
	for _, seq := range tab.All() {
		if filterKind && seq.Kind() != kind {
			continue
		}
		if !nameMatches(seq.Name, words) {
			continue
		}
		count++
		fmt.Printf("%-40s %-20s %-12s %-6s %s  %s\n",
			seq.Stem(" "), seq.Status, seq.Kind(), seq.Since, seq, seq.Name)
	}
	fmt.Printf("%d sequences listed\n", count)
}

func parseKind(name string) (seqtab.Kind, bool) {
	name = strings.TrimSpace(name)
	if name == "" || name == "-" {
		return 0, false
	}
	for k := seqtab.Simple; k <= seqtab.Presentation; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, true
		}
	}
	fatalf("unknown kind of emoji sequence: %s", name)
	return 0, false
}

// nameMatches is true if all words occur in name.
func nameMatches(name string, words []string) bool {
	name = strings.ToLower(name)
	for _, w := range words {
		if !strings.Contains(name, w) {
			return false
		}
	}
	return true
}

func runCoverageCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}
	f := mustLoadFont(fontPath)
	tab := seqtab.Default()
	rep := f.Report(tab)
	fmt.Printf("Font: %s\n", rep.Font)
	fmt.Printf("Emoji: version %s\n", rep.Version)
	fmt.Printf("Covered: %d of %d sequences (%.1f%%)\n", rep.Covered, rep.Sequences, rep.Percent())
	for k := seqtab.Simple; k <= seqtab.Presentation; k++ {
		if cnt, ok := rep.ByKind[k]; ok {
			fmt.Printf("  %-12s %5d of %5d\n", k, cnt[0], cnt[1])
		}
	}
	if !mustFlagBool(flags["missing"], "missing") {
		return
	}
	rangetable.Visit(rep.Missing, func(r rune) {
		seq := seqtab.Seq(seqtab.Codepoint(r))
		name := ""
		if s, ok := tab.Lookup(seq.Codepoints...); ok {
			name = s.Name
		}
		fmt.Printf("missing: U+%04X %s %s\n", r, rewrite.EncodeSequence(seq), name)
	})
}
