package main

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/npillmayer/emojify/assets"
	"github.com/npillmayer/emojify/match"
	"github.com/npillmayer/emojify/rewrite"
	"github.com/npillmayer/emojify/seqtab"
	"github.com/pterm/pterm"
)

var errNoText = errors.New("command needs a text argument")

func encodeOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		return errNoText, false
	}
	pterm.Println(intp.rw.Encode(op.arg))
	return nil, false
}

func staticOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		return errNoText, false
	}
	pterm.Println(intp.rw.Staticize(op.arg))
	return nil, false
}

func matchOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		return errNoText, false
	}
	matches := intp.rw.Matcher(match.Codepoints).FindAll(op.arg)
	matches = append(matches, intp.rw.Matcher(match.Entities).FindAll(op.arg)...)
	slices.SortFunc(matches, func(a, b match.Match) int {
		return a.Start - b.Start
	})
	if len(matches) == 0 {
		pterm.Println("no emoji found")
		return nil, false
	}
	data := [][]string{
		{"Offset", "Form", "Glyph", "Code-points", "Kind", "Name"},
	}
	for _, m := range matches {
		data = append(data, []string{
			fmt.Sprintf("%d-%d", m.Start, m.End),
			m.Form.String(),
			m.Sequence.String(),
			m.Sequence.Stem(" "),
			m.Sequence.Kind().String(),
			m.Sequence.Name,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func lookupOp(intp *Intp, op *Op) (error, bool) {
	cps, err := parseCodepoints(op.arg)
	if err != nil {
		return err, false
	}
	seq, ok := intp.rw.Table().Lookup(cps...)
	if !ok {
		return fmt.Errorf("no emoji sequence %s in table", seqtab.Seq(cps...).Stem(" ")), false
	}
	printSequence(seq)
	return nil, false
}

// parseCodepoints reads hex code-points, separated by blanks or dashes,
// optionally prefixed by "U+".
func parseCodepoints(s string) ([]seqtab.Codepoint, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '-' || r == ','
	})
	if len(fields) == 0 {
		return nil, errors.New("no code-points given")
	}
	cps := make([]seqtab.Codepoint, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimPrefix(strings.ToUpper(f), "U+")
		n, err := strconv.ParseUint(f, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("not a hex code-point: %q", f)
		}
		cps = append(cps, seqtab.Codepoint(n))
	}
	return cps, nil
}

func printSequence(seq seqtab.Sequence) {
	data := [][]string{
		{"Glyph", seq.String()},
		{"Name", seq.Name},
		{"Code-points", seq.Stem(" ")},
		{"Status", seq.Status.String()},
		{"Kind", seq.Kind().String()},
		{"Since", seq.Since},
		{"Entities", rewrite.EncodeSequence(seq)},
	}
	pterm.DefaultTable.WithData(data).Render()
}

func urlOp(intp *Intp, op *Op) (error, bool) {
	fields := strings.Fields(op.arg)
	if len(fields) == 2 {
		kind, ok := assets.ParseKind(fields[0])
		if !ok {
			return fmt.Errorf("unknown asset kind: %s", fields[0]), false
		}
		if fields[1] == "-" {
			intp.rw.Resolver().Remove(kind)
			tracer().Infof("removed %s override", kind)
		} else {
			intp.rw.Resolver().Register(kind, assets.Const(fields[1]))
			tracer().Infof("%s images now at %s", kind, fields[1])
		}
	} else if len(fields) != 0 {
		help("url")
		return nil, false
	}
	s := intp.rw.Settings()
	pterm.DefaultTable.WithHasHeader().WithData([][]string{
		{"Kind", "Base URL", "Ext"},
		{assets.Raster.String(), s.BaseURL, s.Ext},
		{assets.Vector.String(), s.SVGURL, s.SVGExt},
	}).Render()
	return nil, false
}

func fontOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		if err := intp.checkFont(); err != nil {
			return err, false
		}
		pterm.Printf("font: %s\n", intp.font.Name())
		return nil, false
	}
	return intp.loadFont(op.arg), false
}

func coverOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkFont(); err != nil {
		return err, false
	}
	if op.arg != "" {
		st, err := rewrite.NewStaticizer(
			intp.rw.Matcher(match.Codepoints),
			intp.rw.Matcher(match.Entities),
			rewrite.WithResolver(intp.rw.Resolver()),
			rewrite.WithFilter(intp.font.Uncovered()),
		)
		if err != nil {
			return err, false
		}
		pterm.Println(st.Staticize(op.arg))
		return nil, false
	}
	rep := intp.font.Report(intp.rw.Table())
	pterm.Printf("%s covers %d of %d emoji sequences (%.1f%%)\n",
		rep.Font, rep.Covered, rep.Sequences, rep.Percent())
	data := [][]string{
		{"Kind", "Covered", "Total"},
	}
	for k := seqtab.Simple; k <= seqtab.Presentation; k++ {
		cnt, ok := rep.ByKind[k]
		if !ok {
			continue
		}
		data = append(data, []string{
			k.String(),
			strconv.Itoa(cnt[0]),
			strconv.Itoa(cnt[1]),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}
