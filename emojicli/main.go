package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/emojify"
	"github.com/npillmayer/emojify/coverage"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/spf13/pflag"
)

// tracer traces with key 'emojify.cli'
func tracer() tracing.Trace {
	return tracing.Select("emojify.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":        "go",
		"trace.emojify.cli":      "Info",
		"trace.emojify":          "Error",
		"trace.emojify.seqtab":   "Error",
		"trace.emojify.match":    "Error",
		"trace.emojify.rewrite":  "Error",
		"trace.emojify.coverage": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	pflag.CommandLine.SortFlags = false
	tlevel := pflag.StringP("trace", "t", "Info", "Trace level [Debug|Info|Error]")
	fontname := pflag.StringP("font", "f", "", "Font to check emoji coverage against")
	rasterURL := pflag.String("raster-url", "", "Base URL of emoji PNG images")
	vectorURL := pflag.String("vector-url", "", "Base URL of emoji SVG images")
	class := pflag.String("class", "", "CSS class of generated <img> elements")
	statuses := pflag.String("statuses", "", "Qualification statuses to load, comma separated")
	pflag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)  // will set the correct level later
	pterm.Info.Println("Welcome to Emojify CLI") // colored welcome message
	//
	rwconf := testconfig.Conf{
		emojify.KeyRasterURL: *rasterURL,
		emojify.KeyVectorURL: *vectorURL,
		emojify.KeyClass:     *class,
	}
	if *statuses != "" {
		rwconf[emojify.KeyStatuses] = *statuses
	}
	rw, err := emojify.New(rwconf)
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(2)
	}
	//
	// set up REPL
	repl, err := readline.New("emoji > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl, rw: rw}
	//
	// load font to check against, if any
	if *fontname != "" {
		if err := intp.loadFont(*fontname); err != nil { // font name provided by flag
			tracer().Errorf(err.Error())
			os.Exit(4)
		}
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	tracer().Infof("Emoji data version %s, %d sequences", rw.Table().Version(), rw.Table().Len())
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	rw   *emojify.Rewriter
	font *coverage.Font
	repl *readline.Instance
}

func (intp *Intp) String() string {
	if intp == nil || intp.rw == nil {
		return "()"
	}
	font := "<none>"
	if intp.font != nil {
		font = intp.font.Name()
	}
	return fmt.Sprintf("( emoji=%s font=%s )", intp.rw.Table().Version(), font)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		op := parseCommand(line)
		err, quit := intp.execute(op)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op is a single command with its argument, which is the rest of the input
// line.
type Op struct {
	code int
	arg  string
}

const (
	// op-code QUIT will not have an argument
	QUIT int = iota
	// op-codes below may have arguments
	HELP
	ENCODE
	STATIC
	MATCH
	LOOKUP
	URL
	FONT
	COVER
)

var opMap = map[string]int{
	"quit":   QUIT,
	"help":   HELP,
	"encode": ENCODE,
	"static": STATIC,
	"match":  MATCH,
	"lookup": LOOKUP,
	"url":    URL,
	"font":   FONT,
	"cover":  COVER,
}

var opNames = []string{
	"quit",
	"help",
	"encode",
	"static",
	"match",
	"lookup",
	"url",
	"font",
	"cover",
}

// parseCommand splits a line into a command word and its argument.
// Unknown commands are mapped to HELP.
func parseCommand(line string) Op {
	word, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	code, ok := opMap[strings.ToLower(word)]
	if !ok {
		return Op{code: HELP, arg: word}
	}
	op := Op{code: code}
	if code != QUIT {
		op.arg = strings.TrimSpace(arg)
	}
	tracer().Debugf("parsed command: %s %q", opNames[op.code], op.arg)
	return op
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:   quitOp,
	HELP:   helpOp,
	ENCODE: encodeOp,
	STATIC: staticOp,
	MATCH:  matchOp,
	LOOKUP: lookupOp,
	URL:    urlOp,
	FONT:   fontOp,
	COVER:  coverOp,
}

func (intp *Intp) execute(op Op) (err error, stop bool) {
	f, ok := commandFn[op.code]
	if !ok {
		pterm.Error.Printf("unknown command code: %d\n", op.code)
		return nil, false
	}
	return f(intp, &op)
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

// --- Font Loading -----------------------------------------------------

var errNoFont = errors.New("no font loaded; use 'font <path>'")

func (intp *Intp) loadFont(fontname string) (err error) {
	f, err := coverage.Load(fontname)
	if err != nil {
		tracer().Errorf("cannot load font %s: %s", fontname, err)
		return err
	}
	intp.font = f
	tracer().Infof("loaded font = %s", f.Name())
	return nil
}

func (intp *Intp) checkFont() error {
	if intp.font == nil {
		return errNoFont
	}
	return nil
}
