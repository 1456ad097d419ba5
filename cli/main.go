package main

/**
 * golipi - Indian language script and legacy font converters
 * Copyright Subin Siby, 2021
 * Licensed under AGPL-3.0-only
 */

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/varnamproject/golipi/golipi"
)

// tracer traces with key 'golipi.cli'
func tracer() tracing.Trace {
	return tracing.Select("golipi.cli")
}

// convertFunc converts one piece of input text
type convertFunc func(string) (string, error)

type output struct {
	html     bool
	describe bool
}

func main() {
	langFlag := flag.String("lang", "hindi", "Language for phonetic input, a name or a BCP 47 tag")
	fromFlag := flag.String("from", "", "Convert from this font (unicode, krutidev, chanakya, preeti, ...)")
	toFlag := flag.String("to", string(golipi.FontUnicode), "Convert to this font")
	reverseFlag := flag.Bool("reverse", false, "Swap -from and -to")
	htmlFlag := flag.Bool("html", false, "Also print the result as HTML character references")
	describeFlag := flag.Bool("describe", false, "List the code points and aksharas of the result")
	bytesFlag := flag.Bool("bytes", false, "Argument is a file of legacy font bytes, output legacy fonts as bytes")
	compileFlag := flag.String("compile", "", "Write all schemes and glyph tables to this SQLite file")
	listFlag := flag.Bool("list", false, "List languages and fonts")
	traceFlag := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	interactiveFlag := flag.Bool("i", false, "Interactive mode")

	flag.Parse()

	initTracing(*traceFlag)
	initDisplay()

	if *compileFlag != "" {
		if err := golipi.CompileSchemes(context.Background(), *compileFlag); err != nil {
			fail(err)
		}
		pterm.Success.Printfln("Compiled schemes to %s", *compileFlag)
		return
	}

	if *listFlag {
		printLists()
		return
	}

	from, to := golipi.Font(*fromFlag), golipi.Font(*toFlag)
	if *reverseFlag {
		from, to = to, from
	}

	var convert convertFunc
	if from != "" {
		convert = func(text string) (string, error) {
			return golipi.ConvertFont(text, from, to)
		}
	} else {
		lang, err := golipi.LookupLanguage(*langFlag)
		if err != nil {
			fail(err)
		}
		tracer().Infof("phonetic input for %s", lang.Name)
		convert = func(text string) (string, error) {
			return golipi.Transliterate(text, lang.ID)
		}
	}

	out := output{html: *htmlFlag, describe: *describeFlag}

	if *interactiveFlag {
		repl(convert, out)
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		fail(fmt.Errorf("nothing to convert, give text as arguments or use -i"))
	}

	if *bytesFlag {
		convertBytes(args[0], from, to, convert)
		return
	}

	result, err := convert(strings.Join(args, " "))
	if err != nil {
		pterm.Warning.Println(err)
	}
	out.print(result)
}

func initTracing(level string) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":  "go",
		"trace.golipi":     level,
		"trace.golipi.cli": level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Fprintln(os.Stderr, "error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func fail(err error) {
	tracer().Errorf(err.Error())
	pterm.Error.Println(err)
	os.Exit(1)
}

func (out output) print(result string) {
	fmt.Println(result)

	if out.html {
		fmt.Println(golipi.NumericCharRefs(result))
	}

	if out.describe {
		for _, cp := range golipi.Describe(result) {
			fmt.Println(cp)
		}
		pterm.Info.Printfln("%d aksharas: %s", len(golipi.Aksharas(result)), strings.Join(golipi.Aksharas(result), " | "))
	}
}

func isLegacy(font golipi.Font) bool {
	return font != "" && font != golipi.FontUnicode
}

// convertBytes reads a legacy font document and writes the converted text.
// Output in a legacy font is written as raw bytes.
func convertBytes(path string, from golipi.Font, to golipi.Font, convert convertFunc) {
	data, err := os.ReadFile(path)
	if err != nil {
		fail(err)
	}

	text := string(data)
	if isLegacy(from) {
		if text, err = golipi.DecodeLegacy(data); err != nil {
			fail(err)
		}
	}

	result, err := convert(text)
	if err != nil {
		fail(err)
	}

	if !isLegacy(to) {
		fmt.Print(result)
		return
	}

	encoded, err := golipi.EncodeLegacy(result)
	if err != nil {
		fail(err)
	}
	os.Stdout.Write(encoded)
}

func printLists() {
	rows := pterm.TableData{{"Language", "Name", "Native", "Tag", "Try"}}
	for _, lang := range golipi.Languages() {
		rows = append(rows, []string{string(lang.ID), lang.Name, lang.NativeName, lang.Tag.String(), lang.Placeholder})
	}
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()

	rows = pterm.TableData{{"Font", "Name", "Nepali", "Converts"}}
	for _, font := range golipi.Fonts() {
		rows = append(rows, []string{string(font.ID), font.Label, fmt.Sprint(font.Nepali), fmt.Sprint(font.Implemented)})
	}
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func repl(convert convertFunc, out output) {
	rl, err := readline.New("golipi > ")
	if err != nil {
		fail(err)
	}
	defer rl.Close()

	pterm.Info.Println("Quit with <ctrl>D")
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}

		result, err := convert(line)
		if err != nil {
			pterm.Warning.Println(err)
		}
		out.print(result)
	}
	pterm.Info.Println("Good bye!")
}
