/*
File   : lpp/repl/repl.go
Package: repl

Package repl implements the Read-Eval-Print Loop for lpp. It feeds one
line at a time through the lexer/parser/evaluator pipeline and prints
either the accumulated parser errors or the evaluated value's
Inspect() text, per spec §6.3. A single *environment.Environment lives
for the whole session, so a `variable` bound on one line is still
visible on the next.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/danilopedraza/lpp/environment"
	"github.com/danilopedraza/lpp/evaluator"
	"github.com/danilopedraza/lpp/lexer"
	"github.com/danilopedraza/lpp/parser"
)

// exitSentinel is the input line that terminates the loop (spec §6.3).
const exitSentinel = "salir"

// Color definitions for REPL output, matching the teacher's palette:
// blue for decoration, yellow for results, red for errors, green for
// the banner, cyan for informational text.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration of one REPL session: its
// banner, version string, and prompt.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// New creates a Repl with the given banner, version, separator line,
// and prompt.
func New(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

// printBanner writes the welcome banner and usage hint to writer.
func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "lpp "+r.Version)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Escribe algo de código LPP")
	cyanColor.Fprintf(writer, "Escribe '%s' para salir\n", exitSentinel)
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL's main loop, reading lines via readline (for
// history and line editing) and writing results to writer. It returns
// once the user exits (`salir`, Ctrl+D, or a readline error).
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	env := environment.New()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("¡Hasta luego!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if line == exitSentinel {
			writer.Write([]byte("¡Hasta luego!\n"))
			return
		}

		rl.SaveHistory(line)

		r.evalLine(writer, line, env)
	}
}

// evalLine runs one line of input through the lexer/parser/evaluator
// pipeline and prints the outcome: every parser error on its own line,
// or the evaluated value's Inspect() text.
func (r *Repl) evalLine(writer io.Writer, line string, env *environment.Environment) {
	p := parser.New(lexer.New(line))
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(writer, "%s\n", e)
		}
		return
	}

	result := evaluator.Eval(program, env)
	if result == nil {
		return
	}

	yellowColor.Fprintf(writer, "%s\n", result.Inspect())
}
