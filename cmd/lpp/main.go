/*
File   : lpp/cmd/lpp/main.go
Package: main

Package main is the entry point for the lpp interpreter. It provides
three modes of operation, all grounded on the same lexer/parser/
evaluator pipeline:

 1. REPL mode (default): an interactive session, one environment per run.
 2. File mode (`lpp <path>`): read, parse, and evaluate a source file.
 3. Server mode (`lpp server <port>`): one REPL session per TCP
    connection, each with its own environment.
*/
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/danilopedraza/lpp/environment"
	"github.com/danilopedraza/lpp/evaluator"
	"github.com/danilopedraza/lpp/lexer"
	"github.com/danilopedraza/lpp/object"
	"github.com/danilopedraza/lpp/parser"
	"github.com/danilopedraza/lpp/repl"
)

// VERSION is the current version of the lpp interpreter.
var VERSION = "v1.0.0"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = ">> "

// BANNER is the ASCII art logo shown when the REPL starts.
var BANNER = `
 _
| |_ __  _ __
| | '_ \| '_ \
| | |_) | |_) |
|_| .__/| .__/
  |_|   |_|
`

// LINE is the separator used to frame the REPL's banner.
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main dispatches on os.Args[1] to REPL, file, or server mode.
//
// Usage:
//
//	lpp               - start the interactive REPL
//	lpp <path>        - execute a source file
//	lpp server <port> - serve one REPL session per TCP connection
//	lpp --help        - print usage
//	lpp --version     - print version
func main() {
	if len(os.Args) > 1 {
		switch arg := os.Args[1]; arg {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			showVersion()
			return
		case "server":
			if len(os.Args) < 3 {
				redColor.Fprintln(os.Stderr, "uso: lpp server <puerto>")
				os.Exit(1)
			}
			startServer(os.Args[2])
			return
		default:
			runFile(arg)
			return
		}
	}

	r := repl.New(BANNER, VERSION, LINE, PROMPT)
	r.Start(os.Stdin, os.Stdout)
}

// showHelp prints usage information.
func showHelp() {
	cyanColor.Println("lpp - un intérprete de un lenguaje de programación")
	cyanColor.Println("")
	cyanColor.Println("USO:")
	yellowColor.Println("  lpp                    inicia el REPL interactivo")
	yellowColor.Println("  lpp <archivo>          ejecuta un archivo fuente")
	yellowColor.Println("  lpp server <puerto>    sirve el REPL sobre TCP")
	yellowColor.Println("  lpp --help             muestra esta ayuda")
	yellowColor.Println("  lpp --version          muestra la versión")
}

// showVersion prints the interpreter's version.
func showVersion() {
	cyanColor.Printf("lpp %s\n", VERSION)
}

// runFile reads, parses, and evaluates a source file, printing any
// parser errors or the final value's Inspect() text and exiting
// non-zero on failure.
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "no se pudo leer '%s': %v\n", path, err)
		os.Exit(1)
	}

	p := parser.New(lexer.New(string(source)))
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintln(os.Stderr, e)
		}
		os.Exit(1)
	}

	env := environment.New()
	result := evaluator.Eval(program, env)

	if result == nil {
		return
	}

	if errObj, ok := result.(*object.Error); ok {
		redColor.Fprintln(os.Stderr, errObj.Inspect())
		os.Exit(1)
	}

	fmt.Println(result.Inspect())
}

// startServer listens on port and starts one REPL session per
// accepted connection, each in its own goroutine with its own
// environment.
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "no se pudo escuchar en el puerto %s: %v\n", port, err)
		os.Exit(1)
	}
	defer listener.Close()

	cyanColor.Printf("lpp escuchando en :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "error al aceptar conexión: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

// handleClient runs one REPL session over conn, closing it when the
// session ends.
func handleClient(conn net.Conn) {
	defer conn.Close()
	r := repl.New(BANNER, VERSION, LINE, PROMPT)
	r.Start(conn, conn)
}
