/*
File    : hydrogen/repl/repl.go
Package : repl
*/

// Package repl implements an interactive lex/parse debug console for
// Hydrogen source fragments. Unlike the teacher's REPL — which evaluated
// each line to a runtime value — Hydrogen has no interpreter (spec.md §1:
// it is compiled to assembly, never executed in-process), so this REPL
// instead lexes and parses each input and prints its token stream (as
// `hydrogenc tokens` does for a whole file) and the number of top-level
// statements parsed; it does not print the AST.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/prakhar479/hydrogen/lexer"
	"github.com/prakhar479/hydrogen/parser"
)

// Color definitions for REPL output, grounded on the teacher's repl.go
// palette: blue for chrome, yellow for successful results, red for errors,
// green for the banner, cyan for informational text.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is an interactive session over the lexer and parser. Each complete
// input (ended by a blank line) is lexed and parsed as a standalone
// Program; the resulting tokens and top-level statement count are
// printed, or the first error either phase produced.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl with the given banner chrome.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Hydrogen debug console: lex+parse one input at a time.")
	cyanColor.Fprintf(writer, "%s\n", "End each input (one line or several) with a blank line.")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the read-eval-print loop until the user exits or EOF is
// reached on the input. writer receives all banner, echo, and result
// output; reader is unused directly (readline owns stdin), kept for
// parity with the teacher's Start signature.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	var pending []string
	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		trimmed := strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(trimmed) == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		if trimmed == "" {
			if len(pending) == 0 {
				continue
			}
			src := strings.Join(pending, "\n")
			pending = pending[:0]
			rl.SaveHistory(src)
			r.evalAndPrint(writer, src)
			continue
		}

		pending = append(pending, trimmed)
	}
}

// evalAndPrint lexes and parses src as a standalone Program, printing its
// token stream followed by a summary of the parsed top-level statements,
// or the first error either phase produced. Panics (e.g. an internal
// diag.Bug, though codegen is never invoked here) are recovered so one bad
// fragment never kills the session.
func (r *Repl) evalAndPrint(writer io.Writer, src string) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(writer, "[internal error] %v\n", rec)
		}
	}()

	toks, err := lexer.Lex(src)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}
	cyanColor.Fprintf(writer, "tokens: %s\n", joinTokens(toks))

	prog, err := parser.Parse(toks)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}
	yellowColor.Fprintf(writer, "parsed %d top-level statement(s)\n", len(prog.Stmts))
}

func joinTokens(toks []lexer.Token) string {
	parts := make([]string, len(toks))
	for i, t := range toks {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
