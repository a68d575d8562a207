/*
File    : hydrogen/cmd/hydrogenc/pipeline.go
Package : main
*/
package main

import (
	"os"

	"github.com/prakhar479/hydrogen/internal/diag"
	"github.com/prakhar479/hydrogen/lexer"
	"github.com/prakhar479/hydrogen/parser"
)

// readSource wraps os.ReadFile in a DriverIO diagnostic, so an unreadable
// path fails the same way every other compiler-phase error does
// (spec.md §7 category 4).
func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", diag.Newf(diag.DriverIO, diag.Pos{}, "cannot read %s: %v", path, err)
	}
	return string(data), nil
}

// lexAndParse runs the first two phases of the pipeline over the file at
// path, returning the token stream alongside the parsed Program.
func lexAndParse(path string) ([]lexer.Token, *parser.Program, error) {
	src, err := readSource(path)
	if err != nil {
		return nil, nil, err
	}
	toks, err := lexer.Lex(src)
	if err != nil {
		return nil, nil, err
	}
	prog, err := parser.Parse(toks)
	if err != nil {
		return toks, nil, err
	}
	return toks, prog, nil
}
