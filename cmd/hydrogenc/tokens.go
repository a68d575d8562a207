/*
File    : hydrogen/cmd/hydrogenc/tokens.go
Package : main
*/
package main

import (
	"fmt"

	"github.com/prakhar479/hydrogen/lexer"
)

// runTokens lexes the file at path and prints its token stream, one token
// per line, in source order (spec.md §3 — the stream has no EOF sentinel,
// so printing simply stops at the last token produced).
func runTokens(path string) (err error) {
	defer recoverInternal(&err)

	src, err := readSource(path)
	if err != nil {
		return err
	}
	toks, err := lexer.Lex(src)
	if err != nil {
		return err
	}
	for i, tok := range toks {
		fmt.Printf("%4d  %4d:%-3d  %s\n", i, tok.Line, tok.Col, tok.String())
	}
	return nil
}
