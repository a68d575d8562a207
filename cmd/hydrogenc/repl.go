/*
File    : hydrogen/cmd/hydrogenc/repl.go
Package : main
*/
package main

import (
	"os"
	"strings"

	"github.com/prakhar479/hydrogen/repl"
)

const replBanner = `
  _                 _
 | |__  _   _  __| |_ __ ___   __ _  ___ _ __
 | '_ \| | | |/ _\ |  __/ _ \ / _\ |/ _ \ '_ \
 | | | | |_| | (_| | | | (_) | (_| |  __/ | | |
 |_| |_|\__, |\__,_|_|  \___/ \__, |\___|_| |_|
        |___/                |___/
`

// runRepl starts the interactive lex/parse debug console (spec.md §6 —
// the REPL is not part of the compiler's core pipeline; it is a
// development convenience over the same lexer and parser the "build" and
// "ast" subcommands drive).
func runRepl() {
	r := repl.New(replBanner, "0.1.0", "the hydrogen project", strings.Repeat("-", 48), "MIT", "hydrogen> ")
	r.Start(os.Stdin, os.Stdout)
}
