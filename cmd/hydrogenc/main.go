/*
File    : hydrogen/cmd/hydrogenc/main.go
Package : main
*/

// Command hydrogenc is the Hydrogen compiler's command-line driver. It is
// the only place in the module allowed to call os.Exit (spec.md §5): every
// other package stays importable as a library (by tests, and by the repl
// package) rather than terminating the process itself.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	outPath   string
	emitOnly  bool
	keepAsm   bool
	assembler string
	linker    string
	colorMode string
	verbose   bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hydrogenc [file]",
		Short: "Hydrogen: a toy ahead-of-time compiler targeting x86-64 Linux",
		Args:  cobra.MaximumNArgs(1),
		// A bare file path is sugar for "hydrogenc build <file>" (spec.md
		// §6's "one positional argument" contract).
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runBuild(args[0])
		},
	}

	root.PersistentFlags().StringVar(&colorMode, "color", "auto", "colorize diagnostics: auto|always|never")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "trace parser/codegen internals at debug level")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		applyColorMode(colorMode)
		applyVerbosity(verbose)
		return nil
	}

	build := &cobra.Command{
		Use:   "build <file>",
		Short: "lex, parse, generate assembly, and (unless --emit-only) assemble and link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(args[0])
		},
	}
	build.Flags().StringVar(&outPath, "out", "", "output path (default: <file>.s, or the linked binary's path)")
	build.Flags().BoolVar(&emitOnly, "emit-only", false, "stop after emitting assembly; do not assemble or link")
	build.Flags().BoolVar(&keepAsm, "keep-asm", false, "keep the intermediate .asm/.o files after linking")
	build.Flags().StringVar(&assembler, "assembler", "nasm", "assembler executable")
	build.Flags().StringVar(&linker, "linker", "ld", "linker executable")

	tokens := &cobra.Command{
		Use:   "tokens <file>",
		Short: "lex a file and print its token stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(args[0])
		},
	}

	ast := &cobra.Command{
		Use:   "ast <file>",
		Short: "lex and parse a file and pretty-print its AST",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAST(args[0])
		},
	}

	repl := &cobra.Command{
		Use:   "repl",
		Short: "start the interactive lex/parse debug console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runRepl()
			return nil
		},
	}

	root.AddCommand(build, tokens, ast, repl)
	return root
}

// applyColorMode maps --color onto fatih/color's global switch. "auto"
// leaves color's own terminal detection in place.
func applyColorMode(mode string) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}
}

func applyVerbosity(v bool) {
	if v {
		logrus.SetLevel(logrus.DebugLevel)
		return
	}
	logrus.SetLevel(logrus.InfoLevel)
}

// recoverInternal turns a diag.Bug panic into an error instead of letting
// it crash the process uncaught (spec.md §7 category 5: "recovers it at
// the top level only, never silently swallowing it").
func recoverInternal(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%v", r)
	}
}
