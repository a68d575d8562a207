/*
File    : hydrogen/cmd/hydrogenc/build.go
Package : main
*/
package main

import (
	"os"
	"strings"

	"github.com/prakhar479/hydrogen/codegen"
	"github.com/prakhar479/hydrogen/internal/toolchain"
)

// runBuild lexes, parses, and generates assembly for the file at path,
// then — unless --emit-only is set — assembles and links it via
// internal/toolchain (spec.md §6.1).
func runBuild(path string) (err error) {
	defer recoverInternal(&err)

	_, prog, err := lexAndParse(path)
	if err != nil {
		return err
	}

	asm := codegen.Generate(prog)

	out := outPath
	if out == "" {
		out = asmOutputPath(path)
	}

	if emitOnly {
		return os.WriteFile(out, []byte(asm), 0o644)
	}

	binPath := out
	if outPath == "" {
		binPath = toolchain.OutputPath(path)
	}

	tc := toolchain.New().WithAssembler(assembler).WithLinker(linker)
	if err := tc.Build(asm, binPath); err != nil {
		return err
	}

	if !keepAsm {
		os.Remove(binPath + ".asm")
		os.Remove(binPath + ".o")
	}
	return nil
}

// asmOutputPath derives "<file>.s" from the source path, mirroring
// toolchain.OutputPath's extension-stripping but appending ".s" instead of
// leaving the path bare (used only for --emit-only, where no binary is
// produced).
func asmOutputPath(sourcePath string) string {
	base := toolchain.OutputPath(sourcePath)
	return strings.TrimSuffix(base, "") + ".s"
}
