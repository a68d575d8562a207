/*
File    : hydrogen/internal/toolchain/toolchain.go
Package : toolchain
*/

// Package toolchain shells out to the external assembler and linker that
// turn the compiler's generated text into a native executable (spec.md
// §1, §6 — "explicitly out of scope... the external assembler and linker
// invoked afterward"). It is a thin wrapper over os/exec in the spirit of
// the teacher's file package wrapping os.File: a small struct holding the
// OS resource (here, a command runner) plus named methods per operation,
// rather than scattering exec.Command calls through the CLI layer.
package toolchain

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/prakhar479/hydrogen/internal/diag"
)

// CommandFunc builds an *exec.Cmd for a program and its arguments. Tests
// substitute a fake that records invocations instead of spawning nasm/ld.
type CommandFunc func(name string, args ...string) *exec.Cmd

// Toolchain assembles and links a generated assembly file via external
// `nasm` and `ld` (spec.md §6). The command factory is an injectable seam
// so tests can verify invocation shape without either binary installed.
type Toolchain struct {
	newCommand CommandFunc
	assembler  string
	linker     string
}

// New creates a Toolchain that shells out with os/exec.Command, assembling
// with nasm and linking with ld.
func New() *Toolchain {
	return &Toolchain{newCommand: exec.Command, assembler: "nasm", linker: "ld"}
}

// NewWithCommand creates a Toolchain using a caller-supplied command
// factory, for tests.
func NewWithCommand(newCommand CommandFunc) *Toolchain {
	return &Toolchain{newCommand: newCommand, assembler: "nasm", linker: "ld"}
}

// WithAssembler overrides the assembler executable (default "nasm").
func (t *Toolchain) WithAssembler(assembler string) *Toolchain {
	t.assembler = assembler
	return t
}

// WithLinker overrides the linker executable (default "ld").
func (t *Toolchain) WithLinker(linker string) *Toolchain {
	t.linker = linker
	return t
}

// Build writes asm to a temporary .asm file next to outputPath, then
// assembles it with `nasm -f elf64` and links the result with `ld` into
// outputPath (spec.md §6's exact invocation shapes).
func (t *Toolchain) Build(asm, outputPath string) error {
	asmPath := outputPath + ".asm"
	objPath := outputPath + ".o"

	if err := os.WriteFile(asmPath, []byte(asm), 0o644); err != nil {
		return diag.Newf(diag.DriverIO, diag.Pos{}, "could not write assembly file %q: %v", asmPath, err)
	}

	if err := t.run(t.assembler, "-f", "elf64", asmPath, "-o", objPath); err != nil {
		return err
	}

	if err := t.run(t.linker, objPath, "-o", outputPath); err != nil {
		return err
	}

	return nil
}

func (t *Toolchain) run(name string, args ...string) error {
	cmd := t.newCommand(name, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return diag.Newf(diag.DriverIO, diag.Pos{}, "%s failed: %v: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// OutputPath derives the default native-executable path for a source
// file: the source's base name with its extension stripped, in its own
// directory (e.g. "prog.hy" -> "prog", "dir/prog.hy" -> "dir/prog").
func OutputPath(sourcePath string) string {
	base := filepath.Base(sourcePath)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	return filepath.Join(filepath.Dir(sourcePath), name)
}
