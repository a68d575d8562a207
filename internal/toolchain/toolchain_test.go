/*
File    : hydrogen/internal/toolchain/toolchain_test.go
Package : toolchain
*/
package toolchain

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	name string
	args []string
}

func fakeCommandFunc(calls *[]recordedCall) CommandFunc {
	return func(name string, args ...string) *exec.Cmd {
		*calls = append(*calls, recordedCall{name: name, args: args})
		return exec.Command("true")
	}
}

func TestBuild_InvokesNasmThenLd(t *testing.T) {
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "a.out")

	var calls []recordedCall
	tc := NewWithCommand(fakeCommandFunc(&calls))

	err := tc.Build("	.text\n", outputPath)
	require.NoError(t, err)

	require.Len(t, calls, 2)
	assert.Equal(t, "nasm", calls[0].name)
	assert.Equal(t, []string{"-f", "elf64", outputPath + ".asm", "-o", outputPath + ".o"}, calls[0].args)
	assert.Equal(t, "ld", calls[1].name)
	assert.Equal(t, []string{outputPath + ".o", "-o", outputPath}, calls[1].args)

	_, err = os.Stat(outputPath + ".asm")
	require.NoError(t, err)
}

func TestBuild_NasmFailureAbortsBeforeLd(t *testing.T) {
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "a.out")

	var calls []recordedCall
	failingNasm := func(name string, args ...string) *exec.Cmd {
		calls = append(calls, recordedCall{name: name, args: args})
		if name == "nasm" {
			return exec.Command("false")
		}
		return exec.Command("true")
	}
	tc := NewWithCommand(failingNasm)

	err := tc.Build(".text\n", outputPath)
	require.Error(t, err)
	assert.Len(t, calls, 1, "ld must not run once nasm fails")
}

func TestOutputPath_StripsExtension(t *testing.T) {
	assert.Equal(t, "prog", OutputPath("prog.hy"))
	assert.Equal(t, filepath.Join("dir", "prog"), OutputPath(filepath.Join("dir", "prog.hy")))
}
