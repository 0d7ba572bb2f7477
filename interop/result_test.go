package interop

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/vcpu/cpu"
	"github.com/ezrec/vcpu/memory"
	"github.com/ezrec/vcpu/vasm"
	"github.com/ezrec/vcpu/vexfile"
)

func TestFromError(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		err    error
		result Result
	}){
		{"nil", nil, Ok},
		{"intersection", memory.ErrFragmentIntersection, FragmentIntersection},
		{"key_exists", memory.ErrKeyExists, KeyAlreadyExists},
		{"out_of_range", memory.ErrOutOfRange, OutOfRange},
		{"no_direct_access", memory.ErrNoDirectAccess, OutOfRange},
		{"bad_magic", vexfile.ErrBadMagic, ExecutableLoadFailed},
		{"bad_version", vexfile.ErrVersion(9), ExecutableLoadFailed},
		{"truncated", vexfile.ErrTruncated, ExecutableLoadFailed},
		{"unknown", errors.New("boom"), UnknownError},
	}

	for _, entry := range table {
		assert.Equal(entry.result, FromError(entry.err), entry.name)
	}

	// Wrapped errors resolve the same way.
	wrapped := errors.Join(errors.New("mount"), memory.ErrKeyExists)
	assert.Equal(KeyAlreadyExists, FromError(wrapped))

	// Assembly failures carry their syntax wrapper.
	asm := &vasm.Assembler{}
	_, err := asm.Parse(strings.NewReader("frobnicate\n"))
	assert.Equal(AssemblerError, FromError(err))
}

func TestFromLoadSaveError(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Ok, FromLoadError(nil))
	assert.Equal(ExecutableLoadFailed, FromLoadError(errors.New("read: i/o error")))
	assert.Equal(FragmentIntersection, FromLoadError(memory.ErrFragmentIntersection))

	assert.Equal(Ok, FromSaveError(nil))
	assert.Equal(ExecutableSaveFailed, FromSaveError(errors.New("write: disk full")))
}

// Container read failures, however they arise, must surface the frozen
// ExecutableLoadFailed code to a foreign caller.
func TestFromLoadErrorReadFile(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()

	_, err := vexfile.ReadFile(filepath.Join(dir, "absent.vex"))
	assert.Error(err)
	assert.Equal(ExecutableLoadFailed, FromLoadError(err))

	garbled := filepath.Join(dir, "garbled.vex")
	assert.NoError(os.WriteFile(garbled, []byte("NOTVEXF"), 0o644))
	_, err = vexfile.ReadFile(garbled)
	assert.Error(err)
	assert.Equal(ExecutableLoadFailed, FromLoadError(err))
}

func TestResultStrings(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("ok", Ok.String())
	assert.Equal("unknown error", UnknownError.String())
	assert.Equal("executable save failed", ExecutableSaveFailed.String())
	assert.Equal("Result(10)", Result(10).String())
}

func TestExitStatus(t *testing.T) {
	assert := assert.New(t)

	// The numbering is part of the foreign interface.
	assert.Equal(int32(0), ExitStatus(cpu.Halted))
	assert.Equal(int32(2), ExitStatus(cpu.Terminated))
	assert.Equal(int32(3), ExitStatus(cpu.DivisionByZero))
	assert.Equal(int32(8), ExitStatus(cpu.BadProgramCounter))
}
