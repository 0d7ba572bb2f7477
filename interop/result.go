// Package interop maps library errors and processor exit codes onto the
// stable numeric results a foreign host understands. The numbering is
// frozen; new results may only be appended.
package interop

import (
	"errors"

	"github.com/ezrec/vcpu/cpu"
	"github.com/ezrec/vcpu/memory"
	"github.com/ezrec/vcpu/vasm"
	"github.com/ezrec/vcpu/vexfile"
)

// Result is the status code shared with foreign callers.
type Result int32

//go:generate go tool stringer -linecomment -type=Result
const (
	UnknownError         = Result(-1) // unknown error
	Ok                   = Result(0)  // ok
	InvalidType          = Result(1)  // invalid type
	UTF8Error            = Result(2)  // utf-8 error
	AssemblerError       = Result(3)  // assembler error
	MemoryInUse          = Result(4)  // memory in use
	FragmentIntersection = Result(5)  // fragment intersection
	KeyAlreadyExists     = Result(6)  // key already exists
	OutOfRange           = Result(7)  // out of range
	ExecutableLoadFailed = Result(8)  // executable load failed
	ExecutableSaveFailed = Result(9)  // executable save failed
)

// FromError maps an error to its result code. A nil error is Ok.
func FromError(err error) Result {
	var version vexfile.ErrVersion
	var syntax *vasm.ErrSyntax

	switch {
	case err == nil:
		return Ok
	case errors.Is(err, memory.ErrFragmentIntersection):
		return FragmentIntersection
	case errors.Is(err, memory.ErrKeyExists):
		return KeyAlreadyExists
	case errors.Is(err, memory.ErrOutOfRange),
		errors.Is(err, memory.ErrBadAccessSize),
		errors.Is(err, memory.ErrNoDirectAccess):
		return OutOfRange
	case errors.Is(err, vexfile.ErrBadMagic),
		errors.Is(err, vexfile.ErrTruncated),
		errors.Is(err, vexfile.ErrMisaligned),
		errors.As(err, &version):
		return ExecutableLoadFailed
	case errors.As(err, &syntax):
		return AssemblerError
	default:
		return UnknownError
	}
}

// FromLoadError maps an executable read error. Errors without a more
// specific result report ExecutableLoadFailed.
func FromLoadError(err error) Result {
	if err == nil {
		return Ok
	}
	if result := FromError(err); result != UnknownError {
		return result
	}
	return ExecutableLoadFailed
}

// FromSaveError maps an executable write error.
func FromSaveError(err error) Result {
	if err == nil {
		return Ok
	}
	return ExecutableSaveFailed
}

// ExitStatus returns the stable numeric form of a processor exit code.
func ExitStatus(code cpu.ExitCode) int32 {
	return int32(code)
}
