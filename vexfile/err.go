package vexfile

import (
	"errors"

	"github.com/ezrec/vcpu/translate"
)

var f = translate.From

var (
	ErrBadMagic   = errors.New(f("not a vex executable"))
	ErrTruncated  = errors.New(f("executable is truncated"))
	ErrMisaligned = errors.New(f("instruction section is not a word multiple"))
)

// ErrVersion reports an unsupported container revision.
type ErrVersion uint16

func (ev ErrVersion) Error() string {
	return f("unsupported executable version %d", uint16(ev))
}
