package emulator

import (
	"github.com/ezrec/vcpu/translate"
)

var f = translate.From

// ErrFragmentKind reports an unrecognized fragment kind in the machine
// configuration.
type ErrFragmentKind string

func (err ErrFragmentKind) Error() string {
	return f("unknown fragment kind '%v'", string(err))
}

// ErrImageSize reports a data image too large for the fragment that is
// to receive it.
type ErrImageSize struct {
	Image    int
	Fragment int
}

func (err *ErrImageSize) Error() string {
	return f("data image of %v bytes exceeds fragment of %v bytes", err.Image, err.Fragment)
}
