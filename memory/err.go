package memory

import (
	"errors"

	"github.com/ezrec/vcpu/translate"
)

var f = translate.From

var (
	// Storage contract errors
	ErrOutOfRange     = errors.New(f("address out of range"))
	ErrBadAccessSize  = errors.New(f("access size is not 1, 2 or 4"))
	ErrNoDirectAccess = errors.New(f("storage has no direct mutable view"))

	// Mount errors
	ErrKeyExists            = errors.New(f("fragment key already mounted"))
	ErrFragmentIntersection = errors.New(f("fragment intersects a mounted range"))
)
