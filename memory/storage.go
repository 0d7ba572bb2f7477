// Package memory defines the storage contract between the vcpu processor
// and any memory-like object, plus the models built on it: flat RAM, a
// composite fragmented address space, and MMIO register banks with write
// handlers.
//
// All multi-byte accesses are little-endian. Implementations must never
// panic, whatever address/length combination they are handed; arithmetic
// overflow is out-of-range, not wraparound.
package memory

import (
	"encoding/binary"
)

// Access widths, in bytes.
const (
	BYTE_BYTES = 1
	HALF_BYTES = 2
	WORD_BYTES = 4
)

// Storage is the read side of the contract.
type Storage interface {
	// Length returns the total addressable size in bytes.
	Length() uint32

	// CheckRange reports whether [address, address+length) lies entirely
	// within bounds.
	CheckRange(address, length uint32) bool

	// Slice returns a read-only view of [address, address+length), or
	// ErrOutOfRange.
	Slice(address, length uint32) ([]byte, error)
}

// StorageMut extends Storage with mutation. Write is value-level rather
// than slice-level so that device implementations can veto or observe
// individual stores; SliceMut is the raw window hosts use to load images,
// and device banks may refuse it with ErrNoDirectAccess.
type StorageMut interface {
	Storage

	// SliceMut returns a mutable view of [address, address+length).
	SliceMut(address, length uint32) ([]byte, error)

	// Write stores the low `size` bytes of value at address. A narrow
	// write truncates the value to the requested width.
	Write(address, size, value uint32) error
}

// Read loads a size-byte little-endian value from s, zero-extended.
func Read(s Storage, address, size uint32) (value uint32, err error) {
	buf, err := s.Slice(address, size)
	if err != nil {
		return
	}

	switch size {
	case BYTE_BYTES:
		value = uint32(buf[0])
	case HALF_BYTES:
		value = uint32(binary.LittleEndian.Uint16(buf))
	case WORD_BYTES:
		value = binary.LittleEndian.Uint32(buf)
	default:
		err = ErrBadAccessSize
	}

	return
}

// ReadByte loads one byte from s.
func ReadByte(s Storage, address uint32) (value uint8, err error) {
	word, err := Read(s, address, BYTE_BYTES)
	value = uint8(word)
	return
}

// ReadHalf loads a little-endian half-word from s.
func ReadHalf(s Storage, address uint32) (value uint16, err error) {
	word, err := Read(s, address, HALF_BYTES)
	value = uint16(word)
	return
}

// ReadWord loads a little-endian word from s.
func ReadWord(s Storage, address uint32) (value uint32, err error) {
	return Read(s, address, WORD_BYTES)
}

// WriteByte stores the low byte of value.
func WriteByte(s StorageMut, address uint32, value uint8) error {
	return s.Write(address, BYTE_BYTES, uint32(value))
}

// WriteHalf stores the low half-word of value, little-endian.
func WriteHalf(s StorageMut, address uint32, value uint16) error {
	return s.Write(address, HALF_BYTES, uint32(value))
}

// WriteWord stores a full word, little-endian.
func WriteWord(s StorageMut, address uint32, value uint32) error {
	return s.Write(address, WORD_BYTES, value)
}
