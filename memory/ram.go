package memory

import (
	"encoding/binary"
)

// RAM is a flat byte buffer satisfying the storage contract.
type RAM []byte

var _ StorageMut = RAM(nil)

// NewRAM returns a zeroed buffer of the given size.
func NewRAM(size uint32) RAM {
	return make(RAM, size)
}

func (m RAM) Length() uint32 {
	return uint32(len(m))
}

func (m RAM) CheckRange(address, length uint32) bool {
	// Sum in 64 bits; a wrapped 32-bit sum must read as out-of-range.
	return uint64(address)+uint64(length) <= uint64(len(m))
}

func (m RAM) Slice(address, length uint32) ([]byte, error) {
	if !m.CheckRange(address, length) {
		return nil, ErrOutOfRange
	}
	return m[address : address+length], nil
}

func (m RAM) SliceMut(address, length uint32) ([]byte, error) {
	if !m.CheckRange(address, length) {
		return nil, ErrOutOfRange
	}
	return m[address : address+length], nil
}

func (m RAM) Write(address, size, value uint32) error {
	buf, err := m.SliceMut(address, size)
	if err != nil {
		return err
	}

	switch size {
	case BYTE_BYTES:
		buf[0] = uint8(value)
	case HALF_BYTES:
		binary.LittleEndian.PutUint16(buf, uint16(value))
	case WORD_BYTES:
		binary.LittleEndian.PutUint32(buf, value)
	default:
		return ErrBadAccessSize
	}

	return nil
}
