package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIOMemoryNotify(t *testing.T) {
	assert := assert.New(t)

	type store struct {
		address uint32
		size    uint32
		value   uint32 // bank bytes at address, as seen by the handler
	}
	var seen []store

	im := NewIOMemory(16, &DelegateIOHandler{
		OnWriteFunc: func(mem []byte, address, size uint32) {
			value, err := Read(RAM(mem), address, size)
			assert.NoError(err)
			seen = append(seen, store{address, size, value})
		},
	})

	assert.NoError(WriteWord(im, 0, 0x11223344))
	assert.NoError(WriteByte(im, 2, 0xaa))

	// The handler observes the bytes already in place.
	assert.Equal([]store{
		{0, WORD_BYTES, 0x11223344},
		{2, BYTE_BYTES, 0xaa},
	}, seen)

	value, err := ReadWord(im, 0)
	assert.NoError(err)
	assert.Equal(uint32(0x11aa3344), value)
}

func TestIOMemoryVeto(t *testing.T) {
	assert := assert.New(t)

	notified := 0
	im := NewIOMemory(16, &DelegateIOHandler{
		CanWriteFunc: func(mem []byte, address, size uint32) bool {
			return address >= 8
		},
		OnWriteFunc: func(mem []byte, address, size uint32) {
			notified++
		},
	})

	// A vetoed store reports success, leaves the bank unchanged, and
	// never notifies.
	assert.NoError(WriteWord(im, 0, 0xdeadbeef))
	assert.Equal(0, notified)

	value, err := ReadWord(im, 0)
	assert.NoError(err)
	assert.Equal(uint32(0), value)

	// A permitted store goes through.
	assert.NoError(WriteWord(im, 8, 0xdeadbeef))
	assert.Equal(1, notified)

	value, err = ReadWord(im, 8)
	assert.NoError(err)
	assert.Equal(uint32(0xdeadbeef), value)

	// Out of range still fails, and does not notify.
	err = WriteWord(im, 16, 1)
	assert.ErrorIs(err, ErrOutOfRange)
	assert.Equal(1, notified)
}

func TestIOMemoryNoDirectAccess(t *testing.T) {
	assert := assert.New(t)

	im := NewIOMemory(16, &DelegateIOHandler{})

	_, err := im.SliceMut(0, 4)
	assert.ErrorIs(err, ErrNoDirectAccess)

	// The read side is unguarded.
	buf, err := im.Slice(0, 4)
	assert.NoError(err)
	assert.Equal([]byte{0, 0, 0, 0}, buf)
}

func TestIOMemoryOver(t *testing.T) {
	assert := assert.New(t)

	bank := RAM{1, 2, 3, 4}
	im := NewIOMemoryOver(bank, &DelegateIOHandler{
		CanWriteFunc: func(mem []byte, address, size uint32) bool { return false },
	})

	// Contents are kept, guest stores are discarded, the host reference
	// still mutates.
	value, err := ReadWord(im, 0)
	assert.NoError(err)
	assert.Equal(uint32(0x04030201), value)

	assert.NoError(WriteWord(im, 0, 0))
	value, _ = ReadWord(im, 0)
	assert.Equal(uint32(0x04030201), value)

	bank[0] = 0xff
	value, _ = ReadWord(im, 0)
	assert.Equal(uint32(0x040302ff), value)
}
