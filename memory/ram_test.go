package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRamCheckRange(t *testing.T) {
	assert := assert.New(t)

	ram := NewRAM(16)

	table := [](struct {
		name    string
		address uint32
		length  uint32
		ok      bool
	}){
		{"empty_at_zero", 0, 0, true},
		{"full", 0, 16, true},
		{"inner", 4, 8, true},
		{"empty_at_end", 16, 0, true},
		{"past_end", 12, 8, false},
		{"at_end", 16, 1, false},
		{"sum_wraps", 0xfffffffc, 8, false},
		{"max_max", 0xffffffff, 0xffffffff, false},
	}

	for _, entry := range table {
		assert.Equal(entry.ok, ram.CheckRange(entry.address, entry.length), entry.name)
	}
}

func TestRamReadWrite(t *testing.T) {
	assert := assert.New(t)

	ram := NewRAM(16)

	err := WriteWord(ram, 4, 0x11223344)
	assert.NoError(err)

	// Little-endian layout.
	buf, err := ram.Slice(4, 4)
	assert.NoError(err)
	assert.Equal([]byte{0x44, 0x33, 0x22, 0x11}, buf)

	half, err := ReadHalf(ram, 4)
	assert.NoError(err)
	assert.Equal(uint16(0x3344), half)

	b, err := ReadByte(ram, 7)
	assert.NoError(err)
	assert.Equal(uint8(0x11), b)

	// Narrow writes truncate the value.
	err = WriteByte(ram, 4, uint8(0xaa))
	assert.NoError(err)
	word, err := ReadWord(ram, 4)
	assert.NoError(err)
	assert.Equal(uint32(0x112233aa), word)
}

func TestRamErrors(t *testing.T) {
	assert := assert.New(t)

	ram := NewRAM(8)

	_, err := ram.Slice(8, 1)
	assert.ErrorIs(err, ErrOutOfRange)

	_, err = ram.SliceMut(4, 8)
	assert.ErrorIs(err, ErrOutOfRange)

	err = ram.Write(0, 3, 0x123456)
	assert.ErrorIs(err, ErrBadAccessSize)

	_, err = Read(ram, 0, 3)
	assert.ErrorIs(err, ErrBadAccessSize)

	// A failed write leaves the buffer untouched.
	err = ram.Write(6, WORD_BYTES, 0xffffffff)
	assert.ErrorIs(err, ErrOutOfRange)
	assert.Equal(NewRAM(8), ram)
}
