package vexfile

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	assert := assert.New(t)

	prog := New(
		[]byte{0x01, 0x02, 0x03},
		[]byte{0x44, 0x33, 0x22, 0x11, 0x88, 0x77, 0x66, 0x55},
	)

	var buf bytes.Buffer
	assert.NoError(Write(&buf, prog))

	// Header, then data, then instructions.
	raw := buf.Bytes()
	assert.Equal([]byte("VEXF"), raw[0:4])
	assert.Equal([]byte{0x01, 0x00}, raw[4:6])
	assert.Equal([]byte{0x03, 0x00, 0x00, 0x00}, raw[6:10])
	assert.Equal([]byte{0x08, 0x00, 0x00, 0x00}, raw[10:14])

	got, err := Read(&buf)
	assert.NoError(err)
	assert.Equal(prog, got)
}

func TestEmptySections(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	assert.NoError(Write(&buf, New(nil, nil)))

	got, err := Read(&buf)
	assert.NoError(err)
	assert.Empty(got.Data)
	assert.Empty(got.Instructions)
}

func TestReadErrors(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	assert.NoError(Write(&buf, New([]byte{1, 2, 3, 4}, []byte{5, 6, 7, 8})))
	good := buf.Bytes()

	table := [](struct {
		name string
		raw  []byte
		err  error
	}){
		{"empty", nil, ErrTruncated},
		{"short_header", good[:10], ErrTruncated},
		{"short_body", good[:len(good)-2], ErrTruncated},
		{"bad_magic", append([]byte("XEXF"), good[4:]...), ErrBadMagic},
		{"bad_version", append(append([]byte{}, good[:4]...), append([]byte{0x02, 0x00}, good[6:]...)...), ErrVersion(2)},
		{"misaligned", append(append([]byte{}, good[:10]...), append([]byte{0x03, 0x00, 0x00, 0x00}, good[14:]...)...), ErrMisaligned},
	}

	for _, entry := range table {
		_, err := Read(bytes.NewReader(entry.raw))
		assert.ErrorIs(err, entry.err, entry.name)
	}
}

func TestWriteMisaligned(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	err := Write(&buf, New(nil, []byte{1, 2, 3}))
	assert.ErrorIs(err, ErrMisaligned)
	assert.Zero(buf.Len())
}

func TestFileRoundTrip(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "out.vex")
	prog := New([]byte("data"), []byte{1, 2, 3, 4})

	assert.NoError(WriteFile(path, prog))

	got, err := ReadFile(path)
	assert.NoError(err)
	assert.Equal(prog, got)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.vex"))
	assert.Error(err)
}
