// Package vexfile reads and writes the vcpu executable container: a
// little-endian header followed by the program's initial data image and
// its instruction stream.
//
// Layout:
//
//	offset  size  field
//	0       4     magic "VEXF"
//	4       2     version (currently 1)
//	6       4     data section length in bytes
//	10      4     instruction section length in bytes (word multiple)
//	14      ...   data section, then instruction section
package vexfile

import (
	"encoding/binary"
	"errors"
	"io"
	"os"

	"github.com/ezrec/vcpu/cpu"
)

const (
	// Magic identifies the container format.
	Magic = "VEXF"
	// Version is the only supported container revision.
	Version = 1

	headerBytes = 14
)

// Program is the content of an executable: an initial data image and an
// instruction stream.
type Program struct {
	Data         []byte
	Instructions []byte
}

// New bundles a data image and an instruction stream into a Program.
func New(data, instructions []byte) *Program {
	return &Program{
		Data:         data,
		Instructions: instructions,
	}
}

// Read parses a container from r.
func Read(r io.Reader) (prog *Program, err error) {
	var header [headerBytes]byte
	_, err = io.ReadFull(r, header[:])
	if err != nil {
		err = errors.Join(ErrTruncated, err)
		return
	}

	if string(header[0:4]) != Magic {
		err = ErrBadMagic
		return
	}

	version := binary.LittleEndian.Uint16(header[4:6])
	if version != Version {
		err = ErrVersion(version)
		return
	}

	dataLen := binary.LittleEndian.Uint32(header[6:10])
	textLen := binary.LittleEndian.Uint32(header[10:14])
	if textLen%cpu.WORD_BYTES != 0 {
		err = ErrMisaligned
		return
	}

	prog = &Program{
		Data:         make([]byte, dataLen),
		Instructions: make([]byte, textLen),
	}
	_, err = io.ReadFull(r, prog.Data)
	if err == nil {
		_, err = io.ReadFull(r, prog.Instructions)
	}
	if err != nil {
		prog = nil
		err = errors.Join(ErrTruncated, err)
	}

	return
}

// Write serializes prog to w.
func Write(w io.Writer, prog *Program) (err error) {
	if len(prog.Instructions)%cpu.WORD_BYTES != 0 {
		return ErrMisaligned
	}

	var header [headerBytes]byte
	copy(header[0:4], Magic)
	binary.LittleEndian.PutUint16(header[4:6], Version)
	binary.LittleEndian.PutUint32(header[6:10], uint32(len(prog.Data)))
	binary.LittleEndian.PutUint32(header[10:14], uint32(len(prog.Instructions)))

	_, err = w.Write(header[:])
	if err == nil {
		_, err = w.Write(prog.Data)
	}
	if err == nil {
		_, err = w.Write(prog.Instructions)
	}

	return
}

// ReadFile parses the container at path.
func ReadFile(path string) (prog *Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return Read(inf)
}

// WriteFile serializes prog to path.
func WriteFile(path string, prog *Program) (err error) {
	ouf, err := os.Create(path)
	if err != nil {
		return
	}
	defer ouf.Close()

	return Write(ouf, prog)
}
