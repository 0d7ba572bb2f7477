package vasm

import (
	"iter"

	"github.com/ezrec/vcpu/cpu"
)

// linkKind selects how a label reference patches its instruction.
type linkKind int

const (
	linkNone      = linkKind(iota)
	linkBranch    // I-form immediate, pc-relative byte offset
	linkJump      // J-form offset, pc-relative byte offset
	linkImmediate // I-form immediate, absolute label value
)

// Opcode represents a line of assembled text with its source location and
// generated instruction.
type Opcode struct {
	LineNo    int
	Ip        int // instruction index of the first generated word
	Words     []string
	Codes     []cpu.Instruction
	LinkLabel string
	LinkKind  linkKind
}

// Program is the output of the assembler: the text section listing and
// the initial data image.
type Program struct {
	Opcodes []Opcode
	Data    []byte
}

// Debug names the source line behind one instruction address.
type Debug struct {
	*Opcode
	Index int
}

// Debug locates the opcode that generated the instruction at the given
// byte address.
func (prog *Program) Debug(pc uint32) (dbg Debug) {
	index := int(pc / cpu.WORD_BYTES)
	for n, op := range prog.Opcodes {
		if index >= op.Ip && index < op.Ip+len(op.Codes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  index - op.Ip,
			}
			break
		}
	}

	return
}

// Codes iterates the generated instructions keyed by instruction index.
func (prog *Program) Codes() iter.Seq2[int, cpu.Instruction] {
	return func(yield func(ip int, code cpu.Instruction) bool) {
		for _, op := range prog.Opcodes {
			for n, code := range op.Codes {
				if !yield(op.Ip+n, code) {
					return
				}
			}
		}
	}
}

// Instructions packs the text section into the little-endian byte stream
// the processor fetches from.
func (prog *Program) Instructions() (bins []byte) {
	var words []cpu.Instruction
	for _, code := range prog.Codes() {
		words = append(words, code)
	}
	return cpu.ProgramFromWords(words)
}
