package cpu

import (
	"encoding/binary"
	"fmt"
)

// Machine word geometry.
const (
	WORD_BYTES = 4
	WORD_BITS  = 32
)

// OpCode selects the instruction layout and operation.
type OpCode int

//go:generate go tool stringer -linecomment -type=OpCode
const (
	OP_NOP   = OpCode(0)  // nop
	OP_HALT  = OpCode(1)  // halt
	OP_ALU   = OpCode(2)  // alu
	OP_ADDI  = OpCode(3)  // addi
	OP_SLTI  = OpCode(4)  // slti
	OP_SLTIU = OpCode(5)  // sltiu
	OP_ANDI  = OpCode(6)  // andi
	OP_ORI   = OpCode(7)  // ori
	OP_XORI  = OpCode(8)  // xori
	OP_FLIP  = OpCode(9)  // flip
	OP_SLLI  = OpCode(10) // slli
	OP_SRLI  = OpCode(11) // srli
	OP_SRAI  = OpCode(12) // srai
	OP_LI    = OpCode(13) // li
	OP_LHI   = OpCode(14) // lhi
	OP_LB    = OpCode(15) // lb
	OP_LBU   = OpCode(16) // lbu
	OP_LH    = OpCode(17) // lh
	OP_LHU   = OpCode(18) // lhu
	OP_LW    = OpCode(19) // lw
	OP_SB    = OpCode(20) // sb
	OP_SH    = OpCode(21) // sh
	OP_SW    = OpCode(22) // sw
	OP_BEZ   = OpCode(23) // bez
	OP_BNZ   = OpCode(24) // bnz
	OP_JMP   = OpCode(25) // jmp
	OP_JAL   = OpCode(26) // jal
)

// AluFunct selects the operation of an OP_ALU (R-form) instruction.
type AluFunct int

//go:generate go tool stringer -linecomment -type=AluFunct
const (
	FN_ADD  = AluFunct(0)  // add
	FN_SUB  = AluFunct(1)  // sub
	FN_MUL  = AluFunct(2)  // mul
	FN_DIV  = AluFunct(3)  // div
	FN_DIVU = AluFunct(4)  // divu
	FN_MOD  = AluFunct(5)  // mod
	FN_MODU = AluFunct(6)  // modu
	FN_AND  = AluFunct(7)  // and
	FN_OR   = AluFunct(8)  // or
	FN_XOR  = AluFunct(9)  // xor
	FN_SLL  = AluFunct(10) // sll
	FN_SRL  = AluFunct(11) // srl
	FN_SRA  = AluFunct(12) // sra
	FN_SLT  = AluFunct(13) // slt
	FN_SLTU = AluFunct(14) // sltu
)

// Instruction is one encoded machine word.
//
// Field layout, bit 31 down to bit 0:
//
//	R-form: opcode[31:26] rd[25:21] rs1[20:16] rs2[15:11] funct[10:0]
//	I-form: opcode[31:26] rd[25:21] rs1[20:16] imm[15:0]   (imm signed)
//	J-form: opcode[31:26] imm[25:0]                        (imm signed)
//
// Branch and jump immediates are byte offsets relative to the program
// counter of the instruction itself.
type Instruction uint32

const (
	opcodeShift = 26
	rdShift     = 21
	rs1Shift    = 16
	rs2Shift    = 11
	regMask     = 0x1f
	functMask   = 0x7ff
	immMask     = 0xffff
	offsetMask  = 0x03ffffff
	offsetSign  = 0x02000000
)

// MakeInstructionR encodes a register-register ALU operation.
func MakeInstructionR(funct AluFunct, rd, rs1, rs2 RegisterId) Instruction {
	return Instruction(uint32(OP_ALU)<<opcodeShift |
		(uint32(rd)&regMask)<<rdShift |
		(uint32(rs1)&regMask)<<rs1Shift |
		(uint32(rs2)&regMask)<<rs2Shift |
		uint32(funct)&functMask)
}

// MakeInstructionI encodes an I-form operation.
func MakeInstructionI(op OpCode, rd, rs1 RegisterId, immediate int16) Instruction {
	return Instruction(uint32(op)<<opcodeShift |
		(uint32(rd)&regMask)<<rdShift |
		(uint32(rs1)&regMask)<<rs1Shift |
		uint32(uint16(immediate)))
}

// MakeInstructionJ encodes a J-form operation. The offset is truncated to
// the signed 26-bit immediate field.
func MakeInstructionJ(op OpCode, offset int32) Instruction {
	return Instruction(uint32(op)<<opcodeShift | uint32(offset)&offsetMask)
}

// Opcode returns the opcode field.
func (in Instruction) Opcode() OpCode {
	return OpCode(in >> opcodeShift)
}

// Rd returns the destination register field (the source register of a
// store).
func (in Instruction) Rd() RegisterId {
	return RegisterId((in >> rdShift) & regMask)
}

// Rs1 returns the first source register field.
func (in Instruction) Rs1() RegisterId {
	return RegisterId((in >> rs1Shift) & regMask)
}

// Rs2 returns the second source register field of an R-form instruction.
func (in Instruction) Rs2() RegisterId {
	return RegisterId((in >> rs2Shift) & regMask)
}

// Funct returns the ALU function field of an R-form instruction.
func (in Instruction) Funct() AluFunct {
	return AluFunct(in & functMask)
}

// Immediate returns the sign-extended I-form immediate.
func (in Instruction) Immediate() int16 {
	return int16(in & immMask)
}

// Offset returns the sign-extended J-form offset.
func (in Instruction) Offset() int32 {
	offset := int32(in & offsetMask)
	if in&offsetSign != 0 {
		offset -= offsetMask + 1
	}
	return offset
}

// String returns the assembly representation of the instruction.
func (in Instruction) String() string {
	op := in.Opcode()
	switch op {
	case OP_NOP, OP_HALT:
		return op.String()
	case OP_ALU:
		return fmt.Sprintf("%v %v %v %v", in.Funct(), in.Rd(), in.Rs1(), in.Rs2())
	case OP_JMP, OP_JAL:
		return fmt.Sprintf("%v %v", op, in.Offset())
	case OP_BEZ, OP_BNZ:
		return fmt.Sprintf("%v %v %v", op, in.Rs1(), in.Immediate())
	case OP_FLIP:
		return fmt.Sprintf("%v %v %v", op, in.Rd(), in.Rs1())
	case OP_LI, OP_LHI:
		return fmt.Sprintf("%v %v %v", op, in.Rd(), in.Immediate())
	default:
		return fmt.Sprintf("%v %v %v %v", op, in.Rd(), in.Rs1(), in.Immediate())
	}
}

// JumpAddrI16 converts an instruction-count offset to the byte offset a
// branch immediate carries.
func JumpAddrI16(offset int16) int16 {
	return offset * WORD_BYTES
}

// JumpAddrI32 converts an instruction-count offset to the byte offset a
// jump immediate carries.
func JumpAddrI32(offset int32) int32 {
	return offset * WORD_BYTES
}

// ProgramFromWords packs instruction words into the little-endian byte
// stream the processor fetches from.
func ProgramFromWords(words []Instruction) []byte {
	buf := make([]byte, len(words)*WORD_BYTES)
	for n, word := range words {
		binary.LittleEndian.PutUint32(buf[n*WORD_BYTES:], uint32(word))
	}
	return buf
}
