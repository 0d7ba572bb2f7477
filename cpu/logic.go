package cpu

import (
	"github.com/ezrec/vcpu/memory"
)

// tickKind is the control-flow outcome class of one executed instruction.
type tickKind int

const (
	tickNext = tickKind(iota) // advance to the following instruction
	tickJump                  // transfer to an absolute byte target
	tickStop                  // terminal, with an exit code
)

// tickResult is the decision the logic unit hands back to the processor.
type tickResult struct {
	kind   tickKind
	target uint32   // tickJump only
	code   ExitCode // tickStop only
}

func next() tickResult {
	return tickResult{kind: tickNext}
}

func jump(target uint32) tickResult {
	return tickResult{kind: tickJump, target: target}
}

func stop(code ExitCode) tickResult {
	return tickResult{kind: tickStop, code: code}
}

// execute decodes one instruction word and applies it to the register
// file and storage. It never panics, whatever the word contains; every
// fault is an exit code. pc is the byte address the word was fetched
// from, used for relative control flow.
func execute(regs *RegisterFile, storage memory.StorageMut, in Instruction, pc uint32) tickResult {
	switch op := in.Opcode(); op {
	case OP_NOP:
		return next()

	case OP_HALT:
		return stop(Halted)

	case OP_ALU:
		return executeAlu(regs, in)

	case OP_ADDI, OP_SLTI, OP_SLTIU, OP_ANDI, OP_ORI, OP_XORI,
		OP_FLIP, OP_SLLI, OP_SRLI, OP_SRAI, OP_LI, OP_LHI:
		return executeImmediate(regs, in)

	case OP_LB, OP_LBU, OP_LH, OP_LHU, OP_LW:
		return executeLoad(regs, storage, in)

	case OP_SB, OP_SH, OP_SW:
		return executeStore(regs, storage, in)

	case OP_BEZ, OP_BNZ:
		taken := regs[in.Rs1()].Uint() == 0
		if op == OP_BNZ {
			taken = !taken
		}
		if !taken {
			return next()
		}
		return jump(pc + uint32(int32(in.Immediate())))

	case OP_JMP:
		return jump(pc + uint32(in.Offset()))

	case OP_JAL:
		setRegister(regs, RA, pc+WORD_BYTES)
		return jump(pc + uint32(in.Offset()))

	default:
		return stop(InvalidOpcode)
	}
}

// executeAlu handles R-form register-register operations. All arithmetic
// is 32-bit two's-complement wraparound; shift amounts use the low 5 bits
// of the second operand.
func executeAlu(regs *RegisterFile, in Instruction) tickResult {
	a := regs[in.Rs1()].Uint()
	b := regs[in.Rs2()].Uint()

	var out uint32
	switch in.Funct() {
	case FN_ADD:
		out = a + b
	case FN_SUB:
		out = a - b
	case FN_MUL:
		out = a * b
	case FN_DIV, FN_DIVU, FN_MOD, FN_MODU:
		if b == 0 {
			return stop(DivisionByZero)
		}
		switch in.Funct() {
		case FN_DIV:
			out = uint32(int32(a) / int32(b))
		case FN_DIVU:
			out = a / b
		case FN_MOD:
			out = uint32(int32(a) % int32(b))
		case FN_MODU:
			out = a % b
		}
	case FN_AND:
		out = a & b
	case FN_OR:
		out = a | b
	case FN_XOR:
		out = a ^ b
	case FN_SLL:
		out = a << (b & (WORD_BITS - 1))
	case FN_SRL:
		out = a >> (b & (WORD_BITS - 1))
	case FN_SRA:
		out = uint32(int32(a) >> (b & (WORD_BITS - 1)))
	case FN_SLT:
		if int32(a) < int32(b) {
			out = 1
		}
	case FN_SLTU:
		if a < b {
			out = 1
		}
	default:
		return stop(InvalidOpcode)
	}

	setRegister(regs, in.Rd(), out)
	return next()
}

// executeImmediate handles the I-form arithmetic group. Arithmetic and
// comparison immediates are sign-extended; logical immediates are
// zero-extended; shift immediates use their low 5 bits.
func executeImmediate(regs *RegisterFile, in Instruction) tickResult {
	src := regs[in.Rs1()].Uint()
	simm := int32(in.Immediate())
	uimm := uint32(uint16(in.Immediate()))

	var out uint32
	switch in.Opcode() {
	case OP_ADDI:
		out = src + uint32(simm)
	case OP_SLTI:
		if int32(src) < simm {
			out = 1
		}
	case OP_SLTIU:
		if src < uint32(simm) {
			out = 1
		}
	case OP_ANDI:
		out = src & uimm
	case OP_ORI:
		out = src | uimm
	case OP_XORI:
		out = src ^ uimm
	case OP_FLIP:
		out = ^src
	case OP_SLLI:
		out = src << (uint32(simm) & (WORD_BITS - 1))
	case OP_SRLI:
		out = src >> (uint32(simm) & (WORD_BITS - 1))
	case OP_SRAI:
		out = uint32(int32(src) >> (uint32(simm) & (WORD_BITS - 1)))
	case OP_LI:
		out = uint32(simm)
	case OP_LHI:
		out = uimm << 16
	}

	setRegister(regs, in.Rd(), out)
	return next()
}

// executeLoad reads from storage at rs1 + sign-extended offset. Signed
// variants sign-extend the loaded value to the register width. Any range
// failure folds into BadMemoryAccess.
func executeLoad(regs *RegisterFile, storage memory.StorageMut, in Instruction) tickResult {
	address := regs[in.Rs1()].Uint() + uint32(int32(in.Immediate()))

	var out uint32
	var err error
	switch in.Opcode() {
	case OP_LB:
		var v uint8
		v, err = memory.ReadByte(storage, address)
		out = uint32(int32(int8(v)))
	case OP_LBU:
		var v uint8
		v, err = memory.ReadByte(storage, address)
		out = uint32(v)
	case OP_LH:
		var v uint16
		v, err = memory.ReadHalf(storage, address)
		out = uint32(int32(int16(v)))
	case OP_LHU:
		var v uint16
		v, err = memory.ReadHalf(storage, address)
		out = uint32(v)
	case OP_LW:
		out, err = memory.ReadWord(storage, address)
	}
	if err != nil {
		return stop(BadMemoryAccess)
	}

	setRegister(regs, in.Rd(), out)
	return next()
}

// executeStore writes the rd register to storage at rs1 + sign-extended
// offset, truncated to the store width.
func executeStore(regs *RegisterFile, storage memory.StorageMut, in Instruction) tickResult {
	address := regs[in.Rs1()].Uint() + uint32(int32(in.Immediate()))
	value := regs[in.Rd()].Uint()

	var err error
	switch in.Opcode() {
	case OP_SB:
		err = memory.WriteByte(storage, address, uint8(value))
	case OP_SH:
		err = memory.WriteHalf(storage, address, uint16(value))
	case OP_SW:
		err = memory.WriteWord(storage, address, value)
	}
	if err != nil {
		return stop(BadMemoryAccess)
	}

	return next()
}
