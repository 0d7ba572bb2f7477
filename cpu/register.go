package cpu

// REGISTER_COUNT is the size of the register file.
const REGISTER_COUNT = 32

// Register is one 32-bit storage cell, readable under both unsigned and
// two's-complement signed interpretations.
type Register uint32

// Uint returns the raw unsigned value.
func (r Register) Uint() uint32 {
	return uint32(r)
}

// Int returns the two's-complement signed view.
func (r Register) Int() int32 {
	return int32(r)
}

// RegisterId names one register in the file. ZERO is hard-wired to zero:
// the logic unit discards writes to it at the write site; the register
// file itself stores nothing special.
type RegisterId int

//go:generate go tool stringer -linecomment -type=RegisterId
const (
	ZERO = RegisterId(0)  // zero
	AT   = RegisterId(1)  // at
	V0   = RegisterId(2)  // v0
	V1   = RegisterId(3)  // v1
	A0   = RegisterId(4)  // a0
	A1   = RegisterId(5)  // a1
	A2   = RegisterId(6)  // a2
	A3   = RegisterId(7)  // a3
	T0   = RegisterId(8)  // t0
	T1   = RegisterId(9)  // t1
	T2   = RegisterId(10) // t2
	T3   = RegisterId(11) // t3
	T4   = RegisterId(12) // t4
	T5   = RegisterId(13) // t5
	T6   = RegisterId(14) // t6
	T7   = RegisterId(15) // t7
	S0   = RegisterId(16) // s0
	S1   = RegisterId(17) // s1
	S2   = RegisterId(18) // s2
	S3   = RegisterId(19) // s3
	S4   = RegisterId(20) // s4
	S5   = RegisterId(21) // s5
	S6   = RegisterId(22) // s6
	S7   = RegisterId(23) // s7
	T8   = RegisterId(24) // t8
	T9   = RegisterId(25) // t9
	K0   = RegisterId(26) // k0
	K1   = RegisterId(27) // k1
	GP   = RegisterId(28) // gp
	SP   = RegisterId(29) // sp
	FP   = RegisterId(30) // fp
	RA   = RegisterId(31) // ra
)

// RegisterFile is the fixed bank of REGISTER_COUNT registers.
type RegisterFile [REGISTER_COUNT]Register

// setRegister writes value to id, discarding writes to the hard-wired
// zero register.
func setRegister(regs *RegisterFile, id RegisterId, value uint32) {
	if id != ZERO {
		regs[id] = Register(value)
	}
}
