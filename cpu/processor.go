package cpu

import (
	"encoding/binary"
	"log"

	"github.com/ezrec/vcpu/memory"
)

// ExitCode is the terminal reason the processor stopped. Halted is the
// only non-fault reason. The numbering is stable; the interop boundary
// relays it as-is.
type ExitCode int

//go:generate go tool stringer -linecomment -type=ExitCode
const (
	// A halt instruction was executed (normal shutdown).
	Halted = ExitCode(0) // halted
	// Reason for shutdown unknown.
	Unknown = ExitCode(1) // unknown
	// External termination was requested.
	Terminated = ExitCode(2) // terminated
	// Attempted integer division by zero.
	DivisionByZero = ExitCode(3) // division by zero
	// A load or store fell outside the storage bounds.
	BadMemoryAccess = ExitCode(4) // bad memory access
	// A jump or branch target was not word-aligned.
	BadAlignment = ExitCode(5) // bad alignment
	// A jump or branch target was outside the instruction stream.
	BadJump = ExitCode(6) // bad jump
	// The opcode or funct field was not recognized.
	InvalidOpcode = ExitCode(7) // invalid opcode
	// The program counter would read past the instruction stream.
	BadProgramCounter = ExitCode(8) // bad program counter
)

// Processor owns the register file and the program counter and drives
// the fetch-decode-execute cycle. The instruction stream and the storage
// object are supplied by the host on every tick; the processor holds no
// reference to either between ticks.
type Processor struct {
	Verbose bool // Set to enable verbose logging.

	registers RegisterFile
	pc        uint32
	stopped   bool
	exitCode  ExitCode
}

// NewProcessor returns a processor in its power-on state: all registers
// zero, program counter zero, running.
func NewProcessor() *Processor {
	return &Processor{}
}

// Register returns the current value of one register.
func (p *Processor) Register(id RegisterId) Register {
	return p.registers[id]
}

// SetRegister sets one register, observing the zero-register policy.
func (p *Processor) SetRegister(id RegisterId, value uint32) {
	setRegister(&p.registers, id, value)
}

// ProgramCounter returns the byte offset of the next fetch. It is a
// multiple of WORD_BYTES while the processor is running.
func (p *Processor) ProgramCounter() uint32 {
	return p.pc
}

// Stopped reports whether a terminal exit code has been set.
func (p *Processor) Stopped() bool {
	return p.stopped
}

// State returns the exit code if the processor has stopped.
func (p *Processor) State() (code ExitCode, stopped bool) {
	return p.exitCode, p.stopped
}

// Terminate forces the Terminated exit code before the next tick. A
// processor that has already stopped keeps its original exit code.
func (p *Processor) Terminate() {
	if !p.stopped {
		p.stop(Terminated)
	}
}

// Reset returns the processor to its power-on state.
func (p *Processor) Reset() {
	if p.Verbose {
		log.Printf("cpu: reset")
	}
	clear(p.registers[:])
	p.pc = 0
	p.stopped = false
	p.exitCode = Halted
}

// Tick runs one fetch-decode-execute step. Once the processor has
// stopped, further ticks mutate nothing and report the same exit code.
func (p *Processor) Tick(instructions []byte, storage memory.StorageMut) (ExitCode, bool) {
	if !p.stopped {
		p.step(instructions, storage)
	}
	return p.exitCode, p.stopped
}

// Run ticks until a terminal state is reached and returns its exit code.
func (p *Processor) Run(instructions []byte, storage memory.StorageMut) ExitCode {
	for {
		code, stopped := p.Tick(instructions, storage)
		if stopped {
			return code
		}
	}
}

func (p *Processor) step(instructions []byte, storage memory.StorageMut) {
	streamLen := uint32(len(instructions))

	// The bounds check must precede every fetch; the host may hand a
	// different (or empty) stream on any tick.
	if uint64(p.pc)+WORD_BYTES > uint64(streamLen) {
		p.stop(BadProgramCounter)
		return
	}

	in := Instruction(binary.LittleEndian.Uint32(instructions[p.pc:]))
	if p.Verbose {
		log.Printf("cpu: %08x: %v", p.pc, in)
	}

	result := execute(&p.registers, storage, in, p.pc)
	switch result.kind {
	case tickNext:
		// Falling off the end of the stream restarts at address zero, a
		// deliberate loop-to-start rather than a fault.
		advanced := p.pc + WORD_BYTES
		if advanced >= streamLen {
			advanced = 0
		}
		p.pc = advanced
	case tickJump:
		switch {
		case result.target%WORD_BYTES != 0:
			p.stop(BadAlignment)
		case result.target >= streamLen:
			p.stop(BadJump)
		default:
			p.pc = result.target
		}
	case tickStop:
		p.stop(result.code)
	}
}

func (p *Processor) stop(code ExitCode) {
	p.stopped = true
	p.exitCode = code
	if p.Verbose {
		log.Printf("cpu: stopped: %v", code)
	}
}
