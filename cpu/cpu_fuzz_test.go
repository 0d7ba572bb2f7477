package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/vcpu/memory"
)

func FuzzProcessor(f *testing.F) {
	f.Add(uint32(0), uint32(0), uint32(0), uint32(0), uint32(0))
	f.Add(uint32(0x04000000), uint32(0), uint32(0), uint32(0), uint32(0)) // halt
	f.Add(uint32(0xffffffff), uint32(0xffffffff), uint32(0x80000000), uint32(1), uint32(0x7fffffff))
	for op := OP_NOP; op <= OP_JAL; op++ {
		f.Add(uint32(op)<<26, uint32(op)<<26|0x8000, uint32(0xcafe), uint32(0x12345678), uint32(16))
	}

	f.Fuzz(func(t *testing.T, w0, w1, w2, seed1, seed2 uint32) {
		assert := assert.New(t)

		text := ProgramFromWords([]Instruction{
			Instruction(w0), Instruction(w1), Instruction(w2),
		})
		streamLen := uint32(len(text))

		ram := memory.NewRAM(64)
		p := NewProcessor()
		p.SetRegister(T0, seed1)
		p.SetRegister(T1, seed2)

		// Whatever the words decode to, the processor must not panic,
		// must keep the zero register clear, and must keep the program
		// counter aligned and in-stream while running.
		for range 64 {
			code, stopped := p.Tick(text, ram)
			assert.Equal(uint32(0), p.Register(ZERO).Uint())
			if stopped {
				assert.True(code >= Halted && code <= BadProgramCounter, code.String())
				break
			}
			assert.Equal(uint32(0), p.ProgramCounter()%WORD_BYTES)
			assert.Less(p.ProgramCounter(), streamLen)
		}

		// A stopped processor is inert.
		if p.Stopped() {
			before, _ := p.State()
			pc := p.ProgramCounter()
			regs := p.registers

			after, stopped := p.Tick(text, ram)
			assert.True(stopped)
			assert.Equal(before, after)
			assert.Equal(pc, p.ProgramCounter())
			assert.Equal(regs, p.registers)
		}
	})
}
