package emulator

import (
	"fmt"
	"io"
	"iter"
	"maps"

	"github.com/ezrec/vcpu/memory"
)

// Console register bank layout. STATUS bit 0 is the busy flag; the
// console never goes busy, so it reads zero. STATUS is read-only to the
// guest: stores to it are vetoed and silently discarded.
const (
	CONSOLE_TX     = 0x0
	CONSOLE_STATUS = 0x4
	CONSOLE_SIZE   = 0x8
)

var _console_defines = map[string]string{
	"CONSOLE_TX":     fmt.Sprintf("%#v", CONSOLE_TX),
	"CONSOLE_STATUS": fmt.Sprintf("%#v", CONSOLE_STATUS),
	"CONSOLE_SIZE":   fmt.Sprintf("%#v", CONSOLE_SIZE),
}

// Console is a memory mapped output device. A store touching the TX
// register forwards its low byte to the output writer.
type Console struct {
	Output io.Writer

	bank *memory.IOMemory
}

// NewConsole returns a console forwarding TX bytes to output.
func NewConsole(output io.Writer) (con *Console) {
	con = &Console{
		Output: output,
	}
	con.bank = memory.NewIOMemory(CONSOLE_SIZE, &memory.DelegateIOHandler{
		CanWriteFunc: con.canWrite,
		OnWriteFunc:  con.onWrite,
	})

	return
}

// Storage returns the register bank to mount into the address space.
func (con *Console) Storage() memory.StorageMut {
	return con.bank
}

// Defines returns an iterator over the console equates.
func (con *Console) Defines() iter.Seq2[string, string] {
	return maps.All(_console_defines)
}

func (con *Console) canWrite(mem []byte, address, size uint32) bool {
	return address == CONSOLE_TX
}

func (con *Console) onWrite(mem []byte, address, size uint32) {
	if con.Output != nil {
		con.Output.Write(mem[CONSOLE_TX : CONSOLE_TX+1])
	}
}
