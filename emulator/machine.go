// Package emulator assembles a processor, a fragmented address space,
// and memory mapped devices into a runnable machine.
package emulator

import (
	"fmt"
	"io"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/ezrec/vcpu/cpu"
	"github.com/ezrec/vcpu/internal"
	"github.com/ezrec/vcpu/memory"
	"github.com/ezrec/vcpu/vasm"
)

// Machine state. Processor + fragmented memory + devices.
type Machine struct {
	Verbose   bool           // If set, enables verbose logging.
	Processor *cpu.Processor // The processor simulation.
	Memory    *memory.Composite
	Console   *Console      // Console device, nil when not configured.
	Program   *vasm.Program // Currently loaded program listing, if assembled here.

	config  *Config
	defines map[string]string
	data    memory.RAM // fragment backing that receives the data image
	image   []byte     // data image, re-applied on Reset
	text    []byte
	ticks   uint64
}

// NewMachine builds a machine from a configuration. Console output goes
// to output.
func NewMachine(config *Config, output io.Writer) (m *Machine, err error) {
	if config == nil {
		config = DefaultConfig()
	}

	m = &Machine{
		Processor: cpu.NewProcessor(),
		Memory:    memory.NewComposite(),
		config:    config,
		defines:   map[string]string{},
	}

	var first memory.RAM
	for _, fc := range m.config.Fragments {
		var frag memory.StorageMut

		switch fc.Kind {
		case "ram", "":
			bank := memory.NewRAM(fc.Size)
			if first == nil {
				first = bank
			}
			frag = bank
		case "rom":
			bank := memory.NewRAM(fc.Size)
			if first == nil {
				first = bank
			}
			if m.data == nil {
				m.data = bank
			}
			frag = memory.NewIOMemoryOver(bank, &memory.DelegateIOHandler{
				CanWriteFunc: func(mem []byte, address, size uint32) bool { return false },
			})
		case "console":
			m.Console = NewConsole(output)
			frag = m.Console.Storage()
		default:
			return nil, ErrFragmentKind(fc.Kind)
		}

		err = m.Memory.Mount(fc.Base, fc.Key, frag)
		if err != nil {
			return nil, err
		}

		key := strings.ToUpper(fc.Key)
		m.defines[key+"_BASE"] = fmt.Sprintf("%#v", fc.Base)
		m.defines[key+"_SIZE"] = fmt.Sprintf("%#v", frag.Length())
	}

	if m.data == nil {
		m.data = first
	}

	return
}

// Defines returns an iterator over all of the machine equates.
func (m *Machine) Defines() iter.Seq2[string, string] {
	if m.Console == nil {
		return maps.All(m.defines)
	}
	return internal.IterSeq2Concat(maps.All(m.defines), m.Console.Defines())
}

// Assemble runs source through the assembler with the machine equates
// predefined, then loads the result.
func (m *Machine) Assemble(input io.Reader) (prog *vasm.Program, err error) {
	asm := &vasm.Assembler{Verbose: m.Verbose}
	for key, value := range m.Defines() {
		asm.Predefine(key, value)
	}

	prog, err = asm.Parse(input)
	if err != nil {
		return
	}

	err = m.Load(prog.Data, prog.Instructions())
	if err != nil {
		return nil, err
	}
	m.Program = prog

	return
}

// Load installs a data image and instruction stream, then resets the
// machine.
func (m *Machine) Load(data, text []byte) (err error) {
	if len(data) > len(m.data) {
		return &ErrImageSize{Image: len(data), Fragment: len(m.data)}
	}

	m.image = slices.Clone(data)
	m.text = slices.Clone(text)
	m.Reset()

	return
}

// Reset restores the data image and returns the processor to its renewed
// state. The tick count restarts.
func (m *Machine) Reset() {
	clear(m.data)
	copy(m.data, m.image)
	m.Processor.Reset()
	m.ticks = 0
}

// Ticks returns the tick count since the last reset.
func (m *Machine) Ticks() uint64 {
	return m.ticks
}

// LineNo returns the source line of the instruction the processor is
// about to execute, when a listing is loaded.
func (m *Machine) LineNo() int {
	if m.Program == nil {
		return 0
	}

	dbg := m.Program.Debug(m.Processor.ProgramCounter())
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the machine.
func (m *Machine) Tick() (done bool) {
	m.Processor.Verbose = m.Verbose

	_, done = m.Processor.Tick(m.text, m.Memory)
	m.ticks++

	if !done && m.config.MaxTicks > 0 && m.ticks >= m.config.MaxTicks {
		m.Processor.Terminate()
		done = true
	}

	return
}

// Run ticks the machine until it stops and reports why.
func (m *Machine) Run() cpu.ExitCode {
	for done := m.Tick(); !done; done = m.Tick() {
	}

	code, _ := m.Processor.State()

	return code
}
