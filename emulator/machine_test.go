package emulator

import (
	"bytes"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/vcpu/cpu"
	"github.com/ezrec/vcpu/memory"
)

func TestMachineHello(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	m, err := NewMachine(nil, output)
	assert.NoError(err)

	source := `
.data
msg:	.asciz "hi\n"
.text
	li a0 msg
	ori a1 zero $( CONSOLE_BASE + CONSOLE_TX )
next:
	lbu t0 a0 0
	bez t0 done
	sb t0 a1 0
	addi a0 a0 1
	jmp next
done:
	halt
`

	_, err = m.Assemble(strings.NewReader(source))
	assert.NoError(err)

	code := m.Run()
	assert.Equal(cpu.Halted, code)
	assert.Equal("hi\n", output.String())
}

func TestMachineMaxTicks(t *testing.T) {
	assert := assert.New(t)

	config := DefaultConfig()
	config.MaxTicks = 10

	m, err := NewMachine(config, nil)
	assert.NoError(err)

	// jmp 0 spins forever; the tick budget terminates it.
	_, err = m.Assemble(strings.NewReader("spin: jmp spin\n"))
	assert.NoError(err)

	code := m.Run()
	assert.Equal(cpu.Terminated, code)
	assert.Equal(uint64(10), m.Ticks())
}

func TestMachineRomIsReadOnly(t *testing.T) {
	assert := assert.New(t)

	m, err := NewMachine(nil, nil)
	assert.NoError(err)

	source := `
.data
	.word 0x11223344
.text
	li t0 -1
	sw t0 zero 0   ; discarded: rom ignores guest stores
	lw v0 zero 0
	halt
`

	_, err = m.Assemble(strings.NewReader(source))
	assert.NoError(err)

	code := m.Run()
	assert.Equal(cpu.Halted, code)
	assert.Equal(uint32(0x11223344), m.Processor.Register(cpu.V0).Uint())
}

func TestMachineConsoleStatus(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	m, err := NewMachine(nil, output)
	assert.NoError(err)

	// Stores to STATUS are vetoed; TX still works afterwards.
	source := `
	ori a1 zero $( CONSOLE_BASE )
	li t0 0xff
	sb t0 a1 $( CONSOLE_STATUS )
	lbu v0 a1 $( CONSOLE_STATUS )
	li t1 '!'
	sb t1 a1 $( CONSOLE_TX )
	halt
`

	_, err = m.Assemble(strings.NewReader(source))
	assert.NoError(err)

	code := m.Run()
	assert.Equal(cpu.Halted, code)
	assert.Equal(uint32(0), m.Processor.Register(cpu.V0).Uint())
	assert.Equal("!", output.String())
}

func TestMachineReset(t *testing.T) {
	assert := assert.New(t)

	m, err := NewMachine(nil, nil)
	assert.NoError(err)

	source := `
.data
cell:	.word 5
.text
	li t0 6
	sw t0 zero $( RAM_BASE )  ; scratch in ram
	lw v0 zero cell
	halt
`

	_, err = m.Assemble(strings.NewReader(source))
	assert.NoError(err)

	assert.Equal(cpu.Halted, m.Run())
	assert.Equal(uint32(5), m.Processor.Register(cpu.V0).Uint())

	// Reset restores the data image and reruns cleanly.
	m.Reset()
	assert.False(m.Processor.Stopped())
	assert.Equal(cpu.Halted, m.Run())
	assert.Equal(uint32(5), m.Processor.Register(cpu.V0).Uint())
}

func TestMachineLoadTooLarge(t *testing.T) {
	assert := assert.New(t)

	m, err := NewMachine(nil, nil)
	assert.NoError(err)

	image := make([]byte, 0x4001) // rom is 0x4000
	err = m.Load(image, nil)

	var size *ErrImageSize
	assert.ErrorAs(err, &size)
	assert.Equal(0x4001, size.Image)
	assert.Equal(0x4000, size.Fragment)
}

func TestMachineDefines(t *testing.T) {
	assert := assert.New(t)

	m, err := NewMachine(nil, nil)
	assert.NoError(err)

	defines := maps.Collect(m.Defines())
	for _, key := range []string{
		"ROM_BASE", "ROM_SIZE",
		"RAM_BASE", "RAM_SIZE",
		"CONSOLE_BASE", "CONSOLE_TX", "CONSOLE_STATUS",
	} {
		assert.Contains(defines, key, key)
	}
}

func TestMachineBadConfig(t *testing.T) {
	assert := assert.New(t)

	_, err := NewMachine(&Config{
		Fragments: []FragmentConfig{
			{Key: "weird", Kind: "drum", Base: 0, Size: 16},
		},
	}, nil)
	assert.ErrorIs(err, ErrFragmentKind("drum"))

	_, err = NewMachine(&Config{
		Fragments: []FragmentConfig{
			{Key: "a", Kind: "ram", Base: 0, Size: 32},
			{Key: "b", Kind: "ram", Base: 16, Size: 32},
		},
	}, nil)
	assert.ErrorIs(err, memory.ErrFragmentIntersection)
}

func TestLoadConfig(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "machine.toml")
	assert.NoError(os.WriteFile(path, []byte(`
max_ticks = 99

[[fragment]]
key = "ram"
kind = "ram"
base = 0
size = 256
`), 0o644))

	config, err := LoadConfig(path)
	assert.NoError(err)
	assert.Equal(uint64(99), config.MaxTicks)
	if assert.Len(config.Fragments, 1) {
		assert.Equal(FragmentConfig{Key: "ram", Kind: "ram", Base: 0, Size: 256}, config.Fragments[0])
	}

	// An empty file falls back to the default fragments.
	empty := filepath.Join(t.TempDir(), "empty.toml")
	assert.NoError(os.WriteFile(empty, nil, 0o644))

	config, err = LoadConfig(empty)
	assert.NoError(err)
	assert.Equal(DefaultConfig().Fragments, config.Fragments)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(err)
}
