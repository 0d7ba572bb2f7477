// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/vcpu/cpu"
	"github.com/ezrec/vcpu/emulator"
	"github.com/ezrec/vcpu/interop"
	"github.com/ezrec/vcpu/vexfile"
)

// fail reports the error and exits with its stable result code.
func fail(result interop.Result, format string, args ...any) {
	log.Printf(format, args...)
	os.Exit(int(result))
}

func main() {
	var machine string
	var compile string
	var save string
	var ticks uint64
	var verbose bool

	flag.StringVar(&machine, "m", "", "machine description (.toml)")
	flag.StringVar(&compile, "c", "", ".vs file to compile and run")
	flag.StringVar(&save, "s", "", "save the compiled executable, do not run")
	flag.Uint64Var(&ticks, "t", 0, "terminate after this many ticks (0 is unbounded)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	config := emulator.DefaultConfig()
	if len(machine) != 0 {
		var err error
		config, err = emulator.LoadConfig(machine)
		if err != nil {
			fail(interop.FromError(err), "%v: %v", machine, err)
		}
	}
	if ticks != 0 {
		config.MaxTicks = ticks
	}

	emu, err := emulator.NewMachine(config, os.Stdout)
	if err != nil {
		fail(interop.FromError(err), "%v: %v", machine, err)
	}
	emu.Verbose = verbose

	// Compile a new executable.
	if len(compile) != 0 {
		if flag.NArg() != 0 {
			log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
		}

		inf, err := os.Open(compile)
		if err != nil {
			fail(interop.FromLoadError(err), "%v: %v", compile, err)
		}
		defer inf.Close()

		prog, err := emu.Assemble(inf)
		if err != nil {
			fail(interop.FromError(err), "%v: %v", compile, err)
		}

		if len(save) != 0 {
			err = vexfile.WriteFile(save, vexfile.New(prog.Data, prog.Instructions()))
			if err != nil {
				fail(interop.FromSaveError(err), "%v: %v", save, err)
			}
			return
		}
	} else {
		if flag.NArg() != 1 {
			log.Fatalf("usage: %v [options] input.vex", os.Args[0])
		}

		input := flag.Arg(0)
		prog, err := vexfile.ReadFile(input)
		if err != nil {
			fail(interop.FromLoadError(err), "%v: %v", input, err)
		}

		err = emu.Load(prog.Data, prog.Instructions)
		if err != nil {
			fail(interop.FromLoadError(err), "%v: %v", input, err)
		}
	}

	code := emu.Run()
	if code != cpu.Halted {
		if lineno := emu.LineNo(); lineno != 0 {
			log.Printf("line %v: %v", lineno, code)
		} else {
			log.Printf("pc %#08x: %v", emu.Processor.ProgramCounter(), code)
		}
	}
	os.Exit(int(interop.ExitStatus(code)))
}
