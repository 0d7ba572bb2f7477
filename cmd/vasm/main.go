// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/vcpu/emulator"
	"github.com/ezrec/vcpu/vasm"
	"github.com/ezrec/vcpu/vexfile"
)

func main() {
	var machine string
	var output string
	var listing bool
	var verbose bool

	flag.StringVar(&machine, "m", "", "machine description (.toml) for predefined equates")
	flag.StringVar(&output, "o", "a.vex", "output executable")
	flag.BoolVar(&listing, "l", false, "print the assembled listing")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: %v [options] input.vs", os.Args[0])
	}

	config := emulator.DefaultConfig()
	if len(machine) != 0 {
		var err error
		config, err = emulator.LoadConfig(machine)
		if err != nil {
			log.Fatalf("%v: %v", machine, err)
		}
	}

	// A machine is built only for its equates; nothing runs here.
	m, err := emulator.NewMachine(config, nil)
	if err != nil {
		log.Fatalf("%v: %v", machine, err)
	}

	input := flag.Arg(0)
	inf, err := os.Open(input)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}
	defer inf.Close()

	asm := &vasm.Assembler{Verbose: verbose}
	for key, value := range m.Defines() {
		asm.Predefine(key, value)
	}

	prog, err := asm.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	if listing {
		for ip, code := range prog.Codes() {
			log.Printf("%08x: %08x  %v\n", ip*4, uint32(code), code)
		}
	}

	err = vexfile.WriteFile(output, vexfile.New(prog.Data, prog.Instructions()))
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
