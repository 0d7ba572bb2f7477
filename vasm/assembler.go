// Package vasm implements a single pass macro assembler for the vcpu
// instruction set.
//
// Source lines hold space separated words. Comments start with ';' and
// run to the end of the line. A 'label:' prefix names the current
// location. '.equ NAME VALUE' defines a constant, '.macro NAME ARG...'
// through '.endm' defines a macro, and '$( ... )' evaluates a Starlark
// expression at assembly time with all equates in scope. Labels starting
// with '@' inside a macro body are local to each expansion.
//
// '.text' and '.data' switch sections. The data section accepts '.word',
// '.half', '.byte', '.ascii', '.asciz', '.space' and '.align'.
package vasm

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/vcpu/cpu"
)

// Macro represents a macro definition in the assembly language.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":     "0",
	"WORD_BYTES": fmt.Sprintf("%#v", cpu.WORD_BYTES),
}

// Assembler is a single pass macro assembler for the vcpu system.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.
	Data    []byte   // Initial data section image.

	predefine map[string]string   // Predefines
	Label     map[string]int      // Map of text labels to instruction indexes.
	DataLabel map[string]int      // Map of data labels to byte offsets.
	Equate    map[string]string   // Map of equates.
	Macro     map[string](*Macro) // Map of macros.

	section   string
	expansion int
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// regMap maps register names to register ids.
var regMap = map[string]cpu.RegisterId{
	"zero": cpu.ZERO,
	"at":   cpu.AT,
	"v0":   cpu.V0,
	"v1":   cpu.V1,
	"a0":   cpu.A0,
	"a1":   cpu.A1,
	"a2":   cpu.A2,
	"a3":   cpu.A3,
	"t0":   cpu.T0,
	"t1":   cpu.T1,
	"t2":   cpu.T2,
	"t3":   cpu.T3,
	"t4":   cpu.T4,
	"t5":   cpu.T5,
	"t6":   cpu.T6,
	"t7":   cpu.T7,
	"s0":   cpu.S0,
	"s1":   cpu.S1,
	"s2":   cpu.S2,
	"s3":   cpu.S3,
	"s4":   cpu.S4,
	"s5":   cpu.S5,
	"s6":   cpu.S6,
	"s7":   cpu.S7,
	"t8":   cpu.T8,
	"t9":   cpu.T9,
	"k0":   cpu.K0,
	"k1":   cpu.K1,
	"gp":   cpu.GP,
	"sp":   cpu.SP,
	"fp":   cpu.FP,
	"ra":   cpu.RA,
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value uint32, err error) {
	invert := false
	if word[0] == '~' {
		invert = true
		word = word[1:]
	}
	if word[0] == '\'' {
		// Character quotes should have been expanded into
		// values in parseLine()
		err = ErrParseCharacter(word[1 : len(word)-1])
		return
	}
	v64, err := strconv.ParseInt(word, 0, 33)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if v64 > 0xffffffff || v64 < -int64(0x80000000) {
		err = ErrParseNumber(word)
		return
	}
	if v64 < 0 {
		value = uint32(0xffffffff + (v64 + 1))
	} else {
		value = uint32(v64)
	}

	if invert {
		value = ^value
	}

	return
}

// labelPattern accepts the words that may stand for an unresolved label.
var labelPattern = regexp.MustCompile(`^[A-Za-z_.@][A-Za-z0-9_.@]*$`)

// registerOf returns the register named by a word.
func (asm *Assembler) registerOf(word string) (reg cpu.RegisterId, err error) {
	reg, ok := regMap[word]
	if !ok {
		err = ErrRegisterInvalid
	}
	return
}

// immediateOf resolves a word into a 16 bit immediate, or into a label
// reference to be patched at link time.
func (asm *Assembler) immediateOf(word string) (imm int16, label string, err error) {
	if labelPattern.MatchString(word) {
		label = word
		return
	}

	value, err := asm.valueOf(word)
	if err != nil {
		return
	}

	// Accept any value whose bit pattern fits in 16 bits,
	// signed or unsigned.
	if value > 0xffff && value < 0xffff8000 {
		err = ErrImmediateRange
		return
	}
	imm = int16(value)

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value32 uint32
		value32, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt(int(value32))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = uint32(st_int64)
	return
}

var charPattern = regexp.MustCompile(`'\\?[^']'`)
var exprPattern = regexp.MustCompile(`\$\([^\$]*\)`)

// parseLine expands a single line into its words, handling equates,
// labels, and macro invocations.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	line = charPattern.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "0":
				str = "\000"
			case "t":
				str = "\t"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "e":
				str = "\033"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	line = exprPattern.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#v", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		err = asm.defineLabel(label)
		if err != nil {
			return
		}
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	// macro invocation
	macro, ok := asm.Macro[words[0]]
	if ok {
		name := words[0]

		args := words[1:]
		if len(args) != len(macro.Args) {
			err = ErrMacroSyntax
			return
		}
		// Turn args into equs
		old_equate := maps.Clone(asm.Equate)
		for n, arg := range macro.Args {
			asm.Equate[arg] = args[n]
		}
		defer func() { asm.Equate = old_equate }()

		// Rename '@' locals uniquely per expansion, not per line,
		// so a local defined on one body line links from another.
		asm.expansion++
		local := fmt.Sprintf("%v_%v_", name, asm.expansion)

		for n, line := range macro.Lines {
			lineno := macro.LineNo + n

			line = strings.ReplaceAll(line, "@", local)
			words, err = asm.parseLine(line, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				return
			}

			err = asm.parseWords(words, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				return
			}
		}

		words = nil
		return
	}

	return
}

// defineLabel records a label at the current location of the active
// section.
func (asm *Assembler) defineLabel(label string) (err error) {
	_, ok := asm.Label[label]
	if !ok {
		_, ok = asm.DataLabel[label]
	}
	if ok {
		err = ErrLabelDuplicate
		return
	}

	switch asm.section {
	case ".data":
		asm.DataLabel[label] = len(asm.Data)
	default:
		asm.Label[label] = asm.currentIp()
	}

	return
}

// currentIp gets the current instruction index.
func (asm *Assembler) currentIp() int {
	if len(asm.Opcode) == 0 {
		return 0
	}

	last := asm.Opcode[len(asm.Opcode)-1]

	return last.Ip + len(last.Codes)
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	if asm.Label == nil {
		asm.Label = make(map[string]int, 16)
	}
	clear(asm.Label)
	if asm.DataLabel == nil {
		asm.DataLabel = make(map[string]int, 16)
	}
	clear(asm.DataLabel)
	asm.Opcode = asm.Opcode[:0]
	asm.Data = asm.Data[:0]
	if asm.Macro == nil {
		asm.Macro = make(map[string](*Macro))
	}
	clear(asm.Macro)
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}
	asm.section = ".text"
	asm.expansion = 0

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])
		words := strings.Fields(line)

		// .macro NAME arg...
		if len(words) > 0 && words[0] == ".macro" {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 {
				err = ErrMacroSyntax
				return
			}
			_, ok := asm.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
			}
			if len(words) > 2 {
				macro.Args = words[2:]
			}
			asm.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && words[0] == ".endm" {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}
	if err = scanner.Err(); err != nil {
		return
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	err = asm.link()
	if err != nil {
		return
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
		Data:    slices.Clone(asm.Data),
	}

	return
}

// link resolves label references left in the opcode list.
func (asm *Assembler) link() (err error) {
	for n := range asm.Opcode {
		op := &asm.Opcode[n]

		if len(op.LinkLabel) == 0 {
			continue
		}
		label := op.LinkLabel

		if len(op.Codes) < 1 {
			log.Fatalf("Unable to link label '%s' to line %d: %v", label, op.LineNo, op.Words)
		}
		in := op.Codes[len(op.Codes)-1]

		switch op.LinkKind {
		case linkBranch:
			ip, ok := asm.Label[label]
			if !ok {
				return ErrLabelMissing(label)
			}
			offset := (ip - op.Ip) * cpu.WORD_BYTES
			if offset < math.MinInt16 || offset > math.MaxInt16 {
				return ErrBranchRange
			}
			op.Codes[len(op.Codes)-1] = cpu.MakeInstructionI(in.Opcode(), in.Rd(), in.Rs1(), int16(offset))
		case linkJump:
			ip, ok := asm.Label[label]
			if !ok {
				return ErrLabelMissing(label)
			}
			offset := (ip - op.Ip) * cpu.WORD_BYTES
			if offset < -(1<<25) || offset >= (1<<25) {
				return ErrJumpRange
			}
			op.Codes[len(op.Codes)-1] = cpu.MakeInstructionJ(in.Opcode(), int32(offset))
		case linkImmediate:
			var value int
			if off, ok := asm.DataLabel[label]; ok {
				value = off
			} else if ip, ok := asm.Label[label]; ok {
				value = ip * cpu.WORD_BYTES
			} else {
				return ErrLabelMissing(label)
			}
			// The immediate sign-extends, so only the positive
			// half addresses labels directly.
			if value > math.MaxInt16 {
				return ErrImmediateRange
			}
			op.Codes[len(op.Codes)-1] = cpu.MakeInstructionI(in.Opcode(), in.Rd(), in.Rs1(), int16(value))
		}
	}

	return
}

// aluMap maps R-form mnemonics to ALU functions.
var aluMap = map[string]cpu.AluFunct{
	"add":  cpu.FN_ADD,
	"sub":  cpu.FN_SUB,
	"mul":  cpu.FN_MUL,
	"div":  cpu.FN_DIV,
	"divu": cpu.FN_DIVU,
	"mod":  cpu.FN_MOD,
	"modu": cpu.FN_MODU,
	"and":  cpu.FN_AND,
	"or":   cpu.FN_OR,
	"xor":  cpu.FN_XOR,
	"sll":  cpu.FN_SLL,
	"srl":  cpu.FN_SRL,
	"sra":  cpu.FN_SRA,
	"slt":  cpu.FN_SLT,
	"sltu": cpu.FN_SLTU,
}

// aluImmMap maps I-form arithmetic mnemonics.
var aluImmMap = map[string]cpu.OpCode{
	"addi":  cpu.OP_ADDI,
	"slti":  cpu.OP_SLTI,
	"sltiu": cpu.OP_SLTIU,
	"andi":  cpu.OP_ANDI,
	"ori":   cpu.OP_ORI,
	"xori":  cpu.OP_XORI,
	"slli":  cpu.OP_SLLI,
	"srli":  cpu.OP_SRLI,
	"srai":  cpu.OP_SRAI,
}

// loadMap maps load mnemonics.
var loadMap = map[string]cpu.OpCode{
	"lb":  cpu.OP_LB,
	"lbu": cpu.OP_LBU,
	"lh":  cpu.OP_LH,
	"lhu": cpu.OP_LHU,
	"lw":  cpu.OP_LW,
}

// storeMap maps store mnemonics.
var storeMap = map[string]cpu.OpCode{
	"sb": cpu.OP_SB,
	"sh": cpu.OP_SH,
	"sw": cpu.OP_SW,
}

// branchMap maps branch mnemonics.
var branchMap = map[string]cpu.OpCode{
	"bez": cpu.OP_BEZ,
	"bnz": cpu.OP_BNZ,
}

// jumpMap maps jump mnemonics.
var jumpMap = map[string]cpu.OpCode{
	"jmp": cpu.OP_JMP,
	"jal": cpu.OP_JAL,
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	var codes []cpu.Instruction
	var label string
	kind := linkNone

	// no-op
	if len(words) == 0 {
		return
	}

	initial_words := words

	defer func() {
		if len(codes) == 0 {
			return
		}
		opcode := Opcode{LineNo: lineno, Ip: asm.currentIp(), Words: initial_words, Codes: codes, LinkLabel: label, LinkKind: kind}
		asm.Opcode = append(asm.Opcode, opcode)
	}()

	if strings.HasPrefix(words[0], ".") {
		return asm.parseDirective(words)
	}

	if asm.section != ".text" {
		err = ErrSectionText
		return
	}

	name := words[0]
	args := words[1:]

	switch {
	case name == "nop":
		if len(args) > 0 {
			err = ErrOpcodeExtraArgs
			return
		}
		codes = append(codes, cpu.MakeInstructionJ(cpu.OP_NOP, 0))
	case name == "halt":
		if len(args) > 0 {
			err = ErrOpcodeExtraArgs
			return
		}
		codes = append(codes, cpu.MakeInstructionJ(cpu.OP_HALT, 0))
	case name == "flip":
		var rd, rs1 cpu.RegisterId
		rd, rs1, err = asm.twoRegisters(args)
		if err != nil {
			return
		}
		codes = append(codes, cpu.MakeInstructionI(cpu.OP_FLIP, rd, rs1, 0))
	case name == "li" || name == "lhi":
		op := cpu.OP_LI
		if name == "lhi" {
			op = cpu.OP_LHI
		}
		if len(args) < 2 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(args) > 2 {
			err = ErrOpcodeExtraArgs
			return
		}
		var rd cpu.RegisterId
		rd, err = asm.registerOf(args[0])
		if err != nil {
			return
		}
		var imm int16
		imm, label, err = asm.immediateOf(args[1])
		if err != nil {
			return
		}
		if len(label) > 0 {
			kind = linkImmediate
		}
		codes = append(codes, cpu.MakeInstructionI(op, rd, cpu.ZERO, imm))
	default:
		codes, label, kind, err = asm.parseInstruction(name, args)
	}

	return
}

// parseInstruction encodes one table-driven instruction.
func (asm *Assembler) parseInstruction(name string, args []string) (codes []cpu.Instruction, label string, kind linkKind, err error) {
	if funct, ok := aluMap[name]; ok {
		if len(args) < 3 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(args) > 3 {
			err = ErrOpcodeExtraArgs
			return
		}
		var rd, rs1, rs2 cpu.RegisterId
		if rd, err = asm.registerOf(args[0]); err != nil {
			return
		}
		if rs1, err = asm.registerOf(args[1]); err != nil {
			return
		}
		if rs2, err = asm.registerOf(args[2]); err != nil {
			return
		}
		codes = append(codes, cpu.MakeInstructionR(funct, rd, rs1, rs2))
		return
	}

	if op, ok := aluImmMap[name]; ok {
		if len(args) < 3 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(args) > 3 {
			err = ErrOpcodeExtraArgs
			return
		}
		var rd, rs1 cpu.RegisterId
		if rd, err = asm.registerOf(args[0]); err != nil {
			return
		}
		if rs1, err = asm.registerOf(args[1]); err != nil {
			return
		}
		var imm int16
		imm, label, err = asm.immediateOf(args[2])
		if err != nil {
			return
		}
		if len(label) > 0 {
			kind = linkImmediate
		}
		codes = append(codes, cpu.MakeInstructionI(op, rd, rs1, imm))
		return
	}

	if op, ok := loadMap[name]; ok {
		var rd, rs1 cpu.RegisterId
		var imm int16
		rd, rs1, imm, label, err = asm.memoryOperands(args)
		if err != nil {
			return
		}
		if len(label) > 0 {
			kind = linkImmediate
		}
		codes = append(codes, cpu.MakeInstructionI(op, rd, rs1, imm))
		return
	}

	if op, ok := storeMap[name]; ok {
		var rd, rs1 cpu.RegisterId
		var imm int16
		rd, rs1, imm, label, err = asm.memoryOperands(args)
		if err != nil {
			return
		}
		if len(label) > 0 {
			kind = linkImmediate
		}
		codes = append(codes, cpu.MakeInstructionI(op, rd, rs1, imm))
		return
	}

	if op, ok := branchMap[name]; ok {
		if len(args) < 2 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(args) > 2 {
			err = ErrOpcodeExtraArgs
			return
		}
		var rs1 cpu.RegisterId
		if rs1, err = asm.registerOf(args[0]); err != nil {
			return
		}
		var imm int16
		imm, label, err = asm.immediateOf(args[1])
		if err != nil {
			return
		}
		if len(label) > 0 {
			kind = linkBranch
		}
		codes = append(codes, cpu.MakeInstructionI(op, cpu.ZERO, rs1, imm))
		return
	}

	if op, ok := jumpMap[name]; ok {
		if len(args) < 1 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(args) > 1 {
			err = ErrOpcodeExtraArgs
			return
		}
		if labelPattern.MatchString(args[0]) {
			label = args[0]
			kind = linkJump
			codes = append(codes, cpu.MakeInstructionJ(op, 0))
			return
		}
		var value uint32
		value, err = asm.valueOf(args[0])
		if err != nil {
			return
		}
		offset := int32(value)
		if offset < -(1<<25) || offset >= (1<<25) {
			err = ErrJumpRange
			return
		}
		codes = append(codes, cpu.MakeInstructionJ(op, offset))
		return
	}

	err = ErrInstructionInvalid
	return
}

// twoRegisters parses a 'OP rd rs1' operand list.
func (asm *Assembler) twoRegisters(args []string) (rd, rs1 cpu.RegisterId, err error) {
	if len(args) < 2 {
		err = ErrOpcodeValueMissing
		return
	}
	if len(args) > 2 {
		err = ErrOpcodeExtraArgs
		return
	}
	if rd, err = asm.registerOf(args[0]); err != nil {
		return
	}
	rs1, err = asm.registerOf(args[1])
	return
}

// memoryOperands parses 'OP reg base [offset]' for loads and stores. A
// missing offset is zero.
func (asm *Assembler) memoryOperands(args []string) (rd, rs1 cpu.RegisterId, imm int16, label string, err error) {
	if len(args) < 2 {
		err = ErrOpcodeValueMissing
		return
	}
	if len(args) > 3 {
		err = ErrOpcodeExtraArgs
		return
	}
	if rd, err = asm.registerOf(args[0]); err != nil {
		return
	}
	if rs1, err = asm.registerOf(args[1]); err != nil {
		return
	}
	if len(args) == 3 {
		imm, label, err = asm.immediateOf(args[2])
	}
	return
}

// parseDirective evaluates a '.'-prefixed directive line.
func (asm *Assembler) parseDirective(words []string) (err error) {
	name := words[0]
	args := words[1:]

	switch name {
	case ".text", ".data":
		if len(args) > 0 {
			err = ErrOpcodeExtraArgs
			return
		}
		asm.section = name
		return
	}

	if asm.section != ".data" {
		return ErrSectionData
	}

	switch name {
	case ".word", ".half", ".byte":
		if len(args) == 0 {
			err = ErrOpcodeValueMissing
			return
		}
		for _, arg := range args {
			var value uint32
			value, err = asm.valueOf(arg)
			if err != nil {
				return
			}
			switch name {
			case ".word":
				asm.Data = append(asm.Data,
					byte(value), byte(value>>8), byte(value>>16), byte(value>>24))
			case ".half":
				if value > 0xffff && value < 0xffff8000 {
					return ErrImmediateRange
				}
				asm.Data = append(asm.Data, byte(value), byte(value>>8))
			case ".byte":
				if value > 0xff && value < 0xffffff80 {
					return ErrImmediateRange
				}
				asm.Data = append(asm.Data, byte(value))
			}
		}
	case ".ascii", ".asciz":
		str, _err := strconv.Unquote(strings.Join(args, " "))
		if _err != nil {
			err = ErrEquateSyntax
			return
		}
		asm.Data = append(asm.Data, str...)
		if name == ".asciz" {
			asm.Data = append(asm.Data, 0)
		}
	case ".space":
		if len(args) != 1 {
			err = ErrOpcodeValueMissing
			return
		}
		var value uint32
		value, err = asm.valueOf(args[0])
		if err != nil {
			return
		}
		asm.Data = append(asm.Data, make([]byte, value)...)
	case ".align":
		if len(args) != 1 {
			err = ErrOpcodeValueMissing
			return
		}
		var value uint32
		value, err = asm.valueOf(args[0])
		if err != nil {
			return
		}
		if value == 0 {
			err = ErrImmediateRange
			return
		}
		for len(asm.Data)%int(value) != 0 {
			asm.Data = append(asm.Data, 0)
		}
	default:
		err = ErrDirectiveInvalid
	}

	return
}
