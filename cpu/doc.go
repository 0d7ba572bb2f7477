// Package cpu implements the vcpu execution engine: a 32-register,
// 32-bit word machine driven one fetch-decode-execute tick at a time
// against a host-supplied instruction stream and storage object.
//
// The processor owns the register file and the program counter. Each
// Tick fetches one little-endian instruction word, executes it through
// the logic unit, and either advances, jumps, or stops with a sticky
// exit code. Faults never panic; they surface as exit codes.
package cpu
