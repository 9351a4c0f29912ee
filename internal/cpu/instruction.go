package cpu

// Instruction is one entry of a dispatch table: a mnemonic for
// tracing and the function that performs the operand fetch,
// operation, flag update and PC/cycle advance, grounded on the
// teacher's internal/cpu/instruction.go.
type Instruction struct {
	name string
	fn   func(*CPU)
}

// InstructionSet is the 256-entry primary opcode dispatch table.
// Unmapped primary opcodes (0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC,
// 0xED, 0xF4, 0xFC, 0xFD) are left with a nil fn, which CPU.execute
// treats as a fatal UnknownOpcode.
var InstructionSet [256]Instruction

// InstructionSetCB is the 256-entry CB-prefixed dispatch table. Every
// slot is defined, built programmatically in cb.go since the CB
// encoding is fully regular.
var InstructionSetCB [256]Instruction

// define installs fn as the handler for opcode in the primary table.
func define(opcode uint8, name string, fn func(*CPU)) {
	InstructionSet[opcode] = Instruction{name: name, fn: fn}
}

// defineCB installs fn as the handler for opcode in the CB table.
func defineCB(opcode uint8, name string, fn func(*CPU)) {
	InstructionSetCB[opcode] = Instruction{name: name, fn: fn}
}
