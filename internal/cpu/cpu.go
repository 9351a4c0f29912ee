// Package cpu implements the Sharp LR35902 instruction interpreter:
// register file, flag generation, the primary and CB-prefixed
// dispatch tables, and interrupt dispatch, grounded on the teacher's
// internal/cpu package.
package cpu

import (
	"fmt"

	"github.com/hextide/gbcore/internal/interrupts"
	"github.com/hextide/gbcore/pkg/log"
)

// Bus is the memory interface the CPU fetches instructions and
// operands through. Implemented by internal/bus.Bus.
type Bus interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, v uint8)
}

// mode names the CPU's run state.
type runMode uint8

const (
	modeRunning runMode = iota
	modeHalted
	modeStopped
)

// ErrorKind identifies a fatal core error.
type ErrorKind int

const (
	// ErrUnknownOpcode is raised when a primary opcode has no
	// defined handler.
	ErrUnknownOpcode ErrorKind = iota
	// ErrStopped is raised when STOP is executed.
	ErrStopped
)

// FatalFunc is the host callback invoked when the core encounters a
// fatal error; the driver stops advancing after this fires.
type FatalFunc func(kind ErrorKind, message string)

// CPU is the Sharp LR35902 register file and dispatch engine.
type CPU struct {
	Registers

	PC uint16
	SP uint16

	IME bool

	mode runMode

	bus Bus
	irq *interrupts.Service
	log log.Logger

	// DebugTrace, when set, makes ExecuteOne log a per-instruction trace
	// line.
	DebugTrace bool

	OnFatal FatalFunc

	cycles uint64 // running machine-cycle counter
}

// New creates a CPU wired to the given bus and interrupt service, at
// PC=0 (boot ROM entry point). The PPU and timer are stepped by the
// driver directly, using the cycle delta each ExecuteOne call
// consumes - the CPU holds no reference to either.
func New(bus Bus, irq *interrupts.Service, logger log.Logger) *CPU {
	c := &CPU{
		bus: bus,
		irq: irq,
		log: logger,
	}
	c.Registers.init()
	return c
}

// Cycles returns the running machine-cycle counter.
func (c *CPU) Cycles() uint64 { return c.cycles }

// SetLogger replaces the logger used for debug tracing.
func (c *CPU) SetLogger(logger log.Logger) { c.log = logger }

// Stopped reports whether STOP has put the core into its terminal
// stopped state.
func (c *CPU) Stopped() bool { return c.mode == modeStopped }

// ExecuteOne runs exactly one instruction's worth of CPU activity:
// fetch+decode+execute when running, or a single tick while halted or
// stopped. It does not step the PPU/timer or service interrupts - the
// driver does that with the cycle delta this call consumed, keeping
// the ordering explicit: instruction, then PPU/timer step, then
// interrupt service.
func (c *CPU) ExecuteOne() {
	switch c.mode {
	case modeStopped:
		if c.OnFatal != nil {
			c.OnFatal(ErrStopped, "STOP executed")
		}
		c.tick()
	case modeHalted:
		c.tick()
	default:
		opcode := c.fetch()
		c.execute(opcode)
	}
}

// ServiceInterrupt services at most one pending interrupt, if IME is
// set (HALT is released on a pending interrupt unconditionally).
// Called by the driver once per instruction, after PPU/timer have
// been stepped for that instruction's cycle cost.
func (c *CPU) ServiceInterrupt() {
	if c.mode == modeHalted && c.irq.Pending() {
		// HALT is released on any pending interrupt regardless of
		// IME; if IME is clear, execution merely resumes without
		// vectoring to the handler.
		c.mode = modeRunning
	}
	if c.IME && c.irq.Pending() {
		c.dispatchInterrupt()
	}
}

// fetch reads the opcode at PC, consuming one memory cycle, and
// advances PC.
func (c *CPU) fetch() uint8 {
	v := c.readByte(c.PC)
	c.PC++
	return v
}

// readOperand reads an immediate byte at PC, consuming one memory
// cycle, and advances PC.
func (c *CPU) readOperand() uint8 {
	v := c.readByte(c.PC)
	c.PC++
	return v
}

// readOperand16 reads an immediate word (PC, PC+1 little-endian),
// consuming two memory cycles, and advances PC by 2.
func (c *CPU) readOperand16() uint16 {
	lo := c.readOperand()
	hi := c.readOperand()
	return uint16(hi)<<8 | uint16(lo)
}

// readByte reads one byte from the bus, consuming one machine cycle.
func (c *CPU) readByte(addr uint16) uint8 {
	c.tick()
	return c.bus.Read8(addr)
}

// writeByte writes one byte to the bus, consuming one machine cycle.
func (c *CPU) writeByte(addr uint16, v uint8) {
	c.tick()
	c.bus.Write8(addr, v)
}

// tick advances the running cycle counter by one machine cycle.
func (c *CPU) tick() {
	c.cycles++
}

// execute dispatches opcode through the primary table, or through the
// CB table if opcode is the 0xCB prefix.
func (c *CPU) execute(opcode uint8) {
	var instr Instruction
	if opcode == 0xCB {
		sub := c.readOperand()
		instr = InstructionSetCB[sub]
	} else {
		instr = InstructionSet[opcode]
	}

	if instr.fn == nil {
		if c.OnFatal != nil {
			c.OnFatal(ErrUnknownOpcode, fmt.Sprintf("unknown opcode 0x%02X", opcode))
		}
		return
	}

	if c.DebugTrace && c.log != nil {
		c.log.Debugf("%-12s A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X PC:%04X",
			instr.name, c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L, c.SP, c.PC-1)
	}

	instr.fn(c)
}

// dispatchInterrupt pushes PC, jumps to the vector of the
// highest-priority (lowest-numbered) pending interrupt, and clears IME. Dispatch always happens between
// instructions, never mid-instruction.
func (c *CPU) dispatchInterrupt() {
	bit, vector, ok := c.irq.Lowest()
	if !ok {
		return
	}
	c.irq.Clear(bit)

	c.SP--
	c.writeByte(c.SP, uint8(c.PC>>8))
	c.SP--
	c.writeByte(c.SP, uint8(c.PC))

	c.PC = vector
	c.IME = false

	// two internal cycles, matching the fixed interrupt-dispatch
	// cost beyond the two memory writes already ticked above.
	c.tick()
	c.tick()
}
