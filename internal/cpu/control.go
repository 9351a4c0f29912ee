package cpu

func init() {
	define(0x00, "NOP", func(c *CPU) {})

	define(0x10, "STOP", func(c *CPU) {
		c.readOperand() // STOP is a 2-byte instruction; the 2nd byte is discarded
		c.mode = modeStopped
	})

	define(0x76, "HALT", func(c *CPU) {
		c.mode = modeHalted
	})

	define(0xF3, "DI", func(c *CPU) { c.IME = false })
	define(0xFB, "EI", func(c *CPU) { c.IME = true })

	define(0x3F, "CCF", func(c *CPU) {
		c.setFlagIf(FlagCarry, !c.isFlagSet(FlagCarry))
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	})
	define(0x37, "SCF", func(c *CPU) {
		c.setFlag(FlagCarry)
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	})
	define(0x2F, "CPL", func(c *CPU) {
		c.A = ^c.A
		c.setFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
	})
	define(0x27, "DAA", func(c *CPU) { c.daa() })

	// The four non-CB accumulator rotate opcodes clear Z
	// unconditionally, unlike their CB-table counterparts which set
	// Z from the result.
	define(0x07, "RLCA", func(c *CPU) { c.A = c.rlc(c.A); c.clearFlag(FlagZero) })
	define(0x0F, "RRCA", func(c *CPU) { c.A = c.rrc(c.A); c.clearFlag(FlagZero) })
	define(0x17, "RLA", func(c *CPU) { c.A = c.rl(c.A); c.clearFlag(FlagZero) })
	define(0x1F, "RRA", func(c *CPU) { c.A = c.rr(c.A); c.clearFlag(FlagZero) })

	disallowed := []uint8{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD}
	for _, op := range disallowed {
		InstructionSet[op] = Instruction{} // nil fn -> fatal UnknownOpcode on dispatch
	}
}
