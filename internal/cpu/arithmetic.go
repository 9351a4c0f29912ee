package cpu

func init() {
	carryBit := func(c *CPU) uint8 {
		if c.isFlagSet(FlagCarry) {
			return 1
		}
		return 0
	}

	// 8-bit ALU family across registers/(HL), opcodes 0x80-0xBF,
	// indexed by operand register (bits 2-0).
	for r := uint8(0); r < 8; r++ {
		reg := r
		define(0x80+reg, "ADD A,"+regName(reg), func(c *CPU) { c.A = c.add8(c.A, c.reg8(reg), 0) })
		define(0x88+reg, "ADC A,"+regName(reg), func(c *CPU) { c.A = c.add8(c.A, c.reg8(reg), carryBit(c)) })
		define(0x90+reg, "SUB "+regName(reg), func(c *CPU) { c.A = c.sub8(c.A, c.reg8(reg), 0) })
		define(0x98+reg, "SBC A,"+regName(reg), func(c *CPU) { c.A = c.sub8(c.A, c.reg8(reg), carryBit(c)) })
		define(0xA0+reg, "AND "+regName(reg), func(c *CPU) { c.A = c.and8(c.A, c.reg8(reg)) })
		define(0xA8+reg, "XOR "+regName(reg), func(c *CPU) { c.A = c.xor8(c.A, c.reg8(reg)) })
		define(0xB0+reg, "OR "+regName(reg), func(c *CPU) { c.A = c.or8(c.A, c.reg8(reg)) })
		define(0xB8+reg, "CP "+regName(reg), func(c *CPU) { c.cp8(c.A, c.reg8(reg)) })
	}

	// 8-bit ALU family, immediate operand.
	define(0xC6, "ADD A,n", func(c *CPU) { c.A = c.add8(c.A, c.readOperand(), 0) })
	define(0xCE, "ADC A,n", func(c *CPU) { c.A = c.add8(c.A, c.readOperand(), carryBit(c)) })
	define(0xD6, "SUB n", func(c *CPU) { c.A = c.sub8(c.A, c.readOperand(), 0) })
	define(0xDE, "SBC A,n", func(c *CPU) { c.A = c.sub8(c.A, c.readOperand(), carryBit(c)) })
	define(0xE6, "AND n", func(c *CPU) { c.A = c.and8(c.A, c.readOperand()) })
	define(0xEE, "XOR n", func(c *CPU) { c.A = c.xor8(c.A, c.readOperand()) })
	define(0xF6, "OR n", func(c *CPU) { c.A = c.or8(c.A, c.readOperand()) })
	define(0xFE, "CP n", func(c *CPU) { c.cp8(c.A, c.readOperand()) })

	// 8-bit INC/DEC across registers/(HL).
	for r := uint8(0); r < 8; r++ {
		reg := r
		define(0x04+reg*8, "INC "+regName(reg), func(c *CPU) { c.setReg8(reg, c.inc8(c.reg8(reg))) })
		define(0x05+reg*8, "DEC "+regName(reg), func(c *CPU) { c.setReg8(reg, c.dec8(c.reg8(reg))) })
	}

	// 16-bit INC/DEC rr.
	for p := uint8(0); p < 4; p++ {
		pair := p
		define(0x03+pair*0x10, "INC rr", func(c *CPU) {
			c.setRR16(pair, c.rr16(pair)+1)
			c.tick()
		})
		define(0x0B+pair*0x10, "DEC rr", func(c *CPU) {
			c.setRR16(pair, c.rr16(pair)-1)
			c.tick()
		})
		define(0x09+pair*0x10, "ADD HL,rr", func(c *CPU) {
			c.HL.Set(c.add16(c.HL.Get(), c.rr16(pair)))
			c.tick()
		})
	}

	define(0xE8, "ADD SP,d8", func(c *CPU) {
		operand := c.readOperand()
		c.SP = c.addSP(c.SP, operand)
		c.tick()
		c.tick()
	})
}
