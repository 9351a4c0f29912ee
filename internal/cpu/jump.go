package cpu

// condition evaluates one of the four branch conditions encoded in
// bits 4-3 of conditional jump/call/ret opcodes: NZ,Z,NC,C.
func (c *CPU) condition(index uint8) bool {
	switch index {
	case 0:
		return !c.isFlagSet(FlagZero)
	case 1:
		return c.isFlagSet(FlagZero)
	case 2:
		return !c.isFlagSet(FlagCarry)
	case 3:
		return c.isFlagSet(FlagCarry)
	}
	panic("cpu: invalid condition index")
}

var conditionNames = [4]string{"NZ", "Z", "NC", "C"}

func init() {
	define(0xC3, "JP nn", func(c *CPU) {
		target := c.readOperand16()
		c.PC = target
		c.tick()
	})
	define(0xE9, "JP (HL)", func(c *CPU) {
		c.PC = c.HL.Get()
	})

	jpCC := [4]uint8{0xC2, 0xCA, 0xD2, 0xDA}
	for i, opcode := range jpCC {
		cond := uint8(i)
		define(opcode, "JP "+conditionNames[cond]+",nn", func(c *CPU) {
			target := c.readOperand16()
			if c.condition(cond) {
				c.PC = target
				c.tick()
			}
		})
	}

	// JR d8: the displacement is signed and measured from the address
	// of the instruction after the JR, which PC already is by the
	// time the operand has been read.
	define(0x18, "JR d8", func(c *CPU) {
		offset := int8(c.readOperand())
		c.PC = uint16(int32(c.PC) + int32(offset))
		c.tick()
	})

	jrCC := [4]uint8{0x20, 0x28, 0x30, 0x38}
	for i, opcode := range jrCC {
		cond := uint8(i)
		define(opcode, "JR "+conditionNames[cond]+",d8", func(c *CPU) {
			offset := int8(c.readOperand())
			if c.condition(cond) {
				c.PC = uint16(int32(c.PC) + int32(offset))
				c.tick()
			}
		})
	}

	define(0xCD, "CALL nn", func(c *CPU) {
		target := c.readOperand16()
		c.push(c.PC)
		c.PC = target
	})

	callCC := [4]uint8{0xC4, 0xCC, 0xD4, 0xDC}
	for i, opcode := range callCC {
		cond := uint8(i)
		define(opcode, "CALL "+conditionNames[cond]+",nn", func(c *CPU) {
			target := c.readOperand16()
			if c.condition(cond) {
				c.push(c.PC)
				c.PC = target
			}
		})
	}

	define(0xC9, "RET", func(c *CPU) {
		c.PC = c.pop()
		c.tick()
	})
	define(0xD9, "RETI", func(c *CPU) {
		c.PC = c.pop()
		c.IME = true
		c.tick()
	})

	retCC := [4]uint8{0xC0, 0xC8, 0xD0, 0xD8}
	for i, opcode := range retCC {
		cond := uint8(i)
		define(opcode, "RET "+conditionNames[cond], func(c *CPU) {
			c.tick() // internal condition check
			if c.condition(cond) {
				c.PC = c.pop()
				c.tick()
			}
		})
	}

	rst := [8]uint8{0xC7, 0xCF, 0xD7, 0xDF, 0xE7, 0xEF, 0xF7, 0xFF}
	for i, opcode := range rst {
		vector := uint16(i) * 8
		define(opcode, "RST", func(c *CPU) {
			c.push(c.PC)
			c.PC = vector
		})
	}
}
