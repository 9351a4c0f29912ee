package cpu

func init() {
	// 8-bit register-to-register loads, opcodes 0x40-0x7F, indexed by
	// destination (bits 5-3) and source (bits 2-0) using the same
	// B,C,D,E,H,L,(HL),A encoding as reg8/setReg8. 0x76 is reserved
	// for HALT instead of LD (HL),(HL).
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			opcode := 0x40 + dst*8 + src
			if opcode == 0x76 {
				continue
			}
			d, s := dst, src
			define(opcode, "LD "+regName(d)+","+regName(s), func(c *CPU) {
				c.setReg8(d, c.reg8(s))
			})
		}
	}

	// 8-bit immediate loads.
	define(0x06, "LD B,n", func(c *CPU) { c.B = c.readOperand() })
	define(0x0E, "LD C,n", func(c *CPU) { c.C = c.readOperand() })
	define(0x16, "LD D,n", func(c *CPU) { c.D = c.readOperand() })
	define(0x1E, "LD E,n", func(c *CPU) { c.E = c.readOperand() })
	define(0x26, "LD H,n", func(c *CPU) { c.H = c.readOperand() })
	define(0x2E, "LD L,n", func(c *CPU) { c.L = c.readOperand() })
	define(0x36, "LD (HL),n", func(c *CPU) { v := c.readOperand(); c.writeByte(c.HL.Get(), v) })
	define(0x3E, "LD A,n", func(c *CPU) { c.A = c.readOperand() })

	// 16-bit immediate loads.
	define(0x01, "LD BC,nn", func(c *CPU) { c.BC.Set(c.readOperand16()) })
	define(0x11, "LD DE,nn", func(c *CPU) { c.DE.Set(c.readOperand16()) })
	define(0x21, "LD HL,nn", func(c *CPU) { c.HL.Set(c.readOperand16()) })
	define(0x31, "LD SP,nn", func(c *CPU) { c.SP = c.readOperand16() })

	// Load/store A through (BC)/(DE)/(HL+)/(HL-). The post
	// increment/decrement of HL happens exactly once, after the memory
	// access.
	define(0x02, "LD (BC),A", func(c *CPU) { c.writeByte(c.BC.Get(), c.A) })
	define(0x12, "LD (DE),A", func(c *CPU) { c.writeByte(c.DE.Get(), c.A) })
	define(0x22, "LD (HL+),A", func(c *CPU) {
		addr := c.HL.Get()
		c.writeByte(addr, c.A)
		c.HL.Set(addr + 1)
	})
	define(0x32, "LD (HL-),A", func(c *CPU) {
		addr := c.HL.Get()
		c.writeByte(addr, c.A)
		c.HL.Set(addr - 1)
	})
	define(0x0A, "LD A,(BC)", func(c *CPU) { c.A = c.readByte(c.BC.Get()) })
	define(0x1A, "LD A,(DE)", func(c *CPU) { c.A = c.readByte(c.DE.Get()) })
	define(0x2A, "LD A,(HL+)", func(c *CPU) {
		addr := c.HL.Get()
		c.A = c.readByte(addr)
		c.HL.Set(addr + 1)
	})
	define(0x3A, "LD A,(HL-)", func(c *CPU) {
		addr := c.HL.Get()
		c.A = c.readByte(addr)
		c.HL.Set(addr - 1)
	})

	// High-memory accesses: the 0xFF00-relative page holding the I/O
	// registers and high RAM.
	define(0xE0, "LDH (n),A", func(c *CPU) {
		n := c.readOperand()
		c.writeByte(0xFF00+uint16(n), c.A)
	})
	define(0xF0, "LDH A,(n)", func(c *CPU) {
		n := c.readOperand()
		c.A = c.readByte(0xFF00 + uint16(n))
	})
	define(0xE2, "LD (C),A", func(c *CPU) { c.writeByte(0xFF00+uint16(c.C), c.A) })
	define(0xF2, "LD A,(C)", func(c *CPU) { c.A = c.readByte(0xFF00 + uint16(c.C)) })
	define(0xEA, "LD (nn),A", func(c *CPU) { c.writeByte(c.readOperand16(), c.A) })
	define(0xFA, "LD A,(nn)", func(c *CPU) { c.A = c.readByte(c.readOperand16()) })

	// LD (nn),SP
	define(0x08, "LD (nn),SP", func(c *CPU) {
		addr := c.readOperand16()
		c.writeByte(addr, uint8(c.SP))
		c.writeByte(addr+1, uint8(c.SP>>8))
	})

	// LD HL,SP+d8
	define(0xF8, "LD HL,SP+d8", func(c *CPU) {
		operand := c.readOperand()
		c.HL.Set(c.addSP(c.SP, operand))
		c.tick() // internal delay for the 16-bit add
	})

	// LD SP,HL
	define(0xF9, "LD SP,HL", func(c *CPU) {
		c.SP = c.HL.Get()
		c.tick()
	})
}
