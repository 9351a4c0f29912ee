package cpu

// The CB-prefixed table is fully regular: bits 7-6 select the family,
// bits 5-3 select a bit index or sub-op, bits 2-0 select the operand
// register via the same B,C,D,E,H,L,(HL),A encoding reg8/setReg8 use.
// Building it with a loop rather than 256
// individual defineCB calls keeps the regularity visible in
// the code instead of burying it in repetition.
func init() {
	shiftOps := [8]struct {
		name string
		fn   func(*CPU, uint8) uint8
	}{
		{"RLC", (*CPU).rlc},
		{"RRC", (*CPU).rrc},
		{"RL", (*CPU).rl},
		{"RR", (*CPU).rr},
		{"SLA", (*CPU).sla},
		{"SRA", (*CPU).sra},
		{"SWAP", (*CPU).swap},
		{"SRL", (*CPU).srl},
	}

	for opcode := 0; opcode < 256; opcode++ {
		op := uint8(opcode)
		family := op >> 6   // bits 7-6
		sub := (op >> 3) & 7 // bits 5-3: bit-index, or sub-op for family 0
		reg := op & 7        // bits 2-0: operand register

		switch family {
		case 0:
			shift := shiftOps[sub]
			defineCB(op, shift.name+" "+regName(reg), func(c *CPU) {
				c.setReg8(reg, shift.fn(c, c.reg8(reg)))
			})
		case 1:
			bitN := sub
			defineCB(op, "BIT "+regName(reg), func(c *CPU) {
				c.bit(bitN, c.reg8(reg))
			})
		case 2:
			bitN := sub
			defineCB(op, "RES "+regName(reg), func(c *CPU) {
				c.setReg8(reg, c.res(bitN, c.reg8(reg)))
			})
		case 3:
			bitN := sub
			defineCB(op, "SET "+regName(reg), func(c *CPU) {
				c.setReg8(reg, c.set(bitN, c.reg8(reg)))
			})
		}
	}
}
