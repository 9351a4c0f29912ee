package cpu

// The arithmetic-logic primitives shared by most opcodes. Each updates
// flags on the CPU and returns the result; callers are responsible for
// storing the result and advancing PC/cycles.

// add8 computes a+b+carryIn mod 256 and sets Z, N=0, H, C.
func (c *CPU) add8(a, b uint8, carryIn uint8) uint8 {
	result16 := uint16(a) + uint16(b) + uint16(carryIn)
	result := uint8(result16)

	c.shouldZeroFlag(result)
	c.clearFlag(FlagSubtract)
	c.setFlagIf(FlagHalfCarry, (a&0xF)+(b&0xF)+carryIn > 0xF)
	c.setFlagIf(FlagCarry, result16 > 0xFF)

	return result
}

// sub8 computes a-b-carryIn mod 256 and sets Z, N=1, H, C.
func (c *CPU) sub8(a, b uint8, carryIn uint8) uint8 {
	result16 := int16(a) - int16(b) - int16(carryIn)
	result := uint8(result16)

	c.shouldZeroFlag(result)
	c.setFlag(FlagSubtract)
	c.setFlagIf(FlagHalfCarry, int16(a&0xF)-int16(b&0xF)-int16(carryIn) < 0)
	c.setFlagIf(FlagCarry, result16 < 0)

	return result
}

// add16 computes HL-style rr+rr: wraps at 16 bits, leaves Z untouched,
// sets N=0, H, C from bit 11/15 carries.
func (c *CPU) add16(a, b uint16) uint16 {
	result32 := uint32(a) + uint32(b)
	result := uint16(result32)

	c.clearFlag(FlagSubtract)
	c.setFlagIf(FlagHalfCarry, (a&0x0FFF)+(b&0x0FFF) > 0x0FFF)
	c.setFlagIf(FlagCarry, result32 > 0xFFFF)

	return result
}

// addSP computes sp+signed 8-bit displacement, wraps at 16 bits, and
// sets Z=0, N=0, H and C as if the low byte of sp were added to the
// unsigned operand byte.
func (c *CPU) addSP(sp uint16, operand uint8) uint16 {
	signed := int8(operand)
	result := uint16(int32(sp) + int32(signed))

	low := uint8(sp)
	c.clearFlag(FlagZero)
	c.clearFlag(FlagSubtract)
	c.setFlagIf(FlagHalfCarry, (low&0xF)+(operand&0xF) > 0xF)
	c.setFlagIf(FlagCarry, uint16(low)+uint16(operand) > 0xFF)

	return result
}

// inc8 computes a+1, preserving C.
func (c *CPU) inc8(a uint8) uint8 {
	result := a + 1
	c.shouldZeroFlag(result)
	c.clearFlag(FlagSubtract)
	c.setFlagIf(FlagHalfCarry, a&0xF == 0xF)
	return result
}

// dec8 computes a-1, preserving C.
func (c *CPU) dec8(a uint8) uint8 {
	result := a - 1
	c.shouldZeroFlag(result)
	c.setFlag(FlagSubtract)
	c.setFlagIf(FlagHalfCarry, a&0xF == 0)
	return result
}

// and8 computes a&b; Z from result, N=0, H=1, C=0.
func (c *CPU) and8(a, b uint8) uint8 {
	result := a & b
	c.shouldZeroFlag(result)
	c.clearFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
	c.clearFlag(FlagCarry)
	return result
}

// or8 computes a|b; Z from result, N=0, H=0, C=0.
func (c *CPU) or8(a, b uint8) uint8 {
	result := a | b
	c.shouldZeroFlag(result)
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.clearFlag(FlagCarry)
	return result
}

// xor8 computes a^b; Z from result, N=0, H=0, C=0.
func (c *CPU) xor8(a, b uint8) uint8 {
	result := a ^ b
	c.shouldZeroFlag(result)
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.clearFlag(FlagCarry)
	return result
}

// cp8 compares a and b via sub8 but discards the numeric result,
// keeping only the flags.
func (c *CPU) cp8(a, b uint8) {
	c.sub8(a, b, 0)
}

// daa adjusts A after a BCD add/sub using N, H, C to pick a
// correction from the standard table-driven algorithm.
func (c *CPU) daa() {
	var correction uint8
	carry := false

	if c.isFlagSet(FlagHalfCarry) || (!c.isFlagSet(FlagSubtract) && c.A&0xF > 0x9) {
		correction |= 0x06
	}
	if c.isFlagSet(FlagCarry) || (!c.isFlagSet(FlagSubtract) && c.A > 0x99) {
		correction |= 0x60
		carry = true
	}

	if c.isFlagSet(FlagSubtract) {
		c.A -= correction
	} else {
		c.A += correction
	}

	c.shouldZeroFlag(c.A)
	c.clearFlag(FlagHalfCarry)
	c.setFlagIf(FlagCarry, carry)
}
