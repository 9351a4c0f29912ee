package cpu

// Flag bit positions within F: Z at bit 7, N at 6, H at 5, C at 4. The
// lower nibble of F is never used and always reads zero.
const (
	FlagZero      uint8 = 1 << 7
	FlagSubtract  uint8 = 1 << 6
	FlagHalfCarry uint8 = 1 << 5
	FlagCarry     uint8 = 1 << 4
)

func (c *CPU) setFlag(flag uint8)   { c.F |= flag }
func (c *CPU) clearFlag(flag uint8) { c.F &^= flag }

func (c *CPU) setFlagIf(flag uint8, cond bool) {
	if cond {
		c.setFlag(flag)
	} else {
		c.clearFlag(flag)
	}
}

func (c *CPU) isFlagSet(flag uint8) bool { return c.F&flag != 0 }

// shouldZeroFlag sets FlagZero iff value == 0.
func (c *CPU) shouldZeroFlag(value uint8) {
	c.setFlagIf(FlagZero, value == 0)
}
