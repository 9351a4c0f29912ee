package cpu

import "testing"

func TestAddAHL(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0] = 0x86 // ADD A,(HL)
	c.PC = 0
	c.A = 0x42
	c.HL.Set(0x1234)
	bus.mem[0x1234] = 0x42

	c.ExecuteOne()

	if c.A != 0x84 {
		t.Errorf("expected A=0x84, got 0x%02X", c.A)
	}
	if c.isFlagSet(FlagSubtract) || c.isFlagSet(FlagZero) || c.isFlagSet(FlagHalfCarry) || c.isFlagSet(FlagCarry) {
		t.Errorf("expected all flags clear, got F=0x%02X", c.F)
	}
}

func TestAddAHLHalfCarryZeroCarry(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0] = 0x86
	c.HL.Set(0x1234)

	// half carry
	c.PC = 0
	c.A = 0x0F
	bus.mem[0x1234] = 0x01
	c.ExecuteOne()
	if !c.isFlagSet(FlagHalfCarry) {
		t.Error("expected half carry flag set")
	}

	// zero
	c.PC = 0
	c.A = 0xFF
	bus.mem[0x1234] = 0x01
	c.ExecuteOne()
	if !c.isFlagSet(FlagZero) {
		t.Error("expected zero flag set")
	}

	// carry
	c.PC = 0
	c.A = 0xFF
	bus.mem[0x1234] = 0xFF
	c.ExecuteOne()
	if !c.isFlagSet(FlagCarry) {
		t.Error("expected carry flag set")
	}
}

func TestSubBBorrow(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0] = 0x90 // SUB B
	c.PC = 0
	c.A = 0x00
	c.B = 0x01

	c.ExecuteOne()

	if c.A != 0xFF {
		t.Errorf("expected wraparound to 0xFF, got 0x%02X", c.A)
	}
	if !c.isFlagSet(FlagSubtract) || !c.isFlagSet(FlagCarry) || !c.isFlagSet(FlagHalfCarry) {
		t.Errorf("expected N, H and C set for a full borrow, got F=0x%02X", c.F)
	}
}

func TestIncR8HalfCarryDoesNotTouchCarry(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0] = 0x3C // INC A
	c.PC = 0
	c.A = 0xFF
	c.setFlag(FlagCarry)

	c.ExecuteOne()

	if c.A != 0x00 {
		t.Errorf("expected wraparound to 0, got 0x%02X", c.A)
	}
	if !c.isFlagSet(FlagZero) || !c.isFlagSet(FlagHalfCarry) {
		t.Error("expected Z and H set on 0xFF+1")
	}
	if !c.isFlagSet(FlagCarry) {
		t.Error("expected INC to preserve a pre-existing carry flag")
	}
}

func TestIncHLMemoryTakesThreeCycles(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0] = 0x34 // INC (HL)
	c.PC = 0
	c.HL.Set(0xC000)
	bus.mem[0xC000] = 0x41

	c.ExecuteOne()

	if bus.mem[0xC000] != 0x42 {
		t.Errorf("expected memory at HL to be incremented, got 0x%02X", bus.mem[0xC000])
	}
	if c.Cycles() != 3 {
		t.Errorf("expected INC (HL) to cost 3 machine cycles, got %d", c.Cycles())
	}
}

func TestAddHLBC(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0] = 0x09 // ADD HL,BC
	c.PC = 0
	c.HL.Set(0x0FFF)
	c.BC.Set(0x0001)
	c.setFlag(FlagZero) // Z must be preserved by 16-bit add

	c.ExecuteOne()

	if c.HL.Get() != 0x1000 {
		t.Errorf("expected HL=0x1000, got 0x%04X", c.HL.Get())
	}
	if !c.isFlagSet(FlagHalfCarry) {
		t.Error("expected half carry across bit 11")
	}
	if !c.isFlagSet(FlagZero) {
		t.Error("expected ADD HL,rr to leave Z untouched")
	}
	if c.Cycles() != 2 {
		t.Errorf("expected ADD HL,rr to cost 2 machine cycles, got %d", c.Cycles())
	}
}
