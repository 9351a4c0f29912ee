package cpu

import "testing"

func TestBitClearsZWhenBitSet(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0] = 0xCB
	bus.mem[1] = 0x7F // BIT 7,A
	c.PC = 0
	c.A = 0x80

	c.ExecuteOne()

	if c.isFlagSet(FlagZero) {
		t.Error("expected Z clear, bit 7 of A is set")
	}
	if !c.isFlagSet(FlagHalfCarry) {
		t.Error("expected H set after BIT")
	}
}

func TestBitSetsZWhenBitClear(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0] = 0xCB
	bus.mem[1] = 0x47 // BIT 0,A
	c.PC = 0
	c.A = 0xFE

	c.ExecuteOne()

	if !c.isFlagSet(FlagZero) {
		t.Error("expected Z set, bit 0 of A is clear")
	}
}

func TestResClearsBitWithoutTouchingOthers(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0] = 0xCB
	bus.mem[1] = 0x87 // RES 0,A
	c.PC = 0
	c.A = 0xFF

	c.ExecuteOne()

	if c.A != 0xFE {
		t.Errorf("expected A=0xFE, got 0x%02X", c.A)
	}
}

func TestSetSetsBitWithoutTouchingOthers(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0] = 0xCB
	bus.mem[1] = 0xC7 // SET 0,A
	c.PC = 0
	c.A = 0x00

	c.ExecuteOne()

	if c.A != 0x01 {
		t.Errorf("expected A=0x01, got 0x%02X", c.A)
	}
}

func TestBitHLOnlyReadsNoWrite(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0] = 0xCB
	bus.mem[1] = 0x46 // BIT 0,(HL)
	c.PC = 0
	c.HL.Set(0xC000)
	bus.mem[0xC000] = 0x01

	c.ExecuteOne()

	// fetch CB prefix(1) + fetch sub-opcode(1) + read (HL)(1) = 3
	if c.Cycles() != 3 {
		t.Errorf("expected BIT n,(HL) to cost 3 machine cycles, got %d", c.Cycles())
	}
}

func TestResHLReadsAndWrites(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0] = 0xCB
	bus.mem[1] = 0x86 // RES 0,(HL)
	c.PC = 0
	c.HL.Set(0xC000)
	bus.mem[0xC000] = 0xFF

	c.ExecuteOne()

	if bus.mem[0xC000] != 0xFE {
		t.Errorf("expected memory at HL to become 0xFE, got 0x%02X", bus.mem[0xC000])
	}
	// fetch CB prefix(1) + fetch sub-opcode(1) + read(1) + write(1) = 4
	if c.Cycles() != 4 {
		t.Errorf("expected RES n,(HL) to cost 4 machine cycles, got %d", c.Cycles())
	}
}

func TestSwapNibbles(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0] = 0xCB
	bus.mem[1] = 0x37 // SWAP A
	c.PC = 0
	c.A = 0xA5

	c.ExecuteOne()

	if c.A != 0x5A {
		t.Errorf("expected A=0x5A, got 0x%02X", c.A)
	}
	if c.isFlagSet(FlagCarry) {
		t.Error("expected SWAP to clear carry")
	}
}
