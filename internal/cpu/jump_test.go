package cpu

import "testing"

// TestJRNZTakenCostsThreeCycles reproduces the scenario of a
// conditional relative jump that is taken, where PC starts at 0xC000,
// the Z flag is clear (so NZ is taken), and the displacement is +5.
func TestJRNZTakenCostsThreeCycles(t *testing.T) {
	c, bus := newTestCPU()
	c.PC = 0xC000
	bus.mem[0xC000] = 0x20 // JR NZ,d8
	bus.mem[0xC001] = 0x05
	c.clearFlag(FlagZero)

	c.ExecuteOne()

	if c.PC != 0xC007 {
		t.Errorf("expected PC=0xC007 (0xC002 + 5), got 0x%04X", c.PC)
	}
	if c.Cycles() != 3 {
		t.Errorf("expected JR NZ taken to cost 3 machine cycles, got %d", c.Cycles())
	}
}

func TestJRNZNotTakenCostsTwoCycles(t *testing.T) {
	c, bus := newTestCPU()
	c.PC = 0xC000
	bus.mem[0xC000] = 0x20
	bus.mem[0xC001] = 0x05
	c.setFlag(FlagZero)

	c.ExecuteOne()

	if c.PC != 0xC002 {
		t.Errorf("expected PC=0xC002 (fallthrough), got 0x%04X", c.PC)
	}
	if c.Cycles() != 2 {
		t.Errorf("expected JR NZ not taken to cost 2 machine cycles, got %d", c.Cycles())
	}
}

func TestJRNegativeDisplacement(t *testing.T) {
	c, bus := newTestCPU()
	c.PC = 0xC010
	bus.mem[0xC010] = 0x18 // JR d8
	bus.mem[0xC011] = 0xFB // -5

	c.ExecuteOne()

	if c.PC != 0xC00D {
		t.Errorf("expected PC=0xC00D (0xC012-5), got 0x%04X", c.PC)
	}
}

func TestCallAndRetRoundTrip(t *testing.T) {
	c, bus := newTestCPU()
	c.PC = 0x0100
	c.SP = 0xFFFE
	bus.mem[0x0100] = 0xCD // CALL nn
	bus.mem[0x0101] = 0x00
	bus.mem[0x0102] = 0x02 // target 0x0200
	bus.mem[0x0200] = 0xC9 // RET

	c.ExecuteOne() // CALL
	if c.PC != 0x0200 {
		t.Fatalf("expected PC=0x0200 after CALL, got 0x%04X", c.PC)
	}
	if c.SP != 0xFFFC {
		t.Fatalf("expected SP decremented by 2, got 0x%04X", c.SP)
	}

	c.ExecuteOne() // RET
	if c.PC != 0x0103 {
		t.Errorf("expected PC=0x0103 after RET, got 0x%04X", c.PC)
	}
	if c.SP != 0xFFFE {
		t.Errorf("expected SP restored to 0xFFFE, got 0x%04X", c.SP)
	}
}
