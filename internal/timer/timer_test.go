package timer

import (
	"testing"

	"github.com/hextide/gbcore/internal/interrupts"
)

func TestWriteDIVZeroesDividerAndPrescalers(t *testing.T) {
	irq := interrupts.NewService()
	c := NewController(irq)
	c.Step(200)
	if c.ReadDIV() == 0 {
		t.Fatal("expected DIV to have advanced before the write")
	}

	c.WriteDIV(0x99) // value is ignored; any write zeroes DIV
	if c.ReadDIV() != 0 {
		t.Errorf("expected DIV to be zero after any write, got %d", c.ReadDIV())
	}
}

func TestTIMAOverflowReloadsFromTMAAndRequestsInterrupt(t *testing.T) {
	irq := interrupts.NewService()
	c := NewController(irq)
	c.WriteTMA(0x7F)
	c.WriteTAC(0x05) // enabled, threshold index 1 -> every 4 machine cycles
	c.WriteTIMA(0xFF)

	c.Step(4)

	if c.ReadTIMA() != 0x7F {
		t.Errorf("expected TIMA reloaded to TMA=0x7F, got 0x%02X", c.ReadTIMA())
	}
	if irq.Flag&interrupts.Timer == 0 {
		t.Error("expected a Timer interrupt to be requested on overflow")
	}
}

func TestDisabledTimerDoesNotAdvanceTIMA(t *testing.T) {
	irq := interrupts.NewService()
	c := NewController(irq)
	c.WriteTAC(0x00) // disabled
	c.Step(255)

	if c.ReadTIMA() != 0 {
		t.Errorf("expected TIMA to stay at 0 while disabled, got %d", c.ReadTIMA())
	}
}

func TestTACReadBackSetsUnusedBits(t *testing.T) {
	irq := interrupts.NewService()
	c := NewController(irq)
	c.WriteTAC(0x05)
	if c.ReadTAC() != 0xFD {
		t.Errorf("expected unused TAC bits set on readback, got 0x%02X", c.ReadTAC())
	}
}
