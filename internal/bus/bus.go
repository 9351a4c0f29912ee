// Package bus implements the memory bus: region-demultiplexed
// read/write with side effects on VRAM, OAM and the memory-mapped I/O
// registers, grounded on the teacher's internal/io.Bus (the
// logrus-free revision - see DESIGN.md),
// generalized to a single fixed+switchable 32KiB ROM with no banking.
package bus

import (
	"github.com/hextide/gbcore/internal/boot"
	"github.com/hextide/gbcore/internal/interrupts"
	"github.com/hextide/gbcore/internal/ppu"
	"github.com/hextide/gbcore/internal/timer"
	"github.com/hextide/gbcore/internal/types"
)

// Bus routes 16-bit addresses to one of eight memory regions.
type Bus struct {
	romFixed [0x4000]uint8
	romBank  [0x4000]uint8
	extRAM   [0x2000]uint8
	wram     [0x2000]uint8
	highRAM  [0x7F]uint8 // 0xFF80-0xFFFE

	bootROM    [256]byte
	bootActive bool

	PPU   *ppu.PPU
	Timer *timer.Controller
	IRQ   *interrupts.Service
}

// New returns a bus with the public DMG boot overlay active and all
// other regions zeroed.
func New(ppu *ppu.PPU, t *timer.Controller, irq *interrupts.Service) *Bus {
	return &Bus{
		bootROM:    boot.DMG,
		bootActive: true,
		PPU:        ppu,
		Timer:      t,
		IRQ:        irq,
	}
}

// LoadBootROM replaces the 256-byte boot overlay. It has no effect
// once the overlay has already unmapped itself.
func (b *Bus) LoadBootROM(rom [256]byte) {
	b.bootROM = rom
}

// LoadROM copies cart into the fixed and switchable ROM regions,
// starting at address 0. Bytes beyond 0x8000 are discarded, since
// banking controllers are out of scope.
func (b *Bus) LoadROM(cart []byte) {
	for i := 0; i < len(cart) && i < 0x8000; i++ {
		if i < 0x4000 {
			b.romFixed[i] = cart[i]
		} else {
			b.romBank[i-0x4000] = cart[i]
		}
	}
}

// Read8 reads one byte, dispatching on the region the address falls
// in.
func (b *Bus) Read8(addr uint16) uint8 {
	switch {
	case addr <= types.ROMFixedEnd:
		if b.bootActive {
			if addr < types.BootROMUnmap {
				return b.bootROM[addr]
			}
			// the first read of address 0x0100 unmaps the overlay
			// permanently; the boot sequence's own reads of the
			// cartridge header (0x0104 onwards) leave it in place
			if addr == types.BootROMUnmap {
				b.bootActive = false
			}
		}
		return b.romFixed[addr]
	case addr <= types.ROMBankEnd:
		return b.romBank[addr-types.ROMBankStart]
	case addr <= types.VRAMEnd:
		return b.PPU.ReadVRAM(addr - types.VRAMStart)
	case addr <= types.ExtRAMEnd:
		return b.extRAM[addr-types.ExtRAMStart]
	case addr <= types.WRAMEnd:
		return b.wram[addr-types.WRAMStart]
	case addr <= types.EchoEnd:
		return b.wram[addr-types.EchoStart]
	case addr <= types.OAMEnd:
		return b.PPU.ReadOAM(addr - types.OAMStart)
	case addr <= types.UnusedEnd:
		return 0xFF
	case addr <= types.MMIOEnd:
		return b.readMMIO(addr - types.MMIOStart)
	case addr <= types.HighRAMEnd:
		return b.highRAM[addr-types.HighRAMStart]
	case addr == types.InterruptEnable:
		return b.IRQ.ReadIE()
	}
	return 0xFF
}

// Write8 writes one byte, dispatching on the region the address falls
// in. Writes to ROM and unmapped addresses are discarded.
func (b *Bus) Write8(addr uint16, v uint8) {
	switch {
	case addr <= types.ROMBankEnd:
		// ROM is read-only in this core
	case addr <= types.VRAMEnd:
		b.PPU.WriteVRAM(addr-types.VRAMStart, v)
	case addr <= types.ExtRAMEnd:
		b.extRAM[addr-types.ExtRAMStart] = v
	case addr <= types.WRAMEnd:
		b.wram[addr-types.WRAMStart] = v
	case addr <= types.EchoEnd:
		b.wram[addr-types.EchoStart] = v
	case addr <= types.OAMEnd:
		b.PPU.WriteOAM(addr-types.OAMStart, v)
	case addr <= types.UnusedEnd:
		// discarded
	case addr <= types.MMIOEnd:
		b.writeMMIO(addr-types.MMIOStart, v)
	case addr <= types.HighRAMEnd:
		b.highRAM[addr-types.HighRAMStart] = v
	case addr == types.InterruptEnable:
		b.IRQ.WriteIE(v)
	}
}

// Read16 / Write16 pair two bytes little-endian: low at addr, high at
// addr+1.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := b.Read8(addr)
	hi := b.Read8(addr + 1)
	return uint16(lo) | uint16(hi)<<8
}

func (b *Bus) Write16(addr uint16, v uint16) {
	b.Write8(addr, uint8(v))
	b.Write8(addr+1, uint8(v>>8))
}

// InBoot reports whether the boot overlay is still mapping addresses
// below 0x0100.
func (b *Bus) InBoot() bool { return b.bootActive }

func (b *Bus) readMMIO(offset uint16) uint8 {
	switch offset {
	case types.DIV:
		return b.Timer.ReadDIV()
	case types.TIMA:
		return b.Timer.ReadTIMA()
	case types.TMA:
		return b.Timer.ReadTMA()
	case types.TAC:
		return b.Timer.ReadTAC()
	case types.IF:
		return b.IRQ.ReadIF()
	case types.LCDC:
		return b.PPU.ReadLCDC()
	case types.STAT:
		return b.PPU.ReadSTAT()
	case types.SCY:
		return b.PPU.ReadSCY()
	case types.SCX:
		return b.PPU.ReadSCX()
	case types.LY:
		return b.PPU.ReadLY()
	case types.LYC:
		return b.PPU.ReadLYC()
	case types.BGP:
		return b.PPU.BGP.Read()
	case types.OBP0:
		return b.PPU.OBP0.Read()
	case types.OBP1:
		return b.PPU.OBP1.Read()
	case types.P1:
		return 0xCF // joypad idle: no buttons pressed (low nibble all 1s), select bits 5-4 read 0
	}
	return 0xFF
}

func (b *Bus) writeMMIO(offset uint16, v uint8) {
	switch offset {
	case types.DIV:
		b.Timer.WriteDIV(v)
	case types.TIMA:
		b.Timer.WriteTIMA(v)
	case types.TMA:
		b.Timer.WriteTMA(v)
	case types.TAC:
		b.Timer.WriteTAC(v)
	case types.IF:
		b.IRQ.WriteIF(v)
	case types.LCDC:
		b.PPU.WriteLCDC(v)
	case types.SCY:
		b.PPU.WriteSCY(v)
	case types.SCX:
		b.PPU.WriteSCX(v)
	case types.LYC:
		b.PPU.WriteLYC(v)
	case types.WY:
		b.PPU.WriteWY(v)
	case types.WX:
		b.PPU.WriteWX(v)
	case types.DMA:
		b.PPU.DMA(b.Read8, uint16(v)<<8)
	case types.BGP:
		b.PPU.BGP.Write(v)
	case types.OBP0:
		b.PPU.OBP0.Write(v)
	case types.OBP1:
		b.PPU.OBP1.Write(v)
	}
	// LY, STAT and the joypad register are read-only from this core's
	// perspective; other MMIO offsets, including the boot ROM's own
	// write to 0xFF50, are accepted and discarded - the overlay unmaps
	// itself on the first read of address 0x0100 instead.
}
