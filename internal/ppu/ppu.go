// Package ppu implements the pixel processing unit: tile and sprite
// caches, the OAM-scan/drawing/H-blank/V-blank mode state machine, and
// the scanline compositor, grounded on the teacher's internal/ppu
// package (the simpler scanline-per-mode-transition revision, not the
// cycle-accurate pixel-FIFO revision also present in the corpus - see
// DESIGN.md).
package ppu

import (
	"github.com/hextide/gbcore/internal/interrupts"
	"github.com/hextide/gbcore/internal/ppu/palette"
)

// ScreenWidth and ScreenHeight are the fixed DMG raster dimensions.
const (
	ScreenWidth  = 160
	ScreenHeight = 144
)

// Mode values reported via STAT bits 0-1.
const (
	ModeHBlank = 0
	ModeVBlank = 1
	ModeOAM    = 2
	ModeDraw   = 3
)

// Mode durations in machine cycles; one full scanline is 114 machine
// cycles, 154 lines per frame (144 visible plus 10 V-blank lines).
const (
	cyclesOAM    = 20
	cyclesDraw   = 43
	cyclesHBlank = 51
	cyclesPerLine = cyclesOAM + cyclesDraw + cyclesHBlank // 114
	vblankLines   = 10
)

// PPU owns all display-producing state: LCDC/STAT-derived flags, the
// scroll/window registers, the tile and sprite caches, the three
// palettes, and the mode state machine.
type PPU struct {
	VRAM [0x2000]uint8
	OAM  [0xA0]uint8

	tiles   TileCache
	sprites SpriteCache

	BGP, OBP0, OBP1 palette.Palette

	// LCDC-derived flags
	lcdEnabled  bool
	winTileMap  uint8 // 0 = 0x9800, 1 = 0x9C00
	winEnabled  bool
	bgTileSet   uint8 // 0 = signed (0x8800), 1 = unsigned (0x8000)
	bgTileMap   uint8 // 0 = 0x9800, 1 = 0x9C00
	objSize     uint8 // 0 = 8x8, 1 = 8x16
	objEnabled  bool
	bgEnabled   bool

	scy, scx uint8
	wy, wx   uint8

	line      uint8 // LY, 0-153
	lyc       uint8
	mode      uint8
	modeClock uint16
	vblankLine uint8 // which of the 10 vblank lines we're in

	bgIndex [ScreenWidth]uint8 // raw background colour index of the line just drawn, for sprite priority

	irq *interrupts.Service

	// Raster is the host-owned RGBA buffer, exactly
	// ScreenWidth*ScreenHeight*4 bytes, row-major, top-left origin.
	Raster []byte

	// Present is called once per frame at V-blank entry with the
	// completed Raster buffer.
	Present func(frame []byte)
}

// New returns a PPU wired to the given interrupt service, with a fresh
// raster buffer.
func New(irq *interrupts.Service) *PPU {
	return &PPU{
		irq:    irq,
		mode:   ModeOAM,
		Raster: make([]byte, ScreenWidth*ScreenHeight*4),
	}
}

// WriteVRAM stores v at VRAM address addr (0x8000-relative, i.e. pass
// addr-0x8000) and re-decodes the affected tile row.
func (p *PPU) WriteVRAM(addr uint16, v uint8) {
	p.VRAM[addr] = v
	p.tiles.UpdateRow(addr, &p.VRAM)
}

// ReadVRAM returns the byte at VRAM address addr (0x8000-relative).
func (p *PPU) ReadVRAM(addr uint16) uint8 { return p.VRAM[addr] }

// WriteOAM stores v at OAM address addr (0xFE00-relative) and
// re-decodes the affected sprite field.
func (p *PPU) WriteOAM(addr uint16, v uint8) {
	p.OAM[addr] = v
	p.sprites.UpdateField(addr, v)
}

// ReadOAM returns the byte at OAM address addr (0xFE00-relative).
func (p *PPU) ReadOAM(addr uint16) uint8 { return p.OAM[addr] }

// DMA copies 160 bytes from src (already resolved to an absolute
// source, e.g. value<<8) into OAM and rebuilds every sprite, per the
// OAM DMA MMIO register. read is supplied by the bus since the DMA
// source can be any readable region.
func (p *PPU) DMA(read func(uint16) uint8, src uint16) {
	for i := uint16(0); i < 0xA0; i++ {
		v := read(src + i)
		p.OAM[i] = v
		p.sprites.UpdateField(i, v)
	}
}

// WriteLCDC unpacks the LCD control register.
func (p *PPU) WriteLCDC(v uint8) {
	p.lcdEnabled = v&0x80 != 0
	p.winTileMap = boolBit(v, 6)
	p.winEnabled = v&0x20 != 0
	p.bgTileSet = boolBit(v, 4)
	p.bgTileMap = boolBit(v, 3)
	p.objSize = boolBit(v, 2)
	p.objEnabled = v&0x02 != 0
	p.bgEnabled = v&0x01 != 0
}

// ReadLCDC repacks the LCD control register.
func (p *PPU) ReadLCDC() uint8 {
	var v uint8
	if p.lcdEnabled {
		v |= 0x80
	}
	v |= p.winTileMap << 6
	if p.winEnabled {
		v |= 0x20
	}
	v |= p.bgTileSet << 4
	v |= p.bgTileMap << 3
	v |= p.objSize << 2
	if p.objEnabled {
		v |= 0x02
	}
	if p.bgEnabled {
		v |= 0x01
	}
	return v
}

func boolBit(v uint8, bit uint8) uint8 {
	if v&(1<<bit) != 0 {
		return 1
	}
	return 0
}

// ReadSTAT reports the current mode and the LYC coincidence bit.
func (p *PPU) ReadSTAT() uint8 {
	v := p.mode & 0x3
	if p.line == p.lyc {
		v |= 0x4
	}
	return v | 0x80 // bit 7 unused, reads as 1
}

func (p *PPU) WriteSCY(v uint8)  { p.scy = v }
func (p *PPU) ReadSCY() uint8    { return p.scy }
func (p *PPU) WriteSCX(v uint8)  { p.scx = v }
func (p *PPU) ReadSCX() uint8    { return p.scx }
func (p *PPU) ReadLY() uint8     { return p.line }
func (p *PPU) WriteLYC(v uint8)  { p.lyc = v }
func (p *PPU) ReadLYC() uint8    { return p.lyc }
func (p *PPU) WriteWY(v uint8)   { p.wy = v }
func (p *PPU) WriteWX(v uint8)   { p.wx = v }

// Tick advances the PPU by the given number of machine cycles, the
// cycle cost of the instruction the CPU just executed.
func (p *PPU) Tick(cycles uint8) {
	if !p.lcdEnabled {
		return
	}
	for i := uint8(0); i < cycles; i++ {
		p.tickOne()
	}
}

func (p *PPU) tickOne() {
	p.modeClock++

	switch p.mode {
	case ModeOAM:
		if p.modeClock >= cyclesOAM {
			p.modeClock = 0
			p.mode = ModeDraw
		}
	case ModeDraw:
		if p.modeClock >= cyclesDraw {
			p.modeClock = 0
			p.mode = ModeHBlank
			p.renderScanline()
		}
	case ModeHBlank:
		if p.modeClock >= cyclesHBlank {
			p.modeClock = 0
			p.line++
			if p.line == ScreenHeight {
				p.mode = ModeVBlank
				p.vblankLine = 0
				p.irq.Request(interrupts.VBlank)
				if p.Present != nil {
					p.Present(p.Raster)
				}
			} else {
				p.mode = ModeOAM
			}
		}
	case ModeVBlank:
		if p.modeClock >= cyclesPerLine {
			p.modeClock = 0
			p.vblankLine++
			if p.vblankLine >= vblankLines {
				p.line = 0
				p.mode = ModeOAM
			} else {
				p.line++
			}
		}
	}
}
