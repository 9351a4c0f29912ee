// Package gameboy assembles the CPU, bus, PPU, timer and interrupt
// service into the per-frame machine driver, grounded on the
// teacher's internal/gameboy.GameBoy.
package gameboy

import (
	"github.com/hextide/gbcore/internal/bus"
	"github.com/hextide/gbcore/internal/cpu"
	"github.com/hextide/gbcore/internal/interrupts"
	"github.com/hextide/gbcore/internal/ppu"
	"github.com/hextide/gbcore/internal/timer"
	"github.com/hextide/gbcore/pkg/log"
)

// CyclesPerFrame is the fixed per-frame machine-cycle budget
// (~59.7 Hz refresh at 4194304 Hz / 4 / 17556).
const CyclesPerFrame = 17556

// GameBoy owns every subsystem and drives the per-frame loop.
type GameBoy struct {
	CPU  *cpu.CPU
	Bus  *bus.Bus
	PPU  *ppu.PPU
	IRQ  *interrupts.Service
	Timer *timer.Controller

	cyclesPerFrame int
	logger         log.Logger

	fatal     bool
	fatalKind cpu.ErrorKind
	fatalMsg  string
}

// New constructs a GameBoy with the boot ROM overlay active at PC=0
// and applies opts.
func New(opts ...Opt) *GameBoy {
	irq := interrupts.NewService()
	p := ppu.New(irq)
	t := timer.NewController(irq)
	b := bus.New(p, t, irq)

	gb := &GameBoy{
		Bus:            b,
		PPU:            p,
		IRQ:            irq,
		Timer:          t,
		cyclesPerFrame: CyclesPerFrame,
		logger:         log.New(),
	}
	gb.CPU = cpu.New(b, irq, gb.logger)
	gb.CPU.OnFatal = gb.onFatal

	for _, opt := range opts {
		opt(gb)
	}

	return gb
}

// LoadROM hands cart's bytes to the bus, preloaded into the fixed ROM
// region.
func (gb *GameBoy) LoadROM(cart []byte) {
	gb.Bus.LoadROM(cart)
}

func (gb *GameBoy) onFatal(kind cpu.ErrorKind, message string) {
	gb.fatal = true
	gb.fatalKind = kind
	gb.fatalMsg = message
	if gb.logger != nil {
		gb.logger.Errorf("fatal: %s", message)
	}
}

// Fatal reports whether a fatal error has occurred and, if so, what
// kind and message accompanied it.
func (gb *GameBoy) Fatal() (kind cpu.ErrorKind, message string, ok bool) {
	return gb.fatalKind, gb.fatalMsg, gb.fatal
}

// RunFrame executes instructions until the per-frame cycle budget is
// exhausted, stepping the PPU and timer by each instruction's cycle
// cost and servicing at most one pending interrupt between
// instructions. It stops early and returns false if a fatal error
// occurs.
func (gb *GameBoy) RunFrame() bool {
	if gb.fatal {
		return false
	}

	budget := uint64(gb.cyclesPerFrame)
	start := gb.CPU.Cycles()

	for gb.CPU.Cycles()-start < budget {
		snapshot := gb.CPU.Cycles()
		gb.CPU.ExecuteOne()
		if gb.fatal {
			return false
		}
		delta := uint8(gb.CPU.Cycles() - snapshot)

		gb.PPU.Tick(delta)
		gb.Timer.Step(delta)

		gb.CPU.ServiceInterrupt()
		if gb.fatal {
			return false
		}
	}

	return true
}
