package gameboy

import "github.com/hextide/gbcore/pkg/log"

// Opt configures a GameBoy at construction time, following the
// teacher's functional-options pattern (internal/gameboy/options.go).
type Opt func(*GameBoy)

// WithBootROM installs rom as the fixed boot overlay executed from
// PC=0 until the first read of address 0x0100 unmaps it.
func WithBootROM(rom [256]byte) Opt {
	return func(gb *GameBoy) {
		gb.Bus.LoadBootROM(rom)
	}
}

// WithLogger replaces the default stdout logger.
func WithLogger(logger log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.logger = logger
		gb.CPU.SetLogger(logger)
	}
}

// WithDebugTrace enables per-instruction mnemonic tracing through the
// configured logger's Debugf, grounded on the teacher's CPU debugger
// hooks (internal/cpu/cpu.go Step tracing).
func WithDebugTrace(enabled bool) Opt {
	return func(gb *GameBoy) {
		gb.CPU.DebugTrace = enabled
	}
}

// WithCyclesPerFrame overrides the default 17556 machine-cycle frame
// budget. Intended for tests that want a shorter or longer horizon.
func WithCyclesPerFrame(cycles int) Opt {
	return func(gb *GameBoy) {
		gb.cyclesPerFrame = cycles
	}
}

// WithPresent installs a callback invoked once per completed frame
// with the PPU's raster buffer.
func WithPresent(present func(frame []byte)) Opt {
	return func(gb *GameBoy) {
		gb.PPU.Present = present
	}
}
