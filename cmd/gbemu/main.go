// Command gbemu drives the core for a fixed number of frames and
// optionally writes the last frame to disk, grounded on the teacher's
// cmd/goboy/main.go flag-based entry point (windowing and pprof
// stripped, since host display is out of scope for this core).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hextide/gbcore/gameboy"
	"github.com/hextide/gbcore/pkg/log"
	"github.com/hextide/gbcore/pkg/romload"
	"github.com/hextide/gbcore/pkg/snapshot"
)

func main() {
	romFile := flag.String("rom", "", "the ROM file to load")
	bootFile := flag.String("boot", "", "an optional 256-byte boot ROM image; defaults to the built-in DMG overlay")
	frames := flag.Int("frames", 60, "number of frames to run")
	trace := flag.Bool("trace", false, "log a per-instruction mnemonic trace")
	snapshotPath := flag.String("snapshot", "", "if set, write the final frame to this PNG path")
	scale := flag.Int("scale", 4, "snapshot upscale factor")
	flag.Parse()

	if *romFile == "" {
		fmt.Fprintln(os.Stderr, "gbemu: -rom is required")
		os.Exit(2)
	}

	logger := log.New()

	rom, err := romload.Load(*romFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gbemu:", err)
		os.Exit(1)
	}

	opts := []gameboy.Opt{gameboy.WithLogger(logger), gameboy.WithDebugTrace(*trace)}

	if *bootFile != "" {
		boot, err := romload.LoadBootROM(*bootFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "gbemu:", err)
			os.Exit(1)
		}
		opts = append(opts, gameboy.WithBootROM(boot))
	}

	var lastFrame []byte
	if *snapshotPath != "" {
		opts = append(opts, gameboy.WithPresent(func(frame []byte) {
			lastFrame = append(lastFrame[:0], frame...)
		}))
	}

	gb := gameboy.New(opts...)
	gb.LoadROM(rom)

	for i := 0; i < *frames; i++ {
		if !gb.RunFrame() {
			kind, msg, _ := gb.Fatal()
			fmt.Fprintf(os.Stderr, "gbemu: fatal error (kind %d) at frame %d: %s\n", kind, i, msg)
			os.Exit(1)
		}
	}

	if *snapshotPath != "" && lastFrame != nil {
		w := snapshot.New(*snapshotPath, *scale)
		if _, err := w.Write(lastFrame); err != nil {
			fmt.Fprintln(os.Stderr, "gbemu:", err)
			os.Exit(1)
		}
		logger.Infof("wrote snapshot to %s", *snapshotPath)
	}
}
