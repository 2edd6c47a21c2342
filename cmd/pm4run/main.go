package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Fancy2209/shadPS4/emulator"
	"github.com/Fancy2209/shadPS4/pm4"
)

func main() {
	var compile string
	var binary string
	var repeat int
	var memSize int
	var save string
	var verbose bool

	flag.StringVar(&compile, "c", "", ".pm4 listing to assemble")
	flag.StringVar(&binary, "b", "", "raw little-endian command buffer")
	flag.IntVar(&repeat, "n", 1, "Number of times to submit the buffer")
	flag.IntVar(&memSize, "m", emulator.MEM_SIZE, "Guest memory size in bytes")
	flag.StringVar(&save, "s", "", "Save the assembled buffer, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if (len(compile) == 0) == (len(binary) == 0) {
		log.Fatalf("%v: Exactly one of -c or -b is required", os.Args[0])
	}

	emu := emulator.NewEmulator(memSize)
	emu.Verbose = verbose
	defer emu.Close()

	var dcb []uint32

	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := emu.NewAssembler()
		dcb, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	} else {
		data, err := os.ReadFile(binary)
		if err != nil {
			log.Fatalf("%v: %v", binary, err)
		}
		dcb, err = pm4.Words(data)
		if err != nil {
			log.Fatalf("%v: %v", binary, err)
		}
	}

	if len(save) != 0 {
		err := os.WriteFile(save, pm4.Bytes(dcb), 0o644)
		if err != nil {
			log.Fatalf("%v: %v", save, err)
		}
		return
	}

	for range repeat {
		emu.Run(dcb)
	}

	fmt.Printf("draws:  %v\n", emu.Rasterizer.Draws())
	fmt.Printf("flips:  %v\n", emu.Irq.Flips())
	fmt.Printf("fences: %v\n", emu.Fence.Signals())

	regs := emu.Gpu.Regs
	for offset, value := range regs.Word {
		if value != 0 {
			fmt.Printf("reg[%#04x] = %#08x\n", offset, value)
		}
	}
	if regs.DrawInitiator != 0 || regs.NumIndices != 0 {
		fmt.Printf("draw: base %#x type %#x count %v max %v initiator %#x\n",
			regs.IndexBase(), regs.IndexBufferType, regs.NumIndices,
			regs.MaxIndexSize, regs.DrawInitiator)
	}
}
