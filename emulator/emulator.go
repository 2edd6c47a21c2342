// Package emulator wires the command processor to default collaborator
// implementations: linear guest memory, a counting interrupt controller, a
// tracing rasterizer and a memory-backed fence signaler.
package emulator

import (
	"fmt"
	"iter"
	"maps"

	"github.com/Fancy2209/shadPS4/amdgpu"
	"github.com/Fancy2209/shadPS4/internal"
	"github.com/Fancy2209/shadPS4/pm4"
)

const (
	MEM_BASE = uint64(0x10000) // Guest address of the memory window.
	MEM_SIZE = 1 << 20         // Default window size.
)

var _emulator_defines = map[string]string{
	"MEM_BASE": fmt.Sprintf("%#x", MEM_BASE),
}

// Emulator state. Command processor + collaborators.
type Emulator struct {
	Verbose bool // If set, enables verbose logging.

	Gpu        *amdgpu.Liverpool
	Mem        *Memory
	Irq        *IrqController
	Rasterizer *TraceRasterizer
	Fence      *MemFence
}

// NewEmulator creates an emulator with memSize bytes of guest memory
// (MEM_SIZE when zero) and starts the command processor.
func NewEmulator(memSize int) (emu *Emulator) {
	if memSize == 0 {
		memSize = MEM_SIZE
	}

	emu = &Emulator{
		Mem:        NewMemory(MEM_BASE, memSize),
		Irq:        &IrqController{},
		Rasterizer: &TraceRasterizer{},
	}
	emu.Fence = &MemFence{Mem: emu.Mem}
	emu.Gpu = amdgpu.NewLiverpool(emu.Rasterizer, emu.Irq, emu.Fence, emu.Mem)
	emu.Rasterizer.Regs = emu.Gpu.Regs

	return
}

// Defines returns an iterator over all of the defines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		pm4.Defines(),
		amdgpu.Defines(),
	)
}

// NewAssembler creates a command-stream assembler preloaded with the
// emulator's defines.
func (emu *Emulator) NewAssembler() (asm *pm4.Assembler) {
	asm = &pm4.Assembler{Verbose: emu.Verbose}
	for attr, val := range emu.Defines() {
		asm.Predefine(attr, val)
	}

	return
}

// Run submits a command buffer and blocks until the queue drains.
func (emu *Emulator) Run(dcb []uint32) {
	emu.Gpu.Verbose = emu.Verbose
	emu.Rasterizer.Verbose = emu.Verbose

	emu.Gpu.Submit(dcb)
	emu.Gpu.WaitGpuIdle()
}

// Close stops the command processor.
func (emu *Emulator) Close() (err error) {
	return emu.Gpu.Close()
}
