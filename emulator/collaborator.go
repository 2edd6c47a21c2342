package emulator

import (
	"log"
	"sync"

	"github.com/Fancy2209/shadPS4/amdgpu"
	"github.com/Fancy2209/shadPS4/pm4"
)

// IrqController counts display interrupts raised by the command stream.
type IrqController struct {
	OnFlip func() // Optional flip callback.

	mu    sync.Mutex
	flips int
}

var _ amdgpu.IrqHandler = (*IrqController)(nil)

// SignalFlip records a framebuffer flip boundary.
func (irq *IrqController) SignalFlip() {
	irq.mu.Lock()
	irq.flips++
	irq.mu.Unlock()

	if irq.OnFlip != nil {
		irq.OnFlip()
	}
}

// Flips returns the number of flip boundaries seen.
func (irq *IrqController) Flips() int {
	irq.mu.Lock()
	defer irq.mu.Unlock()

	return irq.flips
}

// TraceRasterizer records draw invocations instead of rendering.
type TraceRasterizer struct {
	Verbose bool         // If set, logs the draw state of each invocation.
	Regs    *amdgpu.Regs // Register file read for the draw state.

	mu    sync.Mutex
	draws int
}

var _ amdgpu.Rasterizer = (*TraceRasterizer)(nil)

// DrawIndex records one indexed draw.
func (rast *TraceRasterizer) DrawIndex() {
	rast.mu.Lock()
	rast.draws++
	rast.mu.Unlock()

	if rast.Verbose && rast.Regs != nil {
		log.Printf("rasterizer: draw %d indices from %#x initiator %#x",
			rast.Regs.NumIndices, rast.Regs.IndexBase(), rast.Regs.DrawInitiator)
	}
}

// Draws returns the number of draw invocations.
func (rast *TraceRasterizer) Draws() int {
	rast.mu.Lock()
	defer rast.mu.Unlock()

	return rast.draws
}

// MemFence signals fence events by writing the fence value into guest memory
// and counting requested interrupts.
type MemFence struct {
	Mem *Memory

	mu         sync.Mutex
	signals    int
	interrupts int
}

var _ amdgpu.FenceSignaler = (*MemFence)(nil)

// SignalFence performs the fence side effect.
func (fence *MemFence) SignalFence(ev amdgpu.FenceEvent) {
	switch ev.DataSel {
	case pm4.DATA_SEL_DATA32:
		fence.Mem.Write32(ev.Address, uint32(ev.Value))
	case pm4.DATA_SEL_DATA64, pm4.DATA_SEL_TIMESTAMP:
		fence.Mem.Write32(ev.Address, uint32(ev.Value))
		fence.Mem.Write32(ev.Address+4, uint32(ev.Value>>32))
	}

	fence.mu.Lock()
	fence.signals++
	if ev.IntSel != pm4.INT_SEL_NONE {
		fence.interrupts++
	}
	fence.mu.Unlock()
}

// Signals returns the number of fence events signaled.
func (fence *MemFence) Signals() int {
	fence.mu.Lock()
	defer fence.mu.Unlock()

	return fence.signals
}

// Interrupts returns the number of fence events that requested an interrupt.
func (fence *MemFence) Interrupts() int {
	fence.mu.Lock()
	defer fence.mu.Unlock()

	return fence.interrupts
}
