package amdgpu

// Collaborator interfaces of the command processor. All are injected at
// construction and must outlive the processor.

// Rasterizer executes draw work. DrawIndex is invoked synchronously from the
// processing thread with the register file's current draw state as implicit
// context.
type Rasterizer interface {
	DrawIndex()
}

// IrqHandler receives display interrupt signals.
type IrqHandler interface {
	// SignalFlip reports a framebuffer flip boundary in the stream.
	SignalFlip()
}

// FenceEvent is the signal request embedded in an end-of-pipe or
// end-of-shader packet. Ownership of the fence and its waiters lives with
// the FenceSignaler.
type FenceEvent struct {
	Address uint64 // Fence write address.
	Value   uint64 // Fence value.
	DataSel uint32 // pm4.DATA_SEL_* write width selector.
	IntSel  uint32 // pm4.INT_SEL_* interrupt selector.
}

// FenceSignaler performs the side effect of a fence event.
type FenceSignaler interface {
	SignalFence(ev FenceEvent)
}

// Memory is the guest memory the stream may poll and write.
type Memory interface {
	Read32(addr uint64) uint32
	Write32(addr uint64, value uint32)
}
