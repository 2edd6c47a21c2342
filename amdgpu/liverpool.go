package amdgpu

import (
	"log"
	"sync"
	"time"

	"github.com/Fancy2209/shadPS4/pm4"
)

// Liverpool is the graphics command processor. It consumes PM4 command
// buffers submitted to its ring, mutating the register file and driving the
// collaborators from a single dedicated processing goroutine.
//
// A malformed stream is a fatal condition: the processing goroutine panics
// rather than continuing past a packet it cannot trust. The producer is part
// of the emulator, so a violation is an emulator bug or an unimplemented
// hardware feature, never recoverable input.
type Liverpool struct {
	Verbose bool  // Set to enable verbose logging.
	Regs    *Regs // The register file, owned by the processing goroutine.

	// Sleep is called between wait_mem polls. The default sleeps for one
	// millisecond; tests install a zero-delay variant.
	Sleep func()

	rasterizer Rasterizer
	irq        IrqHandler
	fence      FenceSignaler
	mem        Memory

	mu       sync.Mutex
	submit   *sync.Cond
	complete *sync.Cond
	ring     [][]uint32
	busy     bool
	stop     bool
	done     chan struct{}
}

// NewLiverpool creates the command processor and starts its processing
// goroutine. Any collaborator may be nil; its side effects are then skipped,
// except memory, which stream packets may require.
func NewLiverpool(rast Rasterizer, irq IrqHandler, fence FenceSignaler, mem Memory) (lv *Liverpool) {
	lv = &Liverpool{
		Regs:       &Regs{},
		Sleep:      func() { time.Sleep(time.Millisecond) },
		rasterizer: rast,
		irq:        irq,
		fence:      fence,
		mem:        mem,
		done:       make(chan struct{}),
	}
	lv.submit = sync.NewCond(&lv.mu)
	lv.complete = sync.NewCond(&lv.mu)

	go lv.process()

	return
}

// Submit appends a command buffer to the ring and wakes the processing
// goroutine. It never blocks. The buffer must stay valid and unmodified
// until the queue drains. An empty buffer is a producer contract violation.
func (lv *Liverpool) Submit(dcb []uint32) {
	if len(dcb) == 0 {
		log.Panicf("liverpool: %v", ErrCmdListEmpty)
	}

	lv.mu.Lock()
	lv.ring = append(lv.ring, dcb)
	lv.mu.Unlock()
	lv.submit.Signal()
}

// WaitGpuIdle blocks until every submitted buffer has been fully processed.
// The drained condition is level triggered; waking re-checks it.
func (lv *Liverpool) WaitGpuIdle() {
	lv.mu.Lock()
	for len(lv.ring) != 0 || lv.busy {
		lv.complete.Wait()
	}
	lv.mu.Unlock()
}

// Close stops the processing goroutine and waits for it to exit. A buffer
// already being decoded completes first; queued buffers are not started.
func (lv *Liverpool) Close() (err error) {
	lv.mu.Lock()
	lv.stop = true
	lv.mu.Unlock()
	lv.submit.Signal()

	<-lv.done

	return
}

// process is the processing goroutine: wait for work, pop one buffer,
// decode it entirely, signal drain, repeat until stopped. The stop request
// is checked before every dequeue, never mid-buffer.
func (lv *Liverpool) process() {
	defer close(lv.done)

	for {
		lv.mu.Lock()
		for len(lv.ring) == 0 && !lv.stop {
			lv.submit.Wait()
		}
		if lv.stop {
			lv.mu.Unlock()
			return
		}
		dcb := lv.ring[0]
		lv.ring = lv.ring[1:]
		lv.busy = true
		lv.mu.Unlock()

		if err := lv.ProcessCmdList(dcb); err != nil {
			log.Panicf("liverpool: %v", err)
		}

		lv.mu.Lock()
		lv.busy = false
		if len(lv.ring) == 0 {
			lv.complete.Broadcast()
		}
		lv.mu.Unlock()
	}
}

// ProcessCmdList decodes one command buffer packet by packet until the
// cumulative consumed spans equal the buffer length exactly. Any malformed
// stream condition aborts with an error locating the offending packet.
func (lv *Liverpool) ProcessCmdList(dcb []uint32) (err error) {
	if len(dcb) == 0 {
		err = ErrCmdListEmpty
		return
	}

	var offset int
	for offset < len(dcb) {
		var n int
		n, err = lv.decodeOne(dcb[offset:])
		if err != nil {
			err = ErrStream{Offset: offset, Err: err}
			return
		}
		offset += n
	}

	return
}

// decodeOne decodes and applies the packet at the head of words, returning
// its span so the caller can advance.
func (lv *Liverpool) decodeOne(words []uint32) (n int, err error) {
	pkt, n, err := pm4.Decode(words)
	if err != nil {
		return
	}

	if lv.Verbose {
		log.Printf("liverpool: %v", pm4.Header(words[0]).Opcode())
	}

	switch p := pkt.(type) {
	case pm4.Nop:
		if p.Flip() {
			// There is no evidence the hardware CP derives flip events
			// from NOP packets; the producer patches this marker in as a
			// convenience convention.
			if lv.irq != nil {
				lv.irq.SignalFlip()
			}
		}

	case pm4.SetData:
		switch p.Op {
		case pm4.IT_SET_CONTEXT_REG:
			lv.Regs.Write(RANGE_CONTEXT, p.Offset, p.Values)
		case pm4.IT_SET_SH_REG:
			lv.Regs.Write(RANGE_SH, p.Offset, p.Values)
		case pm4.IT_SET_UCONFIG_REG:
			lv.Regs.Write(RANGE_UCONFIG, p.Offset, p.Values)
		case pm4.IT_SET_CONFIG_REG:
			// Config registers carry no state the emulator consumes.
		}

	case pm4.IndexType:
		lv.Regs.IndexBufferType = p.Raw

	case pm4.DrawIndex2:
		lv.Regs.MaxIndexSize = p.MaxSize
		lv.Regs.IndexBaseLo = p.BaseLo
		lv.Regs.IndexBaseHi = p.BaseHi
		lv.Regs.NumIndices = p.Count
		lv.Regs.DrawInitiator = p.Initiator
		if lv.rasterizer != nil {
			lv.rasterizer.DrawIndex()
		}

	case pm4.DrawIndexAuto:
		lv.Regs.NumIndices = p.Count
		lv.Regs.DrawInitiator = p.Initiator
		// The auto-index draw path is not wired to the rasterizer yet.

	case pm4.DispatchDirect:
		// Compute dispatch is not implemented; the span is consumed.

	case pm4.EventWrite:
		// Plain pipeline events carry no end-of-pipe signal.

	case pm4.EventWriteEop:
		if lv.fence != nil {
			lv.fence.SignalFence(FenceEvent{
				Address: p.Address(),
				Value:   p.Data(),
				DataSel: p.DataSel(),
				IntSel:  p.IntSel(),
			})
		}

	case pm4.EventWriteEos:
		if lv.fence != nil {
			ev := FenceEvent{Address: p.Address()}
			if p.Cmd() == pm4.EOS_CMD_STORE_DATA32 {
				ev.Value = uint64(p.Data)
				ev.DataSel = pm4.DATA_SEL_DATA32
			}
			lv.fence.SignalFence(ev)
		}

	case pm4.DmaData:
		// CP DMA transfer semantics are not implemented; span only.

	case pm4.WriteData:
		if p.DstSel() != pm4.WRITE_DST_TC_L2 && p.DstSel() != pm4.WRITE_DST_MEMORY {
			err = ErrWriteDataDst
			return
		}
		if p.WrOneAddr() {
			err = ErrWriteDataMode
			return
		}
		if lv.mem == nil {
			err = ErrNoMemory
			return
		}
		for i, value := range p.Values {
			lv.mem.Write32(p.Address()+uint64(i)*4, value)
		}

	case pm4.AcquireMem:
		// Cache/memory barrier semantics are not implemented; span only.

	case pm4.WaitRegMem:
		if p.Engine() != pm4.WAIT_ENGINE_ME {
			err = ErrWaitEngine
			return
		}
		if lv.mem == nil {
			err = ErrNoMemory
			return
		}
		// No timeout: an always-false predicate stalls the processing
		// goroutine, as it would stall the hardware.
		fn := p.Function()
		for !fn.Test(lv.mem.Read32(p.Address())&p.Mask, p.Ref) {
			lv.Sleep()
		}
	}

	return
}
