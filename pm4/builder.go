package pm4

// Packet constructors for the producer side. Each returns the encoded words
// of one packet, header first, ready to be concatenated into a command
// buffer.

// MakeNop builds a NOP packet. Without arguments a minimum one-word payload
// is emitted.
func MakeNop(payload ...uint32) []uint32 {
	if len(payload) == 0 {
		payload = []uint32{0}
	}
	return append([]uint32{uint32(MakeHeader(IT_NOP, len(payload)))}, payload...)
}

// MakeFlip builds the patched NOP marking a framebuffer flip boundary.
func MakeFlip() []uint32 {
	return MakeNop(NOP_PAYLOAD_FLIP, 0)
}

func makeSetData(op ItOpcode, offset uint32, values []uint32) []uint32 {
	words := []uint32{uint32(MakeHeader(op, len(values)+1)), offset & 0xffff}
	return append(words, values...)
}

// MakeSetContextReg builds a context register write at a word offset within
// the context range.
func MakeSetContextReg(offset uint32, values ...uint32) []uint32 {
	return makeSetData(IT_SET_CONTEXT_REG, offset, values)
}

// MakeSetShReg builds a shader register write.
func MakeSetShReg(offset uint32, values ...uint32) []uint32 {
	return makeSetData(IT_SET_SH_REG, offset, values)
}

// MakeSetUconfigReg builds a user-config register write.
func MakeSetUconfigReg(offset uint32, values ...uint32) []uint32 {
	return makeSetData(IT_SET_UCONFIG_REG, offset, values)
}

// MakeSetConfigReg builds a config register write.
func MakeSetConfigReg(offset uint32, values ...uint32) []uint32 {
	return makeSetData(IT_SET_CONFIG_REG, offset, values)
}

// MakeIndexType builds an index-buffer format update.
func MakeIndexType(raw uint32) []uint32 {
	return []uint32{uint32(MakeHeader(IT_INDEX_TYPE, 1)), raw}
}

// MakeDrawIndex2 builds an indexed draw from an index buffer at base.
func MakeDrawIndex2(base uint64, count, maxSize, initiator uint32) []uint32 {
	return []uint32{
		uint32(MakeHeader(IT_DRAW_INDEX_2, 5)),
		maxSize,
		uint32(base),
		uint32(base >> 32),
		count,
		initiator,
	}
}

// MakeDrawIndexAuto builds an auto-generated-index draw.
func MakeDrawIndexAuto(count, initiator uint32) []uint32 {
	return []uint32{uint32(MakeHeader(IT_DRAW_INDEX_AUTO, 2)), count, initiator}
}

// MakeDispatchDirect builds a compute dispatch.
func MakeDispatchDirect(x, y, z, initiator uint32) []uint32 {
	return []uint32{uint32(MakeHeader(IT_DISPATCH_DIRECT, 4)), x, y, z, initiator}
}

// MakeEventWrite builds a plain pipeline event.
func MakeEventWrite(eventCntl uint32) []uint32 {
	return []uint32{uint32(MakeHeader(IT_EVENT_WRITE, 1)), eventCntl}
}

// MakeEventWriteEop builds an end-of-pipe event writing data at addr per
// dataSel, raising an interrupt per intSel.
func MakeEventWriteEop(addr uint64, data uint64, dataSel, intSel uint32) []uint32 {
	return []uint32{
		uint32(MakeHeader(IT_EVENT_WRITE_EOP, 5)),
		0,
		uint32(addr),
		uint32(addr>>32)&0xffff | (intSel&0x3)<<24 | (dataSel&0x7)<<29,
		uint32(data),
		uint32(data >> 32),
	}
}

// MakeEventWriteEos builds an end-of-shader event storing a 32-bit value at
// addr.
func MakeEventWriteEos(addr uint64, data uint32) []uint32 {
	return []uint32{
		uint32(MakeHeader(IT_EVENT_WRITE_EOS, 4)),
		0,
		uint32(addr),
		uint32(addr>>32)&0xffff | EOS_CMD_STORE_DATA32<<29,
		data,
	}
}

// MakeWriteData builds a memory write of values at addr through the dstSel
// target.
func MakeWriteData(dstSel uint32, addr uint64, values ...uint32) []uint32 {
	words := []uint32{
		uint32(MakeHeader(IT_WRITE_DATA, len(values)+3)),
		(dstSel & 0xf) << 8,
		uint32(addr),
		uint32(addr >> 32),
	}
	return append(words, values...)
}

// MakeWaitRegMem builds a memory-space poll on the graphics engine:
// wait until (mem[addr] & mask) fn ref.
func MakeWaitRegMem(fn WaitFunc, addr uint64, ref, mask uint32) []uint32 {
	const memSpace = uint32(1)
	return []uint32{
		uint32(MakeHeader(IT_WAIT_REG_MEM, 6)),
		uint32(fn)&0x7 | memSpace<<4 | WAIT_ENGINE_ME<<8,
		uint32(addr),
		uint32(addr >> 32),
		ref,
		mask,
		10, // poll interval, unused by the processor
	}
}

// MakeDmaData builds a CP DMA request. Transfer semantics are not
// implemented by the processor; the packet is span-only.
func MakeDmaData() []uint32 {
	return append([]uint32{uint32(MakeHeader(IT_DMA_DATA, 6))}, make([]uint32, 6)...)
}

// MakeAcquireMem builds a coherency barrier. Span-only for the processor.
func MakeAcquireMem() []uint32 {
	return append([]uint32{uint32(MakeHeader(IT_ACQUIRE_MEM, 6))}, make([]uint32, 6)...)
}
