package pm4

import (
	"errors"
)

// Packet is a single decoded PM4 packet. The concrete type identifies the
// opcode; fields hold the payload words already pulled apart, so no caller
// ever reinterprets raw stream memory.
type Packet interface {
	packet()
}

// Nop carries an opaque payload. The first payload word may hold a
// producer-side marker such as NOP_PAYLOAD_FLIP.
type Nop struct {
	Payload []uint32
}

// Flip reports whether this NOP marks a framebuffer flip boundary.
// A minimum-size NOP (raw count zero) never does.
func (nop Nop) Flip() bool {
	return len(nop.Payload) > 1 && nop.Payload[0] == NOP_PAYLOAD_FLIP
}

// SetData writes a run of words into one of the register ranges. Op selects
// the range (IT_SET_CONTEXT_REG, IT_SET_SH_REG, IT_SET_UCONFIG_REG or
// IT_SET_CONFIG_REG).
type SetData struct {
	Op     ItOpcode
	Offset uint32
	Values []uint32
}

// IndexType updates the index-buffer format register.
type IndexType struct {
	Raw uint32
}

// DrawIndex2 is an indexed draw from an index buffer in memory.
type DrawIndex2 struct {
	MaxSize   uint32
	BaseLo    uint32
	BaseHi    uint32
	Count     uint32
	Initiator uint32
}

// DrawIndexAuto is a draw with auto-generated indices.
type DrawIndexAuto struct {
	Count     uint32
	Initiator uint32
}

// DispatchDirect is a compute dispatch with inline dimensions.
type DispatchDirect struct {
	DimX      uint32
	DimY      uint32
	DimZ      uint32
	Initiator uint32
}

// EventWrite is a plain pipeline event with no end-of-pipe signal.
type EventWrite struct {
	Payload []uint32
}

// EventWriteEop signals an end-of-pipe event, optionally writing a fence
// value to memory and raising an interrupt.
type EventWriteEop struct {
	EventCntl uint32
	AddressLo uint32
	AddressHi uint32
	DataLo    uint32
	DataHi    uint32
}

// Address returns the fence write address.
func (ev EventWriteEop) Address() uint64 {
	return uint64(ev.AddressLo) | (uint64(ev.AddressHi&0xffff) << 32)
}

// DataSel returns the fence data selector (DATA_SEL_*).
func (ev EventWriteEop) DataSel() uint32 {
	return (ev.AddressHi >> 29) & 0x7
}

// IntSel returns the interrupt selector (INT_SEL_*).
func (ev EventWriteEop) IntSel() uint32 {
	return (ev.AddressHi >> 24) & 0x3
}

// Data returns the 64-bit fence value.
func (ev EventWriteEop) Data() uint64 {
	return uint64(ev.DataLo) | (uint64(ev.DataHi) << 32)
}

// EOS command field value requesting a 32-bit data store.
const EOS_CMD_STORE_DATA32 = uint32(2)

// EventWriteEos signals an end-of-shader event.
type EventWriteEos struct {
	EventCntl uint32
	AddressLo uint32
	AddressHi uint32
	Data      uint32
}

// Address returns the signal write address.
func (ev EventWriteEos) Address() uint64 {
	return uint64(ev.AddressLo) | (uint64(ev.AddressHi&0xffff) << 32)
}

// Cmd returns the end-of-shader command field.
func (ev EventWriteEos) Cmd() uint32 {
	return (ev.AddressHi >> 29) & 0x7
}

// WriteData copies the payload words to a destination address.
type WriteData struct {
	Control   uint32
	AddressLo uint32
	AddressHi uint32
	Values    []uint32
}

// DstSel returns the destination selector (WRITE_DST_*).
func (wd WriteData) DstSel() uint32 {
	return (wd.Control >> 8) & 0xf
}

// WrOneAddr reports whether every word goes to the same address.
func (wd WriteData) WrOneAddr() bool {
	return (wd.Control>>16)&1 != 0
}

// Address returns the destination address.
func (wd WriteData) Address() uint64 {
	return uint64(wd.AddressLo) | (uint64(wd.AddressHi) << 32)
}

// DmaData is a CP DMA transfer request.
type DmaData struct {
	Payload []uint32
}

// AcquireMem is a cache/memory coherency barrier.
type AcquireMem struct {
	Payload []uint32
}

// WaitRegMem stalls the command processor until a memory or register
// comparison holds.
type WaitRegMem struct {
	Control      uint32
	PollAddrLo   uint32
	PollAddrHi   uint32
	Ref          uint32
	Mask         uint32
	PollInterval uint32
}

// Function returns the comparison function.
func (wrm WaitRegMem) Function() WaitFunc {
	return WaitFunc(wrm.Control & 0x7)
}

// MemSpace returns 0 for register space, 1 for memory space.
func (wrm WaitRegMem) MemSpace() uint32 {
	return (wrm.Control >> 4) & 0x3
}

// Engine returns the requesting engine (WAIT_ENGINE_*).
func (wrm WaitRegMem) Engine() uint32 {
	return (wrm.Control >> 8) & 0x1
}

// Address returns the polled memory address.
func (wrm WaitRegMem) Address() uint64 {
	return uint64(wrm.PollAddrLo) | (uint64(wrm.PollAddrHi) << 32)
}

func (Nop) packet()            {}
func (SetData) packet()        {}
func (IndexType) packet()      {}
func (DrawIndex2) packet()     {}
func (DrawIndexAuto) packet()  {}
func (DispatchDirect) packet() {}
func (EventWrite) packet()     {}
func (EventWriteEop) packet()  {}
func (EventWriteEos) packet()  {}
func (WriteData) packet()      {}
func (DmaData) packet()        {}
func (AcquireMem) packet()     {}
func (WaitRegMem) packet()     {}

// Decode identifies the packet at the start of words and returns its tagged
// value and total span n in words, header included. The caller advances by n
// and calls again; a packet whose span exceeds the remaining stream, an
// unknown packet type, or an unknown opcode is a stream-consistency error.
func Decode(words []uint32) (pkt Packet, n int, err error) {
	if len(words) == 0 {
		err = ErrStreamEmpty
		return
	}

	header := Header(words[0])
	if header.Type() != 3 {
		err = ErrPacketType(header.Type())
		return
	}

	n = header.NumWords() + 1
	opErr := ErrItOpcode{Opcode: header.Opcode(), Count: header.CountRaw()}
	if n > len(words) {
		err = errors.Join(ErrPacketShort, opErr)
		return
	}

	payload := words[1:n]
	need := func(ndw int) bool {
		if len(payload) < ndw {
			err = errors.Join(ErrPacketCount, opErr)
			return false
		}
		return true
	}

	switch header.Opcode() {
	case IT_NOP:
		pkt = Nop{Payload: payload}
	case IT_SET_CONTEXT_REG, IT_SET_SH_REG, IT_SET_UCONFIG_REG, IT_SET_CONFIG_REG:
		if !need(2) {
			return
		}
		pkt = SetData{
			Op:     header.Opcode(),
			Offset: payload[0] & 0xffff,
			Values: payload[1:],
		}
	case IT_INDEX_TYPE:
		if !need(1) {
			return
		}
		pkt = IndexType{Raw: payload[0]}
	case IT_DRAW_INDEX_2:
		if !need(5) {
			return
		}
		pkt = DrawIndex2{
			MaxSize:   payload[0],
			BaseLo:    payload[1],
			BaseHi:    payload[2],
			Count:     payload[3],
			Initiator: payload[4],
		}
	case IT_DRAW_INDEX_AUTO:
		if !need(2) {
			return
		}
		pkt = DrawIndexAuto{Count: payload[0], Initiator: payload[1]}
	case IT_DISPATCH_DIRECT:
		if !need(4) {
			return
		}
		pkt = DispatchDirect{
			DimX:      payload[0],
			DimY:      payload[1],
			DimZ:      payload[2],
			Initiator: payload[3],
		}
	case IT_EVENT_WRITE:
		pkt = EventWrite{Payload: payload}
	case IT_EVENT_WRITE_EOP:
		if !need(5) {
			return
		}
		pkt = EventWriteEop{
			EventCntl: payload[0],
			AddressLo: payload[1],
			AddressHi: payload[2],
			DataLo:    payload[3],
			DataHi:    payload[4],
		}
	case IT_EVENT_WRITE_EOS:
		if !need(4) {
			return
		}
		pkt = EventWriteEos{
			EventCntl: payload[0],
			AddressLo: payload[1],
			AddressHi: payload[2],
			Data:      payload[3],
		}
	case IT_WRITE_DATA:
		if !need(4) {
			return
		}
		pkt = WriteData{
			Control:   payload[0],
			AddressLo: payload[1],
			AddressHi: payload[2],
			Values:    payload[3:],
		}
	case IT_DMA_DATA:
		if !need(6) {
			return
		}
		pkt = DmaData{Payload: payload}
	case IT_ACQUIRE_MEM:
		if !need(6) {
			return
		}
		pkt = AcquireMem{Payload: payload}
	case IT_WAIT_REG_MEM:
		if !need(6) {
			return
		}
		pkt = WaitRegMem{
			Control:      payload[0],
			PollAddrLo:   payload[1],
			PollAddrHi:   payload[2],
			Ref:          payload[3],
			Mask:         payload[4],
			PollInterval: payload[5],
		}
	default:
		err = opErr
	}

	return
}
