package pm4

import (
	"fmt"
	"iter"
	"maps"
)

// ItOpcode is a PM4 type 3 packet opcode.
type ItOpcode int

//go:generate go tool stringer -linecomment -type=ItOpcode
const (
	IT_NOP             = ItOpcode(0x10) // nop
	IT_DISPATCH_DIRECT = ItOpcode(0x15) // dispatch
	IT_DRAW_INDEX_2    = ItOpcode(0x27) // draw_index
	IT_INDEX_TYPE      = ItOpcode(0x2a) // index_type
	IT_DRAW_INDEX_AUTO = ItOpcode(0x2d) // draw_auto
	IT_WRITE_DATA      = ItOpcode(0x37) // write_data
	IT_WAIT_REG_MEM    = ItOpcode(0x3c) // wait_mem
	IT_EVENT_WRITE     = ItOpcode(0x46) // event
	IT_EVENT_WRITE_EOP = ItOpcode(0x47) // event_eop
	IT_EVENT_WRITE_EOS = ItOpcode(0x48) // event_eos
	IT_DMA_DATA        = ItOpcode(0x50) // dma_data
	IT_ACQUIRE_MEM     = ItOpcode(0x58) // acquire_mem
	IT_SET_CONFIG_REG  = ItOpcode(0x68) // set_config
	IT_SET_CONTEXT_REG = ItOpcode(0x69) // set_context
	IT_SET_SH_REG      = ItOpcode(0x76) // set_sh
	IT_SET_UCONFIG_REG = ItOpcode(0x79) // set_uconfig
)

// NOP_PAYLOAD_FLIP is the reserved first payload word of a NOP packet that
// the producer patches in to mark a framebuffer flip boundary.
const NOP_PAYLOAD_FLIP = uint32(0x68750776)

// WaitFunc is the wait_reg_mem comparison function.
type WaitFunc int

//go:generate go tool stringer -linecomment -type=WaitFunc
const (
	WAIT_ALWAYS = WaitFunc(0) // always
	WAIT_LT     = WaitFunc(1) // lt
	WAIT_LE     = WaitFunc(2) // le
	WAIT_EQ     = WaitFunc(3) // eq
	WAIT_NE     = WaitFunc(4) // ne
	WAIT_GE     = WaitFunc(5) // ge
	WAIT_GT     = WaitFunc(6) // gt
)

// Test evaluates the comparison against a masked memory value.
func (wf WaitFunc) Test(value, ref uint32) bool {
	switch wf {
	case WAIT_ALWAYS:
		return true
	case WAIT_LT:
		return value < ref
	case WAIT_LE:
		return value <= ref
	case WAIT_EQ:
		return value == ref
	case WAIT_NE:
		return value != ref
	case WAIT_GE:
		return value >= ref
	case WAIT_GT:
		return value > ref
	}
	return false
}

// wait_reg_mem requesting engines.
const (
	WAIT_ENGINE_ME  = uint32(0) // micro engine (graphics)
	WAIT_ENGINE_PFP = uint32(1) // prefetch parser
)

// write_data destination selectors accepted by the processor.
const (
	WRITE_DST_TC_L2  = uint32(2) // memory through the TC L2 cache
	WRITE_DST_MEMORY = uint32(5) // memory (async)
)

// event_write_eop data selectors.
const (
	DATA_SEL_NONE      = uint32(0)
	DATA_SEL_DATA32    = uint32(1)
	DATA_SEL_DATA64    = uint32(2)
	DATA_SEL_TIMESTAMP = uint32(3)
)

// event_write_eop interrupt selectors.
const (
	INT_SEL_NONE         = uint32(0)
	INT_SEL_IRQ          = uint32(1)
	INT_SEL_IRQ_ON_WRITE = uint32(2)
)

// Header is the first word of every PM4 packet.
type Header uint32

// MakeHeader builds a type 3 header for a packet with ndw payload words.
// Every type 3 packet carries at least one payload word.
func MakeHeader(op ItOpcode, ndw int) Header {
	if ndw < 1 {
		panic("pm4: type 3 packet needs at least one payload word")
	}
	return Header((3 << 30) | (uint32(ndw-1) << 16) | (uint32(op) << 8))
}

// Type returns the packet type discriminant.
func (h Header) Type() int {
	return int((uint32(h) >> 30) & 0x3)
}

// Opcode returns the type 3 IT opcode.
func (h Header) Opcode() ItOpcode {
	return ItOpcode((uint32(h) >> 8) & 0xff)
}

// CountRaw returns the raw 14-bit count field.
func (h Header) CountRaw() int {
	return int((uint32(h) >> 16) & 0x3fff)
}

// NumWords returns the number of payload words that follow the header.
func (h Header) NumWords() int {
	return h.CountRaw() + 1
}

var _pm4_defines = map[string]string{
	"NOP_FLIP":    fmt.Sprintf("%#x", NOP_PAYLOAD_FLIP),
	"DST_TC_L2":   fmt.Sprintf("%v", WRITE_DST_TC_L2),
	"DST_MEMORY":  fmt.Sprintf("%v", WRITE_DST_MEMORY),
	"DATA_SEL_32": fmt.Sprintf("%v", DATA_SEL_DATA32),
	"DATA_SEL_64": fmt.Sprintf("%v", DATA_SEL_DATA64),
	"INT_SEL_IRQ": fmt.Sprintf("%v", INT_SEL_IRQ),
}

// Defines returns the wire-format constants as assembler predefines.
func Defines() iter.Seq2[string, string] {
	return maps.All(_pm4_defines)
}
