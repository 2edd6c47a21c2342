package amdgpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
)

// Register word-space layout. Offsets are in 32-bit words within the flat
// register array; the three ranges are disjoint by construction.
const (
	ShRegWordOffset      = uint32(0x2C00) // Shader register base.
	ShRegWordCount       = uint32(0x0400)
	ContextRegWordOffset = uint32(0xA000) // Context register base.
	ContextRegWordCount  = uint32(0x2000)
	UconfigRegWordOffset = uint32(0xC000) // User-config register base.
	UconfigRegWordCount  = uint32(0x1000)
	NumRegWords          = uint32(0xD000) // Total register words.
)

// RegRange names one of the disjoint register address ranges.
type RegRange int

//go:generate go tool stringer -linecomment -type=RegRange
const (
	RANGE_CONTEXT = RegRange(0) // context
	RANGE_SH      = RegRange(1) // sh
	RANGE_UCONFIG = RegRange(2) // uconfig
)

// span returns the base word offset and capacity of the range.
func (rng RegRange) span() (base, count uint32) {
	switch rng {
	case RANGE_CONTEXT:
		return ContextRegWordOffset, ContextRegWordCount
	case RANGE_SH:
		return ShRegWordOffset, ShRegWordCount
	case RANGE_UCONFIG:
		return UconfigRegWordOffset, UconfigRegWordCount
	}
	log.Panicf("amdgpu: unknown register range %d", int(rng))
	return
}

// Regs is the GPU register file: a flat word array addressed through the
// named ranges, plus the fixed-function draw state the command processor
// maintains for the rasterizer. Mutated only by the processing thread, one
// packet at a time; external readers must drain the queue first.
type Regs struct {
	Word [NumRegWords]uint32 // Flat register array.

	IndexBaseLo     uint32 // Index buffer base address, low half.
	IndexBaseHi     uint32 // Index buffer base address, high half.
	IndexBufferType uint32 // Index buffer format.
	MaxIndexSize    uint32 // Maximum index count fitting the buffer.
	NumIndices      uint32 // Index count of the current draw.
	DrawInitiator   uint32 // Draw initiator field of the current draw.
}

// Reset clears the register file.
func (regs *Regs) Reset() {
	clear(regs.Word[:])
	regs.IndexBaseLo = 0
	regs.IndexBaseHi = 0
	regs.IndexBufferType = 0
	regs.MaxIndexSize = 0
	regs.NumIndices = 0
	regs.DrawInitiator = 0
}

// Write copies a contiguous run of words into the addressed range starting
// at offset. An overflowing write indicates a malformed or unsupported
// command stream and panics.
func (regs *Regs) Write(rng RegRange, offset uint32, words []uint32) {
	base, count := rng.span()
	if offset+uint32(len(words)) > count {
		log.Panicf("amdgpu: %v register write [%#x..%#x) exceeds range size %#x",
			rng, offset, offset+uint32(len(words)), count)
	}
	copy(regs.Word[base+offset:], words)
}

// Read returns one word of the addressed range.
func (regs *Regs) Read(rng RegRange, offset uint32) uint32 {
	base, count := rng.span()
	if offset >= count {
		log.Panicf("amdgpu: %v register read %#x exceeds range size %#x",
			rng, offset, count)
	}
	return regs.Word[base+offset]
}

// IndexBase returns the combined index buffer base address.
func (regs *Regs) IndexBase() uint64 {
	return uint64(regs.IndexBaseLo) | (uint64(regs.IndexBaseHi) << 32)
}

var _regs_defines = map[string]string{
	"CONTEXT_BASE": fmt.Sprintf("%#x", ContextRegWordOffset),
	"SH_BASE":      fmt.Sprintf("%#x", ShRegWordOffset),
	"UCONFIG_BASE": fmt.Sprintf("%#x", UconfigRegWordOffset),
}

// Defines returns the register layout constants as assembler predefines.
func Defines() iter.Seq2[string, string] {
	return maps.All(_regs_defines)
}
