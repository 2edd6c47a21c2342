package amdgpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegs_Write(t *testing.T) {
	assert := assert.New(t)

	regs := &Regs{}
	regs.Write(RANGE_CONTEXT, 0x10, []uint32{0x11, 0x22})
	assert.Equal(uint32(0x11), regs.Word[ContextRegWordOffset+0x10])
	assert.Equal(uint32(0x22), regs.Word[ContextRegWordOffset+0x11])
	assert.Equal(uint32(0x11), regs.Read(RANGE_CONTEXT, 0x10))
}

func TestRegs_NoAliasing(t *testing.T) {
	assert := assert.New(t)

	regs := &Regs{}
	regs.Write(RANGE_CONTEXT, 0x4, []uint32{1})
	regs.Write(RANGE_SH, 0x4, []uint32{2})
	regs.Write(RANGE_UCONFIG, 0x4, []uint32{3})

	assert.Equal(uint32(1), regs.Read(RANGE_CONTEXT, 0x4))
	assert.Equal(uint32(2), regs.Read(RANGE_SH, 0x4))
	assert.Equal(uint32(3), regs.Read(RANGE_UCONFIG, 0x4))
}

func TestRegs_RangesDisjoint(t *testing.T) {
	assert := assert.New(t)

	ranges := []RegRange{RANGE_CONTEXT, RANGE_SH, RANGE_UCONFIG}
	for _, a := range ranges {
		abase, acount := a.span()
		assert.LessOrEqual(abase+acount, NumRegWords)
		for _, b := range ranges {
			if a == b {
				continue
			}
			bbase, bcount := b.span()
			disjoint := abase+acount <= bbase || bbase+bcount <= abase
			assert.True(disjoint, "%v overlaps %v", a, b)
		}
	}
}

func TestRegs_WriteOverflow(t *testing.T) {
	assert := assert.New(t)

	regs := &Regs{}
	assert.Panics(func() {
		regs.Write(RANGE_SH, ShRegWordCount-1, []uint32{1, 2})
	})
	assert.Panics(func() {
		regs.Read(RANGE_UCONFIG, UconfigRegWordCount)
	})
	assert.Panics(func() {
		regs.Write(RegRange(5), 0, []uint32{1})
	})
}

func TestRegs_IndexBase(t *testing.T) {
	assert := assert.New(t)

	regs := &Regs{IndexBaseLo: 0x2345_6780, IndexBaseHi: 0x1}
	assert.Equal(uint64(0x1_2345_6780), regs.IndexBase())
}

func TestRegs_Reset(t *testing.T) {
	assert := assert.New(t)

	regs := &Regs{}
	regs.Write(RANGE_CONTEXT, 0, []uint32{1})
	regs.NumIndices = 3
	regs.DrawInitiator = 2
	regs.Reset()
	assert.Equal(uint32(0), regs.Read(RANGE_CONTEXT, 0))
	assert.Equal(uint32(0), regs.NumIndices)
	assert.Equal(uint32(0), regs.DrawInitiator)
}
