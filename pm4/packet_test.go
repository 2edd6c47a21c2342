package pm4

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeader(t *testing.T) {
	assert := assert.New(t)

	h := MakeHeader(IT_SET_CONTEXT_REG, 3)
	assert.Equal(3, h.Type())
	assert.Equal(IT_SET_CONTEXT_REG, h.Opcode())
	assert.Equal(2, h.CountRaw())
	assert.Equal(3, h.NumWords())

	assert.Panics(func() { MakeHeader(IT_NOP, 0) })
}

func TestDecode_Nop(t *testing.T) {
	assert := assert.New(t)

	pkt, n, err := Decode(MakeNop())
	assert.NoError(err)
	assert.Equal(2, n)
	nop, ok := pkt.(Nop)
	assert.True(ok)
	assert.False(nop.Flip())

	// A flip marker in a minimum-size NOP is not recognized.
	pkt, _, err = Decode(MakeNop(NOP_PAYLOAD_FLIP))
	assert.NoError(err)
	assert.False(pkt.(Nop).Flip())

	pkt, n, err = Decode(MakeFlip())
	assert.NoError(err)
	assert.Equal(3, n)
	assert.True(pkt.(Nop).Flip())
}

func TestDecode_SetData(t *testing.T) {
	assert := assert.New(t)

	pkt, n, err := Decode(MakeSetContextReg(0x10, 0x11, 0x22))
	assert.NoError(err)
	assert.Equal(4, n)
	set, ok := pkt.(SetData)
	assert.True(ok)
	assert.Equal(IT_SET_CONTEXT_REG, set.Op)
	assert.Equal(uint32(0x10), set.Offset)
	assert.Equal([]uint32{0x11, 0x22}, set.Values)

	pkt, _, err = Decode(MakeSetShReg(0x4, 0x1))
	assert.NoError(err)
	assert.Equal(IT_SET_SH_REG, pkt.(SetData).Op)

	pkt, _, err = Decode(MakeSetUconfigReg(0x8, 0x2))
	assert.NoError(err)
	assert.Equal(IT_SET_UCONFIG_REG, pkt.(SetData).Op)
}

func TestDecode_DrawIndex2(t *testing.T) {
	assert := assert.New(t)

	pkt, n, err := Decode(MakeDrawIndex2(0x1_2345_6780, 6, 8, 2))
	assert.NoError(err)
	assert.Equal(6, n)
	draw, ok := pkt.(DrawIndex2)
	assert.True(ok)
	assert.Equal(uint32(0x2345_6780), draw.BaseLo)
	assert.Equal(uint32(0x1), draw.BaseHi)
	assert.Equal(uint32(6), draw.Count)
	assert.Equal(uint32(8), draw.MaxSize)
	assert.Equal(uint32(2), draw.Initiator)
}

func TestDecode_EventWriteEop(t *testing.T) {
	assert := assert.New(t)

	pkt, n, err := Decode(MakeEventWriteEop(0x8_0000_1000, 0xcafe_d00d_f00d_0001, DATA_SEL_DATA64, INT_SEL_IRQ))
	assert.NoError(err)
	assert.Equal(7, n)
	eop, ok := pkt.(EventWriteEop)
	assert.True(ok)
	assert.Equal(uint64(0x8_0000_1000), eop.Address())
	assert.Equal(uint64(0xcafe_d00d_f00d_0001), eop.Data())
	assert.Equal(DATA_SEL_DATA64, eop.DataSel())
	assert.Equal(INT_SEL_IRQ, eop.IntSel())
}

func TestDecode_EventWriteEos(t *testing.T) {
	assert := assert.New(t)

	pkt, _, err := Decode(MakeEventWriteEos(0x2000, 0x55))
	assert.NoError(err)
	eos, ok := pkt.(EventWriteEos)
	assert.True(ok)
	assert.Equal(uint64(0x2000), eos.Address())
	assert.Equal(EOS_CMD_STORE_DATA32, eos.Cmd())
	assert.Equal(uint32(0x55), eos.Data)
}

func TestDecode_WriteData(t *testing.T) {
	assert := assert.New(t)

	pkt, n, err := Decode(MakeWriteData(WRITE_DST_MEMORY, 0x3000, 1, 2, 3))
	assert.NoError(err)
	assert.Equal(7, n)
	wd, ok := pkt.(WriteData)
	assert.True(ok)
	assert.Equal(WRITE_DST_MEMORY, wd.DstSel())
	assert.False(wd.WrOneAddr())
	assert.Equal(uint64(0x3000), wd.Address())
	assert.Equal([]uint32{1, 2, 3}, wd.Values)
}

func TestDecode_WaitRegMem(t *testing.T) {
	assert := assert.New(t)

	pkt, n, err := Decode(MakeWaitRegMem(WAIT_GE, 0x4000, 7, 0xff))
	assert.NoError(err)
	assert.Equal(7, n)
	wrm, ok := pkt.(WaitRegMem)
	assert.True(ok)
	assert.Equal(WAIT_GE, wrm.Function())
	assert.Equal(WAIT_ENGINE_ME, wrm.Engine())
	assert.Equal(uint32(1), wrm.MemSpace())
	assert.Equal(uint64(0x4000), wrm.Address())
	assert.Equal(uint32(7), wrm.Ref)
	assert.Equal(uint32(0xff), wrm.Mask)
}

func TestDecode_SpanExact(t *testing.T) {
	assert := assert.New(t)

	var buf []uint32
	buf = append(buf, MakeNop()...)
	buf = append(buf, MakeSetContextReg(0x10, 1, 2, 3)...)
	buf = append(buf, MakeIndexType(2)...)
	buf = append(buf, MakeDrawIndexAuto(3, 2)...)
	buf = append(buf, MakeDispatchDirect(1, 1, 1, 0)...)
	buf = append(buf, MakeDmaData()...)
	buf = append(buf, MakeAcquireMem()...)
	buf = append(buf, MakeEventWrite(0x4)...)

	var total int
	for total < len(buf) {
		_, n, err := Decode(buf[total:])
		assert.NoError(err)
		assert.Greater(n, 0)
		total += n
	}
	assert.Equal(len(buf), total)
}

func TestDecode_Errors(t *testing.T) {
	assert := assert.New(t)

	_, _, err := Decode(nil)
	assert.ErrorIs(err, ErrStreamEmpty)

	// Packet type 0.
	_, _, err = Decode([]uint32{0x0000_0000})
	assert.ErrorIs(err, ErrPacketType(0))

	// Unknown type 3 opcode.
	_, _, err = Decode([]uint32{uint32(MakeHeader(ItOpcode(0xff), 1)), 0})
	assert.ErrorIs(err, ErrItOpcode{})

	// Span exceeds the stream.
	short := MakeSetContextReg(0x10, 1, 2, 3)
	_, _, err = Decode(short[:2])
	assert.ErrorIs(err, ErrPacketShort)

	// Count too small for the opcode layout.
	_, _, err = Decode([]uint32{uint32(MakeHeader(IT_DRAW_INDEX_2, 2)), 0, 0})
	assert.ErrorIs(err, ErrPacketCount)
}

func TestWaitFunc_Test(t *testing.T) {
	assert := assert.New(t)

	assert.True(WAIT_ALWAYS.Test(0, 99))
	assert.True(WAIT_LT.Test(1, 2))
	assert.False(WAIT_LT.Test(2, 2))
	assert.True(WAIT_LE.Test(2, 2))
	assert.True(WAIT_EQ.Test(5, 5))
	assert.False(WAIT_EQ.Test(5, 6))
	assert.True(WAIT_NE.Test(5, 6))
	assert.True(WAIT_GE.Test(6, 6))
	assert.True(WAIT_GT.Test(7, 6))
	assert.False(WAIT_GT.Test(6, 6))
	assert.False(WaitFunc(7).Test(1, 1))
}

func TestBytesWords(t *testing.T) {
	assert := assert.New(t)

	buf := MakeSetContextReg(0x10, 0xdead_beef)
	data := Bytes(buf)
	assert.Equal(len(buf)*4, len(data))
	// Little-endian word order.
	assert.Equal(byte(0xef), data[8])

	words, err := Words(data)
	assert.NoError(err)
	assert.Equal(buf, words)

	_, err = Words(data[:5])
	assert.ErrorIs(err, ErrBufferAlign)
}
