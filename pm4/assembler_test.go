package pm4

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func doParse(t *testing.T, lines ...string) ([]uint32, error) {
	t.Helper()

	asm := &Assembler{}
	return asm.Parse(strings.NewReader(strings.Join(lines, "\n")))
}

func TestAssembler_Listing(t *testing.T) {
	assert := assert.New(t)

	buf, err := doParse(t,
		"; register setup",
		".equ CB_COLOR0_BASE 0x318",
		"set_context CB_COLOR0_BASE 0x11 0x22",
		"index_type 2",
		"draw_index 0x1000 6",
		"flip",
	)
	assert.NoError(err)

	var want []uint32
	want = append(want, MakeSetContextReg(0x318, 0x11, 0x22)...)
	want = append(want, MakeIndexType(2)...)
	want = append(want, MakeDrawIndex2(0x1000, 6, 6, 0)...)
	want = append(want, MakeFlip()...)
	assert.Equal(want, buf)
}

func TestAssembler_Expression(t *testing.T) {
	assert := assert.New(t)

	buf, err := doParse(t,
		".equ BASE 0x100",
		"set_sh $(BASE + 0x10) $(1 << 4)",
	)
	assert.NoError(err)
	assert.Equal(MakeSetShReg(0x110, 0x10), buf)
}

func TestAssembler_Predefine(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("NOP_FLIP", "0x68750776")
	buf, err := asm.Parse(strings.NewReader("nop NOP_FLIP 0"))
	assert.NoError(err)
	assert.Equal(MakeFlip(), buf)
}

func TestAssembler_WaitMem(t *testing.T) {
	assert := assert.New(t)

	buf, err := doParse(t, "wait_mem eq 0x2000 5 0xff")
	assert.NoError(err)
	assert.Equal(MakeWaitRegMem(WAIT_EQ, 0x2000, 5, 0xff), buf)

	buf, err = doParse(t, "wait_mem ge 0x2000 5")
	assert.NoError(err)
	assert.Equal(MakeWaitRegMem(WAIT_GE, 0x2000, 5, 0xffffffff), buf)

	_, err = doParse(t, "wait_mem sideways 0x2000 5")
	assert.ErrorIs(err, ErrParseNumber("sideways"))
}

func TestAssembler_Events(t *testing.T) {
	assert := assert.New(t)

	buf, err := doParse(t,
		"event_eop 0x4000 0xabcd 2 1",
		"event_eos 0x4010 7",
		"write_data DST 0x4020 1 2",
		".equ DST 5",
	)
	// Equates are single pass; DST must be defined before use.
	assert.Error(err)

	buf, err = doParse(t,
		".equ DST 5",
		"event_eop 0x4000 0xabcd 2 1",
		"event_eos 0x4010 7",
		"write_data DST 0x4020 1 2",
	)
	assert.NoError(err)

	var want []uint32
	want = append(want, MakeEventWriteEop(0x4000, 0xabcd, DATA_SEL_DATA64, INT_SEL_IRQ)...)
	want = append(want, MakeEventWriteEos(0x4010, 7)...)
	want = append(want, MakeWriteData(WRITE_DST_MEMORY, 0x4020, 1, 2)...)
	assert.Equal(want, buf)
}

func TestAssembler_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := doParse(t, "warp_drive 1 2")
	assert.ErrorIs(err, ErrMnemonic("warp_drive"))
	syntax, ok := err.(ErrSyntax)
	assert.True(ok)
	assert.Equal(1, syntax.LineNo)

	_, err = doParse(t, ".equ A 1", ".equ A 2")
	assert.ErrorIs(err, ErrEquateDuplicate)

	_, err = doParse(t, ".equ A")
	assert.ErrorIs(err, ErrEquateSyntax)

	_, err = doParse(t, "index_type banana")
	assert.ErrorIs(err, ErrParseNumber("banana"))

	_, err = doParse(t, "index_type")
	assert.ErrorIs(err, ErrArgMissing)

	_, err = doParse(t, "index_type 1 2")
	assert.ErrorIs(err, ErrArgExtra)

	_, err = doParse(t, "set_context $(banana +) 1")
	assert.Error(err)
}
