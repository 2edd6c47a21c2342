package pm4

import (
	"errors"

	"github.com/Fancy2209/shadPS4/translate"
)

var f = translate.From

var (
	// Decode errors
	ErrStreamEmpty = errors.New(f("empty command stream"))
	ErrPacketShort = errors.New(f("packet exceeds command stream"))
	ErrPacketCount = errors.New(f("packet count too small"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrArgMissing      = errors.New(f("argument missing"))
	ErrArgExtra        = errors.New(f("excessive arguments"))
)

// ErrPacketType is an unsupported packet type discriminant.
type ErrPacketType int

func (et ErrPacketType) Error() string {
	return f("unsupported packet type %d", int(et))
}

func (et ErrPacketType) Is(err error) (ok bool) {
	_, ok = err.(ErrPacketType)
	return
}

// ErrItOpcode is an unsupported or malformed type 3 packet.
type ErrItOpcode struct {
	Opcode ItOpcode
	Count  int
}

func (eo ErrItOpcode) Error() string {
	return f("type 3 opcode %#02x (%v) count %d", int(eo.Opcode), eo.Opcode, eo.Count)
}

func (eo ErrItOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrItOpcode)
	return
}

// ErrMnemonic is an unknown assembler mnemonic.
type ErrMnemonic string

func (em ErrMnemonic) Error() string {
	return f("'%v' is not a mnemonic", string(em))
}

// ErrParseNumber is a word that failed numeric parsing.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrParseExpression is a $() expression that failed evaluation.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrSyntax locates an assembler error in the source listing.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
