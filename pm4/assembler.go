package pm4

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// waitFnMap maps wait_mem function mnemonics to their encodings.
var waitFnMap = map[string]WaitFunc{
	"always": WAIT_ALWAYS,
	"lt":     WAIT_LT,
	"le":     WAIT_LE,
	"eq":     WAIT_EQ,
	"ne":     WAIT_NE,
	"ge":     WAIT_GE,
	"gt":     WAIT_GT,
}

// Assembler is a single pass assembler for textual PM4 command listings.
// One packet per line: a mnemonic (the linecomment name of its ItOpcode)
// followed by numeric arguments. Lines may use `.equ NAME VALUE` equates and
// compile-time $() expressions.
type Assembler struct {
	Verbose bool              // If set, verbosely logs the assembler actions.
	Equate  map[string]string // Map of equates.

	predefine map[string]string // Predefines
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value uint64, err error) {
	invert := false
	if word[0] == '~' {
		invert = true
		word = word[1:]
	}

	value, err = strconv.ParseUint(word, 0, 64)
	if err != nil {
		var v64 int64
		v64, err = strconv.ParseInt(word, 0, 64)
		if err != nil {
			err = ErrParseNumber(word)
			return
		}
		value = uint64(v64)
	}

	if invert {
		value = ^value
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value64 uint64
		value64, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeUint64(value64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_u64, ok := st_int.Uint64()
	if !ok {
		var st_i64 int64
		st_i64, ok = st_int.Int64()
		if !ok {
			err = ErrParseExpression(expr)
			return
		}
		st_u64 = uint64(st_i64)
	}
	value = st_u64
	return
}

// parseLine expands equates and $() expressions, then splits a line into its
// mnemonic and argument values.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#x", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	return
}

// argRange checks the assembled argument count against a mnemonic's arity.
func argRange(args []uint64, min, max int) (err error) {
	if len(args) < min {
		err = ErrArgMissing
	} else if max >= 0 && len(args) > max {
		err = ErrArgExtra
	}
	return
}

// argOr returns argument n, or a default when the optional argument was
// omitted.
func argOr(args []uint64, n int, value uint64) uint64 {
	if n < len(args) {
		return args[n]
	}
	return value
}

func argWords(args []uint64) (values []uint32) {
	values = make([]uint32, len(args))
	for n, arg := range args {
		values[n] = uint32(arg)
	}
	return
}

// assembleWords encodes a single mnemonic line into packet words.
func (asm *Assembler) assembleWords(words []string) (packet []uint32, err error) {
	mnemonic := words[0]

	var fn WaitFunc
	if mnemonic == "wait_mem" {
		// First argument is the comparison function mnemonic.
		if len(words) < 2 {
			err = ErrArgMissing
			return
		}
		var ok bool
		fn, ok = waitFnMap[words[1]]
		if !ok {
			err = ErrParseNumber(words[1])
			return
		}
		words = append(words[:1], words[2:]...)
	}

	args := make([]uint64, 0, len(words)-1)
	for _, word := range words[1:] {
		var value uint64
		value, err = asm.valueOf(word)
		if err != nil {
			return
		}
		args = append(args, value)
	}

	switch mnemonic {
	case "nop":
		packet = MakeNop(argWords(args)...)
	case "flip":
		if err = argRange(args, 0, 0); err != nil {
			return
		}
		packet = MakeFlip()
	case "set_context", "set_sh", "set_uconfig", "set_config":
		if err = argRange(args, 2, -1); err != nil {
			return
		}
		offset := uint32(args[0])
		values := argWords(args[1:])
		switch mnemonic {
		case "set_context":
			packet = MakeSetContextReg(offset, values...)
		case "set_sh":
			packet = MakeSetShReg(offset, values...)
		case "set_uconfig":
			packet = MakeSetUconfigReg(offset, values...)
		case "set_config":
			packet = MakeSetConfigReg(offset, values...)
		}
	case "index_type":
		if err = argRange(args, 1, 1); err != nil {
			return
		}
		packet = MakeIndexType(uint32(args[0]))
	case "draw_index":
		if err = argRange(args, 2, 4); err != nil {
			return
		}
		count := uint32(args[1])
		packet = MakeDrawIndex2(args[0], count,
			uint32(argOr(args, 2, uint64(count))), uint32(argOr(args, 3, 0)))
	case "draw_auto":
		if err = argRange(args, 1, 2); err != nil {
			return
		}
		packet = MakeDrawIndexAuto(uint32(args[0]), uint32(argOr(args, 1, 0)))
	case "dispatch":
		if err = argRange(args, 3, 4); err != nil {
			return
		}
		packet = MakeDispatchDirect(uint32(args[0]), uint32(args[1]),
			uint32(args[2]), uint32(argOr(args, 3, 0)))
	case "event":
		if err = argRange(args, 1, 1); err != nil {
			return
		}
		packet = MakeEventWrite(uint32(args[0]))
	case "event_eop":
		if err = argRange(args, 2, 4); err != nil {
			return
		}
		packet = MakeEventWriteEop(args[0], args[1],
			uint32(argOr(args, 2, uint64(DATA_SEL_DATA64))),
			uint32(argOr(args, 3, uint64(INT_SEL_NONE))))
	case "event_eos":
		if err = argRange(args, 2, 2); err != nil {
			return
		}
		packet = MakeEventWriteEos(args[0], uint32(args[1]))
	case "write_data":
		if err = argRange(args, 3, -1); err != nil {
			return
		}
		packet = MakeWriteData(uint32(args[0]), args[1], argWords(args[2:])...)
	case "wait_mem":
		if err = argRange(args, 2, 3); err != nil {
			return
		}
		packet = MakeWaitRegMem(fn, args[0], uint32(args[1]),
			uint32(argOr(args, 2, 0xffffffff)))
	case "dma_data":
		if err = argRange(args, 0, 0); err != nil {
			return
		}
		packet = MakeDmaData()
	case "acquire_mem":
		if err = argRange(args, 0, 0); err != nil {
			return
		}
		packet = MakeAcquireMem()
	default:
		err = ErrMnemonic(mnemonic)
	}

	return
}

// Parse assembles an input listing into a command buffer.
func (asm *Assembler) Parse(input io.Reader) (buf []uint32, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}
		if len(words) == 0 {
			continue
		}

		var packet []uint32
		packet, err = asm.assembleWords(words)
		if err != nil {
			return
		}
		buf = append(buf, packet...)
	}
	err = scanner.Err()

	return
}
