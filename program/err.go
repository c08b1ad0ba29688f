package program

import (
	"github.com/ezrec/lzvm/translate"
)

var f = translate.From

var (
	// Parser errors
	ErrInstructionInvalid  = translate.Error("instruction invalid")
	ErrInstructionSetEmpty = translate.Error("instruction set empty")
	ErrOpcodeDisabled      = translate.Error("opcode not in instruction set")
	ErrOpcodeExtraArgs     = translate.Error("excessive arguments")
	ErrOpcodeValueMissing  = translate.Error("value missing")
	ErrOffsetZero          = translate.Error("offset must be positive")
)

// ErrOpcodeUnknown is returned when a name is not an opcode.
type ErrOpcodeUnknown string

func (err ErrOpcodeUnknown) Error() string {
	return f("'%v' is not an opcode", string(err))
}

// ErrParseNumber is returned when a word is not a whole number.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrNumberRange is returned when a whole number does not fit an int.
type ErrNumberRange string

func (err ErrNumberRange) Error() string {
	return f("'%v' is out of range", string(err))
}

// ErrSyntax locates a parse failure.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
