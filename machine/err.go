package machine

import (
	"github.com/ezrec/lzvm/translate"
)

var f = translate.From

var (
	ErrInstructionInvalid = translate.Error("instruction invalid")
	ErrOutputLimit        = translate.Error("output limit exceeded")
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
