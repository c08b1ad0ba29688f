package io

import (
	"bufio"
	"io"
	"iter"
	"math"
	"strings"
)

// MaxLineSize is the longest line a tape will receive.
const MaxLineSize = math.MaxInt32

// Tape provides sequential line I/O. It wraps an io.Reader for input and
// an io.Writer for output.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	scanner *bufio.Scanner
	err     error
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// Receive returns an iterator that yields input lines without their line
// terminators. Reading stops at the end of input or on the first error,
// which is reported by Err.
func (tc *Tape) Receive() iter.Seq[string] {
	return func(yield func(line string) bool) {
		if tc.Input == nil {
			tc.err = ErrTapeInput
			return
		}
		if tc.scanner == nil {
			tc.scanner = bufio.NewScanner(tc.Input)
			tc.scanner.Buffer(nil, MaxLineSize)
		}
		for tc.scanner.Scan() {
			if !yield(strings.TrimSuffix(tc.scanner.Text(), "\r")) {
				return
			}
		}
		tc.err = tc.scanner.Err()
	}
}

// Err returns the first error encountered by Receive.
func (tc *Tape) Err() error {
	return tc.err
}

// Send writes a line, followed by a newline, to the output stream.
func (tc *Tape) Send(line string) (err error) {
	if tc.Output == nil {
		err = ErrTapeOutput
		return
	}

	_, err = io.WriteString(tc.Output, line+"\n")

	return
}
