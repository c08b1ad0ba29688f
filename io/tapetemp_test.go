package io

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape_Receive(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("print 1\r\n\nreverse\n")}
	tape.Rewind()

	lines := slices.Collect(tape.Receive())
	assert.Equal([]string{"print 1", "", "reverse"}, lines)
	assert.NoError(tape.Err())

	// A tape does not rewind.
	assert.Empty(slices.Collect(tape.Receive()))
}

func TestTape_Receive_Partial(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("a\nb\nc")}

	for line := range tape.Receive() {
		assert.Equal("a", line)
		break
	}

	assert.Equal([]string{"b", "c"}, slices.Collect(tape.Receive()))
}

func TestTape_Receive_LongLine(t *testing.T) {
	assert := assert.New(t)

	long := "print " + strings.Repeat("0", 100000) + "1"
	tape := &Tape{Input: strings.NewReader(long + "\nreverse\n")}

	lines := slices.Collect(tape.Receive())
	assert.Equal([]string{long, "reverse"}, lines)
	assert.NoError(tape.Err())
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) {
	return 0, errors.New("broken")
}

func TestTape_Receive_Error(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: brokenReader{}}
	assert.Empty(slices.Collect(tape.Receive()))
	assert.EqualError(tape.Err(), "broken")

	tape = &Tape{}
	assert.Empty(slices.Collect(tape.Receive()))
	assert.Equal(ErrTapeInput, tape.Err())
}

func TestTape_Send(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{Output: output}

	assert.NoError(tape.Send("print 2"))
	assert.NoError(tape.Send("reverse"))
	assert.Equal("print 2\nreverse\n", output.String())

	tape = &Tape{}
	assert.Equal(ErrTapeOutput, tape.Send("x"))
}

func TestTemporary(t *testing.T) {
	assert := assert.New(t)

	temp := &Temporary{}
	temp.Rewind()
	assert.Equal(0, temp.Size())

	assert.NoError(temp.Send("a"))
	assert.NoError(temp.Send("b"))
	assert.Equal(2, temp.Size())
	assert.Equal([]string{"a", "b"}, temp.Lines())

	for line := range temp.Receive() {
		assert.Equal("a", line)
		break
	}
	assert.Equal(1, temp.Size())
	assert.Equal([]string{"b"}, slices.Collect(temp.Receive()))
	assert.Equal(0, temp.Size())

	temp.Rewind()
	assert.Empty(temp.Lines())
}

func TestTemporary_CapacityFull(t *testing.T) {
	assert := assert.New(t)

	temp := &Temporary{Capacity: 2}
	temp.Rewind()

	assert.NoError(temp.Send("a"))
	assert.NoError(temp.Send("b"))
	assert.Equal(ErrChannelFull, temp.Send("c"))
	assert.Equal([]string{"a", "b"}, temp.Lines())
}
