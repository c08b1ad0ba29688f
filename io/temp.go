package io

import (
	"iter"
)

// Temporary is an in-memory FIFO of lines.
type Temporary struct {
	Capacity int // Capacity in lines. Zero is unlimited.

	ReadIndex int
	Data      []string
}

var _ Channel = (*Temporary)(nil)

// Rewind resets the temporary storage to empty.
func (temp *Temporary) Rewind() {
	temp.ReadIndex = 0
	temp.Data = temp.Data[:0]
}

// Size returns the number of unread lines.
func (temp *Temporary) Size() int {
	return len(temp.Data) - temp.ReadIndex
}

// Receive returns an iterator that yields unread lines until empty.
func (temp *Temporary) Receive() iter.Seq[string] {
	return func(yield func(line string) bool) {
		for temp.Size() > 0 {
			line := temp.Data[temp.ReadIndex]
			temp.ReadIndex++
			if !yield(line) {
				return
			}
		}
	}
}

// Send appends a line to the buffer.
// Returns ErrChannelFull if the buffer has reached capacity.
func (temp *Temporary) Send(line string) (err error) {
	if temp.Capacity > 0 && len(temp.Data) >= temp.Capacity {
		err = ErrChannelFull
		return
	}

	temp.Data = append(temp.Data, line)

	return
}

// Lines returns all lines sent since the last rewind.
func (temp *Temporary) Lines() []string {
	return temp.Data
}
