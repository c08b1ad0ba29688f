package machine

import (
	"iter"
	"slices"
	"strings"

	"github.com/ezrec/lzvm/internal"
	"github.com/ezrec/lzvm/io"
)

// Buffer is the output of a machine: an ordered list of lines.
type Buffer struct {
	Data []string
}

// Append adds lines to the end of the buffer.
func (b *Buffer) Append(lines ...string) {
	b.Data = append(b.Data, lines...)
}

// Copy appends count lines starting offset lines before the end of the
// buffer. The start is clamped to the first line. Lines appended by the
// copy itself are read as the copy proceeds, so a count larger than the
// offset repeats the window. Copying from an empty buffer does nothing.
func (b *Buffer) Copy(count, offset int) {
	if b.Empty() {
		return
	}

	start := max(len(b.Data)-offset, 0)
	for n := range count {
		b.Data = append(b.Data, b.Data[start+n])
	}
}

// Reverse reverses the buffer in place.
func (b *Buffer) Reverse() {
	slices.Reverse(b.Data)
}

// Len returns the number of lines, including empty ones.
func (b *Buffer) Len() int {
	return len(b.Data)
}

// Empty returns true if the buffer has no lines.
func (b *Buffer) Empty() bool {
	return len(b.Data) == 0
}

// Reset empties the buffer.
func (b *Buffer) Reset() {
	if len(b.Data) > 0 {
		b.Data = b.Data[:0]
	}
}

// Lines returns an iterator over the non-empty lines of the buffer.
func (b *Buffer) Lines() iter.Seq[string] {
	return internal.IterSeqFilter(slices.Values(b.Data), func(line string) bool {
		return len(line) != 0
	})
}

// Text returns the non-empty lines joined by newlines.
func (b *Buffer) Text() string {
	return strings.Join(slices.Collect(b.Lines()), "\n")
}

// Drain sends the non-empty lines to a channel.
func (b *Buffer) Drain(ch io.Channel) (err error) {
	for line := range b.Lines() {
		err = ch.Send(line)
		if err != nil {
			return
		}
	}

	return
}
