// Package io provides line channels for lzvm programs and their output.
// A Tape streams lines between an io.Reader and an io.Writer, and a
// Temporary holds lines in memory.
package io

import (
	"iter"
)

// Channel defines the interface for all line channels.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive returns an iterator that yields lines from the channel.
	Receive() iter.Seq[string]
	// Send writes a single line to the channel.
	Send(line string) error
}
