// Package program implements the instruction set and parser for the lzvm
// line language.
//
// A program is a flat list of instructions, one per line:
//
//	print <count>
//	repeat <count> <offset>
//	reverse
//
// Which instructions are legal is decided by the InstructionSet handed to
// the parser, so the same grammar serves an LZ77 machine (print, repeat),
// a reversal machine (print, reverse) or both.
package program
