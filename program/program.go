package program

import (
	"iter"
	"slices"
	"strings"
)

// Program is the ordered list of instructions parsed from a source text.
// It is not modified by execution.
type Program struct {
	Instructions []Instruction
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.Instructions)
}

// At returns the instruction at index n, or nil past the end.
func (prog *Program) At(n int) *Instruction {
	if n < 0 || n >= len(prog.Instructions) {
		return nil
	}

	return &prog.Instructions[n]
}

// All returns an iterator over the instruction indexes and instructions.
func (prog *Program) All() iter.Seq2[int, Instruction] {
	return slices.All(prog.Instructions)
}

// Lines returns an iterator over the canonical text of each instruction.
func (prog *Program) Lines() iter.Seq[string] {
	return func(yield func(line string) bool) {
		for _, ins := range prog.Instructions {
			if !yield(ins.String()) {
				return
			}
		}
	}
}

// String returns the canonical program text, one instruction per line.
func (prog *Program) String() string {
	return strings.Join(slices.Collect(prog.Lines()), "\n")
}

// Clone returns a copy of the program.
func (prog *Program) Clone() *Program {
	return &Program{Instructions: slices.Clone(prog.Instructions)}
}
