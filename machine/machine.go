// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package machine executes lzvm programs.
package machine

import (
	"log"
	"math"

	"github.com/ezrec/lzvm/program"
)

// Machine state. A program, a cursor into it, and the output buffer.
type Machine struct {
	Verbose  bool             // If set, enables verbose logging.
	Program  *program.Program // Program being executed. Never modified.
	Output   Buffer           // Output lines produced so far.
	Cursor   int              // Index of the next instruction.
	Capacity int              // Maximum output lines. Zero is unlimited.
	Ticks    int              // Instructions executed since reset.
}

// NewMachine creates a new machine for a program.
func NewMachine(prog *program.Program) (m *Machine) {
	if prog == nil {
		prog = &program.Program{}
	}

	m = &Machine{
		Program: prog,
	}

	return
}

// Run executes prog on a new machine and returns the output text.
func Run(prog *program.Program) (output string, err error) {
	return NewMachine(prog).Run()
}

// Interpret parses text with the given instruction set and runs it.
func Interpret(text string, isa program.InstructionSet) (output string, err error) {
	prog, err := program.Parse(text, isa)
	if err != nil {
		return
	}

	return Run(prog)
}

// Reset rewinds the machine to the start of its program.
func (m *Machine) Reset() {
	m.Cursor = 0
	m.Ticks = 0
	m.Output.Reset()
}

// Done returns true when every instruction has been consumed.
func (m *Machine) Done() bool {
	return m.Cursor >= m.Program.Len()
}

// LineNo returns the source line of the next instruction.
func (m *Machine) LineNo() int {
	ins := m.Program.At(m.Cursor)
	if ins == nil {
		return 0
	}

	return ins.LineNo
}

// fits checks that n more lines fit in the output.
func (m *Machine) fits(n int) error {
	limit := math.MaxInt
	if m.Capacity > 0 {
		limit = m.Capacity
	}
	if n > limit-m.Output.Len() {
		return ErrOutputLimit
	}
	return nil
}

// Tick executes the next instruction, and reports if the program is done.
func (m *Machine) Tick() (done bool, err error) {
	ins := m.Program.At(m.Cursor)
	if ins == nil {
		done = true
		return
	}

	lineno := ins.LineNo
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	if m.Verbose {
		log.Printf("%v: %v (output %v)\n", lineno, ins, m.Output.Len())
	}

	if ins.Count < 0 {
		err = ErrInstructionInvalid
		return
	}

	switch ins.Op {
	case program.OP_PRINT:
		// Consume the following instructions as text.
		n := min(ins.Count, m.Program.Len()-m.Cursor-1)
		err = m.fits(n)
		if err != nil {
			return
		}
		for k := range n {
			m.Output.Append(program.Stringify(m.Program.At(m.Cursor + 1 + k)))
		}
		m.Cursor += 1 + n
	case program.OP_REPEAT:
		if ins.Offset < 1 {
			err = ErrInstructionInvalid
			return
		}
		if !m.Output.Empty() {
			err = m.fits(ins.Count)
			if err != nil {
				return
			}
			m.Output.Copy(ins.Count, ins.Offset)
		}
		m.Cursor++
	case program.OP_REVERSE:
		m.Output.Reverse()
		m.Cursor++
	default:
		err = ErrInstructionInvalid
		return
	}

	m.Ticks++
	done = m.Done()

	return
}

// Run executes the remaining program and returns the output text.
func (m *Machine) Run() (output string, err error) {
	for done := m.Done(); !done; {
		done, err = m.Tick()
		if err != nil {
			return
		}
	}

	output = m.Output.Text()

	if m.Verbose {
		log.Printf("%v ticks, %v lines\n", m.Ticks, m.Output.Len())
	}

	return
}
