package program

import (
	"fmt"
)

// Opcode is an instruction type.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_PRINT   = Opcode(0) // print
	OP_REPEAT  = Opcode(1) // repeat
	OP_REVERSE = Opcode(2) // reverse
)

// Opcodes lists every opcode in declaration order.
var Opcodes = []Opcode{OP_PRINT, OP_REPEAT, OP_REVERSE}

// Valid returns true if the opcode is one of the declared opcodes.
func (op Opcode) Valid() bool {
	return op >= OP_PRINT && op <= OP_REVERSE
}

// ParseOpcode returns the opcode with the given name.
func ParseOpcode(name string) (op Opcode, err error) {
	for _, op = range Opcodes {
		if op.String() == name {
			return
		}
	}

	err = ErrOpcodeUnknown(name)
	return
}

// Instruction is a single parsed line of a program.
type Instruction struct {
	LineNo int    // Source line, 1-indexed. Zero if not parsed from text.
	Op     Opcode // Instruction type.
	Count  int    // Lines to print or repeat.
	Offset int    // Distance back from the end of output, for OP_REPEAT.
}

// MakePrint creates a print instruction.
func MakePrint(count int) Instruction {
	return Instruction{Op: OP_PRINT, Count: count}
}

// MakeRepeat creates a repeat instruction.
func MakeRepeat(count, offset int) Instruction {
	return Instruction{Op: OP_REPEAT, Count: count, Offset: offset}
}

// MakeReverse creates a reverse instruction.
func MakeReverse() Instruction {
	return Instruction{Op: OP_REVERSE}
}

// String returns the canonical text of the instruction.
func (ins Instruction) String() string {
	switch ins.Op {
	case OP_PRINT:
		return fmt.Sprintf("%v %d", ins.Op, ins.Count)
	case OP_REPEAT:
		return fmt.Sprintf("%v %d %d", ins.Op, ins.Count, ins.Offset)
	default:
		return ins.Op.String()
	}
}

// Stringify returns the canonical text of an instruction, or the empty
// string when there is no instruction.
func Stringify(ins *Instruction) string {
	if ins == nil {
		return ""
	}

	return ins.String()
}
