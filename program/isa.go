package program

import (
	"iter"
	"slices"
	"strings"

	"github.com/ezrec/lzvm/internal"
)

// InstructionSet is the ordered list of opcodes a machine accepts.
// The parser tries them in order.
type InstructionSet []Opcode

// Predefined machines.
var (
	ISA_LZ77         = InstructionSet{OP_PRINT, OP_REPEAT}
	ISA_REVERSI      = InstructionSet{OP_PRINT, OP_REVERSE}
	ISA_REVERSI_LZ77 = InstructionSet{OP_PRINT, OP_REPEAT, OP_REVERSE}
)

// ParseInstructionSet parses a comma separated list of opcode names.
func ParseInstructionSet(names string) (isa InstructionSet, err error) {
	for name := range strings.SplitSeq(names, ",") {
		name = strings.TrimSpace(name)
		if len(name) == 0 {
			continue
		}
		var op Opcode
		op, err = ParseOpcode(name)
		if err != nil {
			return
		}
		isa = append(isa, op)
	}

	isa = isa.Union()

	return
}

// Has returns true if op is in the set.
func (isa InstructionSet) Has(op Opcode) bool {
	return slices.Contains(isa, op)
}

// All returns an iterator over the opcodes of the set, in order.
func (isa InstructionSet) All() iter.Seq[Opcode] {
	return slices.Values(isa)
}

// Union returns the set followed by the opcodes of others it does not
// already have, without duplicates.
func (isa InstructionSet) Union(others ...InstructionSet) InstructionSet {
	seqs := []iter.Seq[Opcode]{isa.All()}
	for _, other := range others {
		seqs = append(seqs, other.All())
	}

	return slices.Collect(internal.IterSeqUnique(internal.IterSeqConcat(seqs...)))
}

// String returns the comma separated opcode names.
func (isa InstructionSet) String() string {
	names := make([]string, len(isa))
	for n, op := range isa {
		names[n] = op.String()
	}
	return strings.Join(names, ",")
}
