package program

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstructionSet_Has(t *testing.T) {
	assert := assert.New(t)

	assert.True(ISA_LZ77.Has(OP_PRINT))
	assert.True(ISA_LZ77.Has(OP_REPEAT))
	assert.False(ISA_LZ77.Has(OP_REVERSE))

	assert.True(ISA_REVERSI.Has(OP_REVERSE))
	assert.False(ISA_REVERSI.Has(OP_REPEAT))

	for _, op := range Opcodes {
		assert.True(ISA_REVERSI_LZ77.Has(op))
	}
}

func TestInstructionSet_Union(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(ISA_REVERSI_LZ77, ISA_LZ77.Union(ISA_REVERSI))
	assert.Equal(InstructionSet{OP_PRINT, OP_REVERSE, OP_REPEAT}, ISA_REVERSI.Union(ISA_LZ77))
	assert.Equal(InstructionSet{OP_REVERSE}, InstructionSet{OP_REVERSE, OP_REVERSE}.Union())

	// Union does not modify its operands.
	assert.Equal(InstructionSet{OP_PRINT, OP_REPEAT}, ISA_LZ77)
}

func TestInstructionSet_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("print,repeat", ISA_LZ77.String())
	assert.Equal("print,reverse", ISA_REVERSI.String())
	assert.Equal("", InstructionSet{}.String())
	assert.Equal([]Opcode{OP_PRINT, OP_REVERSE}, slices.Collect(ISA_REVERSI.All()))
}

func TestParseInstructionSet(t *testing.T) {
	assert := assert.New(t)

	isa, err := ParseInstructionSet("print,repeat")
	assert.NoError(err)
	assert.Equal(ISA_LZ77, isa)

	isa, err = ParseInstructionSet(" reverse , print,,reverse ")
	assert.NoError(err)
	assert.Equal(InstructionSet{OP_REVERSE, OP_PRINT}, isa)

	isa, err = ParseInstructionSet("")
	assert.NoError(err)
	assert.Empty(isa)

	_, err = ParseInstructionSet("print,jump")
	assert.Equal(ErrOpcodeUnknown("jump"), err)
}
