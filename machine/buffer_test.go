package machine

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/lzvm/io"
)

func TestBuffer_Append(t *testing.T) {
	assert := assert.New(t)

	b := &Buffer{}
	assert.True(b.Empty())

	b.Append("a")
	b.Append("b", "c")
	assert.False(b.Empty())
	assert.Equal(3, b.Len())
	assert.Equal([]string{"a", "b", "c"}, b.Data)
}

func TestBuffer_Copy(t *testing.T) {
	assert := assert.New(t)

	b := &Buffer{Data: []string{"a", "b", "c", "d"}}
	b.Copy(2, 2)
	assert.Equal([]string{"a", "b", "c", "d", "c", "d"}, b.Data)

	b = &Buffer{Data: []string{"a", "b", "c"}}
	b.Copy(1, 3)
	assert.Equal([]string{"a", "b", "c", "a"}, b.Data)

	b = &Buffer{Data: []string{"a", "b"}}
	b.Copy(0, 1)
	assert.Equal([]string{"a", "b"}, b.Data)
}

func TestBuffer_Copy_Clamped(t *testing.T) {
	assert := assert.New(t)

	// An offset past the start reads from the first line.
	b := &Buffer{Data: []string{"a", "b"}}
	b.Copy(2, 10)
	assert.Equal([]string{"a", "b", "a", "b"}, b.Data)
}

func TestBuffer_Copy_Overlap(t *testing.T) {
	assert := assert.New(t)

	// Reads lines appended by the same copy.
	b := &Buffer{Data: []string{"x", "a"}}
	b.Copy(4, 1)
	assert.Equal([]string{"x", "a", "a", "a", "a", "a"}, b.Data)

	b = &Buffer{Data: []string{"a", "b"}}
	b.Copy(5, 2)
	assert.Equal([]string{"a", "b", "a", "b", "a", "b", "a"}, b.Data)
}

func TestBuffer_Copy_Empty(t *testing.T) {
	assert := assert.New(t)

	b := &Buffer{}
	b.Copy(3, 1)
	assert.True(b.Empty())
}

func TestBuffer_Reverse(t *testing.T) {
	assert := assert.New(t)

	b := &Buffer{Data: []string{"a", "b", "c"}}
	b.Reverse()
	assert.Equal([]string{"c", "b", "a"}, b.Data)

	b = &Buffer{}
	b.Reverse()
	assert.True(b.Empty())
}

func TestBuffer_Reset(t *testing.T) {
	assert := assert.New(t)

	b := &Buffer{Data: []string{"a"}}
	b.Reset()
	assert.True(b.Empty())
	b.Reset()
	assert.True(b.Empty())
}

func TestBuffer_Text(t *testing.T) {
	assert := assert.New(t)

	b := &Buffer{Data: []string{"", "a", "", "b", ""}}
	assert.Equal(5, b.Len())
	assert.Equal([]string{"a", "b"}, slices.Collect(b.Lines()))
	assert.Equal("a\nb", b.Text())

	assert.Equal("", (&Buffer{}).Text())
}

func TestBuffer_Drain(t *testing.T) {
	assert := assert.New(t)

	b := &Buffer{Data: []string{"a", "", "b", "c"}}

	temp := &io.Temporary{}
	assert.NoError(b.Drain(temp))
	assert.Equal([]string{"a", "b", "c"}, temp.Lines())

	temp = &io.Temporary{Capacity: 1}
	assert.Equal(io.ErrChannelFull, b.Drain(temp))
	assert.Equal([]string{"a"}, temp.Lines())
}
