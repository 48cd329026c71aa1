package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursor(t *testing.T) {
	assert := assert.New(t)

	cur := NewCursor("ab+c")
	assert.Equal(4, cur.Len())
	assert.Equal(0, cur.Position())
	assert.False(cur.AtEnd())
	assert.Equal(byte('a'), cur.Current())

	assert.Equal(byte('+'), cur.FindNextOperator())
	assert.Equal(2, cur.Position())

	// Already on an operator, so nothing moves.
	assert.Equal(byte('+'), cur.FindNextOperator())
	assert.Equal(2, cur.Position())

	assert.Equal(1, cur.Skip(1))
	assert.Equal(byte(OP_EOF), cur.FindNextOperator())
	assert.True(cur.AtEnd())
	assert.Equal(4, cur.Position())

	cur.Reset()
	assert.Equal(0, cur.Position())
}

func TestCursorClamp(t *testing.T) {
	assert := assert.New(t)

	cur := NewCursor("++++")

	assert.Equal(3, cur.Skip(3))
	assert.Equal(1, cur.Skip(5))
	assert.Equal(0, cur.Skip(1))
	assert.True(cur.AtEnd())
	assert.Equal(byte(OP_EOF), cur.Current())

	assert.Equal(2, cur.Rewind(2))
	assert.Equal(2, cur.Rewind(7))
	assert.Equal(0, cur.Rewind(1))
	assert.Equal(0, cur.Position())
}

func TestCursorEmpty(t *testing.T) {
	assert := assert.New(t)

	cur := NewCursor("")
	assert.True(cur.AtEnd())
	assert.Equal(byte(OP_EOF), cur.FindNextOperator())
	assert.Equal(0, cur.Skip(1))
	assert.Equal(0, cur.Rewind(1))
}

func TestOpcode(t *testing.T) {
	assert := assert.New(t)

	for _, c := range []byte("+-<>[].,") {
		assert.True(IsOperator(c), string(c))
		assert.Equal(string(c), Opcode(c).String())
	}

	for _, c := range []byte("abc \n\x00#") {
		assert.False(IsOperator(c), string(c))
	}

	assert.Equal("EOF", OP_EOF.String())
	assert.Equal("0x41", Opcode('A').String())
}
