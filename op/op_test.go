package op

import (
	"errors"
	"testing"

	"github.com/cloudcmds/loxcore/errz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo(DefineGlobal)
	assert.Equal(t, "OP_DEFINE_GLOBAL", info.Name)
	assert.Equal(t, 1, info.OperandCount)
	assert.Equal(t, ConstantIndexed, info.Shape)
	assert.Equal(t, DefineGlobal, info.Code)
	assert.Equal(t, 2, info.Width())
}

func TestGetInfoAllOpcodes(t *testing.T) {
	tests := []struct {
		code     Code
		value    byte
		name     string
		operands int
	}{
		{Constant, 0, "OP_CONSTANT", 1},
		{Nil, 1, "OP_NIL", 0},
		{True, 2, "OP_TRUE", 0},
		{False, 3, "OP_FALSE", 0},
		{Pop, 4, "OP_POP", 0},
		{GetGlobal, 5, "OP_GET_GLOBAL", 1},
		{DefineGlobal, 6, "OP_DEFINE_GLOBAL", 1},
		{SetGlobal, 7, "OP_SET_GLOBAL", 1},
		{Equal, 8, "OP_EQUAL", 0},
		{Greater, 9, "OP_GREATER", 0},
		{Less, 10, "OP_LESS", 0},
		{Add, 11, "OP_ADD", 0},
		{Subtract, 12, "OP_SUBTRACT", 0},
		{Multiply, 13, "OP_MULTIPLY", 0},
		{Divide, 14, "OP_DIVIDE", 0},
		{Not, 15, "OP_NOT", 0},
		{Negate, 16, "OP_NEGATE", 0},
		{Print, 17, "OP_PRINT", 0},
		{Return, 18, "OP_RETURN", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := GetInfo(tt.code)
			assert.Equal(t, tt.code, info.Code)
			assert.Equal(t, tt.name, info.Name)
			assert.Equal(t, tt.operands, info.OperandCount)
			assert.Equal(t, tt.value, tt.code.Byte())
			assert.Equal(t, tt.name, tt.code.String())

			decoded, err := FromByte(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.code, decoded)
		})
	}
}

func TestUnknownBytes(t *testing.T) {
	for b := 19; b < 256; b++ {
		_, ok := Lookup(byte(b))
		assert.False(t, ok, "byte %d", b)
		assert.False(t, Code(b).IsValid())
	}
	_, err := FromByte(0xff)
	require.Error(t, err)
	assert.True(t, errors.Is(err, &errz.StructuredError{Kind: errz.ErrMalformedBytecode}))
	assert.Equal(t, "OP_UNKNOWN", Code(0xff).String())
	assert.Equal(t, Info{}, GetInfo(Code(200)))
}
